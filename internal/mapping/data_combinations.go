package mapping

// DefaultCombinations returns the hand-authored combination catalog.
// Each entry names two words that form a compound keyword with its own
// action; FlattenCombinations expands them into ordinary records at load
// time.
func DefaultCombinations() []Combination {
	return []Combination{
		// position
		{Words: []string{"첫번째", "위"}, Result: "맨위", Meaning: "페이지 최상단", Action: "Scroll To Element", Type: "position"},
		{Words: []string{"첫번째", "아래"}, Result: "맨아래", Meaning: "페이지 최하단", Action: "Scroll To Element", Type: "position"},
		{Words: []string{"첫번째", "앞"}, Result: "맨앞", Meaning: "첫번째 요소", Action: "Click", Type: "position"},
		{Words: []string{"첫번째", "뒤"}, Result: "맨뒤", Meaning: "마지막 요소", Action: "Click", Type: "position"},

		// duration
		{Words: []string{"잠깐", "대기"}, Result: "잠깐대기", Meaning: "짧은 시간 대기", Action: "Delay", Type: "duration"},
		{Words: []string{"잠시", "대기"}, Result: "잠시대기", Meaning: "잠시 대기", Action: "Delay", Type: "duration"},
		{Words: []string{"바로", "실행"}, Result: "바로실행", Meaning: "즉시 실행", Action: "Click", Type: "duration"},
		{Words: []string{"즉시", "확인"}, Result: "즉시확인", Meaning: "즉시 확인", Action: "Verify Element Present", Type: "duration"},

		// scope
		{Words: []string{"전체", "선택"}, Result: "전체선택", Meaning: "모든 요소 선택", Action: "Check All Checkboxes", Type: "scope"},
		{Words: []string{"모든", "확인"}, Result: "모든확인", Meaning: "모든 요소 확인", Action: "Verify All Elements Present", Type: "scope"},
		{Words: []string{"각", "클릭"}, Result: "각각클릭", Meaning: "각각 클릭", Action: "Click Each Element", Type: "scope"},
		{Words: []string{"개별", "입력"}, Result: "개별입력", Meaning: "개별 입력", Action: "Set Text Each Field", Type: "scope"},

		// state verification
		{Words: []string{"정상", "확인"}, Result: "정상확인", Meaning: "정상 상태 확인", Action: "Verify Element Attribute Value", Type: "state"},
		{Words: []string{"완료", "확인"}, Result: "완료확인", Meaning: "완료 상태 확인", Action: "Verify Element Text", Type: "state"},
		{Words: []string{"진행", "확인"}, Result: "진행확인", Meaning: "진행 상태 확인", Action: "Verify Element Text", Type: "state"},
		{Words: []string{"성공", "확인"}, Result: "성공확인", Meaning: "성공 상태 확인", Action: "Verify Element Text", Type: "state"},
		{Words: []string{"실패", "확인"}, Result: "실패확인", Meaning: "실패 상태 확인", Action: "Verify Element Text", Type: "state"},

		// direction
		{Words: []string{"위로", "이동"}, Result: "위로이동", Meaning: "위쪽으로 스크롤", Action: "Scroll To Element", Type: "direction"},
		{Words: []string{"아래로", "이동"}, Result: "아래로이동", Meaning: "아래쪽으로 스크롤", Action: "Scroll To Element", Type: "direction"},
		{Words: []string{"앞으로", "이동"}, Result: "앞으로이동", Meaning: "다음 페이지", Action: "Forward", Type: "direction"},
		{Words: []string{"뒤로", "이동"}, Result: "뒤로이동", Meaning: "이전 페이지", Action: "Back", Type: "direction"},

		// repetition
		{Words: []string{"계속", "확인"}, Result: "계속확인", Meaning: "지속적으로 확인", Action: "Wait For Element Present", Type: "repetition"},
		{Words: []string{"반복", "클릭"}, Result: "반복클릭", Meaning: "반복해서 클릭", Action: "Click Multiple Times", Type: "repetition"},

		// comparison
		{Words: []string{"같은", "확인"}, Result: "동일확인", Meaning: "같은지 확인", Action: "Verify Element Text", Type: "comparison"},
		{Words: []string{"다른", "확인"}, Result: "다름확인", Meaning: "다른지 확인", Action: "Verify Element Text", Type: "comparison"},
		{Words: []string{"반대", "확인"}, Result: "반대확인", Meaning: "반대인지 확인", Action: "Verify Element Not Present", Type: "comparison"},

		// attempt actions
		{Words: []string{"첨부", "시도"}, Result: "첨부시도", Meaning: "파일 첨부 시도", Action: "Upload File", Type: "attempt"},
		{Words: []string{"업로드", "완료"}, Result: "업로드완료", Meaning: "업로드 완료 확인", Action: "Verify Element Present", Type: "attempt"},
		{Words: []string{"드래그", "업로드"}, Result: "드래그업로드", Meaning: "드래그로 업로드", Action: "Drag And Drop", Type: "attempt"},

		// batch
		{Words: []string{"한번에", "처리"}, Result: "한번에처리", Meaning: "일괄 처리", Action: "Batch Process", Type: "batch"},
		{Words: []string{"동시에", "확인"}, Result: "동시에확인", Meaning: "동시 확인", Action: "Verify Multiple Elements", Type: "batch"},
		{Words: []string{"차례로", "실행"}, Result: "차례로실행", Meaning: "순차 실행", Action: "Execute Sequentially", Type: "batch"},
	}
}
