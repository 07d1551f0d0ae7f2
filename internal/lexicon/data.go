package lexicon

// DefaultVocabulary returns the built-in classification tables.
//
// The word lists were curated from recorded test-case phrasing: UI element
// and data nouns, interaction verbs, quantity/state modifiers, and the
// particles that mark syntactic roles in Korean test sentences.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Nouns: []string{
			// UI elements
			"페이지", "화면", "버튼", "아이콘", "링크", "이미지", "텍스트",
			"블록", "카드", "박스", "영역", "필드", "메뉴", "리스트", "항목",
			"드롭다운", "체크박스", "라디오버튼", "슬라이더", "탭", "모달", "팝업",
			// data
			"개수", "수량", "내용", "데이터", "정보", "값", "결과", "숫자",
			"내역", "시간", "날짜", "문구", "메시지", "상태", "조건", "타입",
			// files
			"파일", "동영상", "영상", "문서", "첨부파일", "폴더", "디렉토리", "경로",
			// crypto domain carried over from the source corpus
			"토큰", "컨트랙트", "주소", "해시", "트랜잭션", "네트워크",
			"가스", "메소드", "코드", "지갑", "코인",
			// numeric
			"총량", "합계", "평균", "최대", "최소", "비율", "퍼센트", "점수",
			"등급", "순위", "수치", "가격", "비용", "수수료",
		},
		Verbs: []string{
			// basic actions
			"확인", "검증", "체크", "클릭", "선택", "입력", "설정", "생성",
			"삭제", "수정", "변경", "추가", "제거", "복사", "붙여넣기",
			// file actions
			"업로드", "다운로드", "첨부", "저장", "불러오기", "가져오기", "내보내기",
			// navigation
			"이동", "진입", "전환", "뒤로", "앞으로", "새로고침", "닫기", "열기",
			// verification
			"검사", "테스트", "비교", "계산", "집계", "합산",
			// pointer gestures
			"드래그", "끌기", "누르기", "터치", "타이핑", "스크롤",
		},
		Modifiers: []string{
			// state modifiers
			"정상적인", "올바른", "유효한", "활성", "비활성", "선택된", "해제된",
			"보이는", "숨겨진", "새로운", "기존", "최신", "이전",
			// quantity modifiers
			"전체", "모든", "각", "개별", "부분", "일부", "첫번째", "마지막",
			"총", "기본",
			// quality modifiers
			"좋은", "나쁜", "정확한", "부정확한", "완전한", "불완전한", "안전한", "위험한",
		},
		States: []string{
			// existence
			"있음", "없음", "존재", "미존재", "포함", "미포함", "발견", "미발견",
			// verb endings expressing state
			"되어야", "되지", "된다", "되는", "되어", "되었", "될", "되면",
			// completion
			"완료", "미완료", "성공", "실패", "통과", "미통과", "처리", "대기",
			// display
			"노출", "미노출", "표시", "미표시", "보임", "숨김", "활성화", "비활성화",
		},
		Particles: []string{
			"이", "가", "을", "를", "에", "에서", "으로", "로",
			"와", "과", "하고", "및",
			"다", "한다", "한다면", "해야", "하여",
			"의", "도", "만", "부터", "까지", "처럼", "같이",
		},

		SpecificActions: map[string]int{
			"드래그": 10, "끌기": 10,
			"클릭": 9, "누르기": 9, "터치": 9,
			"입력": 8, "타이핑": 8,
			"선택": 7, "체크": 7,
			"스크롤": 6, "이동": 6,
		},
		GeneralActions: map[string]int{
			"업로드": 5, "다운로드": 5,
			"저장": 4, "불러오기": 4,
			"설정": 3, "변경": 3,
		},
		Verifications: map[string]int{
			"확인": 2, "검증": 2, "체크": 2,
			"비교": 1, "검사": 1,
		},
		IntentOnly: map[string]int{
			"시도": 0, "의도": 0, "목적": 0,
			"위해": 0, "하기": 0,
		},
	}
}
