package mapping

// SecondaryRecords returns the secondary data set: the systematic mapping
// catalog organized by domain. Searched after the primary set; the primary
// set wins when the same keyword appears in both.
func SecondaryRecords() []Record {
	return []Record{
		// forms and input
		{Keywords: []string{"숫자", "영문", "특수문자"}, Action: "Set Text", Type: "input"},
		{Keywords: []string{"강의명", "코스명", "course"}, Action: "Set Text", Type: "input"},
		{Keywords: []string{"강의자", "선생님", "instructor"}, Action: "Set Text", Type: "input"},
		{Keywords: []string{"토론", "discussion"}, Action: "Set Text", Type: "input"},
		{Keywords: []string{"질문", "question"}, Action: "Set Text", Type: "input"},
		{Keywords: []string{"주소입력", "url입력"}, Action: "Set Text", Type: "input"},

		// learning domain
		{Keywords: []string{"학습", "수강", "learning"}, Action: "Navigate To Url", Type: "navigation"},
		{Keywords: []string{"시험", "테스트", "exam"}, Action: "Navigate To Url", Type: "navigation"},
		{Keywords: []string{"채점", "점수", "score"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"진도", "progress"}, Action: "Get Attribute", Type: "verification"},
		{Keywords: []string{"완주", "completion"}, Action: "Verify Element Text", Type: "verification"},
		{Keywords: []string{"수료", "certificate"}, Action: "Verify Element Present", Type: "verification"},
		{Keywords: []string{"과제", "assignment"}, Action: "Upload File", Type: "action"},

		// verification phrases; compound forms only, so common words like
		// 확인/개수 stay reachable for decomposition without matching every
		// sentence that contains them
		{Keywords: []string{"결과 확인", "정상 확인"}, Action: "Verify Element Present", Type: "verification"},
		{Keywords: []string{"파일 개수", "영상 개수"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"문구 노출", "메시지 노출"}, Action: "Verify Element Visible", Type: "verification"},
		{Keywords: []string{"에러 메시지", "오류 문구"}, Action: "Verify Element Text", Type: "verification"},

		// blockchain domain
		{Keywords: []string{"토큰", "token"}, Action: "Get Text", Type: "crypto"},
		{Keywords: []string{"컨트랙트", "contract"}, Action: "Execute JavaScript", Type: "crypto"},
		{Keywords: []string{"지갑", "wallet"}, Action: "Get Text", Type: "crypto"},
		{Keywords: []string{"트랜잭션", "transaction"}, Action: "Get Text", Type: "crypto"},
		{Keywords: []string{"해시", "hash"}, Action: "Get Text", Type: "crypto"},
		{Keywords: []string{"가스", "gas"}, Action: "Get Text", Type: "crypto"},

		// datetime
		{Keywords: []string{"달력", "캘린더", "calendar"}, Action: "Click", Type: "datetime"},
		{Keywords: []string{"예약", "reservation"}, Action: "Click", Type: "datetime"},
		{Keywords: []string{"약속", "appointment"}, Action: "Set Text", Type: "datetime"},

		// technical
		{Keywords: []string{"api", "웹서비스"}, Action: "Execute JavaScript", Type: "technical"},
		{Keywords: []string{"json", "데이터포맷"}, Action: "Get Text", Type: "technical"},
		{Keywords: []string{"html", "웹페이지"}, Action: "Get Page Source", Type: "technical"},
		{Keywords: []string{"로컬스토리지", "localstorage"}, Action: "Execute JavaScript", Type: "technical"},
		{Keywords: []string{"세션", "session"}, Action: "Get Cookie", Type: "technical"},
		{Keywords: []string{"웹소켓", "websocket"}, Action: "Execute JavaScript", Type: "technical"},

		// window/page handling
		{Keywords: []string{"전체화면", "fullscreen"}, Action: "Maximize Window", Type: "navigation"},
		{Keywords: []string{"이전화면", "뒤로가기"}, Action: "Back", Type: "navigation"},
		{Keywords: []string{"다음화면", "앞으로가기"}, Action: "Forward", Type: "navigation"},
		{Keywords: []string{"페이지소스", "소스보기"}, Action: "Get Page Source", Type: "technical"},

		{Keywords: []string{"스크린샷", "screenshot"}, Action: "Take Screenshot", Type: "action"},
		{Keywords: []string{"다운로드 폴더", "저장 폴더"}, Action: "Verify File Downloaded", Type: "verification"},
	}
}
