package mapping

// PrimaryRecords returns the primary data set: high-frequency phrasing
// harvested from recorded test runs. It is searched before the secondary
// set, so entries here win ties.
func PrimaryRecords() []Record {
	return []Record{
		{Keywords: []string{"검증", "verify"}, Action: "Verify Element Attribute Value", Type: "verification"},
		{Keywords: []string{"노출", "표시", "display", "show"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"업로드", "파일업로드", "upload"}, Action: "Upload File", Type: "action"},
		{Keywords: []string{"팝업", "알럿", "popup", "alert"}, Action: "Accept Alert", Type: "alert"},
		{Keywords: []string{"비밀번호", "패스워드", "password"}, Action: "Set Encrypted Text", Type: "input"},
		{Keywords: []string{"완료", "제출", "submit"}, Action: "Submit", Type: "action"},
		{Keywords: []string{"버튼", "클릭버튼", "button"}, Action: "Click", Type: "action"},
		{Keywords: []string{"입력", "텍스트입력", "input"}, Action: "Set Text", Type: "input"},
		{Keywords: []string{"변경", "수정", "편집", "modify"}, Action: "Set Text", Type: "modification"},
		{Keywords: []string{"체크박스", "checkbox"}, Action: "Check", Type: "checkbox"},
		{Keywords: []string{"선택", "셀렉트", "select"}, Action: "Select Option By Label", Type: "selection"},
		{Keywords: []string{"클릭", "누르기", "click"}, Action: "Click", Type: "action"},
		{Keywords: []string{"대기", "기다리기", "wait"}, Action: "Delay", Type: "wait"},
		{Keywords: []string{"새로고침", "리프레시", "refresh"}, Action: "Refresh", Type: "action"},
		{Keywords: []string{"이동", "네비게이션", "navigate"}, Action: "Navigate To Url", Type: "navigation"},
		{Keywords: []string{"스크롤", "scroll"}, Action: "Scroll To Element", Type: "action"},
		{Keywords: []string{"드래그", "끌기", "drag"}, Action: "Drag And Drop", Type: "action"},
		{Keywords: []string{"호버", "마우스오버", "hover"}, Action: "Mouse Over", Type: "action"},
		{Keywords: []string{"더블클릭", "두번클릭"}, Action: "Double Click", Type: "action"},
		{Keywords: []string{"우클릭", "오른쪽클릭"}, Action: "Right Click", Type: "action"},
		{Keywords: []string{"탭", "탭이동"}, Action: "Switch To Window", Type: "navigation"},
		{Keywords: []string{"윈도우", "창"}, Action: "Switch To Window", Type: "navigation"},
		{Keywords: []string{"프레임", "iframe"}, Action: "Switch To Frame", Type: "navigation"},
		{Keywords: []string{"알림", "notification"}, Action: "Get Alert Text", Type: "verification"},
		{Keywords: []string{"드래그 업로드", "드래그업로드", "드래그 업로드 시"}, Action: "Drag And Drop", Type: "action"},
		{Keywords: []string{"업로드 시도", "드래그 시도", "클릭 시도"}, Action: "Attempt Action", Type: "attempt"},
		{Keywords: []string{"파일 드래그", "첨부파일 드래그"}, Action: "Drag And Drop", Type: "action"},
		{Keywords: []string{"시도시", "시도 시", "동작시"}, Action: "On Event", Type: "event"},
		{Keywords: []string{"쿠키", "cookie"}, Action: "Get Cookie", Type: "verification"},
		{Keywords: []string{"자바스크립트", "javascript"}, Action: "Execute JavaScript", Type: "action"},
		{Keywords: []string{"스타일", "css"}, Action: "Get CSS Value", Type: "verification"},
		{Keywords: []string{"동영상", "영상", "재생", "video"}, Action: "Click", Type: "media"},
		{Keywords: []string{"상태", "status"}, Action: "Get Attribute", Type: "verification"},
		{Keywords: []string{"이메일", "메일", "email"}, Action: "Set Text", Type: "input"},
		{Keywords: []string{"정보", "데이터", "info"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"클라이언트", "계정", "account"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"비활성화", "disable"}, Action: "Verify Element Not Clickable", Type: "verification"},
		{Keywords: []string{"재설정", "초기화", "reset"}, Action: "Clear Text", Type: "modification"},
		{Keywords: []string{"조회", "검색", "search"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"요청", "등록", "발송", "send"}, Action: "Submit", Type: "action"},
		{Keywords: []string{"파일", "파일선택", "file"}, Action: "Upload File", Type: "action"},
		{Keywords: []string{"자막", "캡션", "subtitle"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"카운트", "count"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"목록", "리스트", "list"}, Action: "Get Text", Type: "verification"},
		{Keywords: []string{"로그인", "login"}, Action: "Submit", Type: "action"},
		{Keywords: []string{"로그아웃", "logout"}, Action: "Click", Type: "action"},
		{Keywords: []string{"토스트", "toast"}, Action: "Verify Element Visible", Type: "verification"},
		{Keywords: []string{"스피너", "로딩", "loading"}, Action: "Wait For Element Not Present", Type: "wait"},
		{Keywords: []string{"유효성", "validation"}, Action: "Verify Element Attribute Value", Type: "verification"},
	}
}
