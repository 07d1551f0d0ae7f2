package combiner

import "github.com/fyrsmithlabs/kmapd/internal/lexicon"

// InferredAction is an action guess for a combination, with the confidence
// of the inference itself.
type InferredAction struct {
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
	SourceWord string  `json:"source_word,omitempty"`
}

// DefaultAction is used when no word in a combination implies an action.
const DefaultAction = "Get Text"

// Inference confidence tiers by grammatical role of the deciding word.
const (
	verbConfidence    = 0.9
	stateConfidence   = 0.7
	nounConfidence    = 0.5
	defaultConfidence = 0.3
)

var verbActions = map[string]string{
	"클릭":   "Click",
	"선택":   "Select Option By Label",
	"누르기":  "Click",
	"터치":   "Click",
	"입력":   "Set Text",
	"타이핑":  "Set Text",
	"확인":   "Verify Element Present",
	"검증":   "Verify Element Present",
	"체크":   "Verify Element Present",
	"검사":   "Verify Element Present",
	"이동":   "Navigate To Url",
	"드래그":  "Drag And Drop",
	"끌기":   "Drag And Drop",
	"스크롤":  "Scroll To Element",
	"업로드":  "Upload File",
	"다운로드": "Click",
	"저장":   "Submit",
	"불러오기": "Click",
	"삭제":   "Click",
	"제거":   "Click",
	"추가":   "Click",
	"생성":   "Click",
	"수정":   "Set Text",
	"변경":   "Set Text",
	"설정":   "Set Text",
	"대기":   "Delay",
	"새로고침": "Refresh",
}

var stateActions = map[string]string{
	"노출":   "Verify Element Visible",
	"표시":   "Verify Element Visible",
	"보임":   "Verify Element Visible",
	"숨김":   "Verify Element Not Visible",
	"활성화":  "Verify Element Clickable",
	"비활성화": "Verify Element Not Clickable",
	"선택됨":  "Verify Element Checked",
	"완료":   "Verify Element Text",
	"성공":   "Verify Element Text",
	"실패":   "Verify Element Text",
	"로딩":   "Wait For Element Not Present",
	"재생":   "Verify Element Attribute Value",
	"정지":   "Verify Element Attribute Value",
}

var nounActions = map[string]string{
	"버튼":   "Click",
	"링크":   "Click",
	"메뉴":   "Click",
	"탭":    "Click",
	"텍스트":  "Get Text",
	"문구":   "Get Text",
	"메시지":  "Get Text",
	"제목":   "Get Text",
	"입력란":  "Set Text",
	"필드":   "Set Text",
	"팝업":   "Verify Element Present",
	"알림":   "Get Alert Text",
	"이미지":  "Verify Element Visible",
	"영상":   "Verify Element Visible",
	"파일":   "Upload File",
	"페이지":  "Verify Element Present",
	"화면":   "Verify Element Present",
	"목록":   "Get Text",
	"리스트":  "Get Text",
	"카운트":  "Get Text",
	"개수":   "Get Text",
	"체크박스": "Check",
}

// InferAction picks an action for a combination by scanning the words in
// priority order of grammatical role: verbs decide first, then states,
// then nouns. When nothing matches, the default text-read action applies.
func InferAction(words []ClassifiedWord) InferredAction {
	for _, w := range words {
		if w.Role != lexicon.RoleVerb {
			continue
		}
		if action, ok := verbActions[w.Word]; ok {
			return InferredAction{Action: action, Confidence: verbConfidence, SourceWord: w.Word}
		}
	}
	for _, w := range words {
		if w.Role != lexicon.RoleState {
			continue
		}
		if action, ok := stateActions[w.Word]; ok {
			return InferredAction{Action: action, Confidence: stateConfidence, SourceWord: w.Word}
		}
	}
	for _, w := range words {
		if w.Role != lexicon.RoleNoun {
			continue
		}
		if action, ok := nounActions[w.Word]; ok {
			return InferredAction{Action: action, Confidence: nounConfidence, SourceWord: w.Word}
		}
	}
	return InferredAction{Action: DefaultAction, Confidence: defaultConfidence}
}
