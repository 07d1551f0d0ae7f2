// Package groovy renders resolved actions into Katalon-style Groovy
// script lines.
package groovy

import (
	"fmt"
	"strings"
)

// Renderer produces Groovy statements keyed by action identifier.
// Zero value is ready to use.
type Renderer struct{}

// New returns a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// templates maps action identifiers to Groovy statement formats. The
// single %s verb is the Object Repository element name derived from the
// keyword.
var templates = map[string]string{
	"Click":                  "WebUI.click(findTestObject('Object Repository/%s'))",
	"Double Click":           "WebUI.doubleClick(findTestObject('Object Repository/%s'))",
	"Right Click":            "WebUI.rightClick(findTestObject('Object Repository/%s'))",
	"Mouse Over":             "WebUI.mouseOver(findTestObject('Object Repository/%s'))",
	"Set Text":               "WebUI.setText(findTestObject('Object Repository/%s'), 'input_text')",
	"Set Encrypted Text":     "WebUI.setEncryptedText(findTestObject('Object Repository/%s'), 'encrypted_value')",
	"Clear Text":             "WebUI.clearText(findTestObject('Object Repository/%s'))",
	"Get Text":               "def result = WebUI.getText(findTestObject('Object Repository/%s'))",
	"Get Attribute":          "def attr = WebUI.getAttribute(findTestObject('Object Repository/%s'), 'attribute_name')",
	"Get CSS Value":          "def cssValue = WebUI.getCSSValue(findTestObject('Object Repository/%s'), 'css_property')",
	"Submit":                 "WebUI.submit(findTestObject('Object Repository/%s'))",
	"Verify Element Present": "WebUI.verifyElementPresent(findTestObject('Object Repository/%s'), 10)",
	"Verify Element Visible": "WebUI.verifyElementVisible(findTestObject('Object Repository/%s'))",
	"Verify Element Text":    "WebUI.verifyElementText(findTestObject('Object Repository/%s'), 'expected_text')",
	"Verify Element Checked": "WebUI.verifyElementChecked(findTestObject('Object Repository/%s'), 10)",
	"Verify Element Attribute Value": "WebUI.verifyElementAttributeValue(findTestObject('Object Repository/%s'), 'attribute_name', 'expected_value', 10)",
	"Verify Element Clickable":       "WebUI.verifyElementClickable(findTestObject('Object Repository/%s'))",
	"Upload File":                    "WebUI.uploadFile(findTestObject('Object Repository/%s'), '/path/to/file')",
	"Select Option By Label":         "WebUI.selectOptionByLabel(findTestObject('Object Repository/%s'), 'option_label', false)",
	"Check":                          "WebUI.check(findTestObject('Object Repository/%s'))",
	"Drag And Drop":                  "WebUI.dragAndDropToObject(findTestObject('Object Repository/%s'), findTestObject('Object Repository/TargetElement'))",
	"Scroll To Element":              "WebUI.scrollToElement(findTestObject('Object Repository/%s'), 10)",
	"Switch To Frame":                "WebUI.switchToFrame(findTestObject('Object Repository/%s'), 10)",
	"Wait For Element Present":       "WebUI.waitForElementPresent(findTestObject('Object Repository/%s'), 10)",
	"Wait For Element Not Present":   "WebUI.waitForElementNotPresent(findTestObject('Object Repository/%s'), 10)",

	"Verify Element Not Present":   "WebUI.verifyElementNotPresent(findTestObject('Object Repository/%s'), 10)",
	"Verify Element Not Visible":   "WebUI.verifyElementNotVisible(findTestObject('Object Repository/%s'))",
	"Verify Element Not Clickable": "WebUI.verifyElementNotClickable(findTestObject('Object Repository/%s'))",
	"Verify Element Not Checked":   "WebUI.verifyElementNotChecked(findTestObject('Object Repository/%s'), 10)",
	"Verify Upload Not Present":    "WebUI.verifyElementNotPresent(findTestObject('Object Repository/%s_UploadResult'), 10)",
	"Verify Element Read Only":     "WebUI.verifyElementHasAttribute(findTestObject('Object Repository/%s'), 'readonly', 10)",
}

// keywordless templates take no object name at all.
var plainTemplates = map[string]string{
	"Navigate To Url":  "WebUI.navigateToUrl('target_url')",
	"Refresh":          "WebUI.refresh()",
	"Back":             "WebUI.back()",
	"Forward":          "WebUI.forward()",
	"Delay":            "WebUI.delay(3)",
	"Accept Alert":     "WebUI.acceptAlert()",
	"Get Alert Text":   "def alertText = WebUI.getAlertText()",
	"Switch To Window": "WebUI.switchToWindowIndex(1)",
	"Get Cookie":       "def cookie = WebUI.getAllCookies()",
	"Execute JavaScript": "WebUI.executeJavaScript('// custom script', null)",
}

// Render produces the Groovy statement for an action. Returns false when
// no template is registered so callers can emit a placeholder instead.
func (r *Renderer) Render(action, keyword string) (string, bool) {
	if action == "Verify Text Not Present" {
		// Text assertions interpolate the raw keyword, not an object name.
		return fmt.Sprintf("WebUI.verifyTextNotPresent('%s', false)", keyword), true
	}
	if tmpl, ok := plainTemplates[action]; ok {
		return tmpl, true
	}
	if tmpl, ok := templates[action]; ok {
		return fmt.Sprintf(tmpl, ObjectName(keyword)), true
	}
	return "", false
}

// RenderWithStates appends a state-verification comment when the phrase
// carried state words.
func (r *Renderer) RenderWithStates(action, keyword string, states []string) (string, bool) {
	base, ok := r.Render(action, keyword)
	if !ok {
		return "", false
	}
	if len(states) > 0 {
		base += fmt.Sprintf("\nWebUI.comment(\"%s 상태 확인 완료\")", strings.Join(states, " "))
	}
	return base, true
}

// Placeholder renders the commented TODO line used for unmapped phrases.
// Script generation continues past unmapped lines rather than failing.
func Placeholder(keyword string) string {
	return fmt.Sprintf("// TODO: '%s' 매핑 필요 - 수동으로 구현하세요", keyword)
}

// ObjectName derives an Object Repository element name from a keyword:
// whitespace is collapsed away and an Element suffix appended. Empty
// keywords fall back to a generic name.
func ObjectName(keyword string) string {
	joined := strings.Join(strings.Fields(keyword), "")
	if joined == "" {
		return "element"
	}
	return joined + "Element"
}
