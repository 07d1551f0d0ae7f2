package groovy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := New()

	script, ok := r.Render("Click", "로그인 버튼")
	require.True(t, ok)
	assert.Equal(t, "WebUI.click(findTestObject('Object Repository/로그인버튼Element'))", script)

	script, ok = r.Render("Get Text", "제목")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(script, "def result = WebUI.getText("))
}

func TestRenderer_Render_PlainTemplates(t *testing.T) {
	r := New()

	script, ok := r.Render("Navigate To Url", "페이지")
	require.True(t, ok)
	assert.Equal(t, "WebUI.navigateToUrl('target_url')", script)

	script, ok = r.Render("Delay", "대기")
	require.True(t, ok)
	assert.Equal(t, "WebUI.delay(3)", script)
}

func TestRenderer_Render_NegativeActions(t *testing.T) {
	r := New()

	script, ok := r.Render("Verify Element Not Present", "팝업")
	require.True(t, ok)
	assert.Contains(t, script, "verifyElementNotPresent")

	script, ok = r.Render("Verify Upload Not Present", "파일")
	require.True(t, ok)
	assert.Contains(t, script, "_UploadResult")
}

func TestRenderer_Render_TextAssertion(t *testing.T) {
	r := New()

	script, ok := r.Render("Verify Text Not Present", "오류 메시지")
	require.True(t, ok)
	assert.Equal(t, "WebUI.verifyTextNotPresent('오류 메시지', false)", script)
}

func TestRenderer_Render_UnknownAction(t *testing.T) {
	r := New()

	_, ok := r.Render("Teleport", "버튼")
	assert.False(t, ok)
}

func TestRenderer_RenderWithStates(t *testing.T) {
	r := New()

	script, ok := r.RenderWithStates("Click", "버튼", []string{"노출"})
	require.True(t, ok)
	lines := strings.Split(script, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "노출 상태 확인 완료")

	// No states, no extra comment.
	script, ok = r.RenderWithStates("Click", "버튼", nil)
	require.True(t, ok)
	assert.NotContains(t, script, "상태 확인")
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder("이상한 문구")
	assert.True(t, strings.HasPrefix(p, "// TODO:"))
	assert.Contains(t, p, "이상한 문구")
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "로그인버튼Element", ObjectName("로그인 버튼"))
	assert.Equal(t, "클릭Element", ObjectName("클릭"))
	assert.Equal(t, "element", ObjectName("   "))
}
