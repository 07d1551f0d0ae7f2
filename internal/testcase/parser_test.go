package testcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `Summary: 파일 업로드 기능 확인

Precondition:
1. 로그인 완료
2. 업로드 페이지 진입

Steps:
1. 파일 선택 버튼 클릭
2. 테스트 파일 선택
- 업로드 버튼 클릭

Expected Result:
1. 업로드 완료 문구 노출
2. 파일 목록에 추가 확인
`

func TestParse(t *testing.T) {
	doc := Parse(sampleDocument)

	require.Len(t, doc.Summary, 1)
	assert.Equal(t, "파일 업로드 기능 확인", doc.Summary[0])

	require.Len(t, doc.Precondition, 2)
	assert.Equal(t, "로그인 완료", doc.Precondition[0])

	require.Len(t, doc.Steps, 3)
	assert.Equal(t, "파일 선택 버튼 클릭", doc.Steps[0])
	assert.Equal(t, "업로드 버튼 클릭", doc.Steps[2], "bullet markers are stripped")

	require.Len(t, doc.ExpectedResult, 2)
	assert.Equal(t, "업로드 완료 문구 노출", doc.ExpectedResult[0])
}

func TestParse_HeaderVariants(t *testing.T) {
	doc := Parse("PRE-CONDITION\n조건 하나\nEXPECTED RESULTS:\n결과 하나")

	assert.Equal(t, []string{"조건 하나"}, doc.Precondition)
	assert.Equal(t, []string{"결과 하나"}, doc.ExpectedResult)
}

func TestParse_BareListDefaultsToSteps(t *testing.T) {
	doc := Parse("1. 클릭\n2. 입력")

	assert.Empty(t, doc.Summary)
	assert.Equal(t, []string{"클릭", "입력"}, doc.Steps)
}

func TestParse_Empty(t *testing.T) {
	doc := Parse("")
	assert.True(t, doc.Empty())

	doc = Parse("\n\n   \n")
	assert.True(t, doc.Empty())
}

func TestDocument_Phrases(t *testing.T) {
	doc := Document{Steps: []string{"클릭"}}

	assert.Equal(t, []string{"클릭"}, doc.Phrases(SectionSteps))
	assert.Nil(t, doc.Phrases(SectionSummary))
	assert.Nil(t, doc.Phrases(Section("기타")))
}
