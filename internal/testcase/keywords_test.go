package testcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   []string
	}{
		{
			name:   "punctuation stripped",
			phrase: "로그인 버튼을 클릭! (필수)",
			want:   []string{"로그인", "버튼을", "클릭", "필수"},
		},
		{
			name:   "single characters dropped",
			phrase: "창 이 열림",
			want:   []string{"열림"},
		},
		{
			name:   "duplicates removed case insensitively",
			phrase: "Click 버튼 click 버튼",
			want:   []string{"click", "버튼"},
		},
		{
			name:   "empty",
			phrase: "  ...  ",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.phrase))
		})
	}
}
