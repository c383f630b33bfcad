package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "short content used as-is",
			content: "画一个猫图标",
			want:    "画一个猫图标",
		},
		{
			name:    "whitespace collapsed",
			content: "  画一个   猫\n图标  ",
			want:    "画一个 猫 图标",
		},
		{
			name:    "long content truncated with ellipsis",
			content: strings.Repeat("图", 30),
			want:    strings.Repeat("图", 20) + "...",
		},
		{
			name:    "exactly at the limit keeps everything",
			content: strings.Repeat("a", 20),
			want:    strings.Repeat("a", 20),
		},
		{
			name:    "empty keeps the default title",
			content: "",
			want:    DefaultTitle,
		},
		{
			name:    "whitespace only keeps the default title",
			content: "  \n\t ",
			want:    DefaultTitle,
		},
		{
			name:    "rune counting not byte counting",
			content: "生成一套应用商店风格的天气应用图标要有太阳月亮和云朵",
			want:    "生成一套应用商店风格的天气应用图标要有太" + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.content))
		})
	}
}
