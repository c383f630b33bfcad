package icon

import (
	"context"
	"strings"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiconic/aiconic/internal/style"
	"github.com/aiconic/aiconic/internal/testutil"
)

func TestCleanMarkup(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare markup passes through",
			raw:  `<circle cx="60" cy="60" r="20"/>`,
			want: `<circle cx="60" cy="60" r="20"/>`,
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "\n  <rect x=\"40\" y=\"40\"/>  \n",
			want: `<rect x="40" y="40"/>`,
		},
		{
			name: "svg-tagged code fence stripped",
			raw:  "```svg\n<path d=\"M0 0\"/>\n```",
			want: `<path d="M0 0"/>`,
		},
		{
			name: "xml-tagged code fence stripped",
			raw:  "```xml\n<path d=\"M0 0\"/>\n```",
			want: `<path d="M0 0"/>`,
		},
		{
			name: "bare code fence stripped",
			raw:  "```\n<path d=\"M0 0\"/>\n```",
			want: `<path d="M0 0"/>`,
		},
		{
			name: "full document envelope unwrapped",
			raw:  `<svg viewBox="0 0 120 120" xmlns="http://www.w3.org/2000/svg"><circle cx="60" cy="60" r="10"/></svg>`,
			want: `<circle cx="60" cy="60" r="10"/>`,
		},
		{
			name: "fence around full document",
			raw:  "```svg\n<svg viewBox=\"0 0 120 120\">\n<g/>\n</svg>\n```",
			want: "<g/>",
		},
		{
			name: "empty input",
			raw:  "   \n ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMarkup(tt.raw))
		})
	}
}

func newTestGenerator(t *testing.T, mock *testutil.MockLLM) *Generator {
	t.Helper()

	g := genkit.Init(context.Background())
	mock.RegisterModel(g)

	gen, err := New(Config{
		Genkit:    g,
		Styles:    style.NewRegistry(),
		Logger:    testutil.DiscardLogger(),
		ModelName: "mock/test-model",
	})
	require.NoError(t, err)
	return gen
}

func TestGenerateProducesFramedIcon(t *testing.T) {
	mock := testutil.NewMockLLM(`<circle cx="60" cy="60" r="25" fill="#FF0000"/>`)
	gen := newTestGenerator(t, mock)

	icon, err := gen.Generate(context.Background(), GenerateRequest{
		Name:    "cat",
		Prompt:  "一只猫",
		StyleID: "minimal",
	})
	require.NoError(t, err)

	assert.Equal(t, "cat", icon.Name)
	assert.Equal(t, "minimal", icon.StyleID)
	assert.NotEmpty(t, icon.StyleName)
	assert.True(t, strings.HasPrefix(icon.SVG, "<svg"), "SVG must be a full document")
	assert.Contains(t, icon.SVG, `<circle cx="60" cy="60" r="25" fill="#FF0000"/>`)
	assert.NotContains(t, icon.SVG, "{content}")
}

func TestGenerateCleansFencedOutput(t *testing.T) {
	mock := testutil.NewMockLLM("```svg\n<rect x=\"40\" y=\"40\" width=\"40\" height=\"40\"/>\n```")
	gen := newTestGenerator(t, mock)

	icon, err := gen.Generate(context.Background(), GenerateRequest{
		Prompt:  "a box",
		StyleID: "appstore",
	})
	require.NoError(t, err)
	assert.Contains(t, icon.SVG, `<rect x="40" y="40" width="40" height="40"/>`)
	assert.NotContains(t, icon.SVG, "```")
}

func TestGenerateFallbackOnShortMarkup(t *testing.T) {
	mock := testutil.NewMockLLM("ok")
	gen := newTestGenerator(t, mock)

	icon, err := gen.Generate(context.Background(), GenerateRequest{
		Prompt:  "a dot",
		StyleID: "minimal",
	})
	require.NoError(t, err)

	reg := style.NewRegistry()
	st, err := reg.Get("minimal")
	require.NoError(t, err)
	assert.Contains(t, icon.SVG, `<circle cx="60" cy="60" r="20" fill="`+st.Palette.Primary+`"/>`)
}

func TestGenerateUnknownStyle(t *testing.T) {
	mock := testutil.NewMockLLM("<g/>")
	gen := newTestGenerator(t, mock)

	_, err := gen.Generate(context.Background(), GenerateRequest{
		Prompt:  "a cat",
		StyleID: "vaporwave",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, style.ErrUnknownStyle)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	mock := testutil.NewMockLLM("<g/>")
	gen := newTestGenerator(t, mock)

	_, err := gen.Generate(context.Background(), GenerateRequest{
		Prompt:  "  ",
		StyleID: "minimal",
	})
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestGenerateDefaultsNameToPrompt(t *testing.T) {
	mock := testutil.NewMockLLM(`<circle cx="60" cy="60" r="30" fill="#000000"/>`)
	gen := newTestGenerator(t, mock)

	icon, err := gen.Generate(context.Background(), GenerateRequest{
		Prompt:  "rocket",
		StyleID: "neon",
	})
	require.NoError(t, err)
	assert.Equal(t, "rocket", icon.Name)
}

func TestGenerateNamespacesGradientIDs(t *testing.T) {
	mock := testutil.NewMockLLM(`<path d="M35 70 L85 70 Z" fill="url(#gold-gradient)" stroke="none"/>`)
	gen := newTestGenerator(t, mock)

	icon, err := gen.Generate(context.Background(), GenerateRequest{
		Prompt:  "crown",
		StyleID: "metallic",
	})
	require.NoError(t, err)
	assert.NotContains(t, icon.SVG, `url(#gold-gradient)`)
	assert.Contains(t, icon.SVG, `url(#gold-gradient-`)
}

func TestConfigValidation(t *testing.T) {
	_, err := New(Config{Styles: style.NewRegistry()})
	require.Error(t, err)

	g := genkit.Init(context.Background())
	_, err = New(Config{Genkit: g})
	require.Error(t, err)
}
