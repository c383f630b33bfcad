package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryCatalogOrder(t *testing.T) {
	r := NewRegistry()

	want := []string{
		"appstore", "material", "neon", "serene", "atelier",
		"glassmorphism", "neumorphism", "isometric", "gradient", "minimal",
		"cyberpunk", "retro", "watercolor", "clay", "aurora", "metallic",
	}
	assert.Equal(t, want, r.IDs())
	assert.Len(t, r.List(), 16)
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	s, err := r.Get("neon")
	require.NoError(t, err)
	assert.Equal(t, "neon", s.ID)
	assert.Equal(t, "霓虹", s.Name)
	assert.NotEmpty(t, s.Palette.Primary)

	_, err = r.Get("vaporwave")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStyle)
	assert.False(t, r.Has("vaporwave"))
	assert.True(t, r.Has("neon"))
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()

	custom := Style{ID: "neon", Name: "replacement"}
	r.Register(custom)

	s, err := r.Get("neon")
	require.NoError(t, err)
	assert.Equal(t, "replacement", s.Name)
	assert.Len(t, r.List(), 16, "replacing must not grow the catalog")

	r.Register(Style{ID: "extra"})
	assert.Len(t, r.List(), 17)
	assert.Equal(t, "extra", r.IDs()[16])
}

func TestRegistryZeroValue(t *testing.T) {
	var r Registry

	r.Register(Style{ID: "only"})
	assert.True(t, r.Has("only"))
	assert.Equal(t, []string{"only"}, r.IDs())
}

func TestStylePrompt(t *testing.T) {
	r := NewRegistry()

	for _, s := range r.List() {
		p := s.Prompt("咖啡杯")
		assert.Contains(t, p, "咖啡杯", "style %s must interpolate the subject", s.ID)
		assert.NotContains(t, p, "{subject}", "style %s left the placeholder behind", s.ID)
	}
}

func TestStyleFramesWellFormed(t *testing.T) {
	r := NewRegistry()

	for _, s := range r.List() {
		assert.Contains(t, s.frame, "{content}", "style %s frame misses the content slot", s.ID)
		assert.Contains(t, s.frame, `viewBox="0 0 120 120"`, "style %s frame", s.ID)
		assert.True(t, strings.HasPrefix(s.frame, "<svg"), "style %s frame must be a full document", s.ID)
		assert.True(t, strings.HasSuffix(s.frame, "</svg>"), "style %s frame must be a full document", s.ID)
	}
}

func TestDecorateInsertsContent(t *testing.T) {
	r := NewRegistry()
	s, err := r.Get("minimal")
	require.NoError(t, err)

	inner := `<circle cx="60" cy="60" r="20" fill="#1D1D1F"/>`
	out := s.Decorate(inner, "")
	assert.Contains(t, out, inner)
	assert.NotContains(t, out, "{content}")
}

func TestDecorateRewritesDefIDs(t *testing.T) {
	r := NewRegistry()
	s, err := r.Get("metallic")
	require.NoError(t, err)

	out := s.Decorate(`<rect x="40" y="40" width="40" height="40"/>`, "a1b2")

	assert.Contains(t, out, `id="gold-gradient-a1b2"`)
	assert.Contains(t, out, `url(#gold-gradient-a1b2)`)
	assert.NotContains(t, out, `id="gold-gradient"`)
	assert.NotContains(t, out, `url(#gold-gradient)`)
}

func TestDecorateRewritesContentRefs(t *testing.T) {
	// Several prompts tell the model to fill shapes with the frame's own
	// gradients, so refs inside content must be rewritten too.
	r := NewRegistry()
	s, err := r.Get("metallic")
	require.NoError(t, err)

	inner := `<path d="M35 70 L85 70 Z" fill="url(#gold-gradient)"/>`
	out := s.Decorate(inner, "x9")

	assert.NotContains(t, out, "url(#gold-gradient)")
	assert.Contains(t, out, `fill="url(#gold-gradient-x9)"`)
}

func TestDecorateLeavesForeignIDs(t *testing.T) {
	r := NewRegistry()
	s, err := r.Get("minimal")
	require.NoError(t, err)

	// An ID the frame never defines stays untouched.
	inner := `<circle cx="60" cy="60" r="10" fill="url(#model-made-up)"/>`
	out := s.Decorate(inner, "u7")
	assert.Contains(t, out, "url(#model-made-up)")
}

func TestDecorateDistinctUIDsAvoidCollisions(t *testing.T) {
	r := NewRegistry()
	s, err := r.Get("aurora")
	require.NoError(t, err)

	a := s.Decorate("<g/>", "one")
	b := s.Decorate("<g/>", "two")

	for _, m := range idAttrPattern.FindAllStringSubmatch(a, -1) {
		assert.True(t, strings.HasSuffix(m[1], "-one"), "id %q not namespaced", m[1])
		assert.NotContains(t, b, `id="`+m[1]+`"`)
	}
}
