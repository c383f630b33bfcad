// Package style provides the icon style catalog.
//
// A Style bundles a color palette, the model prompt that teaches the style's
// visual language, and the SVG frame that wraps generated inner markup into a
// finished 120x120 icon. The Registry holds the built-in catalog and is
// passed by reference to consumers.
package style

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownStyle indicates a style ID not present in the registry.
var ErrUnknownStyle = errors.New("unknown style")

// Palette holds the four hex colors of a style.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
}

// Style describes one icon style.
//
// frame is the SVG document template with a {content} placeholder for the
// generated inner markup. prompt is the model prompt template with a
// {subject} placeholder.
type Style struct {
	ID          string
	Name        string
	Platform    string
	Description string
	Palette     Palette

	frame  string
	prompt string
}

// Prompt builds the model prompt for drawing subject in this style.
func (s Style) Prompt(subject string) string {
	return strings.ReplaceAll(s.prompt, "{subject}", subject)
}

// idAttrPattern matches id attributes of gradients, filters and patterns
// defined inside a frame's <defs>.
var idAttrPattern = regexp.MustCompile(`\bid="([A-Za-z0-9_-]+)"`)

// Decorate wraps inner SVG markup into the style's frame. A non-empty uid is
// appended to every def ID and url(#...) reference, including ones the model
// emitted in content, so several icons can be inlined in one document without
// gradient or filter collisions.
func (s Style) Decorate(content, uid string) string {
	out := strings.ReplaceAll(s.frame, "{content}", content)
	if uid == "" {
		return out
	}
	for _, m := range idAttrPattern.FindAllStringSubmatch(s.frame, -1) {
		id := m[1]
		out = strings.ReplaceAll(out, `id="`+id+`"`, `id="`+id+`-`+uid+`"`)
		out = strings.ReplaceAll(out, "url(#"+id+")", "url(#"+id+"-"+uid+")")
	}
	return out
}

// Registry is an ordered style collection. The zero value is empty; use
// NewRegistry for the built-in catalog.
type Registry struct {
	styles []Style
	index  map[string]int
}

// NewRegistry returns a registry preloaded with the 16 built-in styles in
// catalog order.
func NewRegistry() *Registry {
	r := &Registry{index: make(map[string]int)}
	for _, s := range []Style{
		appstoreStyle(),
		materialStyle(),
		neonStyle(),
		sereneStyle(),
		atelierStyle(),
		glassmorphismStyle(),
		neumorphismStyle(),
		isometricStyle(),
		gradientStyle(),
		minimalStyle(),
		cyberpunkStyle(),
		retroStyle(),
		watercolorStyle(),
		clayStyle(),
		auroraStyle(),
		metallicStyle(),
	} {
		r.Register(s)
	}
	return r
}

// Register adds a style, replacing any existing style with the same ID.
func (r *Registry) Register(s Style) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[s.ID]; ok {
		r.styles[i] = s
		return
	}
	r.index[s.ID] = len(r.styles)
	r.styles = append(r.styles, s)
}

// Get returns the style with the given ID.
func (r *Registry) Get(id string) (Style, error) {
	i, ok := r.index[id]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, id)
	}
	return r.styles[i], nil
}

// Has reports whether the registry contains the given ID.
func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// List returns all styles in registration order.
func (r *Registry) List() []Style {
	out := make([]Style, len(r.styles))
	copy(out, r.styles)
	return out
}

// IDs returns all style IDs in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.styles))
	for i, s := range r.styles {
		ids[i] = s.ID
	}
	return ids
}
