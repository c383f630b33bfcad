// Package icon synthesizes finished SVG icons from model output.
package icon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/google/uuid"

	"github.com/aiconic/aiconic/internal/style"
)

// markupMinLength is the shortest cleaned markup accepted before the
// fallback shape is substituted.
const markupMinLength = 20

// ErrEmptyPrompt indicates a generate request without a subject prompt.
var ErrEmptyPrompt = errors.New("prompt is required")

// GenerateRequest describes one icon to synthesize.
type GenerateRequest struct {
	Name       string   // display name for the icon
	Prompt     string   // subject description fed into the style prompt
	StyleID    string   // registry ID of the target style
	MainBodies []string // optional subject decomposition to guide drawing
}

// GeneratedIcon is a finished icon with its full SVG document.
type GeneratedIcon struct {
	Name      string `json:"name"`
	StyleID   string `json:"style"`
	StyleName string `json:"styleName"`
	Platform  string `json:"platform"`
	SVG       string `json:"svg"`
}

// Config contains all required parameters for Generator.
type Config struct {
	Genkit *genkit.Genkit
	Styles *style.Registry
	Logger *slog.Logger

	ModelName   string  // provider-qualified model name
	Temperature float64 // sampling temperature for drawing calls
}

func (cfg Config) validate() error {
	if cfg.Genkit == nil {
		return errors.New("genkit instance is required")
	}
	if cfg.Styles == nil {
		return errors.New("style registry is required")
	}
	return nil
}

// Generator turns a subject description into a styled SVG icon. It builds the
// style's drawing prompt, asks the model for inner markup, then cleans and
// frames the result.
//
// Generator is stateless and safe for concurrent use.
type Generator struct {
	g           *genkit.Genkit
	styles      *style.Registry
	logger      *slog.Logger
	modelName   string
	temperature float64
}

// New creates a Generator.
func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		g:           cfg.Genkit,
		styles:      cfg.Styles,
		logger:      logger,
		modelName:   cfg.ModelName,
		temperature: cfg.Temperature,
	}, nil
}

// Generate synthesizes one icon. Model errors surface as wrapped errors; the
// caller decides whether to retry or drop the icon.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (GeneratedIcon, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return GeneratedIcon{}, ErrEmptyPrompt
	}

	st, err := g.styles.Get(req.StyleID)
	if err != nil {
		return GeneratedIcon{}, fmt.Errorf("resolving style: %w", err)
	}

	prompt := st.Prompt(req.Prompt)
	if len(req.MainBodies) > 0 {
		prompt += "\n\n主体构成（必须全部画出）：" + strings.Join(req.MainBodies, "、")
	}

	opts := []ai.GenerateOption{
		ai.WithPrompt(prompt),
		ai.WithConfig(map[string]any{"temperature": g.temperature}),
	}
	if g.modelName != "" {
		opts = append(opts, ai.WithModelName(g.modelName))
	}

	resp, err := genkit.Generate(ctx, g.g, opts...)
	if err != nil {
		return GeneratedIcon{}, fmt.Errorf("generating icon markup for %q: %w", req.Prompt, err)
	}

	content := CleanMarkup(resp.Text())
	if len(content) < markupMinLength {
		g.logger.Debug("model markup too short, using fallback shape",
			"style", st.ID, "prompt", req.Prompt, "length", len(content))
		content = fallbackShape(st.Palette)
	}

	name := req.Name
	if name == "" {
		name = req.Prompt
	}

	return GeneratedIcon{
		Name:      name,
		StyleID:   st.ID,
		StyleName: st.Name,
		Platform:  st.Platform,
		SVG:       st.Decorate(content, gradientUID()),
	}, nil
}

// CleanMarkup strips the wrappers a model tends to add around SVG fragments:
// markdown code fences and a full <svg> document envelope. The returned
// string is bare inner markup.
func CleanMarkup(raw string) string {
	s := strings.TrimSpace(raw)

	// Code fences, with or without a language tag.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// Full document envelope: keep only what is inside the root element.
	if strings.HasPrefix(s, "<svg") {
		if open := strings.Index(s, ">"); open >= 0 {
			inner := s[open+1:]
			if close := strings.LastIndex(inner, "</svg>"); close >= 0 {
				inner = inner[:close]
			}
			s = strings.TrimSpace(inner)
		}
	}

	return s
}

// fallbackShape is the neutral centered dot substituted when the model
// produced nothing usable.
func fallbackShape(p style.Palette) string {
	return `<circle cx="60" cy="60" r="20" fill="` + p.Primary + `"/>`
}

// gradientUID returns a short per-icon suffix for def ID namespacing.
func gradientUID() string {
	return uuid.NewString()[:8]
}
