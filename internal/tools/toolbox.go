// Package tools implements the closed set of operations the icon agent can
// invoke: subject analysis, icon synthesis and icon persistence.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aiconic/aiconic/internal/icon"
	"github.com/aiconic/aiconic/internal/store"
)

// SetStyles is the fixed style list generate_icon_set fans out over.
var SetStyles = []string{"appstore", "material", "neon", "minimal"}

// setConcurrency bounds the parallel synthesis calls of one icon set.
const setConcurrency = 4

// defaultRecentLimit is used when list_recent_icons gets no limit.
const defaultRecentLimit = 5

// searchLimit caps search_icons results.
const searchLimit = 10

// analyzeSystemPrompt teaches the model to decompose an abstract concept
// into four concrete visual subjects.
const analyzeSystemPrompt = `你是图标设计专家。根据用户的抽象概念，分析出 4 个最适合的视觉主体元素。

规则:
1. 选择简洁、易识别的几何形状
2. 每个主体元素用 2-4 个字描述
3. 按视觉表现力排序
4. 返回 JSON 格式

示例:
用户: "安全防护"
输出: {"mainBodies": ["盾牌", "锁", "钥匙", "城墙"], "reasoning": "安全概念最直观的视觉符号"}

用户: "云存储"
输出: {"mainBodies": ["云朵", "服务器", "上传箭头", "文件夹"], "reasoning": "云和存储的组合意象"}

用户: "金融理财"
输出: {"mainBodies": ["硬币", "金条", "钱包", "增长曲线"], "reasoning": "财富和增值的视觉符号"}`

// mainBodyCount is the exact decomposition size analyze_subject must return.
const mainBodyCount = 4

// analysis is the structured output schema of the analyze model call.
type analysis struct {
	MainBodies []string `json:"mainBodies"`
	Reasoning  string   `json:"reasoning,omitempty"`
}

// IconStore is the persistence surface the toolbox needs. *store.Store
// satisfies it.
type IconStore interface {
	SaveIcon(ctx context.Context, sessionID, messageID uuid.UUID, ic store.NewIcon) (store.Icon, error)
	SearchIcons(ctx context.Context, query string, limit int32) ([]store.Icon, error)
	ListRecentIcons(ctx context.Context, limit int32) ([]store.Icon, error)
	DeleteIcon(ctx context.Context, id uuid.UUID) error
}

// Config contains all required parameters for Toolbox.
type Config struct {
	Genkit    *genkit.Genkit
	Generator *icon.Generator
	Store     IconStore
	Logger    *slog.Logger

	ModelName string // provider-qualified model used by analyze_subject
}

func (cfg Config) validate() error {
	if cfg.Genkit == nil {
		return errors.New("genkit instance is required")
	}
	if cfg.Generator == nil {
		return errors.New("icon generator is required")
	}
	if cfg.Store == nil {
		return errors.New("icon store is required")
	}
	return nil
}

// Toolbox holds the built-in tools and their shared dependencies.
//
// Toolbox is safe for concurrent use.
type Toolbox struct {
	g         *genkit.Genkit
	generator *icon.Generator
	store     IconStore
	logger    *slog.Logger
	modelName string
}

// New creates a Toolbox.
func New(cfg Config) (*Toolbox, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Toolbox{
		g:         cfg.Genkit,
		generator: cfg.Generator,
		store:     cfg.Store,
		logger:    logger,
		modelName: cfg.ModelName,
	}, nil
}

// AnalyzeSubject asks the model to decompose the user's abstract description
// into exactly four concrete main bodies. Malformed output fails the tool,
// it is not retried.
func (t *Toolbox) AnalyzeSubject(ctx context.Context, in AnalyzeSubjectInput) AnalyzeSubjectResult {
	t.logger.Debug("analyzing subject", "prompt", in.UserPrompt)

	opts := []ai.GenerateOption{
		ai.WithSystem(analyzeSystemPrompt),
		ai.WithPrompt(fmt.Sprintf("分析 %q 的视觉主体元素:", in.UserPrompt)),
		ai.WithOutputType(analysis{}),
	}
	if t.modelName != "" {
		opts = append(opts, ai.WithModelName(t.modelName))
	}

	resp, err := genkit.Generate(ctx, t.g, opts...)
	if err != nil {
		return AnalyzeSubjectResult{Result: failure("分析失败: " + err.Error())}
	}

	var out analysis
	if err := resp.Output(&out); err != nil {
		return AnalyzeSubjectResult{Result: failure("分析结果格式错误: " + err.Error())}
	}
	if len(out.MainBodies) != mainBodyCount {
		return AnalyzeSubjectResult{Result: failure(
			fmt.Sprintf("主体元素数量错误: 需要 %d 个，得到 %d 个", mainBodyCount, len(out.MainBodies)))}
	}

	return AnalyzeSubjectResult{
		Result:     Result{Success: true},
		MainBodies: out.MainBodies,
		Reasoning:  out.Reasoning,
	}
}

// GenerateIcon synthesizes one icon in one style.
func (t *Toolbox) GenerateIcon(ctx context.Context, in GenerateIconInput) GenerateIconResult {
	ic, err := t.generator.Generate(ctx, icon.GenerateRequest{
		Prompt:     in.Subject,
		StyleID:    in.Style,
		MainBodies: in.MainBodies,
	})
	if err != nil {
		return GenerateIconResult{Result: failure("生成失败: " + err.Error())}
	}

	return GenerateIconResult{
		Result:    Result{Success: true},
		SVG:       ic.SVG,
		Subject:   in.Subject,
		Style:     ic.StyleID,
		StyleName: ic.StyleName,
	}
}

// GenerateIconSet synthesizes the subject across the fixed style set
// concurrently. A style whose synthesis fails is dropped; only zero
// produced icons fails the tool.
func (t *Toolbox) GenerateIconSet(ctx context.Context, in GenerateIconSetInput) GenerateIconSetResult {
	t.logger.Debug("generating icon set", "subject", in.Subject)

	results := make([]*icon.GeneratedIcon, len(SetStyles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(setConcurrency)

	for i, styleID := range SetStyles {
		g.Go(func() error {
			ic, err := t.generator.Generate(gctx, icon.GenerateRequest{
				Prompt:     in.Subject,
				StyleID:    styleID,
				MainBodies: in.MainBodies,
			})
			if err != nil {
				t.logger.Warn("icon synthesis failed, dropping style",
					"style", styleID, "subject", in.Subject, "error", err)
				return nil
			}
			results[i] = &ic
			return nil
		})
	}
	// Workers never return errors; Wait only propagates gctx cancellation.
	if err := g.Wait(); err != nil {
		return GenerateIconSetResult{Result: failure("生成失败: " + err.Error())}
	}

	icons := make([]icon.GeneratedIcon, 0, len(results))
	for _, r := range results {
		if r != nil {
			icons = append(icons, *r)
		}
	}
	if len(icons) == 0 {
		return GenerateIconSetResult{Result: failure("生成失败")}
	}

	return GenerateIconSetResult{
		Result: Result{Success: true},
		Icons:  icons,
	}
}

// SaveIcon persists one icon.
func (t *Toolbox) SaveIcon(ctx context.Context, in SaveIconInput) SaveIconResult {
	ic, err := t.store.SaveIcon(ctx, uuid.Nil, uuid.Nil, store.NewIcon{
		Name:       in.Name,
		Prompt:     in.Prompt,
		SVGContent: in.SVGContent,
		Style:      in.Style,
	})
	if err != nil {
		return SaveIconResult{Result: failure("保存失败: " + err.Error())}
	}

	return SaveIconResult{
		Result:  Result{Success: true},
		IconID:  ic.ID.String(),
		Message: fmt.Sprintf("图标 %q 已保存", in.Name),
	}
}

// SearchIcons finds persisted icons whose name or prompt contains the
// keyword.
func (t *Toolbox) SearchIcons(ctx context.Context, in SearchIconsInput) SearchIconsResult {
	icons, err := t.store.SearchIcons(ctx, in.Keyword, searchLimit)
	if err != nil {
		return SearchIconsResult{Result: failure("搜索失败: " + err.Error())}
	}

	summaries := make([]IconSummary, len(icons))
	for i, ic := range icons {
		summaries[i] = IconSummary{ID: ic.ID.String(), Name: ic.Name, Style: ic.Style}
	}
	return SearchIconsResult{
		Result: Result{Success: true},
		Count:  len(summaries),
		Icons:  summaries,
	}
}

// ListRecentIcons returns the newest persisted icons.
func (t *Toolbox) ListRecentIcons(ctx context.Context, in ListRecentIconsInput) ListRecentIconsResult {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	icons, err := t.store.ListRecentIcons(ctx, int32(limit)) // #nosec G115 -- limit is a small positive request parameter
	if err != nil {
		return ListRecentIconsResult{Result: failure("查询失败: " + err.Error())}
	}

	records := make([]IconRecord, len(icons))
	for i, ic := range icons {
		records[i] = IconRecord{
			ID:         ic.ID.String(),
			Name:       ic.Name,
			Style:      ic.Style,
			SVGContent: ic.SVGContent,
		}
	}
	return ListRecentIconsResult{
		Result: Result{Success: true},
		Icons:  records,
	}
}

// DeleteIcon removes a persisted icon by ID.
func (t *Toolbox) DeleteIcon(ctx context.Context, in DeleteIconInput) DeleteIconResult {
	id, err := uuid.Parse(in.IconID)
	if err != nil {
		return DeleteIconResult{Result: failure("无效的图标 ID: " + in.IconID)}
	}
	if err := t.store.DeleteIcon(ctx, id); err != nil {
		return DeleteIconResult{Result: failure("删除失败: " + err.Error())}
	}
	return DeleteIconResult{
		Result:  Result{Success: true},
		Message: "图标已删除",
	}
}

// Dispatch executes the tool the model named. Tool failures come back inside
// the result value; the only Go error paths are malformed arguments for a
// known tool and context cancellation bubbling out of a tool body. An unknown
// name yields a failed Result so the model can correct itself.
func (t *Toolbox) Dispatch(ctx context.Context, name string, args any) (any, error) {
	kind, err := ParseKind(name)
	if err != nil {
		t.logger.Warn("model requested unknown tool", "name", name)
		return failure(fmt.Sprintf("未知工具: %s", name)), nil
	}

	switch kind {
	case KindAnalyzeSubject:
		in, err := decodeArgs[AnalyzeSubjectInput](args)
		if err != nil {
			return nil, err
		}
		return t.AnalyzeSubject(ctx, in), nil
	case KindGenerateIcon:
		in, err := decodeArgs[GenerateIconInput](args)
		if err != nil {
			return nil, err
		}
		return t.GenerateIcon(ctx, in), nil
	case KindGenerateIconSet:
		in, err := decodeArgs[GenerateIconSetInput](args)
		if err != nil {
			return nil, err
		}
		return t.GenerateIconSet(ctx, in), nil
	case KindSaveIcon:
		in, err := decodeArgs[SaveIconInput](args)
		if err != nil {
			return nil, err
		}
		return t.SaveIcon(ctx, in), nil
	case KindSearchIcons:
		in, err := decodeArgs[SearchIconsInput](args)
		if err != nil {
			return nil, err
		}
		return t.SearchIcons(ctx, in), nil
	case KindListRecentIcons:
		in, err := decodeArgs[ListRecentIconsInput](args)
		if err != nil {
			return nil, err
		}
		return t.ListRecentIcons(ctx, in), nil
	case KindDeleteIcon:
		in, err := decodeArgs[DeleteIconInput](args)
		if err != nil {
			return nil, err
		}
		return t.DeleteIcon(ctx, in), nil
	}
	return failure(fmt.Sprintf("未知工具: %s", name)), nil
}

// decodeArgs converts the model-provided argument value (typically
// map[string]any) into the tool's typed input via a JSON round trip.
func decodeArgs[In any](args any) (In, error) {
	var in In
	if args == nil {
		return in, nil
	}
	if typed, ok := args.(In); ok {
		return typed, nil
	}

	raw, err := json.Marshal(args)
	if err != nil {
		return in, fmt.Errorf("marshaling tool arguments: %w", err)
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return in, fmt.Errorf("invalid tool arguments: expected %T: %w", in, err)
	}
	return in, nil
}
