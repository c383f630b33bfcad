// Package agent implements the orchestration loop that turns one user
// message into a bounded sequence of tool invocations plus a final reply,
// emitting progress events along the way.
//
// The loop alternates between two states: Deciding, where the model is asked
// what to do next with the full tool set advertised, and Executing, where the
// model's chosen tool calls run sequentially. It terminates when the model
// stops requesting tools or the turn cap is reached.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"golang.org/x/time/rate"

	"github.com/aiconic/aiconic/internal/icon"
	"github.com/aiconic/aiconic/internal/style"
	"github.com/aiconic/aiconic/internal/tools"
)

// defaultMaxTurns bounds the Deciding/Executing round trips of one run.
const defaultMaxTurns = 5

// User-facing failure and cap messages. Detailed causes go to the log only.
const (
	genericFailureMessage = "处理失败，请重试"
	turnCapMessage        = "已达到最大处理轮次，请重新发送消息继续。"
)

const multiIconSystemPrompt = `你是专业的图标设计师。生成图标时必须遵循以下流程：

**重要：必须按顺序执行两个步骤！**

步骤 1: 先调用 analyze_subject 分析用户描述，获取最佳主体元素
步骤 2: 选择分析结果中的第一个主体元素，调用 generate_icon_set 生成 4 种风格图标，
并把分析得到的 mainBodies 一并传入以约束构图

示例流程:
用户: "安全相关的图标"
→ 调用 analyze_subject(userPrompt: "安全相关的图标")
→ 得到 mainBodies: ["盾牌", "锁", "钥匙", "城墙"]
→ 调用 generate_icon_set(subject: "盾牌")
→ 生成 4 个不同风格的盾牌图标

现在开始，直接调用工具，不要先回复文字。`

const chatSystemPrompt = `你是专业的图标设计师。
当用户想要生成图标时，先用 analyze_subject 分析主体，再用 generate_icon_set 生成图标。
用中文回复。`

// ToolCall records one executed tool invocation for persistence alongside
// the assistant message.
type ToolCall struct {
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Logs   []string `json:"logs,omitempty"`
}

// Request is one orchestration run.
type Request struct {
	UserMessage      string
	History          []*ai.Message
	GenerateMultiple bool
}

// Result is what a completed run leaves behind for persistence. Icons holds
// every icon produced during the run, in emission order.
type Result struct {
	Reply     string
	Icons     []icon.GeneratedIcon
	ToolCalls []ToolCall
	Failed    bool
}

// Config contains all required parameters for the Agent.
type Config struct {
	Genkit  *genkit.Genkit
	Toolbox *tools.Toolbox
	Styles  *style.Registry
	Logger  *slog.Logger

	ModelName string
	MaxTurns  int           // Deciding/Executing round trips, default 5
	Limiter   *rate.Limiter // model-call rate limit, default 10 rps burst 30
}

func (cfg Config) validate() error {
	if cfg.Genkit == nil {
		return errors.New("genkit instance is required")
	}
	if cfg.Toolbox == nil {
		return errors.New("toolbox is required")
	}
	if cfg.Styles == nil {
		return errors.New("style registry is required")
	}
	if cfg.MaxTurns < 0 {
		return fmt.Errorf("max turns must not be negative, got %d", cfg.MaxTurns)
	}
	return nil
}

// Agent drives the tool-calling loop. All fields are immutable after New,
// so one Agent serves concurrent requests.
type Agent struct {
	g        *genkit.Genkit
	toolbox  *tools.Toolbox
	styles   *style.Registry
	logger   *slog.Logger
	toolRefs []ai.ToolRef

	modelName string
	maxTurns  int
	limiter   *rate.Limiter
}

// New creates an Agent and registers the toolbox's tool schemas on the
// Genkit instance.
func New(cfg Config) (*Agent, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = defaultMaxTurns
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(10, 30)
	}

	defs := cfg.Toolbox.Definitions(cfg.Genkit)
	toolRefs := make([]ai.ToolRef, len(defs))
	for i, d := range defs {
		toolRefs[i] = d
	}

	return &Agent{
		g:         cfg.Genkit,
		toolbox:   cfg.Toolbox,
		styles:    cfg.Styles,
		logger:    logger,
		toolRefs:  toolRefs,
		modelName: cfg.ModelName,
		maxTurns:  maxTurns,
		limiter:   limiter,
	}, nil
}

// Run executes one orchestration turn, delivering progress through emit.
//
// Event ordering is guaranteed: tool_start precedes its tool_log and
// tool_result events, all events of one Executing batch precede the next
// Deciding step, and done is always the last event, exactly once. Model
// failures are folded into an error event followed by done; Run only
// returns a non-nil error when emission itself fails or ctx is canceled,
// in which case no further events are written.
func (a *Agent) Run(ctx context.Context, req Request, emit EmitFunc) (*Result, error) {
	systemPrompt := chatSystemPrompt
	if req.GenerateMultiple {
		systemPrompt = multiIconSystemPrompt
	}

	msgs := make([]*ai.Message, 0, len(req.History)+1)
	msgs = append(msgs, req.History...)
	msgs = append(msgs, ai.NewUserMessage(ai.NewTextPart(req.UserMessage)))

	res := &Result{}
	lastText := ""

	for turn := range a.maxTurns {
		resp, err := a.decide(ctx, systemPrompt, msgs, req.GenerateMultiple && turn == 0)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			a.logger.Error("model call failed", "turn", turn, "error", err)
			res.Failed = true
			if err := emit(ctx, errorEvent(genericFailureMessage)); err != nil {
				return nil, err
			}
			if err := emit(ctx, doneEvent()); err != nil {
				return nil, err
			}
			return res, nil
		}

		lastText = resp.Text()
		toolReqs := resp.ToolRequests()
		if len(toolReqs) == 0 {
			res.Reply = lastText
			if err := emit(ctx, textEvent(lastText)); err != nil {
				return nil, err
			}
			if err := emit(ctx, doneEvent()); err != nil {
				return nil, err
			}
			return res, nil
		}

		msgs = append(msgs, resp.Message)

		toolParts := make([]*ai.Part, 0, len(toolReqs))
		for _, tr := range toolReqs {
			part, err := a.execute(ctx, tr, res, emit)
			if err != nil {
				return nil, err
			}
			toolParts = append(toolParts, part)
		}
		msgs = append(msgs, &ai.Message{Role: ai.RoleTool, Content: toolParts})
	}

	// Turn cap reached with the model still requesting tools. Close out
	// with a best-effort reply so the client is never left hanging.
	a.logger.Warn("turn cap reached", "maxTurns", a.maxTurns)
	reply := strings.TrimSpace(lastText)
	if reply == "" {
		reply = turnCapMessage
	}
	res.Reply = reply
	if err := emit(ctx, textEvent(reply)); err != nil {
		return nil, err
	}
	if err := emit(ctx, doneEvent()); err != nil {
		return nil, err
	}
	return res, nil
}

// decide asks the model for its next move with the full tool set advertised.
func (a *Agent) decide(ctx context.Context, systemPrompt string, msgs []*ai.Message, forceTool bool) (*ai.ModelResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := []ai.GenerateOption{
		ai.WithSystem(systemPrompt),
		ai.WithMessages(msgs...),
		ai.WithTools(a.toolRefs...),
		ai.WithReturnToolRequests(true),
	}
	if a.modelName != "" {
		opts = append(opts, ai.WithModelName(a.modelName))
	}
	if forceTool {
		opts = append(opts, ai.WithToolChoice(ai.ToolChoiceRequired))
	}

	return genkit.Generate(ctx, a.g, opts...)
}

// execute runs one tool request, emits its events, collects produced icons
// and returns the tool response part for the conversation.
func (a *Agent) execute(ctx context.Context, tr *ai.ToolRequest, res *Result, emit EmitFunc) (*ai.Part, error) {
	args := argsMap(tr.Input)
	record := ToolCall{Name: tr.Name, Status: "running"}

	if err := emit(ctx, toolStartEvent(tr.Name, args)); err != nil {
		return nil, err
	}
	if err := a.emitStartLog(ctx, tr.Name, args, &record, emit); err != nil {
		return nil, err
	}

	out, err := a.toolbox.Dispatch(ctx, tr.Name, tr.Input)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Malformed arguments for a known tool. Hand the failure back to
		// the model as a normal tool result.
		a.logger.Warn("tool arguments rejected", "tool", tr.Name, "error", err)
		out = tools.Result{Success: false, Error: err.Error()}
	}

	if err := a.emitResult(ctx, tr.Name, out, res, &record, emit); err != nil {
		return nil, err
	}

	record.Status = "done"
	res.ToolCalls = append(res.ToolCalls, record)

	return ai.NewToolResponsePart(&ai.ToolResponse{
		Name:   tr.Name,
		Ref:    tr.Ref,
		Output: out,
	}), nil
}

// emitStartLog writes the human-readable "what is being attempted" line for
// tools that have one.
func (a *Agent) emitStartLog(ctx context.Context, name string, args map[string]any, record *ToolCall, emit EmitFunc) error {
	var line string
	switch name {
	case tools.KindAnalyzeSubject.String():
		line = fmt.Sprintf("分析: %q", stringArg(args, "userPrompt"))
	case tools.KindGenerateIconSet.String():
		line = fmt.Sprintf("批量生成: %s", stringArg(args, "subject"))
	case tools.KindGenerateIcon.String():
		line = fmt.Sprintf("生成: %s (%s)", stringArg(args, "subject"), a.styleLabel(stringArg(args, "style")))
	default:
		return nil
	}
	record.Logs = append(record.Logs, line)
	return emit(ctx, toolLogEvent(name, line))
}

// emitResult translates one tool's output into tool_log/tool_result events.
// Every executed tool closes its tool_start group with at least one
// tool_result, failures included, so clients never see a call stuck open.
func (a *Agent) emitResult(ctx context.Context, name string, out any, res *Result, record *ToolCall, emit EmitFunc) error {
	switch v := out.(type) {
	case tools.AnalyzeSubjectResult:
		if !v.Success {
			return emit(ctx, toolFailureEvent(name, v.Error))
		}
		line := "结果: " + strings.Join(v.MainBodies, ", ")
		record.Logs = append(record.Logs, line)
		if err := emit(ctx, toolLogEvent(name, line)); err != nil {
			return err
		}
		return emit(ctx, Event{Type: EventToolResult, Name: name, MainBodies: v.MainBodies})

	case tools.GenerateIconResult:
		if !v.Success {
			return emit(ctx, toolFailureEvent(name, v.Error))
		}
		res.Icons = append(res.Icons, icon.GeneratedIcon{
			Name:      v.Subject,
			StyleID:   v.Style,
			StyleName: v.StyleName,
			SVG:       v.SVG,
		})
		return emit(ctx, Event{Type: EventToolResult, Name: name, SVG: v.SVG, Style: v.Style, StyleName: v.StyleName})

	case tools.GenerateIconSetResult:
		if !v.Success {
			return emit(ctx, toolFailureEvent(name, v.Error))
		}
		for _, ic := range v.Icons {
			line := fmt.Sprintf("✓ %s - %s", ic.Platform, ic.StyleName)
			record.Logs = append(record.Logs, line)
			if err := emit(ctx, toolLogEvent(name, line)); err != nil {
				return err
			}
		}
		for _, ic := range v.Icons {
			res.Icons = append(res.Icons, ic)
			if err := emit(ctx, Event{Type: EventToolResult, Name: name, SVG: ic.SVG, Style: ic.StyleID, StyleName: ic.StyleName}); err != nil {
				return err
			}
		}
		return nil

	case tools.SaveIconResult:
		if !v.Success {
			return emit(ctx, toolFailureEvent(name, v.Error))
		}
		return emit(ctx, Event{Type: EventToolResult, Name: name, Message: v.Message})

	case tools.SearchIconsResult:
		if !v.Success {
			return emit(ctx, toolFailureEvent(name, v.Error))
		}
		return emit(ctx, Event{Type: EventToolResult, Name: name, Message: fmt.Sprintf("找到 %d 个图标", v.Count)})

	case tools.ListRecentIconsResult:
		if !v.Success {
			return emit(ctx, toolFailureEvent(name, v.Error))
		}
		return emit(ctx, Event{Type: EventToolResult, Name: name, Message: fmt.Sprintf("最近 %d 个图标", len(v.Icons))})

	case tools.DeleteIconResult:
		if !v.Success {
			return emit(ctx, toolFailureEvent(name, v.Error))
		}
		return emit(ctx, Event{Type: EventToolResult, Name: name, Message: v.Message})

	case tools.Result:
		// Unknown tool or rejected arguments.
		if !v.Success {
			return emit(ctx, toolFailureEvent(name, v.Error))
		}
		return emit(ctx, Event{Type: EventToolResult, Name: name})
	}

	return emit(ctx, Event{Type: EventToolResult, Name: name})
}

// styleLabel resolves a style id to its display name, falling back to the
// raw id for unregistered styles.
func (a *Agent) styleLabel(id string) string {
	st, err := a.styles.Get(id)
	if err != nil {
		return id
	}
	return st.Name
}

// argsMap normalizes the model-provided tool arguments for the tool_start
// event payload.
func argsMap(input any) map[string]any {
	if input == nil {
		return nil
	}
	if m, ok := input.(map[string]any); ok {
		return m
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return map[string]any{"value": fmt.Sprint(input)}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{"value": string(raw)}
	}
	return m
}

func stringArg(args map[string]any, key string) string {
	if s, ok := args[key].(string); ok {
		return s
	}
	return ""
}
