package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/firebase/genkit/go/ai"
	"github.com/google/uuid"

	"github.com/aiconic/aiconic/internal/agent"
	"github.com/aiconic/aiconic/internal/sse"
	"github.com/aiconic/aiconic/internal/store"
	"github.com/aiconic/aiconic/internal/style"
)

const maxChatBodyBytes = 1 << 20 // 1MB

// ChatRunner is the orchestration surface the chat handler needs.
// *agent.Agent satisfies it.
type ChatRunner interface {
	Run(ctx context.Context, req agent.Request, emit agent.EmitFunc) (*agent.Result, error)
}

// ChatTurn is one prior exchange supplied by a client that manages its own
// history instead of a server-side session.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message          string     `json:"message"`
	SessionID        string     `json:"sessionId,omitempty"`
	History          []ChatTurn `json:"history,omitempty"`
	GenerateMultiple bool       `json:"generateMultiple,omitempty"`
	StyleIDs         []string   `json:"styleIds,omitempty"`
}

type chatHandler struct {
	runner ChatRunner
	store  SessionStore
	styles *style.Registry
	logger *slog.Logger
}

// stream handles POST /api/chat. Input validation failures return JSON
// errors; once the event stream is open, failures are folded into error
// events because the status line is already committed.
func (h *chatHandler) stream(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "missing_message", "message is required")
		return
	}
	for _, id := range req.StyleIDs {
		if !h.styles.Has(id) {
			writeError(w, http.StatusBadRequest, "unknown_style", "unknown style: "+id)
			return
		}
	}

	var sessionID uuid.UUID
	history := historyFromTurns(req.History)

	if req.SessionID != "" {
		id, err := uuid.Parse(req.SessionID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_session_id", "sessionId must be a UUID")
			return
		}
		sessionID = id

		// Server-managed history: the persisted transcript replaces any
		// client-supplied turns.
		detail, err := h.store.SessionDetail(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				writeError(w, http.StatusNotFound, "session_not_found", "session not found")
				return
			}
			h.logger.Error("loading session transcript", "error", err, "session_id", sessionID)
			writeError(w, http.StatusInternalServerError, "store_error", "failed to load session")
			return
		}
		history = historyFromMessages(detail.Messages)

		if _, err := h.store.AddMessage(r.Context(), sessionID, store.NewMessage{
			Role:    store.RoleUser,
			Content: req.Message,
		}); err != nil {
			h.logger.Error("persisting user message", "error", err, "session_id", sessionID)
			writeError(w, http.StatusInternalServerError, "store_error", "failed to persist message")
			return
		}
	}

	writer, err := sse.NewWriter(w)
	if err != nil {
		h.logger.Error("opening event stream", "error", err)
		writeError(w, http.StatusInternalServerError, "streaming_unsupported", "streaming not supported")
		return
	}

	ctx := r.Context()
	res, err := h.runner.Run(ctx, agent.Request{
		UserMessage:      req.Message,
		History:          history,
		GenerateMultiple: req.GenerateMultiple,
	}, func(ctx context.Context, ev agent.Event) error {
		return writer.Send(ctx, ev)
	})
	if err != nil {
		// Emission failed or the client went away. Nothing useful can
		// be written anymore.
		h.logger.Debug("chat stream aborted", "error", err, "request_id", requestIDFromContext(ctx))
		return
	}

	if err := writer.Done(ctx); err != nil {
		h.logger.Debug("writing stream terminator", "error", err)
		return
	}

	if sessionID != uuid.Nil && !res.Failed {
		h.persistAssistantTurn(ctx, sessionID, req.Message, res)
	}
}

// persistAssistantTurn stores the final reply with its tool activity and
// icons. The stream is already closed, so failures are only logged.
func (h *chatHandler) persistAssistantTurn(ctx context.Context, sessionID uuid.UUID, userPrompt string, res *agent.Result) {
	var toolCalls []byte
	if len(res.ToolCalls) > 0 {
		raw, err := json.Marshal(res.ToolCalls)
		if err != nil {
			h.logger.Warn("encoding tool activity", "error", err)
		} else {
			toolCalls = raw
		}
	}

	icons := make([]store.NewIcon, len(res.Icons))
	for i, ic := range res.Icons {
		icons[i] = store.NewIcon{
			Name:       ic.Name,
			Prompt:     userPrompt,
			SVGContent: ic.SVG,
			Style:      ic.StyleID,
		}
	}

	if _, err := h.store.AddMessage(ctx, sessionID, store.NewMessage{
		Role:      store.RoleAssistant,
		Content:   res.Reply,
		ToolCalls: toolCalls,
		Icons:     icons,
	}); err != nil {
		h.logger.Error("persisting assistant message", "error", err, "session_id", sessionID)
	}
}

// historyFromTurns converts client-supplied turns to model messages,
// skipping roles the model conversation cannot carry.
func historyFromTurns(turns []ChatTurn) []*ai.Message {
	msgs := make([]*ai.Message, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case store.RoleUser:
			msgs = append(msgs, ai.NewUserMessage(ai.NewTextPart(t.Content)))
		case store.RoleAssistant:
			msgs = append(msgs, ai.NewModelMessage(ai.NewTextPart(t.Content)))
		}
	}
	return msgs
}

// historyFromMessages converts persisted transcript rows to model messages.
func historyFromMessages(rows []store.Message) []*ai.Message {
	msgs := make([]*ai.Message, 0, len(rows))
	for _, m := range rows {
		switch m.Role {
		case store.RoleUser:
			msgs = append(msgs, ai.NewUserMessage(ai.NewTextPart(m.Content)))
		case store.RoleAssistant:
			msgs = append(msgs, ai.NewModelMessage(ai.NewTextPart(m.Content)))
		}
	}
	return msgs
}
