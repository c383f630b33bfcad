package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/aiconic/aiconic/internal/store"
)

// Pagination and validation bounds.
const (
	defaultListLimit = 50
	maxListLimit     = 200
	maxListOffset    = 10000
	maxTitleLength   = 200
	maxBodyBytes     = 4 << 20 // icons carry inline SVG documents
)

// SessionStore is the persistence surface the HTTP handlers need.
// *store.Store satisfies it.
type SessionStore interface {
	CreateSession(ctx context.Context, title string) (store.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (store.Session, error)
	ListSessions(ctx context.Context, limit, offset int32) ([]store.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	SessionDetail(ctx context.Context, id uuid.UUID) (store.SessionDetail, error)
	AddMessage(ctx context.Context, sessionID uuid.UUID, msg store.NewMessage) (store.Message, error)
}

type sessionHandler struct {
	store  SessionStore
	logger *slog.Logger
}

// list handles GET /api/sessions, newest updated first.
func (h *sessionHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", defaultListLimit, 1, maxListLimit)
	offset := parseIntParam(r, "offset", 0, 0, maxListOffset)

	// #nosec G115 -- bounded by maxListLimit and maxListOffset
	sessions, err := h.store.ListSessions(r.Context(), int32(limit), int32(offset))
	if err != nil {
		h.logger.Error("listing sessions", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed", "failed to list sessions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"total":    len(sessions),
		"limit":    limit,
		"offset":   offset,
	})
}

// CreateSessionRequest is the body of POST /api/sessions.
type CreateSessionRequest struct {
	Title string `json:"title"`
}

// create handles POST /api/sessions. An empty body or title yields the
// default placeholder title.
func (h *sessionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	// An empty body is a valid "use defaults" request.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if len(req.Title) > maxTitleLength {
		writeError(w, http.StatusBadRequest, "title_too_long", "title must be 200 characters or fewer")
		return
	}

	sess, err := h.store.CreateSession(r.Context(), req.Title)
	if err != nil {
		h.logger.Error("creating session", "error", err)
		writeError(w, http.StatusInternalServerError, "create_failed", "failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, sess)
}

// get handles GET /api/sessions/{id}: full detail with ordered messages
// and icons.
func (h *sessionHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	detail, err := h.store.SessionDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found", "session not found")
			return
		}
		h.logger.Error("loading session detail", "error", err, "session_id", id)
		writeError(w, http.StatusInternalServerError, "get_failed", "failed to load session")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// delete handles DELETE /api/sessions/{id}; messages and icons cascade.
func (h *sessionHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteSession(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found", "session not found")
			return
		}
		h.logger.Error("deleting session", "error", err, "session_id", id)
		writeError(w, http.StatusInternalServerError, "delete_failed", "failed to delete session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AppendMessageRequest is the body of POST /api/sessions/{id}/messages.
// Icons accompany the message and are persisted in the same transaction.
type AppendMessageRequest struct {
	Role      string          `json:"role"`
	Content   string          `json:"content"`
	ToolCalls json.RawMessage `json:"toolCalls,omitempty"`
	Icons     []MessageIcon   `json:"icons,omitempty"`
}

// MessageIcon is one icon submitted alongside a message.
type MessageIcon struct {
	Name       string `json:"name"`
	Prompt     string `json:"prompt"`
	SVGContent string `json:"svgContent"`
	Style      string `json:"style"`
}

// appendMessage handles POST /api/sessions/{id}/messages. The first user
// message in a default-titled session derives and persists a title.
func (h *sessionHandler) appendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req AppendMessageRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "missing_content", "content is required")
		return
	}

	icons := make([]store.NewIcon, len(req.Icons))
	for i, ic := range req.Icons {
		icons[i] = store.NewIcon{
			Name:       ic.Name,
			Prompt:     ic.Prompt,
			SVGContent: ic.SVGContent,
			Style:      ic.Style,
		}
	}

	msg, err := h.store.AddMessage(r.Context(), id, store.NewMessage{
		Role:      req.Role,
		Content:   req.Content,
		ToolCalls: req.ToolCalls,
		Icons:     icons,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session_not_found", "session not found")
		case errors.Is(err, store.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_role", "role must be user, assistant, system or tool")
		default:
			h.logger.Error("appending message", "error", err, "session_id", id)
			writeError(w, http.StatusInternalServerError, "append_failed", "failed to append message")
		}
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// pathUUID extracts and validates the {id} path segment.
func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
