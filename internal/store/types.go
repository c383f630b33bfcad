package store

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the title a session starts with until the first user
// message supplies a better one.
const DefaultTitle = "新会话"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleTool      = "tool"
)

// Session is one icon-generation conversation.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Message is one turn of a conversation. ToolCalls holds the raw JSON record
// of the tool invocations an assistant turn made, nil for plain turns.
type Message struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ToolCalls []byte    `json:"toolCalls,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Icon is one generated SVG icon. SessionID and MessageID are Nil when the
// owning row was deleted or the icon was saved outside a conversation.
type Icon struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"sessionId,omitzero"`
	MessageID  uuid.UUID `json:"messageId,omitzero"`
	Name       string    `json:"name"`
	Prompt     string    `json:"prompt"`
	SVGContent string    `json:"svgContent"`
	Style      string    `json:"style"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SessionDetail bundles a session with its full message and icon history.
type SessionDetail struct {
	Session
	Messages []Message `json:"messages"`
	Icons    []Icon    `json:"icons"`
}

// NewIcon describes an icon to persist alongside a message.
type NewIcon struct {
	Name       string
	Prompt     string
	SVGContent string
	Style      string
}

// NewMessage describes a message to append to a session, with any icons the
// turn produced.
type NewMessage struct {
	Role      string
	Content   string
	ToolCalls []byte
	Icons     []NewIcon
}
