package agent

import "context"

// EventType tags one unit of the streaming progress protocol.
type EventType string

const (
	EventToolStart  EventType = "tool_start"
	EventToolLog    EventType = "tool_log"
	EventToolResult EventType = "tool_result"
	EventText       EventType = "text"
	EventDone       EventType = "done"
	EventError      EventType = "error"
)

// Event is one progress notification of an orchestration run. Only the
// fields relevant to the event type are set; the rest stay at their zero
// value and are omitted from the wire encoding.
type Event struct {
	Type EventType `json:"type"`

	// Tool events.
	Name    string         `json:"name,omitempty"`
	Args    map[string]any `json:"args,omitempty"`
	Message string         `json:"message,omitempty"`

	// tool_result payloads.
	SVG        string   `json:"svg,omitempty"`
	Style      string   `json:"style,omitempty"`
	StyleName  string   `json:"styleName,omitempty"`
	MainBodies []string `json:"mainBodies,omitempty"`

	// Final reply and failure.
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// EmitFunc delivers one event to the client. Implementations must honor ctx
// so a disconnected client turns further emission into a no-op; a returned
// error stops the run.
type EmitFunc func(ctx context.Context, ev Event) error

func toolStartEvent(name string, args map[string]any) Event {
	return Event{Type: EventToolStart, Name: name, Args: args}
}

func toolLogEvent(name, message string) Event {
	return Event{Type: EventToolLog, Name: name, Message: message}
}

func textEvent(content string) Event {
	return Event{Type: EventText, Content: content}
}

func toolFailureEvent(name, errMsg string) Event {
	return Event{Type: EventToolResult, Name: name, Error: errMsg}
}

func errorEvent(msg string) Event {
	return Event{Type: EventError, Error: msg}
}

func doneEvent() Event {
	return Event{Type: EventDone}
}
