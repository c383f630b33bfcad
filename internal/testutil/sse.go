package testutil

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"
)

// DoneSentinel is the data payload that terminates an SSE stream.
const DoneSentinel = "[DONE]"

// ParseSSEFrames parses an SSE body into its raw data payloads, one per
// frame. The stream format is data-only: "data: <payload>\n\n" per frame,
// with comments (lines starting with ":") ignored.
func ParseSSEFrames(t *testing.T, body string) []string {
	t.Helper()

	var frames []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var dataLines []string
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "data: "):
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))

		case line == "":
			if len(dataLines) > 0 {
				frames = append(frames, strings.Join(dataLines, "\n"))
				dataLines = nil
			}

		case strings.HasPrefix(line, ":"):
			// comment, ignored

		default:
			t.Fatalf("SSE parse error at line %d: unexpected line %q", lineNum, line)
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("SSE scan error: %v", err)
	}
	if len(dataLines) > 0 {
		t.Fatalf("SSE stream ended without terminating frame %q (missing empty line)", dataLines[0])
	}

	return frames
}

// DecodeSSEEvents parses an SSE body, asserts it ends with the [DONE]
// sentinel, and JSON-decodes every preceding frame.
func DecodeSSEEvents(t *testing.T, body string) []map[string]any {
	t.Helper()

	frames := ParseSSEFrames(t, body)
	if len(frames) == 0 {
		t.Fatal("SSE stream contains no frames")
	}
	if frames[len(frames)-1] != DoneSentinel {
		t.Fatalf("SSE stream not terminated with %s, last frame: %q", DoneSentinel, frames[len(frames)-1])
	}

	events := make([]map[string]any, 0, len(frames)-1)
	for i, frame := range frames[:len(frames)-1] {
		var event map[string]any
		if err := json.Unmarshal([]byte(frame), &event); err != nil {
			t.Fatalf("SSE frame %d is not valid JSON: %v (%q)", i, err, frame)
		}
		events = append(events, event)
	}
	return events
}

// EventTypes extracts the "type" field of each decoded event, in order.
func EventTypes(events []map[string]any) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i], _ = e["type"].(string)
	}
	return types
}

// FindEvent returns the first event of the given type, or nil.
func FindEvent(events []map[string]any, eventType string) map[string]any {
	for _, e := range events {
		if e["type"] == eventType {
			return e
		}
	}
	return nil
}

// FindAllEvents returns all events of the given type.
func FindAllEvents(events []map[string]any, eventType string) []map[string]any {
	var found []map[string]any
	for _, e := range events {
		if e["type"] == eventType {
			found = append(found, e)
		}
	}
	return found
}
