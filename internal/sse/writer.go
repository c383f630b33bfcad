// Package sse provides Server-Sent Events utilities for streaming responses.
package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Writer wraps an http.ResponseWriter for SSE streaming. Each payload is sent
// as a single "data:" line holding a JSON document, and the stream always ends
// with a "[DONE]" sentinel.
type Writer struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewWriter creates a new SSE writer and sets appropriate headers.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support flusher interface")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	return &Writer{w: w, flusher: flusher}, nil
}

// Send marshals v to JSON and writes it as one SSE data frame. Nothing is
// written once ctx is canceled, so a disconnected client never receives a
// partial frame.
func (w *Writer) Send(ctx context.Context, v any) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("context canceled: %w", ctx.Err())
	default:
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if _, err := fmt.Fprintf(w.w, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("write data frame: %w", err)
	}

	w.flusher.Flush()
	return nil
}

// Done writes the "[DONE]" sentinel that terminates the stream.
func (w *Writer) Done(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("context canceled: %w", ctx.Err())
	default:
	}

	if _, err := fmt.Fprint(w.w, "data: [DONE]\n\n"); err != nil {
		return fmt.Errorf("write done sentinel: %w", err)
	}

	w.flusher.Flush()
	return nil
}
