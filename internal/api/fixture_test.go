package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/aiconic/aiconic/internal/agent"
	"github.com/aiconic/aiconic/internal/store"
	"github.com/aiconic/aiconic/internal/style"
	"github.com/aiconic/aiconic/internal/testutil"
)

// fakeRunner emits a scripted event sequence and records the request.
type fakeRunner struct {
	events []agent.Event
	result *agent.Result
	err    error

	mu       sync.Mutex
	requests []agent.Request
}

func (f *fakeRunner) Run(ctx context.Context, req agent.Request, emit agent.EmitFunc) (*agent.Result, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	for _, ev := range f.events {
		if err := emit(ctx, ev); err != nil {
			return nil, err
		}
	}
	res := f.result
	if res == nil {
		res = &agent.Result{}
	}
	return res, nil
}

func (f *fakeRunner) lastRequest() agent.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

// fakeSessionStore is an in-memory SessionStore.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]store.Session
	messages map[uuid.UUID][]store.Message
	icons    map[uuid.UUID][]store.Icon

	failWith error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions: make(map[uuid.UUID]store.Session),
		messages: make(map[uuid.UUID][]store.Message),
		icons:    make(map[uuid.UUID][]store.Icon),
	}
}

func (f *fakeSessionStore) CreateSession(_ context.Context, title string) (store.Session, error) {
	if f.failWith != nil {
		return store.Session{}, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if title == "" {
		title = store.DefaultTitle
	}
	sess := store.Session{ID: uuid.New(), Title: title}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeSessionStore) GetSession(_ context.Context, id uuid.UUID) (store.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.sessions[id]
	if !ok {
		return store.Session{}, store.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeSessionStore) ListSessions(_ context.Context, limit, _ int32) ([]store.Session, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Session, 0, len(f.sessions))
	for _, s := range f.sessions {
		if int32(len(out)) >= limit {
			break
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionStore) DeleteSession(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[id]; !ok {
		return store.ErrSessionNotFound
	}
	delete(f.sessions, id)
	delete(f.messages, id)
	delete(f.icons, id)
	return nil
}

func (f *fakeSessionStore) SessionDetail(_ context.Context, id uuid.UUID) (store.SessionDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.sessions[id]
	if !ok {
		return store.SessionDetail{}, store.ErrSessionNotFound
	}
	return store.SessionDetail{
		Session:  sess,
		Messages: f.messages[id],
		Icons:    f.icons[id],
	}, nil
}

func (f *fakeSessionStore) AddMessage(_ context.Context, sessionID uuid.UUID, msg store.NewMessage) (store.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[sessionID]; !ok {
		return store.Message{}, store.ErrSessionNotFound
	}
	switch msg.Role {
	case store.RoleUser, store.RoleAssistant, store.RoleSystem, store.RoleTool:
	default:
		return store.Message{}, store.ErrInvalidRole
	}

	m := store.Message{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      msg.Role,
		Content:   msg.Content,
		ToolCalls: msg.ToolCalls,
	}
	f.messages[sessionID] = append(f.messages[sessionID], m)
	for _, ic := range msg.Icons {
		f.icons[sessionID] = append(f.icons[sessionID], store.Icon{
			ID:         uuid.New(),
			SessionID:  sessionID,
			MessageID:  m.ID,
			Name:       ic.Name,
			Prompt:     ic.Prompt,
			SVGContent: ic.SVGContent,
			Style:      ic.Style,
		})
	}
	return m, nil
}

// newTestServer wires a server around the given fakes.
func newTestServer(runner ChatRunner, st SessionStore) (http.Handler, error) {
	srv, err := NewServer(ServerConfig{
		Logger: testutil.DiscardLogger(),
		Runner: runner,
		Store:  st,
		Styles: style.NewRegistry(),
	})
	if err != nil {
		return nil, err
	}
	return srv.Handler(), nil
}
