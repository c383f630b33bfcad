package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiconic/aiconic/internal/store"
)

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateSessionDefaultsTitle(t *testing.T) {
	handler, err := newTestServer(&fakeRunner{}, newFakeSessionStore())
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sess store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, store.DefaultTitle, sess.Title)
	assert.NotEqual(t, uuid.Nil, sess.ID)
}

func TestCreateSessionWithTitle(t *testing.T) {
	handler, err := newTestServer(&fakeRunner{}, newFakeSessionStore())
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodPost, "/api/sessions", map[string]string{"title": "天气图标"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var sess store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, "天气图标", sess.Title)
}

func TestListSessions(t *testing.T) {
	st := newFakeSessionStore()
	for range 3 {
		_, err := st.CreateSession(t.Context(), "")
		require.NoError(t, err)
	}
	handler, err := newTestServer(&fakeRunner{}, st)
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodGet, "/api/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sessions []store.Session `json:"sessions"`
		Total    int             `json:"total"`
		Limit    int             `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, defaultListLimit, resp.Limit)
}

func TestGetSessionDetail(t *testing.T) {
	st := newFakeSessionStore()
	sess, err := st.CreateSession(t.Context(), "图标会话")
	require.NoError(t, err)
	_, err = st.AddMessage(t.Context(), sess.ID, store.NewMessage{
		Role:    store.RoleUser,
		Content: "生成盾牌图标",
		Icons:   []store.NewIcon{{Name: "盾牌", Style: "neon", SVGContent: "<svg/>"}},
	})
	require.NoError(t, err)

	handler, err := newTestServer(&fakeRunner{}, st)
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodGet, "/api/sessions/"+sess.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail store.SessionDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, sess.ID, detail.Session.ID)
	require.Len(t, detail.Messages, 1)
	require.Len(t, detail.Icons, 1)
	assert.Equal(t, "盾牌", detail.Icons[0].Name)
}

func TestGetSessionNotFound(t *testing.T) {
	handler, err := newTestServer(&fakeRunner{}, newFakeSessionStore())
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodGet, "/api/sessions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSessionInvalidID(t *testing.T) {
	handler, err := newTestServer(&fakeRunner{}, newFakeSessionStore())
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodGet, "/api/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSession(t *testing.T) {
	st := newFakeSessionStore()
	sess, err := st.CreateSession(t.Context(), "")
	require.NoError(t, err)

	handler, err := newTestServer(&fakeRunner{}, st)
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodDelete, "/api/sessions/"+sess.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/sessions/"+sess.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSessionNotFound(t *testing.T) {
	handler, err := newTestServer(&fakeRunner{}, newFakeSessionStore())
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodDelete, "/api/sessions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppendMessage(t *testing.T) {
	st := newFakeSessionStore()
	sess, err := st.CreateSession(t.Context(), "")
	require.NoError(t, err)

	handler, err := newTestServer(&fakeRunner{}, st)
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodPost, "/api/sessions/"+sess.ID.String()+"/messages", map[string]any{
		"role":    "assistant",
		"content": "已生成图标",
		"icons": []map[string]string{
			{"name": "盾牌", "prompt": "安全", "svgContent": "<svg/>", "style": "appstore"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var msg store.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "assistant", msg.Role)

	require.Len(t, st.icons[sess.ID], 1)
	assert.Equal(t, msg.ID, st.icons[sess.ID][0].MessageID)
}

func TestAppendMessageValidation(t *testing.T) {
	st := newFakeSessionStore()
	sess, err := st.CreateSession(t.Context(), "")
	require.NoError(t, err)

	handler, err := newTestServer(&fakeRunner{}, st)
	require.NoError(t, err)

	path := "/api/sessions/" + sess.ID.String() + "/messages"

	rec := doJSON(t, handler, http.MethodPost, path, map[string]any{"role": "user"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "content is required")

	rec = doJSON(t, handler, http.MethodPost, path, map[string]any{"role": "oracle", "content": "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown role is rejected")

	rec = doJSON(t, handler, http.MethodPost, "/api/sessions/"+uuid.NewString()+"/messages",
		map[string]any{"role": "user", "content": "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
