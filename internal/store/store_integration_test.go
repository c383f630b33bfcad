//go:build integration
// +build integration

package store

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiconic/aiconic/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	db, cleanup := testutil.SetupTestDB(t)
	s, err := New(db.Pool, slog.Default())
	require.NoError(t, err)
	return s, cleanup
}

func TestStore_CreateAndGetSession_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "Test Session")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.Equal(t, "Test Session", sess.Title)
	assert.NotZero(t, sess.CreatedAt)
	assert.NotZero(t, sess.UpdatedAt)

	retrieved, err := s.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, retrieved.ID)
	assert.Equal(t, sess.Title, retrieved.Title)
}

func TestStore_CreateSessionDefaultTitle_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()

	sess, err := s.CreateSession(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, sess.Title)
}

func TestStore_GetSessionNotFound_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()

	_, err := s.GetSession(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_ListSessions_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreateSession(ctx, title)
		require.NoError(t, err)
	}

	sessions, err := s.ListSessions(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	page, err := s.ListSessions(ctx, 2, 1)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestStore_DeleteSessionCascades_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "to delete")
	require.NoError(t, err)

	_, err = s.AddMessage(ctx, sess.ID, NewMessage{
		Role:    RoleAssistant,
		Content: "here is your icon",
		Icons: []NewIcon{{
			Name:       "cat",
			Prompt:     "a cat",
			SVGContent: "<svg/>",
			Style:      "minimal",
		}},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteSession(ctx, sess.ID))

	_, err = s.GetSession(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	icons, err := s.ListRecentIcons(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, icons, "icons should cascade with their session")

	err = s.DeleteSession(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_AddMessageRetitles_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "")
	require.NoError(t, err)
	require.Equal(t, DefaultTitle, sess.Title)

	_, err = s.AddMessage(ctx, sess.ID, NewMessage{
		Role:    RoleUser,
		Content: "画一个简约风格的咖啡杯",
	})
	require.NoError(t, err)

	retitled, err := s.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "画一个简约风格的咖啡杯", retitled.Title)

	// A second user message must not retitle again.
	_, err = s.AddMessage(ctx, sess.ID, NewMessage{
		Role:    RoleUser,
		Content: "再画一个猫",
	})
	require.NoError(t, err)

	unchanged, err := s.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "画一个简约风格的咖啡杯", unchanged.Title)
}

func TestStore_AddMessageKeepsExplicitTitle_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "My Icons")
	require.NoError(t, err)

	_, err = s.AddMessage(ctx, sess.ID, NewMessage{Role: RoleUser, Content: "draw a dog"})
	require.NoError(t, err)

	got, err := s.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Icons", got.Title)
}

func TestStore_AddMessageInvalidRole_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "roles")
	require.NoError(t, err)

	_, err = s.AddMessage(ctx, sess.ID, NewMessage{Role: "robot", Content: "beep"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestStore_AddMessageUnknownSession_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()

	_, err := s.AddMessage(context.Background(), uuid.New(), NewMessage{
		Role:    RoleUser,
		Content: "hello",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_SessionDetail_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "detail")
	require.NoError(t, err)

	_, err = s.AddMessage(ctx, sess.ID, NewMessage{Role: RoleUser, Content: "draw a sun"})
	require.NoError(t, err)

	reply, err := s.AddMessage(ctx, sess.ID, NewMessage{
		Role:      RoleAssistant,
		Content:   "done",
		ToolCalls: []byte(`[{"name":"generate_icon"}]`),
		Icons: []NewIcon{
			{Name: "sun", Prompt: "a sun", SVGContent: "<svg>1</svg>", Style: "appstore"},
			{Name: "sun", Prompt: "a sun", SVGContent: "<svg>2</svg>", Style: "neon"},
		},
	})
	require.NoError(t, err)

	detail, err := s.SessionDetail(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, detail.ID)
	require.Len(t, detail.Messages, 2)
	assert.Equal(t, RoleUser, detail.Messages[0].Role)
	assert.Equal(t, RoleAssistant, detail.Messages[1].Role)
	assert.JSONEq(t, `[{"name":"generate_icon"}]`, string(detail.Messages[1].ToolCalls))

	require.Len(t, detail.Icons, 2)
	for _, ic := range detail.Icons {
		assert.Equal(t, sess.ID, ic.SessionID)
		assert.Equal(t, reply.ID, ic.MessageID)
	}
}

func TestStore_SaveAndGetIcon_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	icon, err := s.SaveIcon(ctx, uuid.Nil, uuid.Nil, NewIcon{
		Name:       "standalone",
		Prompt:     "a star",
		SVGContent: "<svg/>",
		Style:      "metallic",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, icon.ID)
	assert.Equal(t, uuid.Nil, icon.SessionID)
	assert.Equal(t, uuid.Nil, icon.MessageID)

	got, err := s.GetIcon(ctx, icon.ID)
	require.NoError(t, err)
	assert.Equal(t, icon.ID, got.ID)
	assert.Equal(t, "standalone", got.Name)
}

func TestStore_SearchIcons_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for _, ic := range []NewIcon{
		{Name: "Coffee Cup", Prompt: "a steaming cup", SVGContent: "<svg/>", Style: "minimal"},
		{Name: "cat", Prompt: "coffee-colored cat", SVGContent: "<svg/>", Style: "retro"},
		{Name: "rocket", Prompt: "a rocket", SVGContent: "<svg/>", Style: "neon"},
	} {
		_, err := s.SaveIcon(ctx, uuid.Nil, uuid.Nil, ic)
		require.NoError(t, err)
	}

	// Case-insensitive, matches name or prompt.
	found, err := s.SearchIcons(ctx, "COFFEE", 10)
	require.NoError(t, err)
	require.Len(t, found, 2)

	names := []string{found[0].Name, found[1].Name}
	assert.Contains(t, names, "Coffee Cup")
	assert.Contains(t, names, "cat")

	none, err := s.SearchIcons(ctx, "dragon", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ListRecentIcons_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for i := range 5 {
		_, err := s.SaveIcon(ctx, uuid.Nil, uuid.Nil, NewIcon{
			Name:       "icon-" + strings.Repeat("x", i+1),
			Prompt:     "p",
			SVGContent: "<svg/>",
			Style:      "minimal",
		})
		require.NoError(t, err)
	}

	icons, err := s.ListRecentIcons(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, icons, 3)
}

func TestStore_DeleteIcon_Integration(t *testing.T) {
	s, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	icon, err := s.SaveIcon(ctx, uuid.Nil, uuid.Nil, NewIcon{
		Name: "gone", Prompt: "p", SVGContent: "<svg/>", Style: "clay",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteIcon(ctx, icon.ID))

	_, err = s.GetIcon(ctx, icon.ID)
	assert.ErrorIs(t, err, ErrIconNotFound)

	err = s.DeleteIcon(ctx, icon.ID)
	assert.ErrorIs(t, err, ErrIconNotFound)
}
