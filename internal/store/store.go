// Package store persists sessions, messages and generated icons in
// PostgreSQL.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the common interface satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ querier = (*pgxpool.Pool)(nil)
	_ querier = (pgx.Tx)(nil)
)

// sessionCols is the standard SELECT column list for scanSession.
const sessionCols = `id, title, created_at, updated_at`

// messageCols is the standard SELECT column list for scanMessages.
const messageCols = `id, session_id, role, content, tool_calls, created_at`

// iconCols is the standard SELECT column list for scanIcons.
const iconCols = `id, session_id, message_id, name, prompt, svg_content, style, created_at`

var validRoles = []string{RoleUser, RoleAssistant, RoleSystem, RoleTool}

// Store manages session, message and icon persistence.
//
// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New creates a Store backed by the given pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) (*Store, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{pool: pool, logger: logger}, nil
}

// CreateSession creates a new conversation session. An empty title falls back
// to the default title.
func (s *Store) CreateSession(ctx context.Context, title string) (Session, error) {
	if title == "" {
		title = DefaultTitle
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO sessions (title) VALUES ($1)
		 RETURNING `+sessionCols,
		title,
	)
	sess, err := scanSession(row)
	if err != nil {
		return Session{}, fmt.Errorf("creating session: %w", err)
	}

	s.logger.Debug("created session", "id", sess.ID, "title", sess.Title)
	return sess, nil
}

// GetSession retrieves a session by ID.
func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (Session, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+sessionCols+` FROM sessions WHERE id = $1`,
		id,
	)
	sess, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("getting session %s: %w", id, err)
	}
	return sess, nil
}

// ListSessions lists sessions ordered by most recent activity.
func (s *Store) ListSessions(ctx context.Context, limit, offset int32) ([]Session, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+sessionCols+` FROM sessions
		 ORDER BY updated_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession deletes a session with its messages and icons (CASCADE).
// Returns ErrSessionNotFound for an unknown ID.
func (s *Store) DeleteSession(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}

	s.logger.Debug("deleted session", "id", id)
	return nil
}

// SessionDetail loads a session together with its full message and icon
// history, both in chronological order.
func (s *Store) SessionDetail(ctx context.Context, id uuid.UUID) (SessionDetail, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return SessionDetail{}, err
	}

	detail := SessionDetail{Session: sess}

	detail.Messages, err = loadMessages(ctx, s.pool, id)
	if err != nil {
		return SessionDetail{}, err
	}

	detail.Icons, err = loadIcons(ctx, s.pool, id)
	if err != nil {
		return SessionDetail{}, err
	}

	return detail, nil
}

// loadMessages reads a session's messages in chronological order.
func loadMessages(ctx context.Context, q querier, sessionID uuid.UUID) ([]Message, error) {
	rows, err := q.Query(ctx,
		`SELECT `+messageCols+` FROM messages
		 WHERE session_id = $1
		 ORDER BY created_at ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading messages for session %s: %w", sessionID, err)
	}
	return scanMessages(rows)
}

// loadIcons reads a session's icons in chronological order.
func loadIcons(ctx context.Context, q querier, sessionID uuid.UUID) ([]Icon, error) {
	rows, err := q.Query(ctx,
		`SELECT `+iconCols+` FROM icons
		 WHERE session_id = $1
		 ORDER BY created_at ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading icons for session %s: %w", sessionID, err)
	}
	return scanIcons(rows)
}

// insertIcon inserts one icon row through either the pool or an open
// transaction.
func insertIcon(ctx context.Context, q querier, sessionID, messageID any, ic NewIcon) (Icon, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO icons (session_id, message_id, name, prompt, svg_content, style)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+iconCols,
		sessionID, messageID, ic.Name, ic.Prompt, ic.SVGContent, ic.Style,
	)
	return scanIcon(row)
}

// AddMessage appends a message to a session together with any icons the turn
// produced, all in one transaction. The session's updated_at is touched, and
// the first user message replaces a still-default title with one derived from
// its content.
func (s *Store) AddMessage(ctx context.Context, sessionID uuid.UUID, msg NewMessage) (Message, error) {
	if !slices.Contains(validRoles, msg.Role) {
		return Message{}, fmt.Errorf("role %q: %w", msg.Role, ErrInvalidRole)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Message{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Debug("transaction rollback", "error", err)
		}
	}()

	var title string
	err = tx.QueryRow(ctx,
		`SELECT title FROM sessions WHERE id = $1 FOR UPDATE`,
		sessionID,
	).Scan(&title)
	if errors.Is(err, pgx.ErrNoRows) {
		return Message{}, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}
	if err != nil {
		return Message{}, fmt.Errorf("locking session %s: %w", sessionID, err)
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO messages (session_id, role, content, tool_calls)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+messageCols,
		sessionID, msg.Role, msg.Content, msg.ToolCalls,
	)
	stored, err := scanMessage(row)
	if err != nil {
		return Message{}, fmt.Errorf("inserting message: %w", err)
	}

	for _, ic := range msg.Icons {
		if _, err := insertIcon(ctx, tx, sessionID, stored.ID, ic); err != nil {
			return Message{}, fmt.Errorf("inserting icon %q: %w", ic.Name, err)
		}
	}

	if msg.Role == RoleUser && title == DefaultTitle {
		if derived := DeriveTitle(msg.Content); derived != DefaultTitle {
			if _, err := tx.Exec(ctx,
				`UPDATE sessions SET title = $1 WHERE id = $2`,
				derived, sessionID,
			); err != nil {
				return Message{}, fmt.Errorf("retitling session %s: %w", sessionID, err)
			}
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE sessions SET updated_at = now() WHERE id = $1`,
		sessionID,
	); err != nil {
		return Message{}, fmt.Errorf("touching session %s: %w", sessionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Message{}, fmt.Errorf("committing transaction: %w", err)
	}

	s.logger.Debug("added message",
		"session_id", sessionID, "role", msg.Role, "icons", len(msg.Icons))
	return stored, nil
}

// SaveIcon persists a single icon. sessionID and messageID may be Nil for
// icons saved outside a conversation.
func (s *Store) SaveIcon(ctx context.Context, sessionID, messageID uuid.UUID, ic NewIcon) (Icon, error) {
	icon, err := insertIcon(ctx, s.pool, nullableUUID(sessionID), nullableUUID(messageID), ic)
	if err != nil {
		return Icon{}, fmt.Errorf("saving icon %q: %w", ic.Name, err)
	}

	s.logger.Debug("saved icon", "id", icon.ID, "name", icon.Name, "style", icon.Style)
	return icon, nil
}

// SearchIcons finds icons whose name or prompt contains the query,
// case-insensitively, newest first.
func (s *Store) SearchIcons(ctx context.Context, query string, limit int32) ([]Icon, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+iconCols+` FROM icons
		 WHERE name ILIKE '%' || $1 || '%' OR prompt ILIKE '%' || $1 || '%'
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching icons for %q: %w", query, err)
	}
	return scanIcons(rows)
}

// ListRecentIcons returns the newest icons across all sessions.
func (s *Store) ListRecentIcons(ctx context.Context, limit int32) ([]Icon, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+iconCols+` FROM icons
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recent icons: %w", err)
	}
	return scanIcons(rows)
}

// GetIcon retrieves an icon by ID.
func (s *Store) GetIcon(ctx context.Context, id uuid.UUID) (Icon, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+iconCols+` FROM icons WHERE id = $1`,
		id,
	)
	icon, err := scanIcon(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Icon{}, fmt.Errorf("icon %s: %w", id, ErrIconNotFound)
	}
	if err != nil {
		return Icon{}, fmt.Errorf("getting icon %s: %w", id, err)
	}
	return icon, nil
}

// DeleteIcon removes an icon. Returns ErrIconNotFound for an unknown ID.
func (s *Store) DeleteIcon(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM icons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting icon %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("icon %s: %w", id, ErrIconNotFound)
	}

	s.logger.Debug("deleted icon", "id", id)
	return nil
}

func scanSession(row pgx.Row) (Session, error) {
	var sess Session
	if err := row.Scan(&sess.ID, &sess.Title, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func scanMessage(row pgx.Row) (Message, error) {
	var msg Message
	if err := row.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content,
		&msg.ToolCalls, &msg.CreatedAt); err != nil {
		return Message{}, err
	}
	return msg, nil
}

func scanMessages(rows pgx.Rows) ([]Message, error) {
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading messages: %w", err)
	}
	return messages, nil
}

func scanIcon(row pgx.Row) (Icon, error) {
	var (
		icon      Icon
		sessionID pgtype.UUID
		messageID pgtype.UUID
	)
	if err := row.Scan(&icon.ID, &sessionID, &messageID, &icon.Name,
		&icon.Prompt, &icon.SVGContent, &icon.Style, &icon.CreatedAt); err != nil {
		return Icon{}, err
	}
	if sessionID.Valid {
		icon.SessionID = sessionID.Bytes
	}
	if messageID.Valid {
		icon.MessageID = messageID.Bytes
	}
	return icon, nil
}

func scanIcons(rows pgx.Rows) ([]Icon, error) {
	defer rows.Close()

	icons := []Icon{}
	for rows.Next() {
		icon, err := scanIcon(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning icon: %w", err)
		}
		icons = append(icons, icon)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading icons: %w", err)
	}
	return icons, nil
}

// nullableUUID maps uuid.Nil to a SQL NULL.
func nullableUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: id != uuid.Nil}
}
