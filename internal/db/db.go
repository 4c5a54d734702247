// Package db provides PostgreSQL persistence for chat conversations and
// resolution audit records. The engine itself never touches the database;
// persistence is optional and the server runs without it.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateSession creates a new chat session and returns its ID
func (db *DB) CreateSession(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO chat_sessions DEFAULT VALUES RETURNING id`,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// GetSession retrieves a chat session by ID. Returns nil when no session
// exists, not an error.
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	var session Session
	err := db.pool.QueryRow(ctx,
		`SELECT id, created_at, updated_at FROM chat_sessions WHERE id = $1`,
		sessionID,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// SaveMessage stores one chat turn. Metadata may be nil.
func (db *DB) SaveMessage(ctx context.Context, sessionID uuid.UUID, role, content string, metadata any) error {
	var metadataBytes []byte
	if metadata != nil {
		var err error
		metadataBytes, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal message metadata: %w", err)
		}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO chat_messages (session_id, role, content, metadata)
		 VALUES ($1, $2, $3, $4)`,
		sessionID, role, content, metadataBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE chat_sessions SET updated_at = NOW() WHERE id = $1`,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// History retrieves a session's messages in chronological order.
// A zero limit means no limit.
func (db *DB) History(ctx context.Context, sessionID uuid.UUID, limit int) ([]Message, error) {
	query := `SELECT id, session_id, role, content, metadata, created_at
		FROM chat_messages WHERE session_id = $1 ORDER BY created_at ASC`
	args := []any{sessionID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		var metadataBytes []byte
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &metadataBytes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if len(metadataBytes) > 0 {
			var metadata map[string]any
			if err := json.Unmarshal(metadataBytes, &metadata); err == nil {
				m.Metadata = metadata
			}
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// DeleteSession deletes a chat session and its messages (via cascade)
func (db *DB) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM chat_sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	return nil
}

// SaveResolution stores one resolution audit record and returns its ID
func (db *DB) SaveResolution(ctx context.Context, service, county, status string, request, profile any, aiGenerated bool) (uuid.UUID, error) {
	requestBytes, err := json.Marshal(request)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	profileBytes, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resolutions (service, county, status, request, profile, ai_generated)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		service, county, status, requestBytes, profileBytes, aiGenerated,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resolution: %w", err)
	}
	return id, nil
}

// ResolutionFilters holds optional filters for listing resolutions
type ResolutionFilters struct {
	Service string
	County  string
	Status  string
	Limit   int
}

// ListResolutions retrieves recent resolution records with optional filters
func (db *DB) ListResolutions(ctx context.Context, filters ResolutionFilters) ([]Resolution, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, service, county, status, request, profile, ai_generated, created_at
		FROM resolutions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Service != "" {
		query += fmt.Sprintf(" AND service = $%d", argNum)
		args = append(args, filters.Service)
		argNum++
	}
	if filters.County != "" {
		query += fmt.Sprintf(" AND county = $%d", argNum)
		args = append(args, filters.County)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resolutions: %w", err)
	}
	defer rows.Close()

	var resolutions []Resolution
	for rows.Next() {
		var r Resolution
		var requestBytes, profileBytes []byte
		if err := rows.Scan(&r.ID, &r.Service, &r.County, &r.Status, &requestBytes, &profileBytes, &r.AIGenerated, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resolution: %w", err)
		}
		if len(requestBytes) > 0 {
			_ = json.Unmarshal(requestBytes, &r.Request)
		}
		if len(profileBytes) > 0 {
			_ = json.Unmarshal(profileBytes, &r.Profile)
		}
		resolutions = append(resolutions, r)
	}
	return resolutions, nil
}
