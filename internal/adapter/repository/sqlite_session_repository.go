package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"heritageflavors/internal/domain/entity"
)

const (
	cartKeyPrefix   = "cart:"
	recentKeyPrefix = "recentlyViewed:"
)

// SqliteSessionRepository persists session state to an on-device key-value
// table as JSON strings, one key per session per concern. There is no
// schema versioning: a malformed or absent value reads back as empty state.
type SqliteSessionRepository struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSqliteSessionRepository creates or opens the local store under dataDir.
func NewSqliteSessionRepository(dataDir string) (*SqliteSessionRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "session_state.db")
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	repo := &SqliteSessionRepository{db: db}
	if err := repo.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize session store schema: %w", err)
	}

	return repo, nil
}

func (r *SqliteSessionRepository) initSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	return err
}

func (r *SqliteSessionRepository) Close() error {
	return r.db.Close()
}

func (r *SqliteSessionRepository) LoadCart(ctx context.Context, sessionID string) ([]entity.CartItem, error) {
	raw, err := r.get(ctx, cartKeyPrefix+sessionID)
	if err != nil || raw == "" {
		return []entity.CartItem{}, err
	}

	var items []entity.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Malformed value is treated as empty, not as a failure.
		return []entity.CartItem{}, nil
	}
	return items, nil
}

func (r *SqliteSessionRepository) SaveCart(ctx context.Context, sessionID string, items []entity.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.set(ctx, cartKeyPrefix+sessionID, string(raw))
}

func (r *SqliteSessionRepository) LoadRecentlyViewed(ctx context.Context, sessionID string) ([]string, error) {
	raw, err := r.get(ctx, recentKeyPrefix+sessionID)
	if err != nil || raw == "" {
		return []string{}, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

func (r *SqliteSessionRepository) SaveRecentlyViewed(ctx context.Context, sessionID string, productIDs []string) error {
	raw, err := json.Marshal(productIDs)
	if err != nil {
		return err
	}
	return r.set(ctx, recentKeyPrefix+sessionID, string(raw))
}

func (r *SqliteSessionRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *SqliteSessionRepository) set(ctx context.Context, key, value string) error {
	// Serializing writers keeps each full-value overwrite atomic; concurrent
	// mutations of one session resolve last-write-wins.
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
