package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ratel-online/haipai/mahjong/game"
	_ "modernc.org/sqlite"
)

// Store keeps one unfinished hand per player.
type Store interface {
	Save(ctx context.Context, playerID int64, snapshot game.Snapshot) error
	Load(ctx context.Context, playerID int64) (game.Snapshot, bool, error)
	Delete(ctx context.Context, playerID int64) error
	Close() error
}

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and creates) the database at dbPath. ":memory:"
// keeps everything in process.
func NewSQLiteStore(dbPath string) (Store, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS hands (
	player_id  INTEGER PRIMARY KEY,
	snapshot   TEXT    NOT NULL,
	updated_at INTEGER NOT NULL
);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Save(ctx context.Context, playerID int64, snapshot game.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO hands (player_id, snapshot, updated_at) VALUES (?, ?, ?)
ON CONFLICT(player_id) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at;`,
		playerID, string(raw), time.Now().Unix())
	return err
}

func (s *sqliteStore) Load(ctx context.Context, playerID int64) (game.Snapshot, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM hands WHERE player_id = ?;`, playerID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Snapshot{}, false, nil
	}
	if err != nil {
		return game.Snapshot{}, false, err
	}
	snapshot := game.Snapshot{}
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return game.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

func (s *sqliteStore) Delete(ctx context.Context, playerID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM hands WHERE player_id = ?;`, playerID)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
