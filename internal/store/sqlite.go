package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/minseolee/cryptolens/pkg/mining"
	"github.com/minseolee/cryptolens/pkg/twitter"
)

// SQLiteStore implements Store using SQLite. Each table keeps one JSON
// payload row per window key, mirroring the keyed last-write-wins
// semantics of MemoryStore.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLite opens a SQLite database and runs migrations.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) upsert(ctx context.Context, table, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s %s: %w", table, key, err)
	}
	col := "payload"
	if table == "windows" {
		col = "tweets"
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (key, %s, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET %s = excluded.%s, updated_at = excluded.updated_at
	`, table, col, col, col)
	if _, err := s.db.ExecContext(ctx, query, key, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert %s %s: %w", table, key, err)
	}
	return nil
}

func (s *SQLiteStore) fetch(ctx context.Context, table, key string, dest any) error {
	col := "payload"
	if table == "windows" {
		col = "tweets"
	}
	var payload string
	query := fmt.Sprintf("SELECT %s FROM %s WHERE key = ?", col, table)
	if err := s.db.GetContext(ctx, &payload, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("fetch %s %s: %w", table, key, err)
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return fmt.Errorf("unmarshal %s %s: %w", table, key, err)
	}
	return nil
}

func (s *SQLiteStore) SaveWindow(ctx context.Context, key string, tweets []twitter.Tweet) error {
	return s.upsert(ctx, "windows", key, tweets)
}

func (s *SQLiteStore) Window(ctx context.Context, key string) ([]twitter.Tweet, error) {
	var tweets []twitter.Tweet
	if err := s.fetch(ctx, "windows", key, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (s *SQLiteStore) WindowKeys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := s.db.SelectContext(ctx, &keys, "SELECT key FROM windows ORDER BY key"); err != nil {
		return nil, fmt.Errorf("list window keys: %w", err)
	}
	return keys, nil
}

func (s *SQLiteStore) SaveRules(ctx context.Context, key string, rules []mining.Rule) error {
	return s.upsert(ctx, "rules", key, rules)
}

func (s *SQLiteStore) Rules(ctx context.Context, key string) ([]mining.Rule, error) {
	var rules []mining.Rule
	if err := s.fetch(ctx, "rules", key, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *SQLiteStore) SavePatterns(ctx context.Context, key string, patterns []mining.Pattern) error {
	return s.upsert(ctx, "patterns", key, patterns)
}

func (s *SQLiteStore) Patterns(ctx context.Context, key string) ([]mining.Pattern, error) {
	var patterns []mining.Pattern
	if err := s.fetch(ctx, "patterns", key, &patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

func (s *SQLiteStore) SaveRuleChanges(ctx context.Context, key string, changes []mining.RuleChange) error {
	return s.upsert(ctx, "rule_changes", key, changes)
}

func (s *SQLiteStore) RuleChanges(ctx context.Context, key string) ([]mining.RuleChange, error) {
	var changes []mining.RuleChange
	if err := s.fetch(ctx, "rule_changes", key, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}
