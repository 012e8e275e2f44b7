// Package store persists completed analysis runs in PostgreSQL: one row
// per run with the serialized tree, plus one row per analyzed word.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ruslingua/morphotrie"
)

// Querier is the slice of pgxpool.Pool the store needs; pgxmock
// implements it for tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store reads and writes analysis runs.
type Store struct {
	db Querier
}

// New wraps a database handle.
func New(db Querier) *Store {
	return &Store{db: db}
}

// NewPool opens a pgx connection pool for dsn and verifies it with a
// ping.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS analysis_runs (
	id UUID PRIMARY KEY,
	source TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	word_count INTEGER NOT NULL,
	node_count INTEGER NOT NULL,
	max_depth INTEGER NOT NULL,
	tree JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS analysis_run_words (
	run_id UUID NOT NULL REFERENCES analysis_runs (id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	word TEXT NOT NULL,
	lemma TEXT NOT NULL,
	pos TEXT NOT NULL,
	sense TEXT NOT NULL DEFAULT '',
	tags JSONB NOT NULL DEFAULT '{}',
	syllables TEXT NOT NULL,
	PRIMARY KEY (run_id, position)
);`

// InitSchema creates the tables when they do not exist yet.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Run is the stored summary of one analysis run.
type Run struct {
	ID        uuid.UUID `db:"id"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
	WordCount int       `db:"word_count"`
	NodeCount int       `db:"node_count"`
	MaxDepth  int       `db:"max_depth"`
}

// RunWord is one analyzed word occurrence of a stored run.
type RunWord struct {
	RunID     uuid.UUID `db:"run_id"`
	Position  int       `db:"position"`
	Word      string    `db:"word"`
	Lemma     string    `db:"lemma"`
	POS       string    `db:"pos"`
	Sense     string    `db:"sense"`
	Tags      string    `db:"tags"`
	Syllables string    `db:"syllables"`
}

// SaveRun stores a finished analysis under a fresh run ID and returns it.
func (s *Store) SaveRun(ctx context.Context, source string, res *morphotrie.TextAnalysis) (uuid.UUID, error) {
	if res == nil || res.Tree == nil {
		return uuid.Nil, errors.New("save run: nil analysis")
	}
	treeJSON, err := json.Marshal(res.Tree.Serialize())
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode tree: %w", err)
	}
	stats := res.Tree.Statistics()
	id := uuid.New()

	query, args, err := sq.Insert("analysis_runs").
		Columns("id", "source", "word_count", "node_count", "max_depth", "tree").
		Values(id, source, stats.WordCount, stats.NodeCount, stats.MaxDepth, treeJSON).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build run insert: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return uuid.Nil, fmt.Errorf("insert run: %w", err)
	}

	if len(res.Words) == 0 {
		return id, nil
	}
	builder := sq.Insert("analysis_run_words").
		Columns("run_id", "position", "word", "lemma", "pos", "sense", "tags", "syllables").
		PlaceholderFormat(sq.Dollar)
	for i, wa := range res.Words {
		tags, err := json.Marshal(wa.Record.Tags())
		if err != nil {
			return uuid.Nil, fmt.Errorf("encode tags: %w", err)
		}
		builder = builder.Values(
			id,
			i,
			wa.Record.GetString(morphotrie.KeyWord),
			wa.Record.GetString(morphotrie.KeyLemma),
			wa.Record.GetString(morphotrie.KeyPOS),
			wa.Record.GetString(morphotrie.KeySense),
			tags,
			strings.Join(wa.Syllables, "-"),
		)
	}
	query, args, err = builder.ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build words insert: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return uuid.Nil, fmt.Errorf("insert run words: %w", err)
	}
	return id, nil
}

// GetRun fetches one run summary by ID.
func (s *Store) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	if id == uuid.Nil {
		return nil, errors.New("get run: empty id")
	}
	query, args, err := sq.Select("id", "source", "created_at", "word_count", "node_count", "max_depth").
		From("analysis_runs").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build run select: %w", err)
	}
	var run Run
	if err := pgxscan.Get(ctx, s.db, &run, query, args...); err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query, args, err := sq.Select("id", "source", "created_at", "word_count", "node_count", "max_depth").
		From("analysis_runs").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build runs select: %w", err)
	}
	var runs []Run
	if err := pgxscan.Select(ctx, s.db, &runs, query, args...); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// ListRunWords returns a run's analyzed words in document order.
func (s *Store) ListRunWords(ctx context.Context, id uuid.UUID) ([]RunWord, error) {
	if id == uuid.Nil {
		return nil, errors.New("list run words: empty id")
	}
	query, args, err := sq.Select("run_id", "position", "word", "lemma", "pos", "sense", "tags", "syllables").
		From("analysis_run_words").
		Where(sq.Eq{"run_id": id}).
		OrderBy("position ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build words select: %w", err)
	}
	var words []RunWord
	if err := pgxscan.Select(ctx, s.db, &words, query, args...); err != nil {
		return nil, fmt.Errorf("list run words %s: %w", id, err)
	}
	return words, nil
}

// LoadTree rebuilds the syllable tree persisted with run id.
func (s *Store) LoadTree(ctx context.Context, id uuid.UUID) (*morphotrie.PrefixTree, error) {
	if id == uuid.Nil {
		return nil, errors.New("load tree: empty id")
	}
	query, args, err := sq.Select("tree").
		From("analysis_runs").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tree select: %w", err)
	}
	var raw []byte
	if err := s.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return nil, fmt.Errorf("load tree %s: %w", id, err)
	}
	return morphotrie.DecodeTree(raw)
}
