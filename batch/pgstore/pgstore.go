// Package pgstore keeps batch processes and their sessions in PostgreSQL.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/invokego/invoke-go/batch"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// Beginner is implemented by DBTX values that can open a transaction.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store implements batch.Store.
type Store struct {
	db  DBTX
	log zerolog.Logger
}

var _ batch.Store = (*Store)(nil)

// New returns a Store over db. Pass zerolog.Nop() to silence logging.
func New(db DBTX, logger zerolog.Logger) *Store {
	return &Store{db: db, log: logger.With().Str("component", "batch_store").Logger()}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS batch_process (
  batch_id TEXT NOT NULL PRIMARY KEY,
  batches JSONB NOT NULL,
  graph JSONB NOT NULL,
  canceled BOOLEAN NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  deleted_at TIMESTAMPTZ
)`,
	`CREATE INDEX IF NOT EXISTS idx_batch_process_created_at ON batch_process (created_at)`,
	`CREATE TABLE IF NOT EXISTS batch_session (
  batch_id TEXT NOT NULL REFERENCES batch_process (batch_id) ON DELETE CASCADE,
  session_id TEXT NOT NULL,
  state TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  deleted_at TIMESTAMPTZ,
  PRIMARY KEY (batch_id, session_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_batch_session_batch_id ON batch_session (batch_id)`,
	`CREATE INDEX IF NOT EXISTS idx_batch_session_batch_id_created_at ON batch_session (batch_id, created_at)`,
	`CREATE OR REPLACE FUNCTION batch_touch_updated_at() RETURNS TRIGGER AS $$
BEGIN
  NEW.updated_at = NOW();
  RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS tg_batch_process_updated_at ON batch_process`,
	`CREATE TRIGGER tg_batch_process_updated_at BEFORE UPDATE ON batch_process
FOR EACH ROW EXECUTE FUNCTION batch_touch_updated_at()`,
	`DROP TRIGGER IF EXISTS tg_batch_session_updated_at ON batch_session`,
	`CREATE TRIGGER tg_batch_session_updated_at BEFORE UPDATE ON batch_session
FOR EACH ROW EXECUTE FUNCTION batch_touch_updated_at()`,
}

// Migrate creates the tables, indices and triggers. It is safe to run repeatedly.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("pgstore: migrate: %w", err)
		}
	}
	s.log.Debug().Int("statements", len(schema)).Msg("schema ready")
	return nil
}

// InTx runs fn with a Store bound to a transaction when the underlying DBTX can begin one,
// and with s itself otherwise.
func (s *Store) InTx(ctx context.Context, fn func(batch.Store) error) error {
	b, ok := s.db.(Beginner)
	if !ok {
		return fn(s)
	}
	return pgx.BeginFunc(ctx, b, func(tx pgx.Tx) error {
		return fn(&Store{db: tx, log: s.log})
	})
}

func (s *Store) Delete(ctx context.Context, batchID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM batch_process WHERE batch_id = $1`, batchID); err != nil {
		s.log.Error().Err(err).Str("batch_id", batchID).Msg("delete batch process")
		return &batch.StoreError{Op: batch.OpDeleteProcess, Err: err}
	}
	return nil
}

// Save inserts p unless a process with the same id exists, then returns the stored process.
func (s *Store) Save(ctx context.Context, p batch.Process) (batch.Process, error) {
	batches, err := json.Marshal(p.Batches)
	if err != nil {
		return batch.Process{}, &batch.StoreError{Op: batch.OpSaveProcess, Err: err}
	}
	graph, err := json.Marshal(p.Graph)
	if err != nil {
		return batch.Process{}, &batch.StoreError{Op: batch.OpSaveProcess, Err: err}
	}
	_, err = s.db.Exec(ctx, `
INSERT INTO batch_process (batch_id, batches, graph, canceled)
VALUES ($1, $2::jsonb, $3::jsonb, $4)
ON CONFLICT (batch_id) DO NOTHING`,
		p.BatchID, string(batches), string(graph), p.Canceled)
	if err != nil {
		s.log.Error().Err(err).Str("batch_id", p.BatchID).Msg("save batch process")
		return batch.Process{}, &batch.StoreError{Op: batch.OpSaveProcess, Err: err}
	}
	s.log.Debug().Str("batch_id", p.BatchID).Msg("batch process saved")
	return s.Get(ctx, p.BatchID)
}

func (s *Store) Get(ctx context.Context, batchID string) (batch.Process, error) {
	row := s.db.QueryRow(ctx, `
SELECT batch_id, batches, graph, canceled
FROM batch_process
WHERE batch_id = $1 AND deleted_at IS NULL`, batchID)

	var (
		p       batch.Process
		batches []byte
		graph   []byte
	)
	if err := row.Scan(&p.BatchID, &batches, &graph, &p.Canceled); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return batch.Process{}, fmt.Errorf("%w: %s", batch.ErrProcessNotFound, batchID)
		}
		return batch.Process{}, err
	}
	if err := json.Unmarshal(batches, &p.Batches); err != nil {
		return batch.Process{}, fmt.Errorf("pgstore: decode batches of %s: %w", batchID, err)
	}
	if err := json.Unmarshal(graph, &p.Graph); err != nil {
		return batch.Process{}, fmt.Errorf("pgstore: decode graph of %s: %w", batchID, err)
	}
	return p, nil
}

// Cancel marks a process so no further sessions are run from it.
func (s *Store) Cancel(ctx context.Context, batchID string) error {
	tag, err := s.db.Exec(ctx, `UPDATE batch_process SET canceled = TRUE WHERE batch_id = $1`, batchID)
	if err != nil {
		s.log.Error().Err(err).Str("batch_id", batchID).Msg("cancel batch process")
		return &batch.StoreError{Op: batch.OpSaveProcess, Err: err}
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", batch.ErrProcessNotFound, batchID)
	}
	s.log.Info().Str("batch_id", batchID).Msg("batch process canceled")
	return nil
}

// CreateSession inserts sess unless it exists, then returns the stored session.
func (s *Store) CreateSession(ctx context.Context, sess batch.Session) (batch.Session, error) {
	_, err := s.db.Exec(ctx, `
INSERT INTO batch_session (batch_id, session_id, state)
VALUES ($1, $2, $3)
ON CONFLICT (batch_id, session_id) DO NOTHING`,
		sess.BatchId, sess.SessionId, string(sess.State))
	if err != nil {
		s.log.Error().Err(err).Str("batch_id", sess.BatchId).Str("session_id", sess.SessionId).Msg("create batch session")
		return batch.Session{}, &batch.StoreError{Op: batch.OpSaveSession, Err: err}
	}
	return s.GetSession(ctx, sess.SessionId)
}

const sessionColumns = `batch_id, session_id, state`

func scanSession(row pgx.Row) (batch.Session, error) {
	var (
		sess  batch.Session
		state string
	)
	if err := row.Scan(&sess.BatchId, &sess.SessionId, &state); err != nil {
		return batch.Session{}, err
	}
	sess.State = batch.SessionState(state)
	return sess, nil
}

func (s *Store) GetSession(ctx context.Context, sessionID string) (batch.Session, error) {
	row := s.db.QueryRow(ctx, `
SELECT `+sessionColumns+`
FROM batch_session
WHERE session_id = $1 AND deleted_at IS NULL
LIMIT 1`, sessionID)
	sess, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return batch.Session{}, fmt.Errorf("%w: %s", batch.ErrSessionNotFound, sessionID)
	}
	return sess, err
}

// GetCreatedSession returns the oldest session of a batch still in the created state.
func (s *Store) GetCreatedSession(ctx context.Context, batchID string) (batch.Session, error) {
	row := s.db.QueryRow(ctx, `
SELECT `+sessionColumns+`
FROM batch_session
WHERE batch_id = $1 AND state = $2 AND deleted_at IS NULL
ORDER BY created_at
LIMIT 1`, batchID, string(batch.StateCreated))
	sess, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return batch.Session{}, fmt.Errorf("%w: no created session in %s", batch.ErrSessionNotFound, batchID)
	}
	return sess, err
}

// GetCreatedSessions returns every session of a batch still in the created state, oldest first.
func (s *Store) GetCreatedSessions(ctx context.Context, batchID string) ([]batch.Session, error) {
	rows, err := s.db.Query(ctx, `
SELECT `+sessionColumns+`
FROM batch_session
WHERE batch_id = $1 AND state = $2 AND deleted_at IS NULL
ORDER BY created_at`, batchID, string(batch.StateCreated))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]batch.Session, 0, 8)
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSessionState applies changes to one session and returns it.
func (s *Store) UpdateSessionState(ctx context.Context, batchID, sessionID string, changes batch.SessionChanges) (batch.Session, error) {
	if err := changes.Validate(); err != nil {
		return batch.Session{}, err
	}
	tag, err := s.db.Exec(ctx, `
UPDATE batch_session
SET state = $3
WHERE batch_id = $1 AND session_id = $2`,
		batchID, sessionID, string(changes.State))
	if err != nil {
		s.log.Error().Err(err).Str("batch_id", batchID).Str("session_id", sessionID).Msg("update batch session")
		return batch.Session{}, &batch.StoreError{Op: batch.OpSaveSession, Err: err}
	}
	if tag.RowsAffected() == 0 {
		return batch.Session{}, fmt.Errorf("%w: %s/%s", batch.ErrSessionNotFound, batchID, sessionID)
	}
	s.log.Debug().Str("batch_id", batchID).Str("session_id", sessionID).Str("state", string(changes.State)).Msg("batch session updated")
	return s.GetSession(ctx, sessionID)
}
