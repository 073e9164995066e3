package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoke "github.com/invokego/invoke-go"
	"github.com/invokego/invoke-go/batch"
)

type call struct {
	query string
	args  []any
}

// fakeDB replays scripted results in call order.
type fakeDB struct {
	execs   []call
	queries []call

	execTags []pgconn.CommandTag
	execErr  error
	rows     [][]any
	rowErr   error
	multi    [][]any
}

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, call{query, args})
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	if len(f.execTags) == 0 {
		return pgconn.NewCommandTag("OK"), nil
	}
	tag := f.execTags[0]
	f.execTags = f.execTags[1:]
	return tag, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.queries = append(f.queries, call{query, args})
	if f.rowErr != nil {
		return fakeRow{err: f.rowErr}
	}
	if len(f.rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	r := f.rows[0]
	f.rows = f.rows[1:]
	return fakeRow{values: r}
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, call{query, args})
	return &fakeRows{values: f.multi, pos: -1}, nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

func scanInto(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		target.Set(reflect.ValueOf(values[i]).Convert(target.Type()))
	}
	return nil
}

type fakeRows struct {
	values [][]any
	pos    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.values[r.pos], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.values)
}

func (r *fakeRows) Scan(dest ...any) error { return scanInto(r.values[r.pos], dest) }

func newStore(db *fakeDB) *Store { return New(db, zerolog.Nop()) }

func testProcess(t *testing.T) batch.Process {
	t.Helper()
	g := invoke.NewGraph("g")
	require.NoError(t, invoke.AddNode(&g, invoke.IntegerInvocation{Id: "seed"}))
	var rows []map[string]invoke.BatchDataValue
	require.NoError(t, json.Unmarshal([]byte(`[{"a": 1}, {"a": 2}]`), &rows))
	p := batch.NewProcess(g, invoke.Batch{NodeId: "seed", Data: rows})
	p.BatchID = "b1"
	return p
}

func processRow(t *testing.T, p batch.Process) []any {
	t.Helper()
	batches, err := json.Marshal(p.Batches)
	require.NoError(t, err)
	graph, err := json.Marshal(p.Graph)
	require.NoError(t, err)
	return []any{p.BatchID, batches, graph, p.Canceled}
}

func TestMigrate(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, newStore(db).Migrate(context.Background()))
	require.Len(t, db.execs, len(schema))
	assert.Contains(t, db.execs[0].query, "CREATE TABLE IF NOT EXISTS batch_process")
	joined := ""
	for _, c := range db.execs {
		joined += c.query + "\n"
	}
	assert.Contains(t, joined, "ON DELETE CASCADE")
	assert.Contains(t, joined, "tg_batch_session_updated_at")
}

func TestSave_InsertsThenReads(t *testing.T) {
	p := testProcess(t)
	db := &fakeDB{rows: [][]any{processRow(t, p)}}

	got, err := newStore(db).Save(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].query, "ON CONFLICT (batch_id) DO NOTHING")
	assert.Equal(t, "b1", db.execs[0].args[0])
	assert.Equal(t, "b1", got.BatchID)
	require.Len(t, got.Batches, 1)
	assert.Equal(t, "seed", got.Batches[0].NodeId)
	assert.Len(t, got.Batches[0].Data, 2)
	require.NotNil(t, got.Graph.Nodes)
	assert.Contains(t, *got.Graph.Nodes, "seed")
}

func TestSave_WrapsFailure(t *testing.T) {
	boom := errors.New("connection reset")
	db := &fakeDB{execErr: boom}
	_, err := newStore(db).Save(context.Background(), testProcess(t))

	var storeErr *batch.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, batch.OpSaveProcess, storeErr.Op)
	assert.ErrorIs(t, err, boom)
}

func TestGet_NotFound(t *testing.T) {
	_, err := newStore(&fakeDB{}).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, batch.ErrProcessNotFound)
}

func TestDelete(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, newStore(db).Delete(context.Background(), "b1"))
	assert.Contains(t, db.execs[0].query, "DELETE FROM batch_process")

	db = &fakeDB{execErr: errors.New("locked")}
	err := newStore(db).Delete(context.Background(), "b1")
	var storeErr *batch.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, batch.OpDeleteProcess, storeErr.Op)
}

func TestCancel(t *testing.T) {
	db := &fakeDB{execTags: []pgconn.CommandTag{pgconn.NewCommandTag("UPDATE 1")}}
	require.NoError(t, newStore(db).Cancel(context.Background(), "b1"))
	assert.Contains(t, db.execs[0].query, "canceled = TRUE")

	db = &fakeDB{execTags: []pgconn.CommandTag{pgconn.NewCommandTag("UPDATE 0")}}
	assert.ErrorIs(t, newStore(db).Cancel(context.Background(), "nope"), batch.ErrProcessNotFound)
}

func TestCreateSession(t *testing.T) {
	db := &fakeDB{rows: [][]any{{"b1", "s1", "created"}}}
	sess, err := newStore(db).CreateSession(context.Background(), batch.NewSession("b1", "s1"))
	require.NoError(t, err)
	assert.Equal(t, batch.StateCreated, sess.State)
	assert.Equal(t, []any{"b1", "s1", "created"}, db.execs[0].args)
	assert.Contains(t, db.queries[0].query, "WHERE session_id = $1")
}

func TestGetSession_NotFound(t *testing.T) {
	_, err := newStore(&fakeDB{}).GetSession(context.Background(), "s9")
	assert.ErrorIs(t, err, batch.ErrSessionNotFound)

	_, err = newStore(&fakeDB{}).GetCreatedSession(context.Background(), "b1")
	assert.ErrorIs(t, err, batch.ErrSessionNotFound)
}

func TestGetCreatedSession(t *testing.T) {
	db := &fakeDB{rows: [][]any{{"b1", "s1", "created"}}}
	sess, err := newStore(db).GetCreatedSession(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sess.SessionId)
	assert.Equal(t, []any{"b1", "created"}, db.queries[0].args)
	assert.Contains(t, db.queries[0].query, "LIMIT 1")
}

func TestGetCreatedSessions(t *testing.T) {
	db := &fakeDB{multi: [][]any{{"b1", "s1", "created"}, {"b1", "s2", "created"}}}
	sessions, err := newStore(db).GetCreatedSessions(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s2", sessions[1].SessionId)
	assert.True(t, strings.Contains(db.queries[0].query, "ORDER BY created_at"))
}

func TestUpdateSessionState(t *testing.T) {
	db := &fakeDB{
		execTags: []pgconn.CommandTag{pgconn.NewCommandTag("UPDATE 1")},
		rows:     [][]any{{"b1", "s1", "inprogress"}},
	}
	sess, err := newStore(db).UpdateSessionState(context.Background(), "b1", "s1", batch.SessionChanges{State: batch.StateInProgress})
	require.NoError(t, err)
	assert.Equal(t, batch.StateInProgress, sess.State)
	assert.Equal(t, []any{"b1", "s1", "inprogress"}, db.execs[0].args)

	db = &fakeDB{}
	_, err = newStore(db).UpdateSessionState(context.Background(), "b1", "s1", batch.SessionChanges{State: "paused"})
	assert.Error(t, err)
	assert.Empty(t, db.execs, "invalid changes must not reach the database")

	db = &fakeDB{execTags: []pgconn.CommandTag{pgconn.NewCommandTag("UPDATE 0")}}
	_, err = newStore(db).UpdateSessionState(context.Background(), "b1", "s1", batch.SessionChanges{State: batch.StateError})
	assert.ErrorIs(t, err, batch.ErrSessionNotFound)
}

func TestInTx_WithoutBeginner(t *testing.T) {
	db := &fakeDB{}
	s := newStore(db)
	called := false
	require.NoError(t, s.InTx(context.Background(), func(tx batch.Store) error {
		called = true
		assert.Same(t, s, tx)
		return nil
	}))
	assert.True(t, called)
}
