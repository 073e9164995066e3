package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoke "github.com/invokego/invoke-go"
	"github.com/invokego/invoke-go/batch"
	"github.com/invokego/invoke-go/internal/config"
)

// memStore is an in-memory batchStore.
type memStore struct {
	migrated  bool
	processes map[string]batch.Process
	sessions  map[string]batch.Session
	order     []string
}

func newMemStore() *memStore {
	return &memStore{processes: map[string]batch.Process{}, sessions: map[string]batch.Session{}}
}

func (m *memStore) Migrate(context.Context) error { m.migrated = true; return nil }

func (m *memStore) InTx(_ context.Context, fn func(batch.Store) error) error { return fn(m) }

func (m *memStore) Delete(_ context.Context, id string) error {
	delete(m.processes, id)
	return nil
}

func (m *memStore) Save(ctx context.Context, p batch.Process) (batch.Process, error) {
	if _, ok := m.processes[p.BatchID]; !ok {
		m.processes[p.BatchID] = p
	}
	return m.Get(ctx, p.BatchID)
}

func (m *memStore) Get(_ context.Context, id string) (batch.Process, error) {
	p, ok := m.processes[id]
	if !ok {
		return batch.Process{}, fmt.Errorf("%w: %s", batch.ErrProcessNotFound, id)
	}
	return p, nil
}

func (m *memStore) Cancel(_ context.Context, id string) error {
	p, ok := m.processes[id]
	if !ok {
		return batch.ErrProcessNotFound
	}
	p.Canceled = true
	m.processes[id] = p
	return nil
}

func (m *memStore) CreateSession(ctx context.Context, s batch.Session) (batch.Session, error) {
	if _, ok := m.sessions[s.SessionId]; !ok {
		m.sessions[s.SessionId] = s
		m.order = append(m.order, s.SessionId)
	}
	return m.GetSession(ctx, s.SessionId)
}

func (m *memStore) GetSession(_ context.Context, id string) (batch.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return batch.Session{}, batch.ErrSessionNotFound
	}
	return s, nil
}

func (m *memStore) GetCreatedSession(ctx context.Context, batchID string) (batch.Session, error) {
	all, _ := m.GetCreatedSessions(ctx, batchID)
	if len(all) == 0 {
		return batch.Session{}, batch.ErrSessionNotFound
	}
	return all[0], nil
}

func (m *memStore) GetCreatedSessions(_ context.Context, batchID string) ([]batch.Session, error) {
	var out []batch.Session
	for _, id := range m.order {
		s := m.sessions[id]
		if s.BatchId == batchID && s.State == batch.StateCreated {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) UpdateSessionState(_ context.Context, batchID, sessionID string, c batch.SessionChanges) (batch.Session, error) {
	if err := c.Validate(); err != nil {
		return batch.Session{}, err
	}
	s, ok := m.sessions[sessionID]
	if !ok || s.BatchId != batchID {
		return batch.Session{}, batch.ErrSessionNotFound
	}
	s.State = c.State
	m.sessions[sessionID] = s
	return s, nil
}

func newTestApp(store *memStore) (*app, *bytes.Buffer) {
	var out bytes.Buffer
	a := &app{
		cfg:    config.Config{AppEnv: "test", InvokeURL: "http://invoke.test:9090"},
		log:    zerolog.Nop(),
		stdout: &out,
		openStore: func(context.Context) (batchStore, func(), error) {
			return store, func() {}, nil
		},
	}
	return a, &out
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const graphJSON = `{
	"id": "g",
	"nodes": {
		"a": {"id": "a", "type": "integer", "a": 4},
		"r": {"id": "r", "type": "range_of_size", "start": 0, "size": 4}
	},
	"edges": [
		{"source": {"node_id": "a", "field": "a"}, "destination": {"node_id": "r", "field": "size"}}
	]
}`

const processJSON = `{
	"batch_id": "b1",
	"graph": {"id": "g", "nodes": {"seed": {"id": "seed", "type": "integer"}}},
	"batches": [{"node_id": "seed", "data": [{"a": 1}, {"a": 2}, {"a": 3}]}]
}`

func TestRun_Usage(t *testing.T) {
	a, _ := newTestApp(newMemStore())
	var usage usageError
	assert.ErrorAs(t, a.run(context.Background(), nil), &usage)
	assert.ErrorAs(t, a.run(context.Background(), []string{"frobnicate"}), &usage)
	assert.ErrorAs(t, a.run(context.Background(), []string{"batch", "get"}), &usage)
	assert.ErrorAs(t, a.run(context.Background(), []string{"batch", "explode", "x"}), &usage)
}

func TestValidateGraph(t *testing.T) {
	a, out := newTestApp(newMemStore())
	require.NoError(t, a.run(context.Background(), []string{"validate-graph", writeFile(t, graphJSON)}))
	assert.Equal(t, "ok: 2 nodes, 1 edges\n", out.String())

	bad := `{"nodes": {"a": {"id": "b", "type": "integer"}}}`
	assert.Error(t, a.run(context.Background(), []string{"validate-graph", writeFile(t, bad)}))

	badField := `{"nodes": {"a": {"id": "a", "type": "integer", "a": "four"}}}`
	assert.Error(t, a.run(context.Background(), []string{"validate-graph", writeFile(t, badField)}))
}

func TestValidateAction(t *testing.T) {
	a, out := newTestApp(newMemStore())
	require.NoError(t, a.run(context.Background(), []string{"validate-action", writeFile(t, `{"type": "ADD_TO_BATCH"}`)}))
	assert.Equal(t, "ok: ADD_TO_BATCH\n", out.String())

	assert.Error(t, a.run(context.Background(), []string{"validate-action", writeFile(t, `{"type": "SET_NODES_IMAGE"}`)}))
}

func TestExpand(t *testing.T) {
	a, out := newTestApp(newMemStore())
	require.NoError(t, a.run(context.Background(), []string{"expand", writeFile(t, processJSON)}))

	var graphs []invoke.Graph
	require.NoError(t, json.Unmarshal(out.Bytes(), &graphs))
	assert.Len(t, graphs, 3)
}

func TestPlanSession(t *testing.T) {
	a, out := newTestApp(newMemStore())
	require.NoError(t, a.run(context.Background(), []string{"plan-session", writeFile(t, graphJSON)}))
	assert.Contains(t, out.String(), "POST /api/v1/sessions/ HTTP/1.1")
	assert.Contains(t, out.String(), "Host: invoke.test:9090")
	assert.Contains(t, out.String(), `"range_of_size"`)
}

func TestBatchLifecycle(t *testing.T) {
	store := newMemStore()
	a, out := newTestApp(store)
	ctx := context.Background()

	require.NoError(t, a.run(ctx, []string{"batch", "migrate"}))
	assert.True(t, store.migrated)

	require.NoError(t, a.run(ctx, []string{"batch", "save", writeFile(t, processJSON)}))
	var resp invoke.BatchProcessResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "b1", resp.BatchId)
	require.Len(t, resp.SessionIds, 3)

	stored, err := store.Get(ctx, "b1")
	require.NoError(t, err)
	graphs, err := stored.Expand()
	require.NoError(t, err)
	for i, g := range graphs {
		assert.Equal(t, resp.SessionIds[i], *g.Id, "session %d must match run %d of the stored process", i, i)
	}

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"batch", "set-state", "b1", resp.SessionIds[0], "inprogress"}))
	assert.Error(t, a.run(ctx, []string{"batch", "set-state", "b1", resp.SessionIds[1], "paused"}))

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"batch", "sessions", "b1"}))
	var created []batch.Session
	require.NoError(t, json.Unmarshal(out.Bytes(), &created))
	ids := []string{created[0].SessionId, created[1].SessionId}
	sort.Strings(ids)
	want := []string{resp.SessionIds[1], resp.SessionIds[2]}
	sort.Strings(want)
	assert.Equal(t, want, ids)

	require.NoError(t, a.run(ctx, []string{"batch", "cancel", "b1"}))
	out.Reset()
	require.NoError(t, a.run(ctx, []string{"batch", "get", "b1"}))
	var p batch.Process
	require.NoError(t, json.Unmarshal(out.Bytes(), &p))
	assert.True(t, p.Canceled)

	require.NoError(t, a.run(ctx, []string{"batch", "delete", "b1"}))
	assert.ErrorIs(t, a.run(ctx, []string{"batch", "get", "b1"}), batch.ErrProcessNotFound)
}
