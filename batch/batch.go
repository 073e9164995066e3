// Package batch describes batch processes: one graph run many times, with each run writing a
// row of field values into named nodes, and the sessions created for those runs.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	invoke "github.com/invokego/invoke-go"
	"github.com/invokego/invoke-go/generated"
)

// Session tracks one session created for a batch process.
type Session = invoke.BatchSession

// SessionState is the lifecycle state of a Session.
type SessionState = invoke.BatchSessionState

const (
	StateCreated    = generated.BatchSessionStateCreated
	StateInProgress = generated.BatchSessionStateInprogress
	StateCompleted  = generated.BatchSessionStateCompleted
	StateError      = generated.BatchSessionStateError
)

// SessionStates returns every session state.
func SessionStates() []SessionState {
	return []SessionState{StateCreated, StateInProgress, StateCompleted, StateError}
}

func validState(s SessionState) bool {
	for _, v := range SessionStates() {
		if s == v {
			return true
		}
	}
	return false
}

// NewSession returns a session in the created state.
func NewSession(batchID, sessionID string) Session {
	return Session{BatchId: batchID, SessionId: sessionID, State: StateCreated}
}

// SessionChanges is the only mutation a stored session accepts.
type SessionChanges struct {
	State SessionState `json:"state"`
}

// Validate checks that the state is one of SessionStates.
func (c SessionChanges) Validate() error {
	if !validState(c.State) {
		return fmt.Errorf("batch: invalid session state %q", c.State)
	}
	return nil
}

// DecodeSessionChanges decodes b strictly: unknown fields are rejected.
func DecodeSessionChanges(b []byte) (SessionChanges, error) {
	var c SessionChanges
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return SessionChanges{}, fmt.Errorf("batch: decode session changes: %w", err)
	}
	return c, c.Validate()
}

// Process is a graph plus the batches applied to it.
type Process struct {
	BatchID  string         `json:"batch_id"`
	Batches  []invoke.Batch `json:"batches"`
	Canceled bool           `json:"canceled"`
	Graph    invoke.Graph   `json:"graph"`
}

// NewProcess returns a process with a fresh batch id.
func NewProcess(graph invoke.Graph, batches ...invoke.Batch) Process {
	if batches == nil {
		batches = []invoke.Batch{}
	}
	return Process{BatchID: uuid.NewString(), Batches: batches, Graph: graph}
}

// Store persists batch processes and their sessions.
type Store interface {
	Delete(ctx context.Context, batchID string) error
	Save(ctx context.Context, p Process) (Process, error)
	Get(ctx context.Context, batchID string) (Process, error)
	Cancel(ctx context.Context, batchID string) error

	CreateSession(ctx context.Context, s Session) (Session, error)
	GetSession(ctx context.Context, sessionID string) (Session, error)
	GetCreatedSession(ctx context.Context, batchID string) (Session, error)
	GetCreatedSessions(ctx context.Context, batchID string) ([]Session, error)
	UpdateSessionState(ctx context.Context, batchID, sessionID string, changes SessionChanges) (Session, error)
}

// Runs is the number of graphs Expand produces.
func (p Process) Runs() int {
	if len(p.Batches) == 0 {
		return 1
	}
	return len(p.Batches[0].Data)
}

// Validate checks that the graph is structurally sound, every batch targets a node in it,
// and every batch has the same non-zero number of rows.
func (p Process) Validate() error {
	var errs []error
	if p.BatchID == "" {
		errs = append(errs, errors.New("batch: missing batch id"))
	}
	if err := invoke.ValidateGraph(p.Graph); err != nil {
		errs = append(errs, err)
	}
	rows := -1
	for i, b := range p.Batches {
		if b.NodeId == "" {
			errs = append(errs, fmt.Errorf("batch: batches[%d]: missing node_id", i))
		} else if p.Graph.Nodes == nil {
			errs = append(errs, fmt.Errorf("batch: batches[%d]: node %q not in graph", i, b.NodeId))
		} else if _, ok := (*p.Graph.Nodes)[b.NodeId]; !ok {
			errs = append(errs, fmt.Errorf("batch: batches[%d]: node %q not in graph", i, b.NodeId))
		}
		if len(b.Data) == 0 {
			errs = append(errs, fmt.Errorf("batch: batches[%d]: no rows", i))
			continue
		}
		if rows == -1 {
			rows = len(b.Data)
		} else if len(b.Data) != rows {
			errs = append(errs, fmt.Errorf("batch: batches[%d]: %d rows, want %d", i, len(b.Data), rows))
		}
	}
	return errors.Join(errs...)
}

// RunID is the id of the graph Expand produces for run i. It depends only on the batch id and i,
// so a stored process expands to the same ids every time.
func (p Process) RunID(i int) string {
	ns, err := uuid.Parse(p.BatchID)
	if err != nil {
		ns = uuid.NewSHA1(uuid.NameSpaceOID, []byte(p.BatchID))
	}
	return uuid.NewSHA1(ns, []byte(strconv.Itoa(i))).String()
}

// Expand returns one graph per run. Run i takes row i of every batch and writes its values
// into the batch's node, and the graph's id is RunID(i).
func (p Process) Expand() ([]invoke.Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	runs := p.Runs()
	out := make([]invoke.Graph, 0, runs)
	for i := 0; i < runs; i++ {
		g, err := cloneGraph(p.Graph)
		if err != nil {
			return nil, err
		}
		for _, b := range p.Batches {
			if err := applyRow(&g, b.NodeId, b.Data[i]); err != nil {
				return nil, fmt.Errorf("batch: run %d: %w", i, err)
			}
		}
		id := p.RunID(i)
		g.Id = &id
		out = append(out, g)
	}
	return out, nil
}

func cloneGraph(g invoke.Graph) (invoke.Graph, error) {
	var out invoke.Graph
	b, err := json.Marshal(g)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(b, &out)
	return out, err
}

func applyRow(g *invoke.Graph, nodeID string, row map[string]invoke.BatchDataValue) error {
	node := (*g.Nodes)[nodeID]
	concrete, err := invoke.DecodeNode(node)
	if err != nil {
		return err
	}
	fields := jsonFields(reflect.TypeOf(concrete))

	names := make([]string, 0, len(row))
	for name := range row {
		names = append(names, name)
	}
	sort.Strings(names)

	patch := make(map[string]json.RawMessage, len(row))
	for _, name := range names {
		if name == "id" || name == "type" || !fields[name] {
			return &FieldError{NodeID: nodeID, Field: name}
		}
		v := row[name]
		if _, err := DataValue(v); err != nil {
			return &FieldError{NodeID: nodeID, Field: name, Err: err}
		}
		raw, err := v.MarshalJSON()
		if err != nil {
			return &FieldError{NodeID: nodeID, Field: name, Err: err}
		}
		patch[name] = raw
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	raw, err := node.MarshalJSON()
	if err != nil {
		return err
	}
	merged, err := runtime.JSONMerge(raw, body)
	if err != nil {
		return err
	}
	var updated invoke.GraphNode
	if err := updated.UnmarshalJSON(merged); err != nil {
		return err
	}
	if _, err := invoke.DecodeNode(updated); err != nil {
		return &FieldError{NodeID: nodeID, Field: strings.Join(names, ","), Err: err}
	}
	(*g.Nodes)[nodeID] = updated
	return nil
}

func jsonFields(t reflect.Type) map[string]bool {
	out := map[string]bool{}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			out[name] = true
		}
	}
	return out
}

// DataValue decodes a batch value to its Go form: string, int, float32 or invoke.ImageField.
func DataValue(v invoke.BatchDataValue) (any, error) {
	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("batch: empty value")
	}
	switch c := raw[0]; {
	case c == '"':
		return v.AsBatchDataValue0()
	case c == '{':
		img, err := v.AsBatchDataValue3()
		if err != nil {
			return nil, err
		}
		if img.ImageName == "" {
			return nil, errors.New("batch: image value without image_name")
		}
		return img, nil
	case c == '-' || (c >= '0' && c <= '9'):
		if bytes.ContainsAny(raw, ".eE") {
			return v.AsBatchDataValue2()
		}
		return v.AsBatchDataValue1()
	}
	return nil, fmt.Errorf("batch: unsupported value %s", raw)
}
