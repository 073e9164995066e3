// Command invokectl checks graphs and upload actions offline and manages stored batch processes.
//
// Usage:
//
//	invokectl validate-graph <graph.json>
//	invokectl validate-action <action.json>
//	invokectl expand <process.json>
//	invokectl plan-session <graph.json>
//	invokectl batch migrate
//	invokectl batch save <process.json>
//	invokectl batch get <batch_id>
//	invokectl batch cancel <batch_id>
//	invokectl batch delete <batch_id>
//	invokectl batch sessions <batch_id>
//	invokectl batch set-state <batch_id> <session_id> <state>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http/httputil"
	"os"
	"os/signal"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	invoke "github.com/invokego/invoke-go"
	"github.com/invokego/invoke-go/batch"
	"github.com/invokego/invoke-go/batch/pgstore"
	"github.com/invokego/invoke-go/internal/config"
	"github.com/invokego/invoke-go/internal/logging"
)

type batchStore interface {
	batch.Store
	Migrate(ctx context.Context) error
	InTx(ctx context.Context, fn func(batch.Store) error) error
}

type app struct {
	cfg       config.Config
	log       zerolog.Logger
	stdout    io.Writer
	openStore func(ctx context.Context) (batchStore, func(), error)
}

func main() {
	var envFile string
	flag.StringVar(&envFile, "env", "", "Extra .env file read before .env and .env.local")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: invokectl [-env file] <command> [args]")
		fmt.Fprintln(os.Stderr, "Commands: validate-graph, validate-action, expand, plan-session, batch")
	}
	flag.Parse()

	files := config.DefaultFiles
	if envFile != "" {
		files = append([]string{envFile}, files...)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invokectl: config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := logging.NewWithWriter(os.Stderr, cfg.AppEnv, cfg.LogLevel)
	a := &app{cfg: cfg, log: logger, stdout: os.Stdout}
	a.openStore = a.openPGStore

	if err := a.run(ctx, flag.Args()); err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			flag.Usage()
			fmt.Fprintf(os.Stderr, "invokectl: %v\n", err)
			os.Exit(2)
		}
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

type usageError string

func (e usageError) Error() string { return string(e) }

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "validate-graph":
		return a.withFile(rest, a.validateGraph)
	case "validate-action":
		return a.withFile(rest, a.validateAction)
	case "expand":
		return a.withFile(rest, a.expand)
	case "plan-session":
		return a.withFile(rest, func(b []byte) error { return a.planSession(ctx, b) })
	case "batch":
		return a.batch(ctx, rest)
	}
	return usageError(fmt.Sprintf("unknown command %q", cmd))
}

func (a *app) withFile(args []string, fn func([]byte) error) error {
	if len(args) != 1 {
		return usageError("expected one file argument")
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return fn(b)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func decodeGraph(b []byte) (invoke.Graph, error) {
	var g invoke.Graph
	if err := json.Unmarshal(b, &g); err != nil {
		return g, fmt.Errorf("parse graph: %w", err)
	}
	return g, nil
}

func (a *app) validateGraph(b []byte) error {
	g, err := decodeGraph(b)
	if err != nil {
		return err
	}
	if err := invoke.ValidateGraph(g); err != nil {
		return err
	}
	nodes, edges := 0, 0
	if g.Nodes != nil {
		nodes = len(*g.Nodes)
		for id, n := range *g.Nodes {
			if _, err := invoke.DecodeNode(n); err != nil {
				return fmt.Errorf("node %q: %w", id, err)
			}
		}
	}
	if g.Edges != nil {
		edges = len(*g.Edges)
	}
	fmt.Fprintf(a.stdout, "ok: %d nodes, %d edges\n", nodes, edges)
	return nil
}

func (a *app) validateAction(b []byte) error {
	action, err := invoke.DecodePostUploadAction(b)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "ok: %s\n", action.ActionType())
	return nil
}

func decodeProcess(b []byte) (batch.Process, error) {
	var p batch.Process
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse process: %w", err)
	}
	if p.BatchID == "" {
		p.BatchID = batch.NewProcess(p.Graph).BatchID
	}
	return p, nil
}

func (a *app) expand(b []byte) error {
	p, err := decodeProcess(b)
	if err != nil {
		return err
	}
	graphs, err := p.Expand()
	if err != nil {
		return err
	}
	return a.printJSON(graphs)
}

func (a *app) planSession(ctx context.Context, b []byte) error {
	g, err := decodeGraph(b)
	if err != nil {
		return err
	}
	e, err := invoke.NewEndpoint(invoke.Options{BaseURL: a.cfg.InvokeURL})
	if err != nil {
		return err
	}
	req, err := e.CreateSession(ctx, g)
	if err != nil {
		return err
	}
	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(dump)
	return err
}

func (a *app) openPGStore(ctx context.Context) (batchStore, func(), error) {
	if err := a.cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}
	pool, err := pgxpool.New(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}
	return pgstore.New(pool, a.log), pool.Close, nil
}

func (a *app) batch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing batch subcommand")
	}
	sub, rest := args[0], args[1:]
	want := map[string]int{
		"migrate": 0, "save": 1, "get": 1, "cancel": 1, "delete": 1, "sessions": 1, "set-state": 3,
	}
	n, ok := want[sub]
	if !ok {
		return usageError(fmt.Sprintf("unknown batch subcommand %q", sub))
	}
	if len(rest) != n {
		return usageError(fmt.Sprintf("batch %s expects %d argument(s)", sub, n))
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	switch sub {
	case "migrate":
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		a.log.Info().Msg("batch schema migrated")
		return nil
	case "save":
		b, err := os.ReadFile(rest[0])
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		p, err := decodeProcess(b)
		if err != nil {
			return err
		}
		return a.saveProcess(ctx, store, p)
	case "get":
		p, err := store.Get(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.printJSON(p)
	case "cancel":
		return store.Cancel(ctx, rest[0])
	case "delete":
		return store.Delete(ctx, rest[0])
	case "sessions":
		sessions, err := store.GetCreatedSessions(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.printJSON(sessions)
	default: // set-state
		sess, err := store.UpdateSessionState(ctx, rest[0], rest[1], batch.SessionChanges{State: batch.SessionState(rest[2])})
		if err != nil {
			return err
		}
		return a.printJSON(sess)
	}
}

// saveProcess stores p and one created session per expanded graph. Session i has id
// p.RunID(i), so expanding the stored process again yields each session's graph.
func (a *app) saveProcess(ctx context.Context, store batchStore, p batch.Process) error {
	graphs, err := p.Expand()
	if err != nil {
		return err
	}
	var sessions []batch.Session
	err = store.InTx(ctx, func(tx batch.Store) error {
		if _, err := tx.Save(ctx, p); err != nil {
			return err
		}
		for _, g := range graphs {
			sess, err := tx.CreateSession(ctx, batch.NewSession(p.BatchID, *g.Id))
			if err != nil {
				return err
			}
			sessions = append(sessions, sess)
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.log.Info().Str("batch_id", p.BatchID).Int("sessions", len(sessions)).Msg("batch process saved")
	return a.printJSON(invoke.BatchProcessResponse{BatchId: p.BatchID, SessionIds: sessionIDs(sessions)})
}

func sessionIDs(sessions []batch.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.SessionId)
	}
	return out
}
