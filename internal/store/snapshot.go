package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/qri-io/jsonschema"
)

// snapshotSchema is the shape check applied to a snapshot file before it
// is merged over the seed data. It only pins the structure, not every
// field: a snapshot written by an older build must still load.
const snapshotSchema = `{
	"type": "object",
	"properties": {
		"experts": {
			"type": "array",
			"items": {"type": "object", "required": ["id", "name", "industry"]}
		},
		"expertApplications": {"type": "array", "items": {"type": "object"}},
		"clientFeedback": {"type": "array", "items": {"type": "object"}},
		"expertFeedback": {"type": "array", "items": {"type": "object"}},
		"connections": {"type": "array", "items": {"type": "object"}},
		"waitlist": {"type": "array", "items": {"type": "object"}}
	}
}`

// loadSnapshot reads and validates the snapshot file and merges it over
// the seed: collections present in the file replace the seed's, absent
// ones keep the seed values.
func loadSnapshot(ctx context.Context, path string, seed *database) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(snapshotSchema), rs); err != nil {
		return fmt.Errorf("compile snapshot schema: %w", err)
	}
	keyErrs, err := rs.ValidateBytes(ctx, data)
	if err != nil {
		return fmt.Errorf("validate snapshot: %w", err)
	}
	if len(keyErrs) > 0 {
		return fmt.Errorf("snapshot does not match schema: %s", keyErrs[0].Error())
	}

	return json.Unmarshal(data, seed)
}

// snapshotWriter persists serialized snapshots in the background. It is
// fire-and-forget: a failed write is logged and never retried, because the
// in-memory state is the source of truth and the file is only a restart
// recovery aid. The channel holds at most one pending snapshot; a newer
// one replaces it (only the latest full rewrite matters).
type snapshotWriter struct {
	path   string
	logger *slog.Logger
	ch     chan []byte
	stop   chan struct{}
	wg     sync.WaitGroup
}

func newSnapshotWriter(path string, logger *slog.Logger) *snapshotWriter {
	w := &snapshotWriter{
		path:   path,
		logger: logger,
		ch:     make(chan []byte, 1),
		stop:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// enqueue hands a serialized snapshot to the writer, displacing any
// not-yet-written older one. Never blocks the caller.
func (w *snapshotWriter) enqueue(data []byte) {
	for {
		select {
		case w.ch <- data:
			return
		default:
			select {
			case <-w.ch:
				// drop the stale pending snapshot
			default:
			}
		}
	}
}

func (w *snapshotWriter) run() {
	defer w.wg.Done()
	for {
		select {
		case data := <-w.ch:
			w.write(data)
		case <-w.stop:
			// flush the last pending snapshot, if any
			select {
			case data := <-w.ch:
				w.write(data)
			default:
			}
			return
		}
	}
}

func (w *snapshotWriter) write(data []byte) {
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		w.logger.Error("save snapshot", "path", w.path, "err", err)
	}
}

// Stop flushes any pending snapshot and waits for the writer goroutine.
func (w *snapshotWriter) Stop() {
	close(w.stop)
	w.wg.Wait()
}
