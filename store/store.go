// Package store keeps a history of solved recurrences in BadgerDB.
//
// Entries are keyed by creation time so that a reverse key scan yields the
// newest analyses first:
//
//	analysis/<unix nanos, 8 bytes big-endian><entry id, 16 bytes>
//
// Values are JSON encoded Entry records. A History is safe for concurrent use.
package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/recurrence/recurrence"
)

var (
	// ErrNoDir indicates a persistent store configured without a directory.
	ErrNoDir = errors.New("store: dir is required unless in memory")

	// ErrCorrupt indicates a stored value that does not decode as an Entry.
	ErrCorrupt = errors.New("store: corrupt entry")
)

var keyPrefix = []byte("analysis/")

// Source values recorded with each entry.
const (
	SourceCLI   = "cli"
	SourceHTTP  = "http"
	SourceBatch = "batch"
)

// Entry is one stored analysis.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Equation  string    `json:"equation"`
	Notation  string    `json:"notation"`
	Method    string    `json:"method"`
	Bound     string    `json:"bound"`
	Case      string    `json:"case"`
	Source    string    `json:"source"`
}

// Config configures Open.
type Config struct {
	// Dir holds the database files; ignored when InMemory.
	Dir string
	// InMemory keeps everything in RAM. Useful for tests and `serve --in-memory`.
	InMemory bool
	// SyncWrites fsyncs every commit.
	SyncWrites bool
	// Logger receives BadgerDB's internal messages; the zero value discards them.
	Logger logr.Logger
	// Now stamps new entries; nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns a durable on-disk configuration rooted at dir.
func DefaultConfig(dir string) Config {
	return Config{Dir: dir, SyncWrites: true}
}

// InMemoryConfig returns a throwaway configuration.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// History is the analysis log.
type History struct {
	db  *badger.DB
	now func() time.Time
	log logr.Logger
}

// Open opens (creating if needed) the history database.
func Open(cfg Config) (*History, error) {
	if !cfg.InMemory && cfg.Dir == "" {
		return nil, ErrNoDir
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("store: create dir %s: %w", cfg.Dir, err)
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger.GetSink() != nil {
		opts = opts.WithLogger(badgerLogger{log: cfg.Logger.WithName("badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	log := cfg.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	return &History{db: db, now: now, log: log}, nil
}

// Close releases the database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores res under a fresh id and returns the entry written.
func (h *History) Record(ctx context.Context, res recurrence.Result, source string) (Entry, error) {
	e := Entry{
		ID:        uuid.New(),
		CreatedAt: h.now().UTC(),
		Equation:  res.Equation,
		Notation:  string(res.Notation),
		Method:    res.Method,
		Bound:     res.Bound,
		Case:      res.Case.String(),
		Source:    source,
	}
	if err := h.Append(ctx, e); err != nil {
		return Entry{}, err
	}

	return e, nil
}

// Append stores e as is.
func (h *History) Append(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("store: encode entry: %w", err)
	}

	err = h.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(e), val)
	})
	if err != nil {
		return fmt.Errorf("store: write entry %s: %w", e.ID, err)
	}
	h.log.V(1).Info("analysis recorded", "id", e.ID.String(), "method", e.Method, "source", e.Source)

	return nil
}

// List returns up to limit entries, newest first. limit <= 0 returns all.
func (h *History) List(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Entry
	err := h.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = keyPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := append(append([]byte{}, keyPrefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(keyPrefix); it.Next() {
			if limit > 0 && len(out) >= limit {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			var e Entry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			})
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrCorrupt, it.Item().Key(), err)
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// entryKey orders keys by creation time, then id.
func entryKey(e Entry) []byte {
	key := make([]byte, 0, len(keyPrefix)+8+16)
	key = append(key, keyPrefix...)
	key = binary.BigEndian.AppendUint64(key, uint64(e.CreatedAt.UnixNano()))
	return append(key, e.ID[:]...)
}

// badgerLogger adapts logr to badger.Logger.
type badgerLogger struct {
	log logr.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(nil, fmt.Sprintf(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...), "severity", "warning")
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.V(1).Info(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.V(2).Info(fmt.Sprintf(format, args...))
}
