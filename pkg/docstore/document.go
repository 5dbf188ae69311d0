package docstore

import (
	"context"
	"sync"

	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

// ErrNotExist is returned by backends when the named document has never been
// written.
var ErrNotExist = errors.New("document does not exist")

// Backend is the byte-level persistence collaborator. Implementations only
// provide read-or-absent and full-replace write semantics; everything else
// lives in Document.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// Document is a single named JSON document with an in-memory cache. Reads
// are served from the cache after the first load; Set persists the full
// document before replacing the cache. There is no locking across documents
// and no merge: if two mutations race, the last Set wins. That is acceptable
// only for single-user local storage.
type Document[T any] struct {
	name     string
	backend  Backend
	defaults func() T
	valid    func(T) bool

	mu     sync.Mutex
	cached T
	loaded bool
}

// New builds a Document over a backend. defaults produces the value used
// when the document is absent or unreadable; valid is the shape check
// applied to loaded values (nil means any parsed value is accepted).
func New[T any](name string, backend Backend, defaults func() T, valid func(T) bool) *Document[T] {
	return &Document[T]{
		name:     name,
		backend:  backend,
		defaults: defaults,
		valid:    valid,
	}
}

// Name returns the document's persisted name.
func (d *Document[T]) Name() string {
	return d.name
}

// Init loads the document or creates it with defaults. It is idempotent and
// never fails outward: read, parse, and shape problems all degrade to the
// default in-memory value, logged as non-fatal conditions.
func (d *Document[T]) Init(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded {
		return
	}
	d.initLocked(ctx)
}

func (d *Document[T]) initLocked(ctx context.Context) {
	log := logger.FromContext(ctx)
	value := d.defaults()

	data, err := d.backend.Read(ctx, d.name)
	switch {
	case errors.Is(err, ErrNotExist):
		if err := d.persistLocked(ctx, value); err != nil {
			log.Err(err).Warn("document create failed, continuing in memory", logger.Data{"document": d.name})
		}
	case err != nil:
		log.Err(err).Warn("document read failed, using defaults", logger.Data{"document": d.name})
	default:
		// Unmarshal over the defaults so missing keys keep their default
		// values instead of zeroing out.
		if err := json.Unmarshal(data, &value); err != nil {
			log.Err(errcodes.DataCorruption(d.name)).Warn("document failed to parse, resetting", logger.Data{"document": d.name, "parse_error": err.Error()})
			value = d.defaults()
			if err := d.persistLocked(ctx, value); err != nil {
				log.Err(err).Warn("document reset failed, continuing in memory", logger.Data{"document": d.name})
			}
		} else if d.valid != nil && !d.valid(value) {
			log.Err(errcodes.DataCorruption(d.name)).Warn("document failed shape check, resetting", logger.Data{"document": d.name})
			value = d.defaults()
			if err := d.persistLocked(ctx, value); err != nil {
				log.Err(err).Warn("document reset failed, continuing in memory", logger.Data{"document": d.name})
			}
		}
	}

	d.cached = value
	d.loaded = true
}

// Get returns the cached value, loading the document first if this is the
// first access.
func (d *Document[T]) Get(ctx context.Context) T {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.loaded {
		d.initLocked(ctx)
	}
	return d.cached
}

// Set replaces the full document and persists it. Callers must check the
// error before assuming durability; on failure the underlying cause is
// logged here and only the semantic outcome is returned.
func (d *Document[T]) Set(ctx context.Context, value T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.persistLocked(ctx, value); err != nil {
		logger.FromContext(ctx).Err(err).Warn("document write failed", logger.Data{"document": d.name})
		return errcodes.PersistenceFailed(d.name)
	}

	d.cached = value
	d.loaded = true
	return nil
}

func (d *Document[T]) persistLocked(ctx context.Context, value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(d.backend.Write(ctx, d.name, data))
}
