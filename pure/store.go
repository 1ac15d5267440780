package pure

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Table is the storage behind a tableized function.
type Table[O any] interface {
	Load(keys []Key) (O, bool)
	Store(keys []Key, value O)
}

// Backend selects the Table implementation used by Tableize.
type Backend string

const (
	BackendTrie      Backend = "trie"
	BackendRistretto Backend = "ristretto"
)

// ParseBackend maps a configuration string to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendTrie, "":
		return BackendTrie, nil
	case BackendRistretto:
		return BackendRistretto, nil
	default:
		return "", fmt.Errorf("unknown memo backend: %q", s)
	}
}

type options struct {
	backend Backend
	scope   *Scope
}

// Option customizes a Tableize call.
type Option func(*options)

// WithBackend picks the table implementation.
func WithBackend(b Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithScope registers the table with scope, which closes it.
func WithScope(scope *Scope) Option {
	return func(o *options) { o.scope = scope }
}

// WithRistretto selects the ristretto backend owned by scope.
func WithRistretto(scope *Scope) Option {
	return func(o *options) {
		o.backend = BackendRistretto
		o.scope = scope
	}
}

func newTable[O any](maxTableSize uint32, opts []Option) Table[O] {
	o := options{backend: BackendTrie}
	for _, opt := range opts {
		opt(&o)
	}
	switch o.backend {
	case BackendRistretto:
		if o.scope == nil {
			panic("pure: ristretto backend needs WithScope")
		}
		table, err := NewRistrettoTable[O](maxTableSize)
		if err != nil {
			panic(fmt.Sprintf("failed to create ristretto table: %v", err))
		}
		o.scope.add(table.Close)
		return table
	default:
		return NewTrie[O](maxTableSize)
	}
}

// RistrettoTable is a Table backed by a ristretto cache. Key paths are
// folded into a single xxhash digest, so two distinct paths with the same
// digest share an entry.
type RistrettoTable[O any] struct {
	cache *ristretto.Cache[uint64, O]
}

func NewRistrettoTable[O any](maxTableSize uint32) (*RistrettoTable[O], error) {
	if maxTableSize == 0 {
		panic("maxSize should be greater than 0")
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, O]{
		NumCounters:        int64(maxTableSize) * 10,
		MaxCost:            int64(maxTableSize),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoTable[O]{cache: cache}, nil
}

func (r *RistrettoTable[O]) Load(keys []Key) (O, bool) {
	checkKeys(keys)
	return r.cache.Get(digest(keys))
}

// Store waits for the write buffer to drain so the value is visible to the
// next Load.
func (r *RistrettoTable[O]) Store(keys []Key, value O) {
	checkKeys(keys)
	r.cache.Set(digest(keys), value, 1)
	r.cache.Wait()
}

// Close stops the cache's background goroutines.
func (r *RistrettoTable[O]) Close() {
	r.cache.Close()
}

func digest(keys []Key) uint64 {
	d := xxhash.New()
	for _, k := range keys {
		_, _ = fmt.Fprintf(d, "%T:%v\x00", k, k)
	}
	return d.Sum64()
}
