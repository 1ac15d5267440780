package pure

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded memo table addressed by key paths.
//
// Two generations of nested sync.Maps are kept. Stores go to the head
// generation; once maxSize stores have landed there, the older generation is
// dropped and the head flips. Loads consult the head first, then the previous
// generation, so at most 2*maxSize entries are reachable.
//
// Stores claim a slot in the head under a read lock and rotation takes the
// write lock, so a generation never receives more than maxSize stores.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
	rotMu   sync.RWMutex
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	checkKeys(keys)
	head := t.headIdx.Load()
	for _, idx := range [2]uint32{head, 1 - head} {
		if v, ok := lookup(t.memos[idx].Load(), keys); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []Key, value O) {
	checkKeys(keys)
	for !t.tryStore(keys, value) {
		t.rotate()
	}
}

// tryStore writes into the head generation if it still has a free slot.
func (t *Trie[O]) tryStore(keys []Key, value O) bool {
	t.rotMu.RLock()
	defer t.rotMu.RUnlock()

	if t.size.Add(1) > t.maxSize {
		return false
	}
	m, k := traverse(t.memos[t.headIdx.Load()].Load(), keys)
	m.Store(k, value)
	return true
}

// rotate drops the older generation and makes it the new, empty head. Callers
// that lost the race find the counter already reset and return.
func (t *Trie[O]) rotate() {
	t.rotMu.Lock()
	defer t.rotMu.Unlock()

	if t.size.Load() <= t.maxSize {
		return
	}
	next := 1 - t.headIdx.Load()
	t.memos[next].Store(&sync.Map{})
	t.headIdx.Store(next)
	t.size.Store(0)
}

func checkKeys(keys []Key) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
}

// lookup walks the key path without creating intermediate nodes.
func lookup(m *sync.Map, keys []Key) (any, bool) {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		next, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = next.(*sync.Map)
	}
	return m.Load(keys[last])
}

// traverse walks the key path, creating intermediate nodes as needed, and
// returns the leaf map together with the final key.
func traverse(m *sync.Map, keys []Key) (*sync.Map, any) {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		next, _ := m.LoadOrStore(k, &sync.Map{})
		m = next.(*sync.Map)
	}
	return m, keys[last]
}
