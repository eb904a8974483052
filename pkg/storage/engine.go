package storage

import (
	"bytes"
	"sync"

	iradix "github.com/hashicorp/go-immutable-radix"
	"go.uber.org/atomic"
)

// Row is a single key-value pair.
type Row struct {
	Key   []byte
	Value []byte
}

type Stats struct {
	Keys    int
	Gets    uint64
	Puts    uint64
	Deletes uint64
}

// Engine is an ordered in-memory key-value store. Readers work on immutable
// snapshots of the tree, so iterators never observe later writes.
type Engine struct {
	mu   sync.RWMutex
	tree *iradix.Tree

	gets    atomic.Uint64
	puts    atomic.Uint64
	deletes atomic.Uint64
}

func NewEngine() *Engine {
	return &Engine{
		tree: iradix.New(),
	}
}

func (e *Engine) root() *iradix.Tree {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tree
}

func (e *Engine) Get(key []byte) ([]byte, bool) {
	e.gets.Inc()

	v, ok := e.root().Get(key)
	if !ok {
		return nil, false
	}
	return bytes.Clone(v.([]byte)), true
}

func (e *Engine) Put(key, value []byte) {
	e.puts.Inc()

	stored := bytes.Clone(value)
	if stored == nil {
		stored = []byte{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.tree, _, _ = e.tree.Insert(bytes.Clone(key), stored)
}

// Delete removes key and reports whether it existed.
func (e *Engine) Delete(key []byte) bool {
	e.deletes.Inc()

	e.mu.Lock()
	defer e.mu.Unlock()

	tree, _, ok := e.tree.Delete(key)
	if ok {
		e.tree = tree
	}
	return ok
}

// DeleteRange drops all keys in [lo, hi). An empty hi means unbounded.
func (e *Engine) DeleteRange(lo, hi []byte) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	txn := e.tree.Txn()
	it := newIterator(e.tree, lo, hi)
	dropped := 0
	for {
		row, ok := it.Next()
		if !ok {
			break
		}
		txn.Delete(row.Key)
		dropped++
	}
	e.tree = txn.Commit()
	e.deletes.Add(uint64(dropped))

	return dropped
}

// Import writes rows in a single transaction.
func (e *Engine) Import(rows []Row) {
	e.mu.Lock()
	defer e.mu.Unlock()

	txn := e.tree.Txn()
	for _, r := range rows {
		value := bytes.Clone(r.Value)
		if value == nil {
			value = []byte{}
		}
		txn.Insert(bytes.Clone(r.Key), value)
	}
	e.tree = txn.Commit()
	e.puts.Add(uint64(len(rows)))
}

// Export returns up to limit rows of [lo, hi) strictly after the key after
// (when set) and whether more rows remain.
func (e *Engine) Export(lo, hi, after []byte, limit int) ([]Row, bool) {
	start := lo
	if len(after) != 0 && bytes.Compare(after, lo) >= 0 {
		start = append(bytes.Clone(after), 0)
	}

	it := newIterator(e.root(), start, hi)
	rows := make([]Row, 0, limit)
	for len(rows) < limit {
		row, ok := it.Next()
		if !ok {
			return rows, false
		}
		rows = append(rows, row)
	}
	_, more := it.Peek()
	return rows, more
}

// Snapshot captures the current state of the engine.
func (e *Engine) Snapshot() *Snapshot {
	return &Snapshot{tree: e.root()}
}

func (e *Engine) Stats() Stats {
	return Stats{
		Keys:    e.root().Len(),
		Gets:    e.gets.Load(),
		Puts:    e.puts.Load(),
		Deletes: e.deletes.Load(),
	}
}

type Snapshot struct {
	tree *iradix.Tree
}

// Iterator returns rows of [start, stop) in key order. Empty stop means
// unbounded.
func (s *Snapshot) Iterator(start, stop []byte) *Iterator {
	return newIterator(s.tree, start, stop)
}

func (s *Snapshot) Get(key []byte) ([]byte, bool) {
	v, ok := s.tree.Get(key)
	if !ok {
		return nil, false
	}
	return bytes.Clone(v.([]byte)), true
}

// Iterator is a forward cursor over a snapshot. It is not safe for
// concurrent use.
type Iterator struct {
	it   *iradix.Iterator
	stop []byte

	peeked *Row
	done   bool
}

func newIterator(tree *iradix.Tree, start, stop []byte) *Iterator {
	it := tree.Root().Iterator()
	it.SeekLowerBound(start)
	return &Iterator{
		it:   it,
		stop: bytes.Clone(stop),
	}
}

func (i *Iterator) advance() (Row, bool) {
	if i.done {
		return Row{}, false
	}
	k, v, ok := i.it.Next()
	if !ok || (len(i.stop) != 0 && bytes.Compare(k, i.stop) >= 0) {
		i.done = true
		return Row{}, false
	}
	return Row{Key: bytes.Clone(k), Value: bytes.Clone(v.([]byte))}, true
}

func (i *Iterator) Next() (Row, bool) {
	if i.peeked != nil {
		row := *i.peeked
		i.peeked = nil
		return row, true
	}
	return i.advance()
}

// Peek returns the next row without consuming it.
func (i *Iterator) Peek() (Row, bool) {
	if i.peeked != nil {
		return *i.peeked, true
	}
	row, ok := i.advance()
	if !ok {
		return Row{}, false
	}
	i.peeked = &row
	return row, true
}

// Close releases the underlying snapshot.
func (i *Iterator) Close() error {
	i.done = true
	i.peeked = nil
	i.it = nil
	return nil
}
