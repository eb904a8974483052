package scanner

import (
	"bytes"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
	"github.com/egkv/egkv/pkg/storage"
)

// Cursor is the storage iterator a scanner advances.
type Cursor interface {
	Next() (storage.Row, bool)
	Close() error
}

type Filter struct {
	KeyPrefix []byte
	KeysOnly  bool
}

func (f Filter) apply(row storage.Row) (storage.Row, bool) {
	if len(f.KeyPrefix) != 0 && !bytes.HasPrefix(row.Key, f.KeyPrefix) {
		return storage.Row{}, false
	}
	if f.KeysOnly {
		row.Value = nil
	}
	return row, true
}

type Batch struct {
	Rows      []storage.Row
	EndOfData bool
}

type Config struct {
	LeaseDuration time.Duration
	MaxBatch      int
}

type Scanner struct {
	ID            uint64
	EntityGroupID string
	LeaseDuration time.Duration

	mu           sync.Mutex
	cursor       Cursor
	filter       Filter
	lastAccess   time.Time
	busy         bool
	closed       bool
	pendingClose bool

	nextSeq   uint64
	lastBatch *Batch
}

func (s *Scanner) release() error {
	s.closed = true
	s.lastBatch = nil
	if s.cursor == nil {
		return nil
	}
	err := s.cursor.Close()
	s.cursor = nil
	return err
}

// finished is the final batch of a scanner that reached end of data. It
// answers a resend of that call until the lease would have run out.
type finished struct {
	seq   uint64
	batch *Batch
	until time.Time
}

type Stats struct {
	Live    int
	Opened  uint64
	Closed  uint64
	Expired uint64
}

// Table owns every live scanner of the server. The table lock only guards
// membership; each scanner is advanced under its own lock.
type Table struct {
	mu       sync.RWMutex
	scanners map[string]map[uint64]*Scanner
	byID     map[uint64]*Scanner
	finished map[uint64]finished

	cfg   Config
	now   func() time.Time
	idGen atomic.Uint64

	opened  atomic.Uint64
	closed  atomic.Uint64
	expired atomic.Uint64
}

type Option func(*Table)

// WithClock replaces the wall clock used for lease accounting.
func WithClock(now func() time.Time) Option {
	return func(t *Table) {
		t.now = now
	}
}

func NewTable(cfg Config, opts ...Option) *Table {
	t := &Table{
		scanners: map[string]map[uint64]*Scanner{},
		byID:     map[uint64]*Scanner{},
		finished: map[uint64]finished{},
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	// ids stay unique across restarts of the process
	t.idGen.Store(uint64(t.now().UnixNano()))
	return t
}

func unknownScanner(id uint64) error {
	return egerror.Newf(egerror.EGKV_UNKNOWN_SCANNER, "scanner %d is not live", id)
}

// Open registers a scanner over cursor and starts its lease.
func (t *Table) Open(groupID string, cursor Cursor, filter Filter) *Scanner {
	s := &Scanner{
		ID:            t.idGen.Inc(),
		EntityGroupID: groupID,
		LeaseDuration: t.cfg.LeaseDuration,
		cursor:        cursor,
		filter:        filter,
		lastAccess:    t.now(),
		nextSeq:       1,
	}

	t.mu.Lock()
	if t.scanners[groupID] == nil {
		t.scanners[groupID] = map[uint64]*Scanner{}
	}
	t.scanners[groupID][s.ID] = s
	t.byID[s.ID] = s
	t.mu.Unlock()

	t.opened.Inc()
	egkvlog.Zero.Debug().
		Uint64("scanner", s.ID).
		Str("entity-group", groupID).
		Dur("lease", s.LeaseDuration).
		Msg("scanner: opened")
	return s
}

func (t *Table) lookup(id uint64) *Scanner {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.byID[id]
}

func (t *Table) unlink(s *Scanner) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.byID[s.ID] != s {
		return
	}
	delete(t.byID, s.ID)
	if group := t.scanners[s.EntityGroupID]; group != nil {
		delete(group, s.ID)
		if len(group) == 0 {
			delete(t.scanners, s.EntityGroupID)
		}
	}
}

func (t *Table) retire(s *Scanner, batch *Batch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finished[s.ID] = finished{
		seq:   s.nextSeq - 1,
		batch: batch,
		until: t.now().Add(s.LeaseDuration),
	}
}

func (t *Table) replayFinished(id uint64, callSeq uint64) *Batch {
	if callSeq == 0 {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.finished[id]
	if !ok || f.seq != callSeq || !t.now().Before(f.until) {
		return nil
	}
	return f.batch
}

func (t *Table) logRelease(s *Scanner, err error, reason string) {
	if err != nil {
		egkvlog.Zero.Error().
			Err(err).
			Uint64("scanner", s.ID).
			Str("reason", reason).
			Msg("scanner: failed to release iterator")
		return
	}
	egkvlog.Zero.Debug().
		Uint64("scanner", s.ID).
		Str("reason", reason).
		Msg("scanner: released")
}

func (t *Table) batchSize(requested int) int {
	if requested <= 0 || (t.cfg.MaxBatch > 0 && requested > t.cfg.MaxBatch) {
		if t.cfg.MaxBatch > 0 {
			return t.cfg.MaxBatch
		}
		return 1
	}
	return requested
}

// Next advances scanner id by up to batchSize rows. A callSeq equal to the
// previous one replays the previous batch, also after the batch reached end
// of data and released the scanner; any other out-of-sequence value fails.
// Zero callSeq skips sequencing.
func (t *Table) Next(id uint64, batchSize int, callSeq uint64) (*Batch, error) {
	s := t.lookup(id)
	if s == nil {
		if batch := t.replayFinished(id, callSeq); batch != nil {
			return batch, nil
		}
		return nil, unknownScanner(id)
	}

	s.mu.Lock()
	if s.closed || s.pendingClose {
		s.mu.Unlock()
		if batch := t.replayFinished(id, callSeq); batch != nil {
			return batch, nil
		}
		return nil, unknownScanner(id)
	}
	if s.busy {
		s.mu.Unlock()
		return nil, egerror.Newf(egerror.EGKV_CONFLICTING_ACCESS, "scanner %d is already being advanced", id)
	}
	if t.now().Sub(s.lastAccess) > s.LeaseDuration {
		err := s.release()
		s.mu.Unlock()
		t.unlink(s)
		t.expired.Inc()
		t.logRelease(s, err, "expired")
		return nil, unknownScanner(id)
	}
	if callSeq != 0 {
		if callSeq+1 == s.nextSeq && s.lastBatch != nil {
			s.lastAccess = t.now()
			batch := s.lastBatch
			s.mu.Unlock()
			return batch, nil
		}
		if callSeq != s.nextSeq {
			expected := s.nextSeq
			s.mu.Unlock()
			return nil, egerror.Newf(egerror.EGKV_OUT_OF_ORDER_SCANNER, "scanner %d expected call %d, got %d", id, expected, callSeq)
		}
	}
	s.busy = true
	cursor := s.cursor
	filter := s.filter
	s.mu.Unlock()

	batch := &Batch{Rows: make([]storage.Row, 0, t.batchSize(batchSize))}
	for len(batch.Rows) < cap(batch.Rows) {
		row, ok := cursor.Next()
		if !ok {
			batch.EndOfData = true
			break
		}
		if row, ok = filter.apply(row); ok {
			batch.Rows = append(batch.Rows, row)
		}
	}

	s.mu.Lock()
	s.busy = false
	s.lastAccess = t.now()
	s.lastBatch = batch
	s.nextSeq++
	if !batch.EndOfData && !s.pendingClose {
		s.mu.Unlock()
		return batch, nil
	}
	reason := "end of data"
	if s.pendingClose {
		reason = "closed"
	} else {
		t.retire(s, batch)
	}
	err := s.release()
	s.mu.Unlock()

	t.unlink(s)
	t.closed.Inc()
	t.logRelease(s, err, reason)
	return batch, nil
}

// Close destroys scanner id. Closing an unknown scanner succeeds.
func (t *Table) Close(id uint64) {
	t.mu.Lock()
	delete(t.finished, id)
	t.mu.Unlock()

	s := t.lookup(id)
	if s == nil {
		return
	}
	t.closeScanner(s, "closed")
}

func (t *Table) closeScanner(s *Scanner, reason string) {
	t.unlink(s)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.busy {
		// the in-flight step releases the iterator when it finishes
		s.pendingClose = true
		s.mu.Unlock()
		return
	}
	err := s.release()
	s.mu.Unlock()

	t.closed.Inc()
	t.logRelease(s, err, reason)
}

// CloseGroup destroys all scanners of an entity group.
func (t *Table) CloseGroup(groupID string) int {
	t.mu.RLock()
	group := make([]*Scanner, 0, len(t.scanners[groupID]))
	for _, s := range t.scanners[groupID] {
		group = append(group, s)
	}
	t.mu.RUnlock()

	for _, s := range group {
		t.closeScanner(s, "entity group released")
	}
	return len(group)
}

// Sweep expires every idle scanner whose lease has elapsed. Scanners with a
// step in flight are skipped.
func (t *Table) Sweep() int {
	t.mu.Lock()
	all := make([]*Scanner, 0, len(t.byID))
	for _, s := range t.byID {
		all = append(all, s)
	}
	now := t.now()
	for id, f := range t.finished {
		if !now.Before(f.until) {
			delete(t.finished, id)
		}
	}
	t.mu.Unlock()

	expired := 0
	for _, s := range all {
		s.mu.Lock()
		if s.closed || s.busy || t.now().Sub(s.lastAccess) <= s.LeaseDuration {
			s.mu.Unlock()
			continue
		}
		err := s.release()
		s.mu.Unlock()

		t.unlink(s)
		t.expired.Inc()
		expired++
		t.logRelease(s, err, "expired")
	}
	return expired
}

// Shutdown destroys every scanner.
func (t *Table) Shutdown() {
	t.mu.RLock()
	all := make([]*Scanner, 0, len(t.byID))
	for _, s := range t.byID {
		all = append(all, s)
	}
	t.mu.RUnlock()

	for _, s := range all {
		t.closeScanner(s, "shutdown")
	}
}

func (t *Table) Stats() Stats {
	t.mu.RLock()
	live := len(t.byID)
	t.mu.RUnlock()

	return Stats{
		Live:    live,
		Opened:  t.opened.Load(),
		Closed:  t.closed.Load(),
		Expired: t.expired.Load(),
	}
}
