package dispatch

import (
	"bytes"
	"context"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
)

// Scanner reads [start, stop) across entity groups. It reopens the
// server-side scan after the last key it handed out when the server lost
// the scanner, and moves on to the next group when one group runs out.
type Scanner struct {
	r      *Router
	pos    []byte
	stop   []byte
	filter *protos.FilterSpec
	batch  int

	cursor *ScanCursor
	buf    []Row
	// lower bound of the following group, applied once buf is drained
	next     []byte
	done     bool
	restarts int
}

// Scan returns a Scanner over [start, stop). An empty stop reads to the end
// of the keyspace. Nothing is sent before the first call to Next.
func (r *Router) Scan(start, stop []byte, filter *protos.FilterSpec, batchSize int) *Scanner {
	if batchSize <= 0 {
		batchSize = r.cfg.ScanBatchSize
	}
	return &Scanner{
		r:      r,
		pos:    bytes.Clone(start),
		stop:   stop,
		filter: filter,
		batch:  batchSize,
	}
}

func (s *Scanner) Restarts() int {
	return s.restarts
}

func (s *Scanner) pastStop() bool {
	return len(s.stop) > 0 && bytes.Compare(s.pos, s.stop) >= 0
}

func (s *Scanner) restartable(err error) bool {
	if s.restarts >= s.r.cfg.MaxScanRestarts {
		return false
	}
	switch egerror.Code(err) {
	case egerror.EGKV_UNKNOWN_SCANNER, egerror.EGKV_OUT_OF_ORDER_SCANNER:
		return true
	default:
		return false
	}
}

// Next returns the following row. It returns false once the range is
// exhausted.
func (s *Scanner) Next(ctx context.Context) (Row, bool, error) {
	for {
		if len(s.buf) > 0 {
			row := s.buf[0]
			s.buf = s.buf[1:]
			s.pos = append(append(s.pos[:0:0], row.Key...), 0)
			return row, true, nil
		}
		if s.next != nil {
			s.pos, s.next = s.next, nil
		}
		if s.done || s.pastStop() {
			s.done = true
			return Row{}, false, nil
		}

		if s.cursor == nil {
			cursor, err := s.r.OpenScan(ctx, s.pos, s.stop, s.filter)
			if err != nil {
				return Row{}, false, err
			}
			s.cursor = cursor
		}

		rows, eod, err := s.r.Next(ctx, s.cursor, s.batch)
		if err != nil {
			if !s.restartable(err) {
				return Row{}, false, err
			}
			s.restarts++
			egkvlog.Zero.Info().
				Err(err).
				Uint64("scanner", s.cursor.ScannerID).
				Str("server", s.cursor.Server).
				Bytes("resume-at", s.pos).
				Int("restart", s.restarts).
				Msg("dispatch: reopening scan")
			s.cursor = nil
			continue
		}

		s.buf = rows
		if eod {
			// the server releases a scanner that reached its end
			upper := s.cursor.UpperBound
			s.cursor = nil
			if len(upper) == 0 || (len(s.stop) > 0 && bytes.Compare(upper, s.stop) >= 0) {
				s.done = true
			} else {
				s.next = upper
			}
		}
	}
}

// All drains the scanner.
func (s *Scanner) All(ctx context.Context) ([]Row, error) {
	defer s.Close(ctx)

	var rows []Row
	for {
		row, ok, err := s.Next(ctx)
		if err != nil {
			return rows, err
		}
		if !ok {
			return rows, nil
		}
		rows = append(rows, row)
	}
}

// Close releases the open server-side scanner, if any.
func (s *Scanner) Close(ctx context.Context) error {
	s.done = true
	s.buf = nil
	if s.cursor == nil {
		return nil
	}
	cursor := s.cursor
	s.cursor = nil
	return s.r.CloseScan(ctx, cursor)
}
