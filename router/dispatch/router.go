package dispatch

import (
	"bytes"
	"context"
	"errors"
	"time"

	retry "github.com/sethvargo/go-retry"

	"github.com/egkv/egkv/pkg/config"
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/router/directory"
	"github.com/egkv/egkv/router/statistics"
)

// Router sends key and scan requests to the owning server and is the only
// place deciding between retrying and failing.
type Router struct {
	dir       Directory
	transport Transport
	cfg       config.Router
	stats     *statistics.Collector
}

func NewRouter(dir Directory, transport Transport, cfg config.Router) *Router {
	cfg.ApplyDefaults()
	return &Router{
		dir:       dir,
		transport: transport,
		cfg:       cfg,
		stats:     statistics.NewCollector(),
	}
}

func (r *Router) Statistics() *statistics.Collector {
	return r.stats
}

// backoff yields the capped exponential schedule, except that the wait is
// skipped once when *immediate is set.
func (r *Router) backoff(immediate *bool) retry.Backoff {
	base := retry.NewExponential(r.cfg.BackoffBase)
	base = retry.WithCappedDuration(r.cfg.BackoffMax, base)
	base = retry.WithMaxRetries(r.cfg.Retries(), base)

	return retry.BackoffFunc(func() (time.Duration, bool) {
		next, stop := base.Next()
		if stop {
			return 0, true
		}
		if *immediate {
			*immediate = false
			return 0, false
		}
		return next, false
	})
}

// sameOwner reports whether a and b route to the same group on the same
// server over the same range.
func sameOwner(a, b directory.Entry) bool {
	return a.ServerAddress == b.ServerAddress &&
		a.EntityGroupID == b.EntityGroupID &&
		bytes.Equal(a.Start, b.Start) &&
		bytes.Equal(a.End, b.End)
}

func terminal(op string, attempts int, server string, lastErr, err error) error {
	if lastErr == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		lastErr = err
	}
	code := egerror.Code(lastErr)
	if code == "" {
		code = egerror.EGKV_UNEXPECTED
		if errors.Is(lastErr, context.DeadlineExceeded) || errors.Is(lastErr, context.Canceled) {
			code = egerror.EGKV_TIMEOUT
		}
	}
	return &Error{
		Op:       op,
		Code:     code,
		Server:   server,
		Attempts: attempts,
		Err:      lastErr,
	}
}

// routeKey runs call against the server owning key until it succeeds, fails
// with a non-retryable condition or exhausts the retry budget.
func (r *Router) routeKey(ctx context.Context, op string, key []byte, call func(ctx context.Context, entry directory.Entry) error) error {
	start := time.Now()
	defer r.stats.Since(op, start)

	var (
		attempts   int
		server     string
		lastErr    error
		immediate  bool
		mismatched *directory.Entry
	)
	err := retry.Do(ctx, r.backoff(&immediate), func(ctx context.Context) error {
		attempts++

		entry, err := r.dir.Resolve(ctx, key)
		if err != nil {
			lastErr = err
			if egerror.Retryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		server = entry.ServerAddress

		actx, cancel := context.WithTimeout(ctx, r.cfg.AttemptTimeout)
		err = call(actx, entry)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err

		switch egerror.Code(err) {
		case egerror.EGKV_ENTITY_GROUP_MISMATCH:
			// routing was wrong, resend at once unless the directory keeps
			// pointing at an owner that already refused the key
			r.dir.Invalidate(entry)
			immediate = mismatched == nil || !sameOwner(*mismatched, entry)
			mismatched = &entry
			egkvlog.Zero.Debug().
				Str("op", op).
				Str("server", server).
				Str("entity-group", entry.EntityGroupID).
				Msg("dispatch: entity group mismatch, re-resolving")
			return retry.RetryableError(err)
		case egerror.EGKV_TRANSPORT:
			r.dir.Invalidate(entry)
			return retry.RetryableError(err)
		case egerror.EGKV_TIMEOUT:
			return retry.RetryableError(err)
		default:
			return err
		}
	})
	if err == nil {
		return nil
	}

	egkvlog.Zero.Debug().
		Err(err).
		Str("op", op).
		Int("attempts", attempts).
		Str("server", server).
		Msg("dispatch: request failed")
	return terminal(op, attempts, server, lastErr, err)
}

// routeServer retries call against a fixed server on transport failures and
// timeouts only.
func (r *Router) routeServer(ctx context.Context, op string, server string, call func(ctx context.Context) error) error {
	start := time.Now()
	defer r.stats.Since(op, start)

	var (
		attempts  int
		lastErr   error
		immediate bool
	)
	err := retry.Do(ctx, r.backoff(&immediate), func(ctx context.Context) error {
		attempts++

		actx, cancel := context.WithTimeout(ctx, r.cfg.AttemptTimeout)
		err := call(actx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err

		switch egerror.Code(err) {
		case egerror.EGKV_TRANSPORT, egerror.EGKV_TIMEOUT:
			return retry.RetryableError(err)
		default:
			return err
		}
	})
	if err == nil {
		return nil
	}
	return terminal(op, attempts, server, lastErr, err)
}

func (r *Router) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	var reply *protos.GetReply
	err := r.routeKey(ctx, "get", key, func(ctx context.Context, entry directory.Entry) error {
		var err error
		reply, err = r.transport.Get(ctx, entry.ServerAddress, &protos.GetRequest{
			EntityGroupId: entry.EntityGroupID,
			Key:           key,
		})
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return reply.Value, reply.Found, nil
}

func (r *Router) Put(ctx context.Context, key, value []byte) error {
	return r.routeKey(ctx, "put", key, func(ctx context.Context, entry directory.Entry) error {
		_, err := r.transport.Put(ctx, entry.ServerAddress, &protos.PutRequest{
			EntityGroupId: entry.EntityGroupID,
			Key:           key,
			Value:         value,
		})
		return err
	})
}

func (r *Router) Delete(ctx context.Context, key []byte) (bool, error) {
	var reply *protos.DeleteReply
	err := r.routeKey(ctx, "delete", key, func(ctx context.Context, entry directory.Entry) error {
		var err error
		reply, err = r.transport.Delete(ctx, entry.ServerAddress, &protos.DeleteRequest{
			EntityGroupId: entry.EntityGroupID,
			Key:           key,
		})
		return err
	})
	if err != nil {
		return false, err
	}
	return reply.Existed, nil
}

// ScanCursor is a server-side scanner opened through the router. It is bound
// to the server that opened it.
type ScanCursor struct {
	ScannerID     uint64
	Server        string
	EntityGroupID string
	// UpperBound of the entity group, empty when unbounded
	UpperBound []byte
	Lease      time.Duration

	callSeq uint64
}

type Row struct {
	Key   []byte
	Value []byte
}

// OpenScan opens a scanner on the group owning start. The scan covers
// [start, stop) clamped to that group.
func (r *Router) OpenScan(ctx context.Context, start, stop []byte, filter *protos.FilterSpec) (*ScanCursor, error) {
	var cursor *ScanCursor
	err := r.routeKey(ctx, "open_scan", start, func(ctx context.Context, entry directory.Entry) error {
		reply, err := r.transport.OpenScan(ctx, entry.ServerAddress, &protos.OpenScanRequest{
			EntityGroupId: entry.EntityGroupID,
			StartKey:      start,
			StopKey:       stop,
			Filter:        filter,
		})
		if err != nil {
			return err
		}
		cursor = &ScanCursor{
			ScannerID:     reply.ScannerId,
			Server:        entry.ServerAddress,
			EntityGroupID: entry.EntityGroupID,
			UpperBound:    reply.UpperBound,
			Lease:         time.Duration(reply.LeaseMs) * time.Millisecond,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cursor, nil
}

// Next fetches the next batch of cursor. A lost response is resent with the
// same call sequence number so the server replays rather than skips rows.
// UnknownScanner and out-of-order failures are returned as is; the caller
// has to open a new scan.
func (r *Router) Next(ctx context.Context, cursor *ScanCursor, batchSize int) ([]Row, bool, error) {
	if batchSize <= 0 {
		batchSize = r.cfg.ScanBatchSize
	}
	seq := cursor.callSeq + 1

	var reply *protos.NextReply
	err := r.routeServer(ctx, "next", cursor.Server, func(ctx context.Context) error {
		var err error
		reply, err = r.transport.Next(ctx, cursor.Server, &protos.NextRequest{
			ScannerId: cursor.ScannerID,
			BatchSize: int32(batchSize),
			CallSeq:   seq,
		})
		return err
	})
	if err != nil {
		return nil, false, err
	}
	cursor.callSeq = seq

	rows := make([]Row, 0, len(reply.Rows))
	for _, row := range reply.Rows {
		rows = append(rows, Row{Key: row.Key, Value: row.Value})
	}
	return rows, reply.EndOfData, nil
}

// CloseScan releases cursor on its server. Closing twice is not an error.
func (r *Router) CloseScan(ctx context.Context, cursor *ScanCursor) error {
	return r.routeServer(ctx, "close_scan", cursor.Server, func(ctx context.Context) error {
		_, err := r.transport.CloseScan(ctx, cursor.Server, &protos.CloseScanRequest{
			ScannerId: cursor.ScannerID,
		})
		return err
	})
}
