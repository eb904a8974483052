package statistics

import (
	"sync"
	"time"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
)

type moveState struct {
	mu sync.Mutex

	QDBTime              time.Duration
	ServerTime           time.Duration
	TransferTime         time.Duration
	QDBTimeTotal         time.Duration
	ServerTimeTotal      time.Duration
	TransferTimeTotal    time.Duration
	MoveTimeTotal        time.Duration
	RowsTotal            int
	CurrentMoveStartTime time.Time
	TotalMoves           int
	MoveInProgress       bool
}

var moveStatistics = moveState{}

// MoveStatistics are averages over all finished entity group moves.
type MoveStatistics struct {
	TotalTime    time.Duration
	QDBTime      time.Duration
	ServerTime   time.Duration
	TransferTime time.Duration
	Rows         int
	Moves        int
}

func RecordMoveStart(t time.Time) error {
	egkvlog.Zero.Debug().Msg("move stats: record move start")
	moveStatistics.mu.Lock()
	defer moveStatistics.mu.Unlock()

	if moveStatistics.MoveInProgress {
		return egerror.New(egerror.EGKV_UNEXPECTED, "unable to record move start: a move is already in progress")
	}
	moveStatistics.MoveInProgress = true
	moveStatistics.QDBTime = 0
	moveStatistics.ServerTime = 0
	moveStatistics.TransferTime = 0
	moveStatistics.CurrentMoveStartTime = t
	return nil
}

// RecordMoveFinish closes the current move. Only successful moves count
// towards the totals.
func RecordMoveFinish(t time.Time, rows int, ok bool) error {
	egkvlog.Zero.Debug().Bool("ok", ok).Msg("move stats: record move finish")
	moveStatistics.mu.Lock()
	defer moveStatistics.mu.Unlock()

	if !moveStatistics.MoveInProgress {
		return egerror.New(egerror.EGKV_UNEXPECTED, "unable to record move finish: there's no move in progress")
	}
	moveStatistics.MoveInProgress = false
	if ok {
		moveStatistics.QDBTimeTotal += moveStatistics.QDBTime
		moveStatistics.ServerTimeTotal += moveStatistics.ServerTime
		moveStatistics.TransferTimeTotal += moveStatistics.TransferTime
		moveStatistics.MoveTimeTotal += t.Sub(moveStatistics.CurrentMoveStartTime)
		moveStatistics.RowsTotal += rows
		moveStatistics.TotalMoves++
	}
	return nil
}

func record(d *time.Duration, duration time.Duration) {
	moveStatistics.mu.Lock()
	defer moveStatistics.mu.Unlock()
	if moveStatistics.MoveInProgress {
		*d += duration
	}
}

func RecordQDBOperation(duration time.Duration) {
	record(&moveStatistics.QDBTime, duration)
}

func RecordServerOperation(duration time.Duration) {
	record(&moveStatistics.ServerTime, duration)
}

func RecordTransfer(duration time.Duration) {
	record(&moveStatistics.TransferTime, duration)
}

func GetMoveStats() *MoveStatistics {
	moveStatistics.mu.Lock()
	defer moveStatistics.mu.Unlock()

	n := moveStatistics.TotalMoves
	if n == 0 {
		return &MoveStatistics{}
	}
	return &MoveStatistics{
		TotalTime:    moveStatistics.MoveTimeTotal / time.Duration(n),
		QDBTime:      moveStatistics.QDBTimeTotal / time.Duration(n),
		ServerTime:   moveStatistics.ServerTimeTotal / time.Duration(n),
		TransferTime: moveStatistics.TransferTimeTotal / time.Duration(n),
		Rows:         moveStatistics.RowsTotal / n,
		Moves:        n,
	}
}
