package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/egkv/egkv/pkg/egkvlog"
)

// Sweeper periodically expires idle scanners.
type Sweeper struct {
	table    *Table
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(table *Table, interval time.Duration) *Sweeper {
	ctx, cancel := context.WithCancel(context.Background())
	return &Sweeper{
		table:    table,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the sweep loop in its own goroutine. Stop waits for it.
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.Run(ctx)
	}()
}

// Run blocks until ctx is cancelled or Stop is called.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	egkvlog.Zero.Info().Dur("interval", s.interval).Msg("sweeper: started")

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-ctx.Done():
			egkvlog.Zero.Info().Msg("sweeper: stopping due to context cancellation")
			return
		case <-s.ctx.Done():
			egkvlog.Zero.Info().Msg("sweeper: stopped")
			return
		}
	}
}

func (s *Sweeper) sweep() {
	defer func() {
		if r := recover(); r != nil {
			egkvlog.Zero.Error().Interface("panic", r).Msg("sweeper: sweep failed")
		}
	}()

	if n := s.table.Sweep(); n > 0 {
		egkvlog.Zero.Debug().Int("expired", n).Msg("sweeper: expired scanners")
	}
}

// Stop ends the loop and waits for a loop launched by Start.
func (s *Sweeper) Stop() {
	s.cancel()
	s.wg.Wait()
}
