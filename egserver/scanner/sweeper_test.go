package scanner_test

import (
	"context"
	"testing"
	"time"

	"github.com/egkv/egkv/egserver/scanner"
	"github.com/egkv/egkv/pkg/models/egerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeperExpiresIdleScanner(t *testing.T) {
	table := scanner.NewTable(scanner.Config{
		LeaseDuration: 1000 * time.Millisecond,
		MaxBatch:      10,
	})
	sweeper := scanner.NewSweeper(table, 200*time.Millisecond)
	sweeper.Start(context.Background())
	defer sweeper.Stop()

	cursor := newSliceCursor(10)
	s := table.Open("eg1", cursor, scanner.Filter{})

	time.Sleep(1500 * time.Millisecond)

	// evicted without any call touching the scanner
	assert.Equal(t, 0, table.Stats().Live)
	assert.Equal(t, uint64(1), table.Stats().Expired)
	assert.Equal(t, 1, cursor.closedCount())

	_, err := table.Next(s.ID, 1, 0)
	assert.True(t, egerror.Is(err, egerror.EGKV_UNKNOWN_SCANNER))
	assert.Equal(t, uint64(1), table.Stats().Expired)
	assert.Equal(t, 1, cursor.closedCount())
}

func TestSweeperKeepsActiveScanner(t *testing.T) {
	table := scanner.NewTable(scanner.Config{
		LeaseDuration: 300 * time.Millisecond,
		MaxBatch:      10,
	})
	sweeper := scanner.NewSweeper(table, 20*time.Millisecond)
	sweeper.Start(context.Background())
	defer sweeper.Stop()

	s := table.Open("eg1", newSliceCursor(100), scanner.Filter{})
	for i := 0; i < 10; i++ {
		time.Sleep(50 * time.Millisecond)
		_, err := table.Next(s.ID, 1, 0)
		require.NoError(t, err)
	}
}

func TestSweeperStop(t *testing.T) {
	table := scanner.NewTable(scanner.Config{LeaseDuration: 10 * time.Millisecond})
	sweeper := scanner.NewSweeper(table, 5*time.Millisecond)
	sweeper.Start(context.Background())

	cursor := newSliceCursor(1)
	table.Open("eg1", cursor, scanner.Filter{})
	require.Eventually(t, func() bool { return table.Stats().Live == 0 }, time.Second, 5*time.Millisecond)

	sweeper.Stop()
	assert.Equal(t, 1, cursor.closedCount())
}

func TestSweeperStopsWithContext(t *testing.T) {
	table := scanner.NewTable(scanner.Config{LeaseDuration: time.Second})
	sweeper := scanner.NewSweeper(table, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
