package aggregator

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls atomic.Int32
	ran   chan struct{}
}

func (r *countingRunner) Run(context.Context) (*models.HotspotSnapshot, error) {
	r.calls.Add(1)
	r.ran <- struct{}{}
	return &models.HotspotSnapshot{}, nil
}

func TestScheduler_RunsOnInterval(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	clock := clockwork.NewFakeClockAt(baseTime)
	runner := &countingRunner{ran: make(chan struct{}, 10)}

	ctx, cancel := context.WithCancel(context.Background())
	done := NewScheduler(runner, 5*time.Minute, clock, logger).Start(ctx)

	waitRun(t, runner.ran)
	assert.EqualValues(t, 1, runner.calls.Load())

	blockCtx, blockCancel := context.WithTimeout(context.Background(), time.Second)
	defer blockCancel()
	require.NoError(t, clock.BlockUntilContext(blockCtx, 1))

	clock.Advance(5 * time.Minute)
	waitRun(t, runner.ran)
	assert.EqualValues(t, 2, runner.calls.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func waitRun(t *testing.T, ran <-chan struct{}) {
	t.Helper()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("runner was not called")
	}
}
