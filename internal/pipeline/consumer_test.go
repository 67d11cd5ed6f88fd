package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/synclab/pcharness/internal/logging"
)

func observedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return &logging.Logger{Logger: zap.New(core)}, logs
}

func TestConsumerStopsOnSentinel(t *testing.T) {
	core := newChanCore(8)
	tracker, err := NewTracker(1, 1)
	require.NoError(t, err)

	core.Produce(DataItem(5, 6))
	core.Produce(DataItem(1, 2))
	core.Produce(StopItem())

	log, logs := observedLogger()
	c := NewConsumer(0, 100, core, tracker, log, newTestMetrics())
	c.Run()

	assert.EqualValues(t, 2, core.dataConsumed.Load())
	assert.EqualValues(t, 1, core.stopsConsumed.Load())
	assert.Equal(t, 1, logs.FilterMessage("consumer finished normally").Len())
	assert.NoError(t, tracker.AwaitConsumer(context.Background()))
}

func TestConsumerLogsIntegrityViolationAndContinues(t *testing.T) {
	core := newChanCore(8)
	tracker, err := NewTracker(1, 1)
	require.NoError(t, err)

	core.Produce(DataItem(5, 9)) // broken pair
	core.Produce(DataItem(1, 2))
	core.Produce(StopItem())

	log, logs := observedLogger()
	c := NewConsumer(0, 100, core, tracker, log, newTestMetrics())
	c.Run()

	violations := logs.FilterMessage("unexpected data")
	require.Equal(t, 1, violations.Len(), "a broken pair is logged, not fatal")
	assert.EqualValues(t, 2, core.dataConsumed.Load(), "consumption continues past the violation")
	assert.EqualValues(t, 1, core.stopsConsumed.Load())
}

func TestConsumerBoredExit(t *testing.T) {
	core := newChanCore(8)
	tracker, err := NewTracker(1, 1)
	require.NoError(t, err)

	for i := 5; i >= 1; i-- {
		core.Produce(DataItem(i, i+1))
	}
	// No stop item is ever offered.

	log, logs := observedLogger()
	c := NewConsumer(0, 3, core, tracker, log, newTestMetrics())
	c.Run()

	assert.EqualValues(t, 3, core.dataConsumed.Load(), "exits after the third item")
	assert.Equal(t, 1, logs.FilterMessage("consumer bored, exiting").Len())
	assert.NoError(t, tracker.AwaitConsumer(context.Background()), "bored exit still signals completion")

	short, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, tracker.AwaitConsumer(short), "completion is signaled exactly once")
}

func TestConsumerBoundTripItemIsNotValidated(t *testing.T) {
	core := newChanCore(8)
	tracker, err := NewTracker(1, 1)
	require.NoError(t, err)

	core.Produce(DataItem(2, 3))
	core.Produce(DataItem(1, 2))
	core.Produce(DataItem(7, 7)) // broken, but it trips the bound first

	log, logs := observedLogger()
	c := NewConsumer(0, 3, core, tracker, log, newTestMetrics())
	c.Run()

	assert.Equal(t, 0, logs.FilterMessage("unexpected data").Len())
	assert.Equal(t, 1, logs.FilterMessage("consumer bored, exiting").Len())
}
