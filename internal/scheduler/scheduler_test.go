package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/tranvantai204/GarageBooking/internal/scheduler/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_Syncs(t *testing.T) {
	syncer := mocks.NewMockSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 50*time.Millisecond, 20, log)

	syncer.EXPECT().Sync(mock.Anything, 20).Return(&domain.SyncReport{Fetched: 2, Applied: 1, Duplicate: 1}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	syncer := mocks.NewMockSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 50*time.Millisecond, 20, log)

	syncer.EXPECT().Sync(mock.Anything, 20).Return(nil, errors.New("api timeout"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	syncer := mocks.NewMockSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, time.Second, 20, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	syncer := mocks.NewMockSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 30*time.Millisecond, 20, log)

	syncer.EXPECT().Sync(mock.Anything, 20).Return(&domain.SyncReport{}, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(syncer.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
