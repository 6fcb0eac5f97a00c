package scheduler

import (
	"context"
	"time"

	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type syncer interface {
	Sync(ctx context.Context, limit int) (*domain.SyncReport, error)
}

// Scheduler periodically replays recent provider transactions through the
// reconciler, catching payments whose webhooks never arrived.
type Scheduler struct {
	paymentService syncer
	interval       time.Duration
	batchSize      int
	logger         logger.Logger
}

func New(
	paymentService syncer,
	interval time.Duration,
	batchSize int,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		paymentService: paymentService,
		interval:       interval,
		batchSize:      batchSize,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Int("batch_size", s.batchSize),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.paymentService.Sync(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("failed to sync transactions",
			logger.String("error", err.Error()),
		)
		return
	}

	if report.Applied > 0 || report.Failed > 0 {
		s.logger.Info("sync recovered payments",
			logger.Int("applied", report.Applied),
			logger.Int("failed", report.Failed),
		)
	}
}
