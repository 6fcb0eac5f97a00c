package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Record stores an admin notification for manual review of a payment
// that could not be applied automatically.
func (r *ReviewRepository) Record(ctx context.Context, title, body string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal notification data: %w", err)
	}

	query := `INSERT INTO admin_notifications (title, body, data, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err = r.db.ExecWithRetry(ctx, r.strategy, query, title, body, payload, time.Now())
	if err != nil {
		return fmt.Errorf("insert admin notification: %w", err)
	}

	return nil
}
