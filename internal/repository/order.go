package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.PaymentOrder) error {
	query := `INSERT INTO payment_orders (order_code, booking_id, amount, status, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		order.OrderCode, order.BookingID, order.Amount, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment order: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetByOrderCode(ctx context.Context, orderCode int64) (*domain.PaymentOrder, error) {
	query := `SELECT order_code, booking_id, amount, status, created_at
			  FROM payment_orders
			  WHERE order_code=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, orderCode)
	if err != nil {
		return nil, fmt.Errorf("get payment order: %w", err)
	}

	var o domain.PaymentOrder
	if err = row.Scan(&o.OrderCode, &o.BookingID, &o.Amount, &o.Status, &o.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan payment order: %w", err)
	}

	return &o, nil
}
