package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// txTimeout bounds every ledger transaction so an unavailable database turns
// into a loud failure instead of a hung webhook.
const txTimeout = 5 * time.Second

// LedgerRepository owns the idempotency gate. The unique index on
// (kind, provider_ref) makes the ledger insert a compare-and-swap: whichever
// concurrent delivery inserts first gets to mutate, everyone else gets
// domain.ErrDuplicateEntry and must leave state alone. The dependent
// mutation always commits in the same transaction as its ledger row.
type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LedgerRepository) ApplyBookingPayment(
	ctx context.Context,
	entry domain.LedgerEntry,
	bookingID string,
	method domain.PaymentMethod,
	orderCode int64,
) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = insertEntry(ctx, tx, entry); err != nil {
		return err
	}

	query := `UPDATE bookings
			  SET payment_status=$2, payment_method=$3, payment_ref=$4, paid_at=$5, updated_at=now()
			  WHERE id=$1 AND payment_status=$6`
	res, err := tx.ExecContext(
		ctx, query, bookingID,
		domain.PaymentStatusPaid, method, entry.ProviderRef, entry.AppliedAt,
		domain.PaymentStatusUnpaid,
	)
	if err != nil {
		return fmt.Errorf("mark booking paid: %w", err)
	}

	// A racing delivery with a different provider ref passes the ledger gate
	// but finds the booking already settled. Roll back its entry too.
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark booking paid: %w", err)
	}
	if affected == 0 {
		return domain.ErrAlreadyPaid
	}

	if orderCode != 0 {
		orderQuery := `UPDATE payment_orders SET status=$2 WHERE order_code=$1`
		if _, err = tx.ExecContext(ctx, orderQuery, orderCode, domain.OrderStatusPaid); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
	}

	return tx.Commit()
}

func (r *LedgerRepository) ApplyWalletTopup(
	ctx context.Context,
	entry domain.LedgerEntry,
	userID string,
) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = insertEntry(ctx, tx, entry); err != nil {
		return 0, err
	}

	var balance int64
	query := `UPDATE users
			  SET wallet_balance = wallet_balance + $2
			  WHERE id=$1
			  RETURNING wallet_balance`
	if err = tx.QueryRowContext(ctx, query, userID, entry.Amount).Scan(&balance); err != nil {
		return 0, fmt.Errorf("credit wallet: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return balance, nil
}

func (r *LedgerRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	query := `SELECT id, kind, amount, provider_ref, subject_id, applied_at
			  FROM ledger_entries
			  WHERE subject_id=$1
			  ORDER BY applied_at DESC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var res []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err = rows.Scan(&e.ID, &e.Kind, &e.Amount, &e.ProviderRef, &e.SubjectID, &e.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func insertEntry(ctx context.Context, tx *sql.Tx, entry domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (id, kind, amount, provider_ref, subject_id, applied_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.ExecContext(
		ctx, query,
		entry.ID, entry.Kind, entry.Amount, entry.ProviderRef, entry.SubjectID, entry.AppliedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}

	return nil
}
