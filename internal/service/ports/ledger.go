package ports

import (
	"context"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

// PaymentApplier performs the ledger-gated financial mutations. Each method
// runs the ledger insert and the dependent state change in a single database
// transaction; domain.ErrDuplicateEntry means another delivery won the race
// and nothing was changed.
type PaymentApplier interface {
	ApplyBookingPayment(ctx context.Context, entry domain.LedgerEntry, bookingID string, method domain.PaymentMethod, orderCode int64) error
	ApplyWalletTopup(ctx context.Context, entry domain.LedgerEntry, userID string) (newBalance int64, err error)
}

type LedgerRepo interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)
}
