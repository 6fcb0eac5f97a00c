package ports

import (
	"context"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

// TransactionLister pulls a page of historical provider transactions for
// manual sync / backfill.
type TransactionLister interface {
	ListTransactions(ctx context.Context, limit int) ([]domain.InboundEvent, error)
}

// CheckoutLinker creates hosted checkout links for issued payment orders.
type CheckoutLinker interface {
	Enabled() bool
	CreatePaymentLink(ctx context.Context, orderCode, amount int64, description string) (string, error)
}
