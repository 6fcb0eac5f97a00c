package ports

import (
	"context"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

type PaymentNotifier interface {
	NotifyBookingPaid(ctx context.Context, user *domain.User, booking *domain.Booking)
	NotifyWalletCredited(ctx context.Context, user *domain.User, amount, balance int64)
}
