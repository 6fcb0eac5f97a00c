package ports

import (
	"context"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

type BookingRepo interface {
	GetByTicketCode(ctx context.Context, code string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}
