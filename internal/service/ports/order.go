package ports

import (
	"context"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, order *domain.PaymentOrder) error
	GetByOrderCode(ctx context.Context, orderCode int64) (*domain.PaymentOrder, error)
}
