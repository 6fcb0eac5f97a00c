package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodBank  PaymentMethod = "bank"
	PaymentMethodMoMo  PaymentMethod = "momo"
	PaymentMethodPayOS PaymentMethod = "payos"
)

type Booking struct {
	ID            string        `json:"id"`
	TicketCode    string        `json:"ticket_code"`
	UserID        string        `json:"user_id"`
	Amount        int64         `json:"amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	PaymentRef    string        `json:"payment_ref,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
