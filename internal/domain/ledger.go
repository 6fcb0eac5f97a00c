package domain

import "time"

type LedgerKind string

const (
	LedgerKindTopup   LedgerKind = "topup"
	LedgerKindPayment LedgerKind = "payment"
	LedgerKindRefund  LedgerKind = "refund"
)

// LedgerEntry is the durable idempotency gate: at most one entry may exist
// per (kind, provider_ref) when provider_ref is non-empty. Entries are
// append-only and never updated or deleted.
type LedgerEntry struct {
	ID          string     `json:"id"`
	Kind        LedgerKind `json:"kind"`
	Amount      int64      `json:"amount"`
	ProviderRef string     `json:"provider_ref"`
	SubjectID   string     `json:"subject_id"`
	AppliedAt   time.Time  `json:"applied_at"`
}

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// PaymentOrder maps a provider-issued numeric order code to a booking, for
// providers that cannot carry a ticket code in free text.
type PaymentOrder struct {
	OrderCode int64       `json:"order_code"`
	BookingID string      `json:"booking_id"`
	Amount    int64       `json:"amount"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
