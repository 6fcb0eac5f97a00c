package domain

// InboundEvent is the provider-agnostic shape adapters normalize webhook
// payloads into before the reconciler sees them.
type InboundEvent struct {
	Provider      string `json:"provider"`
	Description   string `json:"description"`
	Amount        int64  `json:"amount"`
	ProviderRef   string `json:"provider_ref"`
	AccountNumber string `json:"account_number,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	// OrderCode is set by providers that reference a PaymentOrder
	// instead of embedding a ticket code in the description.
	OrderCode int64 `json:"order_code,omitempty"`
}

type IntentKind string

const (
	IntentBookingPayment IntentKind = "booking_payment"
	IntentWalletTopup    IntentKind = "wallet_topup"
	IntentUnrecognized   IntentKind = "unrecognized"
)

type TopupTarget string

const (
	TopupByAccountID TopupTarget = "account_id"
	TopupByPhone     TopupTarget = "phone"
)

// Intent is the structured result of parsing a free-text transfer memo.
type Intent struct {
	Kind IntentKind
	// TicketCode is set for booking payments.
	TicketCode string
	// Target and TargetValue identify the wallet owner for topups.
	Target      TopupTarget
	TargetValue string
}

type OutcomeStatus string

const (
	OutcomeApplied   OutcomeStatus = "applied"
	OutcomeDuplicate OutcomeStatus = "duplicate"
	OutcomeSkipped   OutcomeStatus = "skipped"
)

type SkipReason string

const (
	SkipAccountMismatch SkipReason = "account_mismatch"
	SkipTargetNotFound  SkipReason = "target_not_found"
	SkipAlreadyPaid     SkipReason = "already_paid"
	SkipAmountMismatch  SkipReason = "amount_mismatch"
	SkipNoMatch         SkipReason = "no_match"
)

type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Reason SkipReason    `json:"reason,omitempty"`
}

func Applied() Outcome { return Outcome{Status: OutcomeApplied} }

func Duplicate() Outcome { return Outcome{Status: OutcomeDuplicate} }

func Skipped(r SkipReason) Outcome { return Outcome{Status: OutcomeSkipped, Reason: r} }

// SyncReport summarizes a manual-sync backfill run.
type SyncReport struct {
	Fetched   int `json:"fetched"`
	Applied   int `json:"applied"`
	Duplicate int `json:"duplicate"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// PaymentInstructions is returned when a payment order is issued: bank
// transfer details plus an optional hosted checkout link.
type PaymentInstructions struct {
	OrderCode     int64  `json:"order_code"`
	Amount        int64  `json:"amount"`
	Memo          string `json:"memo"`
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	QRImageURL    string `json:"qr_image_url"`
	CheckoutURL   string `json:"checkout_url,omitempty"`
}

type CreateOrderInput struct {
	TicketCode      string
	WithCheckoutURL bool
}

// WalletStatement is a user's balance plus their most recent ledger entries.
type WalletStatement struct {
	UserID  string        `json:"user_id"`
	Balance int64         `json:"balance"`
	Entries []LedgerEntry `json:"entries"`
}
