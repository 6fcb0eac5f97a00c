package dto

import (
	"time"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

type OutcomeResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// BatchOutcomeResponse summarizes a webhook delivery carrying several
// transactions at once.
type BatchOutcomeResponse struct {
	Received  int `json:"received"`
	Applied   int `json:"applied"`
	Duplicate int `json:"duplicate"`
	Skipped   int `json:"skipped"`
}

type PaymentInstructionsResponse struct {
	OrderCode     int64  `json:"order_code"`
	Amount        int64  `json:"amount"`
	Memo          string `json:"memo"`
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	QRImageURL    string `json:"qr_image_url"`
	CheckoutURL   string `json:"checkout_url,omitempty"`
}

type LedgerEntryResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Amount      int64  `json:"amount"`
	ProviderRef string `json:"provider_ref,omitempty"`
	AppliedAt   string `json:"applied_at"`
}

type WalletStatementResponse struct {
	UserID  string                `json:"user_id"`
	Balance int64                 `json:"balance"`
	Entries []LedgerEntryResponse `json:"entries"`
}

type SyncReportResponse struct {
	Fetched   int `json:"fetched"`
	Applied   int `json:"applied"`
	Duplicate int `json:"duplicate"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToOutcomeResponse(out domain.Outcome) OutcomeResponse {
	return OutcomeResponse{
		Status: string(out.Status),
		Reason: string(out.Reason),
	}
}

func ToInstructionsResponse(i *domain.PaymentInstructions) PaymentInstructionsResponse {
	return PaymentInstructionsResponse{
		OrderCode:     i.OrderCode,
		Amount:        i.Amount,
		Memo:          i.Memo,
		BankCode:      i.BankCode,
		AccountNumber: i.AccountNumber,
		AccountName:   i.AccountName,
		QRImageURL:    i.QRImageURL,
		CheckoutURL:   i.CheckoutURL,
	}
}

func ToWalletStatementResponse(st *domain.WalletStatement) WalletStatementResponse {
	entries := make([]LedgerEntryResponse, 0, len(st.Entries))
	for _, e := range st.Entries {
		entries = append(entries, LedgerEntryResponse{
			ID:          e.ID,
			Kind:        string(e.Kind),
			Amount:      e.Amount,
			ProviderRef: e.ProviderRef,
			AppliedAt:   e.AppliedAt.Format(time.RFC3339),
		})
	}

	return WalletStatementResponse{
		UserID:  st.UserID,
		Balance: st.Balance,
		Entries: entries,
	}
}

func ToSyncReportResponse(r *domain.SyncReport) SyncReportResponse {
	return SyncReportResponse{
		Fetched:   r.Fetched,
		Applied:   r.Applied,
		Duplicate: r.Duplicate,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
	}
}
