package provider

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

// SecretHeader carries the shared webhook secret for bank-transfer providers
// (SePay, Casso). Some installations can only configure a query parameter,
// so ?secret= is accepted as a fallback.
const SecretHeader = "X-Webhook-Secret"

type SePayConfig struct {
	WebhookSecret string
}

// SePay handles generic bank-transfer webhooks authenticated by shared secret.
type SePay struct {
	cfg SePayConfig
}

func NewSePay(cfg SePayConfig) *SePay {
	return &SePay{cfg: cfg}
}

func (a *SePay) Name() string { return "sepay" }

func (a *SePay) Verify(r *http.Request, _ []byte) error {
	if a.cfg.WebhookSecret == "" {
		return fmt.Errorf("%w: webhook secret not configured", domain.ErrUnauthorized)
	}

	provided := r.Header.Get(SecretHeader)
	if provided == "" {
		provided = r.URL.Query().Get("secret")
	}

	if subtle.ConstantTimeCompare([]byte(provided), []byte(a.cfg.WebhookSecret)) != 1 {
		return fmt.Errorf("%w: invalid secret", domain.ErrUnauthorized)
	}
	return nil
}

type sepayTx struct {
	ID             json.Number `json:"id"`
	TxnID          string      `json:"txnId"`
	ReferenceCode  string      `json:"referenceCode"`
	Description    string      `json:"description"`
	Content        string      `json:"content"`
	Amount         json.Number `json:"amount"`
	TransferAmount json.Number `json:"transferAmount"`
	AccountNumber  string      `json:"accountNumber"`
	BankCode       string      `json:"bankCode"`
	Gateway        string      `json:"gateway"`
}

type sepayPayload struct {
	sepayTx
	Data []sepayTx `json:"data"`
}

// Extract normalizes SePay/Casso deliveries. Casso batches transactions under
// a data array; SePay delivers one object, JSON or form-encoded.
func (a *SePay) Extract(r *http.Request, body []byte) ([]domain.InboundEvent, error) {
	if isForm(r) {
		return a.extractForm(body)
	}

	var p sepayPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
	}

	txs := p.Data
	if len(txs) == 0 {
		txs = []sepayTx{p.sepayTx}
	}

	events := make([]domain.InboundEvent, 0, len(txs))
	for _, tx := range txs {
		ev := tx.toEvent()
		if ev.ProviderRef == "" && ev.Description == "" {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (a *SePay) extractForm(body []byte) ([]domain.InboundEvent, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
	}

	tx := sepayTx{
		TxnID:         values.Get("txnId"),
		ReferenceCode: values.Get("referenceCode"),
		Description:   values.Get("description"),
		Content:       values.Get("content"),
		Amount:        json.Number(values.Get("amount")),
		AccountNumber: values.Get("accountNumber"),
		BankCode:      values.Get("bankCode"),
		Gateway:       values.Get("gateway"),
	}
	return []domain.InboundEvent{tx.toEvent()}, nil
}

func (tx sepayTx) toEvent() domain.InboundEvent {
	desc := tx.Description
	if desc == "" {
		desc = tx.Content
	}

	ref := tx.TxnID
	if ref == "" {
		ref = tx.ReferenceCode
	}
	if ref == "" {
		ref = tx.ID.String()
	}
	if ref == "0" || ref == "" {
		ref = ""
	}

	amount := parseAmount(tx.Amount.String())
	if amount == 0 {
		amount = parseAmount(tx.TransferAmount.String())
	}

	bank := tx.BankCode
	if bank == "" {
		bank = tx.Gateway
	}

	return domain.InboundEvent{
		Provider:      "sepay",
		Description:   desc,
		Amount:        amount,
		ProviderRef:   truncateRef(ref),
		AccountNumber: strings.TrimSpace(tx.AccountNumber),
		BankCode:      strings.ToUpper(strings.TrimSpace(bank)),
	}
}

func isForm(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return ct == "application/x-www-form-urlencoded"
}
