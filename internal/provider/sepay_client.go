package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

type SePayClientConfig struct {
	APIBase  string
	APIToken string
	Timeout  time.Duration
}

// SePayClient pulls historical transactions from the provider's query API so
// missed webhooks can be backfilled through the same reconciliation path.
type SePayClient struct {
	http *resty.Client
}

func NewSePayClient(cfg SePayClientConfig) *SePayClient {
	client := resty.New().
		SetBaseURL(cfg.APIBase).
		SetAuthToken(cfg.APIToken).
		SetTimeout(cfg.Timeout)

	return &SePayClient{http: client}
}

type sepayListResponse struct {
	Status       int `json:"status"`
	Transactions []struct {
		ID                 json.Number `json:"id"`
		AccountNumber      string      `json:"account_number"`
		TransactionContent string      `json:"transaction_content"`
		AmountIn           string      `json:"amount_in"`
		ReferenceNumber    string      `json:"reference_number"`
		BankBrandName      string      `json:"bank_brand_name"`
		TransactionDate    string      `json:"transaction_date"`
	} `json:"transactions"`
}

// ListTransactions fetches the most recent inbound transfers, normalized to
// the common event shape. Outbound transfers (amount_in absent) are dropped.
func (c *SePayClient) ListTransactions(ctx context.Context, limit int) ([]domain.InboundEvent, error) {
	var out sepayListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/userapi/transactions/list")
	if err != nil {
		return nil, fmt.Errorf("sepay list transactions: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sepay list transactions: status %d", resp.StatusCode())
	}

	events := make([]domain.InboundEvent, 0, len(out.Transactions))
	for _, tx := range out.Transactions {
		amount := parseAmount(tx.AmountIn)
		if amount <= 0 {
			continue
		}

		ref := tx.ReferenceNumber
		if ref == "" {
			ref = tx.ID.String()
		}

		events = append(events, domain.InboundEvent{
			Provider:      "sepay",
			Description:   tx.TransactionContent,
			Amount:        amount,
			ProviderRef:   truncateRef(ref),
			AccountNumber: tx.AccountNumber,
			BankCode:      tx.BankBrandName,
		})
	}
	return events, nil
}
