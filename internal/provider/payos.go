package provider

import (
	"bytes"
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

type PayOSConfig struct {
	ChecksumKey string
}

// PayOS handles the hosted-checkout webhook. The signature is an HMAC-SHA256
// over the canonical serialization of the event's data object: keys sorted,
// joined as key=value pairs with '&'.
type PayOS struct {
	cfg PayOSConfig
}

func NewPayOS(cfg PayOSConfig) *PayOS {
	return &PayOS{cfg: cfg}
}

func (a *PayOS) Name() string { return "payos" }

type payosWebhook struct {
	Code      string          `json:"code"`
	Desc      string          `json:"desc"`
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
}

type payosData struct {
	OrderCode   int64  `json:"orderCode"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	Code        string `json:"code"`
}

func (a *PayOS) Verify(_ *http.Request, body []byte) error {
	if a.cfg.ChecksumKey == "" {
		return fmt.Errorf("%w: payos checksum key not configured", domain.ErrUnauthorized)
	}

	var hook payosWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if hook.Signature == "" || len(hook.Data) == 0 {
		return fmt.Errorf("%w: missing signature or data", domain.ErrUnauthorized)
	}

	canonical, err := canonicalizeData(hook.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	// Provider documentation is inconsistent about hex casing; accept both.
	want := strings.ToLower(hook.Signature)
	got := hmacSHA256Hex(a.cfg.ChecksumKey, canonical)
	if !hmac.Equal([]byte(got), []byte(want)) {
		return fmt.Errorf("%w: signature mismatch", domain.ErrUnauthorized)
	}
	return nil
}

func (a *PayOS) Extract(_ *http.Request, body []byte) ([]domain.InboundEvent, error) {
	var hook payosWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
	}

	var data payosData
	if err := json.Unmarshal(hook.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
	}

	// "00" is the provider's success code; anything else is informational.
	if data.Code != "" && data.Code != "00" {
		return nil, nil
	}

	return []domain.InboundEvent{{
		Provider:    "payos",
		Description: data.Description,
		Amount:      data.Amount,
		ProviderRef: truncateRef(data.Reference),
		OrderCode:   data.OrderCode,
	}}, nil
}

// canonicalizeData renders the data object as sorted key=value pairs.
// Numbers keep their wire form (json.Number), null renders empty.
func canonicalizeData(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return "", err
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(renderValue(fields[k]))
	}
	return b.String(), nil
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		// Nested arrays/objects re-serialize as compact JSON.
		enc, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(enc)
	}
}
