package provider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

type MoMoConfig struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
}

// MoMo handles the mobile-wallet IPN. Authenticity is an HMAC-SHA256 over an
// ordered concatenation of payload fields keyed by the partner secret.
type MoMo struct {
	cfg MoMoConfig
}

func NewMoMo(cfg MoMoConfig) *MoMo {
	return &MoMo{cfg: cfg}
}

func (a *MoMo) Name() string { return "momo" }

type momoIPN struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature"`
}

// rawSignatureFull is the documented IPN field ordering.
func (p momoIPN) rawSignatureFull(accessKey string) string {
	return "accessKey=" + accessKey +
		"&amount=" + strconv.FormatInt(p.Amount, 10) +
		"&extraData=" + p.ExtraData +
		"&message=" + p.Message +
		"&orderId=" + p.OrderID +
		"&orderInfo=" + p.OrderInfo +
		"&orderType=" + p.OrderType +
		"&partnerCode=" + p.PartnerCode +
		"&payType=" + p.PayType +
		"&requestId=" + p.RequestID +
		"&responseTime=" + strconv.FormatInt(p.ResponseTime, 10) +
		"&resultCode=" + strconv.Itoa(p.ResultCode) +
		"&transId=" + strconv.FormatInt(p.TransID, 10)
}

// rawSignatureReduced drops the fields the provider omits on some channels.
// Deliveries signed this way are legitimate; both orderings must be tried
// before rejecting.
func (p momoIPN) rawSignatureReduced(accessKey string) string {
	return "accessKey=" + accessKey +
		"&amount=" + strconv.FormatInt(p.Amount, 10) +
		"&extraData=" + p.ExtraData +
		"&orderId=" + p.OrderID +
		"&orderInfo=" + p.OrderInfo +
		"&partnerCode=" + p.PartnerCode +
		"&requestId=" + p.RequestID +
		"&resultCode=" + strconv.Itoa(p.ResultCode) +
		"&transId=" + strconv.FormatInt(p.TransID, 10)
}

func (a *MoMo) Verify(_ *http.Request, body []byte) error {
	if a.cfg.SecretKey == "" {
		return fmt.Errorf("%w: momo secret key not configured", domain.ErrUnauthorized)
	}

	var p momoIPN
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if p.Signature == "" {
		return fmt.Errorf("%w: missing signature", domain.ErrUnauthorized)
	}

	for _, raw := range []string{
		p.rawSignatureFull(a.cfg.AccessKey),
		p.rawSignatureReduced(a.cfg.AccessKey),
	} {
		if hmac.Equal([]byte(hmacSHA256Hex(a.cfg.SecretKey, raw)), []byte(p.Signature)) {
			return nil
		}
	}
	return fmt.Errorf("%w: signature mismatch", domain.ErrUnauthorized)
}

// Extract maps a successful IPN to a single event. Failed charges
// (resultCode != 0) carry no financial effect and normalize to nothing.
func (a *MoMo) Extract(_ *http.Request, body []byte) ([]domain.InboundEvent, error) {
	var p momoIPN
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
	}

	if p.ResultCode != 0 {
		return nil, nil
	}

	return []domain.InboundEvent{{
		Provider:    "momo",
		Description: p.OrderInfo,
		Amount:      p.Amount,
		ProviderRef: truncateRef(strconv.FormatInt(p.TransID, 10)),
	}}, nil
}

func hmacSHA256Hex(key, payload string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
