package provider

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	momoAccessKey = "F8BBA842ECF85"
	momoSecretKey = "K951B6PE1waDMi640xX08PD3vg6EkVlz"
)

func momoTestAdapter() *MoMo {
	return NewMoMo(MoMoConfig{
		PartnerCode: "MOMOBKUN20180529",
		AccessKey:   momoAccessKey,
		SecretKey:   momoSecretKey,
	})
}

func momoTestPayload() momoIPN {
	return momoIPN{
		PartnerCode:  "MOMOBKUN20180529",
		OrderID:      "ORDER-1",
		RequestID:    "REQ-1",
		Amount:       50000,
		OrderInfo:    "TOPUP-0901234567",
		OrderType:    "momo_wallet",
		TransID:      2147483690,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1699999999000,
		ExtraData:    "",
	}
}

func marshalIPN(t *testing.T, p momoIPN) []byte {
	t.Helper()
	body, err := json.Marshal(p)
	require.NoError(t, err)
	return body
}

func TestMoMo_Verify_FullOrdering(t *testing.T) {
	a := momoTestAdapter()

	p := momoTestPayload()
	p.Signature = hmacSHA256Hex(momoSecretKey, p.rawSignatureFull(momoAccessKey))

	req := httptest.NewRequest("POST", "/", nil)
	assert.NoError(t, a.Verify(req, marshalIPN(t, p)))
}

func TestMoMo_Verify_ReducedOrdering(t *testing.T) {
	a := momoTestAdapter()

	// Some channels omit the optional fields from the signed string.
	p := momoTestPayload()
	p.Message = ""
	p.PayType = ""
	p.OrderType = ""
	p.ResponseTime = 0
	p.Signature = hmacSHA256Hex(momoSecretKey, p.rawSignatureReduced(momoAccessKey))

	req := httptest.NewRequest("POST", "/", nil)
	assert.NoError(t, a.Verify(req, marshalIPN(t, p)))
}

func TestMoMo_Verify_Rejects(t *testing.T) {
	a := momoTestAdapter()
	req := httptest.NewRequest("POST", "/", nil)

	t.Run("tampered amount", func(t *testing.T) {
		p := momoTestPayload()
		p.Signature = hmacSHA256Hex(momoSecretKey, p.rawSignatureFull(momoAccessKey))
		p.Amount = 999999999
		assert.Error(t, a.Verify(req, marshalIPN(t, p)))
	})

	t.Run("missing signature", func(t *testing.T) {
		p := momoTestPayload()
		assert.Error(t, a.Verify(req, marshalIPN(t, p)))
	})

	t.Run("wrong key", func(t *testing.T) {
		p := momoTestPayload()
		p.Signature = hmacSHA256Hex("not-the-key", p.rawSignatureFull(momoAccessKey))
		assert.Error(t, a.Verify(req, marshalIPN(t, p)))
	})

	t.Run("garbage body", func(t *testing.T) {
		assert.Error(t, a.Verify(req, []byte(`{broken`)))
	})
}

func TestMoMo_Extract_Success(t *testing.T) {
	a := momoTestAdapter()
	req := httptest.NewRequest("POST", "/", nil)

	events, err := a.Extract(req, marshalIPN(t, momoTestPayload()))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "momo", events[0].Provider)
	assert.Equal(t, "TOPUP-0901234567", events[0].Description)
	assert.Equal(t, int64(50000), events[0].Amount)
	assert.Equal(t, "2147483690", events[0].ProviderRef)
}

func TestMoMo_Extract_FailedChargeYieldsNothing(t *testing.T) {
	a := momoTestAdapter()
	req := httptest.NewRequest("POST", "/", nil)

	p := momoTestPayload()
	p.ResultCode = 1006

	events, err := a.Extract(req, marshalIPN(t, p))

	require.NoError(t, err)
	assert.Empty(t, events)
}
