package provider

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payosChecksumKey = "8d9f2a1c0b3e4f5a6b7c8d9e0f1a2b3c"

func payosBody(signature string) []byte {
	return []byte(fmt.Sprintf(`{
		"code": "00",
		"desc": "success",
		"success": true,
		"data": {
			"orderCode": 123456789,
			"amount": 150000,
			"description": "BOOK-HAPHUONG-1699999999",
			"reference": "FT22509",
			"code": "00"
		},
		"signature": "%s"
	}`, signature))
}

// payosTestSignature mirrors the provider's scheme: sorted keys of data,
// joined as key=value with '&'.
func payosTestSignature(key string) string {
	canonical := "amount=150000" +
		"&code=00" +
		"&description=BOOK-HAPHUONG-1699999999" +
		"&orderCode=123456789" +
		"&reference=FT22509"
	return hmacSHA256Hex(key, canonical)
}

func TestPayOS_Verify_ValidSignature(t *testing.T) {
	a := NewPayOS(PayOSConfig{ChecksumKey: payosChecksumKey})

	req := httptest.NewRequest("POST", "/", nil)
	body := payosBody(payosTestSignature(payosChecksumKey))

	assert.NoError(t, a.Verify(req, body))
}

func TestPayOS_Verify_HexCaseInsensitive(t *testing.T) {
	a := NewPayOS(PayOSConfig{ChecksumKey: payosChecksumKey})

	req := httptest.NewRequest("POST", "/", nil)
	body := payosBody(strings.ToUpper(payosTestSignature(payosChecksumKey)))

	assert.NoError(t, a.Verify(req, body))
}

func TestPayOS_Verify_Rejects(t *testing.T) {
	a := NewPayOS(PayOSConfig{ChecksumKey: payosChecksumKey})
	req := httptest.NewRequest("POST", "/", nil)

	t.Run("wrong key", func(t *testing.T) {
		assert.Error(t, a.Verify(req, payosBody(payosTestSignature("wrong-key"))))
	})

	t.Run("missing signature", func(t *testing.T) {
		assert.Error(t, a.Verify(req, payosBody("")))
	})

	t.Run("garbage body", func(t *testing.T) {
		assert.Error(t, a.Verify(req, []byte(`[1,2,3`)))
	})
}

func TestPayOS_Extract(t *testing.T) {
	a := NewPayOS(PayOSConfig{ChecksumKey: payosChecksumKey})
	req := httptest.NewRequest("POST", "/", nil)

	events, err := a.Extract(req, payosBody("whatever"))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "payos", events[0].Provider)
	assert.Equal(t, int64(123456789), events[0].OrderCode)
	assert.Equal(t, int64(150000), events[0].Amount)
	assert.Equal(t, "FT22509", events[0].ProviderRef)
}

func TestPayOS_Extract_NonSuccessCodeYieldsNothing(t *testing.T) {
	a := NewPayOS(PayOSConfig{ChecksumKey: payosChecksumKey})
	req := httptest.NewRequest("POST", "/", nil)

	body := []byte(`{
		"code": "00",
		"data": {"orderCode": 1, "amount": 1, "code": "01", "desc": "cancelled"},
		"signature": "x"
	}`)

	events, err := a.Extract(req, body)

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCanonicalizeData_SortsKeysAndRendersNull(t *testing.T) {
	canonical, err := canonicalizeData([]byte(`{"b": 2, "a": "x", "c": null, "d": true}`))

	require.NoError(t, err)
	assert.Equal(t, "a=x&b=2&c=&d=true", canonical)
}
