package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tranvantai204/GarageBooking/internal/domain"
)

func TestParseMemo_BookingPayment(t *testing.T) {
	tests := []struct {
		name string
		memo string
		code string
	}{
		{"plain", "BOOK-HAPHUONG-1699999999", "HAPHUONG-1699999999"},
		{"lowercase", "book-haphuong-1699999999", "HAPHUONG-1699999999"},
		{"surrounded by bank noise", "CK DEN TU 0585761955 BOOK-ABC-123 GD 884422", "ABC-123"},
		{"trailing numeric noise", "BOOK-HAPHUONG-1699999999 MA GD 123456", "HAPHUONG-1699999999"},
		{"whitespace inside code", "BOOK - ABC - 123", "ABC-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := ParseMemo(tt.memo)
			assert.Equal(t, domain.IntentBookingPayment, intent.Kind)
			assert.Equal(t, tt.code, intent.TicketCode)
		})
	}
}

func TestParseMemo_BookingBeatsTopup(t *testing.T) {
	// Defensive ordering: a memo carrying both shapes settles the ticket.
	intent := ParseMemo("BOOK-ABC-1699999999 TOPUP-0901234567")
	assert.Equal(t, domain.IntentBookingPayment, intent.Kind)
	assert.Equal(t, "ABC-1699999999", intent.TicketCode)
}

func TestParseMemo_TopupByAccountID(t *testing.T) {
	// Trailing digits in the memo must not extend the 24-hex id.
	for _, memo := range []string{
		"TOPUP-64a1b2c3d4e5f60718293a4b",
		"TOPUP-64a1b2c3d4e5f60718293a4b GD 884422",
	} {
		intent := ParseMemo(memo)
		assert.Equal(t, domain.IntentWalletTopup, intent.Kind, memo)
		assert.Equal(t, domain.TopupByAccountID, intent.Target, memo)
		assert.Equal(t, "64a1b2c3d4e5f60718293a4b", intent.TargetValue, memo)
	}
}

func TestParseMemo_TopupByPhone(t *testing.T) {
	// All spellings of the same subscriber must resolve identically.
	for _, memo := range []string{
		"TOPUP-0901234567",
		"TOPUP-84901234567",
		"TOPUP-+84901234567",
		"topup - 0901234567",
		"TOPUP-0901234567 GD 884422",
	} {
		intent := ParseMemo(memo)
		assert.Equal(t, domain.IntentWalletTopup, intent.Kind, memo)
		assert.Equal(t, domain.TopupByPhone, intent.Target, memo)
		assert.Equal(t, "0901234567", intent.TargetValue, memo)
	}
}

func TestParseMemo_Unrecognized(t *testing.T) {
	for _, memo := range []string{
		"",
		"RANDOM TEXT",
		"THANH TOAN DON HANG 123",
		"TOPUP-12345",    // too short for a phone
		"TOPUP-8490123",  // neither phone nor account id
	} {
		intent := ParseMemo(memo)
		assert.Equal(t, domain.IntentUnrecognized, intent.Kind, memo)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0901234567", "0901234567", true},
		{"84901234567", "0901234567", true},
		{"+84901234567", "0901234567", true},
		{"901234567", "0901234567", true},
		{"12345", "", false},
		{"012345678901", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizePhone(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
