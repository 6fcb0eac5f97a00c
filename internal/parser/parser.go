package parser

import (
	"regexp"
	"strings"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

// Transfer memos arrive mangled: banks uppercase them, strip diacritics and
// insert arbitrary spacing. Matching is ordered and first-match-wins; ticket
// settlement outranks wallet topups.
var (
	reTicketCode = regexp.MustCompile(`BOOK-([A-Z0-9]+(?:-[A-Z0-9]+)*)`)
	reTopupID    = regexp.MustCompile(`TOPUP-([0-9A-F]{24})`)
	reTopupPhone = regexp.MustCompile(`TOPUP-(\+?\d{9,12})`)
)

// ParseMemo classifies a free-text transfer description into a payment intent.
// It never fails: anything unmatched is IntentUnrecognized.
//
// Each pattern is tried against the raw uppercased memo first, so whitespace
// keeps codes delimited from trailing bank noise ("BOOK-ABC-123 GD 884422"
// yields ABC-123, not ABC-123GD884422). The whitespace-stripped form is only
// a fallback for codes the bank spaced out ("BOOK - ABC - 123").
func ParseMemo(memo string) domain.Intent {
	candidates := []string{strings.ToUpper(memo), normalize(memo)}

	for _, s := range candidates {
		if m := reTicketCode.FindStringSubmatch(s); m != nil {
			return domain.Intent{
				Kind:       domain.IntentBookingPayment,
				TicketCode: m[1],
			}
		}
	}

	for _, s := range candidates {
		if m := reTopupID.FindStringSubmatch(s); m != nil {
			return domain.Intent{
				Kind:        domain.IntentWalletTopup,
				Target:      domain.TopupByAccountID,
				TargetValue: strings.ToLower(m[1]),
			}
		}
	}

	for _, s := range candidates {
		if m := reTopupPhone.FindStringSubmatch(s); m != nil {
			if phone, ok := NormalizePhone(m[1]); ok {
				return domain.Intent{
					Kind:        domain.IntentWalletTopup,
					Target:      domain.TopupByPhone,
					TargetValue: phone,
				}
			}
		}
	}

	return domain.Intent{Kind: domain.IntentUnrecognized}
}

// NormalizePhone reduces a Vietnamese phone number to its canonical local
// form: a leading zero followed by the last 9 significant digits.
// Accepted inputs: 0XXXXXXXXX, 84XXXXXXXXX, +84XXXXXXXXX, XXXXXXXXX.
func NormalizePhone(raw string) (string, bool) {
	p := strings.TrimPrefix(raw, "+")
	if strings.HasPrefix(p, "84") && len(p) > 10 {
		p = p[2:]
	}
	if strings.HasPrefix(p, "0") && len(p) == 10 {
		p = p[1:]
	}
	if len(p) != 9 {
		return "", false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return "0" + p, true
}

func normalize(memo string) string {
	up := strings.ToUpper(memo)
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, up)
}
