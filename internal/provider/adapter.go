package provider

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tranvantai204/GarageBooking/internal/domain"
)

// Adapter translates one provider's wire format into the common event shape.
// Verify must fail closed: a rejected request is never extracted or applied.
type Adapter interface {
	Name() string
	Verify(r *http.Request, body []byte) error
	Extract(r *http.Request, body []byte) ([]domain.InboundEvent, error)
}

// maxRefLen caps provider references before they reach storage.
const maxRefLen = 128

func truncateRef(ref string) string {
	if len(ref) > maxRefLen {
		return ref[:maxRefLen]
	}
	return ref
}

// parseAmount accepts the integer and decimal spellings providers use
// interchangeably for minor-unit amounts.
func parseAmount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
