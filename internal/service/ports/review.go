package ports

import "context"

// ReviewRepo records events that need an operator's eyes: unmatched memos,
// amount mismatches, payments for unknown targets. Recording is best-effort
// and never blocks the webhook response.
type ReviewRepo interface {
	Record(ctx context.Context, title, body string, data map[string]any) error
}
