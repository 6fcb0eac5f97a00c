package dto

type CreateOrderRequest struct {
	TicketCode      string `json:"ticket_code" binding:"required"`
	WithCheckoutURL bool   `json:"with_checkout_url"`
}

type SyncRequest struct {
	Limit int `json:"limit" binding:"omitempty,gt=0,lte=100"`
}
