package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/tranvantai204/GarageBooking/internal/handler/dto"
	"github.com/tranvantai204/GarageBooking/internal/provider"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// maxWebhookBody caps webhook payload reads; real provider payloads are a
// few kilobytes at most.
const maxWebhookBody = 1 << 20

type Reconciler interface {
	Apply(ctx context.Context, ev domain.InboundEvent) (domain.Outcome, error)
}

type PaymentSvc interface {
	CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.PaymentInstructions, error)
	Sync(ctx context.Context, limit int) (*domain.SyncReport, error)
}

type WalletSvc interface {
	Statement(ctx context.Context, userID string) (*domain.WalletStatement, error)
}

type Handler struct {
	reconciler     Reconciler
	paymentService PaymentSvc
	walletService  WalletSvc
	adapters       map[string]provider.Adapter
	logger         logger.Logger
}

func NewHandler(
	reconciler Reconciler,
	paymentService PaymentSvc,
	walletService WalletSvc,
	adapters []provider.Adapter,
	logger logger.Logger,
) *Handler {
	byName := make(map[string]provider.Adapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}

	return &Handler{
		reconciler:     reconciler,
		paymentService: paymentService,
		walletService:  walletService,
		adapters:       byName,
		logger:         logger,
	}
}

// Webhook receives a provider callback: verify authenticity, extract the
// normalized events, apply each through the reconciler. Only a storage
// failure produces a 5xx, that is the signal providers retry on.
func (h *Handler) Webhook(c *ginext.Context) {
	adapter, ok := h.adapters[c.Param("provider")]
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "unknown provider"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read body"})
		return
	}

	if err = adapter.Verify(c.Request, body); err != nil {
		h.logger.Warn("webhook verification failed",
			logger.String("provider", adapter.Name()),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})
		return
	}

	events, err := adapter.Extract(c.Request, body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrBadPayload.Error()})
		return
	}

	if len(events) == 0 {
		c.JSON(http.StatusOK, dto.OutcomeResponse{Status: "ignored"})
		return
	}

	var outcomes []domain.Outcome
	for _, ev := range events {
		out, err := h.reconciler.Apply(c.Request.Context(), ev)
		if err != nil {
			h.handleError(c, err)
			return
		}
		outcomes = append(outcomes, out)
	}

	if len(outcomes) == 1 {
		c.JSON(http.StatusOK, dto.ToOutcomeResponse(outcomes[0]))
		return
	}

	resp := dto.BatchOutcomeResponse{Received: len(outcomes)}
	for _, out := range outcomes {
		switch out.Status {
		case domain.OutcomeApplied:
			resp.Applied++
		case domain.OutcomeDuplicate:
			resp.Duplicate++
		default:
			resp.Skipped++
		}
	}
	c.JSON(http.StatusOK, resp)
}

// WebhookProbe answers provider dashboard liveness checks.
func (h *Handler) WebhookProbe(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"success": true})
}

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	instr, err := h.paymentService.CreateOrder(c.Request.Context(), domain.CreateOrderInput{
		TicketCode:      req.TicketCode,
		WithCheckoutURL: req.WithCheckoutURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInstructionsResponse(instr))
}

func (h *Handler) Sync(c *ginext.Context) {
	var req dto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	report, err := h.paymentService.Sync(c.Request.Context(), req.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncReportResponse(report))
}

func (h *Handler) GetWallet(c *ginext.Context) {
	userID := c.Param("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	st, err := h.walletService.Statement(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletStatementResponse(st))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyPaid):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
