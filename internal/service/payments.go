package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/tranvantai204/GarageBooking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Reconciler applies one inbound payment event through the ledger gate.
type Reconciler interface {
	Apply(ctx context.Context, ev domain.InboundEvent) (domain.Outcome, error)
}

// MerchantAccount is the receiving bank account shown in payment instructions.
type MerchantAccount struct {
	AccountNumber string
	BankCode      string
	AccountName   string
}

type PaymentService struct {
	bookingRepo ports.BookingRepo
	orderRepo   ports.OrderRepo
	lister      ports.TransactionLister
	checkout    ports.CheckoutLinker
	reconciler  Reconciler
	account     MerchantAccount
	logger      logger.Logger
}

func NewPaymentService(
	bookingRepo ports.BookingRepo,
	orderRepo ports.OrderRepo,
	lister ports.TransactionLister,
	checkout ports.CheckoutLinker,
	reconciler Reconciler,
	account MerchantAccount,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		bookingRepo: bookingRepo,
		orderRepo:   orderRepo,
		lister:      lister,
		checkout:    checkout,
		reconciler:  reconciler,
		account:     account,
		logger:      logger,
	}
}

// CreateOrder issues payment instructions for an unpaid booking: a numeric
// order code, bank transfer details with a QR image, and optionally a hosted
// checkout link.
func (s *PaymentService) CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.PaymentInstructions, error) {
	booking, err := s.bookingRepo.GetByTicketCode(ctx, input.TicketCode)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.PaymentStatus == domain.PaymentStatusPaid {
		return nil, domain.ErrAlreadyPaid
	}

	order := &domain.PaymentOrder{
		OrderCode: newOrderCode(),
		BookingID: booking.ID,
		Amount:    booking.Amount,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	memo := "BOOK-" + booking.TicketCode
	instr := &domain.PaymentInstructions{
		OrderCode:     order.OrderCode,
		Amount:        booking.Amount,
		Memo:          memo,
		BankCode:      s.account.BankCode,
		AccountNumber: s.account.AccountNumber,
		AccountName:   s.account.AccountName,
		QRImageURL:    s.qrImageURL(booking.Amount, memo),
	}

	if input.WithCheckoutURL && s.checkout.Enabled() {
		link, err := s.checkout.CreatePaymentLink(ctx, order.OrderCode, booking.Amount, memo)
		if err != nil {
			// The bank transfer path still works without a link.
			s.logger.Error("failed to create checkout link",
				logger.String("ticket_code", booking.TicketCode),
				logger.String("error", err.Error()),
			)
		} else {
			instr.CheckoutURL = link
		}
	}

	s.logger.Info("payment order created",
		logger.String("ticket_code", booking.TicketCode),
		logger.Int("order_code", int(order.OrderCode)),
		logger.Int("amount", int(booking.Amount)),
	)

	return instr, nil
}

// Sync pulls recent transactions from the provider API and replays them
// through the reconciler. Events that already arrived by webhook come back
// as duplicates, which is the point: sync closes webhook delivery gaps.
func (s *PaymentService) Sync(ctx context.Context, limit int) (*domain.SyncReport, error) {
	events, err := s.lister.ListTransactions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	report := &domain.SyncReport{Fetched: len(events)}
	for _, ev := range events {
		out, err := s.reconciler.Apply(ctx, ev)
		if err != nil {
			report.Failed++
			s.logger.Error("sync: failed to apply event",
				logger.String("ref", ev.ProviderRef),
				logger.String("error", err.Error()),
			)
			continue
		}
		switch out.Status {
		case domain.OutcomeApplied:
			report.Applied++
		case domain.OutcomeDuplicate:
			report.Duplicate++
		default:
			report.Skipped++
		}
	}

	s.logger.Info("sync finished",
		logger.Int("fetched", report.Fetched),
		logger.Int("applied", report.Applied),
		logger.Int("duplicate", report.Duplicate),
		logger.Int("skipped", report.Skipped),
		logger.Int("failed", report.Failed),
	)

	return report, nil
}

func (s *PaymentService) qrImageURL(amount int64, memo string) string {
	q := url.Values{}
	q.Set("amount", fmt.Sprintf("%d", amount))
	q.Set("addInfo", memo)
	q.Set("accountName", s.account.AccountName)
	return fmt.Sprintf("https://img.vietqr.io/image/%s-%s-qr_only.png?%s",
		s.account.BankCode, s.account.AccountNumber, q.Encode())
}

// newOrderCode derives a provider-safe numeric code from the current time.
// Providers cap order codes well below int64, so only the last nine digits
// of the millisecond clock are kept.
func newOrderCode() int64 {
	return time.Now().UnixMilli() % 1_000_000_000
}
