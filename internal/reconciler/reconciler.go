package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/tranvantai204/GarageBooking/internal/parser"
	"github.com/tranvantai204/GarageBooking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// maxRefLen caps provider references before they hit the ledger's unique key.
const maxRefLen = 128

// Config carries the merchant account details events are filtered against
// and the tolerance for amount mismatches on booking payments.
type Config struct {
	AccountNumber   string
	BankCode        string
	AmountTolerance int64
}

// Reconciler is the only component that applies financial effects. Every
// verified provider event ends here, and every mutation goes through the
// ledger gate so redelivered webhooks collapse into Duplicate outcomes.
type Reconciler struct {
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	orderRepo   ports.OrderRepo
	applier     ports.PaymentApplier
	review      ports.ReviewRepo
	notifier    ports.PaymentNotifier
	cfg         Config
	logger      logger.Logger
}

func New(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	orderRepo ports.OrderRepo,
	applier ports.PaymentApplier,
	review ports.ReviewRepo,
	notifier ports.PaymentNotifier,
	cfg Config,
	logger logger.Logger,
) *Reconciler {
	return &Reconciler{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		applier:     applier,
		review:      review,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger,
	}
}

// Apply reconciles a single inbound payment event. A non-nil error means
// storage failed and the caller should make the provider redeliver; every
// business-rule rejection is a Skipped outcome with a reason instead.
func (r *Reconciler) Apply(ctx context.Context, ev domain.InboundEvent) (domain.Outcome, error) {
	if len(ev.ProviderRef) > maxRefLen {
		ev.ProviderRef = ev.ProviderRef[:maxRefLen]
	}

	if r.cfg.AccountNumber != "" && ev.AccountNumber != "" && ev.AccountNumber != r.cfg.AccountNumber {
		r.logger.Warn("event for foreign account skipped",
			logger.String("provider", ev.Provider),
			logger.String("account", ev.AccountNumber),
			logger.String("ref", ev.ProviderRef),
		)
		r.recordReview(ctx, "Giao dich sai tai khoan",
			fmt.Sprintf("Nhan tien vao tai khoan %s, khong phai tai khoan thu", ev.AccountNumber), ev)
		return domain.Skipped(domain.SkipAccountMismatch), nil
	}

	// A bank-code mismatch alone is not trusted: gateways report the same
	// account under different bank aliases. Log it and keep going.
	if r.cfg.BankCode != "" && ev.BankCode != "" && ev.BankCode != r.cfg.BankCode {
		r.logger.Warn("bank code differs from configured account",
			logger.String("provider", ev.Provider),
			logger.String("bank_code", ev.BankCode),
		)
	}

	if ev.OrderCode != 0 {
		return r.applyByOrderCode(ctx, ev)
	}

	intent := parser.ParseMemo(ev.Description)
	switch intent.Kind {
	case domain.IntentBookingPayment:
		return r.applyBookingPayment(ctx, ev, intent.TicketCode)
	case domain.IntentWalletTopup:
		return r.applyWalletTopup(ctx, ev, intent)
	default:
		r.logger.Info("unmatched transfer memo",
			logger.String("provider", ev.Provider),
			logger.String("description", ev.Description),
			logger.String("ref", ev.ProviderRef),
		)
		r.recordReview(ctx, "Giao dich khong khop",
			fmt.Sprintf("Khong nhan ra noi dung chuyen khoan: %q", ev.Description), ev)
		return domain.Skipped(domain.SkipNoMatch), nil
	}
}

func (r *Reconciler) applyByOrderCode(ctx context.Context, ev domain.InboundEvent) (domain.Outcome, error) {
	order, err := r.orderRepo.GetByOrderCode(ctx, ev.OrderCode)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			r.recordReview(ctx, "Khong tim thay don thanh toan",
				fmt.Sprintf("Ma don %d khong ton tai", ev.OrderCode), ev)
			return domain.Skipped(domain.SkipTargetNotFound), nil
		}
		return domain.Outcome{}, fmt.Errorf("resolve order %d: %w", ev.OrderCode, err)
	}

	booking, err := r.bookingRepo.GetByID(ctx, order.BookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			r.recordReview(ctx, "Khong tim thay ve",
				fmt.Sprintf("Don %d tro toi ve %s da bi xoa", ev.OrderCode, order.BookingID), ev)
			return domain.Skipped(domain.SkipTargetNotFound), nil
		}
		return domain.Outcome{}, fmt.Errorf("get booking for order: %w", err)
	}

	return r.settleBooking(ctx, ev, booking, ev.OrderCode)
}

func (r *Reconciler) applyBookingPayment(ctx context.Context, ev domain.InboundEvent, ticketCode string) (domain.Outcome, error) {
	booking, err := r.bookingRepo.GetByTicketCode(ctx, ticketCode)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			r.recordReview(ctx, "Khong tim thay ve",
				fmt.Sprintf("Ma ve %s khong ton tai", ticketCode), ev)
			return domain.Skipped(domain.SkipTargetNotFound), nil
		}
		return domain.Outcome{}, fmt.Errorf("get booking %s: %w", ticketCode, err)
	}

	return r.settleBooking(ctx, ev, booking, 0)
}

func (r *Reconciler) settleBooking(ctx context.Context, ev domain.InboundEvent, booking *domain.Booking, orderCode int64) (domain.Outcome, error) {
	if booking.PaymentStatus == domain.PaymentStatusPaid {
		// The ledger gate catches exact redeliveries; a fresh payment for a
		// paid booking is real money that needs a human.
		if booking.PaymentRef == ev.ProviderRef && ev.ProviderRef != "" {
			return domain.Duplicate(), nil
		}
		r.recordReview(ctx, "Ve da thanh toan",
			fmt.Sprintf("Nhan them tien cho ve %s da thanh toan", booking.TicketCode), ev)
		return domain.Skipped(domain.SkipAlreadyPaid), nil
	}

	if diff := ev.Amount - booking.Amount; diff < -r.cfg.AmountTolerance || diff > r.cfg.AmountTolerance {
		r.logger.Warn("payment amount outside tolerance",
			logger.String("ticket_code", booking.TicketCode),
			logger.Int("received", int(ev.Amount)),
			logger.Int("expected", int(booking.Amount)),
		)
		r.recordReview(ctx, "Sai so tien",
			fmt.Sprintf("Ve %s can %d, nhan %d", booking.TicketCode, booking.Amount, ev.Amount), ev)
		return domain.Skipped(domain.SkipAmountMismatch), nil
	}

	entry := domain.LedgerEntry{
		ID:          uuid.New().String(),
		Kind:        domain.LedgerKindPayment,
		Amount:      ev.Amount,
		ProviderRef: ev.ProviderRef,
		SubjectID:   booking.UserID,
		AppliedAt:   time.Now().UTC(),
	}
	err := r.applier.ApplyBookingPayment(ctx, entry, booking.ID, methodFor(ev.Provider), orderCode)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return domain.Duplicate(), nil
		}
		// A concurrent delivery settled the booking between our read and
		// the write. Same treatment as reading it already paid.
		if errors.Is(err, domain.ErrAlreadyPaid) {
			r.recordReview(ctx, "Ve da thanh toan",
				fmt.Sprintf("Nhan them tien cho ve %s da thanh toan", booking.TicketCode), ev)
			return domain.Skipped(domain.SkipAlreadyPaid), nil
		}
		return domain.Outcome{}, fmt.Errorf("apply booking payment: %w", err)
	}

	r.logger.Info("booking paid",
		logger.String("booking_id", booking.ID),
		logger.String("ticket_code", booking.TicketCode),
		logger.String("provider", ev.Provider),
		logger.String("ref", ev.ProviderRef),
	)

	go r.notifyBookingPaid(context.WithoutCancel(ctx), booking, ev)

	return domain.Applied(), nil
}

func (r *Reconciler) applyWalletTopup(ctx context.Context, ev domain.InboundEvent, intent domain.Intent) (domain.Outcome, error) {
	var (
		user *domain.User
		err  error
	)
	switch intent.Target {
	case domain.TopupByPhone:
		user, err = r.userRepo.GetByPhone(ctx, intent.TargetValue)
	default:
		user, err = r.userRepo.GetByID(ctx, intent.TargetValue)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			r.recordReview(ctx, "Khong tim thay nguoi dung",
				fmt.Sprintf("Nap vi cho %s khong ton tai", intent.TargetValue), ev)
			return domain.Skipped(domain.SkipTargetNotFound), nil
		}
		return domain.Outcome{}, fmt.Errorf("get topup user: %w", err)
	}

	entry := domain.LedgerEntry{
		ID:          uuid.New().String(),
		Kind:        domain.LedgerKindTopup,
		Amount:      ev.Amount,
		ProviderRef: ev.ProviderRef,
		SubjectID:   user.ID,
		AppliedAt:   time.Now().UTC(),
	}
	balance, err := r.applier.ApplyWalletTopup(ctx, entry, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return domain.Duplicate(), nil
		}
		return domain.Outcome{}, fmt.Errorf("apply wallet topup: %w", err)
	}

	r.logger.Info("wallet credited",
		logger.String("user_id", user.ID),
		logger.Int("amount", int(ev.Amount)),
		logger.String("provider", ev.Provider),
		logger.String("ref", ev.ProviderRef),
	)

	go r.notifier.NotifyWalletCredited(context.WithoutCancel(ctx), user, ev.Amount, balance)

	return domain.Applied(), nil
}

func (r *Reconciler) notifyBookingPaid(ctx context.Context, booking *domain.Booking, ev domain.InboundEvent) {
	user, err := r.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		r.logger.Error("failed to get user for payment notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	paid := *booking
	paid.PaymentStatus = domain.PaymentStatusPaid
	paid.PaymentMethod = methodFor(ev.Provider)
	paid.PaymentRef = ev.ProviderRef
	r.notifier.NotifyBookingPaid(ctx, user, &paid)
}

// recordReview files the event for manual follow-up. Review storage is
// best-effort and must never fail the webhook.
func (r *Reconciler) recordReview(ctx context.Context, title, body string, ev domain.InboundEvent) {
	go func(ctx context.Context) {
		data := map[string]any{
			"provider":    ev.Provider,
			"amount":      ev.Amount,
			"ref":         ev.ProviderRef,
			"description": ev.Description,
		}
		if err := r.review.Record(ctx, title, body, data); err != nil {
			r.logger.Error("failed to record review notification",
				logger.String("title", title),
				logger.String("error", err.Error()),
			)
		}
	}(context.WithoutCancel(ctx))
}

func methodFor(provider string) domain.PaymentMethod {
	switch provider {
	case "momo":
		return domain.PaymentMethodMoMo
	case "payos":
		return domain.PaymentMethodPayOS
	default:
		return domain.PaymentMethodBank
	}
}
