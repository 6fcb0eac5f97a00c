package reconciler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/tranvantai204/GarageBooking/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixture struct {
	bookingRepo *mocks.MockBookingRepo
	userRepo    *mocks.MockUserRepo
	orderRepo   *mocks.MockOrderRepo
	applier     *mocks.MockPaymentApplier
	review      *mocks.MockReviewRepo
	notifier    *mocks.MockPaymentNotifier
	rec         *Reconciler
}

func newFixture(t *testing.T, cfg Config) *fixture {
	f := &fixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		orderRepo:   mocks.NewMockOrderRepo(t),
		applier:     mocks.NewMockPaymentApplier(t),
		review:      mocks.NewMockReviewRepo(t),
		notifier:    mocks.NewMockPaymentNotifier(t),
	}
	f.rec = New(f.bookingRepo, f.userRepo, f.orderRepo, f.applier, f.review, f.notifier, cfg, newTestLogger(t))
	return f
}

func TestReconciler_Apply_BookingPayment(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	user := &domain.User{ID: "u1", FullName: "Nguyen Van A"}

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)
	f.applier.EXPECT().
		ApplyBookingPayment(mock.Anything, mock.Anything, "b1", domain.PaymentMethodBank, int64(0)).
		Run(func(_ context.Context, entry domain.LedgerEntry, _ string, _ domain.PaymentMethod, _ int64) {
			assert.Equal(t, domain.LedgerKindPayment, entry.Kind)
			assert.Equal(t, int64(150000), entry.Amount)
			assert.Equal(t, "FT123", entry.ProviderRef)
			assert.Equal(t, "u1", entry.SubjectID)
		}).
		Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingPaid(mock.Anything, user, mock.Anything).Return()

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "CK thanh toan BOOK-HP-X7K2M9",
		Amount:      150000,
		ProviderRef: "FT123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Applied(), out)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconciler_Apply_DuplicateDelivery(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)
	f.applier.EXPECT().
		ApplyBookingPayment(mock.Anything, mock.Anything, "b1", domain.PaymentMethodBank, int64(0)).
		Return(domain.ErrDuplicateEntry)

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-HP-X7K2M9",
		Amount:      150000,
		ProviderRef: "FT123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Duplicate(), out)
}

func TestReconciler_Apply_AccountMismatch(t *testing.T) {
	f := newFixture(t, Config{AccountNumber: "0331000123456", AmountTolerance: 2000})

	f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:      "sepay",
		Description:   "BOOK-HP-X7K2M9",
		Amount:        150000,
		ProviderRef:   "FT123",
		AccountNumber: "9999999999",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Skipped(domain.SkipAccountMismatch), out)

	time.Sleep(50 * time.Millisecond) // goroutine review record
}

func TestReconciler_Apply_BankCodeMismatchTolerated(t *testing.T) {
	f := newFixture(t, Config{AccountNumber: "0331000123456", BankCode: "VCB", AmountTolerance: 2000})

	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	user := &domain.User{ID: "u1"}

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)
	f.applier.EXPECT().
		ApplyBookingPayment(mock.Anything, mock.Anything, "b1", domain.PaymentMethodBank, int64(0)).
		Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingPaid(mock.Anything, user, mock.Anything).Return()

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:      "sepay",
		Description:   "BOOK-HP-X7K2M9",
		Amount:        150000,
		ProviderRef:   "FT123",
		AccountNumber: "0331000123456",
		BankCode:      "MB",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Applied(), out)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconciler_Apply_AmountMismatch(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)
	f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-HP-X7K2M9",
		Amount:      100000,
		ProviderRef: "FT123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Skipped(domain.SkipAmountMismatch), out)

	time.Sleep(50 * time.Millisecond) // goroutine review record
}

func TestReconciler_Apply_AmountWithinTolerance(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	user := &domain.User{ID: "u1"}

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)
	f.applier.EXPECT().
		ApplyBookingPayment(mock.Anything, mock.Anything, "b1", domain.PaymentMethodBank, int64(0)).
		Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingPaid(mock.Anything, user, mock.Anything).Return()

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-HP-X7K2M9",
		Amount:      148500,
		ProviderRef: "FT123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Applied(), out)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconciler_Apply_AmountToleranceBoundary(t *testing.T) {
	// The tolerance is inclusive: |diff| == tolerance still settles the
	// booking, one unit beyond goes to review.
	tests := []struct {
		name    string
		amount  int64
		applied bool
	}{
		{"underpaid exactly tolerance", 148000, true},
		{"overpaid exactly tolerance", 152000, true},
		{"underpaid one past tolerance", 147999, false},
		{"overpaid one past tolerance", 152001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Config{AmountTolerance: 2000})

			booking := &domain.Booking{
				ID:            "b1",
				TicketCode:    "HP-X7K2M9",
				UserID:        "u1",
				Amount:        150000,
				PaymentStatus: domain.PaymentStatusUnpaid,
			}
			f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)

			if tt.applied {
				f.applier.EXPECT().
					ApplyBookingPayment(mock.Anything, mock.Anything, "b1", domain.PaymentMethodBank, int64(0)).
					Return(nil)
				f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
				f.notifier.EXPECT().NotifyBookingPaid(mock.Anything, mock.Anything, mock.Anything).Return()
			} else {
				f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
			}

			out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
				Provider:    "sepay",
				Description: "BOOK-HP-X7K2M9",
				Amount:      tt.amount,
				ProviderRef: "FT123",
			})

			require.NoError(t, err)
			if tt.applied {
				assert.Equal(t, domain.Applied(), out)
			} else {
				assert.Equal(t, domain.Skipped(domain.SkipAmountMismatch), out)
			}

			time.Sleep(50 * time.Millisecond) // goroutine notify / review record
		})
	}
}

func TestReconciler_Apply_AlreadyPaid(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentRef:    "FT123",
	}

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)

	// Same ref as the settled payment: a provider redelivery.
	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-HP-X7K2M9",
		Amount:      150000,
		ProviderRef: "FT123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Duplicate(), out)

	// Different ref: new money for a paid booking goes to review.
	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)
	f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err = f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-HP-X7K2M9",
		Amount:      150000,
		ProviderRef: "FT999",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Skipped(domain.SkipAlreadyPaid), out)

	time.Sleep(50 * time.Millisecond) // goroutine review record
}

func TestReconciler_Apply_PaidByConcurrentDelivery(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	// The read sees the booking unpaid but another delivery with a
	// different ref settles it first; the applier reports it already paid.
	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)
	f.applier.EXPECT().
		ApplyBookingPayment(mock.Anything, mock.Anything, "b1", domain.PaymentMethodBank, int64(0)).
		Return(domain.ErrAlreadyPaid)
	f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-HP-X7K2M9",
		Amount:      150000,
		ProviderRef: "FT999",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Skipped(domain.SkipAlreadyPaid), out)

	time.Sleep(50 * time.Millisecond) // goroutine review record
}

func TestReconciler_Apply_BookingNotFound(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "GONE").Return(nil, domain.ErrBookingNotFound)
	f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-GONE",
		Amount:      150000,
		ProviderRef: "FT123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Skipped(domain.SkipTargetNotFound), out)

	time.Sleep(50 * time.Millisecond) // goroutine review record
}

func TestReconciler_Apply_WalletTopupByPhone(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	user := &domain.User{ID: "u1", FullName: "Nguyen Van A", Phone: "0912345678"}

	f.userRepo.EXPECT().GetByPhone(mock.Anything, "0912345678").Return(user, nil)
	f.applier.EXPECT().
		ApplyWalletTopup(mock.Anything, mock.Anything, "u1").
		Run(func(_ context.Context, entry domain.LedgerEntry, _ string) {
			assert.Equal(t, domain.LedgerKindTopup, entry.Kind)
			assert.Equal(t, int64(200000), entry.Amount)
		}).
		Return(int64(350000), nil)
	f.notifier.EXPECT().NotifyWalletCredited(mock.Anything, user, int64(200000), int64(350000)).Return()

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "TOPUP-84912345678 nap vi",
		Amount:      200000,
		ProviderRef: "FT777",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Applied(), out)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconciler_Apply_TopupUserNotFound(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	f.userRepo.EXPECT().
		GetByID(mock.Anything, "507f1f77bcf86cd799439011").
		Return(nil, domain.ErrUserNotFound)
	f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "TOPUP-507F1F77BCF86CD799439011",
		Amount:      200000,
		ProviderRef: "FT777",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Skipped(domain.SkipTargetNotFound), out)

	time.Sleep(50 * time.Millisecond) // goroutine review record
}

func TestReconciler_Apply_UnmatchedMemo(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "chuyen tien an trua",
		Amount:      50000,
		ProviderRef: "FT555",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Skipped(domain.SkipNoMatch), out)

	time.Sleep(50 * time.Millisecond) // goroutine review record
}

func TestReconciler_Apply_OrderCode(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	order := &domain.PaymentOrder{
		OrderCode: 123456789,
		BookingID: "b1",
		Amount:    150000,
		Status:    domain.OrderStatusPending,
	}
	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	user := &domain.User{ID: "u1"}

	f.orderRepo.EXPECT().GetByOrderCode(mock.Anything, int64(123456789)).Return(order, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.applier.EXPECT().
		ApplyBookingPayment(mock.Anything, mock.Anything, "b1", domain.PaymentMethodPayOS, int64(123456789)).
		Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingPaid(mock.Anything, user, mock.Anything).Return()

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "payos",
		Amount:      150000,
		ProviderRef: "payos-123456789",
		OrderCode:   123456789,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Applied(), out)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconciler_Apply_OrderNotFound(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	f.orderRepo.EXPECT().GetByOrderCode(mock.Anything, int64(42)).Return(nil, domain.ErrOrderNotFound)
	f.review.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "payos",
		Amount:      150000,
		ProviderRef: "payos-42",
		OrderCode:   42,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Skipped(domain.SkipTargetNotFound), out)

	time.Sleep(50 * time.Millisecond) // goroutine review record
}

func TestReconciler_Apply_StorageError(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	dbErr := errors.New("connection refused")
	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(nil, dbErr)

	_, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-HP-X7K2M9",
		Amount:      150000,
		ProviderRef: "FT123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestReconciler_Apply_TruncatesLongRef(t *testing.T) {
	f := newFixture(t, Config{AmountTolerance: 2000})

	longRef := strings.Repeat("0123456789", 20)

	booking := &domain.Booking{
		ID:            "b1",
		TicketCode:    "HP-X7K2M9",
		UserID:        "u1",
		Amount:        150000,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	user := &domain.User{ID: "u1"}

	f.bookingRepo.EXPECT().GetByTicketCode(mock.Anything, "HP-X7K2M9").Return(booking, nil)
	f.applier.EXPECT().
		ApplyBookingPayment(mock.Anything, mock.Anything, "b1", domain.PaymentMethodBank, int64(0)).
		Run(func(_ context.Context, entry domain.LedgerEntry, _ string, _ domain.PaymentMethod, _ int64) {
			assert.Len(t, entry.ProviderRef, 128)
		}).
		Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingPaid(mock.Anything, user, mock.Anything).Return()

	out, err := f.rec.Apply(context.Background(), domain.InboundEvent{
		Provider:    "sepay",
		Description: "BOOK-HP-X7K2M9",
		Amount:      150000,
		ProviderRef: longRef,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Applied(), out)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
