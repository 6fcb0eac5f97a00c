package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/tranvantai204/GarageBooking/internal/service/ports/mocks"
)

func TestWalletService_Statement(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	ledgerRepo := mocks.NewMockLedgerRepo(t)
	svc := NewWalletService(userRepo, ledgerRepo, newTestLogger(t))

	user := &domain.User{ID: "u1", FullName: "Nguyen Van A", WalletBalance: 350000}
	entries := []domain.LedgerEntry{
		{ID: "l2", Kind: domain.LedgerKindTopup, Amount: 200000, SubjectID: "u1", AppliedAt: time.Now()},
		{ID: "l1", Kind: domain.LedgerKindPayment, Amount: 150000, SubjectID: "u1", AppliedAt: time.Now().Add(-time.Hour)},
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	ledgerRepo.EXPECT().ListByUser(mock.Anything, "u1", 50).Return(entries, nil)

	st, err := svc.Statement(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", st.UserID)
	assert.Equal(t, int64(350000), st.Balance)
	assert.Len(t, st.Entries, 2)
}

func TestWalletService_Statement_UserNotFound(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	ledgerRepo := mocks.NewMockLedgerRepo(t)
	svc := NewWalletService(userRepo, ledgerRepo, newTestLogger(t))

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Statement(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
