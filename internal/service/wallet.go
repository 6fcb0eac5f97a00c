package service

import (
	"context"
	"fmt"

	"github.com/tranvantai204/GarageBooking/internal/domain"
	"github.com/tranvantai204/GarageBooking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// statementLimit is how many recent ledger entries a wallet statement shows.
const statementLimit = 50

type WalletService struct {
	userRepo   ports.UserRepo
	ledgerRepo ports.LedgerRepo
	logger     logger.Logger
}

func NewWalletService(userRepo ports.UserRepo, ledgerRepo ports.LedgerRepo, logger logger.Logger) *WalletService {
	return &WalletService{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

func (s *WalletService) Statement(ctx context.Context, userID string) (*domain.WalletStatement, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	entries, err := s.ledgerRepo.ListByUser(ctx, userID, statementLimit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return &domain.WalletStatement{
		UserID:  user.ID,
		Balance: user.WalletBalance,
		Entries: entries,
	}, nil
}
