package wallet

import (
	"errors"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"wordle_backend/internal/repository"
	"wordle_backend/internal/service"
)

var (
	ErrInvalidAmount      = errors.New("amount must be a positive integer")
	ErrGameKeyNotInvolved = errors.New("exchange must involve the game wallet")
	ErrInsufficientFunds  = errors.New("insufficient funds in source wallet")
)

type serv struct {
	walletRepo repository.WalletRepository
	txManager  trm.Manager
}

// NewWalletService Сервис кошельков walletd
func NewWalletService(
	walletRepo repository.WalletRepository,
	txManager trm.Manager,
) service.WalletService {
	return &serv{
		walletRepo: walletRepo,
		txManager:  txManager,
	}
}
