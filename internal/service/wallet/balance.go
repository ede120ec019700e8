package wallet

import (
	"context"
)

// Balance Баланс кошелька по категории и ключу
func (s *serv) Balance(ctx context.Context, category, key string) (float64, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, category, key)
	if err != nil {
		return 0, err
	}

	return wallet.Balance, nil
}
