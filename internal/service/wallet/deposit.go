package wallet

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Deposit Пополняет кошелёк и возвращает новый баланс.
// Служебная операция walletd, в обмене раунда не участвует
func (s *serv) Deposit(ctx context.Context, key string, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var newBalance float64

	// Начало транзакциии
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		balance, err := s.walletRepo.GetBalance(ctx, key)
		if err != nil {
			return err
		}

		newBalance = balance + amount

		return s.walletRepo.UpdateBalance(ctx, key, newBalance)
	})
	if err != nil {
		return 0, err
	}

	log.Info().Str("wallet", key).Float64("amount", amount).Msg("deposit applied")

	return newBalance, nil
}
