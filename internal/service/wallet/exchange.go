package wallet

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"wordle_backend/internal/model"
)

// Exchange Атомарный перевод между кошельком игрока и кошельком игры.
// Одной из сторон обязан быть кошелёк игры, чей ключ пришёл в URL
func (s *serv) Exchange(ctx context.Context, gameKey string, ex model.Exchange) (string, error) {
	if ex.Amount <= 0 {
		return "", ErrInvalidAmount
	}
	if ex.Source != gameKey && ex.Destination != gameKey {
		return "", ErrGameKeyNotInvolved
	}
	if ex.Source == ex.Destination {
		return "", fmt.Errorf("%w: source and destination are the same", ErrGameKeyNotInvolved)
	}

	amount := float64(ex.Amount)

	// Начало транзакциии
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Проверить, что источнику хватает денег
		srcBalance, err := s.walletRepo.GetBalance(ctx, ex.Source)
		if err != nil {
			return err
		}
		if srcBalance < amount {
			return ErrInsufficientFunds
		}

		// 2. Списать с источника
		if err = s.walletRepo.UpdateBalance(ctx, ex.Source, srcBalance-amount); err != nil {
			return err
		}

		// 3. Зачислить получателю
		dstBalance, err := s.walletRepo.GetBalance(ctx, ex.Destination)
		if err != nil {
			return err
		}

		return s.walletRepo.UpdateBalance(ctx, ex.Destination, dstBalance+amount)
	})
	if err != nil {
		return "", err
	}

	log.Info().
		Str("source", ex.Source).
		Str("destination", ex.Destination).
		Int("amount", ex.Amount).
		Msg("exchange completed")

	return "Transaction approved", nil
}
