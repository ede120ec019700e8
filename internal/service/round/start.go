package round

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"wordle_backend/internal/client/wallet"
	"wordle_backend/internal/game"
	"wordle_backend/internal/model"
)

// StartRound Начинает раунд: проверка баланса в кошельке, приём ставки,
// выбор слова. Отказ кошелька и невалидная ставка не роняют вызов —
// возвращается Accepted=false с причиной, раунд считается не начатым
func (s *serv) StartRound(ctx context.Context, playerKey string, bet float64) (*model.RoundStartResult, error) {
	if playerKey == "" {
		return nil, errors.New("player key is empty")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	// Пока предыдущий раунд не рассчитан, новый не начинается
	if sess, ok := s.rounds.Get(playerKey); ok && !sess.Settled {
		return nil, ErrRoundInProgress
	}

	// Свежая экономика раунда
	ledger := game.NewLedger(s.cfg.MinBet(), s.cfg.MaxBet(), s.cfg.PayoutMultipliers())
	ledger.Reset()

	// Проверка баланса. Недоступный кошелёк — это "баланс неизвестен",
	// а не ноль: старт просто отклоняется
	balance, err := s.wallet.GetWallet(ctx, wallet.CategoryUser, playerKey)
	if err != nil {
		log.Warn().Err(err).Str("player", playerKey).Msg("balance check failed")
		return &model.RoundStartResult{
			Accepted: false,
			Reason:   fmt.Sprintf("balance check failed: %v", err),
		}, nil
	}
	if balance < bet {
		return &model.RoundStartResult{
			Accepted: false,
			Reason:   "insufficient funds",
		}, nil
	}

	if err := ledger.PlaceBet(bet); err != nil {
		return &model.RoundStartResult{
			Accepted: false,
			Reason:   err.Error(),
		}, nil
	}

	engine := game.NewEngine()
	// Слово из источника считается валидным; иначе это ошибка конфигурации
	if err := engine.Start(s.nextWord()); err != nil {
		return nil, fmt.Errorf("word source returned an invalid word: %w", err)
	}
	if err := engine.SetAttemptLimit(s.cfg.AttemptLimit()); err != nil {
		return nil, fmt.Errorf("invalid attempt limit in config: %w", err)
	}

	s.rounds.Save(&model.RoundSession{
		PlayerKey:    playerKey,
		Engine:       engine,
		Ledger:       ledger,
		UsedPowerUps: make(map[game.PowerUpType]int),
	})

	log.Info().Str("player", playerKey).Float64("bet", bet).Msg("round started")

	return &model.RoundStartResult{
		Accepted:    true,
		MaxAttempts: engine.AttemptLimit(),
	}, nil
}
