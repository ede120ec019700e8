package round

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"wordle_backend/internal/client/wallet"
	"wordle_backend/internal/game"
	"wordle_backend/internal/model"
)

// FinalizeRound Рассчитывает завершённый раунд с кошельком.
// На раунд приходится ровно один перевод: выигрыш идёт из кошелька игры
// игроку, проигрыш — наоборот, суммы округляются вниз до целого.
// Если перевод не прошёл, раунд остаётся нерассчитанным и вызов можно
// повторить: гроссбух не меняется, дубль перевода не возникает
func (s *serv) FinalizeRound(ctx context.Context, playerKey string) (*model.FinalizeResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, ok := s.rounds.Get(playerKey)
	if !ok {
		return nil, ErrNoActiveRound
	}
	if sess.Engine.Status() == game.StatusPlaying {
		return nil, ErrRoundStillActive
	}
	if sess.Settled {
		return nil, ErrAlreadySettled
	}

	net := sess.Ledger.NetResult()

	var message string
	switch {
	case net > 0:
		message = "no exchange needed"
		if amount := int(math.Floor(net)); amount > 0 {
			resp, err := s.wallet.ExchangeMoney(ctx, wallet.ExchangeRequest{
				Source:      s.gameKey,
				Destination: playerKey,
				Amount:      amount,
			})
			if err != nil {
				return nil, fmt.Errorf("settlement failed: %w", err)
			}
			message = resp.Message
		}
	case net < 0:
		message = "no exchange needed"
		if amount := int(math.Floor(-net)); amount > 0 {
			resp, err := s.wallet.ExchangeMoney(ctx, wallet.ExchangeRequest{
				Source:      playerKey,
				Destination: s.gameKey,
				Amount:      amount,
			})
			if err != nil {
				return nil, fmt.Errorf("settlement failed: %w", err)
			}
			message = resp.Message
		}
	default:
		message = "no exchange needed"
	}

	// Рассчитан. Сессия хранится до следующего старта, чтобы повторный
	// FinalizeRound отвечал ErrAlreadySettled, а не "раунда нет"
	sess.Settled = true
	s.rounds.Save(sess)

	log.Info().
		Str("player", playerKey).
		Float64("net", net).
		Str("word", sess.Engine.Target()).
		Msg("round settled")

	return &model.FinalizeResult{
		Message: message,
		Net:     net,
		Word:    sess.Engine.Target(),
	}, nil
}

// Balance Текущий баланс кошелька игрока
func (s *serv) Balance(ctx context.Context, playerKey string) (float64, error) {
	return s.wallet.GetWallet(ctx, wallet.CategoryUser, playerKey)
}
