package round

import (
	"context"

	"wordle_backend/internal/game"
	"wordle_backend/internal/model"
)

// MakeGuess Принимает догадку активного раунда. На победе сразу
// начисляет выигрыш в гроссбух; расчёт с кошельком остаётся
// за явным FinalizeRound
func (s *serv) MakeGuess(ctx context.Context, playerKey, word string) (*model.GuessResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, err := s.activeSession(playerKey)
	if err != nil {
		return nil, err
	}

	letters, err := sess.Engine.SubmitGuess(word)
	if err != nil {
		return nil, err
	}

	var payout float64
	if sess.Engine.Status() == game.StatusWon {
		attempt := sess.Engine.Attempts()
		multiplier := sess.Ledger.PayoutMultiplierFor(attempt)

		// Информационный пауэрап до первой догадки срезает
		// множитель первой попытки
		if attempt == 1 && sess.FirstWinOverride > 0 && sess.FirstWinOverride < multiplier {
			multiplier = sess.FirstWinOverride
		}

		payout, err = sess.Ledger.RecordWin(multiplier)
		if err != nil {
			return nil, err
		}
	}

	return &model.GuessResult{
		Letters:      letters,
		Status:       sess.Engine.Status(),
		AttemptsUsed: sess.Engine.Attempts(),
		AttemptsLeft: sess.Engine.AttemptLimit() - sess.Engine.Attempts(),
		Payout:       payout,
	}, nil
}
