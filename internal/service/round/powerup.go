package round

import (
	"context"

	"wordle_backend/internal/game"
	"wordle_backend/internal/model"
)

// PurchasePowerUp Покупает пауэрап в активном раунде.
// Стоимость списывается до применения эффекта и не возвращается,
// даже если эффект сообщил о недоступности — это осознанная политика
func (s *serv) PurchasePowerUp(ctx context.Context, playerKey string, typ game.PowerUpType, cost float64, input string) (*model.PowerUpResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, err := s.activeSession(playerKey)
	if err != nil {
		return nil, err
	}

	effect, ok := game.Effects()[typ]
	if !ok {
		return nil, ErrUnknownPowerUp
	}

	// Движок охотно раздаёт попытки сколько угодно раз,
	// поэтому "не больше одной жизни за раунд" — политика оркестратора.
	// Отклоняется до списания денег
	if typ == game.PowerUpExtraLife && sess.UsedPowerUps[typ] > 0 {
		return nil, ErrPowerUpAlreadyUsed
	}

	if err := sess.Ledger.RecordPowerUpCost(cost); err != nil {
		return nil, err
	}

	// Информация, купленная до первой догадки, снижает множитель
	// первой попытки: берём минимум из уже действующей скидки и новой
	if sess.Engine.Attempts() == 0 {
		if discount, ok := s.cfg.FirstGuessDiscounts()[string(typ)]; ok {
			if sess.FirstWinOverride == 0 || discount < sess.FirstWinOverride {
				sess.FirstWinOverride = discount
			}
		}
	}

	info := effect(sess.Engine, input)
	sess.UsedPowerUps[typ]++

	return &model.PowerUpResult{
		Success: true,
		Type:    typ,
		Info:    info,
	}, nil
}
