package round

import (
	"errors"
	"sync"

	"wordle_backend/internal/client/wallet"
	"wordle_backend/internal/config"
	"wordle_backend/internal/model"
	"wordle_backend/internal/repository"
	"wordle_backend/internal/service"
)

// Ошибки последовательности вызовов. Отдаются вызывающему сразу,
// внутренних ретраев нет
var (
	ErrRoundInProgress    = errors.New("round already in progress")
	ErrNoActiveRound      = errors.New("no active round")
	ErrUnknownPowerUp     = errors.New("power-up type is not configured")
	ErrPowerUpAlreadyUsed = errors.New("power-up already used this round")
	ErrRoundStillActive   = errors.New("round is still active")
	ErrAlreadySettled     = errors.New("round already settled")
)

type serv struct {
	// Один мьютекс на сервис: операции раунда кооперативны и короткие,
	// он же закрывает переход Active → Settling от двойного расчёта
	mtx sync.Mutex

	cfg      config.RoundConfig
	rounds   repository.RoundRepository
	wallet   wallet.Gateway
	gameKey  string
	nextWord model.WordProvider
}

// NewRoundService Создать оркестратор раундов.
// gameKey — ключ кошелька игры, вторая сторона каждого расчёта
func NewRoundService(
	cfg config.RoundConfig,
	rounds repository.RoundRepository,
	gateway wallet.Gateway,
	gameKey string,
	nextWord model.WordProvider,
) service.RoundService {
	return &serv{
		cfg:      cfg,
		rounds:   rounds,
		wallet:   gateway,
		gameKey:  gameKey,
		nextWord: nextWord,
	}
}

// activeSession Сессия игрока в состоянии Active (раунд идёт).
// Настраивающиеся и рассчитанные сессии активными не считаются
func (s *serv) activeSession(playerKey string) (*model.RoundSession, error) {
	sess, ok := s.rounds.Get(playerKey)
	if !ok || sess.Settled || !sess.Engine.IsActive() {
		return nil, ErrNoActiveRound
	}
	return sess, nil
}
