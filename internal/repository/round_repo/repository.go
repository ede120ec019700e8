package round_repo

import (
	"sync"

	"wordle_backend/internal/model"
	"wordle_backend/internal/repository"
)

// Реализация in-memory хранилища раундов.
// Карта "ключ игрока → сессия раунда" под RWMutex
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.RoundSession
}

func NewRoundRepository() repository.RoundRepository {
	return &repo{
		sessions: make(map[string]*model.RoundSession),
	}
}

// Get Возвращает сессию раунда игрока, если она есть
func (r *repo) Get(playerKey string) (*model.RoundSession, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[playerKey]
	return s, ok
}

// Save Сохраняет сессию раунда по ключу игрока
func (r *repo) Save(session *model.RoundSession) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sessions[session.PlayerKey] = session
}

// Delete Удаляет сессию раунда игрока
func (r *repo) Delete(playerKey string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, playerKey)
}
