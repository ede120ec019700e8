package service

import (
	"context"

	"wordle_backend/internal/game"
	"wordle_backend/internal/model"
)

// RoundService Оркестратор раунда: жизненный цикл ставка → догадки →
// пауэрапы → расчёт с кошельком
type RoundService interface {
	StartRound(ctx context.Context, playerKey string, bet float64) (*model.RoundStartResult, error)
	MakeGuess(ctx context.Context, playerKey, word string) (*model.GuessResult, error)
	PurchasePowerUp(ctx context.Context, playerKey string, typ game.PowerUpType, cost float64, input string) (*model.PowerUpResult, error)
	FinalizeRound(ctx context.Context, playerKey string) (*model.FinalizeResult, error)
	Balance(ctx context.Context, playerKey string) (float64, error)
}

// WalletService Кошельковый сервис walletd
type WalletService interface {
	Balance(ctx context.Context, category, key string) (float64, error)
	Deposit(ctx context.Context, key string, amount float64) (float64, error)
	Exchange(ctx context.Context, gameKey string, ex model.Exchange) (string, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
