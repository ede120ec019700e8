package repository

import (
	"context"

	"wordle_backend/internal/model"
)

// RoundRepository Хранилище активных раундов игрового сервера.
// Живёт в памяти процесса: раунды между перезапусками не переживают
type RoundRepository interface {
	Get(playerKey string) (*model.RoundSession, bool)
	Save(session *model.RoundSession)
	Delete(playerKey string)
}

// WalletRepository Кошельки walletd
type WalletRepository interface {
	CreateWallet(ctx context.Context, wallet *model.Wallet) error
	GetWallet(ctx context.Context, category, key string) (*model.Wallet, error)
	GetBalance(ctx context.Context, key string) (float64, error)
	UpdateBalance(ctx context.Context, key string, balance float64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}
