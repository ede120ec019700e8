package auth

import (
	"errors"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"

	"wordle_backend/internal/config"
	"wordle_backend/internal/repository"
	"wordle_backend/internal/service"
)

var (
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type serv struct {
	txManager     trm.Manager
	userRepo      repository.UserRepository
	authRepo      repository.AuthRepository
	walletRepo    repository.WalletRepository
	jwtConfig     config.JWTConfig
	walletdConfig config.WalletdConfig
}

// NewAuthService Сервис регистрации и входа walletd.
// При регистрации заводит пользователю кошелёк со стартовым балансом
func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	walletRepo repository.WalletRepository,
	jwtConfig config.JWTConfig,
	walletdConfig config.WalletdConfig,
) service.AuthService {
	return &serv{
		txManager:     txManager,
		userRepo:      userRepo,
		authRepo:      authRepo,
		walletRepo:    walletRepo,
		jwtConfig:     jwtConfig,
		walletdConfig: walletdConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
