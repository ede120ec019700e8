package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordle_backend/internal/model"
	"wordle_backend/pkg/pass"
	"wordle_backend/pkg/token"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	// Ключ кошелька выдаётся при регистрации и остаётся за игроком
	user.WalletKey = uuid.NewString()

	// Переменные для хранения результатов
	var (
		sessionID    string
		refreshToken string
		accessToken  string
	)

	// Начало транзакциии
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		// 2. Завести кошелёк игрока со стартовым балансом
		err = s.walletRepo.CreateWallet(ctx, &model.Wallet{
			Key:      user.WalletKey,
			Category: model.WalletCategoryUser,
			Balance:  s.walletdConfig.StartingBalance(),
		})
		if err != nil {
			return err
		}

		// 3. Генерация sessionID
		sessionID = generateSessionID()
		// 4. Генерация refresh токена
		refreshToken, err = token.GenerateRefreshToken()
		if err != nil {
			return err
		}

		// 5. Создать сессию
		err = s.authRepo.CreateSession(ctx,
			&model.Session{
				ID:           sessionID,
				UserID:       user.ID,
				RefreshToken: token.HashRefreshToken(refreshToken),
				ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()), // Время жизни refresh токена из конфигурации
			})
		if err != nil {
			return err
		}

		// 6. Создать access токен
		accessToken, err = token.GenerateAccessToken(
			user,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
		WalletKey:    user.WalletKey,
	}, nil
}
