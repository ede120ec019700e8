package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// User Владелец пользовательского кошелька в walletd
type User struct {
	ID        int
	Name      string
	Login     string
	Password  string
	WalletKey string
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData Результат регистрации или входа
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
	WalletKey    string
}
