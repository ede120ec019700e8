package model

import "time"

// Session Сессия владельца кошелька.
// RefreshToken хранится в виде хэша
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}
