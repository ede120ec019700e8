package wallet

import (
	"context"

	"wordle_backend/internal/config"
)

// Category Категория кошелька во внешнем API
type Category string

const (
	CategoryUser Category = "utilisateur"
	CategoryGame Category = "jeu"
)

// ExchangeRequest Перевод между кошельками. Одна из сторон — всегда
// кошелёк игры. Сумма целая, округлённая вниз при расчёте
type ExchangeRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Amount      int    `json:"montant"`
}

type ExchangeResponse struct {
	Message string `json:"message"`
	Flag    string `json:"flag,omitempty"`
}

// Gateway Клиент кошелькового API: чтение баланса и обмен денег.
// Любой неуспешный ответ — ошибка; неизвестный баланс никогда
// не трактуется как нулевой
type Gateway interface {
	GetWallet(ctx context.Context, category Category, key string) (float64, error)
	ExchangeMoney(ctx context.Context, req ExchangeRequest) (*ExchangeResponse, error)
}

// NewGateway Собирает клиент по режиму из конфигурации:
// mock — всё замокано, hybrid — реальные чтения и замоканные переводы,
// live — реальный HTTP клиент
func NewGateway(cfg config.WalletAPIConfig) Gateway {
	switch cfg.Mode() {
	case "mock":
		return NewMockGateway()
	case "hybrid":
		return NewTransactionMockGateway(NewClient(cfg))
	default:
		return NewClient(cfg)
	}
}
