package wallet

import (
	"context"

	"github.com/rs/zerolog/log"
)

const mockBalance = 5000

// MockGateway Полный мок кошелькового API: фиксированный баланс,
// любой перевод одобряется. Для разработки без доступа к кошельку
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) GetWallet(_ context.Context, category Category, key string) (float64, error) {
	log.Warn().
		Str("category", string(category)).
		Str("key", key).
		Float64("balance", mockBalance).
		Msg("[MOCK API] getWallet")
	return mockBalance, nil
}

func (g *MockGateway) ExchangeMoney(_ context.Context, req ExchangeRequest) (*ExchangeResponse, error) {
	log.Warn().
		Str("source", req.Source).
		Str("destination", req.Destination).
		Int("amount", req.Amount).
		Msg("[MOCK API] exchangeMoney")
	return &ExchangeResponse{Message: "Transaction approved (MOCKED)"}, nil
}

// TransactionMockGateway Гибрид: балансы читаются по-настоящему,
// переводы замоканы. Удобен, когда тестовые деньги двигать нельзя
type TransactionMockGateway struct {
	real Gateway
}

func NewTransactionMockGateway(real Gateway) *TransactionMockGateway {
	return &TransactionMockGateway{real: real}
}

func (g *TransactionMockGateway) GetWallet(ctx context.Context, category Category, key string) (float64, error) {
	return g.real.GetWallet(ctx, category, key)
}

func (g *TransactionMockGateway) ExchangeMoney(_ context.Context, req ExchangeRequest) (*ExchangeResponse, error) {
	log.Warn().
		Str("source", req.Source).
		Str("destination", req.Destination).
		Int("amount", req.Amount).
		Msg("[MOCK API] exchangeMoney (real reads, mocked transfers)")
	return &ExchangeResponse{Message: "Transaction approved (MOCKED)"}, nil
}
