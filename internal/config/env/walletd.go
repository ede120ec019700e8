package env

import (
	"fmt"
	"os"
	"strconv"

	"wordle_backend/internal/config"
)

const (
	startingBalanceEnvName = "STARTING_BALANCE"

	defaultStartingBalance = 5000
)

type walletdConfig struct {
	startingBalance float64
}

// NewWalletdConfig Настройки walletd.
// Стартовый баланс выдаётся каждому новому пользовательскому кошельку
func NewWalletdConfig() (config.WalletdConfig, error) {
	startingBalance := float64(defaultStartingBalance)

	if v := os.Getenv(startingBalanceEnvName); len(v) != 0 {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid starting balance: %s", v)
		}
		startingBalance = parsed
	}

	return &walletdConfig{
		startingBalance: startingBalance,
	}, nil
}

func (cfg *walletdConfig) StartingBalance() float64 {
	return cfg.startingBalance
}
