package env

import (
	"errors"
	"fmt"
	"os"

	"wordle_backend/internal/config"
)

const (
	walletAPIURLEnvName  = "WALLET_API_URL"
	walletAPIModeEnvName = "WALLET_API_MODE"
	gameKeyEnvName       = "GAME_API_KEY"

	defaultWalletAPIURL = "http://localhost:8081"
)

// Режимы подключения к кошельковому API:
// mock — баланс и переводы замоканы целиком,
// hybrid — реальные чтения баланса, замоканные переводы,
// live — всё по-настоящему
const (
	WalletModeMock   = "mock"
	WalletModeHybrid = "hybrid"
	WalletModeLive   = "live"
)

type walletAPIConfig struct {
	baseURL string
	gameKey string
	mode    string
}

func NewWalletAPIConfig() (config.WalletAPIConfig, error) {
	baseURL := os.Getenv(walletAPIURLEnvName)
	if len(baseURL) == 0 {
		baseURL = defaultWalletAPIURL
	}

	gameKey := os.Getenv(gameKeyEnvName)
	if len(gameKey) == 0 {
		return nil, errors.New("game api key not found")
	}

	mode := os.Getenv(walletAPIModeEnvName)
	if len(mode) == 0 {
		mode = WalletModeLive
	}
	if mode != WalletModeMock && mode != WalletModeHybrid && mode != WalletModeLive {
		return nil, fmt.Errorf("unknown wallet api mode: %s", mode)
	}

	return &walletAPIConfig{
		baseURL: baseURL,
		gameKey: gameKey,
		mode:    mode,
	}, nil
}

func (cfg *walletAPIConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *walletAPIConfig) GameKey() string {
	return cfg.gameKey
}

func (cfg *walletAPIConfig) Mode() string {
	return cfg.mode
}
