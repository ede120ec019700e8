package env

import (
	"os"

	"wordle_backend/internal/config"
)

const (
	httpAddressEnvName    = "HTTP_ADDRESS"
	walletdAddressEnvName = "WALLETD_ADDRESS"

	defaultHTTPAddress    = ":8080"
	defaultWalletdAddress = ":8081"
)

type httpConfig struct {
	address string
}

// NewHTTPConfig Адрес игрового сервера
func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(httpAddressEnvName)
	if len(address) == 0 {
		address = defaultHTTPAddress
	}

	return &httpConfig{
		address: address,
	}, nil
}

// NewWalletdHTTPConfig Адрес кошелькового сервиса
func NewWalletdHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(walletdAddressEnvName)
	if len(address) == 0 {
		address = defaultWalletdAddress
	}

	return &httpConfig{
		address: address,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
