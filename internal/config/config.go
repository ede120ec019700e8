package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// RoundConfig Экономика раунда: границы ставки, лимит попыток,
// таблица множителей выплат и прайс пауэрапов
type RoundConfig interface {
	MinBet() float64
	MaxBet() float64
	AttemptLimit() int
	// Множитель выплаты по номеру победной попытки (с 1)
	PayoutMultipliers() map[int]float64
	// Стоимость пауэрапов по типу
	PowerUpCosts() map[string]float64
	// Сниженный множитель первой попытки за информационный пауэрап,
	// купленный до первой догадки
	FirstGuessDiscounts() map[string]float64
}

type HTTPConfig interface {
	Address() string
}

// WalletAPIConfig Подключение игрового сервера к кошельковому API
type WalletAPIConfig interface {
	BaseURL() string
	GameKey() string
	// mock | hybrid | live
	Mode() string
}

// WalletdConfig Настройки локального кошелькового сервиса
type WalletdConfig interface {
	StartingBalance() float64
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
