package env

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wordle_backend/internal/config"
)

// Структура round-секции config.yaml
type roundYAML struct {
	Round struct {
		MinBet            float64             `yaml:"min_bet"`
		MaxBet            float64             `yaml:"max_bet"`
		AttemptLimit      int                 `yaml:"attempt_limit"`
		PayoutMultipliers map[int]float64     `yaml:"payout_multipliers"`
		PowerUps          struct {
			Costs               map[string]float64 `yaml:"costs"`
			FirstGuessDiscounts map[string]float64 `yaml:"first_guess_discounts"`
		} `yaml:"power_ups"`
	} `yaml:"round"`
}

type roundConfig struct {
	minBet              float64
	maxBet              float64
	attemptLimit        int
	payoutMultipliers   map[int]float64
	powerUpCosts        map[string]float64
	firstGuessDiscounts map[string]float64
}

// NewRoundConfigFromYAML Читает экономику раунда из yaml файла
func NewRoundConfigFromYAML(path string) (config.RoundConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read round config: %w", err)
	}

	var parsed roundYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse round config: %w", err)
	}

	r := parsed.Round
	if r.MinBet <= 0 || r.MaxBet < r.MinBet {
		return nil, errors.New("invalid bet range in round config")
	}
	if r.AttemptLimit <= 0 {
		return nil, errors.New("attempt limit must be positive")
	}
	if len(r.PayoutMultipliers) == 0 {
		return nil, errors.New("payout multipliers are empty")
	}
	for attempt, mult := range r.PayoutMultipliers {
		if attempt <= 0 || mult < 0 {
			return nil, fmt.Errorf("invalid payout multiplier %v for attempt %d", mult, attempt)
		}
	}
	for typ, cost := range r.PowerUps.Costs {
		if cost <= 0 {
			return nil, fmt.Errorf("invalid cost %v for power-up %s", cost, typ)
		}
	}
	for typ, discount := range r.PowerUps.FirstGuessDiscounts {
		if discount <= 0 {
			return nil, fmt.Errorf("invalid first guess discount %v for power-up %s", discount, typ)
		}
	}

	return &roundConfig{
		minBet:              r.MinBet,
		maxBet:              r.MaxBet,
		attemptLimit:        r.AttemptLimit,
		payoutMultipliers:   r.PayoutMultipliers,
		powerUpCosts:        r.PowerUps.Costs,
		firstGuessDiscounts: r.PowerUps.FirstGuessDiscounts,
	}, nil
}

func (cfg *roundConfig) MinBet() float64 {
	return cfg.minBet
}

func (cfg *roundConfig) MaxBet() float64 {
	return cfg.maxBet
}

func (cfg *roundConfig) AttemptLimit() int {
	return cfg.attemptLimit
}

func (cfg *roundConfig) PayoutMultipliers() map[int]float64 {
	return cfg.payoutMultipliers
}

func (cfg *roundConfig) PowerUpCosts() map[string]float64 {
	return cfg.powerUpCosts
}

func (cfg *roundConfig) FirstGuessDiscounts() map[string]float64 {
	return cfg.firstGuessDiscounts
}
