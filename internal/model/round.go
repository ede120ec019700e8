package model

import "wordle_backend/internal/game"

// WordProvider Источник загаданных слов
type WordProvider func() string

// RoundStartResult Итог попытки начать раунд.
// Отказ кошелька, нехватка средств и невалидная ставка — это не ошибки,
// а отклонённый старт с причиной: раунд просто не начался
type RoundStartResult struct {
	Accepted    bool
	MaxAttempts int
	Reason      string
}

// GuessResult Итог одной догадки
type GuessResult struct {
	Letters      []game.LetterResult
	Status       game.RoundStatus
	AttemptsUsed int
	AttemptsLeft int
	Payout       float64
}

// PowerUpResult Итог покупки пауэрапа.
// Info — человекочитаемое сообщение эффекта
type PowerUpResult struct {
	Success bool
	Type    game.PowerUpType
	Info    string
}

// FinalizeResult Итог расчёта раунда с кошельком
type FinalizeResult struct {
	Message string
	Net     float64
	Word    string
}

// RoundSession Состояние одного раунда между стартом и расчётом.
// FirstWinOverride — сниженный множитель первой попытки после покупки
// информационного пауэрапа до первой догадки (0 — не задан)
type RoundSession struct {
	PlayerKey        string
	Engine           *game.Engine
	Ledger           *game.Ledger
	Settled          bool
	UsedPowerUps     map[game.PowerUpType]int
	FirstWinOverride float64
}
