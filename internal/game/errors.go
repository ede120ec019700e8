package game

import "errors"

var (
	// Ошибки валидации
	ErrInvalidWord   = errors.New("word must be exactly 5 letters")
	ErrInvalidConfig = errors.New("attempt limit must be a positive integer")
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrBetOutOfRange = errors.New("bet is out of allowed range")

	// Ошибки состояния раунда
	ErrNotStarted    = errors.New("round is not started")
	ErrRoundFinished = errors.New("round is already finished")
)
