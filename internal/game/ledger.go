package game

import "math"

// Ledger Экономика одного раунда: ставка, суммарные расходы
// (ставка + пауэрапы) и суммарный выигрыш.
// Сбрасывается при старте каждого раунда, между раундами не живёт
type Ledger struct {
	minBet      float64
	maxBet      float64
	multipliers map[int]float64

	stake     float64
	totalCost float64
	totalGain float64
}

// NewLedger Создаёт гроссбух раунда.
// Таблица multipliers — множитель выплаты по номеру победной попытки (с 1)
func NewLedger(minBet, maxBet float64, multipliers map[int]float64) *Ledger {
	return &Ledger{
		minBet:      minBet,
		maxBet:      maxBet,
		multipliers: multipliers,
	}
}

// Reset Обнуляет ставку, расходы и выигрыш
func (l *Ledger) Reset() {
	l.stake = 0
	l.totalCost = 0
	l.totalGain = 0
}

// validAmount Сумма должна быть конечным положительным числом
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// PlaceBet Принимает ставку раунда и записывает её в расходы
func (l *Ledger) PlaceBet(amount float64) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	if amount < l.minBet || amount > l.maxBet {
		return ErrBetOutOfRange
	}

	l.stake = amount
	l.totalCost += amount
	return nil
}

// RecordPowerUpCost Записывает стоимость пауэрапа в расходы
func (l *Ledger) RecordPowerUpCost(cost float64) error {
	if !validAmount(cost) {
		return ErrInvalidAmount
	}

	l.totalCost += cost
	return nil
}

// PayoutMultiplierFor Множитель выплаты для попытки, на которой случилась
// победа. Для попыток вне таблицы возвращает 0
func (l *Ledger) PayoutMultiplierFor(attemptNumber int) float64 {
	return l.multipliers[attemptNumber]
}

// RecordWin Начисляет выигрыш = ставка * множитель.
// Возвращает начисленную сумму
func (l *Ledger) RecordWin(multiplier float64) (float64, error) {
	if multiplier < 0 || math.IsInf(multiplier, 0) || math.IsNaN(multiplier) {
		return 0, ErrInvalidAmount
	}

	payout := l.stake * multiplier
	l.totalGain += payout
	return payout, nil
}

// NetResult Чистый результат раунда: выигрыш минус все расходы
func (l *Ledger) NetResult() float64 {
	return l.totalGain - l.totalCost
}

// Stake Ставка текущего раунда
func (l *Ledger) Stake() float64 {
	return l.stake
}

// TotalCost Суммарные расходы раунда
func (l *Ledger) TotalCost() float64 {
	return l.totalCost
}

// TotalGain Суммарный выигрыш раунда
func (l *Ledger) TotalGain() float64 {
	return l.totalGain
}
