package round

type StartRequest struct {
	PlayerKey string  `json:"player_key"` // Ключ кошелька игрока
	Bet       float64 `json:"bet"`        // Размер ставки
}

type StartResponse struct {
	Accepted    bool   `json:"accepted"`         // Раунд начался
	MaxAttempts int    `json:"max_attempts"`     // Лимит попыток
	Reason      string `json:"reason,omitempty"` // Причина отказа
}

type GuessRequest struct {
	PlayerKey string `json:"player_key"` // Ключ кошелька игрока
	Word      string `json:"word"`       // Догадка из пяти букв
}

type GuessResponse struct {
	Letters      []LetterResult `json:"letters"`       // Оценка по буквам
	Status       string         `json:"status"`        // playing | won | lost
	AttemptsUsed int            `json:"attempts_used"` // Использовано попыток
	AttemptsLeft int            `json:"attempts_left"` // Осталось попыток
	Payout       float64        `json:"payout"`        // Начисление при победе
}

type LetterResult struct {
	Letter string `json:"letter"` // Буква догадки
	Status string `json:"status"` // correct | present | absent
}

type PowerUpRequest struct {
	PlayerKey string `json:"player_key"`      // Ключ кошелька игрока
	Type      string `json:"type"`            // scanner | lucky_shot | extra_life | sniper
	Input     string `json:"input,omitempty"` // Параметр эффекта (гласная для сканера)
}

type PowerUpResponse struct {
	Success bool   `json:"success"` // Покупка прошла
	Type    string `json:"type"`    // Тип пауэрапа
	Info    string `json:"info"`    // Текст подсказки
}

type FinalizeRequest struct {
	PlayerKey string `json:"player_key"` // Ключ кошелька игрока
}

type FinalizeResponse struct {
	Message string  `json:"message"` // Итог обмена
	Net     float64 `json:"net"`     // Чистый результат раунда
	Word    string  `json:"word"`    // Загаданное слово
}

type BalanceResponse struct {
	Balance float64 `json:"balance"` // Баланс кошелька игрока
}
