package wallet

// Имена полей повторяют исторический кошельковый API,
// игровой сервер ходит именно за этой формой

type PortefeuilleResponse struct {
	Portefeuille float64 `json:"portefeuille"` // Баланс кошелька
}

type ExchangeRequest struct {
	Source      string `json:"source"`      // Ключ кошелька-источника
	Destination string `json:"destination"` // Ключ кошелька-получателя
	Montant     int    `json:"montant"`     // Сумма перевода (целая, >0)
}

type ExchangeResponse struct {
	Message string `json:"message"` // Подтверждение перевода
}

type DepositRequest struct {
	WalletKey string  `json:"wallet_key"` // Ключ кошелька
	Amount    float64 `json:"amount"`     // Сумма пополнения
}

type DepositResponse struct {
	Balance float64 `json:"balance"` // Баланс после пополнения
}
