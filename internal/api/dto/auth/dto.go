package auth

type RegisterRequest struct {
	Name     string `json:"name"`     // Имя игрока
	Login    string `json:"login"`    // Логин
	Password string `json:"password"` // Пароль
}

type LoginRequest struct {
	Login    string `json:"login"`    // Логин
	Password string `json:"password"` // Пароль
}

type AuthResponse struct {
	AccessToken string `json:"access_token"` // JWT для запросов
	WalletKey   string `json:"wallet_key"`   // Ключ кошелька игрока
}
