package model

// Категории кошельков внешнего API
const (
	WalletCategoryUser = "utilisateur"
	WalletCategoryGame = "jeu"
)

// Wallet Кошелёк в walletd: ключ, категория и баланс
type Wallet struct {
	Key      string
	Category string
	Balance  float64
}

// Exchange Перевод денег между двумя кошельками.
// Amount — целая сумма, округление вниз выполняет вызывающая сторона
type Exchange struct {
	Source      string
	Destination string
	Amount      int
}
