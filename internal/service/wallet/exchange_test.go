package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"wordle_backend/internal/model"
	"wordle_backend/internal/repository/wallet_repo"
)

const gameKey = "GAME_KEY"

// fakeTxManager Прогоняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeWalletRepo struct {
	balances map[string]float64
}

func newFakeWalletRepo(balances map[string]float64) *fakeWalletRepo {
	return &fakeWalletRepo{balances: balances}
}

func (r *fakeWalletRepo) CreateWallet(_ context.Context, w *model.Wallet) error {
	r.balances[w.Key] = w.Balance
	return nil
}

func (r *fakeWalletRepo) GetWallet(_ context.Context, category, key string) (*model.Wallet, error) {
	balance, ok := r.balances[key]
	if !ok {
		return nil, wallet_repo.ErrWalletNotFound
	}
	return &model.Wallet{Key: key, Category: category, Balance: balance}, nil
}

func (r *fakeWalletRepo) GetBalance(_ context.Context, key string) (float64, error) {
	balance, ok := r.balances[key]
	if !ok {
		return 0, wallet_repo.ErrWalletNotFound
	}
	return balance, nil
}

func (r *fakeWalletRepo) UpdateBalance(_ context.Context, key string, balance float64) error {
	if _, ok := r.balances[key]; !ok {
		return wallet_repo.ErrWalletNotFound
	}
	r.balances[key] = balance
	return nil
}

func TestExchange(t *testing.T) {
	ctx := context.Background()

	t.Run("moves money between wallets", func(t *testing.T) {
		repo := newFakeWalletRepo(map[string]float64{"player": 100, gameKey: 1000})
		s := NewWalletService(repo, &fakeTxManager{})

		msg, err := s.Exchange(ctx, gameKey, model.Exchange{
			Source:      "player",
			Destination: gameKey,
			Amount:      30,
		})
		if err != nil {
			t.Fatal(err)
		}
		if msg == "" {
			t.Error("expected a confirmation message")
		}
		if repo.balances["player"] != 70 || repo.balances[gameKey] != 1030 {
			t.Errorf("balances = %v", repo.balances)
		}
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		repo := newFakeWalletRepo(map[string]float64{"player": 100, gameKey: 1000})
		s := NewWalletService(repo, &fakeTxManager{})

		for _, amount := range []int{0, -5} {
			_, err := s.Exchange(ctx, gameKey, model.Exchange{
				Source:      "player",
				Destination: gameKey,
				Amount:      amount,
			})
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("amount %d: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
	})

	t.Run("rejects exchange without the game wallet", func(t *testing.T) {
		repo := newFakeWalletRepo(map[string]float64{"a": 100, "b": 100})
		s := NewWalletService(repo, &fakeTxManager{})

		_, err := s.Exchange(ctx, gameKey, model.Exchange{Source: "a", Destination: "b", Amount: 10})
		if !errors.Is(err, ErrGameKeyNotInvolved) {
			t.Fatalf("expected ErrGameKeyNotInvolved, got %v", err)
		}
	})

	t.Run("rejects overdraft", func(t *testing.T) {
		repo := newFakeWalletRepo(map[string]float64{"player": 20, gameKey: 1000})
		s := NewWalletService(repo, &fakeTxManager{})

		_, err := s.Exchange(ctx, gameKey, model.Exchange{
			Source:      "player",
			Destination: gameKey,
			Amount:      30,
		})
		if !errors.Is(err, ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}
		if repo.balances["player"] != 20 {
			t.Errorf("source balance changed: %v", repo.balances["player"])
		}
	})

	t.Run("unknown destination", func(t *testing.T) {
		repo := newFakeWalletRepo(map[string]float64{gameKey: 1000})
		s := NewWalletService(repo, &fakeTxManager{})

		_, err := s.Exchange(ctx, gameKey, model.Exchange{
			Source:      gameKey,
			Destination: "ghost",
			Amount:      10,
		})
		if !errors.Is(err, wallet_repo.ErrWalletNotFound) {
			t.Fatalf("expected ErrWalletNotFound, got %v", err)
		}
	})
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeWalletRepo(map[string]float64{"player": 100})
	s := NewWalletService(repo, &fakeTxManager{})

	balance, err := s.Deposit(ctx, "player", 50)
	if err != nil {
		t.Fatal(err)
	}
	if balance != 150 {
		t.Errorf("balance = %v, expected 150", balance)
	}

	if _, err := s.Deposit(ctx, "player", -1); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestBalance(t *testing.T) {
	ctx := context.Background()
	repo := newFakeWalletRepo(map[string]float64{"player": 42})
	s := NewWalletService(repo, &fakeTxManager{})

	balance, err := s.Balance(ctx, "utilisateur", "player")
	if err != nil {
		t.Fatal(err)
	}
	if balance != 42 {
		t.Errorf("balance = %v", balance)
	}

	if _, err := s.Balance(ctx, "utilisateur", "ghost"); !errors.Is(err, wallet_repo.ErrWalletNotFound) {
		t.Errorf("expected ErrWalletNotFound, got %v", err)
	}
}
