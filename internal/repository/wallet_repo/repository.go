package wallet_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"

	"wordle_backend/internal/model"
	"wordle_backend/internal/repository"
)

const (
	table       = "wallets"
	colKey      = "wallet_key"
	colCategory = "category"
	colBalance  = "balance"
)

var ErrWalletNotFound = errors.New("wallet not found")

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewWalletRepository Репозиторий кошельков.
// Запросы идут через trm getter, чтобы участвовать в транзакции обмена
func NewWalletRepository(dbc *pgxpool.Pool) repository.WalletRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateWallet Создаёт кошелёк с начальным балансом
func (r *repo) CreateWallet(ctx context.Context, wallet *model.Wallet) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colKey, colCategory, colBalance).
		Values(wallet.Key, wallet.Category, wallet.Balance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetWallet Возвращает кошелёк по категории и ключу
func (r *repo) GetWallet(ctx context.Context, category, key string) (*model.Wallet, error) {
	// Формируем запрос
	query := sq.Select(colKey, colCategory, colBalance).
		From(table).
		Where(sq.Eq{colKey: key, colCategory: category}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var wallet model.Wallet
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&wallet.Key, &wallet.Category, &wallet.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", ErrWalletNotFound, category, key)
		}
		return nil, err
	}

	return &wallet, nil
}

// GetBalance Баланс кошелька по ключу, без учёта категории
func (r *repo) GetBalance(ctx context.Context, key string) (float64, error) {
	// Формируем запрос
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance float64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", ErrWalletNotFound, key)
		}
		return 0, err
	}

	return balance, nil
}

// UpdateBalance Записывает новый баланс кошелька
func (r *repo) UpdateBalance(ctx context.Context, key string, balance float64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, balance).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrWalletNotFound, key)
	}

	return nil
}
