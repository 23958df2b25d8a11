package repository

import (
	"context"
	"errors"
	"fmt"
	"ipregistrar/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrAssetNotFound = errors.New("ip asset not found")
)

type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

// MigrateAndSeed creates the ledger tables and, when a username is given,
// seeds the API operator account.
func (r *LedgerRepository) MigrateAndSeed(ctx context.Context, username, passwordHash string) error {
	err := r.db.MigrateTable(&Transaction{}, &IPAsset{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	if username == "" {
		return nil
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     username,
			PasswordHash: passwordHash,
		},
	}
	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *LedgerRepository) SaveTransactions(ctx context.Context, transactions []Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	err := r.db.SaveToTable(ctx, &transactions)
	if err != nil {
		return fmt.Errorf("save to table: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetTransactionsByHash(ctx context.Context, txHashes []string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllBy(ctx, "transaction_hash", txHashes, &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transaction by hash: %w", err)
	}

	return transactions, nil
}

// SaveAsset inserts the asset or replaces the stored row with the same ip id.
func (r *LedgerRepository) SaveAsset(ctx context.Context, asset IPAsset) error {
	assets := []IPAsset{asset}
	err := r.db.SaveToTable(ctx, &assets)
	if err != nil {
		return fmt.Errorf("save asset %s: %w", asset.IPID, err)
	}

	return nil
}

func (r *LedgerRepository) GetAsset(ctx context.Context, ipID string) (IPAsset, error) {
	var asset IPAsset

	err := r.db.GetOneBy(ctx, "ip_id", ipID, &asset)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return IPAsset{}, ErrAssetNotFound
		}
		return IPAsset{}, fmt.Errorf("get asset by ip id: %w", err)
	}

	return asset, nil
}

func (r *LedgerRepository) GetAssets(ctx context.Context) ([]IPAsset, error) {
	assets := []IPAsset{}
	err := r.db.GetAll(ctx, "created_at desc", &assets)
	if err != nil {
		return assets, fmt.Errorf("get assets: %w", err)
	}

	return assets, nil
}

func (r *LedgerRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
