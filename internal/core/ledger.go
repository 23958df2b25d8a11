package core

import (
	"context"
	"errors"
	"fmt"
	"ipregistrar/internal/repository"
)

const fetchedLabel = "lookup"

// Transactions returns the records of the given hashes. Hashes missing from
// the ledger are looked up on the node and cached.
func (r *Registrar) Transactions(ctx context.Context, transactionsHashes []string) ([]TransactionRecord, error) {
	dbTxs, err := r.repo.GetTransactionsByHash(ctx, transactionsHashes)
	if err != nil {
		return nil, fmt.Errorf("get transactions from db: %w", err)
	}

	r.logs.Infow("transactions fetched from db", "count", len(dbTxs))

	records := make([]TransactionRecord, 0, len(transactionsHashes))
	recordsMap := make(map[string]struct{}, len(dbTxs))
	for _, tx := range dbTxs {
		records = append(records, toTransactionRecord(tx))
		recordsMap[tx.TransactionHash] = struct{}{}
	}

	missingTransactions := make([]string, 0, len(transactionsHashes))
	for _, transactionHash := range transactionsHashes {
		if _, ok := recordsMap[transactionHash]; !ok {
			missingTransactions = append(missingTransactions, transactionHash)
		}
	}

	if len(missingTransactions) == 0 || r.fetcher == nil {
		return records, nil
	}

	nodeTxs, err := r.fetcher.FetchTransactions(ctx, missingTransactions)
	if err != nil {
		r.logs.Errorw("getting transactions from node", "error", err)
	}

	fetched := make([]repository.Transaction, 0, len(nodeTxs))
	for _, tx := range nodeTxs {
		fetched = append(fetched, repository.Transaction{
			TransactionHash:   tx.TransactionHash,
			Label:             fetchedLabel,
			TransactionStatus: tx.TransactionStatus,
			BlockHash:         tx.BlockHash,
			BlockNumber:       tx.BlockNumber,
			GasUsed:           tx.GasUsed,
			Nonce:             tx.Nonce,
			From:              tx.From,
			To:                tx.To,
			LogsCount:         tx.LogsCount,
		})
	}

	r.logs.Infow("transactions fetched from node", "count", len(fetched))

	if err := r.repo.SaveTransactions(ctx, fetched); err != nil {
		r.logs.Errorw("failed to cache transactions", "error", err, "count", len(fetched))
	}

	for _, tx := range fetched {
		records = append(records, toTransactionRecord(tx))
	}
	return records, nil
}

func (r *Registrar) Assets(ctx context.Context) ([]AssetRecord, error) {
	assets, err := r.repo.GetAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("get assets: %w", err)
	}

	records := make([]AssetRecord, len(assets))
	for i, asset := range assets {
		records[i] = toAssetRecord(asset)
	}
	return records, nil
}

func (r *Registrar) Asset(ctx context.Context, ipID string) (AssetRecord, error) {
	asset, err := r.repo.GetAsset(ctx, ipID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return AssetRecord{}, ErrAssetNotFound
		}
		return AssetRecord{}, fmt.Errorf("get asset: %w", err)
	}
	return toAssetRecord(asset), nil
}

func toTransactionRecord(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		TransactionHash:   tx.TransactionHash,
		Label:             tx.Label,
		TransactionStatus: tx.TransactionStatus,
		BlockHash:         tx.BlockHash,
		BlockNumber:       tx.BlockNumber,
		GasUsed:           tx.GasUsed,
		From:              tx.From,
		To:                tx.To,
		LogsCount:         tx.LogsCount,
	}
}
