package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TransactionFetcher looks up mined transactions that the registrar has no
// local record of.
type TransactionFetcher struct {
	client  EthClient
	chainID *big.Int
}

func NewTransactionFetcher(ethClient EthClient, chainID *big.Int) *TransactionFetcher {
	return &TransactionFetcher{
		client:  ethClient,
		chainID: chainID,
	}
}

func (s *TransactionFetcher) FetchTransactions(ctx context.Context, hashes []string) ([]*Transaction, error) {
	resultsChan := make(chan *TxResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			res := s.getTransactionByHash(ctx, common.HexToHash(hashStr))
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transaction %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Transaction
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Transaction)
	}

	return results, aggrErr
}

func (s *TransactionFetcher) getTransactionByHash(ctx context.Context, hash common.Hash) *TxResult {
	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	from, err := types.Sender(types.LatestSignerForChainID(s.chainID), tx)
	if err != nil {
		return &TxResult{nil, err}
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	return &TxResult{
		Transaction: &Transaction{
			TransactionHash:   tx.Hash().Hex(),
			TransactionStatus: receipt.Status,
			BlockHash:         receipt.BlockHash.Hex(),
			BlockNumber:       receipt.BlockNumber.Uint64(),
			GasUsed:           receipt.GasUsed,
			Nonce:             tx.Nonce(),
			From:              from.Hex(),
			To:                to,
			LogsCount:         len(receipt.Logs),
			Input:             fmt.Sprintf("0x%x", tx.Data()),
			Value:             tx.Value().String(),
		},
	}
}
