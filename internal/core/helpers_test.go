package core_test

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

func transferLog(token, to common.Address, transferID common.Hash, tokenID int64) *types.Log {
	return &types.Log{
		Address: token,
		Topics: []common.Hash{
			transferID,
			{},
			common.BytesToHash(to.Bytes()),
			common.BigToHash(big.NewInt(tokenID)),
		},
	}
}

func newReceipt(hash string, logs ...*types.Log) *types.Receipt {
	return &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      common.HexToHash(hash),
		BlockHash:   common.HexToHash("0xb10c"),
		BlockNumber: big.NewInt(1000),
		GasUsed:     21000,
		Logs:        logs,
	}
}
