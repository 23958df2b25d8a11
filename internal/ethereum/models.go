package ethereum

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type FeeModel string

const (
	// FeeModelLegacy prices a transaction with a single gas price.
	FeeModelLegacy FeeModel = "legacy"
	// FeeModelDynamic prices a transaction with a tip and a fee cap.
	FeeModelDynamic FeeModel = "dynamic"
)

// Approval is an (owner, operator) pair that must be approved on Token
// before an operation may run.
type Approval struct {
	Token    common.Address
	Owner    common.Address
	Operator common.Address
}

// Operation is a single write request against a contract.
type Operation struct {
	Label string
	To    common.Address
	Data  []byte
	Value *big.Int
	// GasLimit is used as is when set; otherwise the node estimate plus a margin.
	GasLimit uint64
	Approval *Approval
}

type Options struct {
	FeeModel            FeeModel
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
	RetryAttempts       uint
	RetryDelay          time.Duration
}

type TxResult struct {
	Transaction *Transaction
	Error       error
}

// Transaction is a mined transaction as seen by the node.
type Transaction struct {
	TransactionHash   string
	TransactionStatus uint64
	BlockHash         string
	BlockNumber       uint64
	GasUsed           uint64
	Nonce             uint64
	From              string
	To                *string
	LogsCount         int
	Input             string
	Value             string
}
