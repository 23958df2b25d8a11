package ethereum

import "errors"

var (
	// ErrRPC wraps failures talking to the node once retries are exhausted.
	ErrRPC = errors.New("rpc call failed")
	// ErrTransactionReverted is returned together with the receipt of a
	// transaction that was included with status 0.
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrConfirmationTimeout = errors.New("confirmation timed out")
	ErrSigning             = errors.New("signing transaction failed")
	ErrInvalidPrivateKey   = errors.New("invalid private key")
	ErrBaseFeeUnavailable  = errors.New("latest block has no base fee")
	ErrLogNotFound         = errors.New("log not found in receipt")
)
