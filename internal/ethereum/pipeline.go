package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"ipregistrar/internal/contracts"

	retry "github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

const approvalGasLimit uint64 = 100_000

// Pipeline builds, signs, submits and confirms write operations for a single
// account. Submissions are strictly sequential.
type Pipeline struct {
	logs     *zap.SugaredLogger
	client   EthClient
	account  *Account
	registry *contracts.Registry
	chainID  *big.Int
	opts     Options

	mu        sync.Mutex
	lastNonce uint64
	hasNonce  bool
}

func NewPipeline(
	logger *zap.SugaredLogger,
	client EthClient,
	account *Account,
	registry *contracts.Registry,
	chainID *big.Int,
	opts Options,
) *Pipeline {
	if opts.FeeModel == "" {
		opts.FeeModel = FeeModelDynamic
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = 1
	}

	return &Pipeline{
		logs:     logger,
		client:   client,
		account:  account,
		registry: registry,
		chainID:  new(big.Int).Set(chainID),
		opts:     opts,
	}
}

func (p *Pipeline) Address() common.Address {
	return p.account.Address()
}

func (p *Pipeline) ChainID() *big.Int {
	return new(big.Int).Set(p.chainID)
}

// SubmitAndConfirm turns op into a confirmed receipt. When op names an
// approval that is not yet granted, an approval transaction is confirmed
// first. A receipt with failed status is returned together with
// ErrTransactionReverted.
func (p *Pipeline) SubmitAndConfirm(ctx context.Context, op Operation) (*types.Receipt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if op.Approval != nil {
		if err := p.ensureApproval(ctx, *op.Approval); err != nil {
			return nil, fmt.Errorf("ensure approval for %s: %w", op.Label, err)
		}
	}

	return p.submit(ctx, op)
}

// Call runs a read-only contract call against the latest block.
func (p *Pipeline) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	msg := ethereum.CallMsg{
		From: p.account.Address(),
		To:   &to,
		Data: data,
	}

	out, err := retry.DoWithData(func() ([]byte, error) {
		return p.client.CallContract(ctx, msg, nil)
	}, p.retryOptions(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("%w: call %s: %w", ErrRPC, to.Hex(), err)
	}
	return out, nil
}

// IsApproved reports the approval state of (owner, operator) on token.
func (p *Pipeline) IsApproved(ctx context.Context, approval Approval) (bool, error) {
	owner := approval.Owner
	if owner == (common.Address{}) {
		owner = p.account.Address()
	}

	data, err := p.registry.Pack(contracts.RoleERC721, "isApprovedForAll", owner, approval.Operator)
	if err != nil {
		return false, err
	}

	out, err := p.Call(ctx, approval.Token, data)
	if err != nil {
		return false, err
	}

	values, err := p.registry.Unpack(contracts.RoleERC721, "isApprovedForAll", out)
	if err != nil {
		return false, err
	}

	approved, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected isApprovedForAll result %T", values[0])
	}
	return approved, nil
}

func (p *Pipeline) ensureApproval(ctx context.Context, approval Approval) error {
	approved, err := p.IsApproved(ctx, approval)
	if err != nil {
		return fmt.Errorf("check approval: %w", err)
	}

	if approved {
		p.logs.Infow("approval already granted, skipping",
			"token", approval.Token.Hex(),
			"operator", approval.Operator.Hex())
		return nil
	}

	data, err := p.registry.Pack(contracts.RoleERC721, "setApprovalForAll", approval.Operator, true)
	if err != nil {
		return err
	}

	receipt, err := p.submit(ctx, Operation{
		Label:    "set_approval_for_all",
		To:       approval.Token,
		Data:     data,
		GasLimit: approvalGasLimit,
	})
	if err != nil {
		return fmt.Errorf("grant approval: %w", err)
	}

	p.logs.Infow("approval granted",
		"token", approval.Token.Hex(),
		"operator", approval.Operator.Hex(),
		"tx_hash", receipt.TxHash.Hex())
	return nil
}

func (p *Pipeline) submit(ctx context.Context, op Operation) (*types.Receipt, error) {
	nonce, err := p.nextNonce(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := p.buildTransaction(ctx, op, nonce)
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}

	signed, err := p.account.Sign(tx, p.chainID)
	if err != nil {
		return nil, err
	}

	if err := p.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("%w: send transaction: %w", ErrRPC, err)
	}
	p.lastNonce, p.hasNonce = nonce, true

	hash := signed.Hash()
	p.logs.Infow("transaction submitted",
		"label", op.Label,
		"tx_hash", hash.Hex(),
		"nonce", nonce,
		"gas", signed.Gas())

	receipt, err := p.waitForReceipt(ctx, hash)
	if err != nil {
		p.logs.Errorw("transaction not confirmed", "label", op.Label, "tx_hash", hash.Hex(), "error", err)
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		p.logs.Errorw("transaction reverted",
			"label", op.Label,
			"tx_hash", hash.Hex(),
			"block_number", receipt.BlockNumber,
			"gas_used", receipt.GasUsed)
		return receipt, fmt.Errorf("%w: %s %s", ErrTransactionReverted, op.Label, hash.Hex())
	}

	p.logs.Infow("transaction confirmed",
		"label", op.Label,
		"tx_hash", hash.Hex(),
		"block_number", receipt.BlockNumber,
		"gas_used", receipt.GasUsed,
		"logs_count", len(receipt.Logs))
	return receipt, nil
}

// nextNonce fetches the account nonce and never returns one already used by
// this pipeline, even if the node lags behind.
func (p *Pipeline) nextNonce(ctx context.Context) (uint64, error) {
	nonce, err := retry.DoWithData(func() (uint64, error) {
		return p.client.PendingNonceAt(ctx, p.account.Address())
	}, p.retryOptions(ctx)...)
	if err != nil {
		return 0, fmt.Errorf("%w: pending nonce: %w", ErrRPC, err)
	}

	if p.hasNonce && nonce <= p.lastNonce {
		p.logs.Infow("node returned a stale nonce, incrementing",
			"fetched", nonce,
			"last_used", p.lastNonce)
		nonce = p.lastNonce + 1
	}
	return nonce, nil
}

func (p *Pipeline) buildTransaction(ctx context.Context, op Operation, nonce uint64) (*types.Transaction, error) {
	value := op.Value
	if value == nil {
		value = new(big.Int)
	}

	gas := op.GasLimit
	if gas == 0 {
		estimate, err := retry.DoWithData(func() (uint64, error) {
			return p.client.EstimateGas(ctx, ethereum.CallMsg{
				From:  p.account.Address(),
				To:    &op.To,
				Value: value,
				Data:  op.Data,
			})
		}, p.retryOptions(ctx)...)
		if err != nil {
			return nil, fmt.Errorf("%w: estimate gas: %w", ErrRPC, err)
		}
		gas = WithGasMargin(estimate)
	}

	fee, err := p.suggestFees(ctx)
	if err != nil {
		return nil, err
	}

	to := op.To
	if p.opts.FeeModel == FeeModelLegacy {
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: fee.gasPrice,
			Gas:      gas,
			To:       &to,
			Value:    value,
			Data:     op.Data,
		}), nil
	}

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   p.chainID,
		Nonce:     nonce,
		GasTipCap: fee.tipCap,
		GasFeeCap: fee.feeCap,
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      op.Data,
	}), nil
}

// waitForReceipt polls until the receipt is available or the confirmation
// deadline passes.
func (p *Pipeline) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if p.opts.ConfirmationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.ConfirmationTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(p.opts.PollInterval)
	defer ticker.Stop()

	var failures uint
	for {
		receipt, err := p.client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return receipt, nil
		case errors.Is(err, ethereum.NotFound):
			failures = 0
		case ctx.Err() == nil:
			failures++
			if failures >= p.opts.RetryAttempts {
				return nil, fmt.Errorf("%w: receipt %s: %w", ErrRPC, hash.Hex(), err)
			}
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %s", ErrConfirmationTimeout, hash.Hex())
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Pipeline) retryOptions(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(p.opts.RetryAttempts),
		retry.Delay(p.opts.RetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
	}
}

// isRetryable rejects errors the node answered with data, such as a revert
// reason from eth_call or eth_estimateGas.
func isRetryable(err error) bool {
	var dataErr rpc.DataError
	return !errors.As(err, &dataErr)
}
