package ethereum

import (
	"context"
	"fmt"
	"math/big"

	retry "github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	baseFeeMultiplier = 2
	gasMarginPercent  = 120
)

// FeeCap is the max fee per gas for a tip and base fee. The base fee is
// doubled so the transaction stays includable if it keeps rising.
func FeeCap(tip, baseFee *big.Int) *big.Int {
	headroom := new(big.Int).Mul(baseFee, big.NewInt(baseFeeMultiplier))
	return headroom.Add(headroom, tip)
}

// WithGasMargin inflates a gas estimate by 20%.
func WithGasMargin(estimate uint64) uint64 {
	return estimate * gasMarginPercent / 100
}

type fees struct {
	gasPrice *big.Int
	tipCap   *big.Int
	feeCap   *big.Int
}

func (p *Pipeline) suggestFees(ctx context.Context) (fees, error) {
	if p.opts.FeeModel == FeeModelLegacy {
		gasPrice, err := retry.DoWithData(func() (*big.Int, error) {
			return p.client.SuggestGasPrice(ctx)
		}, p.retryOptions(ctx)...)
		if err != nil {
			return fees{}, fmt.Errorf("%w: suggest gas price: %w", ErrRPC, err)
		}
		return fees{gasPrice: gasPrice}, nil
	}

	tip, err := retry.DoWithData(func() (*big.Int, error) {
		return p.client.SuggestGasTipCap(ctx)
	}, p.retryOptions(ctx)...)
	if err != nil {
		return fees{}, fmt.Errorf("%w: suggest gas tip cap: %w", ErrRPC, err)
	}

	header, err := retry.DoWithData(func() (*types.Header, error) {
		return p.client.HeaderByNumber(ctx, nil)
	}, p.retryOptions(ctx)...)
	if err != nil {
		return fees{}, fmt.Errorf("%w: latest header: %w", ErrRPC, err)
	}

	if header.BaseFee == nil {
		return fees{}, ErrBaseFeeUnavailable
	}

	return fees{
		tipCap: tip,
		feeCap: FeeCap(tip, header.BaseFee),
	}, nil
}
