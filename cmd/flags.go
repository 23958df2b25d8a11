package cmd

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var errInvalidFlag = errors.New("invalid flag value")

func addressFlag(cmd *cobra.Command, name string, required bool) (common.Address, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		if required {
			return common.Address{}, fmt.Errorf("%w: --%s is required", errInvalidFlag, name)
		}
		return common.Address{}, nil
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: --%s %q is not an address", errInvalidFlag, name, value)
	}
	return common.HexToAddress(value), nil
}

func addressesFlag(cmd *cobra.Command, name string) ([]common.Address, error) {
	values, _ := cmd.Flags().GetStringSlice(name)
	addresses := make([]common.Address, 0, len(values))
	for _, value := range values {
		if !common.IsHexAddress(value) {
			return nil, fmt.Errorf("%w: --%s %q is not an address", errInvalidFlag, name, value)
		}
		addresses = append(addresses, common.HexToAddress(value))
	}
	return addresses, nil
}

// bigFlag parses a decimal integer flag; underscores are allowed as separators.
func bigFlag(cmd *cobra.Command, name string, required bool) (*big.Int, error) {
	value, _ := cmd.Flags().GetString(name)
	value = strings.ReplaceAll(value, "_", "")
	if value == "" {
		if required {
			return nil, fmt.Errorf("%w: --%s is required", errInvalidFlag, name)
		}
		return nil, nil
	}
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: --%s %q is not a non-negative integer", errInvalidFlag, name, value)
	}
	return n, nil
}

func bigsFlag(cmd *cobra.Command, name string) ([]*big.Int, error) {
	values, _ := cmd.Flags().GetStringSlice(name)
	ids := make([]*big.Int, 0, len(values))
	for _, value := range values {
		n, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
		if !ok || n.Sign() < 0 {
			return nil, fmt.Errorf("%w: --%s %q is not a non-negative integer", errInvalidFlag, name, value)
		}
		ids = append(ids, n)
	}
	return ids, nil
}
