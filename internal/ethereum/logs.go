package ethereum

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// FindLog returns the first log emitted by address whose first topic is
// eventID. A zero eventID matches any event from address.
func FindLog(receipt *types.Receipt, address common.Address, eventID common.Hash) (*types.Log, error) {
	logs := FindLogs(receipt, address, eventID)
	if len(logs) == 0 {
		return nil, fmt.Errorf("%w: event %s from %s", ErrLogNotFound, eventID.Hex(), address.Hex())
	}
	return logs[0], nil
}

// FindLogs returns every matching log in emission order.
func FindLogs(receipt *types.Receipt, address common.Address, eventID common.Hash) []*types.Log {
	if receipt == nil {
		return nil
	}

	var found []*types.Log
	for _, log := range receipt.Logs {
		if log == nil || log.Address != address {
			continue
		}
		if eventID != (common.Hash{}) && (len(log.Topics) == 0 || log.Topics[0] != eventID) {
			continue
		}
		found = append(found, log)
	}
	return found
}

// TopicUint decodes topic index of the matching log as a big-endian integer.
func TopicUint(receipt *types.Receipt, address common.Address, eventID common.Hash, index int) (*big.Int, error) {
	topic, err := findTopic(receipt, address, eventID, index)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(topic.Bytes()), nil
}

// TopicAddress decodes topic index of the matching log as an address.
func TopicAddress(receipt *types.Receipt, address common.Address, eventID common.Hash, index int) (common.Address, error) {
	topic, err := findTopic(receipt, address, eventID, index)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(topic.Bytes()), nil
}

func findTopic(receipt *types.Receipt, address common.Address, eventID common.Hash, index int) (common.Hash, error) {
	log, err := FindLog(receipt, address, eventID)
	if err != nil {
		return common.Hash{}, err
	}

	if index < 0 || index >= len(log.Topics) {
		return common.Hash{}, fmt.Errorf("%w: topic %d of %d in log from %s", ErrLogNotFound, index, len(log.Topics), address.Hex())
	}
	return log.Topics[index], nil
}
