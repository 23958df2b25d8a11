package payload

import (
	"math/big"
	"regexp"

	"github.com/jellydator/validation"
)

var (
	hashRegex    = regexp.MustCompile(`^0x[a-f0-9]{64}$`)
	addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
)

// isPositiveInteger accepts decimal strings greater than zero.
var isPositiveInteger = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() <= 0 {
		return validation.NewError("validation_positive_integer", "must be a positive integer")
	}
	return nil
})
