package payload

import (
	"github.com/jellydator/validation"
)

const maxTransactionsPerRequest = 100

type TransactionsRequest struct {
	Transactions []string
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transactions,
			validation.Required,
			validation.Length(1, maxTransactionsPerRequest),
			validation.Each(validation.Match(hashRegex)),
		),
	)
}
