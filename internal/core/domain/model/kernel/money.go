package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

const currencyCodeLength = 3

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// the NewMoney factory function.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a currency-tagged monetary amount, stored in minor units
// (pence, cents) to avoid floating-point arithmetic. It represents the
// agreed value of a transport job.
//
// Money is an immutable value object. The zero value is invalid; construct
// through NewMoney.
//
// Example:
//
//	agreed, err := kernel.NewMoney(125000, "GBP") // £1,250.00
//	if err != nil {
//	    // handle validation error
//	}
type Money struct {
	amount   int64
	currency string

	isConstructed bool
}

// NewMoney creates a Money value from an amount in minor units and an
// ISO 4217 currency code. The amount must be non-negative and the currency
// must be a three-letter uppercase code.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	if len(currency) != currencyCodeLength {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}

	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not an uppercase currency code", currency))
		}
	}

	return Money{
		amount:        amount,
		currency:      currency,
		isConstructed: true,
	}, nil
}

// Amount returns the value in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual reports whether two Money values carry the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String formats the amount with its currency code, e.g. "125000 GBP".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value, nil otherwise.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
