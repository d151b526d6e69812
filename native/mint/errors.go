package mint

import "errors"

var (
	ErrInvalidRecipient    = errors.New("mint: invalid recipient")
	ErrSupplyExhausted     = errors.New("mint: supply exhausted")
	ErrInsufficientPayment = errors.New("mint: insufficient payment")
)
