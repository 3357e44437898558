package payment

import (
	"errors"
	"fmt"
)

// ErrPayment matches every domain failure of a payment computation.
var ErrPayment = errors.New("payment: cannot complete payment")

var (
	// ErrNoRoute means the recipient is not reachable from the payer at all.
	ErrNoRoute = fmt.Errorf("%w: no route to recipient", ErrPayment)

	// ErrInsufficientCredit means routes exist but cannot carry the amount.
	ErrInsufficientCredit = fmt.Errorf("%w: insufficient credit", ErrPayment)
)

var (
	// ErrInvalidAmount is returned for amounts that are not positive at amount.Scale precision.
	ErrInvalidAmount = errors.New("payment: amount must be positive")

	// ErrSameAccount is returned when payer and recipient are the same alias.
	ErrSameAccount = errors.New("payment: payer and recipient are the same account")

	// ErrGraphTooLarge is returned when traversal exceeds WithMaxLines.
	ErrGraphTooLarge = errors.New("payment: credit network exceeds line limit")
)
