package creditline

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCreditLine indicates a credit line with missing identity or a negative limit.
	ErrInvalidCreditLine = errors.New("creditline: invalid credit line")

	// ErrAccountNotFound is returned by strict stores for an alias they have never seen.
	ErrAccountNotFound = errors.New("creditline: account not found")
)

// CreditLine is a trust relationship owned by Owner towards Partner.
type CreditLine struct {
	// ID identifies the relationship; two lines between the same pair differ by ID.
	ID string

	// Owner is the alias of the account issuing IOUs on this line.
	Owner string

	// Partner is the alias of the account accepting them.
	Partner string

	// Limit caps how much Owner may owe Partner; Valid=false means unlimited.
	Limit decimal.NullDecimal

	// Balance is the signed amount Owner has issued to Partner so far.
	Balance decimal.Decimal
}

// IsUnlimited reports whether the line has no limit.
func (l CreditLine) IsUnlimited() bool { return !l.Limit.Valid }

// Validate checks the identity fields and that a finite limit is not negative.
func (l CreditLine) Validate() error {
	switch {
	case l.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidCreditLine)
	case l.Owner == "":
		return fmt.Errorf("%w: %s: empty owner", ErrInvalidCreditLine, l.ID)
	case l.Partner == "":
		return fmt.Errorf("%w: %s: empty partner", ErrInvalidCreditLine, l.ID)
	case l.Limit.Valid && l.Limit.Decimal.IsNegative():
		return fmt.Errorf("%w: %s: negative limit %s", ErrInvalidCreditLine, l.ID, l.Limit.Decimal)
	}

	return nil
}

func (l CreditLine) String() string {
	limit := "unlimited"
	if l.Limit.Valid {
		limit = l.Limit.Decimal.String()
	}

	return fmt.Sprintf("%s %s->%s limit=%s balance=%s", l.ID, l.Owner, l.Partner, limit, l.Balance)
}
