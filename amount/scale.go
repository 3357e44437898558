// File: scale.go
// Role: decimal <-> int64 conversion for amounts and cost weights.
// Determinism:
//   - Pure functions; no rounding mode other than truncation toward zero.

package amount

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// Scale is the number of decimal places carried by every amount.
	Scale int32 = 2

	// CostScaleFactor turns fractional cost weights into integers.
	CostScaleFactor int64 = 1_000_000
)

// ErrOverflow indicates a scaled amount does not fit into int64.
var ErrOverflow = errors.New("amount: scaled value overflows int64")

var costFactor = decimal.NewFromInt(CostScaleFactor)

// ScaleAmount converts d to the integer domain: d * 10^Scale truncated toward zero.
// Digits beyond Scale places are silently dropped.
//
// Complexity: O(1) in the number of digits of d.
func ScaleAmount(d decimal.Decimal) (int64, error) {
	n := d.Shift(Scale).Truncate(0).BigInt()
	if !n.IsInt64() {
		return 0, ErrOverflow
	}

	return n.Int64(), nil
}

// ScaleLimit converts a credit limit to a Capacity. An invalid (null) limit
// means "no limit" and maps to Unbounded without any arithmetic.
func ScaleLimit(limit decimal.NullDecimal) (Capacity, error) {
	if !limit.Valid {
		return Unbounded(), nil
	}
	n, err := ScaleAmount(limit.Decimal)
	if err != nil {
		return Capacity{}, err
	}

	return Bounded(n), nil
}

// Unscale converts a scaled integer back to a decimal, exactly.
func Unscale(n int64) decimal.Decimal {
	return decimal.New(n, -Scale)
}

// ScaleCost converts a fractional cost weight to an integer weight:
// cost * CostScaleFactor truncated toward zero.
func ScaleCost(cost decimal.Decimal) int64 {
	return cost.Mul(costFactor).Truncate(0).IntPart()
}
