package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/creditflow/amount"
	"github.com/katalvlaran/creditflow/creditline"
)

// costPrecision is the number of decimal places kept by the balance/limit
// ratio before it is scaled by amount.CostScaleFactor.
const costPrecision = 16

// Chunk is one priced slice of a credit line's usable capacity, already in
// the scaled integer domain.
type Chunk struct {
	Capacity amount.Capacity
	Cost     int64
}

// Chunks prices l:
//
//	unlimited:       [(Unbounded, 0)]
//	balance > 0:     [(balance, 0), (limit, 1)]
//	balance <= 0:    [(balance+limit, 1 + balance/limit)]   cost 0 when limit == 0
//
// Costs are multiplied by amount.CostScaleFactor. Chunks whose capacity is
// zero or negative are returned as computed; BuildGraph never turns them into
// edges.
func Chunks(l creditline.CreditLine) ([]Chunk, error) {
	if l.IsUnlimited() {
		return []Chunk{{Capacity: amount.Unbounded()}}, nil
	}

	limit, err := amount.ScaleAmount(l.Limit.Decimal)
	if err != nil {
		return nil, fmt.Errorf("payment: credit line %s: limit: %w", l.ID, err)
	}

	if l.Balance.IsPositive() {
		balance, err := amount.ScaleAmount(l.Balance)
		if err != nil {
			return nil, fmt.Errorf("payment: credit line %s: balance: %w", l.ID, err)
		}

		return []Chunk{
			{Capacity: amount.Bounded(balance)},
			{Capacity: amount.Bounded(limit), Cost: amount.CostScaleFactor},
		}, nil
	}

	// The sum is scaled once so sub-unit digits of both sides cancel first.
	spare, err := amount.ScaleAmount(l.Balance.Add(l.Limit.Decimal))
	if err != nil {
		return nil, fmt.Errorf("payment: credit line %s: spare credit: %w", l.ID, err)
	}
	var cost int64
	if !l.Limit.Decimal.IsZero() {
		ratio := l.Balance.DivRound(l.Limit.Decimal, costPrecision)
		cost = amount.ScaleCost(decimal.NewFromInt(1).Add(ratio))
	}

	return []Chunk{{Capacity: amount.Bounded(spare), Cost: cost}}, nil
}

// IgnoreBalancesChunks prices l by its limit only: [(limit, 0)], or
// [(Unbounded, 0)] for an unlimited line.
func IgnoreBalancesChunks(l creditline.CreditLine) ([]Chunk, error) {
	c, err := amount.ScaleLimit(l.Limit)
	if err != nil {
		return nil, fmt.Errorf("payment: credit line %s: limit: %w", l.ID, err)
	}

	return []Chunk{{Capacity: c}}, nil
}
