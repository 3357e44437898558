package amount

import "strconv"

// Capacity is either a finite integer amount in the scaled domain or
// Unbounded. The zero value is Bounded(0).
type Capacity struct {
	n         int64
	unbounded bool
}

// Bounded returns a finite capacity of n scaled units.
func Bounded(n int64) Capacity { return Capacity{n: n} }

// Unbounded returns the capacity with no upper bound.
func Unbounded() Capacity { return Capacity{unbounded: true} }

// IsUnbounded reports whether c has no upper bound.
func (c Capacity) IsUnbounded() bool { return c.unbounded }

// Value returns the finite value of c; ok is false for Unbounded.
func (c Capacity) Value() (n int64, ok bool) {
	if c.unbounded {
		return 0, false
	}

	return c.n, true
}

// Or returns the finite value of c, or fallback when c is unbounded.
func (c Capacity) Or(fallback int64) int64 {
	if c.unbounded {
		return fallback
	}

	return c.n
}

// Positive reports whether c can carry any flow at all.
func (c Capacity) Positive() bool { return c.unbounded || c.n > 0 }

// Negative reports whether c is a finite value below zero.
func (c Capacity) Negative() bool { return !c.unbounded && c.n < 0 }

func (c Capacity) String() string {
	if c.unbounded {
		return "unbounded"
	}

	return strconv.FormatInt(c.n, 10)
}
