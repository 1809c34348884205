package core

// Operation is a named, pure binary arithmetic function.
//
// Execute never fails: overflow, underflow and NaN follow IEEE-754 and are
// returned as ordinary results. Implementations hold no state and are safe
// for concurrent use.
type Operation interface {
	// Name returns a constant, non-empty identifier such as "Add".
	Name() string

	// Execute applies the operation to a and b.
	Execute(a, b float64) float64
}
