// Package multiply provides the multiplication operation.
package multiply

import "github.com/leapstack-labs/opcalc/pkg/core"

// Name is the identifier reported by Operation.Name.
const Name = "Multiply"

// Operation multiplies its operands.
type Operation struct{}

var _ core.Operation = Operation{}

// Name returns "Multiply".
func (Operation) Name() string { return Name }

// Execute returns a * b.
func (Operation) Execute(a, b float64) float64 {
	return a * b
}
