// Package core defines the shared language of opcalc.
//
// This package contains:
//   - The Operation capability implemented by every arithmetic operation
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// Operation packages and the CLI depend on core, not the reverse.
package core
