package funcz

import "context"

// Chainable defines the interface for any component that can process
// values of type T. Both Validator and Hasher implement it, so connectors
// can be swapped or stacked wherever a processing stage is expected.
//
// Key design principles:
//   - Context support for timeout and cancellation
//   - Type safety through generics (no interface{})
//   - Error propagation for fail-fast behavior
//   - Immutable by convention (return modified copies)
//   - Named components for debugging and monitoring
type Chainable[T any] interface {
	Process(context.Context, T) (T, error)
	Name() Name
}

// Name is a type alias for rule and connector names.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const (
//	    MinLengthRuleName Name = "min_length"
//	    CapitalRuleName   Name = "capital_letter"
//	)
type Name = string

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Mapper transforms a value of one type into a value of another.
type Mapper[A, B any] func(A) B
