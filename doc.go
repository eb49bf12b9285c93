// Package funcz provides a lightweight, type-safe functional-programming toolkit for Go.
//
// # Overview
//
// funcz brings the core vocabulary of typed functional programming to Go
// generics: optional values, explicit success/failure values, lazy
// context-aware computations, equality and combining type classes, and
// function composition helpers. It replaces scattered nil checks, sentinel
// errors, and ad-hoc callback plumbing with small, composable values that
// are trivial to test in isolation.
//
// # Installation
//
//	go get github.com/zoobzio/funcz
//
// Requires Go 1.21+ for generic type constraints.
//
// # Core Types
//
// Option - a value that may be absent, instead of a nil pointer:
//
//	port := funcz.Some(8080)
//	fallback := port.GetOrElse(3000)
//
// Either - an explicit success-or-failure value, instead of a thrown panic:
//
//	parsed := funcz.EitherOf(strconv.Atoi("42"))
//	n := parsed.GetOrElse(0)
//
// Task - a lazy, context-aware computation that produces a value or an error:
//
//	fetch := funcz.TaskFrom(func() (Profile, error) {
//	    return client.Load(userID)
//	})
//	result, err := fetch.Retried(3, time.Second).Run(ctx)
//
// # Type Classes
//
// Eq expresses equality as a first-class value that can be derived for new
// types from existing instances:
//
//	eqPoint := funcz.EqFunc(func(a, b Point) bool {
//	    return a.X == b.X && a.Y == b.Y
//	})
//	eqCustomer := funcz.ContramapEq(eqPoint, func(c Customer) Point {
//	    return c.Location
//	})
//
// Semigroup and Monoid express "can be combined" as a value:
//
//	total := funcz.ConcatAll(funcz.SumSemigroup[int](), 0, 1, 2, 3)
//	newest := funcz.MaxSemigroup[int64]().Concat(a.UpdatedAt, b.UpdatedAt)
//
// # Composition
//
// Pipe threads a value through same-typed functions; Flow composes
// differently-typed functions left to right:
//
//	clean := funcz.Pipe(raw, strings.TrimSpace, strings.ToLower)
//	parse := funcz.Flow2(strings.TrimSpace, strconv.Atoi)
//
// # Validation
//
// Validator composes named rules into a fail-fast check with full
// observability (metrics, traces, and hook events). The first violated rule
// wins and is reported through a rich *Error[T] carrying the rule path,
// input snapshot, and timing:
//
//	policy := funcz.PasswordPolicy{MinLength: 8, RequireCapital: true}
//	validator := policy.Validator()
//
//	_, err := validator.Process(ctx, funcz.PlainPassword("secret"))
//	var minErr *funcz.MinLengthError
//	if errors.As(err, &minErr) {
//	    fmt.Println(minErr.MinLength) // 8
//	}
//
// # Error Handling
//
// The algebra layer reports failures as values (Either, Option). The
// connector layer (Validator, Hasher) wraps failures in Error[T]:
//
//	type Error[T any] struct {
//	    Path      []Name        // Full path: ["password-validator", "min_length"]
//	    InputData T             // The input that caused the failure
//	    Err       error         // The underlying error
//	    Timestamp time.Time     // When the error occurred
//	    Duration  time.Duration // How long before failure
//	    Timeout   bool          // Was it a timeout?
//	    Canceled  bool          // Was it canceled?
//	}
//
// Both layers interoperate with errors.Is and errors.As.
//
// # Testing
//
// Timing combinators accept an explicit clock, so tests drive time
// deterministically with a fake clock instead of sleeping. The
// testing subpackage ships mock rules, hash stubs, and assertion helpers.
//
// # Best Practices
//
//  1. Keep rules small and focused on a single check
//  2. Use descriptive names for rules and connectors to aid debugging
//  3. Prefer Either over (T, error) at composition boundaries
//  4. Let Task own retries and deadlines rather than hand-rolled loops
//  5. Derive Eq and Semigroup instances with Contramap/And instead of
//     writing struct comparisons by hand
//  6. Use the ...On clock variants with a fake clock in tests
package funcz
