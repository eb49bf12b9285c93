package funcz

import "fmt"

// Either represents a value that is exactly one of two possibilities:
// a Left (conventionally the failure) or a Right (conventionally the
// success). Unlike (T, error) pairs, an Either cannot half-exist; the
// two cases are mutually exclusive and every consumer must handle both.
//
// Either is right-biased: Map, FlatMap, and GetOrElse operate on the
// Right value and pass Lefts through untouched, so a chain of operations
// short-circuits at the first failure.
//
// The zero value is Left of L's zero value.
//
// Example:
//
//	func parsePort(s string) funcz.Either[error, int] {
//	    return funcz.EitherOf(strconv.Atoi(s))
//	}
//
//	port := parsePort(os.Getenv("PORT")).GetOrElse(8080)
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding the failure value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right returns an Either holding the success value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// EitherOf converts Go's (value, error) idiom into an Either, making it
// the bridge between ordinary Go APIs and Either chains. A nil error
// yields Right(v); a non-nil error yields Left(err).
func EitherOf[R any](v R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](v)
}

// IsLeft reports whether the Either holds a failure value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the Either holds a success value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Get returns the Right value and whether it is present.
func (e Either[L, R]) Get() (R, bool) {
	return e.right, e.isRight
}

// LeftValue returns the Left value and whether it is present.
func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

// GetOrElse returns the Right value, or fallback for a Left.
func (e Either[L, R]) GetOrElse(fallback R) R {
	if !e.isRight {
		return fallback
	}
	return e.right
}

// OrElse returns e when it is a Right, otherwise alt.
func (e Either[L, R]) OrElse(alt Either[L, R]) Either[L, R] {
	if !e.isRight {
		return alt
	}
	return e
}

// Swap exchanges the sides, turning a Left into a Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapEither applies fn to the Right value. Lefts pass through untouched.
func MapEither[L, A, B any](e Either[L, A], fn Mapper[A, B]) Either[L, B] {
	if v, ok := e.Get(); ok {
		return Right[L](fn(v))
	}
	l, _ := e.LeftValue()
	return Left[L, B](l)
}

// MapLeft applies fn to the Left value. Rights pass through untouched.
func MapLeft[L, M, R any](e Either[L, R], fn Mapper[L, M]) Either[M, R] {
	if l, ok := e.LeftValue(); ok {
		return Left[M, R](fn(l))
	}
	v, _ := e.Get()
	return Right[M](v)
}

// FlatMapEither chains a function that itself returns an Either,
// short-circuiting at the first Left.
func FlatMapEither[L, A, B any](e Either[L, A], fn func(A) Either[L, B]) Either[L, B] {
	if v, ok := e.Get(); ok {
		return fn(v)
	}
	l, _ := e.LeftValue()
	return Left[L, B](l)
}

// FoldEither collapses the Either into a single value by choosing between
// the two handlers.
func FoldEither[L, R, B any](e Either[L, R], onLeft func(L) B, onRight func(R) B) B {
	if v, ok := e.Get(); ok {
		return onRight(v)
	}
	l, _ := e.LeftValue()
	return onLeft(l)
}

// ToOption discards the Left value, keeping Some of the Right or None.
func ToOption[L, R any](e Either[L, R]) Option[R] {
	return OptionOf(e.Get())
}

// UnwrapEither converts an error-lefted Either back into Go's (value, error)
// idiom, the inverse of EitherOf.
func UnwrapEither[R any](e Either[error, R]) (R, error) {
	if v, ok := e.Get(); ok {
		return v, nil
	}
	err, _ := e.LeftValue()
	return e.right, err
}
