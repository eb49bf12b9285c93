package funcz

// Eq is the equality type class: a named capability, carried as a value,
// that says how two values of T are compared. Instances for new types are
// derived from existing ones rather than written from scratch: And
// conjoins field checks, ContramapEq pulls an instance back through a
// projection, and SliceEq and OptionEq lift instances into containers.
//
// Instances are expected to be reflexive and symmetric.
//
// Example:
//
//	eqPoint := funcz.EqFunc(func(a, b Point) bool {
//	    return a.X == b.X && a.Y == b.Y
//	})
//	eqByLocation := funcz.ContramapEq(eqPoint, func(c Customer) Point {
//	    return c.Location
//	})
type Eq[T any] struct {
	eq func(x, y T) bool
}

// EqFunc wraps a comparison function as an Eq instance.
func EqFunc[T any](fn func(x, y T) bool) Eq[T] {
	return Eq[T]{eq: fn}
}

// StrictEq returns the Eq instance backed by Go's == operator.
func StrictEq[T comparable]() Eq[T] {
	return Eq[T]{eq: func(x, y T) bool { return x == y }}
}

// Equals reports whether x and y are equal under this instance.
func (e Eq[T]) Equals(x, y T) bool {
	return e.eq(x, y)
}

// And conjoins two instances: values are equal only when both agree.
// This is how struct instances are assembled field by field.
func (e Eq[T]) And(other Eq[T]) Eq[T] {
	return Eq[T]{eq: func(x, y T) bool {
		return e.eq(x, y) && other.eq(x, y)
	}}
}

// Negate inverts the instance, reporting inequality.
func (e Eq[T]) Negate() Eq[T] {
	return Eq[T]{eq: func(x, y T) bool {
		return !e.eq(x, y)
	}}
}

// ContramapEq derives Eq[B] from Eq[A] by comparing projections: two B
// values are equal when f maps them to equal A values.
func ContramapEq[A, B any](e Eq[A], f Mapper[B, A]) Eq[B] {
	return Eq[B]{eq: func(x, y B) bool {
		return e.eq(f(x), f(y))
	}}
}

// SliceEq lifts an element instance to slices: equal length and pairwise
// equal elements. Two nil or empty slices are equal.
func SliceEq[T any](e Eq[T]) Eq[[]T] {
	return Eq[[]T]{eq: func(xs, ys []T) bool {
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !e.eq(xs[i], ys[i]) {
				return false
			}
		}
		return true
	}}
}

// OptionEq lifts an element instance to Options: two Nones are equal, two
// Somes compare their contents, and mixed cases are unequal.
func OptionEq[T any](e Eq[T]) Eq[Option[T]] {
	return Eq[Option[T]]{eq: func(x, y Option[T]) bool {
		xv, xok := x.Get()
		yv, yok := y.Get()
		if xok != yok {
			return false
		}
		if !xok {
			return true
		}
		return e.eq(xv, yv)
	}}
}

// ElemBy reports whether needle occurs in haystack under the instance.
func ElemBy[T any](e Eq[T], needle T, haystack []T) bool {
	for _, v := range haystack {
		if e.eq(needle, v) {
			return true
		}
	}
	return false
}
