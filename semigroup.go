package funcz

import "cmp"

// Number constrains the numeric types usable with SumSemigroup and
// ProductSemigroup.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Semigroup is the "can be combined" type class: an associative binary
// operation over T, carried as a value. Instances compose the same way Eq
// instances do, so a merge policy for a struct is assembled from the merge
// policies of its fields.
//
// The operation must be associative:
//
//	s.Concat(a, s.Concat(b, c)) == s.Concat(s.Concat(a, b), c)
//
// Example - keep the most recent of two customer records field by field:
//
//	merged := Customer{
//	    Name:      funcz.LastSemigroup[string]().Concat(a.Name, b.Name),
//	    UpdatedAt: funcz.MaxSemigroup[int64]().Concat(a.UpdatedAt, b.UpdatedAt),
//	}
type Semigroup[T any] struct {
	concat func(x, y T) T
}

// SemigroupFunc wraps an associative combining function as a Semigroup.
func SemigroupFunc[T any](fn func(x, y T) T) Semigroup[T] {
	return Semigroup[T]{concat: fn}
}

// Concat combines two values.
func (s Semigroup[T]) Concat(x, y T) T {
	return s.concat(x, y)
}

// Reverse flips the argument order of the operation. Associativity is
// preserved; for non-commutative instances like First the result differs.
func (s Semigroup[T]) Reverse() Semigroup[T] {
	return Semigroup[T]{concat: func(x, y T) T {
		return s.concat(y, x)
	}}
}

// Monoid is a Semigroup with an identity element: combining any value with
// Empty yields the value unchanged.
type Monoid[T any] struct {
	Semigroup[T]
	empty T
}

// MonoidFunc wraps a combining function and its identity as a Monoid.
func MonoidFunc[T any](fn func(x, y T) T, empty T) Monoid[T] {
	return Monoid[T]{Semigroup: SemigroupFunc(fn), empty: empty}
}

// Empty returns the identity element.
func (m Monoid[T]) Empty() T {
	return m.empty
}

// ConcatAll folds items onto initial using the semigroup, left to right.
// With no items it returns initial, which doubles as the identity when
// folding with a monoid's Empty.
func ConcatAll[T any](s Semigroup[T], initial T, items ...T) T {
	acc := initial
	for _, v := range items {
		acc = s.Concat(acc, v)
	}
	return acc
}

// FoldMonoid folds items using the monoid, starting from its identity.
func FoldMonoid[T any](m Monoid[T], items ...T) T {
	return ConcatAll(m.Semigroup, m.empty, items...)
}

// SumSemigroup combines numbers by addition.
func SumSemigroup[T Number]() Semigroup[T] {
	return SemigroupFunc(func(x, y T) T { return x + y })
}

// ProductSemigroup combines numbers by multiplication.
func ProductSemigroup[T Number]() Semigroup[T] {
	return SemigroupFunc(func(x, y T) T { return x * y })
}

// MinSemigroup keeps the smaller of two ordered values.
func MinSemigroup[T cmp.Ordered]() Semigroup[T] {
	return SemigroupFunc(func(x, y T) T { return min(x, y) })
}

// MaxSemigroup keeps the larger of two ordered values.
func MaxSemigroup[T cmp.Ordered]() Semigroup[T] {
	return SemigroupFunc(func(x, y T) T { return max(x, y) })
}

// FirstSemigroup always keeps the left value.
func FirstSemigroup[T any]() Semigroup[T] {
	return SemigroupFunc(func(x, _ T) T { return x })
}

// LastSemigroup always keeps the right value.
func LastSemigroup[T any]() Semigroup[T] {
	return SemigroupFunc(func(_, y T) T { return y })
}

// StringMonoid concatenates strings; the identity is the empty string.
func StringMonoid() Monoid[string] {
	return MonoidFunc(func(x, y string) string { return x + y }, "")
}

// SliceMonoid appends slices; the identity is nil. The result is always a
// fresh slice, never aliasing either input.
func SliceMonoid[T any]() Monoid[[]T] {
	return MonoidFunc(func(x, y []T) []T {
		out := make([]T, 0, len(x)+len(y))
		out = append(out, x...)
		out = append(out, y...)
		return out
	}, nil)
}

// MapSemigroup unions two maps, resolving key collisions with the value
// semigroup. Neither input map is modified.
func MapSemigroup[K comparable, V any](value Semigroup[V]) Semigroup[map[K]V] {
	return SemigroupFunc(func(x, y map[K]V) map[K]V {
		out := make(map[K]V, len(x)+len(y))
		for k, v := range x {
			out[k] = v
		}
		for k, v := range y {
			if existing, ok := out[k]; ok {
				out[k] = value.Concat(existing, v)
			} else {
				out[k] = v
			}
		}
		return out
	})
}

// OptionSemigroup lifts a semigroup into Options: None is the identity,
// two Somes combine their contents. The lift upgrades any semigroup to a
// monoid with None as Empty.
func OptionSemigroup[T any](s Semigroup[T]) Monoid[Option[T]] {
	return MonoidFunc(func(x, y Option[T]) Option[T] {
		xv, xok := x.Get()
		yv, yok := y.Get()
		switch {
		case xok && yok:
			return Some(s.Concat(xv, yv))
		case xok:
			return x
		default:
			return y
		}
	}, None[T]())
}
