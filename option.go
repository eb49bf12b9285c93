package funcz

import "fmt"

// Option represents a value that may be absent. It replaces nil-pointer
// conventions with an explicit container: Some holds a value, None holds
// nothing, and every access site must say what happens in the None case.
//
// Option is a value type. Copies are independent and the zero value is None,
// so an uninitialized Option behaves sensibly.
//
// Example:
//
//	func lookup(users map[string]User, id string) funcz.Option[User] {
//	    u, ok := users[id]
//	    return funcz.OptionOf(u, ok)
//	}
//
//	name := funcz.MapOption(lookup(users, "42"), User.DisplayName).
//	    GetOrElse("anonymous")
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf converts Go's comma-ok idiom into an Option.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns Some of the pointed-to value, or None for a nil pointer.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the contained value and panics on None. Reserve it for
// paths where absence is a programming error.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("funcz: MustGet on None")
	}
	return o.value
}

// GetOrElse returns the contained value, or fallback when None.
func (o Option[T]) GetOrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// OrElse returns o when it holds a value, otherwise alt.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if !o.present {
		return alt
	}
	return o
}

// Filter returns o unchanged when the contained value satisfies pred,
// otherwise None. Filtering None yields None.
func (o Option[T]) Filter(pred Predicate[T]) Option[T] {
	if !o.present || !pred(o.value) {
		return None[T]()
	}
	return o
}

// Map applies a same-typed transformation to the contained value.
// For type-changing transformations use the package-level MapOption,
// since Go methods cannot introduce new type parameters.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.present {
		return o
	}
	return Some(fn(o.value))
}

// ToPtr returns a pointer to a copy of the contained value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption applies fn to the contained value, producing an Option of the
// result type. None maps to None without calling fn.
func MapOption[A, B any](o Option[A], fn Mapper[A, B]) Option[B] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return None[B]()
}

// FlatMapOption applies a function that itself returns an Option, without
// introducing nesting. Use it to chain lookups where every step may miss.
func FlatMapOption[A, B any](o Option[A], fn func(A) Option[B]) Option[B] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return None[B]()
}

// FoldOption collapses the Option into a single value by choosing between
// the two handlers.
func FoldOption[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// FlattenOption collapses one level of nesting: Some(Some(x)) becomes
// Some(x), everything else becomes None. Nesting arises when an optional
// lookup is mapped over an optional value; Flatten restores the flat shape.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return None[T]()
}

// Map2Option combines two Options with fn, yielding None when either is None.
func Map2Option[A, B, C any](a Option[A], b Option[B], fn func(A, B) C) Option[C] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if !aok || !bok {
		return None[C]()
	}
	return Some(fn(av, bv))
}
