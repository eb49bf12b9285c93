package funcz

// Pipe threads a value through a sequence of same-typed functions,
// left to right. It is the data-first composition helper: the value
// comes first, the steps after.
//
// Example:
//
//	clean := funcz.Pipe("  Go  ",
//	    strings.TrimSpace,
//	    strings.ToLower,
//	)
//	// clean == "go"
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}

// Compose combines same-typed functions right to left, mirroring
// mathematical composition: Compose(f, g)(x) == f(g(x)).
// For left-to-right composition across different types, use Flow2.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			value = fns[i](value)
		}
		return value
	}
}

// Flow2 composes two functions left to right: Flow2(f, g)(x) == g(f(x)).
// Unlike Compose, the intermediate types may differ, which makes Flow the
// building block for heterogeneous pipelines.
//
// Example:
//
//	shout := funcz.Flow2(strings.ToUpper, func(s string) string {
//	    return s + "!"
//	})
func Flow2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Flow3 composes three functions left to right.
func Flow3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Flow4 composes four functions left to right.
func Flow4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return func(a A) E {
		return i(h(g(f(a))))
	}
}

// Curry2 converts a two-argument function into a chain of single-argument
// functions, adapting ordinary Go functions for use with the higher-order
// helpers in this package.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 converts a three-argument function into a chain of single-argument
// functions.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Identity returns the supplied value unchanged. It is the left and right
// identity of Flow2 and a useful default for optional transformation hooks.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Tap runs a side effect against the value and returns the value unchanged,
// letting logging or metrics slot into a Pipe without altering the flow.
func Tap[T any](fn func(T)) func(T) T {
	return func(v T) T {
		fn(v)
		return v
	}
}
