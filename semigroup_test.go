package funcz

import (
	"testing"
)

type userRecord struct {
	Name      string
	Logins    int
	UpdatedAt int64
}

func TestSemigroup(t *testing.T) {
	t.Run("Sum And Product", func(t *testing.T) {
		if got := SumSemigroup[int]().Concat(2, 3); got != 5 {
			t.Errorf("expected 5, got %d", got)
		}
		if got := ProductSemigroup[float64]().Concat(2.5, 4); got != 10 {
			t.Errorf("expected 10, got %v", got)
		}
	})

	t.Run("Min And Max", func(t *testing.T) {
		if got := MinSemigroup[int]().Concat(7, 3); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
		if got := MaxSemigroup[string]().Concat("apple", "banana"); got != "banana" {
			t.Errorf("expected banana, got %q", got)
		}
	})

	t.Run("First And Last", func(t *testing.T) {
		if got := FirstSemigroup[int]().Concat(1, 2); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
		if got := LastSemigroup[int]().Concat(1, 2); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
	})

	t.Run("Reverse Flips Arguments", func(t *testing.T) {
		if got := FirstSemigroup[int]().Reverse().Concat(1, 2); got != 2 {
			t.Errorf("reversed First should behave like Last, got %d", got)
		}
	})

	t.Run("Associativity", func(t *testing.T) {
		instances := map[string]Semigroup[int]{
			"sum":     SumSemigroup[int](),
			"product": ProductSemigroup[int](),
			"min":     MinSemigroup[int](),
			"max":     MaxSemigroup[int](),
			"first":   FirstSemigroup[int](),
			"last":    LastSemigroup[int](),
		}
		a, b, c := 2, 5, 3
		for name, s := range instances {
			left := s.Concat(s.Concat(a, b), c)
			right := s.Concat(a, s.Concat(b, c))
			if left != right {
				t.Errorf("%s is not associative: %d != %d", name, left, right)
			}
		}
	})

	t.Run("ConcatAll Folds Left To Right", func(t *testing.T) {
		if got := ConcatAll(SumSemigroup[int](), 0, 1, 2, 3, 4); got != 10 {
			t.Errorf("expected 10, got %d", got)
		}
		if got := ConcatAll(SumSemigroup[int](), 100); got != 100 {
			t.Errorf("no items should return initial, got %d", got)
		}
	})

	t.Run("Folding Bills Into A Total", func(t *testing.T) {
		type bill struct {
			Cents int
		}
		sum := SemigroupFunc(func(a, b bill) bill {
			return bill{Cents: a.Cents + b.Cents}
		})
		got := ConcatAll(sum, bill{}, bill{Cents: 1250}, bill{Cents: 399}, bill{Cents: 4500})
		if got.Cents != 6149 {
			t.Errorf("expected 6149, got %d", got.Cents)
		}
	})

	t.Run("Merging Records Field By Field", func(t *testing.T) {
		// Merge policy: keep the newest name, sum the login counts,
		// keep the latest timestamp.
		merge := SemigroupFunc(func(a, b userRecord) userRecord {
			return userRecord{
				Name:      LastSemigroup[string]().Concat(a.Name, b.Name),
				Logins:    SumSemigroup[int]().Concat(a.Logins, b.Logins),
				UpdatedAt: MaxSemigroup[int64]().Concat(a.UpdatedAt, b.UpdatedAt),
			}
		})

		old := userRecord{Name: "A. Lovelace", Logins: 3, UpdatedAt: 100}
		update := userRecord{Name: "Ada Lovelace", Logins: 1, UpdatedAt: 200}

		got := merge.Concat(old, update)
		want := userRecord{Name: "Ada Lovelace", Logins: 4, UpdatedAt: 200}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})
}

func TestMonoid(t *testing.T) {
	t.Run("StringMonoid", func(t *testing.T) {
		m := StringMonoid()
		if got := FoldMonoid(m, "a", "b", "c"); got != "abc" {
			t.Errorf("expected abc, got %q", got)
		}
		if got := m.Concat("x", m.Empty()); got != "x" {
			t.Error("empty string must be the identity")
		}
	})

	t.Run("SliceMonoid", func(t *testing.T) {
		m := SliceMonoid[int]()
		got := FoldMonoid(m, []int{1}, []int{2, 3}, nil, []int{4})
		want := []int{1, 2, 3, 4}
		if !SliceEq(StrictEq[int]()).Equals(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("SliceMonoid Does Not Alias Inputs", func(t *testing.T) {
		a := []int{1, 2}
		b := []int{3}
		got := SliceMonoid[int]().Concat(a, b)
		got[0] = 99
		if a[0] != 1 {
			t.Error("concatenation must not alias the left input")
		}
	})

	t.Run("FoldMonoid With No Items Is Empty", func(t *testing.T) {
		if got := FoldMonoid(StringMonoid()); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("MapSemigroup Unions With Value Merge", func(t *testing.T) {
		s := MapSemigroup[string](SumSemigroup[int]())
		a := map[string]int{"clicks": 1, "views": 10}
		b := map[string]int{"clicks": 2, "buys": 1}

		got := s.Concat(a, b)
		want := map[string]int{"clicks": 3, "views": 10, "buys": 1}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("key %s: expected %d, got %d", k, v, got[k])
			}
		}
		// Inputs untouched
		if a["clicks"] != 1 || b["clicks"] != 2 {
			t.Error("inputs must not be modified")
		}
	})

	t.Run("OptionSemigroup Treats None As Identity", func(t *testing.T) {
		m := OptionSemigroup(SumSemigroup[int]())
		if got := m.Concat(Some(2), Some(3)); got.GetOrElse(0) != 5 {
			t.Errorf("expected Some(5), got %v", got)
		}
		if got := m.Concat(Some(2), m.Empty()); got.GetOrElse(0) != 2 {
			t.Error("None must be the identity on the right")
		}
		if got := m.Concat(m.Empty(), Some(3)); got.GetOrElse(0) != 3 {
			t.Error("None must be the identity on the left")
		}
		if got := m.Concat(m.Empty(), m.Empty()); got.IsSome() {
			t.Error("combining two Nones should stay None")
		}
	})
}
