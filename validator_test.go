package funcz

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestValidator(t *testing.T) {
	errEmpty := errors.New("empty input")
	errNoAt := errors.New("missing @")

	notEmpty := NewRule("not_empty", func(_ context.Context, s string) error {
		if s == "" {
			return errEmpty
		}
		return nil
	})
	hasAt := NewRule("has_at", func(_ context.Context, s string) error {
		if !strings.Contains(s, "@") {
			return errNoAt
		}
		return nil
	})

	t.Run("Accepts When All Rules Pass", func(t *testing.T) {
		v := NewValidator("email", notEmpty, hasAt)
		defer v.Close()

		got, err := v.Process(context.Background(), "user@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "user@example.com" {
			t.Errorf("input must pass through unchanged, got %q", got)
		}
	})

	t.Run("First Violated Rule Wins", func(t *testing.T) {
		v := NewValidator("email", notEmpty, hasAt)
		defer v.Close()

		// Empty input violates both rules; only the first is reported.
		_, err := v.Process(context.Background(), "")
		if !errors.Is(err, errEmpty) {
			t.Fatalf("expected empty-input error, got %v", err)
		}
		if errors.Is(err, errNoAt) {
			t.Error("later rules must not be reported")
		}
	})

	t.Run("Later Rules Not Evaluated After Failure", func(t *testing.T) {
		var secondRan bool
		first := NewRule("fails", func(_ context.Context, _ int) error {
			return errors.New("nope")
		})
		second := NewRule("spy", func(_ context.Context, _ int) error {
			secondRan = true
			return nil
		})

		v := NewValidator("fail-fast", first, second)
		defer v.Close()

		_, _ = v.Process(context.Background(), 1)
		if secondRan {
			t.Error("fail-fast validator must not evaluate later rules")
		}
	})

	t.Run("Error Path Names Validator And Rule", func(t *testing.T) {
		v := NewValidator("email", notEmpty, hasAt)
		defer v.Close()

		_, err := v.Process(context.Background(), "no-at-sign")

		var vErr *Error[string]
		if !errors.As(err, &vErr) {
			t.Fatalf("expected *Error[string], got %T", err)
		}
		if len(vErr.Path) != 2 || vErr.Path[0] != "email" || vErr.Path[1] != "has_at" {
			t.Errorf("expected path [email has_at], got %v", vErr.Path)
		}
		if vErr.InputData != "no-at-sign" {
			t.Errorf("expected input snapshot, got %q", vErr.InputData)
		}
	})

	t.Run("No Rules Accepts Everything", func(t *testing.T) {
		v := NewValidator[string]("permissive")
		defer v.Close()

		got, err := v.Process(context.Background(), "anything")
		if err != nil || got != "anything" {
			t.Errorf("expected pass-through, got %q (%v)", got, err)
		}
	})

	t.Run("Check Folds Into Either", func(t *testing.T) {
		v := NewValidator("email", notEmpty, hasAt)
		defer v.Close()

		if got := v.Check(context.Background(), "a@b"); !got.IsRight() {
			t.Errorf("expected Right, got %v", got)
		}
		if got := v.Check(context.Background(), ""); !got.IsLeft() {
			t.Errorf("expected Left, got %v", got)
		}
	})

	t.Run("Rule Panic Becomes Error", func(t *testing.T) {
		v := NewValidator("panicky", NewRule("boom", func(_ context.Context, _ int) error {
			panic("rule exploded")
		}))
		defer v.Close()

		result, err := v.Process(context.Background(), 42)
		if result != 0 {
			t.Errorf("expected zero result, got %d", result)
		}
		var vErr *Error[int]
		if !errors.As(err, &vErr) {
			t.Fatalf("expected *Error[int], got %T", err)
		}
		if !strings.Contains(vErr.Err.Error(), "panic") {
			t.Errorf("expected panic message, got %v", vErr.Err)
		}
	})

	t.Run("Runtime Rule Mutation", func(t *testing.T) {
		v := NewValidator("mutable", notEmpty)
		defer v.Close()

		if v.Len() != 1 {
			t.Fatalf("expected 1 rule, got %d", v.Len())
		}
		v.AddRule(hasAt)
		if v.Len() != 2 {
			t.Fatalf("expected 2 rules, got %d", v.Len())
		}

		rules := v.Rules()
		if rules[0].Name() != "not_empty" || rules[1].Name() != "has_at" {
			t.Errorf("unexpected rule order: %v, %v", rules[0].Name(), rules[1].Name())
		}

		v.SetRules(hasAt)
		if v.Len() != 1 || v.Rules()[0].Name() != "has_at" {
			t.Error("SetRules should replace the chain")
		}
	})

	t.Run("Metrics Track Outcomes", func(t *testing.T) {
		v := NewValidator("metered", notEmpty, hasAt)
		defer v.Close()

		_, _ = v.Process(context.Background(), "a@b")
		_, _ = v.Process(context.Background(), "bad")
		_, _ = v.Process(context.Background(), "")

		if got := v.Metrics().Counter(ValidatorProcessedTotal).Value(); got != 3 {
			t.Errorf("expected 3 processed, got %v", got)
		}
		if got := v.Metrics().Counter(ValidatorAcceptedTotal).Value(); got != 1 {
			t.Errorf("expected 1 accepted, got %v", got)
		}
		if got := v.Metrics().Counter(ValidatorRejectedTotal).Value(); got != 2 {
			t.Errorf("expected 2 rejected, got %v", got)
		}
	})

	t.Run("Emits Accepted And Rejected Events", func(t *testing.T) {
		v := NewValidator("evented", notEmpty, hasAt)
		defer v.Close()

		events := make(chan ValidatorEvent, 2)
		var mu sync.Mutex
		record := func(_ context.Context, e ValidatorEvent) error {
			mu.Lock()
			defer mu.Unlock()
			events <- e
			return nil
		}
		if err := v.OnAccepted(record); err != nil {
			t.Fatalf("OnAccepted: %v", err)
		}
		if err := v.OnRejected(record); err != nil {
			t.Fatalf("OnRejected: %v", err)
		}

		_, _ = v.Process(context.Background(), "ok@example.com")
		_, _ = v.Process(context.Background(), "rejected")

		var accepted, rejected bool
		for i := 0; i < 2; i++ {
			select {
			case e := <-events:
				if e.Accepted {
					accepted = true
					if e.RulesRun != 2 || e.TotalRules != 2 {
						t.Errorf("accepted event should run all rules, got %d/%d", e.RulesRun, e.TotalRules)
					}
				} else {
					rejected = true
					if e.RuleName != "has_at" {
						t.Errorf("expected rejection by has_at, got %s", e.RuleName)
					}
					if !errors.Is(e.Error, errNoAt) {
						t.Errorf("expected rule error in event, got %v", e.Error)
					}
				}
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for events")
			}
		}
		if !accepted || !rejected {
			t.Errorf("expected both event kinds, accepted=%v rejected=%v", accepted, rejected)
		}
	})

	t.Run("Name And Chainable", func(t *testing.T) {
		v := NewValidator[string]("named")
		defer v.Close()

		if v.Name() != "named" {
			t.Errorf("expected named, got %s", v.Name())
		}
		// Validator satisfies the Chainable interface.
		var _ Chainable[string] = v
	})
}
