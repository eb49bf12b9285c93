// Package testing provides test utilities and helpers for funcz-based code.
//
// This package includes mock rules, hash function stubs, and assertion
// helpers for Option and Either values, so tests read as statements about
// outcomes rather than plumbing.
//
// Example usage:
//
//	func TestSignup(t *testing.T) {
//		rule := testing.NewMockRule[string](t, "mock-rule")
//		validator := funcz.NewValidator("signup", rule.Rule())
//
//		_, err := validator.Process(context.Background(), "input")
//
//		testing.AssertChecked(t, rule, 1)
//		if err != nil {
//			t.Fatal(err)
//		}
//	}
package testing

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/funcz"
)

// MockRule provides a configurable mock implementation of funcz.Rule[T].
// It tracks calls, allows configuring the returned error and a delay, and
// provides assertion methods for testing validator behavior.
type MockRule[T any] struct {
	t           *testing.T
	name        string
	callCount   int64
	returnErr   error
	delay       time.Duration
	mu          sync.RWMutex
	callHistory []MockCheck[T]
	maxHistory  int
}

// MockCheck represents a single evaluation of the mock rule.
type MockCheck[T any] struct {
	Input     T
	Timestamp time.Time
}

// NewMockRule creates a new mock rule for testing.
// The rule accepts everything until configured otherwise.
func NewMockRule[T any](t *testing.T, name string) *MockRule[T] {
	return &MockRule[T]{
		t:          t,
		name:       name,
		maxHistory: 100, // Keep last 100 checks by default
	}
}

// WithError configures the mock to reject with err on every check.
func (m *MockRule[T]) WithError(err error) *MockRule[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnErr = err
	return m
}

// WithDelay configures the mock to sleep before answering, for exercising
// cancellation paths.
func (m *MockRule[T]) WithDelay(d time.Duration) *MockRule[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
	return m
}

// Rule returns the funcz.Rule backed by this mock.
func (m *MockRule[T]) Rule() funcz.Rule[T] {
	return funcz.NewRule(m.name, func(ctx context.Context, value T) error {
		m.mu.RLock()
		delay := m.delay
		returnErr := m.returnErr
		m.mu.RUnlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		atomic.AddInt64(&m.callCount, 1)
		m.mu.Lock()
		m.callHistory = append(m.callHistory, MockCheck[T]{Input: value, Timestamp: time.Now()})
		if len(m.callHistory) > m.maxHistory {
			m.callHistory = m.callHistory[1:]
		}
		m.mu.Unlock()

		return returnErr
	})
}

// CallCount returns how many times the rule has been evaluated.
func (m *MockRule[T]) CallCount() int {
	return int(atomic.LoadInt64(&m.callCount))
}

// LastInput returns the most recent input and whether any call happened.
func (m *MockRule[T]) LastInput() (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.callHistory) == 0 {
		var zero T
		return zero, false
	}
	return m.callHistory[len(m.callHistory)-1].Input, true
}

// History returns a copy of the recorded checks.
func (m *MockRule[T]) History() []MockCheck[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]MockCheck[T], len(m.callHistory))
	copy(out, m.callHistory)
	return out
}

// Reset clears call tracking and configured behavior.
func (m *MockRule[T]) Reset() *MockRule[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	atomic.StoreInt64(&m.callCount, 0)
	m.callHistory = nil
	m.returnErr = nil
	m.delay = 0
	return m
}

// AssertChecked fails the test unless the mock was evaluated exactly
// expected times.
func AssertChecked[T any](t *testing.T, m *MockRule[T], expected int) {
	t.Helper()
	if got := m.CallCount(); got != expected {
		t.Errorf("expected %d rule evaluations, got %d", expected, got)
	}
}

// StaticHash returns a funcz.HashFunc that always produces output.
func StaticHash(output string) funcz.HashFunc {
	return func(string) (string, error) {
		return output, nil
	}
}

// FailingHash returns a funcz.HashFunc that always fails with err.
func FailingHash(err error) funcz.HashFunc {
	return func(string) (string, error) {
		return "", err
	}
}

// PrefixHash returns a funcz.HashFunc that prefixes its input, keeping the
// transformation visible in assertions.
func PrefixHash(prefix string) funcz.HashFunc {
	return func(s string) (string, error) {
		return prefix + s, nil
	}
}

// AssertSome fails the test unless o holds a value, returning it for
// further assertions.
func AssertSome[T any](t *testing.T, o funcz.Option[T]) T {
	t.Helper()
	v, ok := o.Get()
	if !ok {
		t.Fatal("expected Some, got None")
	}
	return v
}

// AssertNone fails the test unless o is empty.
func AssertNone[T any](t *testing.T, o funcz.Option[T]) {
	t.Helper()
	if v, ok := o.Get(); ok {
		t.Fatalf("expected None, got Some(%v)", v)
	}
}

// AssertRight fails the test unless e holds a success value, returning it
// for further assertions.
func AssertRight[L, R any](t *testing.T, e funcz.Either[L, R]) R {
	t.Helper()
	v, ok := e.Get()
	if !ok {
		l, _ := e.LeftValue()
		t.Fatalf("expected Right, got Left(%v)", l)
	}
	return v
}

// AssertLeft fails the test unless e holds a failure value, returning it
// for further assertions.
func AssertLeft[L, R any](t *testing.T, e funcz.Either[L, R]) L {
	t.Helper()
	l, ok := e.LeftValue()
	if !ok {
		v, _ := e.Get()
		t.Fatalf("expected Left, got Right(%v)", v)
	}
	return l
}
