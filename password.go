package funcz

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Rule names used by PasswordPolicy validators.
const (
	MinLengthRuleName Name = "min_length"
	CapitalRuleName   Name = "capital_letter"
)

// Metric keys for Hasher connector observability.
const (
	HasherProcessedTotal = metricz.Key("hasher.processed.total")
	HasherFailuresTotal  = metricz.Key("hasher.failures.total")
	HasherSkippedTotal   = metricz.Key("hasher.skipped.total")
)

// Span names and tags for Hasher connector.
const (
	HasherProcessSpan = tracez.Key("hasher.process")

	HasherTagConnector = tracez.Tag("hasher.connector")
	HasherTagSuccess   = tracez.Tag("hasher.success")
	HasherTagError     = tracez.Tag("hasher.error")

	// Hook event keys.
	HasherEventCompleted = hookz.Key("hasher.completed")
)

// Password is an immutable credential value. The tag distinguishes plain
// input from material that has already been through a hash function, so a
// plain password cannot be stored where a hashed one is expected without
// the type saying so.
//
// Password values never mutate; Validate and Hash return new values.
type Password struct {
	value  string
	hashed bool
}

// PlainPassword tags raw user input.
func PlainPassword(value string) Password {
	return Password{value: value}
}

// HashedPassword tags material that was hashed elsewhere, e.g. loaded
// from storage.
func HashedPassword(value string) Password {
	return Password{value: value, hashed: true}
}

// Value returns the underlying string.
func (p Password) Value() string {
	return p.value
}

// IsHashed reports whether the value has been through a hash function.
func (p Password) IsHashed() bool {
	return p.hashed
}

// String implements fmt.Stringer, redacting the value so passwords do not
// leak through logs or %v formatting.
func (p Password) String() string {
	if p.hashed {
		return "Password(hashed)"
	}
	return "Password(plain)"
}

// MinLengthError reports a password shorter than the policy minimum.
type MinLengthError struct {
	MinLength int
}

func (e *MinLengthError) Error() string {
	return fmt.Sprintf("password must be at least %d characters", e.MinLength)
}

// MissingCapitalError reports a password with no uppercase letter when the
// policy requires one.
type MissingCapitalError struct{}

func (*MissingCapitalError) Error() string {
	return "password must contain at least one capital letter"
}

// PasswordPolicy describes the checks a plain password must pass. The zero
// value accepts any input: MinLength defaults to 0 and RequireCapital to
// false.
type PasswordPolicy struct {
	MinLength      int
	RequireCapital bool
}

// Rules returns the policy's rule chain. Order is fixed: the length check
// runs before the capital-letter check, so a short password always reports
// MinLengthError regardless of its letters.
func (pp PasswordPolicy) Rules() []Rule[Password] {
	return []Rule[Password]{
		NewRule(MinLengthRuleName, func(_ context.Context, p Password) error {
			if len(p.Value()) < pp.MinLength {
				return &MinLengthError{MinLength: pp.MinLength}
			}
			return nil
		}),
		NewRule(CapitalRuleName, func(_ context.Context, p Password) error {
			if !pp.RequireCapital {
				return nil
			}
			for _, r := range p.Value() {
				if unicode.IsUpper(r) {
					return nil
				}
			}
			return &MissingCapitalError{}
		}),
	}
}

// Validator builds an instrumented fail-fast validator for the policy.
func (pp PasswordPolicy) Validator() *Validator[Password] {
	return NewValidator("password-validator", pp.Rules()...)
}

// CheckPassword is the pure variant: it applies the policy without any
// connector machinery and folds the outcome into an Either. On success the
// password is returned unchanged; on failure the Left holds the first
// violated rule's error directly.
func CheckPassword(p Password, policy PasswordPolicy) Either[error, Password] {
	for _, rule := range policy.Rules() {
		if err := rule.Check(context.Background(), p); err != nil {
			return Left[error, Password](err)
		}
	}
	return Right[error](p)
}

// HashFunc transforms password material and may fail. The module performs
// no cryptography itself; callers supply bcrypt, argon2, or a test stub.
type HashFunc func(string) (string, error)

// HashWith runs the hash function over a plain password, returning a new
// value tagged as hashed. The original value is untouched; a failing hash
// function propagates its error as the Left.
func HashWith(p Password, h HashFunc) Either[error, Password] {
	hashed, err := h(p.Value())
	if err != nil {
		return Left[error, Password](err)
	}
	return Right[error](HashedPassword(hashed))
}

// HashTask lifts HashWith into a lazy Task, for composing hashing into
// asynchronous flows with retries or deadlines.
func HashTask(p Password, h HashFunc) Task[Password] {
	return func(context.Context) (Password, error) {
		return UnwrapEither(HashWith(p, h))
	}
}

// HasherEvent represents a completed hash attempt.
type HasherEvent struct {
	Name      Name          // Connector name
	Success   bool          // Whether hashing succeeded
	Skipped   bool          // Whether the input was already hashed
	Error     error         // Hash function error, if any
	Duration  time.Duration // Hashing time
	Timestamp time.Time     // When the event occurred
}

// Hasher wraps a HashFunc as an instrumented connector. Inputs that are
// already hashed pass through untouched, so the connector is idempotent
// and safe to stack after a validator in a registration flow.
//
// # Observability
//
// Metrics:
//   - hasher.processed.total: Counter of hash attempts
//   - hasher.failures.total: Counter of hash function failures
//   - hasher.skipped.total: Counter of already-hashed pass-throughs
//
// Traces:
//   - hasher.process: Span per attempt
//
// Events (via hooks):
//   - hasher.completed: Fired after every attempt, success or failure
type Hasher struct {
	name Name
	fn   HashFunc
	mu   sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[HasherEvent]
}

// NewHasher creates a Hasher connector around the supplied hash function.
func NewHasher(name Name, fn HashFunc) *Hasher {
	registry := metricz.New()

	registry.Counter(HasherProcessedTotal)
	registry.Counter(HasherFailuresTotal)
	registry.Counter(HasherSkippedTotal)

	return &Hasher{
		name:    name,
		fn:      fn,
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[HasherEvent](),
	}
}

// Process implements the Chainable interface. It returns a new hashed
// Password, the input untouched when already hashed, or the hash function's
// failure wrapped in *Error[Password].
func (h *Hasher) Process(ctx context.Context, p Password) (result Password, err error) {
	defer recoverFromPanic(&result, &err, h.name, p)

	h.mu.RLock()
	fn := h.fn
	h.mu.RUnlock()

	ctx, span := h.tracer.StartSpan(ctx, HasherProcessSpan)
	defer span.Finish()
	span.SetTag(HasherTagConnector, string(h.name))

	h.metrics.Counter(HasherProcessedTotal).Inc()

	if p.IsHashed() {
		h.metrics.Counter(HasherSkippedTotal).Inc()
		span.SetTag(HasherTagSuccess, "true")

		_ = h.hooks.Emit(ctx, HasherEventCompleted, HasherEvent{ //nolint:errcheck
			Name:      h.name,
			Success:   true,
			Skipped:   true,
			Timestamp: time.Now(),
		})

		return p, nil
	}

	start := time.Now()
	hashed, hashErr := fn(p.Value())
	elapsed := time.Since(start)

	if hashErr != nil {
		h.metrics.Counter(HasherFailuresTotal).Inc()
		span.SetTag(HasherTagSuccess, "false")
		span.SetTag(HasherTagError, hashErr.Error())

		_ = h.hooks.Emit(ctx, HasherEventCompleted, HasherEvent{ //nolint:errcheck
			Name:      h.name,
			Success:   false,
			Error:     hashErr,
			Duration:  elapsed,
			Timestamp: time.Now(),
		})

		return p, newError(h.name, p, hashErr, start)
	}

	span.SetTag(HasherTagSuccess, "true")

	_ = h.hooks.Emit(ctx, HasherEventCompleted, HasherEvent{ //nolint:errcheck
		Name:      h.name,
		Success:   true,
		Duration:  elapsed,
		Timestamp: time.Now(),
	})

	return HashedPassword(hashed), nil
}

// SetHashFunc replaces the hash function at runtime.
func (h *Hasher) SetHashFunc(fn HashFunc) *Hasher {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fn = fn
	return h
}

// Name returns the name of this connector.
func (h *Hasher) Name() Name {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.name
}

// Metrics returns the metrics registry for this connector.
func (h *Hasher) Metrics() *metricz.Registry {
	return h.metrics
}

// Tracer returns the tracer for this connector.
func (h *Hasher) Tracer() *tracez.Tracer {
	return h.tracer
}

// OnCompleted registers a handler fired after every hash attempt.
// The handler is called asynchronously.
func (h *Hasher) OnCompleted(handler func(context.Context, HasherEvent) error) error {
	_, err := h.hooks.Hook(HasherEventCompleted, handler)
	return err
}

// Close gracefully shuts down observability components.
func (h *Hasher) Close() error {
	if h.tracer != nil {
		h.tracer.Close()
	}
	h.hooks.Close()
	return nil
}
