package funcz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Validator connector observability.
const (
	ValidatorProcessedTotal = metricz.Key("validator.processed.total")
	ValidatorAcceptedTotal  = metricz.Key("validator.accepted.total")
	ValidatorRejectedTotal  = metricz.Key("validator.rejected.total")
	ValidatorDurationMs     = metricz.Key("validator.duration.ms")
)

// Span names for Validator connector.
const (
	ValidatorProcessSpan = tracez.Key("validator.process")
	ValidatorRuleSpan    = tracez.Key("validator.rule")
)

// Span tags for Validator connector.
const (
	ValidatorTagConnector = tracez.Tag("validator.connector")
	ValidatorTagRuleCount = tracez.Tag("validator.rule_count")
	ValidatorTagRuleName  = tracez.Tag("validator.rule_name")
	ValidatorTagSuccess   = tracez.Tag("validator.success")
	ValidatorTagError     = tracez.Tag("validator.error")

	// Hook event keys.
	ValidatorEventAccepted = hookz.Key("validator.accepted")
	ValidatorEventRejected = hookz.Key("validator.rejected")
)

// ValidatorEvent represents a validation outcome event.
// This is emitted via hookz after the validator finishes, allowing
// external systems to track acceptance rates and failing rules.
type ValidatorEvent struct {
	Name       Name          // Connector name
	RuleName   Name          // Rule that rejected the input (rejected only)
	RulesRun   int           // Number of rules evaluated
	TotalRules int           // Number of rules registered
	Accepted   bool          // Whether the input passed every rule
	Error      error         // The rule's error (rejected only)
	Duration   time.Duration // Total validation time
	Timestamp  time.Time     // When the event occurred
}

// Rule is a named check applied to a value. Rules do not transform data;
// they only decide whether it is acceptable, returning nil to accept.
type Rule[T any] struct {
	name  Name
	check func(context.Context, T) error
}

// NewRule creates a named rule from a check function.
func NewRule[T any](name Name, check func(context.Context, T) error) Rule[T] {
	return Rule[T]{name: name, check: check}
}

// Name returns the rule's name.
func (r Rule[T]) Name() Name {
	return r.name
}

// Check runs the rule against a value.
func (r Rule[T]) Check(ctx context.Context, value T) error {
	return r.check(ctx, value)
}

// Validator applies an ordered list of rules to a value, fail-fast: the
// first violated rule wins and later rules are not evaluated. On success
// the input is returned unchanged; there is no partial accumulation of
// errors.
//
// Failures are wrapped in *Error[T] with Path [validator, rule], the input
// snapshot, and timing, so callers can pinpoint the rejecting rule with
// errors.As.
//
// The Validator is thread-safe; rules can be inspected and replaced at
// runtime.
//
// # Observability
//
// Metrics:
//   - validator.processed.total: Counter of validation runs
//   - validator.accepted.total: Counter of inputs that passed every rule
//   - validator.rejected.total: Counter of rejected inputs
//   - validator.duration.ms: Gauge of the last run's duration
//
// Traces:
//   - validator.process: Parent span for the whole run
//   - validator.rule: Child span per evaluated rule
//
// Events (via hooks):
//   - validator.accepted: Fired when the input passes every rule
//   - validator.rejected: Fired when a rule rejects the input
//
// Example:
//
//	validator := funcz.NewValidator("signup",
//	    funcz.NewRule("has_email", checkEmail),
//	    funcz.NewRule("unique_name", checkName),
//	)
//	validator.OnRejected(func(ctx context.Context, e funcz.ValidatorEvent) error {
//	    log.Printf("rejected by %s: %v", e.RuleName, e.Error)
//	    return nil
//	})
type Validator[T any] struct {
	name  Name
	rules []Rule[T]
	mu    sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[ValidatorEvent]
}

// NewValidator creates a Validator that applies rules in the given order.
func NewValidator[T any](name Name, rules ...Rule[T]) *Validator[T] {
	registry := metricz.New()

	registry.Counter(ValidatorProcessedTotal)
	registry.Counter(ValidatorAcceptedTotal)
	registry.Counter(ValidatorRejectedTotal)
	registry.Gauge(ValidatorDurationMs)

	return &Validator[T]{
		name:    name,
		rules:   rules,
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[ValidatorEvent](),
	}
}

// Process implements the Chainable interface. It evaluates the rules in
// order and returns the input unchanged when all accept, or the first
// rule's failure wrapped in *Error[T].
func (v *Validator[T]) Process(ctx context.Context, data T) (result T, err error) {
	defer recoverFromPanic(&result, &err, v.name, data)

	v.mu.RLock()
	rules := v.rules
	v.mu.RUnlock()

	ctx, span := v.tracer.StartSpan(ctx, ValidatorProcessSpan)
	defer span.Finish()
	span.SetTag(ValidatorTagConnector, string(v.name))
	span.SetTag(ValidatorTagRuleCount, fmt.Sprintf("%d", len(rules)))

	v.metrics.Counter(ValidatorProcessedTotal).Inc()
	start := time.Now()

	for i, rule := range rules {
		ruleCtx, ruleSpan := v.tracer.StartSpan(ctx, ValidatorRuleSpan)
		ruleSpan.SetTag(ValidatorTagRuleName, string(rule.name))

		ruleErr := rule.check(ruleCtx, data)
		if ruleErr != nil {
			ruleSpan.SetTag(ValidatorTagSuccess, "false")
			ruleSpan.SetTag(ValidatorTagError, ruleErr.Error())
			ruleSpan.Finish()

			elapsed := time.Since(start)
			v.metrics.Counter(ValidatorRejectedTotal).Inc()
			v.metrics.Gauge(ValidatorDurationMs).Set(float64(elapsed.Milliseconds()))
			span.SetTag(ValidatorTagSuccess, "false")

			_ = v.hooks.Emit(ctx, ValidatorEventRejected, ValidatorEvent{ //nolint:errcheck
				Name:       v.name,
				RuleName:   rule.name,
				RulesRun:   i + 1,
				TotalRules: len(rules),
				Accepted:   false,
				Error:      ruleErr,
				Duration:   elapsed,
				Timestamp:  time.Now(),
			})

			return data, newError(v.name, data, newError(rule.name, data, ruleErr, start), start)
		}

		ruleSpan.SetTag(ValidatorTagSuccess, "true")
		ruleSpan.Finish()
	}

	elapsed := time.Since(start)
	v.metrics.Counter(ValidatorAcceptedTotal).Inc()
	v.metrics.Gauge(ValidatorDurationMs).Set(float64(elapsed.Milliseconds()))
	span.SetTag(ValidatorTagSuccess, "true")

	_ = v.hooks.Emit(ctx, ValidatorEventAccepted, ValidatorEvent{ //nolint:errcheck
		Name:       v.name,
		RulesRun:   len(rules),
		TotalRules: len(rules),
		Accepted:   true,
		Duration:   elapsed,
		Timestamp:  time.Now(),
	})

	return data, nil
}

// Check runs validation and folds the outcome into an Either, for use at
// the algebra layer where failures are values rather than Go errors.
func (v *Validator[T]) Check(ctx context.Context, data T) Either[error, T] {
	return EitherOf(v.Process(ctx, data))
}

// AddRule appends a rule to the end of the chain.
func (v *Validator[T]) AddRule(rule Rule[T]) *Validator[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rules = append(v.rules, rule)
	return v
}

// SetRules replaces the rule chain.
func (v *Validator[T]) SetRules(rules ...Rule[T]) *Validator[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rules = rules
	return v
}

// Rules returns a copy of the current rule chain.
func (v *Validator[T]) Rules() []Rule[T] {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Rule[T], len(v.rules))
	copy(out, v.rules)
	return out
}

// Len returns the number of registered rules.
func (v *Validator[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.rules)
}

// Name returns the name of this connector.
func (v *Validator[T]) Name() Name {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.name
}

// Metrics returns the metrics registry for this connector.
func (v *Validator[T]) Metrics() *metricz.Registry {
	return v.metrics
}

// Tracer returns the tracer for this connector.
func (v *Validator[T]) Tracer() *tracez.Tracer {
	return v.tracer
}

// OnAccepted registers a handler fired when an input passes every rule.
// The handler is called asynchronously.
func (v *Validator[T]) OnAccepted(handler func(context.Context, ValidatorEvent) error) error {
	_, err := v.hooks.Hook(ValidatorEventAccepted, handler)
	return err
}

// OnRejected registers a handler fired when a rule rejects an input.
// The handler is called asynchronously.
func (v *Validator[T]) OnRejected(handler func(context.Context, ValidatorEvent) error) error {
	_, err := v.hooks.Hook(ValidatorEventRejected, handler)
	return err
}

// Close gracefully shuts down observability components.
func (v *Validator[T]) Close() error {
	if v.tracer != nil {
		v.tracer.Close()
	}
	v.hooks.Close()
	return nil
}
