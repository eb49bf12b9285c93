package funcz

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
)

// Task is a lazy, context-aware computation that produces a value or an
// error when run. Nothing happens until Run is called, so Tasks can be
// built up, combined, retried, and given deadlines before any work starts.
//
// Timing combinators (Delayed, Deadline, Retried) use the real clock by
// default. Each has a ...On variant accepting an explicit clockz.Clock so
// tests can drive time deterministically with a fake clock.
//
// Example:
//
//	fetch := funcz.TaskFrom(func() (Profile, error) {
//	    return client.Load(userID)
//	})
//	profile, err := fetch.Retried(3, 100*time.Millisecond).Run(ctx)
type Task[T any] func(context.Context) (T, error)

// TaskOf returns a Task that always succeeds with v.
func TaskOf[T any](v T) Task[T] {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

// TaskFail returns a Task that always fails with err.
func TaskFail[T any](err error) Task[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// TaskFrom lifts an ordinary nullary function into a Task. The context is
// not consulted; wrap with Deadline when cancellation matters.
func TaskFrom[T any](fn func() (T, error)) Task[T] {
	return func(context.Context) (T, error) {
		return fn()
	}
}

// Run executes the task.
func (t Task[T]) Run(ctx context.Context) (T, error) {
	return t(ctx)
}

// OrElse recovers from a failure by switching to the task produced by fn.
// Successes pass through untouched.
func (t Task[T]) OrElse(fn func(error) Task[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		v, err := t(ctx)
		if err != nil {
			return fn(err)(ctx)
		}
		return v, nil
	}
}

// Attempt converts the task's failure channel into a value: the returned
// function never reports a Go error, it folds the outcome into an Either.
// This is the bridge from effectful code back to the pure algebra layer.
//
// Example:
//
//	ok := funcz.FoldEither(save.Attempt()(ctx),
//	    func(error) bool { return false },
//	    func(User) bool { return true },
//	)
func (t Task[T]) Attempt() func(context.Context) Either[error, T] {
	return func(ctx context.Context) Either[error, T] {
		return EitherOf(t(ctx))
	}
}

// Delayed waits d before running the task, using the real clock.
func (t Task[T]) Delayed(d time.Duration) Task[T] {
	return t.DelayedOn(clockz.RealClock, d)
}

// DelayedOn waits d on the supplied clock before running the task.
// The wait is cut short by context cancellation.
func (t Task[T]) DelayedOn(clock clockz.Clock, d time.Duration) Task[T] {
	return func(ctx context.Context) (T, error) {
		select {
		case <-clock.After(d):
			return t(ctx)
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// Deadline fails the task with context.DeadlineExceeded when it has not
// completed within d, using the real clock.
func (t Task[T]) Deadline(d time.Duration) Task[T] {
	return t.DeadlineOn(clockz.RealClock, d)
}

// DeadlineOn enforces the deadline on the supplied clock. The task runs in
// its own goroutine with a canceled context once the deadline passes; a
// well-behaved task observes ctx and stops promptly.
func (t Task[T]) DeadlineOn(clock clockz.Clock, d time.Duration) Task[T] {
	return func(ctx context.Context) (T, error) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		type outcome struct {
			value T
			err   error
		}
		done := make(chan outcome, 1)
		go func() {
			v, err := t(ctx)
			done <- outcome{v, err}
		}()

		select {
		case o := <-done:
			return o.value, o.err
		case <-clock.After(d):
			cancel()
			var zero T
			return zero, context.DeadlineExceeded
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// Retried re-runs the task up to maxAttempts times with exponential backoff
// between failures (baseDelay, 2*baseDelay, 4*baseDelay, ...), using the
// real clock.
func (t Task[T]) Retried(maxAttempts int, baseDelay time.Duration) Task[T] {
	return t.RetriedOn(clockz.RealClock, maxAttempts, baseDelay)
}

// RetriedOn re-runs the task with exponential backoff on the supplied clock.
// There is no wait after the final attempt, and waits are cut short by
// context cancellation. maxAttempts below 1 is treated as 1.
func (t Task[T]) RetriedOn(clock clockz.Clock, maxAttempts int, baseDelay time.Duration) Task[T] {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return func(ctx context.Context) (T, error) {
		var lastErr error
		delay := baseDelay

		for i := 0; i < maxAttempts; i++ {
			v, err := t(ctx)
			if err == nil {
				return v, nil
			}
			lastErr = err

			if i < maxAttempts-1 {
				select {
				case <-clock.After(delay):
					delay *= 2
				case <-ctx.Done():
					var zero T
					return zero, ctx.Err()
				}
			}
		}

		var zero T
		return zero, lastErr
	}
}

// MapTask applies fn to the task's result. Failures pass through untouched.
func MapTask[A, B any](t Task[A], fn Mapper[A, B]) Task[B] {
	return func(ctx context.Context) (B, error) {
		v, err := t(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return fn(v), nil
	}
}

// FlatMapTask chains a function that itself returns a Task, short-circuiting
// at the first failure.
func FlatMapTask[A, B any](t Task[A], fn func(A) Task[B]) Task[B] {
	return func(ctx context.Context) (B, error) {
		v, err := t(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return fn(v)(ctx)
	}
}

// TaskFromEither lifts an already-computed Either into a Task.
func TaskFromEither[T any](e Either[error, T]) Task[T] {
	return func(context.Context) (T, error) {
		return UnwrapEither(e)
	}
}
