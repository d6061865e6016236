// Package pipe provides a small fluent chain for composing fallible
// transforms left to right. Once a step fails, later steps are skipped
// and the first error is kept.
package pipe

import (
	"time"

	"github.com/google/uuid"
)

// Chain carries a value through a sequence of transforms. Each chain
// has a run id and start time for log correlation.
type Chain[T any] struct {
	id        uuid.UUID
	startedAt time.Time
	value     T
	err       error
}

func From[T any](v T) Chain[T] {
	return Chain[T]{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		value:     v,
	}
}

// Then applies a fallible transform to the current value.
func (c Chain[T]) Then(fn func(T) (T, error)) Chain[T] {
	if c.err != nil {
		return c
	}

	v, err := fn(c.value)
	if err != nil {
		c.err = err
		return c
	}

	c.value = v
	return c
}

// Map applies a transform that cannot fail.
func (c Chain[T]) Map(fn func(T) T) Chain[T] {
	if c.err != nil {
		return c
	}
	c.value = fn(c.value)
	return c
}

// Tap runs a side effect on the current value; failed chains skip it.
func (c Chain[T]) Tap(fn func(T)) Chain[T] {
	if c.err == nil {
		fn(c.value)
	}
	return c
}

// Value returns the final value and the first error, if any.
func (c Chain[T]) Value() (T, error) {
	return c.value, c.err
}

func (c Chain[T]) Err() error {
	return c.err
}

func (c Chain[T]) ID() uuid.UUID {
	return c.id
}

func (c Chain[T]) StartedAt() time.Time {
	return c.startedAt
}

func (c Chain[T]) Elapsed() time.Duration {
	return time.Since(c.startedAt)
}

// Map transforms the chained value to a new type, keeping run identity
// and any earlier error.
func Map[In, Out any](c Chain[In], fn func(In) Out) Chain[Out] {
	out := Chain[Out]{id: c.id, startedAt: c.startedAt, err: c.err}
	if c.err == nil {
		out.value = fn(c.value)
	}
	return out
}

// Switch transforms the chained value to a new type through a fallible
// step.
func Switch[In, Out any](c Chain[In], fn func(In) (Out, error)) Chain[Out] {
	out := Chain[Out]{id: c.id, startedAt: c.startedAt, err: c.err}
	if c.err != nil {
		return out
	}

	v, err := fn(c.value)
	if err != nil {
		out.err = err
		return out
	}

	out.value = v
	return out
}

// Finally collapses the chain to a final value via handlers.
func Finally[T, Out any](c Chain[T], onSuccess func(T) Out, onError func(error) Out) Out {
	if c.err != nil {
		return onError(c.err)
	}
	return onSuccess(c.value)
}
