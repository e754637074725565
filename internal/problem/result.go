// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package problem

import "fmt"

// Unit is the success payload of operations that return nothing.
type Unit struct{}

// Result is either a Problem or a success value of type T.
type Result[T any] struct {
	value   T
	problem *Problem
}

// Success wraps v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Done is the successful Result of an operation without a payload.
func Done() Result[Unit] {
	return Success(Unit{})
}

// Failure wraps p.
func Failure[T any](p Problem) Result[T] {
	return Result[T]{problem: &p}
}

// IsSuccess reports whether r carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.problem == nil
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.problem == nil
}

// Problem returns the Problem and true, or the zero Problem and false.
func (r Result[T]) Problem() (Problem, bool) {
	if r.problem == nil {
		return Problem{}, false
	}
	return *r.problem, true
}

// Fold calls exactly one of onProblem or onSuccess.
func (r Result[T]) Fold(onProblem func(Problem), onSuccess func(T)) {
	if r.problem != nil {
		onProblem(*r.problem)
		return
	}
	onSuccess(r.value)
}

// Map converts the success value of r with fn, keeping a Problem as is.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.problem != nil {
		return Failure[U](*r.problem)
	}
	return Success(fn(r.value))
}

// Catch runs call and converts its outcome into a Result. A non-nil error is
// translated with mapErr; a panic becomes a Generic Problem carrying the
// panic value, or FallbackMessage if it has none.
func Catch[T any](call func() (T, error), mapErr func(error) Problem) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = Failure[T](panicProblem(r))
		}
	}()

	v, err := call()
	if err != nil {
		return Failure[T](mapErr(err))
	}
	return Success(v)
}

func panicProblem(r any) Problem {
	switch v := r.(type) {
	case error:
		return FromError(v)
	case string:
		return New(Generic, v)
	default:
		msg := fmt.Sprint(v)
		if msg == "<nil>" {
			msg = ""
		}
		return New(Generic, msg)
	}
}

// FlatMap chains fn onto the success value of r. A Problem of r is returned
// without calling fn.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.problem != nil {
		return Failure[U](*r.problem)
	}
	return fn(r.value)
}
