// Package result provides the uniform success/failure envelope returned by
// every domain operation in the engine. Operations never panic across a
// package boundary; they report problems as ordered message strings instead.
package result

import (
	"fmt"
	"strings"
)

// Result carries an optional payload plus a list of error messages. A Result
// is successful only when it has a payload and no messages.
type Result[T any] struct {
	Payload  T
	Messages []string

	attached bool
}

// Ok returns a successful Result wrapping payload.
func Ok[T any](payload T) *Result[T] {
	return &Result[T]{Payload: payload, attached: true}
}

// Fail returns a failed Result carrying the given messages.
func Fail[T any](msgs ...string) *Result[T] {
	return &Result[T]{Messages: msgs}
}

// Failf returns a failed Result with a single formatted message.
func Failf[T any](format string, args ...any) *Result[T] {
	return &Result[T]{Messages: []string{fmt.Sprintf(format, args...)}}
}

// Attach sets the payload. A payload must be attached for the Result to be
// considered successful.
func (r *Result[T]) Attach(payload T) {
	r.Payload = payload
	r.attached = true
}

// AddError appends a message, marking the Result as failed.
func (r *Result[T]) AddError(msg string) {
	r.Messages = append(r.Messages, msg)
}

// AddErrorf appends a formatted message.
func (r *Result[T]) AddErrorf(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

// AddErrors appends messages copied from another operation's Result.
func (r *Result[T]) AddErrors(msgs []string) {
	r.Messages = append(r.Messages, msgs...)
}

// Success reports whether the operation completed: no messages and a payload
// attached.
func (r *Result[T]) Success() bool {
	return len(r.Messages) == 0 && r.attached
}

// Err bridges the envelope into plain error handling: nil on success, the
// collected messages as one error otherwise.
func (r *Result[T]) Err() error {
	if r.Success() {
		return nil
	}
	if len(r.Messages) == 0 {
		return fmt.Errorf("operation produced no payload")
	}
	return fmt.Errorf("%s", strings.Join(r.Messages, "; "))
}
