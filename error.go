// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swcase

import "errors"

var (
	// ErrCaseAfterDefault reports a case query after the default branch was read.
	ErrCaseAfterDefault = errors.New("case after default is prohibited")
	// ErrDefaultTwice reports a second read of the default branch.
	ErrDefaultTwice = errors.New("default read twice")
	// ErrReentered reports a second Run or TryRun on the same Switch.
	ErrReentered = errors.New("switch entered twice")
	// ErrTooManyOverrides reports a case given more than one FallThrough.
	ErrTooManyOverrides = errors.New("more than one fall-through override")
)

// UsageError records a misuse of a Switch.
// Misuse panics with a *UsageError; TryRun returns it as an error.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return "swcase " + e.Op + ": " + e.Err.Error()
}

func (e *UsageError) Unwrap() error { return e.Err }

func misuse(op string, err error) {
	panic(&UsageError{Op: op, Err: err})
}

// stopSignal aborts the rest of a switch block.
// It is raised by queries on a terminated switch and is only ever
// recovered by Run and TryRun.
type stopSignal struct{}
