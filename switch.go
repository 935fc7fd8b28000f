// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swcase

import "sync/atomic"

// Switch is a single-use switch/case dispatcher over a scrutinee of type T.
//
// Cases are queried in source order inside a [Switch.Run] block. A matching
// case reports true and decides, through its FallThrough, whether the next
// case body runs unconditionally (Fall) or whether the switch is finished
// (Stop). A query on a finished switch aborts the rest of the block.
type Switch[T comparable] struct {
	entered   atomic.Uintptr
	value     T
	policy    FallThrough
	carry     FallThrough
	matched   bool
	defaulted bool
}

// New creates a Switch over value.
// With fallThrough set, every matching case falls through unless it says Stop.
func New[T comparable](value T, fallThrough bool) *Switch[T] {
	return &Switch[T]{value: value, policy: policy(fallThrough)}
}

// NewC creates a Switch that falls through by default, like a C switch
// without break statements. It is New(value, true).
func NewC[T comparable](value T) *Switch[T] {
	return New(value, true)
}

// Case reports whether the branch for v runs: the scrutinee equals v,
// or the previous matching case fell through.
func (s *Switch[T]) Case(v T, ft ...FallThrough) bool {
	o := s.admit(ft)
	if s.value == v || s.carry == Fall {
		s.hit(o)
		return true
	}
	return false
}

// Call is Case with an arbitrary predicate over the scrutinee.
// pred is invoked exactly once unless the switch is already finished.
func (s *Switch[T]) Call(pred func(T) bool, ft ...FallThrough) bool {
	o := s.admit(ft)
	if pred(s.value) || s.carry == Fall {
		s.hit(o)
		return true
	}
	return false
}

// Default reports whether no case has matched.
// It must be the last query of the block and may be read only once.
func (s *Switch[T]) Default() bool {
	if s.defaulted {
		misuse("default", ErrDefaultTwice)
	}
	if s.Done() {
		panic(stopSignal{})
	}
	s.defaulted = true
	return !s.matched
}

// Value returns the scrutinee.
func (s *Switch[T]) Value() T { return s.value }

// Matched reports whether any case has matched.
func (s *Switch[T]) Matched() bool { return s.matched }

// Carry returns the fall-through carried from the last matching case,
// or Inherit if none has matched.
func (s *Switch[T]) Carry() FallThrough { return s.carry }

// Done reports whether a case matched with Stop, after which every
// further query aborts the block.
func (s *Switch[T]) Done() bool {
	return s.matched && s.carry == Stop
}

// admit validates a case query and returns its override.
func (s *Switch[T]) admit(ft []FallThrough) FallThrough {
	if s.defaulted {
		misuse("case", ErrCaseAfterDefault)
	}
	if len(ft) > 1 {
		misuse("case", ErrTooManyOverrides)
	}
	if s.Done() {
		panic(stopSignal{})
	}
	if len(ft) == 1 {
		return ft[0]
	}
	return Inherit
}

func (s *Switch[T]) hit(o FallThrough) {
	s.matched = true
	if o == Inherit {
		o = s.policy
	}
	s.carry = o
}
