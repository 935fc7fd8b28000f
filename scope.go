// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swcase

// Scoped entry and exit.
// A switch block runs inside Run, which plays the role of the delimiter:
// queries on a finished switch raise a stop signal that unwinds to the
// nearest Run and ends the block normally.

// Run executes body with s and returns when body returns or the switch
// finishes. Panics other than the internal stop signal, including
// *UsageError and panics raised by predicates, propagate unchanged.
//
// A Switch may be run at most once; running it again panics.
func (s *Switch[T]) Run(body func(*Switch[T])) {
	s.enter()
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopSignal); ok {
				return
			}
			panic(r)
		}
	}()
	body(s)
}

// TryRun is the non-panicking variant of Run.
// Misuse of s inside body, and running s twice, is returned as a
// *UsageError instead of panicking. Other panics still propagate.
func (s *Switch[T]) TryRun(body func(*Switch[T])) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case stopSignal:
			case *UsageError:
				err = v
			default:
				panic(r)
			}
		}
	}()
	s.enter()
	body(s)
	return nil
}

func (s *Switch[T]) enter() {
	if s.entered.Add(1) != 1 {
		misuse("run", ErrReentered)
	}
}

// Do runs body over a new non-fall-through Switch on value.
//
// Example:
//
//	swcase.Do(n, func(c *swcase.Switch[int]) {
//	    if c.Case(1, swcase.Fall) {
//	        out = append(out, "one")
//	    }
//	    if c.Case(2) {
//	        out = append(out, "two")
//	    }
//	    if c.Default() {
//	        out = append(out, "other")
//	    }
//	})
func Do[T comparable](value T, body func(*Switch[T])) {
	New(value, false).Run(body)
}

// DoC runs body over a new fall-through Switch on value.
func DoC[T comparable](value T, body func(*Switch[T])) {
	NewC(value).Run(body)
}

// TryDo is Do with TryRun semantics.
func TryDo[T comparable](value T, body func(*Switch[T])) error {
	return New(value, false).TryRun(body)
}

// TryDoC is DoC with TryRun semantics.
func TryDoC[T comparable](value T, body func(*Switch[T])) error {
	return NewC(value).TryRun(body)
}
