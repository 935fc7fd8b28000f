// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package swcase provides a switch/case dispatcher with predicate cases,
// per-case fall-through and a block-scoped lifetime.
//
// A [Switch] is created for one dispatch, queried case by case in source
// order, and discarded. Each query reports whether its branch should run,
// combining the case's own test with the fall-through carried from the
// previous matching case.
//
// # Queries
//
//   - [Switch.Case]: Equality case against the scrutinee
//   - [Switch.Call]: Predicate case over the scrutinee
//   - [Switch.Default]: True iff no case has matched (last query, read once)
//
// # Fall-Through
//
// [FallThrough] is three-valued:
//
//   - [Inherit]: Use the switch policy (no override / nothing carried yet)
//   - [Fall]: The next case body runs without regard to its own test
//   - [Stop]: The switch is finished after this body
//
// The policy is chosen at construction: [New] takes it as a bool and
// [NewC] always falls through, like a C switch without break. A per-case
// override wins over the policy in both directions.
//
// Once a case matches with Stop, the switch is finished: the next query,
// whether a case or the default, does not evaluate anything and instead
// aborts the remainder of the block. The default check is skipped too.
//
// # Scope
//
// Queries must run inside a block delimited by [Switch.Run] (or [Do],
// [DoC]). The block ends normally when the switch finishes early. Any other
// panic, including one raised by a predicate, propagates out of Run.
//
//   - [Switch.Run], [Do], [DoC]: Run a block, panicking on misuse
//   - [Switch.TryRun], [TryDo], [TryDoC]: Run a block, returning misuse as an error
//
// A Switch may be run at most once.
//
// # Misuse
//
// Misuse panics with a [*UsageError] wrapping one of:
//
//   - [ErrCaseAfterDefault]: A case queried after the default was read
//   - [ErrDefaultTwice]: The default read a second time
//   - [ErrReentered]: A Switch run twice
//   - [ErrTooManyOverrides]: A case given more than one FallThrough
//
// # Example
//
//	var out []int
//	swcase.Do(v, func(c *swcase.Switch[int]) {
//		if c.Case(1, swcase.Fall) {
//			out = append(out, 1)
//		}
//		if c.Case(2) {
//			out = append(out, 2)
//		}
//		if c.Call(func(v int) bool { return 2 < v && v < 4 }) {
//			out = append(out, 3)
//		}
//		if c.Default() {
//			out = append(out, 0)
//		}
//	})
//	// v == 1: out == [1 2]
//	// v == 3: out == [3]
//	// v == 9: out == [0]
package swcase
