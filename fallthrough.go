// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swcase

// FallThrough is the three-valued fall-through setting of a case.
//
// As a per-case override, Inherit means "use the switch policy".
// As the carried state of a switch, Inherit means no case has matched yet.
type FallThrough uint8

const (
	// Inherit leaves the decision to the switch policy.
	Inherit FallThrough = iota
	// Fall continues into the next case body regardless of its predicate.
	Fall
	// Stop ends the switch after the current case body.
	Stop
)

// String returns the name of the setting.
func (f FallThrough) String() string {
	switch f {
	case Inherit:
		return "inherit"
	case Fall:
		return "fall"
	case Stop:
		return "stop"
	}
	return "invalid"
}

// policy maps the boolean constructor argument to a FallThrough.
func policy(fallThrough bool) FallThrough {
	if fallThrough {
		return Fall
	}
	return Stop
}
