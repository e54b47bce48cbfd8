// Package acceptance defines the three-valued classification used by the
// incremental builders: a word is known accepted, known rejected, or unknown.
//
// The values form a flat information lattice:
//
//	   True   False
//	      \   /
//	    DontKnow
//
// DontKnow is the zero value, so a freshly allocated state is unclassified.
package acceptance

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for acceptance conversions.
var (
	// ErrDontKnow is returned when DontKnow is converted to a boolean.
	ErrDontKnow = errors.New("acceptance: value is DontKnow")

	// ErrConflict is returned by Merge when True meets False.
	ErrConflict = errors.New("acceptance: conflicting values")

	// ErrUnknownValue is returned by UnmarshalText for unrecognized input.
	ErrUnknownValue = errors.New("acceptance: unknown value")
)

// Acceptance is the classification of a word or a state.
type Acceptance uint8

const (
	// DontKnow means no information has been recorded.
	DontKnow Acceptance = iota
	// True means accepted.
	True
	// False means rejected.
	False
)

// FromBool maps true to True and false to False.
func FromBool(b bool) Acceptance {
	if b {
		return True
	}

	return False
}

// IsDefined reports whether a is True or False.
func (a Acceptance) IsDefined() bool {
	return a == True || a == False
}

// Bool converts a defined value to a boolean.
// DontKnow yields ErrDontKnow.
func (a Acceptance) Bool() (bool, error) {
	switch a {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return false, ErrDontKnow
	}
}

// Conflicts reports whether a and b are both defined and differ.
// DontKnow conflicts with nothing.
func (a Acceptance) Conflicts(b Acceptance) bool {
	return a.IsDefined() && b.IsDefined() && a != b
}

// ConflictsWith reports whether a contradicts the boolean b.
func (a Acceptance) ConflictsWith(b bool) bool {
	return a.Conflicts(FromBool(b))
}

// Merge returns the least upper bound of a and b:
// DontKnow is the identity, equal values merge to themselves,
// and True with False yields ErrConflict.
func Merge(a, b Acceptance) (Acceptance, error) {
	switch {
	case a == b:
		return a, nil
	case a == DontKnow:
		return b, nil
	case b == DontKnow:
		return a, nil
	default:
		return DontKnow, fmt.Errorf("%w: %s vs %s", ErrConflict, a, b)
	}
}

// String returns "true", "false" or "?".
func (a Acceptance) String() string {
	switch a {
	case True:
		return "true"
	case False:
		return "false"
	case DontKnow:
		return "?"
	default:
		return fmt.Sprintf("Acceptance(%d)", uint8(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Acceptance) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Accepted spellings (case-insensitive): true/t/yes/+/1, false/f/no/-/0,
// ?/dontknow/unknown and the empty string.
func (a *Acceptance) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "true", "t", "yes", "+", "1":
		*a = True
	case "false", "f", "no", "-", "0":
		*a = False
	case "?", "dontknow", "dont_know", "unknown", "":
		*a = DontKnow
	default:
		return fmt.Errorf("%w: %q", ErrUnknownValue, text)
	}

	return nil
}
