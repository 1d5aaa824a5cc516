package mxcanvas

import (
	"errors"
	"fmt"
)

var (
	// ErrStateUnderflow is returned by Restore when no state has been saved.
	ErrStateUnderflow = errors.New("mxcanvas: restore without matching save")

	// ErrParse is matched (using errors.Is) by the errors
	// returned for malformed directive arguments.
	ErrParse = errors.New("mxcanvas: parse error")

	errNegativeLength = errors.New("negative length")
)

// DashPatternError is returned for a dash pattern with a malformed
// or negative length.
type DashPatternError struct {
	Pattern string // the complete input
	Token   string // the invalid length
	Err     error
}

func (e *DashPatternError) Error() string {
	return fmt.Sprintf("mxcanvas: invalid dash pattern %q: token %q: %s", e.Pattern, e.Token, e.Err)
}

func (e *DashPatternError) Unwrap() error { return e.Err }

func (e *DashPatternError) Is(target error) bool { return target == ErrParse }
