package core

import (
	"errors"
	"fmt"
)

// ErrInvalidLine is matched by every placement rejection via errors.Is.
var ErrInvalidLine = errors.New("invalid line")

// ErrGridNotEmpty is returned by Start when the grid already holds cards.
var ErrGridNotEmpty = errors.New("grid is not empty")

// Reason classifies why a placement was rejected.
type Reason string

const (
	ReasonStructural       Reason = "STRUCTURAL"
	ReasonNotConnected     Reason = "NOT_CONNECTED"
	ReasonOccupied         Reason = "OCCUPIED"
	ReasonNoMatch          Reason = "NO_MATCH"
	ReasonWildcardConflict Reason = "WILDCARD_CONFLICT"
)

// ParseReason parses a reason code.
func ParseReason(s string) (Reason, bool) {
	switch r := Reason(s); r {
	case ReasonStructural, ReasonNotConnected, ReasonOccupied, ReasonNoMatch, ReasonWildcardConflict:
		return r, true
	}
	return "", false
}

// severity ranks reasons from least to most specific.
func (r Reason) severity() int {
	switch r {
	case ReasonStructural:
		return 1
	case ReasonNotConnected:
		return 2
	case ReasonOccupied:
		return 3
	case ReasonNoMatch:
		return 4
	case ReasonWildcardConflict:
		return 5
	default:
		return 0
	}
}

// InvalidLineError describes a rejected placement.
type InvalidLineError struct {
	Reason  Reason
	Message string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Reason, e.Message)
}

// Is makes every InvalidLineError match ErrInvalidLine.
func (e *InvalidLineError) Is(target error) bool {
	return target == ErrInvalidLine
}

// ReasonOf extracts the rejection reason from err.
func ReasonOf(err error) (Reason, bool) {
	var ile *InvalidLineError
	if errors.As(err, &ile) {
		return ile.Reason, true
	}
	return "", false
}

func invalid(reason Reason, format string, args ...any) *InvalidLineError {
	return &InvalidLineError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func structuralError(msg string) *InvalidLineError {
	return &InvalidLineError{Reason: ReasonStructural, Message: msg}
}
