package multisum

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is the kind of every error returned for malformed
// input. Check for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which input was rejected and why.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidArgument, e.Param, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(param string, reason string, args ...interface{}) error {
	return errors.WithStack(&ArgumentError{
		Param:  param,
		Reason: fmt.Sprintf(reason, args...),
	})
}

// IsInvalidArgument reports whether err was caused by malformed input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// ValidateBases checks that bases is non-empty and has no zero element.
func ValidateBases(bases []uint64) error {
	if len(bases) == 0 {
		return invalid("bases", "must not be empty")
	}
	for i, d := range bases {
		if d == 0 {
			return invalid("bases", "must be positive (bases[%d] is 0)", i)
		}
	}
	return nil
}

// Validate checks the arguments of SumMultiples and ScanSum.
func Validate(bases []uint64, limit uint64) error {
	if limit == 0 {
		return invalid("limit", "must be positive")
	}
	return ValidateBases(bases)
}
