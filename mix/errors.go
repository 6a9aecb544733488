package mix

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument reports a parameter that is not a usable number or name.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDomain reports a numeric parameter outside its allowed range.
	ErrDomain = errors.New("value out of range")
	// ErrUnsupportedType reports a component Combine does not know how to fold.
	ErrUnsupportedType = errors.New("unsupported component type")
)

func checkFinite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("mix: %s must be a finite number, got %v: %w", field, value, ErrInvalidArgument)
	}
	return nil
}

func checkNonNegative(field string, value float64) error {
	if err := checkFinite(field, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("mix: %s can not be smaller than 0, got %v: %w", field, value, ErrDomain)
	}
	return nil
}
