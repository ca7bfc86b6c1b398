package patient

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validate trims the submitted fields and checks them. The returned error
// wraps ErrValidation and the failing field's sentinel.
func (req CreatePatientRequest) Validate() (Patient, error) {
	name := strings.TrimSpace(req.Name)
	condition := strings.TrimSpace(req.Condition)

	if name == "" {
		return Patient{}, fmt.Errorf("%w: %w", ErrValidation, ErrMissingName)
	}
	age, err := strconv.Atoi(strings.TrimSpace(string(req.Age)))
	if err != nil || age < 0 {
		return Patient{}, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidAge)
	}
	if condition == "" {
		return Patient{}, fmt.Errorf("%w: %w", ErrValidation, ErrMissingCondition)
	}

	return Patient{Name: name, Age: age, Condition: condition}, nil
}

// validationField names the field a validation error is about.
func validationField(err error) string {
	switch {
	case errors.Is(err, ErrMissingName):
		return "name"
	case errors.Is(err, ErrInvalidAge):
		return "age"
	case errors.Is(err, ErrMissingCondition):
		return "condition"
	default:
		return "unknown"
	}
}
