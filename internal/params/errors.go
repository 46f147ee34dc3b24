package params

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is wrapped by every ConfigurationError
var ErrInvalidParameter = errors.New("invalid parameter")

// ConfigurationError reports a request parameter that failed validation
type ConfigurationError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v %s=%q: %s", ErrInvalidParameter, e.Param, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(param, value, reason string) error {
	return &ConfigurationError{Param: param, Value: value, Reason: reason}
}
