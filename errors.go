package polysandbox

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when shape or scene parameters cannot
	// produce a valid vertex list.
	ErrConfiguration = errors.New("polysandbox: invalid configuration")

	// ErrInvariantViolation is returned when the simulation is asked for an
	// active entity while it holds none.
	ErrInvariantViolation = errors.New("polysandbox: invariant violation")

	// ErrUnknownHandle is returned by surfaces asked to delete a primitive
	// they never created or already removed.
	ErrUnknownHandle = errors.New("polysandbox: unknown surface handle")
)

// ConfigError describes a rejected construction parameter.
type ConfigError struct {
	Shape  string
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("polysandbox: %s: %s %s", e.Shape, e.Param, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func configErr(shape, param, reason string) error {
	return &ConfigError{Shape: shape, Param: param, Reason: reason}
}
