package plugin

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for a parameter index outside [0, count).
	ErrIndexOutOfRange = errors.New("parameter index out of range")
	// ErrNotPrepared is returned by ProcessBlock before a successful Prepare.
	ErrNotPrepared = errors.New("processor not prepared")
	// ErrBlockTooLarge is returned when a block exceeds the prepared maximum size.
	ErrBlockTooLarge = errors.New("block exceeds maximum block size")
	// ErrInvalidSpec is returned by Prepare for a bad sample rate or block size.
	ErrInvalidSpec = errors.New("invalid process spec")
	// ErrInvalidValue is returned when a parameter write is NaN.
	ErrInvalidValue = errors.New("invalid parameter value")
	// ErrNilUnit is returned when an adapter is built without a unit.
	ErrNilUnit = errors.New("nil processing unit")
	// ErrDispatchIndex is returned when a dispatch table names an index
	// that has no parameter.
	ErrDispatchIndex = errors.New("dispatch entry references unknown parameter")
)

// ConfigError reports why an adapter could not be constructed.
type ConfigError struct {
	Processor string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("plugin %q: configuration: %v", e.Processor, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IndexError reports a parameter access with a bad index.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %d (have %d parameters)", ErrIndexOutOfRange, e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
