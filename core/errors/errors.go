// Package errors provides standardized error types and helpers for the BabelVault codebase.
//
// All error kinds here are deterministic validation failures: they describe
// malformed caller input or a corrupted container, never a transient
// condition, so nothing in this codebase retries them.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the codec error kinds
var (
	// ErrMalformedBlock indicates a symbol block of the wrong length or with a symbol outside the alphabet
	ErrMalformedBlock = errors.New("malformed block")
	// ErrAddressOutOfRange indicates an address whose bounded sub-index exceeds its declared range
	ErrAddressOutOfRange = errors.New("address out of range")
	// ErrContainerParse indicates a malformed container: missing or non-numeric size line, bad address line
	ErrContainerParse = errors.New("container parse error")
	// ErrByteLengthMismatch indicates the reconstructed data does not match the stored original size
	ErrByteLengthMismatch = errors.New("byte length mismatch")
)

// MalformedBlockError reports a symbol block that cannot be addressed:
// wrong length or a symbol that is not part of the alphabet.
type MalformedBlockError struct {
	Position int    // Symbol position within the block, -1 if not applicable
	Symbol   byte   // Offending symbol, if any
	Message  string // Human-readable error message
	Err      error  // Underlying error, if any
}

func (e *MalformedBlockError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("malformed block at symbol %d (%q): %s", e.Position, e.Symbol, e.Message)
	}
	return fmt.Sprintf("malformed block: %s", e.Message)
}

func (e *MalformedBlockError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformedBlock
}

// AddressOutOfRangeError reports an address whose bounded sub-index lies
// outside its declared fixed range, or whose top-level identifier cannot
// correspond to any page.
type AddressOutOfRangeError struct {
	Level string // Coordinate level that failed (e.g., "wall", "page", "identifier")
	Value int64  // Offending value, when it fits a machine word
	Max   int64  // Exclusive upper bound of the level, 0 if unbounded
	Err   error  // Underlying error, if any
}

func (e *AddressOutOfRangeError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("address %s %d out of range [0,%d)", e.Level, e.Value, e.Max)
	}
	return fmt.Sprintf("address %s out of range", e.Level)
}

func (e *AddressOutOfRangeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrAddressOutOfRange
}

// ContainerParseError reports a malformed container record.
type ContainerParseError struct {
	Field   string // Field being parsed (e.g., "size", "address")
	Line    int    // 1-based line number, 0 if unknown
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ContainerParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("container line %d: bad %s: %s", e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("container: bad %s: %s", e.Field, e.Message)
}

func (e *ContainerParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrContainerParse
}

// ByteLengthMismatchError reports that the reconstructed symbol or byte
// count cannot satisfy the stored original size. It signals corruption.
type ByteLengthMismatchError struct {
	Want int64 // Count required by the stored size
	Got  int64 // Count actually available
	Unit string // "bytes", "symbols" or "pages"
	Err  error // Underlying error, if any
}

func (e *ByteLengthMismatchError) Error() string {
	return fmt.Sprintf("byte length mismatch: need %d %s, have %d", e.Want, e.Unit, e.Got)
}

func (e *ByteLengthMismatchError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrByteLengthMismatch
}

// Helper functions for creating common errors

// NewMalformedBlock creates a MalformedBlockError for a block-level problem.
func NewMalformedBlock(message string) *MalformedBlockError {
	return &MalformedBlockError{Position: -1, Message: message}
}

// NewMalformedSymbol creates a MalformedBlockError for a specific symbol position.
func NewMalformedSymbol(position int, symbol byte, message string) *MalformedBlockError {
	return &MalformedBlockError{Position: position, Symbol: symbol, Message: message}
}

// NewAddressOutOfRange creates an AddressOutOfRangeError for a bounded level.
func NewAddressOutOfRange(level string, value, max int64) *AddressOutOfRangeError {
	return &AddressOutOfRangeError{Level: level, Value: value, Max: max}
}

// NewContainerParse creates a ContainerParseError.
func NewContainerParse(field string, line int, message string) *ContainerParseError {
	return &ContainerParseError{Field: field, Line: line, Message: message}
}

// NewByteLengthMismatch creates a ByteLengthMismatchError.
func NewByteLengthMismatch(unit string, want, got int64) *ByteLengthMismatchError {
	return &ByteLengthMismatchError{Want: want, Got: got, Unit: unit}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
