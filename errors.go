package kolor

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is wrapped by errors returned for unparseable expressions.
	ErrSyntax = errors.New("kolor: invalid color expression")

	// ErrUnreachable is wrapped by errors returned for conversions between
	// spaces that the conversion graph does not connect.
	ErrUnreachable = errors.New("kolor: unreachable color space")

	// ErrUnknownSpace is returned for unrecognized space identifiers.
	ErrUnknownSpace = errors.New("kolor: unknown color space")

	// ErrUnknownChannel is wrapped by errors for channel names a space does
	// not define.
	ErrUnknownChannel = errors.New("kolor: unknown channel")

	// ErrTooManyColors is returned by Random when the hue range cannot hold
	// the requested number of distinct hues.
	ErrTooManyColors = errors.New("kolor: too many colors for this hue range")

	// ErrInvalidConfig is returned by SetConfig for unknown keys and
	// malformed values.
	ErrInvalidConfig = errors.New("kolor: invalid configuration")
)

// ParseError records an expression that could not be parsed.
type ParseError struct {
	Expr string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("kolor: cannot parse color expression %q", e.Expr)
}

// Unwrap returns ErrSyntax.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// ConversionError records a failed conversion between two spaces.
type ConversionError struct {
	From, To Space
	Err      error // underlying graph error, may be nil
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("kolor: cannot convert %s to %s", e.From, e.To)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrUnreachable and the underlying error.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnreachable}
	}
	return []error{ErrUnreachable, e.Err}
}

// ChannelError records an access to a channel a space does not define.
type ChannelError struct {
	Space Space
	Name  string
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("kolor: %s has no channel %q", e.Space, e.Name)
}

// Unwrap returns ErrUnknownChannel.
func (e *ChannelError) Unwrap() error {
	return ErrUnknownChannel
}
