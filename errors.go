package rlekit

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is the error interface returned by everything in this module.
// Errors form chains: every error derived with WithMessage or Wrap still
// matches its ancestors with errors.Is, so callers can test against the
// sentinel values below regardless of how much context got layered on top.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseCodecError string

const rootError = baseCodecError("")

var ErrInvalidControlByte = rootError.WithMessage("Control byte has no valid decoding")
var ErrTruncatedStream = rootError.WithMessage("Compressed stream ends mid-operation")
var ErrUnknownVariant = rootError.WithMessage("Unknown RLE variant")
var ErrUnencodableOp = rootError.WithMessage("Operation not representable in this variant")
var ErrTableMismatch = rootError.WithMessage("Generated table disagrees with rule set")
var ErrBadFixture = rootError.WithMessage("Malformed test fixture")
var ErrCheckFailed = rootError.WithMessage("Conformance check failed")

func (e baseCodecError) Error() string {
	return string(e)
}

func (e baseCodecError) RootCause() CodecError {
	return e
}

func (e baseCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
