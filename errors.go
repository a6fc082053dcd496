package lottie

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Animation methods.
var (
	// ErrClosed is returned by mutating calls on a closed Animation.
	ErrClosed = errors.New("lottie: animation is closed")

	// ErrNotImplemented is returned by SetProperty for property kinds the
	// binding does not forward to the engine (TransformAnchor, TransformOpacity).
	ErrNotImplemented = errors.New("lottie: property not implemented")

	// ErrInvalidProperty is returned by SetProperty for a zero Property.
	ErrInvalidProperty = errors.New("lottie: invalid property")

	// ErrRenderInFlight is returned when a render is requested while an
	// asynchronous render has not been flushed.
	ErrRenderInFlight = errors.New("lottie: asynchronous render in flight")

	// ErrInvalidSurface is returned for surfaces with a non-positive size or
	// a stride that cannot hold one row of ARGB32 pixels.
	ErrInvalidSurface = errors.New("lottie: invalid surface")

	// ErrBufferTooSmall is returned when a surface buffer is shorter than
	// height * bytesPerLine bytes.
	ErrBufferTooSmall = errors.New("lottie: surface buffer too small")

	// ErrInvalidFrame is returned for negative frame numbers.
	ErrInvalidFrame = errors.New("lottie: invalid frame number")

	// ErrEngineNotAvailable is returned when no engine is compiled in or the
	// requested one is not registered.
	ErrEngineNotAvailable = errors.New("lottie: engine not available")
)

// EncodingError reports a string that cannot cross the engine boundary
// because it contains a NUL byte.
type EncodingError struct {
	// Field names the offending argument ("data", "identifier",
	// "resource path" or "keypath").
	Field string
	// Offset is the byte offset of the first NUL.
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("lottie: %s contains NUL byte at offset %d", e.Field, e.Offset)
}

// DataError reports animation content that could not be loaded: the engine
// rejected it, or its source could not be read or represented as text.
type DataError struct {
	// Source is the file path or identifier of the content.
	Source string
	// Reason is a short description of the failure.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *DataError) Error() string {
	var b strings.Builder
	b.WriteString("lottie: ")
	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// checkBoundary returns an *EncodingError if s contains a NUL byte.
func checkBoundary(field, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &EncodingError{Field: field, Offset: i}
	}
	return nil
}
