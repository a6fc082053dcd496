package lottie

import (
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FromFile loads the animation stored at path.
//
// The file is read as text: UTF-8, with or without a byte order mark, or
// UTF-16 with a byte order mark. The identifier is the base name of the
// file and the resource path is the absolute file path. Read failures and
// paths that are not valid UTF-8 are reported as *DataError.
func FromFile(path string, opts ...Option) (*Animation, error) {
	identifier := filepath.Base(path)
	resourcePath, err := filepath.Abs(path)
	if err != nil {
		resourcePath = path
	}
	if !utf8.ValidString(identifier) || !utf8.ValidString(resourcePath) {
		return nil, &DataError{Source: path, Reason: "path is not valid UTF-8"}
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, &DataError{Source: path, Reason: "could not read file", Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := readText(f)
	if err != nil {
		return nil, &DataError{Source: path, Reason: "could not read file as text", Err: err}
	}
	return FromData(data, identifier, resourcePath, opts...)
}

// FromReader loads an animation from r, decoded like FromFile.
// The content is registered under a random identifier, so streams never
// share an engine model cache entry.
func FromReader(r io.Reader, resourcePath string, opts ...Option) (*Animation, error) {
	identifier := uuid.NewString()
	data, err := readText(r)
	if err != nil {
		return nil, &DataError{Source: identifier, Reason: "could not read stream as text", Err: err}
	}
	return FromData(data, identifier, resourcePath, opts...)
}

// readText reads r to the end as UTF-8 text. A leading byte order mark
// selects UTF-8 or UTF-16 and is dropped; without one the content must be
// valid UTF-8.
func readText(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(encoding.UTF8Validator)
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
