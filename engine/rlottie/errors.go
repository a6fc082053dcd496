package rlottie

import "errors"

// ErrEmbeddedNUL is returned by Load when a string cannot be passed to C
// because it contains a NUL byte.
var ErrEmbeddedNUL = errors.New("rlottie: string contains NUL byte")
