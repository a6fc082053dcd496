// Package rlottie binds librlottie through cgo.
//
// The engine is compiled only with the "rlottie" build tag and cgo enabled.
// librlottie and its headers are located with pkg-config:
//
//	// Build with: go build -tags rlottie
//	import _ "github.com/gogpu/lottie/engine/rlottie"
//
// Without the tag the package registers a factory returning nil, and
// engine.Default selects the software engine instead.
//
// # Property Overrides
//
// lottie_animation_property_override is a C variadic function, which cgo
// cannot call. Small C wrappers forward one, two or three doubles.
//
// # Asynchronous Rendering
//
// lottie_animation_render_async keeps the buffer pointer after it returns.
// The first element of the buffer is pinned with runtime.Pinner until
// Flush completes.
package rlottie
