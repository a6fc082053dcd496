package engine

import (
	"errors"
)

// Common engine errors.
var (
	// ErrNotAvailable is returned when a requested engine is not available.
	ErrNotAvailable = errors.New("engine: not available")

	// ErrRejected is returned by Load when the engine cannot instantiate
	// an animation from the given content.
	ErrRejected = errors.New("engine: content rejected")
)

// Property is the native tag of a property override.
// The numbering follows Lottie_Animation_Property in rlottie_capi.h.
type Property int

// Property tags.
const (
	PropertyFillColor Property = iota
	PropertyFillOpacity
	PropertyStrokeColor
	PropertyStrokeOpacity
	PropertyStrokeWidth
	PropertyTransformAnchor
	PropertyTransformPosition
	PropertyTransformScale
	PropertyTransformRotation
	PropertyTransformOpacity
)

var propertyNames = [...]string{
	PropertyFillColor:         "FillColor",
	PropertyFillOpacity:       "FillOpacity",
	PropertyStrokeColor:       "StrokeColor",
	PropertyStrokeOpacity:     "StrokeOpacity",
	PropertyStrokeWidth:       "StrokeWidth",
	PropertyTransformAnchor:   "TransformAnchor",
	PropertyTransformPosition: "TransformPosition",
	PropertyTransformScale:    "TransformScale",
	PropertyTransformRotation: "TransformRotation",
	PropertyTransformOpacity:  "TransformOpacity",
}

// String returns the property name.
func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return "Unknown"
	}
	return propertyNames[p]
}

// Arity returns the number of numeric arguments the engine expects for p.
// It is 0 for unknown tags and for TransformAnchor and TransformOpacity,
// which engines do not forward.
func (p Property) Arity() int {
	switch p {
	case PropertyFillColor, PropertyStrokeColor:
		return 3
	case PropertyTransformPosition, PropertyTransformScale:
		return 2
	case PropertyFillOpacity, PropertyStrokeOpacity, PropertyStrokeWidth,
		PropertyTransformRotation:
		return 1
	default:
		return 0
	}
}

// Marker is a named frame range authored into an animation.
type Marker struct {
	Name  string
	Start int
	End   int
}

// Animation is the engine-owned state behind one loaded animation.
//
// Implementations are not required to be safe for concurrent use; callers
// sequence every call on one Animation. Buffers passed to Render and
// RenderAsync hold ARGB32 premultiplied pixels, bytesPerLine is in bytes.
type Animation interface {
	// Size returns the default composition size in pixels.
	Size() (width, height int)

	// Duration returns the playback duration in seconds.
	Duration() float64

	// TotalFrames returns the number of frames.
	TotalFrames() int

	// FrameRate returns frames per second.
	FrameRate() float64

	// FrameAtPos maps a normalized position in [0, 1] to a frame number.
	FrameAtPos(pos float32) int

	// Markers returns the authored markers.
	Markers() []Marker

	// Override applies a property override to every node matched by keypath.
	// Unmatched keypaths are ignored.
	Override(prop Property, keypath string, args ...float64)

	// Render rasterizes frame into buf and returns when done.
	Render(frame int, buf []uint32, width, height, bytesPerLine int)

	// RenderAsync starts rasterizing frame into buf and returns immediately.
	// buf must not be touched until Flush returns.
	RenderAsync(frame int, buf []uint32, width, height, bytesPerLine int)

	// Flush blocks until the last RenderAsync completed. It is a no-op when
	// nothing is in flight.
	Flush()

	// Destroy releases the engine state. The Animation must not be used
	// afterwards.
	Destroy()
}

// Engine creates animations from content.
type Engine interface {
	// Name returns the engine identifier (e.g., "rlottie", "software").
	Name() string

	// Load instantiates an animation. key identifies the content for model
	// caching, resourcePath resolves relative assets.
	Load(data, key, resourcePath string) (Animation, error)
}

// ModelCacher is implemented by engines that cache parsed models by key.
type ModelCacher interface {
	// SetModelCacheSize sets the number of cached models; 0 disables caching.
	SetModelCacheSize(size int)
}
