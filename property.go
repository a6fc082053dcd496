package lottie

import (
	"fmt"

	"github.com/gogpu/lottie/engine"
)

// PropertyValue is the closed set of override values:
// FillColor, FillOpacity, StrokeColor, StrokeOpacity, StrokeWidth,
// TransformAnchor, TransformPosition, TransformScale, TransformRotation
// and TransformOpacity.
//
// Values are built through the New* functions, which check the value range.
type PropertyValue interface {
	// native returns the engine tag and argument list of the value.
	// Kinds the binding does not forward return ErrNotImplemented.
	native() (engine.Property, []float64, error)
}

// FillColor sets the fill color. Channels are in [0, 1].
type FillColor struct{ R, G, B float64 }

// FillOpacity sets the fill opacity in percent.
type FillOpacity float64

// StrokeColor sets the stroke color. Channels are in [0, 1].
type StrokeColor struct{ R, G, B float64 }

// StrokeOpacity sets the stroke opacity in percent.
type StrokeOpacity float64

// StrokeWidth sets the stroke width in composition units.
type StrokeWidth float64

// TransformAnchor would set the transform anchor point. It is not supported.
type TransformAnchor float64

// TransformPosition sets the transform position in composition units.
type TransformPosition struct{ X, Y int }

// TransformScale sets the transform scale in percent.
type TransformScale struct{ W, H float64 }

// TransformRotation sets the transform rotation in degrees.
type TransformRotation float64

// TransformOpacity would set the transform opacity in percent. It is not
// forwarded to the engine.
type TransformOpacity float64

func (v FillColor) native() (engine.Property, []float64, error) {
	return engine.PropertyFillColor, []float64{v.R, v.G, v.B}, nil
}

func (v FillOpacity) native() (engine.Property, []float64, error) {
	return engine.PropertyFillOpacity, []float64{float64(v)}, nil
}

func (v StrokeColor) native() (engine.Property, []float64, error) {
	return engine.PropertyStrokeColor, []float64{v.R, v.G, v.B}, nil
}

func (v StrokeOpacity) native() (engine.Property, []float64, error) {
	return engine.PropertyStrokeOpacity, []float64{float64(v)}, nil
}

func (v StrokeWidth) native() (engine.Property, []float64, error) {
	return engine.PropertyStrokeWidth, []float64{float64(v)}, nil
}

func (v TransformAnchor) native() (engine.Property, []float64, error) {
	return engine.PropertyTransformAnchor, nil, ErrNotImplemented
}

func (v TransformPosition) native() (engine.Property, []float64, error) {
	return engine.PropertyTransformPosition, []float64{float64(v.X), float64(v.Y)}, nil
}

func (v TransformScale) native() (engine.Property, []float64, error) {
	return engine.PropertyTransformScale, []float64{v.W, v.H}, nil
}

func (v TransformRotation) native() (engine.Property, []float64, error) {
	return engine.PropertyTransformRotation, []float64{float64(v)}, nil
}

func (v TransformOpacity) native() (engine.Property, []float64, error) {
	return engine.PropertyTransformOpacity, nil, ErrNotImplemented
}

// Property is a validated override value paired with its engine tag.
// The zero Property is invalid.
type Property struct {
	value PropertyValue
	tag   engine.Property
}

func newProperty(v PropertyValue) Property {
	tag, _, _ := v.native()
	return Property{value: v, tag: tag}
}

// Value returns the override value, or nil for the zero Property.
func (p Property) Value() PropertyValue {
	return p.value
}

// Tag returns the engine tag the property maps to.
func (p Property) Tag() engine.Property {
	return p.tag
}

// String returns a description such as "FillColor{R:1 G:0 B:0}" or
// "FillOpacity(40)".
func (p Property) String() string {
	switch v := p.value.(type) {
	case nil:
		return "Property(invalid)"
	case FillColor, StrokeColor, TransformPosition, TransformScale:
		return fmt.Sprintf("%s%+v", p.tag, v)
	default:
		return fmt.Sprintf("%s(%v)", p.tag, v)
	}
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func isColor(r, g, b float64) bool {
	return inRange(r, 0, 1) && inRange(g, 0, 1) && inRange(b, 0, 1)
}

func isPercent(v float64) bool {
	return inRange(v, 0, 100)
}

// NewFillColor returns a fill color property. ok is false unless every
// channel is in [0, 1].
func NewFillColor(r, g, b float64) (p Property, ok bool) {
	if !isColor(r, g, b) {
		return Property{}, false
	}
	return newProperty(FillColor{R: r, G: g, B: b}), true
}

// NewFillOpacity returns a fill opacity property. ok is false unless
// v is in [0, 100].
func NewFillOpacity(v float64) (p Property, ok bool) {
	if !isPercent(v) {
		return Property{}, false
	}
	return newProperty(FillOpacity(v)), true
}

// NewStrokeColor returns a stroke color property. ok is false unless every
// channel is in [0, 1].
func NewStrokeColor(r, g, b float64) (p Property, ok bool) {
	if !isColor(r, g, b) {
		return Property{}, false
	}
	return newProperty(StrokeColor{R: r, G: g, B: b}), true
}

// NewStrokeOpacity returns a stroke opacity property. ok is false unless
// v is in [0, 100].
func NewStrokeOpacity(v float64) (p Property, ok bool) {
	if !isPercent(v) {
		return Property{}, false
	}
	return newProperty(StrokeOpacity(v)), true
}

// NewStrokeWidth returns a stroke width property. ok is false for negative
// widths and NaN.
func NewStrokeWidth(v float64) (p Property, ok bool) {
	if !(v >= 0) {
		return Property{}, false
	}
	return newProperty(StrokeWidth(v)), true
}

// NewTransformAnchor always reports ok == false: anchor overrides are not
// supported.
func NewTransformAnchor(float64) (p Property, ok bool) {
	return Property{}, false
}

// NewTransformPosition returns a transform position property.
func NewTransformPosition(x, y int) (p Property, ok bool) {
	return newProperty(TransformPosition{X: x, Y: y}), true
}

// NewTransformScale returns a transform scale property. ok is false unless
// both components are in [0, 100].
func NewTransformScale(w, h float64) (p Property, ok bool) {
	if !isPercent(w) || !isPercent(h) {
		return Property{}, false
	}
	return newProperty(TransformScale{W: w, H: h}), true
}

// NewTransformRotation returns a transform rotation property. ok is false
// unless v is in [0, 360].
func NewTransformRotation(v float64) (p Property, ok bool) {
	if !inRange(v, 0, 360) {
		return Property{}, false
	}
	return newProperty(TransformRotation(v)), true
}

// NewTransformOpacity returns a transform opacity property. ok is false
// unless v is in [0, 100]. SetProperty rejects it with ErrNotImplemented.
func NewTransformOpacity(v float64) (p Property, ok bool) {
	if !isPercent(v) {
		return Property{}, false
	}
	return newProperty(TransformOpacity(v)), true
}
