package software

import (
	"slices"
	"strings"

	"github.com/gogpu/lottie/engine"
)

// splitKeyPath splits a dot separated keypath into its components.
func splitKeyPath(keypath string) []string {
	if keypath == "" {
		return nil
	}
	return strings.Split(keypath, ".")
}

// matchKeyPath reports whether pattern selects the node at path.
// "*" matches exactly one component, "**" matches zero or more.
func matchKeyPath(pattern, path []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(path); i++ {
			if matchKeyPath(pattern[1:], path[i:]) {
				return true
			}
		}
		return false
	}
	if len(path) == 0 {
		return false
	}
	if pattern[0] != "*" && pattern[0] != path[0] {
		return false
	}
	return matchKeyPath(pattern[1:], path[1:])
}

type override struct {
	prop    engine.Property
	keypath string
	pattern []string
	args    []float64
}

// overrides is the ordered override list of one animation. Later entries win.
type overrides []override

// set records an override, replacing an earlier one for the same property
// and keypath.
func (o overrides) set(prop engine.Property, keypath string, args []float64) overrides {
	args = slices.Clone(args)
	for i := range o {
		if o[i].prop == prop && o[i].keypath == keypath {
			o = slices.Delete(o, i, i+1)
			break
		}
	}
	return append(o, override{
		prop:    prop,
		keypath: keypath,
		pattern: splitKeyPath(keypath),
		args:    args,
	})
}

func (o overrides) lookup(prop engine.Property, path []string) ([]float64, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].prop == prop && matchKeyPath(o[i].pattern, path) {
			return o[i].args, true
		}
	}
	return nil, false
}

func (o overrides) applyTransform(t transform, path []string) transform {
	if len(o) == 0 {
		return t
	}
	if v, ok := o.lookup(engine.PropertyTransformPosition, path); ok {
		t.position = point{v[0], v[1]}
	}
	if v, ok := o.lookup(engine.PropertyTransformScale, path); ok {
		t.scale = point{v[0], v[1]}
	}
	if v, ok := o.lookup(engine.PropertyTransformRotation, path); ok {
		t.rotation = v[0]
	}
	return t
}

func (o overrides) applyFill(f fill, path []string) fill {
	if v, ok := o.lookup(engine.PropertyFillColor, path); ok {
		f.color = [3]float64{v[0], v[1], v[2]}
	}
	if v, ok := o.lookup(engine.PropertyFillOpacity, path); ok {
		f.opacity = v[0]
	}
	return f
}

func (o overrides) applyStroke(s stroke, path []string) stroke {
	if v, ok := o.lookup(engine.PropertyStrokeColor, path); ok {
		s.color = [3]float64{v[0], v[1], v[2]}
	}
	if v, ok := o.lookup(engine.PropertyStrokeOpacity, path); ok {
		s.opacity = v[0]
	}
	if v, ok := o.lookup(engine.PropertyStrokeWidth, path); ok {
		s.width = v[0]
	}
	return s
}

// childPath returns path extended by name without aliasing path's storage.
func childPath(path []string, name string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = name
	return out
}
