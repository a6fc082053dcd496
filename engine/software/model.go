package software

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/lottie/engine"
	"github.com/tidwall/gjson"
)

var (
	errInvalidJSON        = errors.New("software: content is not valid JSON")
	errInvalidComposition = errors.New("software: invalid composition")
)

// Lottie layer types handled by the preview rasterizer.
const (
	layerSolid = 1
	layerShape = 4
)

// composition is the parsed, immutable model of one animation.
// It is shared between animations loaded under the same key.
type composition struct {
	name      string
	width     int
	height    int
	frameRate float64
	inPoint   float64
	outPoint  float64
	markers   []engine.Marker
	layers    []*layer
}

func (c *composition) totalFrames() int {
	return int(math.Round(c.outPoint - c.inPoint))
}

// layer is a top-level layer. layers[0] is painted last (topmost).
type layer struct {
	name      string
	inPoint   float64
	outPoint  float64
	transform transform
	solid     *solid
	items     []item
}

type solid struct {
	color         [3]float64
	width, height float64
}

// item is one entry of a shape layer or group: *group, *rect, *ellipse,
// *fill or *stroke.
type item interface {
	itemName() string
}

type group struct {
	name      string
	transform transform
	items     []item
}

type rect struct {
	name         string
	center, size point
}

type ellipse struct {
	name         string
	center, size point
}

type fill struct {
	name    string
	color   [3]float64
	opacity float64
}

type stroke struct {
	name    string
	color   [3]float64
	opacity float64
	width   float64
}

func (g *group) itemName() string   { return g.name }
func (r *rect) itemName() string    { return r.name }
func (e *ellipse) itemName() string { return e.name }
func (f *fill) itemName() string    { return f.name }
func (s *stroke) itemName() string  { return s.name }

// transform holds static transform values; scale and opacity are percent,
// rotation is degrees.
type transform struct {
	anchor   point
	position point
	scale    point
	rotation float64
	opacity  float64
}

func identityTransform() transform {
	return transform{scale: point{100, 100}, opacity: 100}
}

// matrix composes position * rotation * scale * -anchor.
func (t transform) matrix() matrix {
	return translate(t.position.x, t.position.y).
		multiply(rotate(t.rotation)).
		multiply(scale(t.scale.x/100, t.scale.y/100)).
		multiply(translate(-t.anchor.x, -t.anchor.y))
}

// parseComposition validates data and builds the composition model.
func parseComposition(data string) (*composition, error) {
	if !gjson.Valid(data) {
		return nil, errInvalidJSON
	}
	root := gjson.Parse(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", errInvalidComposition)
	}

	c := &composition{
		name:      root.Get("nm").String(),
		width:     int(root.Get("w").Int()),
		height:    int(root.Get("h").Int()),
		frameRate: root.Get("fr").Float(),
		inPoint:   root.Get("ip").Float(),
		outPoint:  root.Get("op").Float(),
	}
	switch {
	case c.width <= 0 || c.height <= 0:
		return nil, fmt.Errorf("%w: size %dx%d", errInvalidComposition, c.width, c.height)
	case c.frameRate <= 0:
		return nil, fmt.Errorf("%w: frame rate %g", errInvalidComposition, c.frameRate)
	case c.outPoint <= c.inPoint:
		return nil, fmt.Errorf("%w: out point %g not after in point %g", errInvalidComposition, c.outPoint, c.inPoint)
	}

	layers := root.Get("layers")
	if !layers.IsArray() {
		return nil, fmt.Errorf("%w: missing layers", errInvalidComposition)
	}
	for _, l := range layers.Array() {
		if l.Get("hd").Bool() {
			continue
		}
		c.layers = append(c.layers, parseLayer(l))
	}

	for _, m := range root.Get("markers").Array() {
		start := m.Get("tm").Float()
		c.markers = append(c.markers, engine.Marker{
			Name:  m.Get("cm").String(),
			Start: int(math.Round(start)),
			End:   int(math.Round(start + m.Get("dr").Float())),
		})
	}
	return c, nil
}

func parseLayer(v gjson.Result) *layer {
	l := &layer{
		name:      v.Get("nm").String(),
		inPoint:   v.Get("ip").Float(),
		outPoint:  v.Get("op").Float(),
		transform: parseTransform(v.Get("ks")),
	}
	switch v.Get("ty").Int() {
	case layerSolid:
		l.solid = &solid{
			color:  parseHexColor(v.Get("sc").String()),
			width:  v.Get("sw").Float(),
			height: v.Get("sh").Float(),
		}
	case layerShape:
		l.items = parseItems(v.Get("shapes"))
	}
	return l
}

func parseItems(v gjson.Result) []item {
	var items []item
	for _, it := range v.Array() {
		if it.Get("hd").Bool() {
			continue
		}
		name := it.Get("nm").String()
		switch it.Get("ty").String() {
		case "gr":
			g := &group{name: name, transform: identityTransform()}
			for _, sub := range it.Get("it").Array() {
				if sub.Get("ty").String() == "tr" {
					g.transform = parseTransform(sub)
				}
			}
			g.items = parseItems(it.Get("it"))
			items = append(items, g)
		case "rc":
			items = append(items, &rect{
				name:   name,
				center: vec2(it.Get("p"), point{}),
				size:   vec2(it.Get("s"), point{}),
			})
		case "el":
			items = append(items, &ellipse{
				name:   name,
				center: vec2(it.Get("p"), point{}),
				size:   vec2(it.Get("s"), point{}),
			})
		case "fl":
			items = append(items, &fill{
				name:    name,
				color:   color3(it.Get("c")),
				opacity: scalar(it.Get("o"), 100),
			})
		case "st":
			items = append(items, &stroke{
				name:    name,
				color:   color3(it.Get("c")),
				opacity: scalar(it.Get("o"), 100),
				width:   scalar(it.Get("w"), 1),
			})
		}
	}
	return items
}

// parseTransform reads a layer "ks" or a group "tr" object. Missing fields
// keep their identity values.
func parseTransform(v gjson.Result) transform {
	t := identityTransform()
	if !v.Exists() {
		return t
	}
	t.anchor = vec2(v.Get("a"), t.anchor)
	t.position = vec2(v.Get("p"), t.position)
	t.scale = vec2(v.Get("s"), t.scale)
	t.rotation = scalar(v.Get("r"), t.rotation)
	t.opacity = scalar(v.Get("o"), t.opacity)
	return t
}

// staticValue returns the numbers of an animatable property. Animated
// properties yield their first keyframe; no interpolation is done.
func staticValue(prop gjson.Result) []float64 {
	k := prop.Get("k")
	if !k.Exists() {
		return nil
	}
	if !k.IsArray() {
		return []float64{k.Float()}
	}
	arr := k.Array()
	if len(arr) == 0 {
		return nil
	}
	if arr[0].IsObject() {
		s := arr[0].Get("s")
		switch {
		case s.IsArray():
			return floats(s.Array())
		case s.Exists():
			return []float64{s.Float()}
		}
		return nil
	}
	return floats(arr)
}

func floats(arr []gjson.Result) []float64 {
	out := make([]float64, len(arr))
	for i, v := range arr {
		out[i] = v.Float()
	}
	return out
}

func scalar(prop gjson.Result, def float64) float64 {
	v := staticValue(prop)
	if len(v) == 0 {
		return def
	}
	return v[0]
}

func vec2(prop gjson.Result, def point) point {
	v := staticValue(prop)
	if len(v) < 2 {
		return def
	}
	return point{v[0], v[1]}
}

func color3(prop gjson.Result) [3]float64 {
	v := staticValue(prop)
	if len(v) < 3 {
		return [3]float64{}
	}
	return [3]float64{v[0], v[1], v[2]}
}

// parseHexColor parses "#rrggbb". Malformed colors are black.
func parseHexColor(s string) [3]float64 {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return [3]float64{}
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return [3]float64{}
	}
	return [3]float64{
		float64(n>>16&0xFF) / 255,
		float64(n>>8&0xFF) / 255,
		float64(n&0xFF) / 255,
	}
}
