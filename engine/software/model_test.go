package software

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/tidwall/gjson"
)

func TestParseCompositionFixture(t *testing.T) {
	data, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatal(err)
	}
	c, err := parseComposition(string(data))
	if err != nil {
		t.Fatalf("parseComposition() error = %v", err)
	}

	if c.name != "spinner" {
		t.Errorf("name = %q, want spinner", c.name)
	}
	if len(c.layers) != 3 {
		t.Fatalf("layers = %d, want 3", len(c.layers))
	}

	flash, dot, bg := c.layers[0], c.layers[1], c.layers[2]
	if flash.inPoint != 30 || flash.outPoint != 60 {
		t.Errorf("flash range = [%v, %v), want [30, 60)", flash.inPoint, flash.outPoint)
	}
	if dot.transform.position != (point{118.5, 118.5}) {
		t.Errorf("dot position = %v, want {118.5 118.5}", dot.transform.position)
	}
	if bg.solid == nil || bg.solid.color != [3]float64{1, 1, 1} || bg.solid.width != 237 {
		t.Errorf("background solid = %+v, want white 237 wide", bg.solid)
	}

	if len(dot.items) != 1 {
		t.Fatalf("dot items = %d, want 1 group", len(dot.items))
	}
	g, ok := dot.items[0].(*group)
	if !ok || g.itemName() != "circle" {
		t.Fatalf("dot item = %#v, want group circle", dot.items[0])
	}
	names := make([]string, len(g.items))
	for i, it := range g.items {
		names[i] = it.itemName()
	}
	want := []string{"ellipse", "fill", "outline"}
	if len(names) != len(want) {
		t.Fatalf("circle items = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("circle item %d = %q, want %q", i, names[i], want[i])
		}
	}
	if s := g.items[2].(*stroke); s.width != 4 || s.color != [3]float64{0, 0, 1} {
		t.Errorf("outline = %+v, want blue width 4", s)
	}
}

func TestParseCompositionSkipsHidden(t *testing.T) {
	data := `{"w":10,"h":10,"fr":24,"ip":0,"op":12,"layers":[
		{"ty":4,"nm":"shown","ip":0,"op":12,"shapes":[]},
		{"ty":4,"nm":"hidden","hd":true,"ip":0,"op":12,"shapes":[]}
	]}`
	c, err := parseComposition(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.layers) != 1 || c.layers[0].name != "shown" {
		t.Errorf("layers = %d, want only the visible one", len(c.layers))
	}
}

func TestParseCompositionErrors(t *testing.T) {
	if _, err := parseComposition("{"); !errors.Is(err, errInvalidJSON) {
		t.Errorf("truncated JSON error = %v, want errInvalidJSON", err)
	}
	if _, err := parseComposition(`"text"`); !errors.Is(err, errInvalidComposition) {
		t.Errorf("string root error = %v, want errInvalidComposition", err)
	}
}

func TestStaticValue(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []float64
	}{
		{"scalar", `{"a":0,"k":42}`, []float64{42}},
		{"vector", `{"a":0,"k":[1,2,3]}`, []float64{1, 2, 3}},
		{"animated vector", `{"a":1,"k":[{"t":0,"s":[5,6]},{"t":10,"s":[7,8]}]}`, []float64{5, 6}},
		{"animated scalar", `{"a":1,"k":[{"t":0,"s":9}]}`, []float64{9}},
		{"missing", `{}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := staticValue(gjson.Parse(tt.json))
			if len(got) != len(tt.want) {
				t.Fatalf("staticValue() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("staticValue()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want [3]float64
	}{
		{"#ffffff", [3]float64{1, 1, 1}},
		{"#ff0000", [3]float64{1, 0, 0}},
		{"0000ff", [3]float64{0, 0, 1}},
		{"#fff", [3]float64{}},
		{"#gggggg", [3]float64{}},
	}
	for _, tt := range tests {
		if got := parseHexColor(tt.in); got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := transform{
		anchor:   point{10, 0},
		position: point{100, 50},
		scale:    point{200, 200},
		rotation: 90,
		opacity:  100,
	}
	// Anchor moves to the origin, is scaled 2x, rotated a quarter turn
	// clockwise and placed at position.
	got := tr.matrix().apply(point{20, 0})
	if math.Abs(got.x-100) > 1e-9 || math.Abs(got.y-70) > 1e-9 {
		t.Errorf("apply = %v, want {100 70}", got)
	}

	if p := identityTransform().matrix().apply(point{3, 4}); p != (point{3, 4}) {
		t.Errorf("identity transform moved point to %v", p)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	m := translate(5, 0).multiply(scale(2, 2))
	if got := m.apply(point{1, 1}); got != (point{7, 2}) {
		t.Errorf("apply = %v, want {7 2}", got)
	}
	if got := scale(1, 1).multiply(m); got != m {
		t.Errorf("unit scale * m = %+v, want %+v", got, m)
	}
}
