package software

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/lottie/internal/blend"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bezier control distance approximating a quarter circle.
const kappa = 0.5522847498307936

// primitive is a rectangle or ellipse placed in device space by m.
type primitive struct {
	oval   bool
	center point
	size   point
	m      matrix
}

// canvas composites coverage masks into an ARGB32 premultiplied buffer.
type canvas struct {
	buf    []uint32
	width  int
	height int
	stride int // in pixels
	raster *vector.Rasterizer
	mask   *image.Alpha
}

func newCanvas(buf []uint32, width, height, bytesPerLine int) *canvas {
	return &canvas{
		buf:    buf,
		width:  width,
		height: height,
		stride: bytesPerLine / 4,
		raster: vector.NewRasterizer(width, height),
		mask:   image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

// clear zeroes the visible pixels of every row. Padding is left untouched.
func (c *canvas) clear() {
	for y := 0; y < c.height; y++ {
		clear(c.buf[y*c.stride : y*c.stride+c.width])
	}
}

// render paints comp at frame (relative to the composition in point).
func render(comp *composition, ov overrides, frame int, buf []uint32, width, height, bytesPerLine int) {
	c := newCanvas(buf, width, height, bytesPerLine)
	c.clear()

	t := comp.inPoint + float64(frame)
	base := scale(float64(width)/float64(comp.width), float64(height)/float64(comp.height))

	for i := len(comp.layers) - 1; i >= 0; i-- {
		l := comp.layers[i]
		if t < l.inPoint || t >= l.outPoint {
			continue
		}
		path := []string{l.name}
		tr := ov.applyTransform(l.transform, path)
		m := base.multiply(tr.matrix())
		alpha := tr.opacity / 100

		if l.solid != nil {
			bg := primitive{
				center: point{l.solid.width / 2, l.solid.height / 2},
				size:   point{l.solid.width, l.solid.height},
				m:      m,
			}
			c.fill([]primitive{bg}, l.solid.color, alpha)
		}
		paintItems(c, ov, l.items, path, m, alpha)
	}
}

// paintItems paints items bottom-up. A fill or stroke paints the geometry
// of every item listed before it in the same group, nested groups included.
func paintItems(c *canvas, ov overrides, items []item, path []string, m matrix, alpha float64) {
	for i := len(items) - 1; i >= 0; i-- {
		switch it := items[i].(type) {
		case *group:
			gpath := childPath(path, it.name)
			tr := ov.applyTransform(it.transform, gpath)
			paintItems(c, ov, it.items, gpath, m.multiply(tr.matrix()), alpha*tr.opacity/100)
		case *fill:
			f := ov.applyFill(*it, childPath(path, it.name))
			c.fill(collect(ov, items[:i], path, m, nil), f.color, alpha*f.opacity/100)
		case *stroke:
			s := ov.applyStroke(*it, childPath(path, it.name))
			c.stroke(collect(ov, items[:i], path, m, nil), s.width, s.color, alpha*s.opacity/100)
		}
	}
}

// collect gathers the geometry of items, descending into groups.
func collect(ov overrides, items []item, path []string, m matrix, dst []primitive) []primitive {
	for _, it := range items {
		switch it := it.(type) {
		case *rect:
			dst = append(dst, primitive{center: it.center, size: it.size, m: m})
		case *ellipse:
			dst = append(dst, primitive{oval: true, center: it.center, size: it.size, m: m})
		case *group:
			gpath := childPath(path, it.name)
			tr := ov.applyTransform(it.transform, gpath)
			dst = collect(ov, it.items, gpath, m.multiply(tr.matrix()), dst)
		}
	}
	return dst
}

func (c *canvas) fill(prims []primitive, color [3]float64, alpha float64) {
	if len(prims) == 0 || alpha <= 0 {
		return
	}
	c.raster.Reset(c.width, c.height)
	for _, p := range prims {
		c.contour(p, p.size, false)
	}
	c.composite(color, alpha)
}

// stroke paints a ring of the given width centered on each outline.
func (c *canvas) stroke(prims []primitive, width float64, color [3]float64, alpha float64) {
	if len(prims) == 0 || alpha <= 0 || width <= 0 {
		return
	}
	c.raster.Reset(c.width, c.height)
	for _, p := range prims {
		c.contour(p, point{p.size.x + width, p.size.y + width}, false)
		inner := point{p.size.x - width, p.size.y - width}
		if inner.x > 0 && inner.y > 0 {
			c.contour(p, inner, true)
		}
	}
	c.composite(color, alpha)
}

// contour adds the outline of p resized to size. reverse flips the winding
// so the contour cuts a hole into a containing one.
func (c *canvas) contour(p primitive, size point, reverse bool) {
	hw, hh := size.x/2, size.y/2
	cx, cy := p.center.x, p.center.y
	dir := 1.0
	if reverse {
		dir = -1
	}

	move := func(x, y float64) {
		q := p.m.apply(point{x, y})
		c.raster.MoveTo(float32(q.x), float32(q.y))
	}
	line := func(x, y float64) {
		q := p.m.apply(point{x, y})
		c.raster.LineTo(float32(q.x), float32(q.y))
	}
	cubic := func(x1, y1, x2, y2, x3, y3 float64) {
		a := p.m.apply(point{x1, y1})
		b := p.m.apply(point{x2, y2})
		d := p.m.apply(point{x3, y3})
		c.raster.CubeTo(float32(a.x), float32(a.y), float32(b.x), float32(b.y), float32(d.x), float32(d.y))
	}

	if !p.oval {
		move(cx-hw, cy-hh)
		line(cx+dir*hw, cy-dir*hh)
		line(cx+hw, cy+hh)
		line(cx-dir*hw, cy+dir*hh)
		c.raster.ClosePath()
		return
	}

	kx, ky := hw*kappa, hh*kappa
	move(cx, cy-hh)
	cubic(cx+dir*kx, cy-hh, cx+dir*hw, cy-ky, cx+dir*hw, cy)
	cubic(cx+dir*hw, cy+ky, cx+dir*kx, cy+hh, cx, cy+hh)
	cubic(cx-dir*kx, cy+hh, cx-dir*hw, cy+ky, cx-dir*hw, cy)
	cubic(cx-dir*hw, cy-ky, cx-dir*kx, cy-hh, cx, cy-hh)
	c.raster.ClosePath()
}

// composite rasterizes the pending contours and blends color over the buffer
// with source-over.
func (c *canvas) composite(color [3]float64, alpha float64) {
	c.raster.DrawOp = draw.Src
	c.raster.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	alpha = clamp01(alpha)
	r, g, b := clamp01(color[0]), clamp01(color[1]), clamp01(color[2])
	src := blend.Pack(to8(alpha), to8(r*alpha), to8(g*alpha), to8(b*alpha))

	for y := 0; y < c.height; y++ {
		cov := c.mask.Pix[y*c.mask.Stride : y*c.mask.Stride+c.width]
		row := c.buf[y*c.stride : y*c.stride+c.width]
		for x, v := range cov {
			if v == 0 {
				continue
			}
			row[x] = blend.SourceOver(row[x], blend.Scale(src, v))
		}
	}
}

func to8(v float64) byte {
	return byte(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
