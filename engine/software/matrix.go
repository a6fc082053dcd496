package software

import "math"

// point is a 2D point in composition or device space.
type point struct {
	x, y float64
}

// matrix is a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping x' = a*x + b*y + c and y' = d*x + e*y + f.
type matrix struct {
	a, b, c float64
	d, e, f float64
}

func translate(x, y float64) matrix {
	return matrix{a: 1, c: x, e: 1, f: y}
}

func scale(x, y float64) matrix {
	return matrix{a: x, e: y}
}

// rotate builds a rotation by degrees, clockwise on a y-down canvas.
func rotate(degrees float64) matrix {
	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return matrix{
		a: cos, b: -sin,
		d: sin, e: cos,
	}
}

// multiply returns m * o, applying o first.
func (m matrix) multiply(o matrix) matrix {
	return matrix{
		a: m.a*o.a + m.b*o.d,
		b: m.a*o.b + m.b*o.e,
		c: m.a*o.c + m.b*o.f + m.c,
		d: m.d*o.a + m.e*o.d,
		e: m.d*o.b + m.e*o.e,
		f: m.d*o.c + m.e*o.f + m.f,
	}
}

func (m matrix) apply(p point) point {
	return point{
		x: m.a*p.x + m.b*p.y + m.c,
		y: m.d*p.x + m.e*p.y + m.f,
	}
}
