// Package blend implements compositing on ARGB32 premultiplied pixels.
//
// A pixel is one uint32 laid out as 0xAARRGGBB with color channels
// premultiplied by alpha, the format rendered by the animation engines.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// Pack builds a pixel from premultiplied channels.
func Pack(a, r, g, b byte) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a pixel into its premultiplied channels.
func Unpack(p uint32) (a, r, g, b byte) {
	return byte(p >> 24), byte(p >> 16), byte(p >> 8), byte(p)
}

// Scale multiplies every channel of p by coverage/255.
func Scale(p uint32, coverage byte) uint32 {
	switch coverage {
	case 0:
		return 0
	case 255:
		return p
	}
	a, r, g, b := Unpack(p)
	return Pack(mulDiv255(a, coverage), mulDiv255(r, coverage),
		mulDiv255(g, coverage), mulDiv255(b, coverage))
}

// SourceOver composites src over dst: S + D*(1-Sa).
func SourceOver(dst, src uint32) uint32 {
	sa, sr, sg, sb := Unpack(src)
	switch sa {
	case 255:
		return src
	case 0:
		if src == 0 {
			return dst
		}
	}
	da, dr, dg, db := Unpack(dst)
	inv := inv255(sa)
	return Pack(
		addClamp(sa, mulDiv255(da, inv)),
		addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
	)
}

// Unpremultiply returns the straight-alpha channels of p, rounded to nearest.
// Fully transparent pixels yield zero color.
func Unpremultiply(p uint32) (r, g, b, a byte) {
	pa, pr, pg, pb := Unpack(p)
	if pa == 0 {
		return 0, 0, 0, 0
	}
	if pa == 255 {
		return pr, pg, pb, pa
	}
	return unpremul(pr, pa), unpremul(pg, pa), unpremul(pb, pa), pa
}

func unpremul(c, a byte) byte {
	return byte(min((uint32(c)*255+uint32(a)/2)/uint32(a), 255))
}
