package lottie

import (
	"encoding/binary"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/lottie/internal/blend"
)

// bytesPerPixel is the size of one ARGB32 pixel.
const bytesPerPixel = 4

// Surface is a caller-owned render target: a buffer of ARGB32 premultiplied
// pixels (0xAARRGGBB per uint32) laid out in rows of bytesPerLine bytes.
// bytesPerLine may exceed width*4; padding pixels are never written.
type Surface struct {
	width        int
	height       int
	bytesPerLine int
	buf          []uint32
}

// NewSurface allocates a tightly packed surface.
// Non-positive dimensions produce an empty surface that Render rejects.
func NewSurface(width, height int) *Surface {
	width, height = max(width, 0), max(height, 0)
	return &Surface{
		width:        width,
		height:       height,
		bytesPerLine: width * bytesPerPixel,
		buf:          make([]uint32, width*height),
	}
}

// NewSurfaceWithStride allocates a surface whose rows are bytesPerLine bytes.
func NewSurfaceWithStride(width, height, bytesPerLine int) (*Surface, error) {
	s := &Surface{width: width, height: height, bytesPerLine: bytesPerLine}
	if err := s.checkLayout(); err != nil {
		return nil, err
	}
	s.buf = make([]uint32, height*bytesPerLine/bytesPerPixel)
	return s, nil
}

// WrapSurface uses buf as the pixel storage of a width x height surface.
// The buffer stays owned by the caller and must hold at least
// height*bytesPerLine bytes.
func WrapSurface(buf []uint32, width, height, bytesPerLine int) (*Surface, error) {
	s := &Surface{width: width, height: height, bytesPerLine: bytesPerLine, buf: buf}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// checkLayout validates size and stride.
func (s *Surface) checkLayout() error {
	switch {
	case s == nil:
		return ErrInvalidSurface
	case s.width <= 0 || s.height <= 0:
		return ErrInvalidSurface
	case s.bytesPerLine < s.width*bytesPerPixel || s.bytesPerLine%bytesPerPixel != 0:
		return ErrInvalidSurface
	}
	return nil
}

// check validates the layout and that the buffer covers every row.
func (s *Surface) check() error {
	if err := s.checkLayout(); err != nil {
		return err
	}
	if len(s.buf) < s.height*s.stride() {
		return ErrBufferTooSmall
	}
	return nil
}

// stride returns the row length in pixels.
func (s *Surface) stride() int {
	return s.bytesPerLine / bytesPerPixel
}

// Width returns the width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// BytesPerLine returns the row length in bytes.
func (s *Surface) BytesPerLine() int {
	return s.bytesPerLine
}

// Buffer returns the pixel storage.
func (s *Surface) Buffer() []uint32 {
	return s.buf
}

// Format returns the GPU texture format matching the in-memory byte order
// of the buffer. ARGB32 words are stored as B, G, R, A bytes on
// little-endian hosts; big-endian hosts have no matching format.
func (s *Surface) Format() gputypes.TextureFormat {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], 0x01020304)
	if b[0] == 0x04 {
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatUndefined
}

// Clear sets every visible pixel to transparent black.
func (s *Surface) Clear() {
	stride := s.stride()
	for y := 0; y < s.height; y++ {
		clear(s.buf[y*stride : y*stride+s.width])
	}
}

// Pixel returns the premultiplied ARGB32 value at (x, y), or 0 outside the
// surface.
func (s *Surface) Pixel(x, y int) uint32 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.buf[y*s.stride()+x]
}

// Image converts the surface to a non-premultiplied image.
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	stride := s.stride()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			r, g, b, a := blend.Unpremultiply(s.buf[y*stride+x])
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
