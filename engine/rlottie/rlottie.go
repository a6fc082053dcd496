//go:build rlottie && cgo

package rlottie

/*
#cgo pkg-config: rlottie
#include <stdlib.h>
#include <rlottie_capi.h>

// lottie_animation_property_override is variadic; cgo cannot call it directly.
static void override1(Lottie_Animation *a, Lottie_Animation_Property p, const char *kp, double v0) {
	lottie_animation_property_override(a, p, kp, v0);
}

static void override2(Lottie_Animation *a, Lottie_Animation_Property p, const char *kp, double v0, double v1) {
	lottie_animation_property_override(a, p, kp, v0, v1);
}

static void override3(Lottie_Animation *a, Lottie_Animation_Property p, const char *kp, double v0, double v1, double v2) {
	lottie_animation_property_override(a, p, kp, v0, v1, v2);
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/gogpu/lottie/engine"
)

// init registers the rlottie engine on package import.
func init() {
	engine.Register(engine.EngineRlottie, func() engine.Engine {
		return &Engine{}
	})
}

// Engine loads animations through librlottie.
//
// librlottie keeps a process-wide model cache keyed by the load key;
// Engine values are stateless and may be shared.
type Engine struct{}

// New returns the librlottie engine.
func New() *Engine {
	return &Engine{}
}

// Name returns the engine identifier.
func (e *Engine) Name() string {
	return engine.EngineRlottie
}

// Load creates a native animation. A nil result from librlottie is reported
// as engine.ErrRejected.
func (e *Engine) Load(data, key, resourcePath string) (engine.Animation, error) {
	for _, s := range [...]string{data, key, resourcePath} {
		if strings.IndexByte(s, 0) >= 0 {
			return nil, ErrEmbeddedNUL
		}
	}

	cdata := C.CString(data)
	defer C.free(unsafe.Pointer(cdata))
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cres := C.CString(resourcePath)
	defer C.free(unsafe.Pointer(cres))

	ptr := C.lottie_animation_from_data(cdata, ckey, cres)
	if ptr == nil {
		engine.Logger().Debug("rlottie: content rejected", "key", key)
		return nil, fmt.Errorf("%w: lottie_animation_from_data returned NULL", engine.ErrRejected)
	}
	engine.Logger().Debug("rlottie: animation loaded", "key", key, "resource_path", resourcePath)
	return &animation{ptr: ptr}, nil
}

// SetModelCacheSize configures the librlottie model cache.
func (e *Engine) SetModelCacheSize(size int) {
	C.lottie_configure_model_cache_size(C.size_t(max(size, 0)))
}

var (
	_ engine.Engine      = (*Engine)(nil)
	_ engine.ModelCacher = (*Engine)(nil)
)

// animation wraps one Lottie_Animation.
type animation struct {
	ptr *C.Lottie_Animation

	// pinner keeps the buffer of an outstanding async render in place while
	// librlottie writes to it from its worker thread.
	pinner  runtime.Pinner
	pending bool
}

var _ engine.Animation = (*animation)(nil)

func (a *animation) Size() (width, height int) {
	var w, h C.size_t
	C.lottie_animation_get_size(a.ptr, &w, &h)
	return int(w), int(h)
}

func (a *animation) Duration() float64 {
	return float64(C.lottie_animation_get_duration(a.ptr))
}

func (a *animation) TotalFrames() int {
	return int(C.lottie_animation_get_totalframe(a.ptr))
}

func (a *animation) FrameRate() float64 {
	return float64(C.lottie_animation_get_framerate(a.ptr))
}

func (a *animation) FrameAtPos(pos float32) int {
	return int(C.lottie_animation_get_frame_at_pos(a.ptr, C.float(pos)))
}

func (a *animation) Markers() []engine.Marker {
	list := C.lottie_animation_get_markerlist(a.ptr)
	if list == nil || list.size == 0 || list.ptr == nil {
		return nil
	}
	native := unsafe.Slice(list.ptr, int(list.size))
	markers := make([]engine.Marker, len(native))
	for i, m := range native {
		markers[i] = engine.Marker{
			Name:  C.GoString(m.name),
			Start: int(m.startframe),
			End:   int(m.endframe),
		}
	}
	return markers
}

func (a *animation) Override(prop engine.Property, keypath string, args ...float64) {
	if n := prop.Arity(); n == 0 || len(args) != n {
		engine.Logger().Debug("rlottie: override ignored",
			"property", prop.String(), "keypath", keypath, "args", len(args))
		return
	}

	ckp := C.CString(keypath)
	defer C.free(unsafe.Pointer(ckp))
	p := C.Lottie_Animation_Property(prop)

	switch len(args) {
	case 1:
		C.override1(a.ptr, p, ckp, C.double(args[0]))
	case 2:
		C.override2(a.ptr, p, ckp, C.double(args[0]), C.double(args[1]))
	case 3:
		C.override3(a.ptr, p, ckp, C.double(args[0]), C.double(args[1]), C.double(args[2]))
	}
}

func (a *animation) Render(frame int, buf []uint32, width, height, bytesPerLine int) {
	if len(buf) == 0 {
		return
	}
	a.Flush()
	C.lottie_animation_render(a.ptr, C.size_t(frame),
		(*C.uint32_t)(unsafe.Pointer(&buf[0])),
		C.size_t(width), C.size_t(height), C.size_t(bytesPerLine))
}

func (a *animation) RenderAsync(frame int, buf []uint32, width, height, bytesPerLine int) {
	if len(buf) == 0 {
		return
	}
	a.Flush()
	a.pinner.Pin(&buf[0])
	a.pending = true
	C.lottie_animation_render_async(a.ptr, C.size_t(frame),
		(*C.uint32_t)(unsafe.Pointer(&buf[0])),
		C.size_t(width), C.size_t(height), C.size_t(bytesPerLine))
}

func (a *animation) Flush() {
	if !a.pending {
		return
	}
	C.lottie_animation_render_flush(a.ptr)
	a.pinner.Unpin()
	a.pending = false
}

func (a *animation) Destroy() {
	if a.ptr == nil {
		return
	}
	a.Flush()
	C.lottie_animation_destroy(a.ptr)
	a.ptr = nil
}
