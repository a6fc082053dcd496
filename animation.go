package lottie

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/lottie/engine"

	// Engines register themselves on import. The rlottie engine is only
	// compiled in with the "rlottie" build tag.
	_ "github.com/gogpu/lottie/engine/rlottie"
	_ "github.com/gogpu/lottie/engine/software"
)

// Marker is a named frame range authored into an animation.
type Marker = engine.Marker

// Animation owns one engine animation.
//
// An Animation is not safe for concurrent use: queries, overrides and
// renders on one Animation must be sequenced by the caller. Close releases
// the engine animation; if an Animation becomes unreachable without Close,
// the garbage collector releases it.
type Animation struct {
	identifier   string
	resourcePath string
	engineName   string

	ref     *nativeRef
	cleanup runtime.Cleanup

	// target is the surface of the outstanding RenderAsync, nil otherwise.
	target *Surface
	closed bool
}

// nativeRef holds the engine animation apart from Animation so the
// garbage collector cleanup can release it. Every method that calls into
// the engine keeps a alive until the call returns; otherwise the cleanup
// could destroy the engine animation mid-call.
type nativeRef struct {
	anim     engine.Animation
	released atomic.Bool
}

// release destroys the engine animation. Only the first call has an effect.
func (r *nativeRef) release() bool {
	if !r.released.CompareAndSwap(false, true) {
		return false
	}
	r.anim.Destroy()
	return true
}

// announced records engines already reported at info level.
var announced sync.Map

// FromData loads an animation from its JSON text.
//
// identifier names the content: engines with a model cache reuse the
// parsed model of an earlier load with the same identifier. resourcePath
// is used by the engine to resolve external assets.
//
// FromData returns an *EncodingError if any argument contains a NUL byte
// and a *DataError if the engine cannot instantiate the animation.
func FromData(data, identifier, resourcePath string, opts ...Option) (*Animation, error) {
	if err := checkBoundary("data", data); err != nil {
		return nil, err
	}
	if err := checkBoundary("identifier", identifier); err != nil {
		return nil, err
	}
	if err := checkBoundary("resource path", resourcePath); err != nil {
		return nil, err
	}

	e, err := resolveEngine(opts)
	if err != nil {
		return nil, err
	}
	if _, loaded := announced.LoadOrStore(e.Name(), true); !loaded {
		Logger().Info("lottie: engine selected", "engine", e.Name())
	}

	native, err := e.Load(data, identifier, resourcePath)
	if err == nil && native == nil {
		err = engine.ErrRejected
	}
	if err != nil {
		Logger().Debug("lottie: load failed", "identifier", identifier, "engine", e.Name(), "err", err)
		return nil, &DataError{Source: identifier, Reason: "could not instantiate animation", Err: err}
	}

	a := &Animation{
		identifier:   identifier,
		resourcePath: resourcePath,
		engineName:   e.Name(),
		ref:          &nativeRef{anim: native},
	}
	a.cleanup = runtime.AddCleanup(a, releaseUnreachable, a.ref)

	w, h := native.Size()
	Logger().Debug("lottie: animation loaded",
		"identifier", identifier,
		"engine", e.Name(),
		"size", fmt.Sprintf("%dx%d", w, h),
		"frames", native.TotalFrames())
	return a, nil
}

// releaseUnreachable runs when an Animation is collected without Close.
func releaseUnreachable(ref *nativeRef) {
	if ref.release() {
		Logger().Warn("lottie: animation released by garbage collector; call Close")
	}
}

// Identifier returns the identifier the animation was loaded under.
func (a *Animation) Identifier() string {
	return a.identifier
}

// ResourcePath returns the path used to resolve external assets.
func (a *Animation) ResourcePath() string {
	return a.resourcePath
}

// EngineName returns the name of the engine that loaded the animation.
func (a *Animation) EngineName() string {
	return a.engineName
}

// Size returns the default size of the animation in pixels.
func (a *Animation) Size() (width, height int) {
	defer runtime.KeepAlive(a)
	if a.closed {
		return 0, 0
	}
	return a.ref.anim.Size()
}

// Duration returns the playback duration.
func (a *Animation) Duration() time.Duration {
	defer runtime.KeepAlive(a)
	if a.closed {
		return 0
	}
	return time.Duration(a.ref.anim.Duration() * float64(time.Second))
}

// TotalFrames returns the number of frames.
func (a *Animation) TotalFrames() int {
	defer runtime.KeepAlive(a)
	if a.closed {
		return 0
	}
	return a.ref.anim.TotalFrames()
}

// FrameRate returns frames per second.
func (a *Animation) FrameRate() float64 {
	defer runtime.KeepAlive(a)
	if a.closed {
		return 0
	}
	return a.ref.anim.FrameRate()
}

// FrameAtPos maps a playback position in [0, 1] to a frame number.
// Positions outside the range are handled by the engine.
func (a *Animation) FrameAtPos(pos float32) int {
	defer runtime.KeepAlive(a)
	if a.closed {
		return 0
	}
	return a.ref.anim.FrameAtPos(pos)
}

// Markers returns the markers authored into the animation.
func (a *Animation) Markers() []Marker {
	defer runtime.KeepAlive(a)
	if a.closed {
		return nil
	}
	return a.ref.anim.Markers()
}

// SetProperty overrides p on every node matched by kp. A keypath that
// matches nothing is not an error.
//
// TransformAnchor and TransformOpacity values are rejected with
// ErrNotImplemented without reaching the engine.
func (a *Animation) SetProperty(kp KeyPath, p Property) error {
	if a.closed {
		return ErrClosed
	}
	if a.target != nil {
		return ErrRenderInFlight
	}
	if p.value == nil {
		return ErrInvalidProperty
	}
	tag, args, err := p.value.native()
	if err != nil {
		return fmt.Errorf("%w: %s", err, tag)
	}

	Logger().Debug("lottie: property override",
		"identifier", a.identifier, "property", tag.String(), "keypath", kp.path)
	a.ref.anim.Override(tag, kp.path, args...)
	runtime.KeepAlive(a)
	return nil
}

// checkRender validates a render request.
func (a *Animation) checkRender(frame int, s *Surface) error {
	switch {
	case a.closed:
		return ErrClosed
	case a.target != nil:
		return ErrRenderInFlight
	case frame < 0:
		return ErrInvalidFrame
	}
	return s.check()
}

// Render rasterizes frame into s and returns when done.
func (a *Animation) Render(frame int, s *Surface) error {
	if err := a.checkRender(frame, s); err != nil {
		return err
	}
	Logger().Debug("lottie: render", "identifier", a.identifier, "frame", frame)
	a.ref.anim.Render(frame, s.buf, s.width, s.height, s.bytesPerLine)
	runtime.KeepAlive(a)
	return nil
}

// RenderAsync starts rasterizing frame into s and returns without waiting.
// The surface must not be read or modified until Flush returns. A second
// RenderAsync, a Render or a SetProperty before Flush fails with
// ErrRenderInFlight.
func (a *Animation) RenderAsync(frame int, s *Surface) error {
	if err := a.checkRender(frame, s); err != nil {
		return err
	}
	Logger().Debug("lottie: render async", "identifier", a.identifier, "frame", frame)
	a.target = s
	a.ref.anim.RenderAsync(frame, s.buf, s.width, s.height, s.bytesPerLine)
	runtime.KeepAlive(a)
	return nil
}

// Flush waits for the outstanding RenderAsync. It returns immediately when
// no render is in flight.
func (a *Animation) Flush() error {
	if a.closed {
		return ErrClosed
	}
	if a.target == nil {
		return nil
	}
	a.ref.anim.Flush()
	runtime.KeepAlive(a)
	a.target = nil
	return nil
}

// Close releases the engine animation. An outstanding RenderAsync is
// flushed first. Calling Close more than once is a no-op.
func (a *Animation) Close() error {
	if a.closed {
		return nil
	}
	if a.target != nil {
		Logger().Warn("lottie: close with render in flight; flushing", "identifier", a.identifier)
		a.ref.anim.Flush()
		a.target = nil
	}
	a.cleanup.Stop()
	a.ref.release()
	a.closed = true
	Logger().Debug("lottie: animation closed", "identifier", a.identifier)
	return nil
}
