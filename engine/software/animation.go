package software

import (
	"math"
	"slices"

	"github.com/gogpu/lottie/engine"
)

// animation implements engine.Animation on top of a shared composition.
type animation struct {
	comp      *composition
	overrides overrides

	// inflight is closed when the outstanding RenderAsync finishes.
	inflight chan struct{}
}

var _ engine.Animation = (*animation)(nil)

func (a *animation) Size() (width, height int) {
	return a.comp.width, a.comp.height
}

func (a *animation) Duration() float64 {
	return (a.comp.outPoint - a.comp.inPoint) / a.comp.frameRate
}

func (a *animation) TotalFrames() int {
	return a.comp.totalFrames()
}

func (a *animation) FrameRate() float64 {
	return a.comp.frameRate
}

// FrameAtPos clamps pos to [0, 1] and rounds to the nearest frame.
func (a *animation) FrameAtPos(pos float32) int {
	p := clamp01(float64(pos))
	last := a.comp.totalFrames() - 1
	if last <= 0 {
		return 0
	}
	return int(math.Round(p * float64(last)))
}

func (a *animation) Markers() []engine.Marker {
	return slices.Clone(a.comp.markers)
}

func (a *animation) Override(prop engine.Property, keypath string, args ...float64) {
	if n := prop.Arity(); n == 0 || len(args) != n {
		engine.Logger().Debug("software: override ignored",
			"property", prop.String(), "keypath", keypath, "args", len(args))
		return
	}
	a.overrides = a.overrides.set(prop, keypath, args)
}

func (a *animation) Render(frame int, buf []uint32, width, height, bytesPerLine int) {
	a.Flush()
	render(a.comp, a.overrides, a.clampFrame(frame), buf, width, height, bytesPerLine)
}

func (a *animation) RenderAsync(frame int, buf []uint32, width, height, bytesPerLine int) {
	a.Flush()

	// Later Override calls must not race with the worker.
	ov := slices.Clone(a.overrides)
	comp := a.comp
	frame = a.clampFrame(frame)
	done := make(chan struct{})
	a.inflight = done

	go func() {
		defer close(done)
		render(comp, ov, frame, buf, width, height, bytesPerLine)
	}()
}

func (a *animation) Flush() {
	if a.inflight == nil {
		return
	}
	<-a.inflight
	a.inflight = nil
}

func (a *animation) Destroy() {
	a.Flush()
	a.comp = nil
	a.overrides = nil
}

// clampFrame keeps frame inside [0, TotalFrames-1].
func (a *animation) clampFrame(frame int) int {
	return max(0, min(frame, a.comp.totalFrames()-1))
}
