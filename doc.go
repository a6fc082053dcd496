// Package lottie loads and renders Lottie animations through a native
// animation engine.
//
// # Overview
//
// lottie is a thin, safe layer over an animation engine. It owns the
// engine animation and releases it exactly once. It validates strings
// before they reach C and checks property override values against their
// documented ranges. Render targets are checked before any pixel is
// written.
//
// # Quick Start
//
//	import "github.com/gogpu/lottie"
//
//	anim, err := lottie.FromFile("spinner.json")
//	if err != nil {
//	    return err
//	}
//	defer anim.Close()
//
//	w, h := anim.Size()
//	s := lottie.NewSurface(w, h)
//	if err := anim.Render(anim.FrameAtPos(0.5), s); err != nil {
//	    return err
//	}
//	s.SavePNG("frame.png")
//
// # Property Overrides
//
// Overrides pair a KeyPath with a Property built by one of the New*
// functions. Builders return ok == false for out-of-range input:
//
//	red, ok := lottie.NewFillColor(1, 0, 0)
//	if ok {
//	    err = anim.SetProperty(lottie.MustKeyPath("**.fill"), red)
//	}
//
// # Engines
//
// Engines live in the engine package. librlottie is used when the module
// is built with the "rlottie" tag and cgo; otherwise the pure Go software
// engine renders a static preview. Use WithEngine or WithEngineName to
// choose explicitly.
//
// # Pixel Format
//
// Surfaces hold ARGB32 premultiplied pixels, one uint32 per pixel
// (0xAARRGGBB). Rows are BytesPerLine bytes apart and may be padded.
//
// # Concurrency
//
// An Animation must be used by one goroutine at a time. RenderAsync hands
// the frame to the engine and returns; Flush is the only synchronization
// point. Different animations may be used concurrently.
package lottie
