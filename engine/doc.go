// Package engine defines the contract between the lottie package and the
// animation engine that parses, tweens and rasterizes animations.
//
// The lottie package never interprets animation content itself. Everything
// behind an Animation is owned by an Engine implementation:
//
//   - engine/rlottie: binding to Samsung's librlottie (build tag "rlottie")
//   - engine/software: pure Go reference engine with a static preview rasterizer
//
// # Engine Registration
//
// Engines register themselves from init() functions:
//
//	import _ "github.com/gogpu/lottie/engine/software"
//
// Use Default() to get the best available engine, or Get() to request one
// by name:
//
//	e := engine.Default() // rlottie if compiled in, otherwise software
//	e := engine.Get(engine.EngineSoftware)
//
// # Pixel Format
//
// Render buffers hold one uint32 per pixel in premultiplied ARGB order
// (0xAARRGGBB). bytesPerLine is measured in bytes and must be a multiple of 4.
package engine
