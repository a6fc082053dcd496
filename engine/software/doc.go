// Package software provides a pure Go animation engine.
//
// The engine is registered under engine.EngineSoftware on import and is the
// fallback when librlottie is not compiled in. It reads Lottie JSON
// (composition size, frame rate, in/out points, markers and layers) and
// keeps property overrides with rlottie keypath rules:
//
//	layer.group.fill   exact node
//	layer.*.fill       "*" matches one level
//	**.fill            "**" matches any number of levels
//
// # Rasterization
//
// Frames are rasterized with golang.org/x/image/vector as a static preview:
// solid layers and rectangle/ellipse shapes with fills and strokes, using
// the first keyframe of animated properties. Paths, trim, masks, mattes,
// parenting, precomps and images are not drawn; the lottie package does not
// depend on them and librlottie covers the full format.
//
// # Model Cache
//
// Parsed compositions are cached by key in an LRU cache shared by all
// animations of the engine (DefaultModelCacheSize entries).
package software
