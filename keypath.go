package lottie

// KeyPath addresses one or more nodes of the animation layer tree.
//
// Components are separated by "." and matched against layer, group and
// shape names. "*" matches any single component and "**" any number of
// components:
//
//	layer.group.fill
//	layer.*.fill
//	**.fill
//
// KeyPath guarantees only that the path can be passed to the engine.
// Whether it matches anything is decided by the engine at override time.
type KeyPath struct {
	path string
}

// NewKeyPath validates s and returns it as a KeyPath.
// It returns an *EncodingError if s contains a NUL byte.
func NewKeyPath(s string) (KeyPath, error) {
	if err := checkBoundary("keypath", s); err != nil {
		return KeyPath{}, err
	}
	return KeyPath{path: s}, nil
}

// MustKeyPath is like NewKeyPath but panics on error.
// Intended for constant keypaths.
func MustKeyPath(s string) KeyPath {
	kp, err := NewKeyPath(s)
	if err != nil {
		panic(err)
	}
	return kp
}

// String returns the keypath text.
func (k KeyPath) String() string {
	return k.path
}
