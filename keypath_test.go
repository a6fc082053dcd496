package lottie

import (
	"errors"
	"strings"
	"testing"
)

func TestNewKeyPath(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		offset int // -1 when valid
	}{
		{"empty", "", -1},
		{"simple", "layer.group.fill", -1},
		{"wildcards", "**.*.fill", -1},
		{"unicode", "Ebene 1.Форма.填充", -1},
		{"long", strings.Repeat("a.", 1<<16) + "b", -1},
		{"nul first", "\x00layer", 0},
		{"nul middle", "layer\x00.fill", 5},
		{"nul last", "layer.fill\x00", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := NewKeyPath(tt.in)
			if tt.offset < 0 {
				if err != nil {
					t.Fatalf("NewKeyPath() error = %v", err)
				}
				if kp.String() != tt.in {
					t.Errorf("String() = %q, want %q", kp.String(), tt.in)
				}
				return
			}
			var encErr *EncodingError
			if !errors.As(err, &encErr) {
				t.Fatalf("NewKeyPath() error = %v, want *EncodingError", err)
			}
			if encErr.Field != "keypath" || encErr.Offset != tt.offset {
				t.Errorf("EncodingError = %+v, want keypath at %d", encErr, tt.offset)
			}
		})
	}
}

func TestMustKeyPathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustKeyPath should panic on a NUL byte")
		}
	}()
	MustKeyPath("a\x00b")
}
