//go:build rlottie && cgo

package rlottie

import (
	"errors"
	"os"
	"testing"

	"github.com/gogpu/lottie/engine"
)

func loadFixture(t *testing.T) engine.Animation {
	t.Helper()
	data, err := os.ReadFile("../../testdata/spinner.json")
	if err != nil {
		t.Fatal(err)
	}
	a, err := New().Load(string(data), "spinner-test", "../../testdata")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Cleanup(a.Destroy)
	return a
}

func TestEngineRegistration(t *testing.T) {
	e := engine.Get(engine.EngineRlottie)
	if e == nil {
		t.Fatal("rlottie engine should be registered with the rlottie tag")
	}
	if e.Name() != engine.EngineRlottie {
		t.Errorf("Name() = %q, want %q", e.Name(), engine.EngineRlottie)
	}
	if d := engine.Default(); d == nil || d.Name() != engine.EngineRlottie {
		t.Error("rlottie should be the default engine when compiled in")
	}
}

func TestLoadMetadata(t *testing.T) {
	a := loadFixture(t)

	if w, h := a.Size(); w != 237 || h != 237 {
		t.Errorf("Size() = %dx%d, want 237x237", w, h)
	}
	if got := a.TotalFrames(); got != 60 {
		t.Errorf("TotalFrames() = %d, want 60", got)
	}
	if got := a.FrameRate(); got != 30 {
		t.Errorf("FrameRate() = %v, want 30", got)
	}
	if got := a.Duration(); got != 2 {
		t.Errorf("Duration() = %v, want 2", got)
	}
	if got := len(a.Markers()); got != 2 {
		t.Errorf("Markers() = %d entries, want 2", got)
	}
}

func TestLoadRejects(t *testing.T) {
	if _, err := New().Load("{not json", "", ""); !errors.Is(err, engine.ErrRejected) {
		t.Errorf("Load() error = %v, want ErrRejected", err)
	}
	if _, err := New().Load("{}", "a\x00b", ""); !errors.Is(err, ErrEmbeddedNUL) {
		t.Errorf("Load() error = %v, want ErrEmbeddedNUL", err)
	}
}

func TestRenderAndOverride(t *testing.T) {
	a := loadFixture(t)

	buf := make([]uint32, 237*237)
	a.Render(0, buf, 237, 237, 237*4)
	if got := buf[118*237+118]; got != 0xFFFF0000 {
		t.Errorf("center = %#08x, want red", got)
	}

	a.Override(engine.PropertyFillColor, "dot.circle.fill", 0, 0, 1)
	a.RenderAsync(0, buf, 237, 237, 237*4)
	a.Flush()
	if got := buf[118*237+118]; got != 0xFF0000FF {
		t.Errorf("center after override = %#08x, want blue", got)
	}
}
