package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewPoolDefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if p.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want GOMAXPROCS", p.Workers())
	}
}

func TestRunExecutesAll(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var count atomic.Int64
	jobs := make([]func() error, 100)
	for i := range jobs {
		jobs[i] = func() error {
			count.Add(1)
			return nil
		}
	}
	if err := p.Run(jobs); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count.Load() != 100 {
		t.Errorf("ran %d jobs, want 100", count.Load())
	}
}

func TestRunJoinsErrors(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	errA := errors.New("a")
	errB := errors.New("b")
	err := p.Run([]func() error{
		func() error { return errA },
		func() error { return nil },
		func() error { return errB },
	})
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Run() error = %v, want both job errors", err)
	}
}

func TestRunUnevenJobs(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	// One slow job must not stop the others from completing.
	release := make(chan struct{})
	var fast atomic.Int64
	jobs := []func() error{
		func() error {
			<-release
			return nil
		},
	}
	for range 20 {
		jobs = append(jobs, func() error {
			if fast.Add(1) == 20 {
				close(release)
			}
			return nil
		})
	}
	if err := p.Run(jobs); err != nil {
		t.Fatal(err)
	}
}

func TestClose(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	if err := p.Run([]func() error{func() error { return nil }}); !errors.Is(err, ErrClosed) {
		t.Errorf("Run() after Close = %v, want ErrClosed", err)
	}
}
