package dispatcher

import (
	"errors"
	"testing"
)

type counter struct {
	n int
}

func TestRegistryRegisterGet(t *testing.T) {
	r := NewRegistry[*counter]()

	if err := r.RegisterFunc("count.inc", func(c *counter) error { c.n++; return nil }); err != nil {
		t.Fatalf("RegisterFunc() error = %v", err)
	}

	if !r.Has("count.inc") {
		t.Error("expected count.inc to be registered")
	}
	if r.Get("count.missing") != nil {
		t.Error("Get of an unknown action should be nil")
	}

	c := &counter{}
	if err := r.Get("count.inc").Handle(c); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if c.n != 1 {
		t.Errorf("n = %d, want 1", c.n)
	}
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry[*counter]()
	_ = r.RegisterFunc("count.set", func(c *counter) error { c.n = 1; return nil })
	_ = r.RegisterFunc("count.set", func(c *counter) error { c.n = 2; return nil })

	c := &counter{}
	_ = r.Get("count.set").Handle(c)
	if c.n != 2 {
		t.Errorf("later registration should win, n = %d", c.n)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestRegistryInvalid(t *testing.T) {
	r := NewRegistry[*counter]()

	if err := r.RegisterFunc("", func(*counter) error { return nil }); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("empty name error = %v, want ErrInvalidAction", err)
	}
	if err := r.Register("x", nil); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("nil handler error = %v, want ErrInvalidAction", err)
	}
	if err := r.RegisterFunc("x", nil); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("nil func error = %v, want ErrInvalidAction", err)
	}
}

func TestRegistryCountHas(t *testing.T) {
	r := NewRegistry[*counter]()
	noop := func(*counter) error { return nil }
	_ = r.RegisterFunc("b", noop)
	_ = r.RegisterFunc("a", noop)
	_ = r.RegisterFunc("c", noop)

	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}
	if !r.Has("b") || r.Has("d") {
		t.Errorf("Has(b) = %v, Has(d) = %v", r.Has("b"), r.Has("d"))
	}
	if r.Get("d") != nil {
		t.Error("Get of an unknown action should be nil")
	}
}
