package rack

import (
	"errors"
	"testing"
)

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()
	factory := func(Context, Ports) (Unit, error) { return nil, nil }

	if err := r.Register(Model{Factory: factory}); err == nil {
		t.Fatal("expected error for empty slug")
	}
	if err := r.Register(Model{Config: Config{Slug: "x"}}); err == nil {
		t.Fatal("expected error for nil factory")
	}
	if err := r.Register(Model{Config: Config{Slug: "x"}, Factory: factory}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(Model{Config: Config{Slug: "X"}, Factory: factory}); !errors.Is(err, errDuplicateModule) {
		t.Fatalf("err = %v, want duplicate", err)
	}
}

func TestMustRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewRegistry().MustRegister(Model{})
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	slugs := r.Slugs()
	if len(slugs) != 2 || slugs[0] != "Filter" || slugs[1] != "Pass" {
		t.Fatalf("Slugs() = %v", slugs)
	}

	unit, panel, err := r.New("filter", testContext())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := unit.(*Filter); !ok {
		t.Fatalf("unit = %T, want *Filter", unit)
	}
	if panel.Config().Slug != "Filter" {
		t.Fatalf("panel slug = %q", panel.Config().Slug)
	}

	unit, _, err = r.New("PASS", testContext())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := unit.(*Pass); !ok {
		t.Fatalf("unit = %T, want *Pass", unit)
	}
}

func TestRegistryNewErrors(t *testing.T) {
	r := DefaultRegistry()
	if _, _, err := r.New("vco", testContext()); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("err = %v, want ErrUnknownModule", err)
	}
	if _, _, err := r.New("Filter", Context{}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("err = %v, want ErrInvalidSampleRate", err)
	}
}

func TestNewContext(t *testing.T) {
	ctx := NewContext()
	if ctx.SampleRate != 48000 || ctx.MaxChannels != 16 {
		t.Fatalf("NewContext() = %+v", ctx)
	}
	if err := ctx.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if (Context{SampleRate: testSampleRate}).channelLimit() != 16 {
		t.Fatal("unset MaxChannels should mean full polyphony")
	}
}
