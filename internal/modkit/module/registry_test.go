package module

import "testing"

type fakePorts struct{ Tag string }

func TestRegistry_RoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("roster", fakePorts{Tag: "aliases"})

	got, ok := PortsAs[fakePorts]("roster")
	if !ok {
		t.Fatalf("expected ports for roster")
	}
	if got.Tag != "aliases" {
		t.Fatalf("got %q", got.Tag)
	}
}

func TestRegistry_MissingName(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := PortsAs[fakePorts]("nope"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}

func TestRegistry_WrongType(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("feed", 42)
	if _, ok := PortsAs[fakePorts]("feed"); ok {
		t.Fatalf("expected type assertion miss")
	}
}
