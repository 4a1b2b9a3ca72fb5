package modkit

import (
	"net/http"
	"testing"

	"fieldnotes/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("expected zero name/prefix, got %q %q", b.Name, b.Prefix)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("expected non-nil hook defaults")
	}
	// default subrouter is identity
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("expected identity subrouter to pass nil through")
	}
}

func TestBuild_AppliesOptions(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	type ports struct{ N int }

	b := Build(
		WithName("feed"),
		WithPrefix("/feed"),
		WithMiddlewares(mw),
		WithPorts(ports{N: 7}),
		WithSwagger(true),
	)

	if b.Name != "feed" {
		t.Fatalf("name: got %q", b.Name)
	}
	if b.Prefix != "/feed" {
		t.Fatalf("prefix: got %q", b.Prefix)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw: got %d", len(b.Mw))
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 7 {
		t.Fatalf("ports: got %#v", b.Ports)
	}
	if !b.SwaggerOn {
		t.Fatalf("swagger should be on")
	}
}

func TestBuild_RegisterHook(t *testing.T) {
	t.Parallel()

	called := false
	b := Build(WithRegister(func(httpkit.Router) { called = true }))
	b.Register(nil)
	if !called {
		t.Fatalf("register hook not invoked")
	}
}
