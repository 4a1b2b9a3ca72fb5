// Package module wires the playground into the API using modkit
package module

import (
	"net/http"

	modkit "fieldnotes/internal/modkit"
	"fieldnotes/internal/modkit/httpkit"
	str "fieldnotes/internal/platform/strings"
	feeddom "fieldnotes/internal/services/api/feed/domain"
	pgdom "fieldnotes/internal/services/api/playground/domain"
	pghttp "fieldnotes/internal/services/api/playground/http"
	pgsvc "fieldnotes/internal/services/api/playground/service"
)

// Ports are the cross-module dependencies the playground consumes;
// Summarizer may be nil when no LLM key is configured
type Ports struct {
	Assembler  feeddom.AssemblerPort
	Summarizer pgdom.Summarizer
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc pgsvc.Service
}

// New constructs a playground module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("playground"),
		modkit.WithPrefix("/playground"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok {
		panic("playground module requires Ports{Assembler, Summarizer}")
	}

	svc := pgsvc.New(p.Assembler, p.Summarizer)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		pghttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
