// Package module wires reports into the API using modkit
package module

import (
	"net/http"

	modkit "fieldnotes/internal/modkit"
	"fieldnotes/internal/modkit/httpkit"
	str "fieldnotes/internal/platform/strings"
	feeddom "fieldnotes/internal/services/api/feed/domain"
	reportshttp "fieldnotes/internal/services/api/reports/http"
	reportsrepo "fieldnotes/internal/services/api/reports/repo"
	reportssvc "fieldnotes/internal/services/api/reports/service"
	rosterdom "fieldnotes/internal/services/api/roster/domain"
)

// Ports are the cross-module dependencies reports consumes;
// inject with modkit.WithPorts
type Ports struct {
	Assembler feeddom.AssemblerPort
	Aliases   rosterdom.AliasesPort
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

	svc reportssvc.Service
}

// New constructs a reports module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reports"),
		modkit.WithPrefix("/reports"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok {
		panic("reports module requires Ports{Assembler, Aliases}")
	}

	repo := reportsrepo.NewPG()
	svc := reportssvc.New(deps.PG, repo, p.Assembler, p.Aliases)

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
		reportshttp.Register(r, m.svc)
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
