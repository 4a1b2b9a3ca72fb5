// Package api provides the HTTP API for the application
package api

import (
	"fieldnotes/internal/adapters/llm/gemini"
	"fieldnotes/internal/platform/config"
	"fieldnotes/internal/platform/logger"
	phttp "fieldnotes/internal/platform/net/http"
	"fieldnotes/internal/platform/store"

	"fieldnotes/internal/modkit"
	"fieldnotes/internal/modkit/httpkit"
	"fieldnotes/internal/modkit/module"
	"fieldnotes/internal/modkit/swaggerkit"

	centersmod "fieldnotes/internal/services/api/centers/module"
	districtsmod "fieldnotes/internal/services/api/districts/module"
	feedmod "fieldnotes/internal/services/api/feed/module"
	metamod "fieldnotes/internal/services/api/meta/module"
	playgroundmod "fieldnotes/internal/services/api/playground/module"
	reportsmod "fieldnotes/internal/services/api/reports/module"
	rostermod "fieldnotes/internal/services/api/roster/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Gemini is nil when no API key is configured; the playground then
	// reports Unavailable and ready marks the check skipped
	Gemini *gemini.Client

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct the port-owning modules first and extract what the
	// dependent modules need
	feed := feedmod.New(deps)
	roster := rostermod.New(deps)
	assembler := module.MustPortsOf[feedmod.Ports](feed).Assembler
	aliases := module.MustPortsOf[rostermod.Ports](roster).Aliases

	reports := reportsmod.New(deps, modkit.WithPorts(reportsmod.Ports{
		Assembler: assembler,
		Aliases:   aliases,
	}))

	pgPorts := playgroundmod.Ports{Assembler: assembler}
	if opt.Gemini != nil {
		pgPorts.Summarizer = opt.Gemini
	}
	playground := playgroundmod.New(deps, modkit.WithPorts(pgPorts))

	mods := []module.Module{
		metamod.New(deps, metamod.Options{GeminiConfigured: opt.Gemini != nil}),
		districtsmod.New(deps),
		centersmod.New(deps),
		roster,
		feed,
		reports,
		playground,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
