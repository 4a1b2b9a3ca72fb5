// @title         Fieldnotes API
// @version       0.1.0
// @description   Read-mostly dashboard endpoints for the field reporting program

package main

import (
	"context"

	"fieldnotes/internal/adapters/llm/gemini"
	"fieldnotes/internal/platform/config"
	"fieldnotes/internal/platform/logger"
	phttp "fieldnotes/internal/platform/net/http"
	"fieldnotes/internal/platform/store"

	"fieldnotes/internal/services/api"
)

func main() {
	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")  // pgCfg lives under SERVICE_PGSQL_*
	gmCfg := root.Prefix("SERVICE_GEMINI_") // gmCfg lives under SERVICE_GEMINI_*

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "fieldnotes-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// the playground degrades to Unavailable without a key
	var llm *gemini.Client
	if key := gmCfg.MayString("API_KEY", ""); key != "" {
		llm, err = gemini.Open(context.Background(), gemini.Config{
			APIKey: key,
			Model:  gmCfg.MayString("MODEL", ""),
		})
		if err != nil {
			l.Warn().Err(err).Msg("gemini client unavailable, playground disabled")
			llm = nil
		}
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Gemini:         llm,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
