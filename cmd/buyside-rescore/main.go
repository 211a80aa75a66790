// Command buyside-rescore walks every stored agent profile through the
// authority engine again. Run it after a weights or threshold change so the
// directory ordering reflects the new tables
package main

import (
	"context"
	"flag"

	"buyside/internal/platform/config"
	"buyside/internal/platform/logger"
	"buyside/internal/platform/store"

	agentsrepo "buyside/internal/services/api/agents/repo"
	agentssvc "buyside/internal/services/api/agents/service"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()
	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		fID    = flag.String("id", "", "rescore a single profile and exit")
		fEvery = flag.Int("log-every", 500, "progress log interval")
	)
	flag.Parse()

	ctx := context.Background()
	svc := agentssvc.New(st.PG, agentsrepo.NewPG(), agentssvc.Config{})

	if *fID != "" {
		a, err := svc.Recompute(ctx, *fID)
		if err != nil {
			l.Panic().Err(err).Str("id", *fID).Msg("rescore failed")
		}
		l.Info().Str("id", a.ID).Int("score", a.AuthorityScore).Str("tier", a.Tier).Msg("rescored")
		return
	}

	ids, err := svc.ListIDs(ctx)
	if err != nil {
		l.Panic().Err(err).Msg("listing profile ids failed")
	}
	l.Info().Int("profiles", len(ids)).Msg("rescore starting")

	var failed int
	for i, id := range ids {
		if _, err := svc.Recompute(ctx, id); err != nil {
			failed++
			l.Error().Err(err).Str("id", id).Msg("rescore failed")
			continue
		}
		if *fEvery > 0 && (i+1)%*fEvery == 0 {
			l.Info().Int("done", i+1).Int("total", len(ids)).Msg("rescore progress")
		}
	}
	l.Info().Int("total", len(ids)).Int("failed", failed).Msg("rescore finished")
}
