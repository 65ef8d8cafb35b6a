// Package pg wires PostgreSQL connectivity: a pgx connection pool with
// startup retry logic and goose-based schema migrations.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		// database unreachable after retries
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		// schema out of date and cannot be fixed automatically
//	}
//
// Configuration comes from PG_* environment variables; see Config.
package pg
