package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordleaid/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve /compare, /candidates and the /sessions API.

Sessions are kept in memory by default; use --store sqlite or --store redis
to keep them across restarts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg

			wa, err := cfg.NewAid()
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.StoreOptions())
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					log.Error().Err(err).Msg("close store")
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpserver.New(wa, st, cfg.ServerOptions())
			log.Info().
				Str("port", cfg.Server.Port).
				Str("store", cfg.Store.Backend).
				Int("words", len(wa.Words())).
				Msg("starting wordleaid server")
			return srv.Start(ctx, ":"+cfg.Server.Port)
		},
	}

	cmd.Flags().String("port", "5175", "Listen port (env: PORT)")
	cmd.Flags().String("store", "memory", "Session store: memory, sqlite, redis")
	cmd.Flags().String("sqlite-path", "./data/wordleaid.db", "SQLite database file")
	cmd.Flags().String("redis-url", "redis://localhost:6379/0", "Redis connection URL")
	bind(a.v, cmd.Flags(), map[string]string{
		"server.port":       "port",
		"store.backend":     "store",
		"store.sqlite_path": "sqlite-path",
		"store.redis_url":   "redis-url",
	})

	return cmd
}
