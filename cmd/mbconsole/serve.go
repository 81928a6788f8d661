package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/persistdb"
	"github.com/ottermq/mbconsole/internal/session"
	"github.com/ottermq/mbconsole/pkg/logger"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/ottermq/mbconsole/web"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 10 * time.Second
	pruneEvery      = time.Hour
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web console.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(VERSION)
			if port != "" {
				cfg.WebPort = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to MBCONSOLE_WEB_PORT)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger.Init(cfg.LogLevel)
	log.Info().Str("version", cfg.Version).Str("broker", cfg.DefaultBrokerURL()).Msg("Starting mbconsole")

	if cfg.LoginMode == config.LoginModeStatic && cfg.AdminUsername == "admin" && cfg.AdminPassword == "admin" {
		log.Warn().Msg("Console login uses the default admin credentials")
	}
	if cfg.JwtSecret == "secret" {
		log.Warn().Msg("MBCONSOLE_JWT_SECRET is the default value; sessions can be forged")
	}

	var journal persistdb.Journal = persistdb.NopJournal{}
	if cfg.EnableActivityLog {
		db, err := persistdb.Open(filepath.Join(cfg.DataDir, "mbconsole.db"))
		if err != nil {
			return fmt.Errorf("open activity log: %w", err)
		}
		defer db.Close()
		log.Info().Str("path", db.Path()).Msg("Activity log opened")
		journal = db
		go pruneActivity(ctx, db, cfg.ActivityRetention)
	}

	recorder := metrics.NewRecorder(cfg.EnableMetrics)
	auth, err := console.NewAuthenticator(cfg, recorder)
	if err != nil {
		return err
	}

	sessions := session.NewStore(cfg.SessionTTL, time.Minute)
	defer sessions.Close()

	ws, err := web.NewWebServer(web.Options{
		Config:        cfg,
		Sessions:      sessions,
		Tokens:        session.NewTokenIssuer(cfg.JwtSecret),
		Authenticator: auth,
		Recorder:      recorder,
		Journal:       journal,
	})
	if err != nil {
		return err
	}

	var accessLog io.Writer
	if cfg.AccessLog != "" {
		logfile, err := os.OpenFile(cfg.AccessLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open access log: %w", err)
		}
		defer logfile.Close()
		accessLog = logfile
	}
	app := ws.SetupApp(accessLog)

	errc := make(chan error, 1)
	go func() {
		addr := ":" + cfg.WebPort
		log.Info().Str("addr", addr).Msg("Starting web server")
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down mbconsole...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Web server shutdown")
		return err
	}
	log.Info().Msg("Web server stopped")
	return nil
}

// pruneActivity drops journal rows older than retention until ctx ends.
func pruneActivity(ctx context.Context, db *persistdb.DB, retention time.Duration) {
	if retention <= 0 {
		return
	}
	ticker := time.NewTicker(pruneEvery)
	defer ticker.Stop()
	for {
		n, err := db.Prune(ctx, time.Now().Add(-retention))
		if err != nil {
			log.Warn().Err(err).Msg("Activity prune failed")
		} else if n > 0 {
			log.Debug().Int64("rows", n).Msg("Activity pruned")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
