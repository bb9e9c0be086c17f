package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/noticeboard/config"
	"github.com/daniilsolovey/noticeboard/internal/app"
	"github.com/daniilsolovey/noticeboard/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flDatabaseURL = flag.String("database-url", "", "PostgreSQL URL, overrides [Database]")
	flJWTSecret   = flag.String("jwt-secret", "", "token signing secret, overrides [Auth].Secret")
	flPort        = flag.Int("port", 0, "listen port, overrides [App].Port")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Noticeboard API
// @version 1.0
// @description News and weekly schedule backend
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}
	exitOnError(applyOverrides(&cfg))

	dbc := pg.Connect(&cfg.Database)
	if cfg.App.LogQueries || *flDebug {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbc.Ping(context.Background()); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service, err := app.New(&cfg, dbc, lg)
	if err != nil {
		dbc.Close()
		exitOnError(err)
	}
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	if err := dbc.Close(); err != nil {
		lg.Error("database close failed", "error", err)
	}
}

// applyOverrides lets flags and their environment variables win over the file.
func applyOverrides(c *config.Config) error {
	if *flDatabaseURL != "" {
		opt, err := pg.ParseURL(*flDatabaseURL)
		if err != nil {
			return err
		}
		c.Database = *opt
	}
	if *flJWTSecret != "" {
		c.Auth.Secret = *flJWTSecret
	}
	if *flPort != 0 {
		c.App.Port = *flPort
	}

	return nil
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
