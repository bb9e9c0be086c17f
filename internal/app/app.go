package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/noticeboard/config"
	"github.com/daniilsolovey/noticeboard/internal/auth"
	"github.com/daniilsolovey/noticeboard/internal/db"
	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	"github.com/daniilsolovey/noticeboard/internal/rest"
	"github.com/daniilsolovey/noticeboard/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/rpc"

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	issuer, err := auth.NewIssuer(cfg.Auth.Secret)
	if err != nil {
		return nil, err
	}

	repo := db.New(dbConnect)
	manager := newsportal.NewManager(repo, auth.NewHasher(cfg.Auth.BcryptCost), issuer, logger)

	e := rest.NewHandler(manager, logger).RegisterRoutes(cfg.App.BodyLimit)
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "service started", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
