package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/huzelnut/crypto/internal/config"
	"github.com/huzelnut/crypto/internal/infra/csvdata"
	"github.com/huzelnut/crypto/internal/repository/inmemory"
	pricesvc "github.com/huzelnut/crypto/internal/service/prices"
	"github.com/huzelnut/crypto/internal/store"
	"github.com/huzelnut/crypto/internal/transport/httptransport"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	e    *echo.Echo
	serv *http.Server

	store     *store.Store
	priceRepo *inmemory.PriceRepo

	prices pricesvc.Service
}

func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	// Хранилище строится один раз при старте; дальше только чтение
	loader := csvdata.NewLoader(cfg.Prices, log)
	st, err := loader.Load()
	if err != nil {
		log.Error("price ingestion failed", slog.String("error", err.Error()))
		return nil, err
	}
	app.store = st

	app.priceRepo = inmemory.NewPriceRepository(st)
	app.prices = pricesvc.NewService(app.priceRepo, log)

	e := echo.New()
	e.HideBanner = true
	app.e = e

	ph := httptransport.NewPricesHandler(log, app.prices, cfg.Server.ReadTimeout)
	ph.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	log.Info("app initialized",
		slog.Int("currencies", len(st.Currencies())),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	a.log.Info("application stopped")
	return nil
}
