package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/aidajassomex/finca57/internal/cfg"
	v1Http "github.com/aidajassomex/finca57/internal/delivery/v1/http"
	catalogInfra "github.com/aidajassomex/finca57/internal/infrastructure/catalog"
	"github.com/aidajassomex/finca57/internal/repository/catalogjson"
	"github.com/aidajassomex/finca57/internal/repository/memory"
	redisRepo "github.com/aidajassomex/finca57/internal/repository/redis"
	redisConv "github.com/aidajassomex/finca57/internal/repository/redis/converter"
	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/aidajassomex/finca57/pkg/clients"
	"github.com/aidajassomex/finca57/pkg/closer"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg    *config.Config
	logger logger.Logger

	holder  *catalogInfra.Holder
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

// NewApp собирает зависимости приложения.
// Неудачная первичная загрузка каталога не фатальна: сервис поднимается
// и отдает явное состояние ошибки, пока каталог не загрузится.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	catalogRepo := catalogjson.NewCatalogRepo(cfg.Catalog)
	holder := catalogInfra.NewHolder(catalogRepo, cfg.Catalog, log)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout)
	if err := holder.Load(loadCtx); err != nil {
		log.Errorf(err, "initial catalog load failed, serving error state. source: %s", cfg.Catalog.Source)
	}
	loadCancel()

	cartRepo, err := buildCartRepo(cfg, log, cl)
	if err != nil {
		return nil, err
	}

	catalogUC := usecase.NewCatalogUC(holder, log)
	cartUC := usecase.NewCartUC(cartRepo, holder, log)
	checkoutUC := usecase.NewCheckoutUC(cartRepo, holder, cfg.Store, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, checkoutUC, cfg.Catalog.Source)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(httpSrv.Stop)
	cl.Add(func(ctx context.Context) error {
		holder.Stop()
		return nil
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		holder:  holder,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и фоновое обновление каталога,
// ждет сигнала остановки и закрывает ресурсы через closer (LIFO).
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.holder.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

// buildCartRepo выбирает бэкенд корзин по конфигурации.
func buildCartRepo(cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.CartRepository, error) {
	switch cfg.Cart.Backend {
	case config.CartBackendMemory:
		repo := memory.NewCartRepo(cfg.Cart)
		cl.Add(repo.Close)
		return repo, nil

	case config.CartBackendRedis:
		redisClient := clients.NewRedisClient(cfg.Redis)

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pingCancel()
		if err := redisClient.Ping(pingCtx); err != nil {
			log.Errorf(err, "failed to connect to redis")
			return nil, err
		}

		cl.Add(func(ctx context.Context) error {
			return redisClient.Client.Close()
		})

		return redisRepo.NewCartRepo(redisClient, redisConv.NewCartConverterImpl(), cfg.Cart.TTL, log), nil
	}

	return nil, e.Wrap(string(cfg.Cart.Backend), e.ErrUnknownCartBackend)
}
