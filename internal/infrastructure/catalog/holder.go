package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/aidajassomex/finca57/internal/cfg"
	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/aidajassomex/finca57/pkg/jitter"
	"github.com/aidajassomex/finca57/pkg/logger"
)

// Holder держит текущий снимок каталога и обновляет его.
// Неудачная загрузка не роняет сервис: снимок хранит ошибку,
// а уже загруженный каталог продолжает обслуживаться до следующего обновления.
type Holder struct {
	repo   usecase.CatalogRepository
	cfg    *cfg.CatalogCfg
	logger logger.Logger

	mu   sync.RWMutex
	snap usecase.CatalogSnapshot

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewHolder(repo usecase.CatalogRepository, cfg *cfg.CatalogCfg, logger logger.Logger) *Holder {
	return &Holder{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		snap:   usecase.CatalogSnapshot{Source: cfg.Source},
		stop:   make(chan struct{}),
	}
}

// Snapshot возвращает последний снимок каталога.
func (h *Holder) Snapshot() usecase.CatalogSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.snap
}

// Load выполняет одну загрузку каталога и обновляет снимок.
func (h *Holder) Load(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, h.cfg.FetchTimeout)
	defer cancel()

	catalog, err := h.repo.Fetch(loadCtx)

	h.mu.Lock()
	defer h.mu.Unlock()

	if err != nil {
		h.snap.Err = err
		h.logger.Warnf("catalog load failed. source: %s, err: %v", h.cfg.Source, err)
		return err
	}

	h.snap = usecase.CatalogSnapshot{
		Catalog:  catalog,
		Source:   h.cfg.Source,
		Loaded:   true,
		LoadedAt: time.Now(),
	}
	h.logger.Infof("catalog loaded. source: %s, products: %d, shipping_known: %t",
		h.cfg.Source, len(catalog.Products), catalog.Shipping.Known)

	return nil
}

// Start запускает периодическое обновление каталога.
// Интервал берется с джиттером, чтобы реплики не обновлялись синхронно.
// При нулевом интервале обновление отключено: каталог грузится один раз при старте.
func (h *Holder) Start(ctx context.Context) {
	if h.cfg.RefreshInterval <= 0 {
		return
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.run(ctx)
	}()
}

// Stop останавливает обновление и дожидается завершения воркера.
func (h *Holder) Stop() {
	close(h.stop)
	h.wg.Wait()
}

func (h *Holder) run(ctx context.Context) {
	for {
		timer := time.NewTimer(jitter.Duration(h.cfg.RefreshInterval, jitter.DefaultJitter))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-h.stop:
			timer.Stop()
			return
		case <-timer.C:
			// Ошибка уже записана в снимок, следующая попытка по расписанию
			_ = h.Load(ctx)
		}
	}
}
