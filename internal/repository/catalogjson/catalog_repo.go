package catalogjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/aidajassomex/finca57/internal/cfg"
	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/jimlawless/whereami"
)

// CatalogRepo загружает каталог из products.json — по HTTP или с диска.
// Документ каждый раз читается заново, без кэширования.
type CatalogRepo struct {
	source string
	client *http.Client
}

func NewCatalogRepo(cfg *cfg.CatalogCfg) *CatalogRepo {
	return &CatalogRepo{
		source: cfg.Source,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// Fetch читает и разбирает документ каталога.
// Недоступный источник, невалидный JSON или нечитаемый элемент массива products —
// ошибка загрузки с именем источника; отсутствующий или не-массив products
// деградирует до пустого каталога.
func (r *CatalogRepo) Fetch(ctx context.Context) (domain.Catalog, error) {
	data, err := r.read(ctx)
	if err != nil {
		return domain.Catalog{}, e.Wrap(whereami.WhereAmI(), err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Catalog{}, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%s: invalid JSON: %w", r.source, err))
	}

	catalog, err := doc.toDomain(r.source)
	if err != nil {
		return domain.Catalog{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return catalog, nil
}

func (r *CatalogRepo) read(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(r.source, "http://") || strings.HasPrefix(r.source, "https://") {
		return r.readHTTP(ctx)
	}

	data, err := os.ReadFile(r.source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.source, err)
	}

	return data, nil
}

func (r *CatalogRepo) readHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", r.source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", r.source, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
