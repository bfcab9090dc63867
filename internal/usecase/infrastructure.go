package usecase

import (
	"time"

	"github.com/aidajassomex/finca57/internal/domain"
)

// CatalogSnapshot — текущее состояние каталога.
// Err отражает последнюю неудачную загрузку; Loaded=false — каталог еще ни разу не загружался.
type CatalogSnapshot struct {
	Catalog  domain.Catalog
	Source   string
	Loaded   bool
	LoadedAt time.Time
	Err      error
}

// CatalogProvider отдает последний снимок каталога без блокировок на чтении.
type CatalogProvider interface {
	Snapshot() CatalogSnapshot
}
