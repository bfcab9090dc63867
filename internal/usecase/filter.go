package usecase

import (
	"sort"
	"strings"

	"github.com/aidajassomex/finca57/internal/domain"
)

// SortKey — порядок выдачи витрины.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ParseSortKey разбирает ключ сортировки; неизвестные значения дают исходный порядок.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc:
		return SortKey(s)
	}

	return SortFeatured
}

// FilterProducts возвращает отфильтрованный и упорядоченный список товаров.
// Запрос — подстрока без учета регистра по имени, описанию и тегам;
// категория — точное совпадение (пустая = все). Сортировки по цене стабильны:
// товары с равной ценой сохраняют исходный относительный порядок.
func FilterProducts(products []domain.Product, req *ListProductsReq) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(req.Query))

	list := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(searchText(p), query) {
			continue
		}
		if req.Category != "" && p.Category != req.Category {
			continue
		}
		list = append(list, p)
	}

	switch req.Sort {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Price.Amount.LessThan(list[j].Price.Amount)
		})
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[j].Price.Amount.LessThan(list[i].Price.Amount)
		})
	}

	return list
}

func searchText(p domain.Product) string {
	parts := []string{p.Name, p.Description, strings.Join(p.Tags, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}
