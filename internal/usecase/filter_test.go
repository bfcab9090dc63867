package usecase_test

import (
	"strings"
	"testing"

	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogProduct(id, name, description, category string, price float64, tags ...string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Price:       domain.NewMoney(decimal.NewFromFloat(price)),
		Tags:        tags,
	}
}

func testProducts() []domain.Product {
	return []domain.Product{
		catalogProduct("1", "Chips de camote", "crujientes", "Chips de vegetales", 65, "camote", "horneado"),
		catalogProduct("2", "Mango enchilado", "con chile", "Fruta deshidratada", 80, "mango"),
		catalogProduct("3", "Almendra con chocolate", "cacao 70%", "Semillas con chocolate", 120),
		catalogProduct("4", "Chips de betabel", "dulces", "Chips de vegetales", 65, "betabel"),
		catalogProduct("5", "Gomitas de mango", "enchiladas", "Gomitas enchiladas", 55, "mango", "gomita"),
	}
}

func TestFilterProductsQuery(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query matches all", query: "", wantIDs: []string{"1", "2", "3", "4", "5"}},
		{name: "matches name case-insensitive", query: "CHIPS", wantIDs: []string{"1", "4"}},
		{name: "matches description", query: "cacao", wantIDs: []string{"3"}},
		{name: "matches tags", query: "mango", wantIDs: []string{"2", "5"}},
		{name: "no match is a valid empty result", query: "pistache", wantIDs: []string{}},
		{name: "query is trimmed", query: "  camote  ", wantIDs: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := usecase.NewListProductsReq(tt.query, "", "")
			got := usecase.FilterProducts(products, req)

			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)

				// Корректность: каждый результат действительно содержит запрос
				text := strings.ToLower(p.Name + " " + p.Description + " " + strings.Join(p.Tags, " "))
				assert.Contains(t, text, strings.ToLower(strings.TrimSpace(tt.query)))
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilterProductsCategory(t *testing.T) {
	products := testProducts()

	req := usecase.NewListProductsReq("", "Chips de vegetales", "")
	got := usecase.FilterProducts(products, req)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestFilterProductsSort(t *testing.T) {
	products := testProducts()

	t.Run("price ascending is stable for equal prices", func(t *testing.T) {
		got := usecase.FilterProducts(products, usecase.NewListProductsReq("", "", "price-asc"))

		// 55, 65, 65, 80, 120; товары 1 и 4 стоят одинаково и сохраняют исходный порядок
		wantIDs := []string{"5", "1", "4", "2", "3"}
		for i, p := range got {
			assert.Equal(t, wantIDs[i], p.ID)
		}
	})

	t.Run("descending reverses ascending for distinct prices", func(t *testing.T) {
		asc := usecase.FilterProducts(products, usecase.NewListProductsReq("mango", "", "price-asc"))
		desc := usecase.FilterProducts(products, usecase.NewListProductsReq("mango", "", "price-desc"))

		require.Len(t, asc, 2)
		require.Len(t, desc, 2)
		assert.Equal(t, asc[0].ID, desc[1].ID)
		assert.Equal(t, asc[1].ID, desc[0].ID)
	})

	t.Run("descending is stable for equal prices", func(t *testing.T) {
		got := usecase.FilterProducts(products, usecase.NewListProductsReq("", "Chips de vegetales", "price-desc"))

		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "4", got[1].ID)
	})

	t.Run("unknown sort keeps featured order", func(t *testing.T) {
		got := usecase.FilterProducts(products, usecase.NewListProductsReq("", "", "garbage"))

		require.Len(t, got, 5)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "5", got[4].ID)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		usecase.FilterProducts(products, usecase.NewListProductsReq("", "", "price-desc"))

		assert.Equal(t, "1", products[0].ID)
		assert.Equal(t, "5", products[4].ID)
	})
}
