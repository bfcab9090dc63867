package catalogjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/shopspring/decimal"
)

// catalogDocument — сырой формат products.json.
// Поле products разбирается отдельно: не-массив деградирует до пустого каталога.
type catalogDocument struct {
	Products     json.RawMessage  `json:"products"`
	ShippingFlat *decimal.Decimal `json:"shipping_flat"`
}

// productID принимает идентификатор как строку или число:
// оригинальный документ каталога отдает числовые id.
type productID string

func (id *productID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*id = productID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*id = productID(n.String())
	return nil
}

type productModel struct {
	ID          productID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	Unit        string           `json:"unit"`
	Image       string           `json:"image"`
	Tags        []string         `json:"tags"`
}

func (m productModel) toDomain() domain.Product {
	// Отсутствующая цена трактуется как ноль — явная политика по умолчанию
	price := decimal.Zero
	if m.Price != nil {
		price = *m.Price
	}

	return domain.Product{
		ID:          string(m.ID),
		Name:        m.Name,
		Description: m.Description,
		Price:       domain.NewMoney(price),
		Category:    m.Category,
		Unit:        m.Unit,
		Image:       m.Image,
		Tags:        m.Tags,
	}
}

func (d catalogDocument) toDomain(source string) (domain.Catalog, error) {
	// Политика по полю products: не-массив (или мусор) — пустой список,
	// массив с нечитаемым элементом — ошибка загрузки, а не тихая потеря каталога.
	var models []productModel
	if isJSONArray(d.Products) {
		if err := json.Unmarshal(d.Products, &models); err != nil {
			return domain.Catalog{}, fmt.Errorf("%s: invalid product entry: %w", source, err)
		}
	}

	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, m.toDomain())
	}

	// Политика: отсутствующий shipping_flat означает "по котировке",
	// числовое значение (включая 0) — известная плоская стоимость.
	shipping := domain.PendingShippingFee()
	if d.ShippingFlat != nil {
		shipping = domain.KnownShippingFee(domain.NewMoney(*d.ShippingFlat))
	}

	return domain.Catalog{
		Products: products,
		Shipping: shipping,
	}, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
