package domain

// Product описывает товар каталога. Неизменяем после загрузки.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Category    string
	Unit        string
	Image       string
	Tags        []string
}

// Catalog — загруженный каталог: товары в исходном порядке и плоская стоимость доставки.
type Catalog struct {
	Products []Product
	Shipping ShippingFee
}

// ShippingFee — плоская стоимость доставки.
// Known=false означает "по котировке": сумма неизвестна до согласования адреса.
type ShippingFee struct {
	Amount Money
	Known  bool
}

// KnownShippingFee создает известную плоскую стоимость доставки (0 — валидное значение).
func KnownShippingFee(amount Money) ShippingFee {
	return ShippingFee{Amount: amount, Known: true}
}

// PendingShippingFee создает стоимость доставки "по котировке".
func PendingShippingFee() ShippingFee {
	return ShippingFee{Amount: ZeroMoney(), Known: false}
}

// CategoryOrder — официальный порядок и названия меню категорий.
// Фиксирован независимо от содержимого каталога.
var CategoryOrder = []string{
	"Chips de vegetales",
	"Deshidratados enchilados",
	"Semillas con chocolate",
	"Semillas selectas",
	"Gomitas enchiladas",
	"Fruta deshidratada",
}

// FindProduct ищет товар по идентификатору. Возвращает false, если товара нет.
func (c Catalog) FindProduct(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}
