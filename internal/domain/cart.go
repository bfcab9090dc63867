package domain

// DeliveryMode — способ получения заказа.
type DeliveryMode string

const (
	DeliveryPickup   DeliveryMode = "pickup"
	DeliveryShipping DeliveryMode = "shipping"
)

// ParseDeliveryMode проверяет строковое значение способа доставки.
func ParseDeliveryMode(s string) (DeliveryMode, bool) {
	switch DeliveryMode(s) {
	case DeliveryPickup, DeliveryShipping:
		return DeliveryMode(s), true
	}

	return "", false
}

// CartLine — позиция корзины: снимок товара и количество (всегда >= 1).
type CartLine struct {
	Product Product
	Qty     int
}

// Cart — корзина сессии. Позиции хранятся в порядке добавления,
// по одной на товар. Корзина живет только в пределах сессии.
type Cart struct {
	ID       string
	Lines    []CartLine
	Delivery DeliveryMode
}

// NewCart создает пустую корзину с самовывозом по умолчанию.
func NewCart(id string) Cart {
	return Cart{
		ID:       id,
		Delivery: DeliveryPickup,
	}
}

// AddLine увеличивает количество товара на единицу, создавая позицию в хвосте,
// если товара в корзине еще нет.
func (c *Cart) AddLine(p Product) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Qty++
			return
		}
	}

	c.Lines = append(c.Lines, CartLine{Product: p, Qty: 1})
}

// RemoveLine удаляет позицию целиком независимо от количества.
// Возвращает false, если товара в корзине не было.
func (c *Cart) RemoveLine(productID string) bool {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}

	return false
}

// IsEmpty сообщает, пуста ли корзина.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount — суммарное количество единиц по всем позициям.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Qty
	}

	return count
}

// Subtotal — сумма qty × price по всем позициям.
func (c Cart) Subtotal() Money {
	subtotal := ZeroMoney()
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.Product.Price.Mul(line.Qty))
	}

	return subtotal
}

// Totals — производные итоги корзины. Не хранятся, пересчитываются на каждый запрос.
type Totals struct {
	ItemCount int
	Subtotal  Money
	Shipping  Money
	Total     Money

	// ShippingPending: доставка выбрана, но стоимость "по котировке"
	// и в Total не входит.
	ShippingPending bool
}

// ComputeTotals вычисляет итоги корзины. Чистая функция, корзину не меняет.
// Стоимость доставки применяется только при delivery=shipping и непустой корзине;
// неизвестная стоимость помечается как pending и в Total не входит.
func ComputeTotals(cart Cart, fee ShippingFee) Totals {
	totals := Totals{
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
		Shipping:  ZeroMoney(),
	}

	if cart.Delivery == DeliveryShipping && !cart.IsEmpty() {
		if fee.Known {
			totals.Shipping = fee.Amount
		} else {
			totals.ShippingPending = true
		}
	}

	totals.Total = totals.Subtotal.Add(totals.Shipping)

	return totals
}
