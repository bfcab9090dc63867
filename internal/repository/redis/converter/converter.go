package converter

import (
	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// CartConverter преобразует корзину между доменной моделью и Redis-моделью.
type CartConverter interface {
	ToRedisModel(cart domain.Cart) *CartRedisModel
	ToDomain(model *CartRedisModel) (domain.Cart, error)
}

type cartConverterImpl struct{}

func NewCartConverterImpl() CartConverter {
	return &cartConverterImpl{}
}

func (c *cartConverterImpl) ToRedisModel(cart domain.Cart) *CartRedisModel {
	lines := make([]CartLineRedisModel, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, CartLineRedisModel{
			Product: toProductModel(line.Product),
			Qty:     line.Qty,
		})
	}

	return &CartRedisModel{
		ID:       cart.ID,
		Delivery: string(cart.Delivery),
		Lines:    lines,
	}
}

func (c *cartConverterImpl) ToDomain(model *CartRedisModel) (domain.Cart, error) {
	delivery, ok := domain.ParseDeliveryMode(model.Delivery)
	if !ok {
		return domain.Cart{}, e.Wrap(model.Delivery, e.ErrInvalidDeliveryMode)
	}

	lines := make([]domain.CartLine, 0, len(model.Lines))
	for _, line := range model.Lines {
		product, err := toDomainProduct(line.Product)
		if err != nil {
			return domain.Cart{}, err
		}

		lines = append(lines, domain.CartLine{
			Product: product,
			Qty:     line.Qty,
		})
	}

	return domain.Cart{
		ID:       model.ID,
		Lines:    lines,
		Delivery: delivery,
	}, nil
}

func toProductModel(p domain.Product) ProductRedisModel {
	return ProductRedisModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount.String(),
		Currency:    p.Price.Currency.String(),
		Category:    p.Category,
		Unit:        p.Unit,
		Image:       p.Image,
		Tags:        p.Tags,
	}
}

func toDomainProduct(m ProductRedisModel) (domain.Product, error) {
	amount, err := decimal.NewFromString(m.Price)
	if err != nil {
		return domain.Product{}, e.Wrap(m.Price, err)
	}

	unit, err := currency.ParseISO(m.Currency)
	if err != nil {
		return domain.Product{}, e.Wrap(m.Currency, err)
	}

	return domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       domain.Money{Amount: amount, Currency: unit},
		Category:    m.Category,
		Unit:        m.Unit,
		Image:       m.Image,
		Tags:        m.Tags,
	}, nil
}
