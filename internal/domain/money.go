package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money — денежная сумма магазина. Все цены каталога в мексиканских песо.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// NewMoney создает сумму в валюте магазина.
func NewMoney(amount decimal.Decimal) Money {
	return Money{
		Amount:   amount,
		Currency: currency.MXN,
	}
}

// ZeroMoney возвращает нулевую сумму в валюте магазина.
func ZeroMoney() Money {
	return NewMoney(decimal.Zero)
}

func (m Money) Add(other Money) Money {
	return NewMoney(m.Amount.Add(other.Amount))
}

func (m Money) Mul(qty int) Money {
	return NewMoney(m.Amount.Mul(decimal.NewFromInt(int64(qty))))
}

// String форматирует сумму в стиле es-MX: $1,234.50.
// Единая точка форматирования для витрины и текста заказа.
func (m Money) String() string {
	return FormatAmount(m.Amount)
}

// FormatAmount форматирует сумму с двумя знаками после запятой и разделителями тысяч.
// Округление стандартное (half away from zero).
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	return sign + "$" + groupThousands(intPart) + "." + fracPart
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
