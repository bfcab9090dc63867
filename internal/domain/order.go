package domain

import (
	"fmt"
	"strings"
)

// BuildOrderMessage формирует текст заказа для WhatsApp.
// Результат детерминирован: строки позиций идут в порядке добавления в корзину.
// Пустую корзину должен отклонить вызывающий код до построения сообщения.
func BuildOrderMessage(cart Cart, fee ShippingFee, branch string) string {
	var lines []string

	lines = append(lines, "Hola, quiero hacer este pedido:")
	for _, line := range cart.Lines {
		lines = append(lines, fmt.Sprintf("• %s × %d — %s", line.Product.Name, line.Qty, line.Product.Price.Mul(line.Qty)))
	}

	subtotal := cart.Subtotal()
	lines = append(lines, fmt.Sprintf("Subtotal: %s", subtotal))

	if cart.Delivery == DeliveryPickup {
		lines = append(lines,
			"Entrega: Retiro en sucursal",
			fmt.Sprintf("Sucursal: %s", branch),
			fmt.Sprintf("Total a pagar al recoger: %s", subtotal),
		)
	} else {
		if fee.Known {
			lines = append(lines,
				fmt.Sprintf("Envío: %s", fee.Amount),
				fmt.Sprintf("Total: %s", subtotal.Add(fee.Amount)),
			)
		} else {
			lines = append(lines,
				"Envío: por cotizar (según dirección)",
				fmt.Sprintf("Total (sin envío): %s", subtotal),
			)
		}
		lines = append(lines,
			"",
			"Dirección de envío (calle, número, colonia, CP, ciudad y estado):",
		)
	}

	lines = append(lines,
		"",
		"Nombre:",
		"Método de pago preferido (transferencia / tarjeta / efectivo):",
	)

	return strings.Join(lines, "\n")
}

// BuildWholesaleMessage формирует запрос оптового каталога (mayoreo).
func BuildWholesaleMessage() string {
	return strings.Join([]string{
		"Hola, me interesa el catálogo de mayoreo de Finca 57.",
		"Por favor compártanme la lista de precios por volumen y presentaciones.",
		"Datos: ",
		"• Nombre:",
		"• Ciudad/Estado:",
		"• Giro (tienda/evento):",
	}, "\n")
}
