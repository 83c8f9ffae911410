// Package whatsapp builds the order receipt sent to the store's
// WhatsApp line. Compose is a pure function of its inputs: the same
// items, total and customer always produce byte-identical text and
// link, whether the order comes from the checkout flow or from the
// assistant.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/auraderm/storefront/internal/models"
	"github.com/auraderm/storefront/internal/pricing"
)

type Composer struct {
	baseURL   string
	recipient string
}

func NewComposer(baseURL, recipient string) *Composer {
	return &Composer{
		baseURL:   strings.TrimRight(baseURL, "/"),
		recipient: recipient,
	}
}

// Compose renders the receipt and its deep link. Items are emitted in
// the order given (cart insertion order). The total is taken as
// supplied, never recomputed: shipping or other adjustments are the
// caller's business.
func (c *Composer) Compose(items []models.LineItem, total float64, customer *models.CustomerData) models.OrderMessage {
	var b strings.Builder

	b.WriteString("🌸 *RECIBO DE PEDIDO - AuraDerm* 🌸\n\n")
	b.WriteString("📋 *DETALLE DEL PEDIDO*\n\n")

	for _, item := range items {
		fmt.Fprintf(&b, "• %s\n", item.Name)
		fmt.Fprintf(&b, "  Cantidad: %d\n", item.Quantity)
		fmt.Fprintf(&b, "  Precio unitario: %s\n", pricing.Format(item.Price))
		fmt.Fprintf(&b, "  Subtotal: %s\n\n", pricing.Format(item.Subtotal()))
	}

	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "💰 *TOTAL PRODUCTOS:* %s\n", pricing.Format(total))
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n\n")

	if customer != nil {
		b.WriteString("👤 *Datos del Cliente:*\n")
		fmt.Fprintf(&b, "Nombre: %s\n", customer.Name)
		fmt.Fprintf(&b, "Ciudad: %s\n\n", customer.City)
	}

	b.WriteString("📦 El costo de envío se confirmará según tu ciudad.\n\n")
	b.WriteString("¡Gracias por tu compra! 💖")

	text := b.String()

	return models.OrderMessage{
		Text: text,
		Link: fmt.Sprintf("%s/%s?text=%s", c.baseURL, c.recipient, url.QueryEscape(text)),
	}
}
