// Package whatsapp builds the pre-filled messages and deep links that
// carry every storefront conversion into the messaging app. All
// construction is pure string work; nothing here performs I/O.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// DefaultNumber is the store's WhatsApp number used when no override is
// configured.
const DefaultNumber = "+573177795094"

const productTemplate = `¡Hola! 👋

Me interesa comprar:
📦 Producto: %s
🔖 SKU: %s
💰 Precio: $%s c/u
📊 Cantidad: %d
💸 Total: $%s

📋 Información importante:
🚚 Se debe cancelar el valor del envío
⏱️ Envíos en 24-48h

¿Podrían confirmar disponibilidad y costo de envío?

Gracias 😊`

// Message is a rendered message in both plain and URL-safe form.
type Message struct {
	Text    string
	Encoded string
}

// ProductMessage renders the buy-now template for a product. Prices are
// formatted with the es-CO grouping convention and no decimals; the
// total is unit price times quantity.
func ProductMessage(name, sku string, price catalog.Money, quantity int) Message {
	if quantity < 1 {
		quantity = 1
	}
	text := fmt.Sprintf(productTemplate,
		name, sku,
		price.Format(),
		quantity,
		price.MultiplyQty(quantity).Format(),
	)
	return Message{Text: text, Encoded: encodeComponent(text)}
}

// ContactMessage renders the contact-form template. The product-of-
// interest line is present only when product is non-empty; an empty
// value omits the line entirely rather than rendering it blank.
func ContactMessage(name, phone, message, product string) Message {
	var b strings.Builder
	b.WriteString("¡Hola! 👋\n\n")
	b.WriteString("Mi información de contacto:\n")
	fmt.Fprintf(&b, "👤 Nombre: %s\n", name)
	fmt.Fprintf(&b, "📱 Teléfono: %s\n", phone)
	if product != "" {
		fmt.Fprintf(&b, "📦 Producto de interés: %s\n", product)
	}
	fmt.Fprintf(&b, "\n💬 Mensaje: %s\n\n", message)
	b.WriteString("📋 Recordatorio:\n")
	b.WriteString("🚚 Se debe cancelar el valor del envío\n")
	b.WriteString("⏱️ Envíos en 24-48h\n\n")
	b.WriteString("Gracias 😊")

	text := b.String()
	return Message{Text: text, Encoded: encodeComponent(text)}
}

// encodeComponent percent-encodes text for a URL query component the way
// the messaging provider expects: spaces as %20 (never +) and newlines
// as %0A.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Messenger builds deep links for the configured destination number.
type Messenger struct {
	digits string
}

// NewMessenger creates a Messenger for the given number. The number is
// reduced to digits only; leading + and spacing are stripped. An empty
// number falls back to DefaultNumber.
func NewMessenger(number string) *Messenger {
	if number == "" {
		number = DefaultNumber
	}
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return &Messenger{digits: digits.String()}
}

// Number returns the digits-only destination number.
func (m *Messenger) Number() string {
	return m.digits
}

// URL builds the deep link for a pre-encoded message.
func (m *Messenger) URL(encoded string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", m.digits, encoded)
}
