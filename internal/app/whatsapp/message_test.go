package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

func TestProductMessage(t *testing.T) {
	msg := ProductMessage("Arroz 500g", "A1", catalog.MustMoney(2500), 2)

	t.Run("embeds product fields and totals", func(t *testing.T) {
		assert.Contains(t, msg.Text, "Producto: Arroz 500g")
		assert.Contains(t, msg.Text, "SKU: A1")
		assert.Contains(t, msg.Text, "Precio: $2.500 c/u")
		assert.Contains(t, msg.Text, "Cantidad: 2")
		assert.Contains(t, msg.Text, "Total: $5.000")
	})

	t.Run("carries the shipping boilerplate", func(t *testing.T) {
		assert.Contains(t, msg.Text, "Se debe cancelar el valor del envío")
		assert.Contains(t, msg.Text, "Envíos en 24-48h")
	})

	t.Run("encoded form is URL-safe", func(t *testing.T) {
		assert.NotContains(t, msg.Encoded, "\n")
		assert.NotContains(t, msg.Encoded, " ")
		assert.NotContains(t, msg.Encoded, "+")
		assert.Contains(t, msg.Encoded, "%0A")
		assert.Contains(t, msg.Encoded, "%20")

		decoded, err := url.QueryUnescape(msg.Encoded)
		require.NoError(t, err)
		assert.Equal(t, msg.Text, decoded)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		m := ProductMessage("Arroz 500g", "A1", catalog.MustMoney(2500), 0)
		assert.Contains(t, m.Text, "Cantidad: 1")
		assert.Contains(t, m.Text, "Total: $2.500")
	})
}

func TestContactMessage(t *testing.T) {
	t.Run("includes product of interest when given", func(t *testing.T) {
		msg := ContactMessage("Ana", "3001234567", "¿Tienen domicilio?", "Arroz Diana 500g")
		assert.Contains(t, msg.Text, "Nombre: Ana")
		assert.Contains(t, msg.Text, "Teléfono: 3001234567")
		assert.Contains(t, msg.Text, "Producto de interés: Arroz Diana 500g")
		assert.Contains(t, msg.Text, "Mensaje: ¿Tienen domicilio?")
	})

	t.Run("omits the product line entirely when empty", func(t *testing.T) {
		msg := ContactMessage("Ana", "3001234567", "Hola", "")
		assert.NotContains(t, msg.Text, "Producto de interés")
		// No blank placeholder left behind either.
		assert.NotContains(t, msg.Text, "Teléfono: 3001234567\n\n\n")
	})
}

func TestMessenger_URL(t *testing.T) {
	t.Run("number is reduced to digits", func(t *testing.T) {
		m := NewMessenger("+57 317 779-5094")
		assert.Equal(t, "573177795094", m.Number())
	})

	t.Run("default number applies when unset", func(t *testing.T) {
		m := NewMessenger("")
		assert.Equal(t, "573177795094", m.Number())
	})

	t.Run("deep link shape", func(t *testing.T) {
		m := NewMessenger(DefaultNumber)
		u := m.URL("hola%20mundo")
		assert.Equal(t, "https://wa.me/573177795094?text=hola%20mundo", u)

		parsed, err := url.Parse(u)
		require.NoError(t, err)
		assert.Equal(t, "wa.me", parsed.Host)
		assert.False(t, strings.ContainsAny(strings.TrimPrefix(parsed.Path, "/"), "+ "))
	})
}
