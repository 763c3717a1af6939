package message

import (
  "testing"

  "github.com/stretchr/testify/assert"

  "github.com/elmerol/comanda/internal/models"
)

func TestBuildCartText(t *testing.T) {
  cart := models.Cart{}
  cart.Add(models.CartLine{Name: "Pollo tapado", UnitPrice: 150, Quantity: 2, Config: []string{"tajadas", "arroz blanco"}})
  cart.Add(models.CartLine{Name: "Cacao", UnitPrice: 60, Quantity: 1})

  text := Do().SetCart(cart).BuildCartText()

  assert.Contains(t, text, "1) 2 x Pollo tapado (tajadas + arroz blanco) — C$150 c/u")
  assert.Contains(t, text, "2) 1 x Cacao — C$60 c/u")
  assert.Contains(t, text, "*Total: C$360*")
}

func TestBuildCartTextEmpty(t *testing.T) {
  text := Do().SetCart(models.Cart{}).BuildCartText()

  assert.Contains(t, text, "vacío")
}

func TestBuildInvoiceTextDelivery(t *testing.T) {
  summary := models.OrderSummary{
    Id:    "ord-1",
    Name:  "María",
    Phone: "50588881111",
    Lines: []models.CartLine{
      {Name: "Pollo tapado", UnitPrice: 150, Quantity: 2, Config: []string{"tajadas", "arroz blanco"}},
    },
    Delivery: models.DeliveryModeDelivery,
    Address:  "Casa 12, frente al parque",
    Zone:     "Las Fuentes",
    Subtotal: 300,
    Fee:      65,
    Total:    365,
    Payment:  models.PaymentCash,
  }

  text := Do().SetSummary(summary).BuildInvoiceText()

  assert.Contains(t, text, "1) 2 x Pollo tapado (tajadas + arroz blanco) — C$150 c/u")
  assert.Contains(t, text, "Entrega: delivery — Las Fuentes")
  assert.Contains(t, text, "Dirección: Casa 12, frente al parque")
  assert.Contains(t, text, "Envío: C$65")
  assert.Contains(t, text, "Subtotal: C$300")
  assert.Contains(t, text, "*Total: C$365*")
  assert.Contains(t, text, "Pago: efectivo")
}

func TestBuildInvoiceTextPickup(t *testing.T) {
  summary := models.OrderSummary{
    Name: "Pedro",
    Lines: []models.CartLine{
      {Name: "Nacatamal", UnitPrice: 80, Quantity: 1},
    },
    Delivery: models.DeliveryModePickup,
    Subtotal: 80,
    Total:    80,
    Payment:  models.PaymentTransfer,
  }

  text := Do().SetSummary(summary).BuildInvoiceText()

  assert.Contains(t, text, "Entrega: retiro en local")
  assert.NotContains(t, text, "Envío:")
  assert.Contains(t, text, "*Total: C$80*")
}

func TestBuildOperatorText(t *testing.T) {
  summary := models.OrderSummary{
    Id:    "ord-9",
    Name:  "María",
    Phone: "50588881111",
    Lines: []models.CartLine{
      {Name: "Bisteck", UnitPrice: 180, Quantity: 1, Config: []string{"maduro", "arroz a la valenciana"}},
    },
    Delivery: models.DeliveryModeDelivery,
    Address:  "Casa 12",
    Zone:     "Centro",
    Subtotal: 180,
    Fee:      50,
    Total:    230,
    Payment:  models.PaymentCard,
  }

  text := Do().SetSummary(summary).BuildOperatorText()

  assert.Contains(t, text, "Orden: ord-9")
  assert.Contains(t, text, "Cliente: 50588881111")
  assert.Contains(t, text, "1 x Bisteck (maduro + arroz a la valenciana)")
  assert.Contains(t, text, "*Total: C$230*")
}
