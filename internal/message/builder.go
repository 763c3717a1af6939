package message

import (
  "fmt"
  "strings"

  "github.com/elmerol/comanda/internal/models"
  "github.com/elmerol/comanda/pkg/money"
)

type Builder struct {
  cart    models.Cart
  summary models.OrderSummary
}

func Do() Builder {
  return Builder{}
}

func (b Builder) SetCart(cart models.Cart) Builder {
  b.cart = cart
  return b
}

func (b Builder) SetSummary(summary models.OrderSummary) Builder {
  b.summary = summary
  return b
}

// BuildCartText renders the customer-facing cart view with numbered
// lines and a running total.
func (b Builder) BuildCartText() string {
  if b.cart.Empty() {
    return "🧺 Tu carrito está vacío.\n\nTocá *2) Pedir* para iniciar."
  }

  lines := []string{"🧺 *Tu carrito:*"}

  for index, line := range b.cart.Lines {
    lines = append(lines, fmt.Sprintf("%d) %d x %s — %s c/u",
      index+1, line.Quantity, line.Title(), money.String(line.UnitPrice)))
  }

  lines = append(lines, fmt.Sprintf("\n*Total: %s*", money.String(b.cart.Total())))

  return strings.Join(lines, "\n")
}

// BuildInvoiceText renders the full invoice shown at the confirmation
// step: cart lines, delivery mode, fee and total.
func (b Builder) BuildInvoiceText() string {
  lines := []string{"🧾 *Tu pedido:*", ""}

  for index, line := range b.summary.Lines {
    lines = append(lines, fmt.Sprintf("%d) %d x %s — %s c/u",
      index+1, line.Quantity, line.Title(), money.String(line.UnitPrice)))
  }

  lines = append(lines, "", fmt.Sprintf("Nombre: %s", b.summary.Name))

  if b.summary.Delivery == models.DeliveryModeDelivery {
    lines = append(lines,
      fmt.Sprintf("Entrega: delivery — %s", b.summary.Zone),
      fmt.Sprintf("Dirección: %s", b.summary.Address),
      fmt.Sprintf("Envío: %s", money.String(b.summary.Fee)),
    )
  } else {
    lines = append(lines, "Entrega: retiro en local")
  }

  lines = append(lines,
    fmt.Sprintf("Pago: %s", b.summary.Payment),
    "",
    fmt.Sprintf("Subtotal: %s", money.String(b.summary.Subtotal)),
    fmt.Sprintf("*Total: %s*", money.String(b.summary.Total)),
  )

  return strings.Join(lines, "\n")
}

// BuildOperatorText renders the order summary sent to the operator
// channel once the customer confirms.
func (b Builder) BuildOperatorText() string {
  lines := []string{
    "🧾 *Nuevo pedido*",
    fmt.Sprintf("Orden: %s", b.summary.Id),
    fmt.Sprintf("Nombre: %s", b.summary.Name),
    fmt.Sprintf("Cliente: %s", b.summary.Phone),
    "",
  }

  for index, line := range b.summary.Lines {
    lines = append(lines, fmt.Sprintf("%d) %d x %s — %s c/u",
      index+1, line.Quantity, line.Title(), money.String(line.UnitPrice)))
  }

  lines = append(lines, "")

  if b.summary.Delivery == models.DeliveryModeDelivery {
    lines = append(lines,
      fmt.Sprintf("Entrega: delivery — %s", b.summary.Zone),
      fmt.Sprintf("Dirección: %s", b.summary.Address),
      fmt.Sprintf("Envío: %s", money.String(b.summary.Fee)),
    )
  } else {
    lines = append(lines, "Entrega: retiro en local")
  }

  lines = append(lines,
    fmt.Sprintf("Pago: %s", b.summary.Payment),
    fmt.Sprintf("*Total: %s*", money.String(b.summary.Total)),
  )

  return strings.Join(lines, "\n")
}
