package models

import (
  "strings"

  "github.com/samber/lo"
)

type Cart struct {
  Lines []CartLine `json:"lines"`
}

// CartLine is one configured, priced, quantified product instance.
// UnitPrice is a snapshot taken at selection time.
type CartLine struct {
  Name      string   `json:"name"`
  UnitPrice int      `json:"unit_price"`
  Quantity  int      `json:"quantity"`
  Config    []string `json:"config"`
}

func (l CartLine) Subtotal() int {
  return l.Quantity * l.UnitPrice
}

// Title renders the product name with its accompaniment suffix,
// e.g. "Bisteck (tajadas + arroz blanco)".
func (l CartLine) Title() string {
  if len(l.Config) == 0 {
    return l.Name
  }
  return l.Name + " (" + strings.Join(l.Config, " + ") + ")"
}

// Add always appends. Identical product+configuration pairs stay as
// distinct lines so they remain individually editable later.
func (c *Cart) Add(line CartLine) {
  line.Config = append([]string(nil), line.Config...)

  c.Lines = append(c.Lines, line)
}

func (c Cart) Total() int {
  return lo.SumBy(c.Lines, CartLine.Subtotal)
}

func (c Cart) Empty() bool {
  return len(c.Lines) == 0
}

func (c Cart) Line(index int) (CartLine, bool) {
  if index < 0 || index >= len(c.Lines) {
    return CartLine{}, false
  }
  return c.Lines[index], true
}

func (c *Cart) Remove(index int) bool {
  if index < 0 || index >= len(c.Lines) {
    return false
  }
  c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)

  return true
}

// UpdateQuantity overwrites the quantity of the indexed line.
// A quantity of zero or less removes the line.
func (c *Cart) UpdateQuantity(index int, quantity int) bool {
  if index < 0 || index >= len(c.Lines) {
    return false
  }
  if quantity <= 0 {
    return c.Remove(index)
  }
  c.Lines[index].Quantity = quantity

  return true
}

func (c *Cart) Clear() {
  c.Lines = nil
}
