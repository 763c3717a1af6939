package models

import "time"

// OrderSummary is derived at confirmation time and handed to the operator
// channel. It is never stored: the session is reset right after.
type OrderSummary struct {
  Id        string        `json:"id"`
  Name      string        `json:"name"`
  Phone     string        `json:"phone"`
  Lines     []CartLine    `json:"lines"`
  Delivery  DeliveryMode  `json:"delivery"`
  Address   string        `json:"address"`
  Zone      string        `json:"zone"`
  Subtotal  int           `json:"subtotal"`
  Fee       int           `json:"fee"`
  Total     int           `json:"total"`
  Payment   PaymentMethod `json:"payment"`
  CreatedAt time.Time     `json:"created_at"`
}
