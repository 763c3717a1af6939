package models

import "time"

const (
  StateHome           State = "home"
  StateProductPick    State = "product_pick"
  StateAccompaniment1 State = "accompaniment_1"
  StateAccompaniment2 State = "accompaniment_2"
  StateQuantity       State = "quantity"
  StateEditQuantity   State = "edit_quantity"
  StatePayName        State = "pay_name"
  StatePayDelivery    State = "pay_delivery"
  StatePayAddress     State = "pay_address"
  StatePayDistrict    State = "pay_district"
  StatePayMethod      State = "pay_method"
  StateConfirm        State = "confirm"
  StateAdvisor        State = "advisor"
)

type State = string

type UserId = string

const (
  DeliveryModeDelivery DeliveryMode = "delivery"
  DeliveryModePickup   DeliveryMode = "pickup"
)

type DeliveryMode = string

const (
  PaymentCash     PaymentMethod = "efectivo"
  PaymentCard     PaymentMethod = "tarjeta"
  PaymentTransfer PaymentMethod = "transferencia"
)

type PaymentMethod = string

type Session struct {
  Id           UserId    `json:"id"`
  State        State     `json:"state"`
  Cart         Cart      `json:"cart"`
  Scratch      Scratch   `json:"scratch"`
  LastActivity time.Time `json:"last_activity"`
}

// Scratch holds the transient mid-flow fields. Product fields are cleared
// once a cart line is appended, checkout fields once the order is confirmed
// or cancelled.
type Scratch struct {
  Category        string         `json:"category"`
  PickingCategory bool           `json:"picking_category"`
  Product         *PickedProduct `json:"product"`
  LastCode        string         `json:"last_code"`
  Quantity        int            `json:"quantity"`
  Side            string         `json:"side"`
  Base            string         `json:"base"`

  EditIndex    *int `json:"edit_index"`
  EditQuantity int  `json:"edit_quantity"`

  Name     string        `json:"name"`
  Delivery DeliveryMode  `json:"delivery"`
  Address  string        `json:"address"`
  Zone     string        `json:"zone"`
  ZoneFee  int           `json:"zone_fee"`
  Payment  PaymentMethod `json:"payment"`
}

// PickedProduct snapshots name and price at selection time, so later catalog
// changes never leak into an in-flight selection.
type PickedProduct struct {
  Code     string `json:"code"`
  Name     string `json:"name"`
  Price    int    `json:"price"`
  Category string `json:"category"`
}

func NewSession(id UserId, now time.Time) *Session {
  return &Session{
    Id:           id,
    State:        StateHome,
    LastActivity: now,
  }
}

func (s *Session) Reset(now time.Time) {
  *s = *NewSession(s.Id, now)
}

func (s *Session) Expired(ttl time.Duration, now time.Time) bool {
  return now.Sub(s.LastActivity) > ttl
}

func (s *Session) ClearProductScratch() {
  s.Scratch.Category = ""
  s.Scratch.PickingCategory = false
  s.Scratch.Product = nil
  s.Scratch.Quantity = 0
  s.Scratch.Side = ""
  s.Scratch.Base = ""
  s.Scratch.EditIndex = nil
  s.Scratch.EditQuantity = 0
}

func (s *Session) ClearCheckoutScratch() {
  s.Scratch.Name = ""
  s.Scratch.Delivery = ""
  s.Scratch.Address = ""
  s.Scratch.Zone = ""
  s.Scratch.ZoneFee = 0
  s.Scratch.Payment = ""
}
