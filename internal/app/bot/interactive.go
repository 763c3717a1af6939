package bot

import (
  "context"
  "strings"

  "github.com/spf13/cast"

  "github.com/elmerol/comanda/internal/models"
  "github.com/elmerol/comanda/internal/parser"
)

// handleChoice routes a discrete interaction id. Ids are unambiguous, so
// they bypass text parsing entirely. A stale id (expired cart, reset
// session) degrades to an informational message plus a safe state, never
// an error.
func (b *Transport) handleChoice(ctx context.Context, s *models.Session, id string) {
  switch id {

  case choiceHomeMenu:
    s.State = models.StateHome
    b.sendCategories(ctx, s, "Menú — elegí categoría")

  case choiceHomeOrder:
    s.State = models.StateHome
    b.sendCategories(ctx, s, "Pedir — elegí categoría")

  case choiceHomeCart, choiceAfterCart:
    b.showCart(ctx, s)

  case choiceHomeLocation:
    s.State = models.StateHome
    b.sendLocation(ctx, s)

  case choiceHomeAdvisor:
    b.enterAdvisor(ctx, s)

  case choiceHomeClear:
    b.clearAll(ctx, s)

  case choiceQtyMinus, choiceQtyPlus, choiceQtyAdd:
    b.handleQtyChoice(ctx, s, id)

  case choiceAfterMore:
    s.State = models.StateHome
    b.sendCategories(ctx, s, "Elegí categoría para seguir agregando")

  case choiceAfterRepeat:
    b.repeatLast(ctx, s)

  case choiceAfterPay, choiceCartPay:
    b.startCheckout(ctx, s)

  case choiceCartEdit:
    b.startEdit(ctx, s)

  case choiceCartClear:
    s.Cart.Clear()
    b.sendText(ctx, s.Id, "🗑️ Carrito vaciado.")
    b.goHome(ctx, s)

  case choiceCartMenu:
    s.State = models.StateHome
    b.sendCategories(ctx, s, "Menú — elegí categoría")

  case choiceEditMinus, choiceEditPlus, choiceEditDone:
    b.handleEditChoice(ctx, s, id)

  case choiceDelivery:
    b.handleDeliveryChoice(ctx, s, models.DeliveryModeDelivery)

  case choicePickup:
    b.handleDeliveryChoice(ctx, s, models.DeliveryModePickup)

  case choiceCancelPay:
    b.cancelCheckout(ctx, s)

  case choiceZoneOther:
    if s.State != models.StatePayDistrict {
      b.handleFallback(ctx, s)
      return
    }
    b.outOfArea(ctx, s)

  case choicePayCash:
    b.handlePaymentChoice(ctx, s, models.PaymentCash)

  case choicePayCard:
    b.handlePaymentChoice(ctx, s, models.PaymentCard)

  case choicePayTransfer:
    b.handlePaymentChoice(ctx, s, models.PaymentTransfer)

  case choiceConfirmOrder:
    if s.State != models.StateConfirm {
      b.handleFallback(ctx, s)
      return
    }
    b.confirmOrder(ctx, s)

  case choiceCancelOrder:
    if s.State != models.StateConfirm {
      b.handleFallback(ctx, s)
      return
    }
    b.cancelCheckout(ctx, s)

  default:
    b.handlePrefixedChoice(ctx, s, id)
  }
}

func (b *Transport) handlePrefixedChoice(ctx context.Context, s *models.Session, id string) {
  switch {

  case strings.HasPrefix(id, choiceCategoryPrefix):
    key := strings.TrimPrefix(id, choiceCategoryPrefix)

    category, ok := b.deps.Catalog.CategoryByKey(key)
    if !ok {
      b.sendText(ctx, s.Id, "Esa categoría ya no está disponible.")
      b.goHome(ctx, s)

      return
    }

    b.openCategory(ctx, s, category)

  case strings.HasPrefix(id, choiceProductPrefix):
    code := strings.TrimPrefix(id, choiceProductPrefix)

    item, ok := b.deps.Catalog.ItemByCode(code)
    if !ok {
      b.sendText(ctx, s.Id, "Ese producto ya no está disponible.")
      b.goHome(ctx, s)

      return
    }

    b.pickProduct(ctx, s, item)

  case strings.HasPrefix(id, choiceSidePrefix):
    b.handleSideChoice(ctx, s, cast.ToInt(strings.TrimPrefix(id, choiceSidePrefix)))

  case strings.HasPrefix(id, choiceBasePrefix):
    b.handleBaseChoice(ctx, s, cast.ToInt(strings.TrimPrefix(id, choiceBasePrefix)))

  case strings.HasPrefix(id, choiceZonePrefix):
    if s.State != models.StatePayDistrict {
      b.handleFallback(ctx, s)
      return
    }

    zone, ok := b.deps.Catalog.ZoneByIndex(cast.ToInt(strings.TrimPrefix(id, choiceZonePrefix)))
    if !ok {
      b.sendZoneList(ctx, s)
      return
    }

    b.chooseZone(ctx, s, zone)

  case strings.HasPrefix(id, choiceEditPrefix):
    b.chooseEditLine(ctx, s, cast.ToInt(strings.TrimPrefix(id, choiceEditPrefix)))

  default:
    b.handleFallback(ctx, s)
  }
}

func (b *Transport) handleQtyChoice(ctx context.Context, s *models.Session, id string) {
  if s.State != models.StateQuantity || s.Scratch.Product == nil {
    b.goHome(ctx, s)
    return
  }

  switch id {

  case choiceQtyMinus:
    if s.Scratch.Quantity > 1 {
      s.Scratch.Quantity--
    }
    b.sendQtyStepper(ctx, s, "")

  case choiceQtyPlus:
    if s.Scratch.Quantity < parser.MaxStepperQuantity {
      s.Scratch.Quantity++
    }
    b.sendQtyStepper(ctx, s, "")

  case choiceQtyAdd:
    b.addStagedLine(ctx, s)
  }
}

func (b *Transport) handleEditChoice(ctx context.Context, s *models.Session, id string) {
  if s.State != models.StateEditQuantity || s.Scratch.EditIndex == nil {
    b.showCart(ctx, s)
    return
  }

  if _, ok := s.Cart.Line(*s.Scratch.EditIndex); !ok {
    b.sendText(ctx, s.Id, "Ese item ya no está en el carrito.")
    b.showCart(ctx, s)

    return
  }

  switch id {

  case choiceEditMinus:
    if s.Scratch.EditQuantity > 0 {
      s.Scratch.EditQuantity--
    }
    b.sendEditStepper(ctx, s, editTitle(s))

  case choiceEditPlus:
    if s.Scratch.EditQuantity < parser.MaxStepperQuantity {
      s.Scratch.EditQuantity++
    }
    b.sendEditStepper(ctx, s, editTitle(s))

  case choiceEditDone:
    b.applyEdit(ctx, s)
  }
}

func (b *Transport) handleSideChoice(ctx context.Context, s *models.Session, index int) {
  if s.State != models.StateAccompaniment1 || s.Scratch.Product == nil {
    b.handleFallback(ctx, s)
    return
  }

  rule, ok := b.deps.Catalog.Rule(s.Scratch.Product.Category)
  if !ok || index < 1 || index > len(rule.First.Options) {
    b.handleFallback(ctx, s)
    return
  }

  b.chooseSide(ctx, s, rule.First.Options[index-1])
}

func (b *Transport) handleBaseChoice(ctx context.Context, s *models.Session, index int) {
  if s.State != models.StateAccompaniment2 || s.Scratch.Product == nil {
    b.handleFallback(ctx, s)
    return
  }

  rule, ok := b.deps.Catalog.Rule(s.Scratch.Product.Category)
  if !ok || rule.Second == nil || index < 1 || index > len(rule.Second.Options) {
    b.handleFallback(ctx, s)
    return
  }

  b.chooseBase(ctx, s, rule.Second.Options[index-1])
}

func (b *Transport) handleDeliveryChoice(ctx context.Context, s *models.Session, mode models.DeliveryMode) {
  if s.State != models.StatePayDelivery {
    b.handleFallback(ctx, s)
    return
  }

  s.Scratch.Delivery = mode

  if mode == models.DeliveryModePickup {
    // Pickup skips address and district: no fee, fixed label.
    s.Scratch.Address = "Retiro en local"
    s.Scratch.Zone = ""
    s.Scratch.ZoneFee = 0
    s.State = models.StatePayMethod

    b.sendPaymentButtons(ctx, s)

    return
  }

  s.State = models.StatePayAddress
  b.sendText(ctx, s.Id, "📍 Pasame tu *dirección* para delivery:")
}

func (b *Transport) handlePaymentChoice(ctx context.Context, s *models.Session, method models.PaymentMethod) {
  if s.State != models.StatePayMethod {
    b.handleFallback(ctx, s)
    return
  }

  b.choosePayment(ctx, s, method)
}
