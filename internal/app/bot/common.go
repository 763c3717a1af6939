package bot

import (
  "context"
  "fmt"
  "time"

  "github.com/google/uuid"
  log "github.com/sirupsen/logrus"

  "github.com/elmerol/comanda/internal/message"
  "github.com/elmerol/comanda/internal/models"
  "github.com/elmerol/comanda/pkg/cache"
  "github.com/elmerol/comanda/pkg/money"
)

const (
  choiceHomeMenu     = "HOME_MENU"
  choiceHomeOrder    = "HOME_ORDER"
  choiceHomeCart     = "HOME_CART"
  choiceHomeLocation = "HOME_LOCATION"
  choiceHomeAdvisor  = "HOME_ADVISOR"
  choiceHomeClear    = "HOME_CLEAR"

  choiceCategoryPrefix = "CAT_"
  choiceProductPrefix  = "PROD_"

  choiceSidePrefix = "SIDE_"
  choiceBasePrefix = "BASE_"

  choiceQtyMinus = "QTY_MINUS"
  choiceQtyPlus  = "QTY_PLUS"
  choiceQtyAdd   = "QTY_ADD"

  choiceAfterMore   = "AFTER_MORE"
  choiceAfterRepeat = "AFTER_REPEAT"
  choiceAfterCart   = "AFTER_CART"
  choiceAfterPay    = "AFTER_PAY"

  choiceCartEdit  = "CART_EDIT"
  choiceCartClear = "CART_CLEAR"
  choiceCartPay   = "CART_PAY"
  choiceCartMenu  = "CART_MENU"

  choiceEditPrefix = "EDIT_"
  choiceEditMinus  = "EDITQ_MINUS"
  choiceEditPlus   = "EDITQ_PLUS"
  choiceEditDone   = "EDITQ_DONE"

  choiceDelivery  = "DELIVERY"
  choicePickup    = "PICKUP"
  choiceCancelPay = "CANCEL_PAY"

  choiceZonePrefix = "ZONE_"
  choiceZoneOther  = "ZONE_OTHER"

  choicePayCash     = "PAY_CASH"
  choicePayCard     = "PAY_CARD"
  choicePayTransfer = "PAY_TRANSFER"

  choiceConfirmOrder = "CONFIRM_ORDER"
  choiceCancelOrder  = "CANCEL_ORDER"

  choiceAdvisorExit = "ADVISOR_EXIT"
)

// Outbound delivery is best effort: errors are logged, conversation
// state is never rolled back because of a failed send.

func (b *Transport) sendText(ctx context.Context, to models.UserId, text string) {
  if err := b.deps.Sender.SendText(ctx, to, text); err != nil {
    log.
      WithField("user_id", to).
      Errorf("b.deps.Sender.SendText: %v", err)
  }
}

func (b *Transport) sendButtons(ctx context.Context, to models.UserId, text string, buttons []models.Button) {
  if err := b.deps.Sender.SendQuickReplies(ctx, to, text, buttons); err != nil {
    log.
      WithField("user_id", to).
      Errorf("b.deps.Sender.SendQuickReplies: %v", err)
  }
}

func (b *Transport) sendList(ctx context.Context, to models.UserId, text string, buttonLabel string, sections []models.ListSection) {
  if err := b.deps.Sender.SendList(ctx, to, text, buttonLabel, sections); err != nil {
    log.
      WithField("user_id", to).
      Errorf("b.deps.Sender.SendList: %v", err)
  }
}

func (b *Transport) notifyOperator(ctx context.Context, s *models.Session, text string) {
  if err := b.deps.Notifier.NotifyOperator(ctx, text); err != nil {
    log.
      WithField("user_id", s.Id).
      Errorf("b.deps.Notifier.NotifyOperator: %v", err)
  }
}

func (b *Transport) goHome(ctx context.Context, s *models.Session) {
  s.State = models.StateHome
  s.Scratch.PickingCategory = false

  b.sendHomeMenu(ctx, s)
}

func (b *Transport) openCategory(ctx context.Context, s *models.Session, category models.Category) {
  s.Scratch.Category = category.Key
  s.Scratch.PickingCategory = false
  s.State = models.StateProductPick

  b.sendProducts(ctx, s, category)
}

func (b *Transport) activeCategoryCode(s *models.Session) string {
  category, ok := b.deps.Catalog.CategoryByKey(s.Scratch.Category)
  if !ok {
    return ""
  }
  return category.Code
}

// pickProduct stages the item and routes it into the accompaniment flow
// or straight to the quantity stepper when the category has no rule.
func (b *Transport) pickProduct(ctx context.Context, s *models.Session, item models.CatalogItem) {
  s.Scratch.Product = &models.PickedProduct{
    Code:     item.Code,
    Name:     item.Name,
    Price:    item.Price,
    Category: item.Category,
  }
  s.Scratch.Side = ""
  s.Scratch.Base = ""

  rule, ok := b.deps.Catalog.Rule(item.Category)
  if ok {
    s.State = models.StateAccompaniment1
    b.sendFirstChoice(ctx, s, rule)

    return
  }

  b.toQuantity(ctx, s)
}

func (b *Transport) chooseSide(ctx context.Context, s *models.Session, option string) {
  s.Scratch.Side = option

  rule, ok := b.deps.Catalog.Rule(s.Scratch.Product.Category)
  if !ok {
    b.toQuantity(ctx, s)
    return
  }

  if rule.Fixed != "" {
    s.Scratch.Base = rule.Fixed
    b.toQuantity(ctx, s)

    return
  }

  if rule.Second != nil {
    s.State = models.StateAccompaniment2
    b.sendSecondChoice(ctx, s, rule)

    return
  }

  b.toQuantity(ctx, s)
}

func (b *Transport) chooseBase(ctx context.Context, s *models.Session, option string) {
  s.Scratch.Base = option

  b.toQuantity(ctx, s)
}

func (b *Transport) toQuantity(ctx context.Context, s *models.Session) {
  s.Scratch.Quantity = 1
  s.State = models.StateQuantity

  b.sendQtyStepper(ctx, s, "Usá ➖/➕ y luego ✅ Agregar. También podés escribir la cantidad.")
}

func (b *Transport) addStagedLine(ctx context.Context, s *models.Session) {
  product := s.Scratch.Product

  line := models.CartLine{
    Name:      product.Name,
    UnitPrice: product.Price,
    Quantity:  s.Scratch.Quantity,
    Config:    stagedConfig(s),
  }
  s.Cart.Add(line)

  code := product.Code

  s.ClearProductScratch()
  s.Scratch.LastCode = code
  s.State = models.StateHome

  b.sendText(ctx, s.Id, fmt.Sprintf("✅ Agregado: %d x %s\nTotal: %s",
    line.Quantity, line.Title(), money.String(s.Cart.Total())))
  b.sendPostAdd(ctx, s)
}

// repeatLast re-enters the selection flow with the last added base
// product, letting the customer stack a different configuration of the
// same dish.
func (b *Transport) repeatLast(ctx context.Context, s *models.Session) {
  item, ok := b.deps.Catalog.ItemByCode(s.Scratch.LastCode)
  if !ok {
    b.sendText(ctx, s.Id, "Ese producto ya no está disponible.")
    b.goHome(ctx, s)

    return
  }

  b.pickProduct(ctx, s, item)
}

func (b *Transport) showCart(ctx context.Context, s *models.Session) {
  s.State = models.StateHome
  s.Scratch.PickingCategory = false

  b.sendCartView(ctx, s)
}

func (b *Transport) startCheckout(ctx context.Context, s *models.Session) {
  if s.Cart.Empty() {
    b.sendText(ctx, s.Id, "🧺 Tu carrito está vacío. Primero agregá algo 🙂")
    b.goHome(ctx, s)

    return
  }

  s.State = models.StatePayName
  b.sendText(ctx, s.Id, "🧾 Para registrar tu pedido: ¿Cuál es tu *nombre*?")
}

func (b *Transport) startEdit(ctx context.Context, s *models.Session) {
  if s.Cart.Empty() {
    b.sendText(ctx, s.Id, "Tu carrito está vacío.")
    b.goHome(ctx, s)

    return
  }

  b.deps.editRows.ResetP(s.Id)

  rows := make([]models.ListRow, 0, len(s.Cart.Lines))

  for index, line := range s.Cart.Lines {
    b.deps.editRows.Set(cache.Key[models.UserId, int]{P: s.Id, S: index}, line.Title())

    rows = append(rows, models.ListRow{
      Id:          fmt.Sprintf("%s%d", choiceEditPrefix, index),
      Title:       fmt.Sprintf("%d) %s", index+1, line.Title()),
      Description: fmt.Sprintf("Cantidad actual: %d", line.Quantity),
    })
  }

  b.sendList(ctx, s.Id, "✏️ Editar carrito (tocá un item)", "Ver items", []models.ListSection{
    {Title: "Elegí un item para ajustar", Rows: rows},
  })
}

// chooseEditLine guards against taps on an outdated list: the row must
// still point at the same line it was rendered for.
func (b *Transport) chooseEditLine(ctx context.Context, s *models.Session, index int) {
  line, ok := s.Cart.Line(index)

  title, cached := b.deps.editRows.Get(cache.Key[models.UserId, int]{P: s.Id, S: index})

  if !ok || !cached || title != line.Title() {
    b.sendText(ctx, s.Id, "Ese item ya no está en el carrito.")
    b.showCart(ctx, s)

    return
  }

  s.Scratch.EditIndex = &index
  s.Scratch.EditQuantity = line.Quantity
  s.State = models.StateEditQuantity

  b.sendEditStepper(ctx, s, line.Title())
}

func (b *Transport) applyEdit(ctx context.Context, s *models.Session) {
  index := s.Scratch.EditIndex

  if index == nil {
    b.showCart(ctx, s)
    return
  }

  if s.Scratch.EditQuantity <= 0 {
    if s.Cart.Remove(*index) {
      b.sendText(ctx, s.Id, "🗑️ Item eliminado.")
    }
  } else {
    if s.Cart.UpdateQuantity(*index, s.Scratch.EditQuantity) {
      b.sendText(ctx, s.Id, "✅ Cantidad actualizada.")
    }
  }

  s.Scratch.EditIndex = nil
  s.Scratch.EditQuantity = 0

  b.showCart(ctx, s)
}

func (b *Transport) chooseZone(ctx context.Context, s *models.Session, zone models.DeliveryZone) {
  s.Scratch.Zone = zone.Label
  s.Scratch.ZoneFee = zone.Fee
  s.State = models.StatePayMethod

  b.sendPaymentButtons(ctx, s)
}

// outOfArea aborts checkout back to home: the cart stays intact and the
// operator picks up the conversation manually.
func (b *Transport) outOfArea(ctx context.Context, s *models.Session) {
  b.notifyOperator(ctx, s, fmt.Sprintf("⚠️ Pedido fuera de zona de entrega.\nCliente: %s\nRequiere atención manual.", s.Id))

  b.sendText(ctx, s.Id, "Por ahora no llegamos hasta esa zona 😟\nUn asesor te escribe para coordinar la entrega.")

  s.ClearCheckoutScratch()
  b.goHome(ctx, s)
}

func (b *Transport) choosePayment(ctx context.Context, s *models.Session, method models.PaymentMethod) {
  s.Scratch.Payment = method
  s.State = models.StateConfirm

  b.sendInvoiceConfirm(ctx, s, b.buildSummary(s))
}

func (b *Transport) buildSummary(s *models.Session) models.OrderSummary {
  subtotal := s.Cart.Total()

  fee := 0
  if s.Scratch.Delivery == models.DeliveryModeDelivery {
    fee = s.Scratch.ZoneFee
  }

  return models.OrderSummary{
    Id:        uuid.NewString(),
    Name:      s.Scratch.Name,
    Phone:     s.Id,
    Lines:     s.Cart.Lines,
    Delivery:  s.Scratch.Delivery,
    Address:   s.Scratch.Address,
    Zone:      s.Scratch.Zone,
    Subtotal:  subtotal,
    Fee:       fee,
    Total:     subtotal + fee,
    Payment:   s.Scratch.Payment,
    CreatedAt: time.Now(),
  }
}

func (b *Transport) confirmOrder(ctx context.Context, s *models.Session) {
  summary := b.buildSummary(s)

  b.notifyOperator(ctx, s, message.Do().SetSummary(summary).BuildOperatorText())

  b.sendText(ctx, s.Id, "✅ Pedido recibido. En breve te confirmamos por aquí 🙌")

  s.Reset(time.Now())
  b.sendHomeMenu(ctx, s)
}

func (b *Transport) cancelCheckout(ctx context.Context, s *models.Session) {
  s.ClearCheckoutScratch()
  s.State = models.StateHome

  b.sendText(ctx, s.Id, "Pedido cancelado. Podés volver a armarlo cuando quieras 🙂")
  b.sendHomeMenu(ctx, s)
}

func (b *Transport) clearAll(ctx context.Context, s *models.Session) {
  s.Reset(time.Now())

  b.sendText(ctx, s.Id, "🗑️ Orden borrada. Empecemos de nuevo 🙂")
  b.sendHomeMenu(ctx, s)
}

func (b *Transport) enterAdvisor(ctx context.Context, s *models.Session) {
  s.State = models.StateAdvisor

  b.sendAdvisorIntro(ctx, s)
}

func (b *Transport) exitAdvisor(ctx context.Context, s *models.Session) {
  b.sendText(ctx, s.Id, "Listo, volvemos al menú 😉")
  b.goHome(ctx, s)
}

func (b *Transport) resolveRef(s *models.Session, categoryCode string, index int) (models.CatalogItem, bool) {
  category, ok := b.deps.Catalog.CategoryByCode(categoryCode)
  if !ok {
    return models.CatalogItem{}, false
  }
  return b.deps.Catalog.ItemByIndex(category.Key, index)
}
