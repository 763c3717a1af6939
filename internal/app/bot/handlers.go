package bot

import (
  "context"
  "unicode/utf8"

  set "github.com/deckarep/golang-set/v2"

  "github.com/elmerol/comanda/internal/models"
  "github.com/elmerol/comanda/internal/parser"
  "github.com/elmerol/comanda/pkg/stringer"
)

var globalKeywords = set.NewThreadUnsafeSet(
  "menu", "inicio",
  "carrito",
  "pagar",
  "borrar", "reiniciar",
  "asesor",
  "ubicacion", "horario",
)

var advisorExitKeywords = set.NewThreadUnsafeSet("salir", "menu", "volver")

// route decides what an inbound event means. Precedence: advisor
// interception, then discrete choice ids, then the state's own text
// parse, then global keywords, then the state fallback. State-local
// parsing runs before keywords on purpose, so a digit meant as a menu
// index is never stolen by a shortcut.
func (b *Transport) route(ctx context.Context, s *models.Session, event models.Event) {
  if s.State == models.StateAdvisor {
    b.handleAdvisor(ctx, s, event)
    return
  }

  if event.Interactive() {
    b.handleChoice(ctx, s, event.ChoiceId)
    return
  }

  text := stringer.Normalize(event.Text)

  if b.handleStateText(ctx, s, event.Text, text) {
    return
  }

  if b.handleKeyword(ctx, s, text) {
    return
  }

  b.handleFallback(ctx, s)
}

func (b *Transport) handleAdvisor(ctx context.Context, s *models.Session, event models.Event) {
  if event.ChoiceId == choiceAdvisorExit {
    b.exitAdvisor(ctx, s)
    return
  }

  text := stringer.Normalize(event.Text)

  if advisorExitKeywords.Contains(text) {
    b.exitAdvisor(ctx, s)
    return
  }

  if stringer.IsEmptyStr(event.Text) {
    b.sendAdvisorIntro(ctx, s)
    return
  }

  b.notifyOperator(ctx, s, "🧑‍💼 Consulta de "+s.Id+":\n"+stringer.SanitizeString(event.Text))
  b.sendText(ctx, s.Id, "Recibido 📨 Un asesor te responde en breve.")
}

// handleStateText reports true when the current state claimed the text.
// Claimed means handled: a re-prompt without transition still counts.
func (b *Transport) handleStateText(ctx context.Context, s *models.Session, raw string, text string) bool {
  switch s.State {

  case models.StateHome:
    return b.handleHomeText(ctx, s, text)

  case models.StateProductPick:
    ref, ok := parser.ParseProductRef(text, b.activeCategoryCode(s))
    if !ok {
      return false
    }

    item, ok := b.resolveRef(s, ref.CategoryCode, ref.Index)
    if !ok {
      b.sendText(ctx, s.Id, "No entendí. Tocá un producto en la lista o escribí su número/código.")
      return true
    }

    b.pickProduct(ctx, s, item)

    return true

  case models.StateAccompaniment1:
    if s.Scratch.Product == nil {
      return false
    }

    rule, ok := b.deps.Catalog.Rule(s.Scratch.Product.Category)
    if !ok {
      return false
    }

    option, ok := matchOption(text, rule.First.Options)
    if !ok {
      return false
    }

    b.chooseSide(ctx, s, option)

    return true

  case models.StateAccompaniment2:
    if s.Scratch.Product == nil {
      return false
    }

    rule, ok := b.deps.Catalog.Rule(s.Scratch.Product.Category)
    if !ok || rule.Second == nil {
      return false
    }

    option, ok := matchOption(text, rule.Second.Options)
    if !ok {
      return false
    }

    b.chooseBase(ctx, s, option)

    return true

  case models.StateQuantity:
    if s.Scratch.Product == nil {
      return false
    }

    quantity, ok := parser.ExtractQuantity(text, parser.MaxTypedQuantity)
    if !ok {
      return false
    }

    s.Scratch.Quantity = quantity
    b.sendQtyStepper(ctx, s, "")

    return true

  case models.StateEditQuantity:
    quantity, ok := parser.ExtractQuantity(text, parser.MaxStepperQuantity)
    if !ok {
      // Zero is valid here: it stages the line for removal.
      if text != "0" {
        return false
      }
      quantity = 0
    }

    s.Scratch.EditQuantity = quantity
    b.sendEditStepper(ctx, s, editTitle(s))

    return true

  case models.StatePayName:
    if globalKeywords.Contains(text) {
      return false
    }

    name := stringer.SanitizeString(raw)
    if utf8.RuneCountInString(name) < 2 {
      b.sendText(ctx, s.Id, "Decime tu nombre, por favor 🙂")
      return true
    }

    s.Scratch.Name = name
    s.State = models.StatePayDelivery
    b.sendDeliveryPrompt(ctx, s)

    return true

  case models.StatePayDelivery:
    switch text {
    case "delivery", "entrega", "1":
      b.handleChoice(ctx, s, choiceDelivery)
    case "retiro", "pickup", "2":
      b.handleChoice(ctx, s, choicePickup)
    case "cancelar", "3":
      b.handleChoice(ctx, s, choiceCancelPay)
    default:
      return false
    }
    return true

  case models.StatePayAddress:
    if globalKeywords.Contains(text) {
      return false
    }

    address := stringer.SanitizeString(raw)
    if utf8.RuneCountInString(address) < 5 {
      b.sendText(ctx, s.Id, "Pasame la dirección completa, por favor.")
      return true
    }

    s.Scratch.Address = address
    s.State = models.StatePayDistrict
    b.sendZoneList(ctx, s)

    return true

  case models.StatePayDistrict:
    return b.handleDistrictText(ctx, s, text)

  case models.StatePayMethod:
    switch text {
    case "efectivo", "1":
      b.choosePayment(ctx, s, models.PaymentCash)
    case "tarjeta", "2":
      b.choosePayment(ctx, s, models.PaymentCard)
    case "transferencia", "3":
      b.choosePayment(ctx, s, models.PaymentTransfer)
    default:
      return false
    }
    return true

  case models.StateConfirm:
    switch text {
    case "confirmar", "si", "1":
      b.confirmOrder(ctx, s)
    case "cancelar", "no", "2":
      b.cancelCheckout(ctx, s)
    default:
      return false
    }
    return true
  }

  return false
}

func (b *Transport) handleHomeText(ctx context.Context, s *models.Session, text string) bool {
  if s.Scratch.PickingCategory {
    if category, ok := categoryByDigit(b, text); ok {
      b.openCategory(ctx, s, category)
      return true
    }
  }

  switch text {
  case "1":
    b.sendCategories(ctx, s, "Menú — elegí categoría")
  case "2":
    b.sendCategories(ctx, s, "Pedir — elegí categoría")
  case "3":
    b.showCart(ctx, s)
  case "4":
    b.sendLocation(ctx, s)
  case "5":
    b.enterAdvisor(ctx, s)
  case "6":
    b.clearAll(ctx, s)
  default:
    return b.handleCode(ctx, s, text) || b.handleMention(ctx, s, text)
  }

  return true
}

// handleCode accepts full "a3" style codes from the home state, without
// an open category list.
func (b *Transport) handleCode(ctx context.Context, s *models.Session, text string) bool {
  ref, ok := parser.ParseProductRef(text, "")
  if !ok {
    return false
  }

  item, ok := b.resolveRef(s, ref.CategoryCode, ref.Index)
  if !ok {
    return false
  }

  b.pickProduct(ctx, s, item)

  return true
}

// handleMention jumps straight into the selection flow when the text
// names exactly one catalog item ("quiero pollo asado").
func (b *Transport) handleMention(ctx context.Context, s *models.Session, text string) bool {
  items := parser.FindMentioned(text, b.deps.Catalog.AllItems())

  if len(items) != 1 {
    return false
  }

  b.pickProduct(ctx, s, items[0])

  return true
}

func (b *Transport) handleDistrictText(ctx context.Context, s *models.Session, text string) bool {
  zones := b.deps.Catalog.Zones()

  if quantity, ok := parser.ExtractQuantity(text, len(zones)+1); ok {
    if quantity == len(zones)+1 {
      b.outOfArea(ctx, s)
      return true
    }

    if zone, ok := b.deps.Catalog.ZoneByIndex(quantity); ok {
      b.chooseZone(ctx, s, zone)
      return true
    }
  }

  for _, zone := range zones {
    if stringer.Normalize(zone.Label) == text {
      b.chooseZone(ctx, s, zone)
      return true
    }
  }

  if text == "otra" || text == "otra zona" {
    b.outOfArea(ctx, s)
    return true
  }

  return false
}

func (b *Transport) handleKeyword(ctx context.Context, s *models.Session, text string) bool {
  switch text {
  case "menu", "inicio":
    b.goHome(ctx, s)
  case "carrito":
    b.showCart(ctx, s)
  case "pagar":
    b.startCheckout(ctx, s)
  case "borrar", "reiniciar":
    b.clearAll(ctx, s)
  case "asesor":
    b.enterAdvisor(ctx, s)
  case "ubicacion", "horario":
    b.sendLocation(ctx, s)
  default:
    return false
  }

  return true
}

// handleFallback re-prompts for the input the current state expects.
// Nothing is transitioned and nothing is mutated.
func (b *Transport) handleFallback(ctx context.Context, s *models.Session) {
  // A product-flow state without a staged product is stale scratch from
  // a reset mid-flow: bail out to a safe place.
  switch s.State {
  case models.StateAccompaniment1, models.StateAccompaniment2, models.StateQuantity:
    if s.Scratch.Product == nil {
      b.goHome(ctx, s)
      return
    }
  }

  switch s.State {

  case models.StateProductPick:
    b.sendText(ctx, s.Id, "No entendí. Tocá un producto en la lista o escribí su número/código.")

  case models.StateAccompaniment1:
    if rule, ok := b.deps.Catalog.Rule(s.Scratch.Product.Category); ok {
      b.sendFirstChoice(ctx, s, rule)
    }

  case models.StateAccompaniment2:
    if rule, ok := b.deps.Catalog.Rule(s.Scratch.Product.Category); ok && rule.Second != nil {
      b.sendSecondChoice(ctx, s, rule)
    }

  case models.StateQuantity:
    b.sendQtyStepper(ctx, s, "Usá ➖/➕ y luego ✅ Agregar.")

  case models.StateEditQuantity:
    b.sendEditStepper(ctx, s, editTitle(s))

  case models.StatePayName:
    b.sendText(ctx, s.Id, "Decime tu nombre, por favor 🙂")

  case models.StatePayDelivery:
    b.sendDeliveryPrompt(ctx, s)

  case models.StatePayAddress:
    b.sendText(ctx, s.Id, "Pasame la dirección completa, por favor.")

  case models.StatePayDistrict:
    b.sendZoneList(ctx, s)

  case models.StatePayMethod:
    b.sendPaymentButtons(ctx, s)

  case models.StateConfirm:
    b.sendInvoiceConfirm(ctx, s, b.buildSummary(s))

  default:
    b.sendHomeMenu(ctx, s)
  }
}

func matchOption(text string, options []string) (string, bool) {
  for index, option := range options {
    if text == stringer.Normalize(option) {
      return options[index], true
    }
  }

  if quantity, ok := parser.ExtractQuantity(text, len(options)); ok {
    return options[quantity-1], true
  }

  return "", false
}

func categoryByDigit(b *Transport, text string) (models.Category, bool) {
  count := len(b.deps.Catalog.Categories())

  index, ok := parser.ExtractQuantity(text, count)
  if !ok {
    return models.Category{}, false
  }

  return b.deps.Catalog.CategoryByIndex(index)
}

func editTitle(s *models.Session) string {
  if s.Scratch.EditIndex == nil {
    return ""
  }
  return editLineTitle(s, *s.Scratch.EditIndex)
}

func editLineTitle(s *models.Session, index int) string {
  line, ok := s.Cart.Line(index)
  if !ok {
    return ""
  }
  return line.Title()
}
