package bot

import (
  "context"
  "fmt"

  "github.com/samber/lo"

  "github.com/elmerol/comanda/internal/catalog"
  "github.com/elmerol/comanda/internal/message"
  "github.com/elmerol/comanda/internal/models"
  "github.com/elmerol/comanda/pkg/money"
)

func (b *Transport) sendHomeMenu(ctx context.Context, s *models.Session) {
  text := `👋 *Bienvenido a El Merol de Pancho.*

Opciones (tocá o escribí el número):
1) Menú
2) Pedir
3) Carrito
4) Ubicación y horario
5) Asesor
6) Borrar orden`

  b.sendButtons(ctx, s.Id, text, []models.Button{
    {Id: choiceHomeMenu, Title: "1) Menú"},
    {Id: choiceHomeOrder, Title: "2) Pedir"},
    {Id: choiceHomeCart, Title: "3) Carrito"},
  })
  b.sendButtons(ctx, s.Id, "Más opciones:", []models.Button{
    {Id: choiceHomeLocation, Title: "4) Ubicación"},
    {Id: choiceHomeAdvisor, Title: "5) Asesor"},
    {Id: choiceHomeClear, Title: "6) Borrar"},
  })
}

func (b *Transport) sendCategories(ctx context.Context, s *models.Session, title string) {
  rows := lo.Map(b.deps.Catalog.Categories(), func(category models.Category, index int) models.ListRow {
    return models.ListRow{
      Id:          choiceCategoryPrefix + category.Key,
      Title:       fmt.Sprintf("%d) %s", index+1, category.Title),
      Description: category.Description,
    }
  })

  s.Scratch.PickingCategory = true

  b.sendList(ctx, s.Id, fmt.Sprintf("📋 *%s*", title), "Ver categorías", []models.ListSection{
    {Title: "Categorías", Rows: rows},
  })
}

func (b *Transport) sendProducts(ctx context.Context, s *models.Session, category models.Category) {
  items := b.deps.Catalog.Items(category.Key)

  rows := lo.Map(items, func(item models.CatalogItem, index int) models.ListRow {
    return models.ListRow{
      Id:          choiceProductPrefix + item.Code,
      Title:       fmt.Sprintf("%d) %s — %s", index+1, item.Name, money.String(item.Price)),
      Description: fmt.Sprintf("Escribí: %d (o %s)", index+1, item.Code),
    }
  })

  title := fmt.Sprintf("📌 %s (tocá un producto)", category.Title)

  b.sendList(ctx, s.Id, title, "Ver productos", []models.ListSection{
    {Title: "Productos", Rows: rows},
  })
}

func (b *Transport) sendFirstChoice(ctx context.Context, s *models.Session, rule models.AccompanimentRule) {
  product := s.Scratch.Product

  buttons := lo.Map(rule.First.Options, func(option string, index int) models.Button {
    return models.Button{
      Id:    fmt.Sprintf("%s%d", choiceSidePrefix, index+1),
      Title: option,
    }
  })

  b.sendButtons(ctx, s.Id, fmt.Sprintf("🍽️ *%s*\n%s", product.Name, rule.First.Prompt), buttons)
}

func (b *Transport) sendSecondChoice(ctx context.Context, s *models.Session, rule models.AccompanimentRule) {
  product := s.Scratch.Product

  buttons := lo.Map(rule.Second.Options, func(option string, index int) models.Button {
    return models.Button{
      Id:    fmt.Sprintf("%s%d", choiceBasePrefix, index+1),
      Title: option,
    }
  })

  b.sendButtons(ctx, s.Id, fmt.Sprintf("🍽️ *%s — %s*\n%s", product.Name, s.Scratch.Side, rule.Second.Prompt), buttons)
}

func (b *Transport) sendQtyStepper(ctx context.Context, s *models.Session, hint string) {
  text := fmt.Sprintf("🧮 *%s*\nCantidad: *%d*", stagedTitle(s), s.Scratch.Quantity)
  if hint != "" {
    text += "\n" + hint
  }

  b.sendButtons(ctx, s.Id, text, []models.Button{
    {Id: choiceQtyMinus, Title: "➖"},
    {Id: choiceQtyAdd, Title: "✅ Agregar"},
    {Id: choiceQtyPlus, Title: "➕"},
  })
}

func (b *Transport) sendEditStepper(ctx context.Context, s *models.Session, title string) {
  text := fmt.Sprintf("✏️ *%s*\nCantidad: *%d*", title, s.Scratch.EditQuantity)

  b.sendButtons(ctx, s.Id, text, []models.Button{
    {Id: choiceEditMinus, Title: "➖"},
    {Id: choiceEditDone, Title: "✅ Listo"},
    {Id: choiceEditPlus, Title: "➕"},
  })
}

func (b *Transport) sendPostAdd(ctx context.Context, s *models.Session) {
  b.sendButtons(ctx, s.Id, "✅ Agregado.\n¿Qué hacemos ahora?", []models.Button{
    {Id: choiceAfterMore, Title: "➕ Agregar otro"},
    {Id: choiceAfterRepeat, Title: "🔁 Repetir producto"},
    {Id: choiceAfterCart, Title: "🧺 Ver carrito"},
  })
  b.sendButtons(ctx, s.Id, "O pasá directo a pagar:", []models.Button{
    {Id: choiceAfterPay, Title: "💳 Pagar"},
  })
}

func (b *Transport) sendCartView(ctx context.Context, s *models.Session) {
  b.sendText(ctx, s.Id, message.Do().SetCart(s.Cart).BuildCartText())

  if s.Cart.Empty() {
    return
  }

  b.sendButtons(ctx, s.Id, "Acciones del carrito:", []models.Button{
    {Id: choiceCartEdit, Title: "1) Editar"},
    {Id: choiceCartClear, Title: "2) Vaciar"},
    {Id: choiceCartPay, Title: "3) Pagar"},
  })
  b.sendButtons(ctx, s.Id, "Más:", []models.Button{
    {Id: choiceCartMenu, Title: "4) Menú"},
    {Id: choiceHomeAdvisor, Title: "Asesor"},
    {Id: choiceHomeClear, Title: "Borrar"},
  })
}

func (b *Transport) sendLocation(ctx context.Context, s *models.Session) {
  b.sendText(ctx, s.Id, fmt.Sprintf("📍 *Ubicación*\n%s\n\n🕘 *Horario*\n%s",
    catalog.StoreAddress, catalog.StoreHours))
}

func (b *Transport) sendAdvisorIntro(ctx context.Context, s *models.Session) {
  b.sendText(ctx, s.Id, `🧑‍💼 Perfecto. Un asesor te escribe en breve por este mismo número.

Escribí tu consulta aquí 👇 (o *salir* para volver al menú)`)
}

func (b *Transport) sendDeliveryPrompt(ctx context.Context, s *models.Session) {
  b.sendButtons(ctx, s.Id, "¿Entrega o retiro?", []models.Button{
    {Id: choiceDelivery, Title: "Delivery"},
    {Id: choicePickup, Title: "Retiro"},
    {Id: choiceCancelPay, Title: "Cancelar"},
  })
}

func (b *Transport) sendZoneList(ctx context.Context, s *models.Session) {
  rows := lo.Map(b.deps.Catalog.Zones(), func(zone models.DeliveryZone, index int) models.ListRow {
    return models.ListRow{
      Id:          fmt.Sprintf("%s%d", choiceZonePrefix, index+1),
      Title:       fmt.Sprintf("%d) %s", index+1, zone.Label),
      Description: fmt.Sprintf("Envío: %s", money.String(zone.Fee)),
    }
  })

  rows = append(rows, models.ListRow{
    Id:          choiceZoneOther,
    Title:       fmt.Sprintf("%d) %s", len(rows)+1, catalog.OutOfAreaLabel),
    Description: "Te coordinamos el envío por este chat",
  })

  b.sendList(ctx, s.Id, "🗺️ ¿En qué zona estás?", "Ver zonas", []models.ListSection{
    {Title: "Zonas de entrega", Rows: rows},
  })
}

func (b *Transport) sendPaymentButtons(ctx context.Context, s *models.Session) {
  b.sendButtons(ctx, s.Id, "Método de pago:", []models.Button{
    {Id: choicePayCash, Title: "Efectivo"},
    {Id: choicePayCard, Title: "Tarjeta"},
    {Id: choicePayTransfer, Title: "Transferencia"},
  })
}

func (b *Transport) sendInvoiceConfirm(ctx context.Context, s *models.Session, summary models.OrderSummary) {
  text := message.Do().SetSummary(summary).BuildInvoiceText()

  b.sendButtons(ctx, s.Id, text+"\n\n¿Confirmás el pedido?", []models.Button{
    {Id: choiceConfirmOrder, Title: "1) Confirmar"},
    {Id: choiceCancelOrder, Title: "2) Cancelar"},
  })
}

func stagedTitle(s *models.Session) string {
  line := models.CartLine{
    Name:   s.Scratch.Product.Name,
    Config: stagedConfig(s),
  }
  return line.Title()
}

func stagedConfig(s *models.Session) []string {
  var config []string

  if s.Scratch.Side != "" {
    config = append(config, s.Scratch.Side)
  }
  if s.Scratch.Base != "" {
    config = append(config, s.Scratch.Base)
  }

  return config
}
