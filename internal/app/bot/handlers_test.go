package bot

import (
  "context"
  "strings"
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/elmerol/comanda/internal/catalog"
  "github.com/elmerol/comanda/internal/models"
  "github.com/elmerol/comanda/internal/sessions"
)

const testUser = "50588881111"

type sentText struct {
  To   models.UserId
  Text string
}

type fakeSender struct {
  texts    []sentText
  buttons  []models.Button
  sections []models.ListSection
}

func (f *fakeSender) SendText(_ context.Context, to models.UserId, text string) error {
  f.texts = append(f.texts, sentText{To: to, Text: text})
  return nil
}

func (f *fakeSender) SendQuickReplies(_ context.Context, to models.UserId, text string, buttons []models.Button) error {
  f.texts = append(f.texts, sentText{To: to, Text: text})
  f.buttons = append(f.buttons, buttons...)
  return nil
}

func (f *fakeSender) SendList(_ context.Context, to models.UserId, text string, _ string, sections []models.ListSection) error {
  f.texts = append(f.texts, sentText{To: to, Text: text})
  f.sections = append(f.sections, sections...)
  return nil
}

func (f *fakeSender) contains(substr string) bool {
  for _, sent := range f.texts {
    if strings.Contains(sent.Text, substr) {
      return true
    }
  }
  return false
}

type fakeNotifier struct {
  notes []string
}

func (f *fakeNotifier) NotifyOperator(_ context.Context, text string) error {
  f.notes = append(f.notes, text)
  return nil
}

type fixture struct {
  bot      *Transport
  sender   *fakeSender
  notifier *fakeNotifier
  store    *sessions.Store
}

func newFixture(t *testing.T) *fixture {
  t.Helper()

  sender := &fakeSender{}
  notifier := &fakeNotifier{}
  store := sessions.NewStore(time.Minute)

  transport := NewTransport(Dependencies{
    Sender:   sender,
    Notifier: notifier,
    Sessions: store,
    Catalog:  catalog.New(),
  })

  return &fixture{
    bot:      transport,
    sender:   sender,
    notifier: notifier,
    store:    store,
  }
}

func (f *fixture) text(text string) {
  f.bot.HandleEvent(context.Background(), models.Event{
    Sender: testUser,
    Kind:   models.EventText,
    Text:   text,
  })
}

func (f *fixture) tap(choiceId string) {
  f.bot.HandleEvent(context.Background(), models.Event{
    Sender:   testUser,
    Kind:     models.EventButton,
    ChoiceId: choiceId,
  })
}

func (f *fixture) session(t *testing.T) *models.Session {
  t.Helper()

  session, ok := f.store.Peek(testUser)
  require.True(t, ok)

  return session
}

func TestFullOrderWithAccompaniments(t *testing.T) {
  f := newFixture(t)

  f.text("hola")
  assert.True(t, f.sender.contains("Bienvenido"))

  f.text("2")
  require.Equal(t, models.StateHome, f.session(t).State)
  assert.True(t, f.session(t).Scratch.PickingCategory)

  f.text("2") // almuerzos
  require.Equal(t, models.StateProductPick, f.session(t).State)

  f.text("2") // Bisteck, bare index inside active category
  require.Equal(t, models.StateAccompaniment1, f.session(t).State)

  f.text("tajadas")
  require.Equal(t, models.StateAccompaniment2, f.session(t).State)

  f.text("1") // arroz blanco
  require.Equal(t, models.StateQuantity, f.session(t).State)
  assert.Equal(t, 1, f.session(t).Scratch.Quantity)

  f.text("3")
  assert.Equal(t, 3, f.session(t).Scratch.Quantity)

  f.tap(choiceQtyAdd)

  session := f.session(t)
  require.Equal(t, models.StateHome, session.State)
  require.Len(t, session.Cart.Lines, 1)
  assert.Equal(t, "Bisteck (tajadas + arroz blanco)", session.Cart.Lines[0].Title())
  assert.Equal(t, 540, session.Cart.Total())
  assert.Equal(t, "a2", session.Scratch.LastCode)

  f.text("pagar")
  require.Equal(t, models.StatePayName, f.session(t).State)

  f.text("María López")
  require.Equal(t, models.StatePayDelivery, f.session(t).State)
  assert.Equal(t, "María López", f.session(t).Scratch.Name)

  f.tap(choiceDelivery)
  require.Equal(t, models.StatePayAddress, f.session(t).State)

  f.text("Casa 12, frente al parque")
  require.Equal(t, models.StatePayDistrict, f.session(t).State)

  f.tap(choiceZonePrefix + "2") // Las Fuentes
  require.Equal(t, models.StatePayMethod, f.session(t).State)
  assert.Equal(t, 65, f.session(t).Scratch.ZoneFee)

  f.tap(choicePayCash)
  require.Equal(t, models.StateConfirm, f.session(t).State)
  assert.True(t, f.sender.contains("*Total: C$605*"))

  f.tap(choiceConfirmOrder)

  require.Len(t, f.notifier.notes, 1)
  assert.Contains(t, f.notifier.notes[0], "Nuevo pedido")
  assert.Contains(t, f.notifier.notes[0], "Cliente: "+testUser)
  assert.Contains(t, f.notifier.notes[0], "*Total: C$605*")

  session = f.session(t)
  assert.Equal(t, models.StateHome, session.State)
  assert.True(t, session.Cart.Empty())
}

func TestFixedAccompanimentSkipsSecondChoice(t *testing.T) {
  f := newFixture(t)

  f.text("f1") // Parrillada de pollo
  require.Equal(t, models.StateAccompaniment1, f.session(t).State)

  f.text("maduro")

  session := f.session(t)
  require.Equal(t, models.StateQuantity, session.State)
  assert.Equal(t, catalog.FixedCabbageSalad, session.Scratch.Base)
}

func TestBeverageGoesStraightToQuantity(t *testing.T) {
  f := newFixture(t)

  f.text("b6") // Cacao, no accompaniment rule

  session := f.session(t)
  require.Equal(t, models.StateQuantity, session.State)
  assert.Equal(t, "Cacao", session.Scratch.Product.Name)
}

func TestMentionByNameFromHome(t *testing.T) {
  f := newFixture(t)

  f.text("quiero un nacatamal porfa")

  session := f.session(t)
  require.Equal(t, models.StateQuantity, session.State)
  assert.Equal(t, "Nacatamal", session.Scratch.Product.Name)
}

func TestStepperClampsAtBounds(t *testing.T) {
  f := newFixture(t)

  f.text("b1")
  require.Equal(t, models.StateQuantity, f.session(t).State)

  f.tap(choiceQtyMinus)
  assert.Equal(t, 1, f.session(t).Scratch.Quantity)

  for i := 0; i < 12; i++ {
    f.tap(choiceQtyPlus)
  }
  assert.Equal(t, 9, f.session(t).Scratch.Quantity)
}

func TestTypedQuantityAboveMaxIsRejected(t *testing.T) {
  f := newFixture(t)

  f.text("b1")
  f.text("51")

  assert.Equal(t, 1, f.session(t).Scratch.Quantity)
}

func TestEmptyCartCheckoutRedirectsHome(t *testing.T) {
  f := newFixture(t)

  f.text("pagar")

  assert.Equal(t, models.StateHome, f.session(t).State)
  assert.True(t, f.sender.contains("vacío"))
}

func TestPickupSkipsAddressAndFee(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)
  f.tap(choiceAfterPay)
  f.text("Pedro")
  f.tap(choicePickup)

  session := f.session(t)
  require.Equal(t, models.StatePayMethod, session.State)
  assert.Equal(t, models.DeliveryModePickup, session.Scratch.Delivery)
  assert.Zero(t, session.Scratch.ZoneFee)

  f.tap(choicePayTransfer)
  require.Equal(t, models.StateConfirm, f.session(t).State)
  assert.True(t, f.sender.contains("retiro en local"))
}

func TestOutOfAreaKeepsCart(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)
  f.text("pagar")
  f.text("Pedro")
  f.tap(choiceDelivery)
  f.text("Residencial al fondo, casa verde")
  f.tap(choiceZoneOther)

  session := f.session(t)
  assert.Equal(t, models.StateHome, session.State)
  require.Len(t, session.Cart.Lines, 1)
  assert.Empty(t, session.Scratch.Name)

  require.Len(t, f.notifier.notes, 1)
  assert.Contains(t, f.notifier.notes[0], "fuera de zona")
}

func TestDistrictByTypedName(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)
  f.text("pagar")
  f.text("Ana María")
  f.tap(choiceDelivery)
  f.text("Del árbol 2c al lago")
  f.text("villa venezuela")

  session := f.session(t)
  require.Equal(t, models.StatePayMethod, session.State)
  assert.Equal(t, "Villa Venezuela", session.Scratch.Zone)
  assert.Equal(t, 80, session.Scratch.ZoneFee)
}

func TestCancelAtConfirmKeepsCart(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)
  f.text("pagar")
  f.text("Pedro")
  f.tap(choicePickup)
  f.tap(choicePayCash)
  require.Equal(t, models.StateConfirm, f.session(t).State)

  f.tap(choiceCancelOrder)

  session := f.session(t)
  assert.Equal(t, models.StateHome, session.State)
  assert.Len(t, session.Cart.Lines, 1)
  assert.Empty(t, session.Scratch.Name)
  assert.Empty(t, f.notifier.notes)
}

func TestEditFlow(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)
  f.text("d3")
  f.text("2")
  f.tap(choiceQtyAdd)

  require.Len(t, f.session(t).Cart.Lines, 2)

  f.tap(choiceCartEdit)
  f.tap(choiceEditPrefix + "1") // Nacatamal line

  session := f.session(t)
  require.Equal(t, models.StateEditQuantity, session.State)
  assert.Equal(t, 2, session.Scratch.EditQuantity)

  f.tap(choiceEditPlus)
  f.tap(choiceEditDone)

  session = f.session(t)
  assert.Equal(t, models.StateHome, session.State)
  assert.Equal(t, 3, session.Cart.Lines[1].Quantity)
}

func TestEditToZeroRemovesLine(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)

  f.tap(choiceCartEdit)
  f.tap(choiceEditPrefix + "0")

  f.text("0")
  f.tap(choiceEditDone)

  session := f.session(t)
  assert.True(t, session.Cart.Empty())
  assert.True(t, f.sender.contains("eliminado"))
}

func TestStaleEditTapIsRefused(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)
  f.tap(choiceCartEdit)

  // The cart changes under the rendered list.
  f.tap(choiceCartClear)
  f.text("b1")
  f.tap(choiceQtyAdd)

  f.tap(choiceEditPrefix + "0")

  session := f.session(t)
  assert.NotEqual(t, models.StateEditQuantity, session.State)
  assert.True(t, f.sender.contains("ya no está en el carrito"))
}

func TestRepeatLastProduct(t *testing.T) {
  f := newFixture(t)

  f.text("a1") // Pollo tapado
  f.text("tajadas")
  f.text("arroz blanco")
  f.tap(choiceQtyAdd)

  f.tap(choiceAfterRepeat)

  session := f.session(t)
  require.Equal(t, models.StateAccompaniment1, session.State)
  assert.Equal(t, "Pollo tapado", session.Scratch.Product.Name)
}

func TestAdvisorInterceptsEverything(t *testing.T) {
  f := newFixture(t)

  f.text("asesor")
  require.Equal(t, models.StateAdvisor, f.session(t).State)

  f.text("a1 me pueden llamar?")

  // Advisor mode forwards, it does not parse product codes.
  require.Equal(t, models.StateAdvisor, f.session(t).State)
  require.Len(t, f.notifier.notes, 1)
  assert.Contains(t, f.notifier.notes[0], "a1 me pueden llamar?")

  f.text("salir")
  assert.Equal(t, models.StateHome, f.session(t).State)
}

func TestGlobalKeywordsDoNotStealNames(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)
  f.text("pagar")
  require.Equal(t, models.StatePayName, f.session(t).State)

  // A bare keyword escapes the capture state instead of becoming a name.
  f.text("menu")
  assert.Equal(t, models.StateHome, f.session(t).State)
}

func TestClearResetsEverything(t *testing.T) {
  f := newFixture(t)

  f.text("b6")
  f.tap(choiceQtyAdd)
  f.text("borrar")

  session := f.session(t)
  assert.Equal(t, models.StateHome, session.State)
  assert.True(t, session.Cart.Empty())
  assert.Empty(t, session.Scratch.LastCode)
}

func TestStaleProductChoiceDegradesGracefully(t *testing.T) {
  f := newFixture(t)

  f.tap(choiceProductPrefix + "z9")

  assert.Equal(t, models.StateHome, f.session(t).State)
  assert.True(t, f.sender.contains("ya no está disponible"))
}
