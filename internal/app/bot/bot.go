package bot

import (
  "context"

  "github.com/elmerol/comanda/internal/catalog"
  "github.com/elmerol/comanda/internal/models"
  "github.com/elmerol/comanda/pkg/cache"
)

// Sender delivers outbound prompts. Failures are logged and never gate a
// state transition.
type Sender interface {
  SendText(ctx context.Context, to models.UserId, text string) error
  SendQuickReplies(ctx context.Context, to models.UserId, text string, buttons []models.Button) error
  SendList(ctx context.Context, to models.UserId, text string, buttonLabel string, sections []models.ListSection) error
}

// Notifier reaches the operator channel: confirmed orders, advisor
// messages, out-of-area requests.
type Notifier interface {
  NotifyOperator(ctx context.Context, text string) error
}

// Sessions serializes all work for one customer id. Do hands the handler
// a live session, expired records replaced beforehand.
type Sessions interface {
  Do(ctx context.Context, id models.UserId, fn func(session *models.Session))
}

type Transport struct {
  deps Dependencies
}

type Dependencies struct {
  Sender   Sender
  Notifier Notifier
  Sessions Sessions
  Catalog  *catalog.Catalog

  editRows *cache.Cache[models.UserId, int, string]
}

func NewTransport(deps Dependencies) *Transport {
  deps.editRows = cache.NewCache[models.UserId, int, string]()

  return &Transport{deps: deps}
}

// HandleEvent is the single entry point for inbound events. Each call
// runs to completion under the sender's session lock.
func (b *Transport) HandleEvent(ctx context.Context, event models.Event) {
  b.deps.Sessions.Do(ctx, event.Sender, func(session *models.Session) {
    b.route(ctx, session, event)
  })
}
