package whatsapp

import (
  "context"
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
  "github.com/samber/lo"
  log "github.com/sirupsen/logrus"

  "github.com/elmerol/comanda/internal/models"
)

const DefaultGraphURL = "https://graph.facebook.com/v22.0"

const maxQuickReplies = 3

type Config struct {
  Token         string `validate:"required"`
  PhoneNumberId string `validate:"required"`
  OperatorPhone string `validate:"required"`
  GraphURL      string
}

type Dependencies struct {
  Client *resty.Client
}

// Client talks to the WhatsApp Cloud API. Delivery is best effort:
// callers log errors and move on, a failed send never rolls back
// conversation state.
type Client struct {
  config Config
  deps   Dependencies
}

func NewClient(config Config, deps Dependencies) (*Client, error) {
  if err := validator.New().Struct(config); err != nil {
    return nil, fmt.Errorf("validator.Struct: %w", err)
  }

  if config.GraphURL == "" {
    config.GraphURL = DefaultGraphURL
  }

  return &Client{
    config: config,
    deps:   deps,
  }, nil
}

func (c *Client) SendText(ctx context.Context, to models.UserId, text string) error {
  return c.post(ctx, payload{
    MessagingProduct: "whatsapp",
    To:               to,
    Type:             "text",
    Text:             &textBody{Body: text},
  })
}

func (c *Client) SendQuickReplies(ctx context.Context, to models.UserId, text string, buttons []models.Button) error {
  if len(buttons) > maxQuickReplies {
    buttons = buttons[:maxQuickReplies]
  }

  return c.post(ctx, payload{
    MessagingProduct: "whatsapp",
    To:               to,
    Type:             "interactive",
    Interactive: &interactive{
      Type: "button",
      Body: body{Text: text},
      Action: &action{
        Buttons: lo.Map(buttons, func(b models.Button, _ int) button {
          return button{
            Type: "reply",
            Reply: reply{
              Id:    b.Id,
              Title: b.Title,
            },
          }
        }),
      },
    },
  })
}

func (c *Client) SendList(ctx context.Context, to models.UserId, text string, buttonLabel string, sections []models.ListSection) error {
  return c.post(ctx, payload{
    MessagingProduct: "whatsapp",
    To:               to,
    Type:             "interactive",
    Interactive: &interactive{
      Type: "list",
      Body: body{Text: text},
      Action: &action{
        Button: buttonLabel,
        Sections: lo.Map(sections, func(s models.ListSection, _ int) section {
          return section{
            Title: s.Title,
            Rows: lo.Map(s.Rows, func(r models.ListRow, _ int) row {
              return row{
                Id:          r.Id,
                Title:       r.Title,
                Description: r.Description,
              }
            }),
          }
        }),
      },
    },
  })
}

// NotifyOperator forwards a message to the restaurant's own number.
func (c *Client) NotifyOperator(ctx context.Context, text string) error {
  if err := c.SendText(ctx, c.config.OperatorPhone, text); err != nil {
    return fmt.Errorf("c.SendText: %w", err)
  }
  return nil
}

func (c *Client) post(ctx context.Context, load payload) error {
  url := fmt.Sprintf("%s/%s/messages", c.config.GraphURL, c.config.PhoneNumberId)

  resp, err := c.deps.Client.R().
    SetContext(ctx).
    SetAuthToken(c.config.Token).
    SetHeader("Content-Type", "application/json").
    SetBody(load).
    Post(url)

  if err != nil {
    return fmt.Errorf("resty.Post: %w", err)
  }

  if resp.IsError() {
    return fmt.Errorf("graph api: status %d: %s", resp.StatusCode(), resp.String())
  }

  log.
    WithField("to", load.To).
    WithField("type", load.Type).
    Debug("whatsapp message sent")

  return nil
}
