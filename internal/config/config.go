package config

import (
  "fmt"
  "time"

  "github.com/go-playground/validator/v10"

  "github.com/elmerol/comanda/internal/sessions"
  "github.com/elmerol/comanda/pkg/env"
  "github.com/elmerol/comanda/pkg/worker"
)

// Config collects everything the process reads from the environment.
type Config struct {
  HTTPAddr string `validate:"required"`

  WhatsAppToken  string `validate:"required"`
  PhoneNumberId  string `validate:"required"`
  OperatorPhone  string `validate:"required"`
  GraphURL       string
  WebhookVerify  string `validate:"required"`

  SessionTTL  time.Duration `validate:"gt=0"`
  WorkerCount int           `validate:"gt=0"`
}

func Load() (Config, error) {
  config := Config{
    HTTPAddr: env.String("HTTP_ADDR", ":8080"),

    WhatsAppToken: env.String("WHATSAPP_TOKEN", ""),
    PhoneNumberId: env.String("WHATSAPP_PHONE_NUMBER_ID", ""),
    OperatorPhone: env.String("OPERATOR_PHONE", ""),
    GraphURL:      env.String("GRAPH_URL", ""),
    WebhookVerify: env.String("WEBHOOK_VERIFY_TOKEN", ""),

    SessionTTL:  env.Duration("SESSION_TTL", sessions.DefaultTTL),
    WorkerCount: env.Int("WORKER_COUNT", worker.DefaultCount),
  }

  if err := validator.New().Struct(config); err != nil {
    return Config{}, fmt.Errorf("validator.Struct: %w", err)
  }

  return config, nil
}
