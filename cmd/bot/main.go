package main

import (
  "context"
  "net/http"
  "os"
  "os/signal"
  "syscall"
  "time"

  "github.com/go-resty/resty/v2"
  "github.com/joho/godotenv"
  log "github.com/sirupsen/logrus"

  "github.com/elmerol/comanda/internal/app/bot"
  "github.com/elmerol/comanda/internal/catalog"
  "github.com/elmerol/comanda/internal/config"
  "github.com/elmerol/comanda/internal/deps/whatsapp"
  "github.com/elmerol/comanda/internal/server"
  "github.com/elmerol/comanda/internal/sessions"
  "github.com/elmerol/comanda/pkg/logger"
  "github.com/elmerol/comanda/pkg/worker"
)

func main() {
  ctx := context.Background()

  _ = godotenv.Load()

  logger.Init()

  cfg, err := config.Load()
  if err != nil {
    log.Fatalf("config.Load: %v", err)
  }

  whatsappClient, err := whatsapp.NewClient(
    whatsapp.Config{
      Token:         cfg.WhatsAppToken,
      PhoneNumberId: cfg.PhoneNumberId,
      OperatorPhone: cfg.OperatorPhone,
      GraphURL:      cfg.GraphURL,
    },
    whatsapp.Dependencies{
      Client: resty.NewWithClient(http.DefaultClient),
    })
  if err != nil {
    log.Fatalf("whatsapp.NewClient: %v", err)
  }

  store := sessions.NewStore(cfg.SessionTTL)

  botTransport := bot.NewTransport(bot.Dependencies{
    Sender:   whatsappClient,
    Notifier: whatsappClient,
    Sessions: store,
    Catalog:  catalog.New(),
  })

  pool := worker.NewPool(ctx, cfg.WorkerCount)

  srv := server.NewServer(
    server.Config{
      Addr:        cfg.HTTPAddr,
      VerifyToken: cfg.WebhookVerify,
    },
    server.Dependencies{
      Bot:  botTransport,
      Pool: pool,
    })

  go func() {
    if err := srv.Start(); err != nil {
      log.Fatalf("server.Start: %v", err)
    }
  }()

  exitSignal := make(chan os.Signal, 1)
  signal.Notify(exitSignal, syscall.SIGINT, syscall.SIGTERM)
  <-exitSignal

  shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
  defer cancel()

  if err := srv.Shutdown(shutdownCtx); err != nil {
    log.Errorf("server.Shutdown: %v", err)
  }

  pool.StopWait()
}
