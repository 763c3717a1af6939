package server

import (
  "context"
  "errors"
  "fmt"
  "io"
  "net/http"
  "time"

  "github.com/go-chi/chi/v5"
  "github.com/go-chi/chi/v5/middleware"
  log "github.com/sirupsen/logrus"

  "github.com/elmerol/comanda/internal/app/bot"
  "github.com/elmerol/comanda/internal/deps/whatsapp"
  "github.com/elmerol/comanda/pkg/worker"
)

type Config struct {
  Addr        string
  VerifyToken string
}

type Dependencies struct {
  Bot  *bot.Transport
  Pool *worker.Pool
}

type Server struct {
  config Config
  deps   Dependencies
  http   *http.Server
}

func NewServer(config Config, deps Dependencies) *Server {
  s := &Server{
    config: config,
    deps:   deps,
  }

  router := chi.NewRouter()

  router.Use(middleware.RequestID)
  router.Use(middleware.Recoverer)
  router.Use(middleware.Timeout(30 * time.Second))

  router.Get("/health", s.handleHealth)
  router.Get("/webhook/whatsapp", s.handleVerify)
  router.Post("/webhook/whatsapp", s.handleWebhook)

  s.http = &http.Server{
    Addr:    config.Addr,
    Handler: router,
  }

  return s
}

func (s *Server) Start() error {
  log.Infof("server.Start: listening on %s", s.config.Addr)

  if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
    return fmt.Errorf("http.ListenAndServe: %w", err)
  }

  return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
  if err := s.http.Shutdown(ctx); err != nil {
    return fmt.Errorf("http.Shutdown: %w", err)
  }
  return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
  w.WriteHeader(http.StatusOK)
  _, _ = w.Write([]byte("ok"))
}

// handleVerify answers the Graph API subscription handshake: echo
// hub.challenge back when the verify token matches.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
  query := r.URL.Query()

  if query.Get("hub.mode") == "subscribe" && query.Get("hub.verify_token") == s.config.VerifyToken {
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write([]byte(query.Get("hub.challenge")))

    return
  }

  w.WriteHeader(http.StatusForbidden)
}

// handleWebhook always answers 200: a non-2xx response makes the Graph
// API retry the same delivery, which would duplicate user messages.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
  defer w.WriteHeader(http.StatusOK)

  data, err := io.ReadAll(r.Body)
  if err != nil {
    log.Errorf("server.handleWebhook: io.ReadAll: %v", err)
    return
  }

  event, ok := whatsapp.ParseEvent(data)
  if !ok {
    return
  }

  s.deps.Pool.Push(func(ctx context.Context) error {
    s.deps.Bot.HandleEvent(ctx, event)
    return nil
  })
}
