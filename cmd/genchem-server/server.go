package main

import (
	"fmt"
	"net/http"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/daniacca/genchem/internal/genchem/notifiers"
	"github.com/daniacca/genchem/internal/logging"
	"golang.org/x/time/rate"
)

// Server represents the HTTP server for genchem
type Server struct {
	cfg         ServerConfig
	manager     *genchem.ChemistryManager
	notifierMgr *genchem.NotificationManager
	hub         *notifiers.WebSocketNotifier
	limiter     *rate.Limiter // nil when throttling is disabled
	metrics     *metrics
	logger      *logging.Logger
}

// NewServer creates a new server instance, registers its notifiers and loads
// the startup system file when one is configured.
func NewServer(cfg ServerConfig, logger *logging.Logger) (*Server, error) {
	s := &Server{
		cfg:         cfg,
		manager:     genchem.NewChemistryManagerWithLogger(logger),
		notifierMgr: genchem.NewNotificationManagerWithLogger(logger),
		hub:         notifiers.NewWebSocketNotifier("websocket", logger),
		metrics:     newMetrics(),
		logger:      logger,
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	if err := s.notifierMgr.RegisterNotifier(s.hub); err != nil {
		return nil, fmt.Errorf("registering websocket notifier: %w", err)
	}
	if cfg.WebhookURL != "" {
		events, err := notifiers.ParseEventTypes(cfg.WebhookEvents)
		if err != nil {
			return nil, fmt.Errorf("webhook events: %w", err)
		}
		hook := notifiers.NewWebhookNotifier("webhook", cfg.WebhookURL, notifiers.WithEvents(events...))
		if err := s.notifierMgr.RegisterNotifier(hook); err != nil {
			return nil, fmt.Errorf("registering webhook notifier: %w", err)
		}
		logger.Infof("Webhook notifier registered: url=%s events=%v", cfg.WebhookURL, events)
	}

	if cfg.SystemFile != "" {
		id, err := s.loadSystemFile(cfg.SystemFile)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("loading system file %s: %w", cfg.SystemFile, err)
		}
		logger.Infof("System file loaded: path=%s id=%s", cfg.SystemFile, id)
	}
	return s, nil
}

func (s *Server) loadSystemFile(path string) (genchem.ChemistryID, error) {
	sysCfg, err := genchem.LoadSystemConfig(path)
	if err != nil {
		return "", err
	}
	chem, err := s.buildFromConfig(sysCfg)
	if err != nil {
		return "", err
	}
	return s.store(chem)
}

// Routes returns the server's HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	m := s.metrics

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", m.handler())
	mux.HandleFunc("POST /chemistries/generate", m.instrument("generate", s.throttle(s.handleGenerate)))
	mux.HandleFunc("POST /chemistries", m.instrument("create", s.throttle(s.handleCreate)))
	mux.HandleFunc("GET /chemistries", m.instrument("list", s.handleList))
	mux.HandleFunc("GET /chemistries/{id}", m.instrument("get", s.handleGet))
	mux.HandleFunc("DELETE /chemistries/{id}", m.instrument("delete", s.handleDelete))
	mux.Handle("GET /ws", s.hub)
	return mux
}

// Close shuts down notification delivery and disconnects WebSocket clients.
func (s *Server) Close() error {
	return s.notifierMgr.Close()
}

// store saves chem, updates gauges and announces it.
func (s *Server) store(chem *genchem.Chemistry) (genchem.ChemistryID, error) {
	id, err := s.manager.Create(chem)
	if err != nil {
		return "", err
	}
	s.metrics.stored.Set(float64(s.manager.Len()))
	s.metrics.reactions.Observe(float64(len(chem.Reactions)))
	s.notifierMgr.Enqueue(genchem.NewChemistryEvent(genchem.EventCreated, id, chem))
	return id, nil
}
