package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	alertDomain "github.com/dvcwatch/availability-alerts/internal/modules/alert/domain"
	feedService "github.com/dvcwatch/availability-alerts/internal/modules/feed/service"
	"github.com/dvcwatch/availability-alerts/internal/shared/config"
	"github.com/samber/lo"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes the availability change feed over HTTP
type Server struct {
	cfg    *config.Config
	feed   *feedService.Service
	logger *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, feed *feedService.Service) *Server {
	return &Server{
		cfg:    cfg,
		feed:   feed,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Change feed endpoint
	mux.HandleFunc("GET /feeds/{alertName}", s.handleFeed)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Feed server starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	alertName := r.PathValue("alertName")
	if alertName == "" {
		http.Error(w, "Alert name is required", http.StatusBadRequest)
		return
	}

	// Only serve feeds for configured alerts
	known := lo.SomeBy(s.cfg.Alerts, func(a alertDomain.Alert) bool {
		return a.Name == alertName
	})
	if !known {
		http.Error(w, "Unknown alert", http.StatusNotFound)
		return
	}

	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

	feed, err := s.feed.GenerateFeed(alertName, baseURL)
	if err != nil {
		s.logger.Error("Error generating feed", "alert", alertName, "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
