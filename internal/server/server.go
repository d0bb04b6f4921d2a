// Package server wires the HTTP surface: health and version probes,
// Prometheus metrics, the farm state and action API, and the SSE stream.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/handler"
	"github.com/verdantworks/idlefarm/internal/logger"
	"github.com/verdantworks/idlefarm/internal/metrics"
	"github.com/verdantworks/idlefarm/internal/sse"
)

type Server struct {
	httpServer *http.Server
	farmSvc    farm.Service
	hub        *sse.Hub
}

// NewServer creates a new Server instance
func NewServer(port int, farmSvc farm.Service, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost to innermost
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check route (unversioned)
	r.Get("/healthz", handler.HandleHealthz())

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	farmHandler := handler.NewFarmHandler(farmSvc)
	shopHandler := handler.NewShopHandler(farmSvc)
	tradeHandler := handler.NewTradeHandler(farmSvc)

	// API v1 routes
	r.Route("/api/v1/farm", func(r chi.Router) {
		r.Get("/", farmHandler.HandleGetFarm)
		r.Get("/events", sse.Handler(hub))

		r.Route("/plants", func(r chi.Router) {
			r.Post("/buy", farmHandler.HandleBuyPlant)
			r.Post("/remove", farmHandler.HandleRemovePlant)
			r.Post("/upgrade", farmHandler.HandleUpgradePlant)
			r.Post("/harvest", farmHandler.HandleHarvest)
			r.Post("/water", farmHandler.HandleWaterPlant)
			r.Post("/feed", farmHandler.HandleFeedPlant)
			r.Post("/treat", farmHandler.HandleTreatPest)
		})

		r.Route("/shop", func(r chi.Router) {
			r.Post("/item/buy", shopHandler.HandleBuyItem)
			r.Post("/item/sell", shopHandler.HandleSellItem)
			r.Post("/upgrade", shopHandler.HandleBuyUpgrade)
			r.Post("/research", shopHandler.HandleBuyResearch)
			r.Post("/consumable", shopHandler.HandleBuyConsumable)
		})

		r.Post("/offers/accept", tradeHandler.HandleAcceptOffer)
		r.Post("/sell", tradeHandler.HandleQuickSell)
		r.Post("/slots/unlock", farmHandler.HandleUnlockSlot)
		r.Post("/difficulty", shopHandler.HandleSetDifficulty)
		r.Post("/prestige", tradeHandler.HandlePrestige)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		farmSvc: farmSvc,
		hub:     hub,
	}
}

// Handler exposes the router, used by tests to drive the full stack.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps SSE streaming working through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for probe and scrape endpoints
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
