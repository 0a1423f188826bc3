package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"helium/internal/config"
)

// Server is the HTTP adapter.
type Server struct {
	engine *gin.Engine
	addr   string
}

// NewServer builds the gin engine, the middleware chain and the routes.
func NewServer(cfg *config.Config, handler *Handler) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	RegisterRoutes(engine, handler)

	return &Server{
		engine: engine,
		addr:   cfg.HTTPAddr,
	}
}

// RegisterRoutes attaches every route to the engine. The bulk route must be
// declared alongside the parameterized one; gin resolves the static segment
// first.
func RegisterRoutes(engine *gin.Engine, h *Handler) {
	engine.GET("/", h.HandleRoot)
	engine.GET("/health", h.HandleHealth)
	engine.GET("/localizations/:project_id/:locale", h.HandleLocalizations)
	engine.GET("/translation-keys", h.HandleListKeys)
	engine.GET("/translation-keys/:key_id", h.HandleGetKey)
	engine.PUT("/translations/bulk", h.HandleBulkUpdate)
	engine.PUT("/translations/:translation_id", h.HandleUpdateTranslation)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the server until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	fmt.Printf("🚀 API en ligne sur %s ! Appuyez sur CTRL+C pour quitter.\n", s.addr)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("erreur du serveur HTTP: %w", err)
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
