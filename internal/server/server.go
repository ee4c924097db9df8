package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/config"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/internal/assistant"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/internal/knowledge"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/provider"
)

// Run builds the knowledge store, the inference provider and the assistant,
// wires the HTTP routes and serves until the listener fails. addr overrides
// the configured listen address when non-empty.
func Run(cfg *config.Config, addr string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	var store *knowledge.Store
	var err error
	if cfg.Knowledge.Path != "" {
		store, err = knowledge.NewFromFile(cfg.Knowledge.Path)
		if err != nil {
			return fmt.Errorf("loading knowledge base: %w", err)
		}
	} else {
		store = knowledge.New()
	}

	llm, err := provider.New(provider.Ollama, cfg.Ollama)
	if err != nil {
		return err
	}

	assistLogger := log.New(log.Writer(), "[ASSIST] ", log.LstdFlags)
	assist := assistant.New(store, llm, cfg, assistLogger)

	h := &Handler{
		Store:      store,
		Assistant:  assist,
		LLM:        llm,
		ModelLabel: cfg.Ollama.ModelLabel,
		Topics:     cfg.Newsletters.Topics,
		Logger:     baseLogger,
	}
	if cfg.Newsletters.CacheTTL > 0 {
		h.Cache = gocache.New(cfg.Newsletters.CacheTTL, 2*cfg.Newsletters.CacheTTL)
	}

	e.GET("/", h.Home)
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/knowledge", h.Knowledge)
	api.POST("/chat", h.Chat)
	api.POST("/newsletters", h.Newsletters)

	if addr == "" {
		addr = cfg.Server.Address
	}
	log.Printf("listening on %s (model %s at %s)", addr, cfg.Ollama.Model, cfg.Ollama.BaseURL)
	return e.Start(addr)
}
