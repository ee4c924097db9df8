package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	gocache "github.com/patrickmn/go-cache"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/internal/assistant"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/internal/knowledge"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/models"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/provider"
)

const newsletterCacheKey = "newsletters"

// Handler serves the assistant API. All fields are set once at startup.
type Handler struct {
	Store      *knowledge.Store
	Assistant  *assistant.Assistant
	LLM        provider.Provider
	ModelLabel string
	Topics     []models.Topic
	Cache      *gocache.Cache // nil when caching is disabled
	Logger     *log.Logger
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response       string   `json:"response"`
	Sources        []string `json:"sources"`
	ConversationID string   `json:"conversation_id"`
	AIModel        string   `json:"ai_model,omitempty"`
	Error          string   `json:"error,omitempty"`
}

type newsletterRequest struct {
	Count int `json:"count"`
}

type newsletterResponse struct {
	Newsletters []models.Newsletter `json:"newsletters"`
	GeneratedAt string              `json:"generated_at"`
	AIModel     string              `json:"ai_model,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// Home serves a minimal HTML listing of the API surface.
func (h *Handler) Home(c echo.Context) error {
	const page = `<!DOCTYPE html>
<html>
<head><title>Qbit Assistant API</title></head>
<body>
<h1>Qbit Assistant API</h1>
<h2>Available Endpoints:</h2>
<p><strong>GET</strong> /health - Health check and system status</p>
<p><strong>GET</strong> /api/knowledge - Knowledge base information</p>
<p><strong>POST</strong> /api/chat - Chat with the AI assistant</p>
<p><strong>POST</strong> /api/newsletters - Generate AI-powered newsletters</p>
</body>
</html>
`
	return c.HTML(http.StatusOK, page)
}

// Health reports service status and whether the inference backend answers.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"ai_backend":   h.ModelLabel,
		"ai_available": h.LLM.Available(c.Request().Context()),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Knowledge returns the corpus summary: document count plus the distinct
// categories and sources.
func (h *Handler) Knowledge(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Stats())
}

// Chat answers one employee question. Inference failures are absorbed by the
// assistant's fallback; only an unreadable request body produces a 500, and
// even that carries an apology payload rather than a bare error.
func (h *Handler) Chat(c echo.Context) error {
	chatRequests.Inc()

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		h.Logger.Printf("chat: bad request body: %v", err)
		return c.JSON(http.StatusInternalServerError, chatResponse{
			Response:       "I'm sorry, I encountered an error processing your request. Please try again.",
			Sources:        []string{},
			ConversationID: uuid.NewString(),
			Error:          err.Error(),
		})
	}

	answer := h.Assistant.Answer(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, chatResponse{
		Response:       answer.Text,
		Sources:        answer.Sources,
		ConversationID: uuid.NewString(),
		AIModel:        h.ModelLabel,
	})
}

// Newsletters generates one newsletter per configured topic. The request's
// count field is accepted for compatibility but the topic list is fixed.
// Any failure degrades to the canned per-topic fallbacks with an error flag,
// still as a 200.
func (h *Handler) Newsletters(c echo.Context) error {
	newsletterRequests.Inc()

	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		h.Logger.Printf("newsletters: bad request body: %v", err)
		return c.JSON(http.StatusOK, newsletterResponse{
			Newsletters: h.fallbackNewsletters(),
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Error:       "AI generation failed, using fallback content",
		})
	}

	if h.Cache != nil {
		if cached, ok := h.Cache.Get(newsletterCacheKey); ok {
			return c.JSON(http.StatusOK, newsletterResponse{
				Newsletters: cached.([]models.Newsletter),
				GeneratedAt: time.Now().UTC().Format(time.RFC3339),
				AIModel:     h.ModelLabel,
			})
		}
	}

	newsletters := h.Assistant.GenerateNewsletters(c.Request().Context(), h.Topics)
	if h.Cache != nil {
		h.Cache.Set(newsletterCacheKey, newsletters, gocache.DefaultExpiration)
	}

	return c.JSON(http.StatusOK, newsletterResponse{
		Newsletters: newsletters,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		AIModel:     h.ModelLabel,
	})
}

func (h *Handler) fallbackNewsletters() []models.Newsletter {
	out := make([]models.Newsletter, 0, len(h.Topics))
	for _, t := range h.Topics {
		out = append(out, assistant.FallbackNewsletter(t.Category))
	}
	return out
}
