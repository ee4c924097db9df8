package assistant

import (
	"context"
	"log"
	"time"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/config"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/internal/knowledge"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/internal/retriever"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/models"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/provider"
)

const followUpSentence = "Is there anything specific you'd like to know more about?"

const genericHelpMessage = "I'm here to help with questions about company policies, benefits, leave, IT support, performance reviews, and compensation. What would you like to know?"

// Assistant wires retrieval, prompt composition and the inference provider
// into the two user-facing operations: chat answers and newsletter
// generation. It holds no mutable state and is safe for concurrent use.
type Assistant struct {
	store             *knowledge.Store
	llm               provider.Provider
	logger            *log.Logger
	searchOpts        retriever.Options
	chatTimeout       time.Duration
	newsletterTimeout time.Duration
}

// New constructs an Assistant over an immutable store and a provider.
func New(store *knowledge.Store, llm provider.Provider, cfg *config.Config, logger *log.Logger) *Assistant {
	return &Assistant{
		store:  store,
		llm:    llm,
		logger: logger,
		searchOpts: retriever.Options{
			Limit:           cfg.Retrieval.TopK,
			DedupeExpansion: cfg.Retrieval.DedupeExpansion,
		},
		chatTimeout:       cfg.Ollama.ChatTimeout,
		newsletterTimeout: cfg.Ollama.NewsletterTimeout,
	}
}

// Answer runs one chat turn: retrieve, compose, infer. Inference failure is
// recovered locally: with at least one match the answer degrades to the top
// match's content plus a follow-up question, otherwise to a generic help
// message with no sources.
func (a *Assistant) Answer(ctx context.Context, query string) models.Answer {
	matches := retriever.Search(query, a.store, a.searchOpts)
	prompt := BuildChatPrompt(query, matches)

	cctx, cancel := context.WithTimeout(ctx, a.chatTimeout)
	defer cancel()

	start := time.Now()
	text, err := a.llm.Generate(cctx, prompt)
	inferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		a.logger.Printf("chat inference failed, using fallback: %v", err)
		inferenceFallbacks.WithLabelValues("chat").Inc()
		return fallbackAnswer(matches)
	}

	sources := make([]string, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, m.Document.Source)
	}
	return models.Answer{Text: text, Sources: sources}
}

func fallbackAnswer(matches []models.ScoredMatch) models.Answer {
	if len(matches) == 0 {
		return models.Answer{Text: genericHelpMessage, Sources: []string{}}
	}
	sources := make([]string, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, m.Document.Source)
	}
	return models.Answer{
		Text:    matches[0].Document.Content + "\n\n" + followUpSentence,
		Sources: sources,
	}
}

// GenerateNewsletters produces one newsletter per topic. Each inference call
// gets its own deadline; a failed call degrades that topic to its canned
// fallback rather than failing the batch.
func (a *Assistant) GenerateNewsletters(ctx context.Context, topics []models.Topic) []models.Newsletter {
	newsletters := make([]models.Newsletter, 0, len(topics))
	for _, t := range topics {
		newsletters = append(newsletters, a.generateNewsletter(ctx, t))
	}
	return newsletters
}

func (a *Assistant) generateNewsletter(ctx context.Context, topic models.Topic) models.Newsletter {
	nctx, cancel := context.WithTimeout(ctx, a.newsletterTimeout)
	defer cancel()

	start := time.Now()
	raw, err := a.llm.Generate(nctx, BuildNewsletterPrompt(topic.Topic))
	inferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		a.logger.Printf("newsletter inference failed for %q, using fallback: %v", topic.Category, err)
		inferenceFallbacks.WithLabelValues("newsletter").Inc()
		return FallbackNewsletter(topic.Category)
	}
	return ParseNewsletter(raw, topic.Category)
}
