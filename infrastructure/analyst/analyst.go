// Package analyst provides AI-powered news analysis.
package analyst

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/dealdeskhq/dealdesk/infrastructure/provider"
	"github.com/dealdeskhq/dealdesk/internal/database"
	"github.com/google/uuid"
)

const systemPrompt = `You are an analyst for a private-markets CRM. Given a news article, respond with a single JSON object and nothing else:
{
  "summary": "two or three sentence summary",
  "sentiment": "positive" | "neutral" | "negative",
  "entities": [
    {"name": "entity name as written", "type": "gp|lp|fund|portfolio_company|service_provider|contact", "auto_create": true|false}
  ]
}
Set auto_create only for entities central to the story. Use an empty entities array when nothing is identifiable.`

// maxArticleChars bounds how much article text goes into one prompt.
const maxArticleChars = 12000

// ErrEmptyArticle indicates the news record has no analyzable text.
var ErrEmptyArticle = errors.New("news record has no text")

// NewsAnalyst runs one AI generation pass over a news record and persists
// the result as an Output.
type NewsAnalyst struct {
	generator   provider.TextGenerator
	newsStore   news.NewsStore
	outputs     news.OutputStore
	maxTokens   int
	temperature float64
	log         *slog.Logger
}

// NewNewsAnalyst creates a NewsAnalyst.
func NewNewsAnalyst(generator provider.TextGenerator, newsStore news.NewsStore, outputs news.OutputStore, log *slog.Logger) *NewsAnalyst {
	return &NewsAnalyst{
		generator:   generator,
		newsStore:   newsStore,
		outputs:     outputs,
		maxTokens:   1024,
		temperature: 0.2,
		log:         log,
	}
}

// WithMaxTokens sets the generation token limit.
func (a *NewsAnalyst) WithMaxTokens(n int) *NewsAnalyst {
	a.maxTokens = n
	return a
}

// WithTemperature sets the sampling temperature.
func (a *NewsAnalyst) WithTemperature(t float64) *NewsAnalyst {
	a.temperature = t
	return a
}

// Analyze loads a news record, generates summary, sentiment, and entity
// candidates, and stores them as an Output. It returns the stored output's
// id for the linking step.
func (a *NewsAnalyst) Analyze(ctx context.Context, orgID, newsID uuid.UUID) (uuid.UUID, error) {
	record, err := a.newsStore.FindOne(ctx, store.WithID(newsID), store.WithOrgID(orgID))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return uuid.Nil, news.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("load news: %w", err)
	}

	text := record.Text()
	if strings.TrimSpace(text) == "" {
		return uuid.Nil, ErrEmptyArticle
	}
	if len(text) > maxArticleChars {
		text = text[:maxArticleChars]
	}

	req := provider.NewChatCompletionRequest(
		provider.SystemMessage(systemPrompt),
		provider.UserMessage(buildArticlePrompt(record, text)),
	).WithMaxTokens(a.maxTokens).WithTemperature(a.temperature)

	resp, err := a.generator.ChatCompletion(ctx, req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate analysis: %w", err)
	}

	payload, err := parseAnalysis(resp.Content())
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse analysis: %w", err)
	}

	model := resp.Model()
	if model == "" {
		model = a.generator.Model()
	}

	output := news.NewOutput(newsID, orgID, payload.Summary, payload.Sentiment, payload.Entities, model)
	saved, err := a.outputs.Save(ctx, output)
	if err != nil {
		return uuid.Nil, fmt.Errorf("save analysis output: %w", err)
	}

	a.log.DebugContext(ctx, "news analyzed",
		"news_id", newsID,
		"output_id", saved.ID(),
		"candidates", len(payload.Entities),
	)

	return saved.ID(), nil
}

func buildArticlePrompt(record news.News, text string) string {
	var b strings.Builder
	if record.Headline() != "" {
		b.WriteString("Headline: ")
		b.WriteString(record.Headline())
		b.WriteString("\n")
	}
	if record.SourceName() != "" {
		b.WriteString("Source: ")
		b.WriteString(record.SourceName())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(text)
	return b.String()
}

// analysisPayload is the JSON shape the model is asked to produce.
type analysisPayload struct {
	Summary   string           `json:"summary"`
	Sentiment string           `json:"sentiment"`
	Entities  []news.Candidate `json:"entities"`
}

// parseAnalysis extracts the analysis JSON from model output, tolerating
// markdown code fences around the object.
func parseAnalysis(content string) (analysisPayload, error) {
	cleaned := stripCodeFence(content)

	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return analysisPayload{}, fmt.Errorf("unmarshal model output: %w", err)
	}
	return payload, nil
}

func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop a language tag such as "json" on the fence line.
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
