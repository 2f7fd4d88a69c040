package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"app/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIClient is the generative backend used for forecasting and chat. It is
// an opaque, potentially slow, potentially failing text generator; callers
// control only the shape of what is sent and expected back.
type AIClient interface {
	GeneratePredictiveAnalytics(ctx context.Context, stats *models.HistoricalStats, cfg models.ForecastConfig) (*models.PredictiveAnalytics, error)
	GenerateChatResponse(ctx context.Context, message string, chatCtx *models.ChatContext, history []models.ChatMessage) (*models.ChatResponse, error)
}

// GeminiClient implements AIClient against the Gemini API.
type GeminiClient struct {
	apiKey    string
	modelName string
}

// NewGeminiClient creates a GeminiClient for the given API key and model.
func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, modelName: modelName}
}

// GeneratePredictiveAnalytics sends the historical summary to Gemini and
// parses the returned forecast. Errors propagate to the caller; there is
// no numeric fallback path.
func (g *GeminiClient) GeneratePredictiveAnalytics(ctx context.Context, stats *models.HistoricalStats, cfg models.ForecastConfig) (*models.PredictiveAnalytics, error) {
	prompt, err := constructAnalyticsPrompt(stats, cfg)
	if err != nil {
		return nil, err
	}

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSON(text)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini analytics response: %s", text)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var parsed struct {
		Metrics struct {
			NextMonthVisitors float64 `json:"next_month_visitors"`
			NextMonthRevenue  float64 `json:"next_month_revenue"`
			QuarterlyRevenue  float64 `json:"quarterly_revenue"`
			SeasonalIndex     float64 `json:"seasonal_index"`
			AccuracyScore     float64 `json:"accuracy_score"`
			GrowthRate        float64 `json:"growth_rate"`
		} `json:"metrics"`
		KeyPredictions []string `json:"key_predictions"`
		RiskFactors    []string `json:"risk_factors"`
		Opportunities  []string `json:"opportunities"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		log.Printf("Error parsing Gemini analytics JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI forecast data")
	}

	return &models.PredictiveAnalytics{
		Metrics: models.ForecastMetrics{
			NextMonthVisitors: int(parsed.Metrics.NextMonthVisitors),
			NextMonthRevenue:  parsed.Metrics.NextMonthRevenue,
			QuarterlyRevenue:  parsed.Metrics.QuarterlyRevenue,
			SeasonalIndex:     parsed.Metrics.SeasonalIndex,
			AccuracyScore:     parsed.Metrics.AccuracyScore,
			GrowthRate:        parsed.Metrics.GrowthRate,
		},
		Insights: models.ForecastInsights{
			KeyPredictions: parsed.KeyPredictions,
			RiskFactors:    parsed.RiskFactors,
			Opportunities:  parsed.Opportunities,
		},
	}, nil
}

// GenerateChatResponse answers a free-form question grounded in the
// current platform snapshot and the user's recent chat turns.
func (g *GeminiClient) GenerateChatResponse(ctx context.Context, message string, chatCtx *models.ChatContext, history []models.ChatMessage) (*models.ChatResponse, error) {
	prompt, err := constructChatPrompt(message, chatCtx, history)
	if err != nil {
		return nil, err
	}

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSON(text)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini chat response: %s", text)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var resp models.ChatResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		log.Printf("Error parsing Gemini chat JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI chat data")
	}
	return &resp, nil
}

// generate runs one text-generation call against the configured model.
func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.modelName)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content received from AI")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text content received from AI")
	}
	return text, nil
}

// constructAnalyticsPrompt builds the forecasting prompt around the
// aggregated historical statistics.
func constructAnalyticsPrompt(stats *models.HistoricalStats, cfg models.ForecastConfig) (string, error) {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("failed to serialize stats: %w", err)
	}

	seasonality := "Ignore seasonal effects."
	if cfg.IncludeSeasonality {
		seasonality = "Account for seasonal visit patterns and include a seasonal index."
	}

	jsonFormat := `{"metrics":{"next_month_visitors":integer,"next_month_revenue":number,"quarterly_revenue":number,"seasonal_index":number,"accuracy_score":number,"growth_rate":number},"key_predictions":["string",...],"risk_factors":["string",...],"opportunities":["string",...]}`

	return fmt.Sprintf(`
        You are an expert tourism data analyst. Your task is to forecast visitor and revenue metrics for a tourism platform based on the aggregated historical statistics provided.

        **Forecast Configuration:**
        - Period granularity: %s
        - Forecast horizon: %d period(s)
        - Seasonality: %s
        - Today's Date: %s

        **Aggregated Historical Statistics (JSON):**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, cfg.Period, cfg.ForecastHorizon, seasonality, time.Now().Format("2006-01-02"), string(statsJSON), jsonFormat), nil
}

// constructChatPrompt builds the chat prompt with the grounding context
// and the user's recent history.
func constructChatPrompt(message string, chatCtx *models.ChatContext, history []models.ChatMessage) (string, error) {
	ctxJSON, err := json.Marshal(chatCtx)
	if err != nil {
		return "", fmt.Errorf("failed to serialize chat context: %w", err)
	}

	historyStr := ""
	for i := len(history) - 1; i >= 0; i-- {
		historyStr += fmt.Sprintf("User: %s\nAssistant: %s\n", history[i].Message, history[i].Response)
	}
	if historyStr == "" {
		historyStr = "No previous conversation."
	}

	jsonFormat := `{"message":"string","suggestions":["string",...],"data_insights":["string",...],"action_items":["string",...]}`

	return fmt.Sprintf(`
        You are a helpful assistant for a tourism management platform. Answer the user's question using only the platform snapshot below; do not invent numbers that contradict it.

        **Platform Snapshot (JSON):**
        %s

        **Recent Conversation:**
        %s

        **User Question:** "%s"

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, string(ctxJSON), historyStr, message, jsonFormat), nil
}

// extractJSON trims any stray text around the JSON object in a model
// response.
func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}
