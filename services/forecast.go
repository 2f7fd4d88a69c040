package services

import (
	"context"
	"fmt"
	"time"

	"app/models"
)

const (
	visitorDisplayConfidence   = 92.0
	quarterlyDisplayConfidence = 88.0
	revenueAccuracyDiscount    = 0.95
	trendDisplayAccuracy       = 91.0
)

// ForecastService shapes the AI forecast into display-ready model entries.
// The numeric forecasting itself is delegated entirely to the AI backend;
// this service only assembles input and derives presentation entries.
type ForecastService struct {
	ai AIClient
}

// NewForecastService creates a ForecastService over the given AI client.
func NewForecastService(ai AIClient) *ForecastService {
	return &ForecastService{ai: ai}
}

// GenerateForecast calls the AI backend with the historical summary and
// derives the three named forecast models. An AI failure propagates
// unchanged: no partial result and no numeric fallback is produced.
func (s *ForecastService) GenerateForecast(ctx context.Context, stats *models.HistoricalStats, cfg models.ForecastConfig) (*models.ForecastResult, error) {
	analytics, err := s.ai.GeneratePredictiveAnalytics(ctx, stats, cfg)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	metrics := analytics.Metrics

	forecastModels := []models.ForecastModel{
		{
			ID:          "visitor-forecast",
			Name:        "Visitor Forecast",
			Type:        "visitors",
			Description: fmt.Sprintf("Projects %d visitors next month.", metrics.NextMonthVisitors),
			Accuracy:    metrics.AccuracyScore,
			Status:      "active",
			LastUpdated: now,
			Data: map[string]interface{}{
				"next_month_visitors":  metrics.NextMonthVisitors,
				"confidence":           visitorDisplayConfidence,
				"quarterly_revenue":    metrics.QuarterlyRevenue,
				"quarterly_confidence": quarterlyDisplayConfidence,
				"key_predictions":      topN(analytics.Insights.KeyPredictions, 2),
			},
		},
		{
			ID:          "revenue-prediction",
			Name:        "Revenue Prediction",
			Type:        "revenue",
			Description: fmt.Sprintf("Projects %.2f revenue next month at %.1f%% growth.", metrics.NextMonthRevenue, metrics.GrowthRate),
			Accuracy:    metrics.AccuracyScore * revenueAccuracyDiscount,
			Status:      "active",
			LastUpdated: now,
			Data: map[string]interface{}{
				"next_month_revenue": metrics.NextMonthRevenue,
				"growth_rate":        metrics.GrowthRate,
			},
		},
		{
			ID:          "trend-analysis",
			Name:        "Trend Analysis",
			Type:        "trends",
			Description: "Opportunities and risks derived from recent visit history.",
			Accuracy:    trendDisplayAccuracy,
			Status:      "active",
			LastUpdated: now,
			Data: map[string]interface{}{
				"opportunities": topN(analytics.Insights.Opportunities, 2),
				"risk_factors":  topN(analytics.Insights.RiskFactors, 2),
				"insights": []string{
					fmt.Sprintf("Analyzed %d recent visits.", stats.TotalVisits),
					fmt.Sprintf("Covered %d months of history.", len(stats.MonthlyTrends)),
				},
			},
		},
	}

	if cfg.Limit > 0 && len(forecastModels) > cfg.Limit {
		forecastModels = forecastModels[:cfg.Limit]
	}

	return &models.ForecastResult{
		Metrics:  metrics,
		Models:   forecastModels,
		Insights: analytics.Insights,
	}, nil
}

// topN returns at most n leading entries of a narrative list.
func topN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
