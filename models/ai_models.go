package models

import "time"

// --- Historical statistics (forecast input) ---

// MonthlyTrend holds one calendar month of aggregated visit data.
type MonthlyTrend struct {
	Month      string  `json:"month"` // YYYY-MM
	Visits     int     `json:"visits"`
	Revenue    float64 `json:"revenue"`
	AvgRevenue float64 `json:"avg_revenue"`
	AvgRating  float64 `json:"avg_rating"`
}

// AttractionStats is one ranked entry in the top-attractions table.
type AttractionStats struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Visits   int     `json:"visits"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// HistoricalStats is the compact statistical summary fed to the AI
// forecasting call. Built fresh per request, never cached.
type HistoricalStats struct {
	TotalVisits    int               `json:"total_visits"`
	TotalRevenue   float64           `json:"total_revenue"`
	AvgRating      float64           `json:"avg_rating"`
	MonthlyTrends  []MonthlyTrend    `json:"monthly_trends"`
	TopAttractions []AttractionStats `json:"top_attractions"`
}

// --- Forecasting ---

// ForecastConfig carries the recognized forecast options.
type ForecastConfig struct {
	Period             string `json:"period"` // "month" or "quarter"
	ForecastHorizon    int    `json:"forecast_horizon"`
	IncludeSeasonality bool   `json:"include_seasonality"`
	Limit              int    `json:"limit"`
}

// ForecastMetrics are the forward-looking numbers returned by the AI
// backend. They are trusted as-is beyond type coercion.
type ForecastMetrics struct {
	NextMonthVisitors int     `json:"next_month_visitors"`
	NextMonthRevenue  float64 `json:"next_month_revenue"`
	QuarterlyRevenue  float64 `json:"quarterly_revenue"`
	SeasonalIndex     float64 `json:"seasonal_index"`
	AccuracyScore     float64 `json:"accuracy_score"`
	GrowthRate        float64 `json:"growth_rate"`
}

// ForecastInsights is the narrative portion of the AI forecast response.
type ForecastInsights struct {
	KeyPredictions []string `json:"key_predictions"`
	RiskFactors    []string `json:"risk_factors"`
	Opportunities  []string `json:"opportunities"`
}

// PredictiveAnalytics is the full parsed AI forecast response.
type PredictiveAnalytics struct {
	Metrics  ForecastMetrics  `json:"metrics"`
	Insights ForecastInsights `json:"insights"`
}

// ForecastModel is a display-ready derived model entry for analytics pages.
type ForecastModel struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	Accuracy    float64                `json:"accuracy"`
	Status      string                 `json:"status"`
	LastUpdated time.Time              `json:"last_updated"`
	Data        map[string]interface{} `json:"data"`
}

// ForecastResult bundles the metrics with the derived display models.
type ForecastResult struct {
	Metrics  ForecastMetrics  `json:"metrics"`
	Models   []ForecastModel  `json:"models"`
	Insights ForecastInsights `json:"insights"`
}

// --- Chat ---

// CategoryStats is the per-category breakdown used as chat grounding.
type CategoryStats struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	AvgRating  float64 `json:"avg_rating"`
	AvgPrice   float64 `json:"avg_price"`
}

// ChatContext is the snapshot of current platform state handed to the AI
// chat call so generated text stays consistent with stored data.
type ChatContext struct {
	TotalAttractions  int               `json:"total_attractions"`
	TotalVisits       int               `json:"total_visits"`
	Categories        []string          `json:"categories"`
	TopAttractions    []AttractionStats `json:"top_attractions"`
	CategoryBreakdown []CategoryStats   `json:"category_breakdown"`
	UserVisitCount    int               `json:"user_visit_count"`
}

// ChatRequest is the body of a chat turn.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the parsed AI chat reply.
type ChatResponse struct {
	Message      string   `json:"message"`
	Suggestions  []string `json:"suggestions"`
	DataInsights []string `json:"data_insights"`
	ActionItems  []string `json:"action_items"`
}
