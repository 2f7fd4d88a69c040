package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"app/models"
	"app/utils"
)

const (
	// maxFeedSize bounds the aggregated insight feed.
	maxFeedSize = 10
	// sourceFetchLimit bounds each per-category read.
	sourceFetchLimit = 10

	defaultPredictiveConfidence = 0.8
	alertConfidence             = 0.95
	defaultReportConfidence     = 0.7
)

// InsightStore is the slice of storage the insight pipeline reads from.
type InsightStore interface {
	GetPredictiveModels(ctx context.Context, limit int) ([]models.PredictiveModel, error)
	GetUnresolvedAlerts(ctx context.Context, limit int) ([]models.Alert, error)
	GetReports(ctx context.Context, limit int) ([]models.Report, error)
}

// InsightService turns heterogeneous stored records into the unified,
// recency-ranked insight feed shown on dashboards.
type InsightService struct {
	store InsightStore
}

// NewInsightService creates an InsightService over the given store.
func NewInsightService(store InsightStore) *InsightService {
	return &InsightService{store: store}
}

// DashboardInsights fetches all three source categories concurrently,
// normalizes them, and returns the ranked feed. It never returns an error:
// a failed source read is logged and contributes zero records, so the feed
// degrades instead of failing when one source is unavailable.
func (s *InsightService) DashboardInsights(ctx context.Context) []models.Insight {
	var (
		wg         sync.WaitGroup
		predictive []models.PredictiveModel
		alerts     []models.Alert
		reports    []models.Report
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		records, err := s.store.GetPredictiveModels(ctx, sourceFetchLimit)
		if err != nil {
			log.Printf("Insight source unavailable (predictive models): %v", err)
			return
		}
		predictive = records
	}()
	go func() {
		defer wg.Done()
		records, err := s.store.GetUnresolvedAlerts(ctx, sourceFetchLimit)
		if err != nil {
			log.Printf("Insight source unavailable (alerts): %v", err)
			return
		}
		alerts = records
	}()
	go func() {
		defer wg.Done()
		records, err := s.store.GetReports(ctx, sourceFetchLimit)
		if err != nil {
			log.Printf("Insight source unavailable (reports): %v", err)
			return
		}
		reports = records
	}()
	wg.Wait()

	insights := make([]models.Insight, 0, len(predictive)+len(alerts)+len(reports))
	for _, m := range predictive {
		insights = append(insights, NormalizePredictiveModel(m))
	}
	for _, a := range alerts {
		if insight, ok := NormalizeAlert(a); ok {
			insights = append(insights, insight)
		}
	}
	for _, r := range reports {
		if insight, ok := NormalizeReport(r); ok {
			insights = append(insights, insight)
		}
	}

	return AggregateInsights(insights)
}

// AggregateInsights orders the combined insights newest first and caps the
// feed. The sort is stable so records with equal timestamps keep their
// original relative order. Freshness deliberately dominates impact and
// confidence: an old high-impact alert can be pushed out by newer
// low-impact trend data.
func AggregateInsights(insights []models.Insight) []models.Insight {
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].GeneratedAt.After(insights[j].GeneratedAt)
	})
	if len(insights) > maxFeedSize {
		insights = insights[:maxFeedSize]
	}
	return insights
}

// NormalizePredictiveModel maps a stored prediction to a trend insight.
func NormalizePredictiveModel(m models.PredictiveModel) models.Insight {
	data := utils.SafeParseJSON(m.ModelData)

	confidence := defaultPredictiveConfidence
	accuracy, hasAccuracy := utils.FloatField(data, "accuracy")
	if hasAccuracy {
		confidence = accuracy
	}

	description := fmt.Sprintf("Predicted value of %s based on recent historical data.", formatValue(m.PredictedValue))
	if hasAccuracy {
		description = fmt.Sprintf("Predicted value of %s with %d%% model accuracy.",
			formatValue(m.PredictedValue), int(math.Round(accuracy*100)))
	}

	// A value sitting exactly on the upper threshold stays in the lower
	// band; 10000 is medium, not high. 5000 itself still counts as medium.
	impact := models.ImpactLow
	switch {
	case m.PredictedValue > 10000:
		impact = models.ImpactHigh
	case m.PredictedValue >= 5000:
		impact = models.ImpactMedium
	}

	return models.Insight{
		ID:          fmt.Sprintf("predictive-%d", m.ID),
		Kind:        models.InsightKindTrend,
		Title:       utils.SnakeToTitle(m.PredictionType) + " Forecast",
		Description: description,
		Impact:      impact,
		Confidence:  confidence,
		GeneratedAt: m.GeneratedDate,
		SourceKind:  models.SourcePredictive,
		SourceID:    m.ID,
	}
}

// NormalizeAlert maps an alert to an anomaly insight. Resolved alerts are
// excluded; a closed alert is no longer actionable.
func NormalizeAlert(a models.Alert) (models.Insight, bool) {
	if a.AlertResolved {
		return models.Insight{}, false
	}

	// The alert payload is not displayed; the parse runs only so a
	// malformed one is warned about instead of surfacing later.
	_ = utils.SafeParseJSON(a.AlertData)

	impact := models.ImpactLow
	switch {
	case utils.ContainsAny(a.AlertType, "capacity", "critical"):
		impact = models.ImpactHigh
	case utils.ContainsAny(a.AlertType, "warning", "anomaly"):
		impact = models.ImpactMedium
	}

	return models.Insight{
		ID:          fmt.Sprintf("alert-%d", a.ID),
		Kind:        models.InsightKindAnomaly,
		Title:       utils.SnakeToTitle(a.AlertType),
		Description: a.AlertMessage,
		Impact:      impact,
		Confidence:  alertConfidence,
		GeneratedAt: a.TriggeredAt,
		SourceKind:  models.SourceAlert,
		SourceID:    a.ID,
	}, true
}

// NormalizeReport maps a report to a recommendation insight. Only reports
// with recommendation or insight semantics are eligible.
func NormalizeReport(r models.Report) (models.Insight, bool) {
	if !reportEligible(r) {
		return models.Insight{}, false
	}

	data := utils.SafeParseJSON(r.ReportData)

	title := r.ReportTitle
	if title == "" {
		title = "Analysis Report"
	}

	description := ""
	if r.Description != nil {
		description = *r.Description
	}
	if description == "" {
		if rec, ok := utils.StringField(data, "recommendation"); ok {
			description = rec
		}
	}
	if description == "" {
		description = "Generated analysis report with actionable findings."
	}

	confidence := defaultReportConfidence
	if c, ok := utils.FloatField(data, "confidence"); ok {
		confidence = c
	}

	impact := models.ImpactLow
	switch {
	case confidence > 0.8:
		impact = models.ImpactHigh
	case confidence > 0.6:
		impact = models.ImpactMedium
	}

	return models.Insight{
		ID:          fmt.Sprintf("report-%d", r.ID),
		Kind:        models.InsightKindRecommendation,
		Title:       title,
		Description: description,
		Impact:      impact,
		Confidence:  confidence,
		GeneratedAt: r.GeneratedDate,
		SourceKind:  models.SourceReport,
		SourceID:    r.ID,
	}, true
}

func reportEligible(r models.Report) bool {
	if r.ReportType == "recommendation" || r.ReportType == "insight" {
		return true
	}
	if utils.ContainsAny(r.ReportTitle, "recommendation") {
		return true
	}
	if r.Description != nil && utils.ContainsAny(*r.Description, "recommendation") {
		return true
	}
	return false
}

// formatValue renders a predicted value without trailing decimal noise.
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
