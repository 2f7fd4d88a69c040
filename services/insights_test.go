package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInsightStore struct {
	predictive    []models.PredictiveModel
	alerts        []models.Alert
	reports       []models.Report
	predictiveErr error
	alertsErr     error
	reportsErr    error
}

func (f *fakeInsightStore) GetPredictiveModels(_ context.Context, _ int) ([]models.PredictiveModel, error) {
	return f.predictive, f.predictiveErr
}

func (f *fakeInsightStore) GetUnresolvedAlerts(_ context.Context, _ int) ([]models.Alert, error) {
	return f.alerts, f.alertsErr
}

func (f *fakeInsightStore) GetReports(_ context.Context, _ int) ([]models.Report, error) {
	return f.reports, f.reportsErr
}

func strPtr(s string) *string { return &s }

func TestNormalizePredictiveModel(t *testing.T) {
	generated := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	m := models.PredictiveModel{
		ID:             5,
		PredictionType: "monthly_visitors",
		PredictedValue: 12000,
		ModelData:      strPtr(`{"accuracy": 0.9}`),
		GeneratedDate:  generated,
	}

	insight := NormalizePredictiveModel(m)

	assert.Equal(t, "predictive-5", insight.ID)
	assert.Equal(t, models.InsightKindTrend, insight.Kind)
	assert.Equal(t, "Monthly Visitors Forecast", insight.Title)
	assert.Contains(t, insight.Description, "12000")
	assert.Contains(t, insight.Description, "90%")
	assert.Equal(t, models.ImpactHigh, insight.Impact)
	assert.Equal(t, 0.9, insight.Confidence)
	assert.Equal(t, generated, insight.GeneratedAt)
	assert.Equal(t, models.SourcePredictive, insight.SourceKind)
	assert.Equal(t, int64(5), insight.SourceID)
}

func TestNormalizePredictiveModelDefaults(t *testing.T) {
	m := models.PredictiveModel{ID: 1, PredictionType: "revenue", PredictedValue: 300}

	insight := NormalizePredictiveModel(m)

	assert.Equal(t, 0.8, insight.Confidence)
	assert.Contains(t, insight.Description, "based on recent historical data")
	assert.Equal(t, models.ImpactLow, insight.Impact)
}

func TestNormalizePredictiveModelMalformedData(t *testing.T) {
	m := models.PredictiveModel{ID: 2, PredictionType: "weekly_revenue", PredictedValue: 6000, ModelData: strPtr("{broken")}

	insight := NormalizePredictiveModel(m)

	// malformed payload falls back to defaults, never fails
	assert.Equal(t, 0.8, insight.Confidence)
	assert.Equal(t, models.ImpactMedium, insight.Impact)
}

func TestPredictiveImpactBoundaries(t *testing.T) {
	cases := []struct {
		value  float64
		impact models.InsightImpact
	}{
		{10001, models.ImpactHigh},
		{10000, models.ImpactMedium}, // exactly on the high threshold
		{5000, models.ImpactMedium},  // exactly on the medium threshold
		{4999, models.ImpactLow},
		{0, models.ImpactLow},
	}
	for _, tc := range cases {
		insight := NormalizePredictiveModel(models.PredictiveModel{ID: 1, PredictionType: "x", PredictedValue: tc.value})
		assert.Equal(t, tc.impact, insight.Impact, "value %v", tc.value)
	}
}

func TestNormalizeAlert(t *testing.T) {
	triggered := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	a := models.Alert{
		ID:           3,
		AlertType:    "capacity_warning",
		AlertMessage: "Lot full",
		TriggeredAt:  triggered,
	}

	insight, ok := NormalizeAlert(a)
	require.True(t, ok)

	assert.Equal(t, "alert-3", insight.ID)
	assert.Equal(t, models.InsightKindAnomaly, insight.Kind)
	assert.Equal(t, "Capacity Warning", insight.Title)
	assert.Equal(t, "Lot full", insight.Description)
	assert.Equal(t, models.ImpactHigh, insight.Impact)
	assert.Equal(t, 0.95, insight.Confidence)
	assert.Equal(t, models.SourceAlert, insight.SourceKind)
}

func TestNormalizeAlertImpactRules(t *testing.T) {
	cases := []struct {
		alertType string
		impact    models.InsightImpact
	}{
		{"critical_outage", models.ImpactHigh},
		{"capacity_limit", models.ImpactHigh},
		{"weather_warning", models.ImpactMedium},
		{"traffic_anomaly", models.ImpactMedium},
		{"info_notice", models.ImpactLow},
	}
	for _, tc := range cases {
		insight, ok := NormalizeAlert(models.Alert{ID: 1, AlertType: tc.alertType, AlertMessage: "m"})
		require.True(t, ok)
		assert.Equal(t, tc.impact, insight.Impact, "type %s", tc.alertType)
	}
}

func TestNormalizeAlertMalformedData(t *testing.T) {
	a := models.Alert{ID: 4, AlertType: "capacity_warning", AlertMessage: "Lot full", AlertData: strPtr("{broken")}

	// a malformed payload never blocks normalization of the alert
	insight, ok := NormalizeAlert(a)
	require.True(t, ok)
	assert.Equal(t, "alert-4", insight.ID)
	assert.Equal(t, "Lot full", insight.Description)
	assert.Equal(t, 0.95, insight.Confidence)
}

func TestNormalizeAlertResolvedExcluded(t *testing.T) {
	a := models.Alert{ID: 9, AlertType: "capacity_warning", AlertMessage: "full", AlertResolved: true}

	// the filter is idempotent: a resolved alert never yields an insight
	for i := 0; i < 3; i++ {
		_, ok := NormalizeAlert(a)
		assert.False(t, ok)
	}
}

func TestNormalizeReport(t *testing.T) {
	generated := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	r := models.Report{
		ID:            7,
		ReportType:    "recommendation",
		ReportTitle:   "Boost weekend capacity",
		Description:   strPtr("Add staff on Saturdays"),
		ReportData:    strPtr(`{"confidence": 0.85}`),
		GeneratedDate: generated,
	}

	insight, ok := NormalizeReport(r)
	require.True(t, ok)

	assert.Equal(t, "report-7", insight.ID)
	assert.Equal(t, models.InsightKindRecommendation, insight.Kind)
	assert.Equal(t, "Boost weekend capacity", insight.Title)
	assert.Equal(t, "Add staff on Saturdays", insight.Description)
	assert.Equal(t, 0.85, insight.Confidence)
	assert.Equal(t, models.ImpactHigh, insight.Impact)
}

func TestNormalizeReportFallbacks(t *testing.T) {
	r := models.Report{
		ID:         8,
		ReportType: "insight",
		ReportData: strPtr(`{"recommendation": "promote off-season tours"}`),
	}

	insight, ok := NormalizeReport(r)
	require.True(t, ok)

	assert.Equal(t, "Analysis Report", insight.Title)
	assert.Equal(t, "promote off-season tours", insight.Description)
	assert.Equal(t, 0.7, insight.Confidence)
	assert.Equal(t, models.ImpactMedium, insight.Impact)
}

func TestNormalizeReportEligibility(t *testing.T) {
	// a booking report with no recommendation-like text is excluded entirely
	_, ok := NormalizeReport(models.Report{ID: 1, ReportType: "booking", ReportTitle: "Q2 bookings"})
	assert.False(t, ok)

	// recommendation wording in the title makes it eligible
	_, ok = NormalizeReport(models.Report{ID: 2, ReportType: "booking", ReportTitle: "Pricing Recommendation"})
	assert.True(t, ok)

	// or in the description, case-insensitively
	_, ok = NormalizeReport(models.Report{ID: 3, ReportType: "booking", Description: strPtr("Our RECOMMENDATION is to expand")})
	assert.True(t, ok)
}

func TestNormalizeDeterministic(t *testing.T) {
	m := models.PredictiveModel{ID: 4, PredictionType: "monthly_visitors", PredictedValue: 7000, ModelData: strPtr(`{"accuracy": 0.7}`)}

	first := NormalizePredictiveModel(m)
	second := NormalizePredictiveModel(m)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Kind, second.Kind)
	assert.Equal(t, first.Impact, second.Impact)
	assert.Equal(t, first, second)
}

func TestAggregateInsightsOrderingAndCap(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	insights := make([]models.Insight, 0, 15)
	for i := 0; i < 15; i++ {
		insights = append(insights, models.Insight{
			ID:          fmt.Sprintf("predictive-%d", i),
			GeneratedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	feed := AggregateInsights(insights)

	require.Len(t, feed, 10)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].GeneratedAt.After(feed[i-1].GeneratedAt), "feed not sorted at %d", i)
	}
	assert.Equal(t, "predictive-14", feed[0].ID)
}

func TestAggregateInsightsStableTies(t *testing.T) {
	ts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	insights := []models.Insight{
		{ID: "alert-1", GeneratedAt: ts},
		{ID: "alert-2", GeneratedAt: ts},
		{ID: "alert-3", GeneratedAt: ts},
	}

	feed := AggregateInsights(insights)

	require.Len(t, feed, 3)
	assert.Equal(t, "alert-1", feed[0].ID)
	assert.Equal(t, "alert-2", feed[1].ID)
	assert.Equal(t, "alert-3", feed[2].ID)
}

func TestDashboardInsightsEndToEnd(t *testing.T) {
	alertTime := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	predTime := time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC)
	store := &fakeInsightStore{
		alerts: []models.Alert{
			{ID: 1, AlertType: "capacity_warning", AlertMessage: "Lot full", TriggeredAt: alertTime},
		},
		predictive: []models.PredictiveModel{
			{ID: 1, PredictionType: "monthly_visitors", PredictedValue: 12000, ModelData: strPtr(`{"accuracy": 0.9}`), GeneratedDate: predTime},
		},
	}

	feed := NewInsightService(store).DashboardInsights(context.Background())

	require.Len(t, feed, 2)

	alert := feed[0]
	assert.Equal(t, models.InsightKindAnomaly, alert.Kind)
	assert.Equal(t, models.ImpactHigh, alert.Impact)
	assert.Equal(t, 0.95, alert.Confidence)

	pred := feed[1]
	assert.Equal(t, "Monthly Visitors Forecast", pred.Title)
	assert.Equal(t, models.ImpactHigh, pred.Impact)
	assert.Equal(t, 0.9, pred.Confidence)
}

func TestDashboardInsightsSourceFailureDegrades(t *testing.T) {
	ts := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	store := &fakeInsightStore{
		predictiveErr: errors.New("connection refused"),
		reportsErr:    errors.New("timeout"),
		alerts: []models.Alert{
			{ID: 1, AlertType: "traffic_anomaly", AlertMessage: "spike", TriggeredAt: ts},
		},
	}

	feed := NewInsightService(store).DashboardInsights(context.Background())

	// failed sources contribute zero records; the survivor still shows up
	require.Len(t, feed, 1)
	assert.Equal(t, "alert-1", feed[0].ID)
}

func TestDashboardInsightsAllSourcesDown(t *testing.T) {
	store := &fakeInsightStore{
		predictiveErr: errors.New("down"),
		alertsErr:     errors.New("down"),
		reportsErr:    errors.New("down"),
	}

	feed := NewInsightService(store).DashboardInsights(context.Background())
	assert.Empty(t, feed)
}
