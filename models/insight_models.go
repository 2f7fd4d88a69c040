package models

import "time"

// InsightKind classifies what an insight is about.
type InsightKind string

const (
	InsightKindTrend          InsightKind = "trend"
	InsightKindAnomaly        InsightKind = "anomaly"
	InsightKindRecommendation InsightKind = "recommendation"
)

// InsightImpact is the coarse severity of an insight.
type InsightImpact string

const (
	ImpactHigh   InsightImpact = "high"
	ImpactMedium InsightImpact = "medium"
	ImpactLow    InsightImpact = "low"
)

// InsightSource names the record category an insight was derived from.
type InsightSource string

const (
	SourcePredictive InsightSource = "predictive"
	SourceAlert      InsightSource = "alert"
	SourceReport     InsightSource = "report"
)

// Insight is the unified display record for the dashboard feed. It is built
// fresh on every aggregation call and never persisted. The ID is derived
// from the source kind and record id, so re-reading the same underlying
// record always yields the same insight identity.
type Insight struct {
	ID          string        `json:"id"`
	Kind        InsightKind   `json:"kind"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Impact      InsightImpact `json:"impact"`
	Confidence  float64       `json:"confidence"`
	GeneratedAt time.Time     `json:"generated_at"`
	SourceKind  InsightSource `json:"source_kind"`
	SourceID    int64         `json:"source_id"`
}

// PredictiveModel is a stored prediction produced by an earlier analytics run.
type PredictiveModel struct {
	ID             int64     `json:"id"`
	PredictionType string    `json:"prediction_type"`
	PredictedValue float64   `json:"predicted_value"`
	ModelData      *string   `json:"model_data,omitempty"`
	GeneratedDate  time.Time `json:"generated_date"`
}

// Alert is a stored operational alert. Only unresolved alerts are eligible
// to become insights.
type Alert struct {
	ID            int64     `json:"id"`
	AlertType     string    `json:"alert_type"`
	AlertMessage  string    `json:"alert_message"`
	AlertData     *string   `json:"alert_data,omitempty"`
	TriggeredAt   time.Time `json:"triggered_at"`
	AlertResolved bool      `json:"alert_resolved"`
}

// Report is a stored analysis report.
type Report struct {
	ID            int64     `json:"id"`
	ReportType    string    `json:"report_type"`
	ReportTitle   string    `json:"report_title"`
	Description   *string   `json:"description,omitempty"`
	ReportData    *string   `json:"report_data,omitempty"`
	GeneratedDate time.Time `json:"generated_date"`
}
