package storage

import (
	"context"
	"fmt"

	"app/models"
)

// GetPredictiveModels returns the most recent stored predictions.
func (s *Store) GetPredictiveModels(ctx context.Context, limit int) ([]models.PredictiveModel, error) {
	query := `
		SELECT id, prediction_type, predicted_value, model_data, generated_date
		FROM predictive_models
		ORDER BY generated_date DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictive models: %w", err)
	}
	defer rows.Close()

	records := make([]models.PredictiveModel, 0)
	for rows.Next() {
		var m models.PredictiveModel
		if err := rows.Scan(&m.ID, &m.PredictionType, &m.PredictedValue, &m.ModelData, &m.GeneratedDate); err != nil {
			return nil, fmt.Errorf("failed to scan predictive model: %w", err)
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

// GetUnresolvedAlerts returns the most recent alerts that are still open.
// Resolved alerts are filtered at the query level; they are no longer
// actionable and never become insights.
func (s *Store) GetUnresolvedAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	query := `
		SELECT id, alert_type, alert_message, alert_data, triggered_at, alert_resolved
		FROM alerts
		WHERE alert_resolved = FALSE
		ORDER BY triggered_at DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	records := make([]models.Alert, 0)
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(&a.ID, &a.AlertType, &a.AlertMessage, &a.AlertData, &a.TriggeredAt, &a.AlertResolved); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetReports returns the most recent stored reports.
func (s *Store) GetReports(ctx context.Context, limit int) ([]models.Report, error) {
	query := `
		SELECT id, report_type, report_title, description, report_data, generated_date
		FROM reports
		ORDER BY generated_date DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	records := make([]models.Report, 0)
	for rows.Next() {
		var r models.Report
		if err := rows.Scan(&r.ID, &r.ReportType, &r.ReportTitle, &r.Description, &r.ReportData, &r.GeneratedDate); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
