package services

import (
	"context"
	"fmt"

	"app/models"

	"golang.org/x/sync/errgroup"
)

const (
	// recentVisitWindow bounds the visit sample used for stats.
	recentVisitWindow = 100
	// topAttractionWindow bounds the ranking query before truncation.
	topAttractionWindow = 20
	// trendMonths bounds the monthly rollup.
	trendMonths = 6
)

// StatsStore is the slice of storage the stats builder reads from.
type StatsStore interface {
	GetRecentVisits(ctx context.Context, limit int) ([]models.Visit, error)
	GetTopAttractions(ctx context.Context, limit int) ([]models.AttractionStats, error)
	GetMonthlyTrends(ctx context.Context, months int) ([]models.MonthlyTrend, error)
}

// StatsService aggregates raw visit and attraction history into the
// compact summary fed to the AI forecasting call.
type StatsService struct {
	store StatsStore
}

// NewStatsService creates a StatsService over the given store.
func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

// BuildHistoricalStats issues the three independent history queries
// concurrently and joins them into a summary. Unlike the insight sources,
// a failed query here propagates: partial stats would silently skew the
// forecast prompt.
func (s *StatsService) BuildHistoricalStats(ctx context.Context, topLimit int) (*models.HistoricalStats, error) {
	var (
		visits         []models.Visit
		topAttractions []models.AttractionStats
		trends         []models.MonthlyTrend
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visits, err = s.store.GetRecentVisits(gctx, recentVisitWindow)
		return err
	})
	g.Go(func() error {
		var err error
		topAttractions, err = s.store.GetTopAttractions(gctx, topAttractionWindow)
		return err
	})
	g.Go(func() error {
		var err error
		trends, err = s.store.GetMonthlyTrends(gctx, trendMonths)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build historical stats: %w", err)
	}

	stats := &models.HistoricalStats{
		TotalVisits:    len(visits),
		MonthlyTrends:  trends,
		TopAttractions: topAttractions,
	}
	if topLimit > 0 && len(stats.TopAttractions) > topLimit {
		stats.TopAttractions = stats.TopAttractions[:topLimit]
	}

	var ratingSum float64
	var rated int
	for _, v := range visits {
		stats.TotalRevenue += v.AmountPaid
		if v.Rating != nil {
			ratingSum += *v.Rating
			rated++
		}
	}
	// Guard the zero-visit case: an average over nothing is 0, never NaN.
	if rated > 0 {
		stats.AvgRating = ratingSum / float64(rated)
	}

	return stats, nil
}
