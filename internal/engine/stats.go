package engine

import (
	"context"
	"math"
	"time"

	"github.com/dingonewen/oystraz/internal/storage"
)

// Today aggregates the user's logs for the current calendar day. It is
// read-only and does not take the user's lock.
func (s *Service) Today(ctx context.Context, user string) (DailyTotals, error) {
	from, to := s.dayWindow(s.now())
	logs, err := s.activity.ListBetween(ctx, user, from, to)
	if err != nil {
		return DailyTotals{}, err
	}
	return Aggregate(from, *logs), nil
}

// ListLogs returns the user's logs of the last days calendar days, today included.
func (s *Service) ListLogs(ctx context.Context, user string, days int) (*storage.DayLogs, error) {
	from, to := s.recentWindow(days)
	return s.activity.ListBetween(ctx, user, from, to)
}

// History returns the newest recompute audit rows first.
func (s *Service) History(ctx context.Context, user string, limit int) ([]storage.RecomputeRun, error) {
	return s.runs.ListByUser(ctx, user, limit)
}

type WorkStats struct {
	Days         int
	TotalHours   float64
	Sessions     int // work logs with hours > 0
	AvgIntensity float64
	Pranks       int
}

// WorkStats summarises the user's work logs of the last days calendar days.
func (s *Service) WorkStats(ctx context.Context, user string, days int) (WorkStats, error) {
	from, to := s.recentWindow(days)
	logs, err := s.activity.ListBetween(ctx, user, from, to)
	if err != nil {
		return WorkStats{}, err
	}

	stats := WorkStats{Days: max(days, 1)}
	var hours []float64
	intensity := 0
	for _, l := range logs.Work {
		if l.PrankedBoss {
			stats.Pranks++
		}
		if l.Hours <= 0 {
			continue
		}
		stats.Sessions++
		hours = append(hours, l.Hours)
		intensity += l.Intensity
	}
	stats.TotalHours = math.Round(sumSorted(hours)*10) / 10
	if stats.Sessions > 0 {
		stats.AvgIntensity = math.Round(float64(intensity)/float64(stats.Sessions)*10) / 10
	}
	return stats, nil
}

func (s *Service) recentWindow(days int) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	from, to := s.dayWindow(s.now())
	return from.AddDate(0, 0, -(days - 1)), to
}
