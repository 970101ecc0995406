package storage

import (
	"context"
	"fmt"
)

type RecomputeRepo struct {
	db DBTX
}

func NewRecomputeRepo(db DBTX) *RecomputeRepo {
	return &RecomputeRepo{db: db}
}

func (r *RecomputeRepo) Insert(ctx context.Context, run RecomputeRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recompute_runs (
			id, user_key, reason, day,
			stamina, energy, nutrition, mood, stress,
			level, experience, experience_gain, emotional_state,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.UserKey, run.Reason, run.Day,
		run.Stamina, run.Energy, run.Nutrition, run.Mood, run.Stress,
		run.Level, run.Experience, run.ExperienceGain, run.EmotionalState,
		run.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("recompute run insert: %w", err)
	}
	return nil
}

// ListByUser returns the newest runs first.
func (r *RecomputeRepo) ListByUser(ctx context.Context, userKey string, limit int) ([]RecomputeRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_key, reason, day,
			stamina, energy, nutrition, mood, stress,
			level, experience, experience_gain, emotional_state,
			created_at
		FROM recompute_runs
		WHERE user_key = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, userKey, limit)
	if err != nil {
		return nil, fmt.Errorf("recompute run list: %w", err)
	}
	defer rows.Close()

	var out []RecomputeRun
	for rows.Next() {
		var run RecomputeRun
		if err := rows.Scan(
			&run.ID, &run.UserKey, &run.Reason, &run.Day,
			&run.Stamina, &run.Energy, &run.Nutrition, &run.Mood, &run.Stress,
			&run.Level, &run.Experience, &run.ExperienceGain, &run.EmotionalState,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("recompute run scan: %w", err)
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recompute run rows: %w", err)
	}
	return out, nil
}
