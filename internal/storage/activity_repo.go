package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ActivityRepo stores the four activity log kinds. Logs are immutable once
// inserted; Delete is the only mutation.
type ActivityRepo struct {
	db DBTX
}

func NewActivityRepo(db DBTX) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) InsertDiet(ctx context.Context, in DietLog) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO diet_logs (
			user_key, food_name, meal_type,
			calories, protein, carbs, fat, fiber,
			occurred_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.UserKey, in.FoodName, nullString(in.MealType),
		in.Calories, in.Protein, in.Carbs, in.Fat, in.Fiber,
		in.OccurredAt.UTC(), in.CreatedAt.UTC())
	return lastInsertID(res, err, "diet")
}

func (r *ActivityRepo) InsertExercise(ctx context.Context, in ExerciseLog) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO exercise_logs (
			user_key, activity_name, activity_type,
			duration_minutes, calories_burned,
			occurred_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.UserKey, in.ActivityName, in.ActivityType,
		in.Minutes, in.CaloriesBurned,
		in.OccurredAt.UTC(), in.CreatedAt.UTC())
	return lastInsertID(res, err, "exercise")
}

func (r *ActivityRepo) InsertSleep(ctx context.Context, in SleepLog) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO sleep_logs (user_key, duration_hours, quality, occurred_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, in.UserKey, in.Hours, nullString(in.Quality), in.OccurredAt.UTC(), in.CreatedAt.UTC())
	return lastInsertID(res, err, "sleep")
}

func (r *ActivityRepo) InsertWork(ctx context.Context, in WorkLog) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO work_logs (
			user_key, duration_hours, intensity, pranked_boss, notes,
			occurred_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.UserKey, in.Hours, in.Intensity, boolToInt(in.PrankedBoss), nullString(in.Notes),
		in.OccurredAt.UTC(), in.CreatedAt.UTC())
	return lastInsertID(res, err, "work")
}

// Delete removes one log owned by userKey. It reports false when no such log exists.
func (r *ActivityRepo) Delete(ctx context.Context, kind LogKind, userKey string, id int64) (bool, error) {
	if !kind.IsValid() {
		return false, fmt.Errorf("invalid log kind: %q", kind)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+kind.table()+` WHERE id = ? AND user_key = ?`, id, userKey)
	if err != nil {
		return false, fmt.Errorf("%s log delete: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s log rows affected: %w", kind, err)
	}
	return n > 0, nil
}

// ListBetween returns every log of userKey with from <= occurred_at < to.
func (r *ActivityRepo) ListBetween(ctx context.Context, userKey string, from, to time.Time) (*DayLogs, error) {
	from, to = from.UTC(), to.UTC()
	var out DayLogs
	var err error
	if out.Diet, err = r.listDiet(ctx, userKey, from, to); err != nil {
		return nil, err
	}
	if out.Exercise, err = r.listExercise(ctx, userKey, from, to); err != nil {
		return nil, err
	}
	if out.Sleep, err = r.listSleep(ctx, userKey, from, to); err != nil {
		return nil, err
	}
	if out.Work, err = r.listWork(ctx, userKey, from, to); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ActivityRepo) listDiet(ctx context.Context, userKey string, from, to time.Time) ([]DietLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_key, food_name, meal_type, calories, protein, carbs, fat, fiber, occurred_at, created_at
		FROM diet_logs
		WHERE user_key = ? AND occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at ASC, id ASC
	`, userKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("diet log list: %w", err)
	}
	defer rows.Close()

	var out []DietLog
	for rows.Next() {
		var (
			l    DietLog
			meal sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.UserKey, &l.FoodName, &meal, &l.Calories, &l.Protein, &l.Carbs, &l.Fat, &l.Fiber, &l.OccurredAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("diet log scan: %w", err)
		}
		l.MealType = meal.String
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("diet log rows: %w", err)
	}
	return out, nil
}

func (r *ActivityRepo) listExercise(ctx context.Context, userKey string, from, to time.Time) ([]ExerciseLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_key, activity_name, activity_type, duration_minutes, calories_burned, occurred_at, created_at
		FROM exercise_logs
		WHERE user_key = ? AND occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at ASC, id ASC
	`, userKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("exercise log list: %w", err)
	}
	defer rows.Close()

	var out []ExerciseLog
	for rows.Next() {
		var l ExerciseLog
		if err := rows.Scan(&l.ID, &l.UserKey, &l.ActivityName, &l.ActivityType, &l.Minutes, &l.CaloriesBurned, &l.OccurredAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("exercise log scan: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise log rows: %w", err)
	}
	return out, nil
}

func (r *ActivityRepo) listSleep(ctx context.Context, userKey string, from, to time.Time) ([]SleepLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_key, duration_hours, quality, occurred_at, created_at
		FROM sleep_logs
		WHERE user_key = ? AND occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at ASC, id ASC
	`, userKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("sleep log list: %w", err)
	}
	defer rows.Close()

	var out []SleepLog
	for rows.Next() {
		var (
			l       SleepLog
			quality sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.UserKey, &l.Hours, &quality, &l.OccurredAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("sleep log scan: %w", err)
		}
		l.Quality = quality.String
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sleep log rows: %w", err)
	}
	return out, nil
}

func (r *ActivityRepo) listWork(ctx context.Context, userKey string, from, to time.Time) ([]WorkLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_key, duration_hours, intensity, pranked_boss, notes, occurred_at, created_at
		FROM work_logs
		WHERE user_key = ? AND occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at ASC, id ASC
	`, userKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("work log list: %w", err)
	}
	defer rows.Close()

	var out []WorkLog
	for rows.Next() {
		var (
			l     WorkLog
			prank int
			notes sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.UserKey, &l.Hours, &l.Intensity, &prank, &notes, &l.OccurredAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("work log scan: %w", err)
		}
		l.PrankedBoss = prank != 0
		l.Notes = notes.String
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("work log rows: %w", err)
	}
	return out, nil
}

func lastInsertID(res sql.Result, err error, kind string) (int64, error) {
	if err != nil {
		return 0, fmt.Errorf("%s log insert: %w", kind, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s log last insert id: %w", kind, err)
	}
	return id, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
