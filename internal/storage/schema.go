package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS characters (
			user_key TEXT PRIMARY KEY,

			stamina REAL NOT NULL,
			energy REAL NOT NULL,
			nutrition REAL NOT NULL,
			mood REAL NOT NULL,
			stress REAL NOT NULL,

			level INTEGER DEFAULT 1,
			experience INTEGER DEFAULT 0,
			emotional_state TEXT DEFAULT 'normal',
			body_type TEXT DEFAULT 'normal',

			anchor_day TEXT NOT NULL DEFAULT '',
			anchor_level INTEGER DEFAULT 1,
			anchor_experience INTEGER DEFAULT 0,

			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS diet_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_key TEXT NOT NULL,
			food_name TEXT NOT NULL,
			meal_type TEXT,
			calories REAL DEFAULT 0,
			protein REAL DEFAULT 0,
			carbs REAL DEFAULT 0,
			fat REAL DEFAULT 0,
			fiber REAL DEFAULT 0,
			occurred_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(user_key) REFERENCES characters(user_key)
		);`,
		`CREATE TABLE IF NOT EXISTS exercise_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_key TEXT NOT NULL,
			activity_name TEXT NOT NULL,
			activity_type TEXT NOT NULL,
			duration_minutes REAL NOT NULL,
			calories_burned REAL DEFAULT 0,
			occurred_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(user_key) REFERENCES characters(user_key)
		);`,
		`CREATE TABLE IF NOT EXISTS sleep_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_key TEXT NOT NULL,
			duration_hours REAL NOT NULL,
			quality TEXT,
			occurred_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(user_key) REFERENCES characters(user_key)
		);`,
		`CREATE TABLE IF NOT EXISTS work_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_key TEXT NOT NULL,
			duration_hours REAL NOT NULL,
			intensity INTEGER NOT NULL,
			pranked_boss INTEGER DEFAULT 0,
			notes TEXT,
			occurred_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(user_key) REFERENCES characters(user_key)
		);`,
		// One row per recompute: auditing what each mutation did to the character.
		`CREATE TABLE IF NOT EXISTS recompute_runs (
			id TEXT PRIMARY KEY,
			user_key TEXT NOT NULL,
			reason TEXT NOT NULL,
			day TEXT NOT NULL,
			stamina REAL NOT NULL,
			energy REAL NOT NULL,
			nutrition REAL NOT NULL,
			mood REAL NOT NULL,
			stress REAL NOT NULL,
			level INTEGER NOT NULL,
			experience INTEGER NOT NULL,
			experience_gain INTEGER NOT NULL,
			emotional_state TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(user_key) REFERENCES characters(user_key)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_diet_logs_user_occurred ON diet_logs(user_key, occurred_at);`,
		`CREATE INDEX IF NOT EXISTS idx_exercise_logs_user_occurred ON exercise_logs(user_key, occurred_at);`,
		`CREATE INDEX IF NOT EXISTS idx_sleep_logs_user_occurred ON sleep_logs(user_key, occurred_at);`,
		`CREATE INDEX IF NOT EXISTS idx_work_logs_user_occurred ON work_logs(user_key, occurred_at);`,
		`CREATE INDEX IF NOT EXISTS idx_recompute_runs_user_created ON recompute_runs(user_key, created_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
