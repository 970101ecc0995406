package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MainUserKey is the user the CLI acts as when no --user flag is given.
const MainUserKey = "main_user"

type CharacterRepo struct {
	db DBTX
}

func NewCharacterRepo(db DBTX) *CharacterRepo {
	return &CharacterRepo{db: db}
}

const characterColumns = `user_key, stamina, energy, nutrition, mood, stress,
	level, experience, emotional_state, body_type,
	anchor_day, anchor_level, anchor_experience,
	created_at, updated_at`

func (r *CharacterRepo) Get(ctx context.Context, userKey string) (*Character, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+characterColumns+` FROM characters WHERE user_key = ?`, userKey)

	var c Character
	if err := row.Scan(
		&c.UserKey, &c.Stamina, &c.Energy, &c.Nutrition, &c.Mood, &c.Stress,
		&c.Level, &c.Experience, &c.EmotionalState, &c.BodyType,
		&c.AnchorDay, &c.AnchorLevel, &c.AnchorExperience,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("character get: %w", err)
	}
	return &c, nil
}

// Insert creates the character row. It reports false when the user already has one.
func (r *CharacterRepo) Insert(ctx context.Context, c Character) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO characters (`+characterColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_key) DO NOTHING
	`, c.UserKey, c.Stamina, c.Energy, c.Nutrition, c.Mood, c.Stress,
		c.Level, c.Experience, c.EmotionalState, c.BodyType,
		c.AnchorDay, c.AnchorLevel, c.AnchorExperience,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("character insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("character rows affected: %w", err)
	}
	return n == 1, nil
}

func (r *CharacterRepo) Update(ctx context.Context, c *Character) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE characters
		SET stamina = ?, energy = ?, nutrition = ?, mood = ?, stress = ?,
			level = ?, experience = ?, emotional_state = ?, body_type = ?,
			anchor_day = ?, anchor_level = ?, anchor_experience = ?,
			updated_at = ?
		WHERE user_key = ?
	`, c.Stamina, c.Energy, c.Nutrition, c.Mood, c.Stress,
		c.Level, c.Experience, c.EmotionalState, c.BodyType,
		c.AnchorDay, c.AnchorLevel, c.AnchorExperience,
		c.UpdatedAt, c.UserKey)
	if err != nil {
		return fmt.Errorf("character update: %w", err)
	}
	return nil
}

func (r *CharacterRepo) ListKeys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_key FROM characters ORDER BY user_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("character list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("character scan: %w", err)
		}
		out = append(out, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("character rows: %w", err)
	}
	return out, nil
}
