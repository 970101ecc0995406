package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/dingonewen/oystraz/internal/storage"
)

// Recompute reasons recorded in the audit trail.
const (
	ReasonLogCreated = "log_created"
	ReasonLogDeleted = "log_deleted"
	ReasonManual     = "manual"
)

type MutationResult struct {
	User    string
	Kind    storage.LogKind // empty for a manual recompute
	LogID   int64
	Deleted bool

	Before         CharacterState
	After          CharacterState
	ExperienceGain int // today's total, not the delta of this mutation
	Totals         DailyTotals

	LevelUp   bool
	LevelDown bool
}

// mutation is one change to a user's logs that is followed by a recompute.
type mutation struct {
	op     string
	user   string
	kind   storage.LogKind
	reason string

	// hours and at drive the daily budget check; hours == 0 skips it.
	hours float64
	at    time.Time

	apply func(ctx context.Context, activity *storage.ActivityRepo) (int64, error)
}

func (s *Service) LogDiet(ctx context.Context, user string, in DietInput) (*MutationResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	at, err := s.occurredAt(in.OccurredAt)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, mutation{
		op:     "LogDiet",
		user:   user,
		kind:   storage.KindDiet,
		reason: ReasonLogCreated,
		at:     at,
		apply: func(ctx context.Context, activity *storage.ActivityRepo) (int64, error) {
			return activity.InsertDiet(ctx, storage.DietLog{
				UserKey:    user,
				FoodName:   in.FoodName,
				MealType:   in.MealType,
				Calories:   in.Calories,
				Protein:    in.Protein,
				Carbs:      in.Carbs,
				Fat:        in.Fat,
				Fiber:      in.Fiber,
				OccurredAt: at,
				CreatedAt:  s.now(),
			})
		},
	})
}

func (s *Service) LogExercise(ctx context.Context, user string, in ExerciseInput) (*MutationResult, error) {
	if in.Type == "" {
		in.Type = ExerciseGeneral
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	at, err := s.occurredAt(in.OccurredAt)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, mutation{
		op:     "LogExercise",
		user:   user,
		kind:   storage.KindExercise,
		reason: ReasonLogCreated,
		hours:  in.Hours(),
		at:     at,
		apply: func(ctx context.Context, activity *storage.ActivityRepo) (int64, error) {
			return activity.InsertExercise(ctx, storage.ExerciseLog{
				UserKey:        user,
				ActivityName:   in.ActivityName,
				ActivityType:   string(in.Type),
				Minutes:        in.Minutes,
				CaloriesBurned: in.CaloriesBurned,
				OccurredAt:     at,
				CreatedAt:      s.now(),
			})
		},
	})
}

func (s *Service) LogSleep(ctx context.Context, user string, in SleepInput) (*MutationResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	at, err := s.occurredAt(in.OccurredAt)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, mutation{
		op:     "LogSleep",
		user:   user,
		kind:   storage.KindSleep,
		reason: ReasonLogCreated,
		hours:  in.Hours,
		at:     at,
		apply: func(ctx context.Context, activity *storage.ActivityRepo) (int64, error) {
			return activity.InsertSleep(ctx, storage.SleepLog{
				UserKey:    user,
				Hours:      in.Hours,
				Quality:    in.Quality,
				OccurredAt: at,
				CreatedAt:  s.now(),
			})
		},
	})
}

func (s *Service) LogWork(ctx context.Context, user string, in WorkInput) (*MutationResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	at, err := s.occurredAt(in.OccurredAt)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, mutation{
		op:     "LogWork",
		user:   user,
		kind:   storage.KindWork,
		reason: ReasonLogCreated,
		hours:  in.Hours,
		at:     at,
		apply: func(ctx context.Context, activity *storage.ActivityRepo) (int64, error) {
			return activity.InsertWork(ctx, storage.WorkLog{
				UserKey:     user,
				Hours:       in.Hours,
				Intensity:   in.Intensity,
				PrankedBoss: in.PrankedBoss,
				Notes:       in.Notes,
				OccurredAt:  at,
				CreatedAt:   s.now(),
			})
		},
	})
}

// DeleteLog removes one log and recomputes, so the character ends up as if
// the log had never been written.
func (s *Service) DeleteLog(ctx context.Context, user string, kind storage.LogKind, id int64) (*MutationResult, error) {
	if !kind.IsValid() {
		return nil, InvalidInputError{Field: "log kind", Value: kind, Reason: "must be diet, exercise, sleep or work"}
	}
	res, err := s.mutate(ctx, mutation{
		op:     "DeleteLog",
		user:   user,
		kind:   kind,
		reason: ReasonLogDeleted,
		apply: func(ctx context.Context, activity *storage.ActivityRepo) (int64, error) {
			ok, err := activity.Delete(ctx, kind, user, id)
			if err != nil {
				return 0, err
			}
			if !ok {
				return 0, LogNotFoundError{Kind: kind, ID: id}
			}
			return id, nil
		},
	})
	if err != nil {
		return nil, err
	}
	res.Deleted = true
	return res, nil
}

// Recompute rebuilds the character from today's logs without changing any log.
func (s *Service) Recompute(ctx context.Context, user string) (*MutationResult, error) {
	return s.mutate(ctx, mutation{
		op:     "Recompute",
		user:   user,
		reason: ReasonManual,
	})
}

// RecomputeAll recomputes every character, each under its own lock. Results
// are ordered by user key.
func (s *Service) RecomputeAll(ctx context.Context) ([]*MutationResult, error) {
	users, err := s.characters.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*MutationResult, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			res, err := s.Recompute(gctx, user)
			if err != nil {
				return fmt.Errorf("recompute %s: %w", user, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) mutate(ctx context.Context, m mutation) (_ *MutationResult, err error) {
	ctx, span := s.tracer.Start(ctx, "engine."+m.op, trace.WithAttributes(
		attribute.String("user", m.user),
		attribute.String("kind", string(m.kind)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if m.user == "" {
		return nil, InvalidInputError{Field: "user", Reason: "is required"}
	}

	unlock, err := s.locker.Lock(ctx, m.user)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", m.user, err)
	}
	defer unlock()

	now := s.now()
	var char *storage.Character
	res := MutationResult{User: m.user}
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		characters := storage.NewCharacterRepo(tx)
		activity := storage.NewActivityRepo(tx)

		c, err := characters.Get(ctx, m.user)
		if err != nil {
			return err
		}
		if c == nil {
			return MissingCharacterError{User: m.user}
		}
		res.Before = StateOf(c)

		if m.hours > 0 {
			from, to := s.dayWindow(m.at)
			logs, err := activity.ListBetween(ctx, m.user, from, to)
			if err != nil {
				return err
			}
			if err := CheckDailyBudget(Aggregate(from, *logs), m.hours); err != nil {
				return err
			}
		}

		if m.apply != nil {
			id, err := m.apply(ctx, activity)
			if err != nil {
				return err
			}
			res.Kind = m.kind
			res.LogID = id
		}

		rc, totals, err := s.recomputeTx(ctx, tx, c, m.reason, now)
		if err != nil {
			return err
		}
		res.After = rc.State
		res.ExperienceGain = rc.ExperienceGain
		res.Totals = totals
		char = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.cacheCharacter(char)

	res.LevelUp = res.After.Level > res.Before.Level
	res.LevelDown = res.After.Level < res.Before.Level

	span.SetAttributes(
		attribute.Int64("log_id", res.LogID),
		attribute.Int("xp_gain", res.ExperienceGain),
		attribute.String("state", string(res.After.EmotionalState)),
	)
	s.log.InfoContext(ctx, "character recomputed",
		"op", m.op,
		"user", m.user,
		"kind", m.kind,
		"log_id", res.LogID,
		"xp_gain", res.ExperienceGain,
		"level", res.After.Level,
		"state", res.After.EmotionalState,
	)
	return &res, nil
}

// recomputeTx recomputes c from today's logs, stores it, and writes an audit
// row. The caller holds the user's lock.
func (s *Service) recomputeTx(ctx context.Context, tx *sql.Tx, c *storage.Character, reason string, now time.Time) (Recomputation, DailyTotals, error) {
	from, to := s.dayWindow(now)
	day := from.Format(time.DateOnly)
	if c.AnchorDay != day {
		c.AnchorDay = day
		c.AnchorLevel = c.Level
		c.AnchorExperience = c.Experience
	}

	logs, err := storage.NewActivityRepo(tx).ListBetween(ctx, c.UserKey, from, to)
	if err != nil {
		return Recomputation{}, DailyTotals{}, err
	}
	totals := Aggregate(from, *logs)
	rc := Recompute(s.baseline, totals, Progression{Level: c.AnchorLevel, Experience: c.AnchorExperience}, SpecialFlags{})

	applyState(c, rc.State)
	c.UpdatedAt = now.UTC()
	if err := storage.NewCharacterRepo(tx).Update(ctx, c); err != nil {
		return Recomputation{}, DailyTotals{}, err
	}

	run := storage.RecomputeRun{
		ID:             uuid.NewString(),
		UserKey:        c.UserKey,
		Reason:         reason,
		Day:            day,
		Stamina:        c.Stamina,
		Energy:         c.Energy,
		Nutrition:      c.Nutrition,
		Mood:           c.Mood,
		Stress:         c.Stress,
		Level:          c.Level,
		Experience:     c.Experience,
		ExperienceGain: rc.ExperienceGain,
		EmotionalState: c.EmotionalState,
		CreatedAt:      now,
	}
	if err := storage.NewRecomputeRepo(tx).Insert(ctx, run); err != nil {
		return Recomputation{}, DailyTotals{}, err
	}
	s.log.DebugContext(ctx, "recompute stored", "user", c.UserKey, "run", run.ID, "reason", reason, "day", day)
	return rc, totals, nil
}
