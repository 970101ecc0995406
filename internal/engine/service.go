package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dingonewen/oystraz/internal/lock"
	"github.com/dingonewen/oystraz/internal/storage"
)

const tracerName = "github.com/dingonewen/oystraz/internal/engine"

// Locker serialises mutations of one user's character.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type Service struct {
	db         *sql.DB
	characters *storage.CharacterRepo
	activity   *storage.ActivityRepo
	runs       *storage.RecomputeRepo

	locker      Locker
	log         *slog.Logger
	loc         *time.Location
	baseline    Baseline
	cache       *lru.Cache
	cacheSize   int
	parallelism int
	tracer      trace.Tracer
	now         func() time.Time
}

type Option func(*Service)

func WithLocker(l Locker) Option {
	return func(s *Service) { s.locker = l }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithLocation sets the time zone calendar days are cut in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

func WithBaseline(b Baseline) Option {
	return func(s *Service) { s.baseline = b }
}

func WithCacheSize(n int) Option {
	return func(s *Service) { s.cacheSize = n }
}

// WithParallelism bounds how many characters RecomputeAll works on at once.
func WithParallelism(n int) Option {
	return func(s *Service) { s.parallelism = n }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer(tracerName) }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(db *sql.DB, opts ...Option) (*Service, error) {
	s := &Service{
		db:          db,
		characters:  storage.NewCharacterRepo(db),
		activity:    storage.NewActivityRepo(db),
		runs:        storage.NewRecomputeRepo(db),
		locker:      lock.NewLocal(),
		log:         slog.Default(),
		loc:         time.Local,
		baseline:    DefaultBaseline(),
		cacheSize:   128,
		parallelism: 4,
		tracer:      otel.Tracer(tracerName),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.parallelism < 1 {
		s.parallelism = 1
	}
	if s.cacheSize < 1 {
		s.cacheSize = 1
	}

	cache, err := lru.New(s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("character cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

func (s *Service) CharacterRepo() *storage.CharacterRepo { return s.characters }
func (s *Service) ActivityRepo() *storage.ActivityRepo   { return s.activity }
func (s *Service) RecomputeRepo() *storage.RecomputeRepo { return s.runs }

// Location is the time zone calendar days are cut in.
func (s *Service) Location() *time.Location { return s.loc }

// dayWindow returns [00:00, next 00:00) of the calendar day containing t.
func (s *Service) dayWindow(t time.Time) (time.Time, time.Time) {
	from := StartOfDay(t, s.loc)
	return from, from.AddDate(0, 0, 1)
}

// occurredAt defaults a zero log time to now and rejects times in the future.
func (s *Service) occurredAt(t time.Time) (time.Time, error) {
	now := s.now()
	if t.IsZero() {
		return now, nil
	}
	if t.After(now) {
		return time.Time{}, InvalidInputError{Field: "occurred at", Value: t.Format(time.RFC3339), Reason: "must not be in the future"}
	}
	return t, nil
}

// StateOf converts a stored character to its CharacterState. A stored
// emotional state that no longer parses is reclassified from the attributes.
func StateOf(c *storage.Character) CharacterState {
	st := CharacterState{
		Attributes: Attributes{
			Stamina:   c.Stamina,
			Energy:    c.Energy,
			Nutrition: c.Nutrition,
			Mood:      c.Mood,
			Stress:    c.Stress,
		},
		Progression: Progression{Level: c.Level, Experience: c.Experience},
	}
	es, err := ParseEmotionalState(c.EmotionalState)
	if err != nil {
		es = Classify(c.Mood, c.Energy, c.Stress)
	}
	st.EmotionalState = es
	return st
}

func applyState(c *storage.Character, st CharacterState) {
	c.Stamina = st.Stamina
	c.Energy = st.Energy
	c.Nutrition = st.Nutrition
	c.Mood = st.Mood
	c.Stress = st.Stress
	c.Level = st.Level
	c.Experience = st.Experience
	c.EmotionalState = string(st.EmotionalState)
}

func (s *Service) cacheCharacter(c *storage.Character) {
	s.cache.Add(c.UserKey, *c)
}

// CreateCharacter creates the user's character at the baseline state.
// It reports false and returns the existing character when one already exists.
func (s *Service) CreateCharacter(ctx context.Context, user string, body BodyType) (*storage.Character, bool, error) {
	if user == "" {
		return nil, false, InvalidInputError{Field: "user", Reason: "is required"}
	}
	if body == "" {
		body = BodyNormal
	}
	if !body.IsValid() {
		return nil, false, InvalidInputError{Field: "body type", Value: body, Reason: "must be thin, normal, overweight or obese"}
	}

	now := s.now()
	start := s.baseline.InitialState()
	c := storage.Character{
		UserKey:          user,
		BodyType:         string(body),
		AnchorDay:        DayKey(now, s.loc),
		AnchorLevel:      start.Level,
		AnchorExperience: start.Experience,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}
	applyState(&c, start)

	created, err := s.characters.Insert(ctx, c)
	if err != nil {
		return nil, false, err
	}
	if !created {
		existing, err := s.Character(ctx, user)
		return existing, false, err
	}
	s.cacheCharacter(&c)
	s.log.InfoContext(ctx, "character created", "user", user, "body_type", body)
	return &c, true, nil
}

// Character returns the stored character, served from the cache when possible.
func (s *Service) Character(ctx context.Context, user string) (*storage.Character, error) {
	if v, ok := s.cache.Get(user); ok {
		c := v.(storage.Character)
		return &c, nil
	}
	c, err := s.characters.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, MissingCharacterError{User: user}
	}
	s.cacheCharacter(c)
	return c, nil
}
