package storage

import "time"

type Character struct {
	UserKey string

	Stamina   float64
	Energy    float64
	Nutrition float64
	Mood      float64
	Stress    float64

	Level          int
	Experience     int
	EmotionalState string
	BodyType       string

	// Progression as it stood when the current calendar day began.
	// Recomputes apply today's experience on top of this, not on top of Level/Experience.
	AnchorDay        string
	AnchorLevel      int
	AnchorExperience int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type LogKind string

const (
	KindDiet     LogKind = "diet"
	KindExercise LogKind = "exercise"
	KindSleep    LogKind = "sleep"
	KindWork     LogKind = "work"
)

// Kinds lists every activity log kind in display order.
var Kinds = []LogKind{KindDiet, KindExercise, KindSleep, KindWork}

func (k LogKind) IsValid() bool {
	switch k {
	case KindDiet, KindExercise, KindSleep, KindWork:
		return true
	default:
		return false
	}
}

func (k LogKind) table() string {
	return string(k) + "_logs"
}

type DietLog struct {
	ID         int64
	UserKey    string
	FoodName   string
	MealType   string
	Calories   float64
	Protein    float64 // grams
	Carbs      float64 // grams
	Fat        float64 // grams
	Fiber      float64 // grams
	OccurredAt time.Time
	CreatedAt  time.Time
}

type ExerciseLog struct {
	ID             int64
	UserKey        string
	ActivityName   string
	ActivityType   string
	Minutes        float64
	CaloriesBurned float64
	OccurredAt     time.Time
	CreatedAt      time.Time
}

type SleepLog struct {
	ID         int64
	UserKey    string
	Hours      float64
	Quality    string
	OccurredAt time.Time
	CreatedAt  time.Time
}

type WorkLog struct {
	ID          int64
	UserKey     string
	Hours       float64
	Intensity   int // 1-5
	PrankedBoss bool
	Notes       string
	OccurredAt  time.Time
	CreatedAt   time.Time
}

// DayLogs holds every activity log of one user inside a time window.
type DayLogs struct {
	Diet     []DietLog
	Exercise []ExerciseLog
	Sleep    []SleepLog
	Work     []WorkLog
}

// Len returns the number of logs across all kinds.
func (d DayLogs) Len() int {
	return len(d.Diet) + len(d.Exercise) + len(d.Sleep) + len(d.Work)
}

type RecomputeRun struct {
	ID             string
	UserKey        string
	Reason         string
	Day            string
	Stamina        float64
	Energy         float64
	Nutrition      float64
	Mood           float64
	Stress         float64
	Level          int
	Experience     int
	ExperienceGain int
	EmotionalState string
	CreatedAt      time.Time
}
