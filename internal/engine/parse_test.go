package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/dingonewen/oystraz/internal/storage"
)

func TestParseExerciseType(t *testing.T) {
	cases := map[string]ExerciseType{
		"":         ExerciseGeneral,
		"YOGA":     ExerciseYoga,
		" running": ExerciseRunning,
		"jog":      ExerciseRunning,
		"weights":  ExerciseStrength,
		"swimming": ExerciseSwimming,
	}
	for in, want := range cases {
		got, err := ParseExerciseType(in)
		if err != nil || got != want {
			t.Fatalf("ParseExerciseType(%q)=%q, %v; want %q", in, got, err, want)
		}
	}
}

func TestParseExerciseTypeSuggests(t *testing.T) {
	_, err := ParseExerciseType("yooga")
	var ie InvalidInputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if !strings.Contains(ie.Reason, `"yoga"`) {
		t.Fatalf("expected yoga suggestion, got %q", ie.Reason)
	}

	_, err = ParseExerciseType("underwater basket weaving")
	if !errors.As(err, &ie) || strings.Contains(ie.Reason, "did you mean") {
		t.Fatalf("expected plain rejection, got %v", err)
	}
}

func TestParseLogKind(t *testing.T) {
	for in, want := range map[string]storage.LogKind{
		"diet":    storage.KindDiet,
		"Meal":    storage.KindDiet,
		"workout": storage.KindExercise,
		"sleep":   storage.KindSleep,
		" work ":  storage.KindWork,
	} {
		got, err := ParseLogKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseLogKind(%q)=%q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseLogKind("nap"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
