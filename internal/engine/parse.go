package engine

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/dingonewen/oystraz/internal/storage"
)

var exerciseAliases = map[string]ExerciseType{
	"":            ExerciseGeneral,
	"other":       ExerciseGeneral,
	"run":         ExerciseRunning,
	"jog":         ExerciseRunning,
	"jogging":     ExerciseRunning,
	"walk":        ExerciseWalking,
	"hike":        ExerciseWalking,
	"bike":        ExerciseCycling,
	"cycle":       ExerciseCycling,
	"swim":        ExerciseSwimming,
	"weights":     ExerciseStrength,
	"lifting":     ExerciseStrength,
	"flexibility": ExerciseYoga,
	"stretching":  ExerciseYoga,
}

// ParseExerciseType parses user input to an ExerciseType.
// Empty input means general exercise. Unknown input is rejected with the
// closest known type as a suggestion.
func ParseExerciseType(input string) (ExerciseType, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if t := ExerciseType(s); t.IsValid() {
		return t, nil
	}
	if t, ok := exerciseAliases[s]; ok {
		return t, nil
	}

	if guess, ok := closestExerciseType(s); ok {
		return "", InvalidInputError{
			Field:  "exercise type",
			Value:  input,
			Reason: fmt.Sprintf("unknown type, did you mean %q?", guess),
		}
	}
	return "", InvalidInputError{Field: "exercise type", Value: input, Reason: "unknown type"}
}

// closestExerciseType finds the known type within two edits of s.
func closestExerciseType(s string) (ExerciseType, bool) {
	best := ExerciseType("")
	bestDist := 3
	for _, t := range knownExerciseTypes {
		if d := levenshtein.ComputeDistance(s, string(t)); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, best != ""
}

// ParseLogKind parses user input to a storage.LogKind.
func ParseLogKind(input string) (storage.LogKind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "meal", "food":
		s = string(storage.KindDiet)
	case "workout":
		s = string(storage.KindExercise)
	}
	k := storage.LogKind(s)
	if !k.IsValid() {
		return "", InvalidInputError{Field: "log kind", Value: input, Reason: "must be diet, exercise, sleep or work"}
	}
	return k, nil
}
