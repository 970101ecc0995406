package root

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dingonewen/oystraz/internal/engine"
)

func TestParseAt(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	if got, err := parseAt("  ", loc); err != nil || !got.IsZero() {
		t.Fatalf("empty: %v, %v", got, err)
	}

	got, err := parseAt("2026-03-01 07:30", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got, err = parseAt("2026-03-01T07:30:00Z", loc)
	if err != nil || !got.Equal(time.Date(2026, 3, 1, 7, 30, 0, 0, time.UTC)) {
		t.Fatalf("rfc3339: %v, %v", got, err)
	}

	if _, err := parseAt("yesterday", loc); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseHours(t *testing.T) {
	for in, want := range map[string]float64{"8": 8, " 7.5 ": 7.5, "0": 0} {
		got, err := parseHours(in)
		if err != nil || got != want {
			t.Fatalf("parseHours(%q)=%v, %v; want %v", in, got, err, want)
		}
	}

	for _, in := range []string{"8abc", "", "eight", "8h", "1,5"} {
		_, err := parseHours(in)
		var invalid engine.InvalidInputError
		if !errors.As(err, &invalid) || invalid.Field != "hours" {
			t.Fatalf("parseHours(%q): expected invalid hours error, got %v", in, err)
		}
	}
}

func TestRenderErrorHints(t *testing.T) {
	out := renderError(fmt.Errorf("log work: %w", engine.BudgetError{Used: 20, Adding: 5, Limit: 24}))
	if !strings.Contains(out, "4.00h left today") {
		t.Fatalf("expected remaining hours hint, got %q", out)
	}

	out = renderError(engine.MissingCharacterError{User: "alice"})
	if !strings.Contains(out, "oz init --user alice") {
		t.Fatalf("expected init hint, got %q", out)
	}
}
