package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Oystraz CLI theme: shared styles, icons and small renderers.

const (
	IconCharacter = "🧍"
	IconSparkle   = "✨"
	IconPlus      = "➕"
	IconTrash     = "🗑️"
	IconBolt      = "⚡"
	IconLoop      = "🔁"
	IconScroll    = "📜"
	IconClock     = "⏱️"
	IconInfo      = "ℹ️"
	IconWarn      = "⚠️"
	IconError     = "🧨"

	IconDiet     = "🥗"
	IconExercise = "🏃"
	IconSleep    = "😴"
	IconWork     = "💼"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeLevelUp   = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeLevelDown = lipgloss.NewStyle().Bold(true).Foreground(cWarn).Render("LEVEL DOWN")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

const barWidth = 20

// Bar renders a 0-100 value as a fixed-width meter. When inverted is set a
// high value is bad (stress).
func Bar(label string, value float64, inverted bool) string {
	v := math.Max(0, math.Min(100, value))
	filled := int(math.Round(v / 100 * barWidth))

	score := v
	if inverted {
		score = 100 - v
	}
	style := Good
	switch {
	case score < 40:
		style = Bad
	case score < 70:
		style = Warn
	}

	meter := style.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%-10s %s %5.1f", Key.Render(label), meter, v)
}

// StateText colours an emotional state label.
func StateText(state string) string {
	s := strings.ToLower(strings.TrimSpace(state))
	switch s {
	case "happy":
		return Good.Render("😄 happy")
	case "normal":
		return H2.Render("🙂 normal")
	case "tired":
		return Warn.Render("🥱 tired")
	case "stressed":
		return Warn.Render("😣 stressed")
	case "angry":
		return Bad.Render("😡 angry")
	default:
		return Muted.Render(state)
	}
}

func KindIcon(kind string) string {
	switch kind {
	case "diet":
		return IconDiet
	case "exercise":
		return IconExercise
	case "sleep":
		return IconSleep
	case "work":
		return IconWork
	default:
		return IconScroll
	}
}

// Signed formats a delta with an explicit sign.
func Signed(v float64) string {
	switch {
	case v > 0.05:
		return Good.Render(fmt.Sprintf("+%.1f", v))
	case v < -0.05:
		return Bad.Render(fmt.Sprintf("%.1f", v))
	default:
		return Muted.Render("±0")
	}
}
