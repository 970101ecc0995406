package root

import (
	"fmt"
	"io"

	"github.com/dingonewen/oystraz/internal/engine"
	"github.com/dingonewen/oystraz/internal/ui"
)

func printState(w io.Writer, st engine.CharacterState) {
	fmt.Fprintln(w, ui.LabelValue("Level", fmt.Sprintf("%d (%d xp, %d to next)", st.Level, st.Experience, engine.ExperienceToNext(st.Progression))))
	fmt.Fprintln(w, ui.LabelValue("Feeling", ui.StateText(string(st.EmotionalState))))
	fmt.Fprintln(w, ui.Bar("Stamina", st.Stamina, false))
	fmt.Fprintln(w, ui.Bar("Energy", st.Energy, false))
	fmt.Fprintln(w, ui.Bar("Nutrition", st.Nutrition, false))
	fmt.Fprintln(w, ui.Bar("Mood", st.Mood, false))
	fmt.Fprintln(w, ui.Bar("Stress", st.Stress, true))
}

func printMutation(w io.Writer, res *engine.MutationResult) {
	switch {
	case res.Deleted:
		fmt.Fprintf(w, "%s %s #%d\n", ui.Warn.Render(ui.IconTrash+" Deleted"), res.Kind, res.LogID)
	case res.Kind != "":
		fmt.Fprintf(w, "%s %s %s #%d\n", ui.Good.Render(ui.IconPlus+" Logged"), ui.KindIcon(string(res.Kind)), res.Kind, res.LogID)
	default:
		fmt.Fprintln(w, ui.H2.Render(ui.IconLoop+" Recomputed"))
	}

	b, a := res.Before, res.After
	fmt.Fprintf(w, "  stamina %.1f %s  energy %.1f %s  nutrition %.1f %s  mood %.1f %s  stress %.1f %s\n",
		a.Stamina, ui.Signed(a.Stamina-b.Stamina),
		a.Energy, ui.Signed(a.Energy-b.Energy),
		a.Nutrition, ui.Signed(a.Nutrition-b.Nutrition),
		a.Mood, ui.Signed(a.Mood-b.Mood),
		a.Stress, ui.Signed(a.Stress-b.Stress),
	)
	fmt.Fprintln(w, "  "+ui.LabelValue("Feeling", ui.StateText(string(a.EmotionalState))))
	fmt.Fprintln(w, "  "+ui.LabelValue("Level", fmt.Sprintf("%d → %d", b.Level, a.Level))+" "+
		ui.Muted.Render(fmt.Sprintf("(%d xp, +%d today)", a.Experience, res.ExperienceGain)))
	if res.LevelUp {
		fmt.Fprintln(w, "  "+ui.BadgeLevelUp)
	}
	if res.LevelDown {
		fmt.Fprintln(w, "  "+ui.BadgeLevelDown)
	}
}
