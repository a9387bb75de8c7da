package layout

import (
	"fmt"
	"strings"

	"github.com/abhisek/rehearse/internal/mastery"
	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

// BarWidth is the width of progress bars in stats output.
const BarWidth = 30

// Badge renders a bucket name in its color.
func Badge(s mastery.MasteryState) string {
	switch s {
	case mastery.StateLearning:
		return theme.BadgeLearning.Render(string(s))
	case mastery.StateMastered:
		return theme.BadgeMastered.Render(string(s))
	default:
		return theme.BadgeNew.Render(string(s))
	}
}

// RenderItemHeader renders the item being practiced with its goal and
// previous score when known.
func RenderItemHeader(req session.Request) string {
	lines := []string{theme.Title.Render(req.ItemID) + "  " + Badge(req.State)}
	if req.State != mastery.StateNew && req.Goal != nil {
		lines = append(lines, field("goal", *req.Goal))
	}
	if req.State == mastery.StateLearning && req.Previous != nil {
		lines = append(lines, field("past", *req.Previous))
	}
	return strings.Join(lines, "\n")
}

func field(name string, v int) string {
	return theme.Label.Render(name+" = ") + theme.Value.Render(fmt.Sprint(v))
}

// RenderProgress renders the running count of practiced items.
func RenderProgress(done int) string {
	return theme.Hint.Render(fmt.Sprintf("%d items done so far.", done)) + "\n"
}

// RenderSummary renders the end-of-session summary.
func RenderSummary(sum *session.Summary) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("practiced:"), theme.Value.Render(fmt.Sprint(sum.Practiced)))
	for _, s := range []mastery.MasteryState{mastery.StateLearning, mastery.StateNew, mastery.StateMastered} {
		if n := sum.ByState[s]; n > 0 {
			fmt.Fprintf(&b, "  %s %d\n", Badge(s), n)
		}
	}
	if len(sum.Skipped) > 0 {
		b.WriteString(theme.Warning.Render(fmt.Sprintf("skipped %d: %s", len(sum.Skipped), strings.Join(sum.Skipped, ", "))))
		b.WriteString("\n")
	}
	if sum.Aborted {
		b.WriteString(theme.Hint.Render("stopped early; progress saved up to the last item"))
		b.WriteString("\n")
	}
	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderStats renders bucket counts and the next items in practice order.
func RenderStats(b mastery.Buckets, next []session.PlanSlot) string {
	counts := b.Counts()
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Progress"))
	sb.WriteString("\n")
	for _, s := range []mastery.MasteryState{mastery.StateNew, mastery.StateLearning, mastery.StateMastered} {
		fmt.Fprintf(&sb, "%-20s %d\n", Badge(s), counts[s])
	}

	total := b.Len()
	if total > 0 {
		pct := float64(counts[mastery.StateMastered]) / float64(total)
		sb.WriteString(components.NewProgressBar("mastered", pct, true, BarWidth+16).View())
		sb.WriteString("\n")
	}

	if len(next) > 0 {
		sb.WriteString("\n")
		sb.WriteString(theme.Title.Render("Up next"))
		sb.WriteString("\n")
		for _, slot := range next {
			line := fmt.Sprintf("%s %s", Badge(slot.State), slot.ItemID)
			if r := b.Bucket(slot.State)[slot.ItemID]; r != nil && !r.IsNew() {
				line += "  " + RenderRecordBar(r)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderRecordBar renders current/goal as a progress bar.
func RenderRecordBar(r *store.Record) string {
	if r.Current == nil || r.Goal == nil {
		return ""
	}
	label := fmt.Sprintf("%d/%d", *r.Current, *r.Goal)
	return components.NewProgressBar(label, r.Ratio(), false, BarWidth).View()
}
