package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plans/internal/domain"
)

const dateLayout = "Jan 02, 2006"

// ShortID returns the first 8 characters of an entity id for display.
func ShortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// FormatGoalList renders the goals of one horizon bucket.
func FormatGoalList(horizon domain.Horizon, goals []*domain.Goal) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("Goals · %s", horizon.Label)))
	b.WriteString("\n")

	if len(goals) == 0 {
		b.WriteString(Dim("No goals yet. Add the first one."))
		b.WriteString("\n")
		return b.String()
	}

	for _, g := range goals {
		title := StyleFg.Render(g.Title)
		if g.Done {
			title = StyleStrike.Render(g.Title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s", Checkbox(g.Done), Dim(ShortID(g.ID)), title))
		var meta []string
		if g.TargetDate != nil {
			meta = append(meta, "due "+g.TargetDate.Format(dateLayout))
		}
		if g.Done {
			meta = append(meta, "done")
		} else {
			meta = append(meta, "in progress")
		}
		b.WriteString("  " + Dim(strings.Join(meta, " · ")))
		b.WriteString("\n")
		if g.Desc != "" {
			b.WriteString("      " + Dim(g.Desc) + "\n")
		}
	}
	return b.String()
}

// FormatTaskLine renders a single week task row with its horizon label.
func FormatTaskLine(t *domain.WeekTask) string {
	title := StyleFg.Render(t.Title)
	if t.Done {
		title = StyleStrike.Render(t.Title)
	}
	meta := []string{domain.HorizonLabel(t.HorizonID)}
	if t.Notes != "" {
		meta = append(meta, "has notes")
	}
	return fmt.Sprintf("%s %s %s  %s", Checkbox(t.Done), Dim(ShortID(t.ID)), title, Dim(strings.Join(meta, " · ")))
}

// FormatWeek renders all seven day buckets for the week starting at monday.
func FormatWeek(tasks []*domain.WeekTask, monday time.Time) string {
	var b strings.Builder
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		b.WriteString(StyleHeader.Render(domain.DayNames[i]) + " " + Dim(date.Format("Jan 02")))
		b.WriteString("\n")

		day := domain.TasksForDay(tasks, i)
		if len(day) == 0 {
			b.WriteString("  " + Dim("No tasks.") + "\n")
			continue
		}
		for _, t := range day {
			b.WriteString("  " + FormatTaskLine(t) + "\n")
		}
	}
	return b.String()
}

// FormatToday renders the daily checklist and the week tasks due today.
func FormatToday(items []*domain.TodayItem, dueToday []*domain.WeekTask, now time.Time) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Today") + " " + Dim(now.Format("Monday, Jan 02, 2006")))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString("  " + Dim("Checklist is empty.") + "\n")
	}
	for _, it := range items {
		title := StyleFg.Render(it.Title)
		if it.Done {
			title = StyleStrike.Render(it.Title)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", Checkbox(it.Done), Dim(ShortID(it.ID)), title))
	}

	b.WriteString(StyleHeader.Render("From the week") + "\n")
	if len(dueToday) == 0 {
		b.WriteString("  " + Dim("No week tasks for today.") + "\n")
	}
	for _, t := range dueToday {
		b.WriteString("  " + FormatTaskLine(t) + "\n")
	}
	return b.String()
}

// FormatNoteList renders the notes collection, newest first.
func FormatNoteList(notes []*domain.Note) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Notes") + "\n")

	if len(notes) == 0 {
		b.WriteString(Dim("No notes yet.") + "\n")
		return b.String()
	}

	for _, n := range notes {
		meta := []string{"created " + n.CreatedAt.Format(dateLayout)}
		if !n.UpdatedAt.IsZero() && !n.UpdatedAt.Equal(n.CreatedAt) {
			meta = append(meta, "edited "+n.UpdatedAt.Format(dateLayout))
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", Dim(ShortID(n.ID)), StyleFg.Render(n.Title), Dim(strings.Join(meta, " · "))))
	}
	return b.String()
}

// FormatNote renders a single note with its full body.
func FormatNote(n *domain.Note) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(n.Title) + "\n")
	if n.Body == "" {
		b.WriteString(Dim("—") + "\n")
	} else {
		b.WriteString(n.Body + "\n")
	}
	return b.String()
}
