package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	"github.com/alexanderramin/plans/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// weekView shows the seven day buckets of the current week. Left/right moves
// between days, up/down moves within a day's tasks.
type weekView struct {
	state  *SharedState
	day    int
	tasks  []*domain.WeekTask // tasks of the focused day, incomplete first
	cursor int
}

func newWeekView(state *SharedState) *weekView {
	return &weekView{state: state}
}

func (v *weekView) ID() ViewID    { return ViewWeek }
func (v *weekView) Title() string { return "Week" }

func (v *weekView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "switch day")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "jump to today")),
	}
}

func (v *weekView) Init() tea.Cmd {
	v.day = domain.DayIndexFor(v.state.App.Now())
	v.reload()
	return nil
}

func (v *weekView) reload() {
	v.tasks = v.state.App.Week.TasksForDay(v.day)
	if v.cursor >= len(v.tasks) {
		v.cursor = len(v.tasks) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *weekView) switchDay(delta int) {
	v.day = (v.day + delta + 7) % 7
	v.cursor = 0
	v.reload()
}

func (v *weekView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.tasks)-1 {
				v.cursor++
			}
		case "left", "h":
			v.switchDay(-1)
		case "right", "l":
			v.switchDay(1)
		case "t":
			v.day = domain.DayIndexFor(v.state.App.Now())
			v.cursor = 0
			v.reload()
		case " ":
			if v.cursor < len(v.tasks) {
				if err := v.state.App.Week.ToggleDone(context.Background(), v.tasks[v.cursor].ID); err != nil {
					return v, toastError(err)
				}
				v.reload()
			}
		case "a":
			return v, pushView(newTaskFormView(v.state, v.day, nil))
		case "e":
			if v.cursor < len(v.tasks) {
				return v, pushView(newTaskFormView(v.state, v.day, v.tasks[v.cursor]))
			}
		case "x":
			if v.cursor < len(v.tasks) {
				t := v.tasks[v.cursor]
				app := v.state.App
				return v, pushView(newConfirmView(v.state,
					fmt.Sprintf("Delete task %q?", t.Title),
					func(ctx context.Context) tea.Cmd {
						if err := app.Week.Delete(ctx, t.ID); err != nil {
							return toastError(err)
						}
						return toastOK("Deleted " + t.Title)
					}))
			}
		}
	}
	return v, nil
}

func (v *weekView) View() string {
	var b strings.Builder

	monday := domain.MondayOf(v.state.App.Now())
	today := domain.DayIndexFor(v.state.App.Now())

	// Day strip with per-day open counts.
	all := v.state.App.Week.Tasks()
	var cells []string
	for i, name := range domain.DayNames {
		open := 0
		for _, t := range all {
			if t.DayIndex == i && !t.Done {
				open++
			}
		}
		label := fmt.Sprintf("%s %s", name, monday.AddDate(0, 0, i).Format("2/1"))
		if open > 0 {
			label += fmt.Sprintf(" (%d)", open)
		}
		switch {
		case i == v.day:
			cells = append(cells, formatter.StyleHeader.Render("["+label+"]"))
		case i == today:
			cells = append(cells, formatter.StyleGreen.Render(" "+label+" "))
		default:
			cells = append(cells, formatter.Dim(" "+label+" "))
		}
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n\n")

	if len(v.tasks) == 0 {
		b.WriteString(formatter.Dim("  Nothing planned for " + domain.DayNames[v.day] + ". Press 'a' to add a task."))
		b.WriteString("\n")
		return b.String()
	}

	for i, t := range v.tasks {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("› ")
		}
		title := t.Title
		if t.Done {
			title = formatter.StyleStrike.Render(title)
		}
		line := fmt.Sprintf("%s%s %s  %s", prefix, formatter.Checkbox(t.Done), title,
			formatter.Dim(domain.HorizonLabel(t.HorizonID)))
		b.WriteString(line)
		b.WriteString("\n")
		if t.Notes != "" {
			b.WriteString("      " + formatter.Dim(t.Notes) + "\n")
		}
	}

	return b.String()
}
