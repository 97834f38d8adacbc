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

// todayView shows the daily checklist followed by the week tasks due today.
// The cursor runs through both sections; week tasks toggle through the week
// service so the Week tab stays consistent.
type todayView struct {
	state    *SharedState
	items    []*domain.TodayItem
	dueToday []*domain.WeekTask
	cursor   int
}

func newTodayView(state *SharedState) *todayView {
	return &todayView{state: state}
}

func (v *todayView) ID() ViewID    { return ViewToday }
func (v *todayView) Title() string { return "Today" }

func (v *todayView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *todayView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *todayView) reload() {
	// Crossing midnight invalidates yesterday's done flags.
	if _, err := v.state.App.Today.EnsureRollover(context.Background()); err != nil {
		v.items = nil
		v.dueToday = nil
		return
	}
	v.items = v.state.App.Today.Items()
	v.dueToday = v.state.App.Today.TasksDueToday()
	if total := len(v.items) + len(v.dueToday); v.cursor >= total {
		v.cursor = total - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// onChecklist reports whether the cursor sits in the checklist section.
func (v *todayView) onChecklist() bool {
	return v.cursor < len(v.items)
}

func (v *todayView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		total := len(v.items) + len(v.dueToday)
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < total-1 {
				v.cursor++
			}
		case " ":
			if total == 0 {
				break
			}
			ctx := context.Background()
			var err error
			if v.onChecklist() {
				err = v.state.App.Today.ToggleDone(ctx, v.items[v.cursor].ID)
			} else {
				err = v.state.App.Week.ToggleDone(ctx, v.dueToday[v.cursor-len(v.items)].ID)
			}
			if err != nil {
				return v, toastError(err)
			}
			v.reload()
		case "a":
			return v, pushView(newTodayFormView(v.state, nil))
		case "e":
			if v.onChecklist() && len(v.items) > 0 {
				return v, pushView(newTodayFormView(v.state, v.items[v.cursor]))
			}
		case "x":
			if v.onChecklist() && len(v.items) > 0 {
				it := v.items[v.cursor]
				app := v.state.App
				return v, pushView(newConfirmView(v.state,
					fmt.Sprintf("Delete item %q?", it.Title),
					func(ctx context.Context) tea.Cmd {
						if err := app.Today.Delete(ctx, it.ID); err != nil {
							return toastError(err)
						}
						return toastOK("Deleted " + it.Title)
					}))
			}
		}
	}
	return v, nil
}

func (v *todayView) View() string {
	var b strings.Builder

	now := v.state.App.Now()
	b.WriteString(formatter.StyleBold.Render(now.Format("Monday, January 2")))
	b.WriteString("\n\n")

	if len(v.items) == 0 {
		b.WriteString(formatter.Dim("  No checklist items. Press 'a' to add one."))
		b.WriteString("\n")
	}
	for i, it := range v.items {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("› ")
		}
		title := it.Title
		if it.Done {
			title = formatter.StyleStrike.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, formatter.Checkbox(it.Done), title))
	}

	if len(v.dueToday) > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.Dim("From the week"))
		b.WriteString("\n")
		for i, t := range v.dueToday {
			prefix := "  "
			if len(v.items)+i == v.cursor {
				prefix = formatter.StyleHeader.Render("› ")
			}
			title := t.Title
			if t.Done {
				title = formatter.StyleStrike.Render(title)
			}
			b.WriteString(fmt.Sprintf("%s%s %s  %s\n", prefix, formatter.Checkbox(t.Done), title,
				formatter.Dim(domain.HorizonLabel(t.HorizonID))))
		}
	}

	return b.String()
}
