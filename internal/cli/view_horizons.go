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

// horizonsView shows the goals of one horizon at a time, with the horizon
// pills across the top. Switching pills persists the selection.
type horizonsView struct {
	state  *SharedState
	goals  []*domain.Goal
	cursor int
}

func newHorizonsView(state *SharedState) *horizonsView {
	return &horizonsView{state: state}
}

func (v *horizonsView) ID() ViewID    { return ViewHorizons }
func (v *horizonsView) Title() string { return "Horizons" }

func (v *horizonsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "switch horizon")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add goal")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *horizonsView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *horizonsView) reload() {
	v.goals = v.state.App.Goals.List(v.selected().ID)
	if v.cursor >= len(v.goals) {
		v.cursor = len(v.goals) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *horizonsView) selected() domain.Horizon {
	return v.state.App.Goals.SelectedHorizon()
}

// switchHorizon moves the active pill by delta and persists the selection.
func (v *horizonsView) switchHorizon(delta int) tea.Cmd {
	cur := v.selected().ID
	idx := 0
	for i, h := range domain.Horizons {
		if h.ID == cur {
			idx = i
		}
	}
	next := domain.Horizons[(idx+delta+len(domain.Horizons))%len(domain.Horizons)]
	if err := v.state.App.Goals.SelectHorizon(context.Background(), next.ID); err != nil {
		return toastError(err)
	}
	v.cursor = 0
	v.reload()
	return nil
}

func (v *horizonsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if v.cursor < len(v.goals)-1 {
				v.cursor++
			}
		case "left", "h":
			return v, v.switchHorizon(-1)
		case "right", "l":
			return v, v.switchHorizon(1)
		case " ":
			if v.cursor < len(v.goals) {
				g := v.goals[v.cursor]
				if err := v.state.App.Goals.ToggleDone(context.Background(), v.selected().ID, g.ID); err != nil {
					return v, toastError(err)
				}
				v.reload()
			}
		case "a":
			return v, pushView(newGoalFormView(v.state, v.selected().ID, nil))
		case "e":
			if v.cursor < len(v.goals) {
				return v, pushView(newGoalFormView(v.state, v.selected().ID, v.goals[v.cursor]))
			}
		case "x":
			if v.cursor < len(v.goals) {
				g := v.goals[v.cursor]
				horizonID := v.selected().ID
				app := v.state.App
				return v, pushView(newConfirmView(v.state,
					fmt.Sprintf("Delete goal %q?", g.Title),
					func(ctx context.Context) tea.Cmd {
						if err := app.Goals.Delete(ctx, horizonID, g.ID); err != nil {
							return toastError(err)
						}
						return toastOK("Deleted " + g.Title)
					}))
			}
		}
	}
	return v, nil
}

func (v *horizonsView) View() string {
	var b strings.Builder

	// Horizon pills.
	cur := v.selected().ID
	var pills []string
	for _, h := range domain.Horizons {
		if h.ID == cur {
			pills = append(pills, formatter.StyleHeader.Render("["+h.Label+"]"))
		} else {
			pills = append(pills, formatter.Dim(" "+h.Label+" "))
		}
	}
	b.WriteString(strings.Join(pills, " "))
	b.WriteString("\n\n")

	if len(v.goals) == 0 {
		b.WriteString(formatter.Dim("  No goals yet. Press 'a' to add one."))
		b.WriteString("\n")
		return b.String()
	}

	for i, g := range v.goals {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("› ")
		}
		title := g.Title
		if g.Done {
			title = formatter.StyleStrike.Render(title)
		}
		line := fmt.Sprintf("%s%s %s", prefix, formatter.Checkbox(g.Done), title)
		if g.TargetDate != nil {
			line += "  " + formatter.StyleYellow.Render("due "+g.TargetDate.Format("2006-01-02"))
		}
		b.WriteString(line)
		b.WriteString("\n")
		if g.Desc != "" {
			b.WriteString("      " + formatter.Dim(g.Desc) + "\n")
		}
	}

	return b.String()
}
