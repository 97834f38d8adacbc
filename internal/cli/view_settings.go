package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// settingsView exposes the data operations: export, import and the
// full reset.
type settingsView struct {
	state  *SharedState
	cursor int
}

var settingsActions = []string{
	"Export data to plans-export.json",
	"Import data from a JSON file",
	"Reset all data",
}

func newSettingsView(state *SharedState) *settingsView {
	return &settingsView{state: state}
}

func (v *settingsView) ID() ViewID    { return ViewSettings }
func (v *settingsView) Title() string { return "Settings" }

func (v *settingsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	}
}

func (v *settingsView) Init() tea.Cmd { return nil }

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(settingsActions)-1 {
			v.cursor++
		}
	case "enter":
		app := v.state.App
		switch v.cursor {
		case 0:
			return v, func() tea.Msg {
				path, err := app.Data.Export(context.Background(), ".")
				if err != nil {
					return toastError(err)()
				}
				return toastOK("Exported to " + path)()
			}
		case 1:
			return v, pushView(newImportFormView(v.state))
		case 2:
			return v, pushView(newConfirmView(v.state,
				"Erase ALL goals, tasks and notes?",
				func(ctx context.Context) tea.Cmd {
					if err := app.Data.Reset(ctx); err != nil {
						return toastError(err)
					}
					// Land on the home view of the fresh document.
					return tea.Batch(toastOK("All data reset to defaults."),
						func() tea.Msg { return gotoHorizonsMsg{} })
				}))
		}
	}
	return v, nil
}

func (v *settingsView) View() string {
	var b strings.Builder

	for i, action := range settingsActions {
		prefix := "  "
		label := action
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("› ")
			label = formatter.StyleBold.Render(action)
		}
		b.WriteString(prefix + label + "\n")
	}

	b.WriteString("\n")
	if last := v.state.App.Data.LastSaved(); !last.IsZero() {
		b.WriteString(formatter.Dim("Last saved " + last.Local().Format("Jan 2, 2006 15:04")))
		b.WriteString("\n")
	}

	return b.String()
}

// newImportFormView collects a file path, then replaces the document from
// that file. A failed import leaves the current data untouched.
func newImportFormView(state *SharedState) View {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Import file path").
				Placeholder("plans-export.json").
				Value(&path).
				Validate(validateRequired),
		),
	).WithTheme(plansHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			if err := state.App.Data.Import(context.Background(), strings.TrimSpace(path)); err != nil {
				// Existing data is untouched; block until acknowledged.
				return pushView(newErrorDialogView(state, "Import failed", err))()
			}
			return toastOK("Imported " + strings.TrimSpace(path))()
		}
	}

	return newFormView(state, "Import", form, done)
}
