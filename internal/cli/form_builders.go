package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	"github.com/alexanderramin/plans/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// plansHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func plansHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// validateOptionalDate accepts an empty string or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func toastError(err error) tea.Cmd {
	return showToast(formatter.StyleRed.Render("✗ " + err.Error()))
}

func toastOK(text string) tea.Cmd {
	return showToast(formatter.StyleGreen.Render("✔ ") + text)
}

func horizonOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.Horizons))
	for _, h := range domain.Horizons {
		options = append(options, huh.NewOption(h.Label, h.ID))
	}
	return options
}

func dayOptions() []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(domain.DayNames))
	for i, name := range domain.DayNames {
		options = append(options, huh.NewOption(name, i))
	}
	return options
}

// newGoalFormView builds the add/edit form for a goal. existing is nil for add.
func newGoalFormView(state *SharedState, horizonID string, existing *domain.Goal) View {
	var title, desc, due string
	formTitle := "New Goal"
	if existing != nil {
		formTitle = "Edit Goal"
		title = existing.Title
		desc = existing.Desc
		if existing.TargetDate != nil {
			due = existing.TargetDate.Format("2006-01-02")
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title).Validate(validateRequired),
			huh.NewInput().Title("Description (optional)").Value(&desc),
			huh.NewInput().
				Title("Target Date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-12-31").
				Value(&due).
				Validate(validateOptionalDate),
		),
	).WithTheme(plansHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			var target *time.Time
			if d := strings.TrimSpace(due); d != "" {
				parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
				if err != nil {
					return toastError(err)()
				}
				target = &parsed
			}
			if existing == nil {
				g, err := state.App.Goals.Add(ctx, horizonID, title, desc, target)
				if err != nil {
					return toastError(err)()
				}
				return toastOK("Added " + g.Title)()
			}
			if err := state.App.Goals.Edit(ctx, horizonID, existing.ID, title, desc, target); err != nil {
				return toastError(err)()
			}
			return toastOK("Updated " + strings.TrimSpace(title))()
		}
	}

	return newFormView(state, formTitle, form, done)
}

// newTaskFormView builds the add/edit form for a week task. existing is nil
// for add; day seeds the day picker for new tasks.
func newTaskFormView(state *SharedState, day int, existing *domain.WeekTask) View {
	var title, notes string
	horizonID := domain.DefaultHorizonID
	formTitle := "New Task"
	if existing != nil {
		formTitle = "Edit Task"
		title = existing.Title
		notes = existing.Notes
		day = existing.DayIndex
		horizonID = existing.HorizonID
	}
	if !domain.ValidDayIndex(day) {
		day = 0
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title).Validate(validateRequired),
			huh.NewSelect[int]().Title("Day").Options(dayOptions()...).Value(&day),
			huh.NewSelect[string]().Title("Horizon").Options(horizonOptions()...).Value(&horizonID),
			huh.NewText().Title("Notes (optional)").Value(&notes).Lines(3),
		),
	).WithTheme(plansHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			if existing == nil {
				t, err := state.App.Week.Add(ctx, title, notes, day, horizonID)
				if err != nil {
					return toastError(err)()
				}
				return toastOK("Added " + t.Title)()
			}
			if err := state.App.Week.Edit(ctx, existing.ID, title, notes, day, horizonID); err != nil {
				return toastError(err)()
			}
			return toastOK("Updated " + strings.TrimSpace(title))()
		}
	}

	return newFormView(state, formTitle, form, done)
}

// newTodayFormView builds the add/edit form for a checklist item.
func newTodayFormView(state *SharedState, existing *domain.TodayItem) View {
	var title string
	formTitle := "New Item"
	if existing != nil {
		formTitle = "Edit Item"
		title = existing.Title
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title).Validate(validateRequired),
		),
	).WithTheme(plansHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			if existing == nil {
				it, err := state.App.Today.Add(ctx, title)
				if err != nil {
					return toastError(err)()
				}
				return toastOK("Added " + it.Title)()
			}
			if err := state.App.Today.Edit(ctx, existing.ID, title); err != nil {
				return toastError(err)()
			}
			return toastOK("Updated " + strings.TrimSpace(title))()
		}
	}

	return newFormView(state, formTitle, form, done)
}

// newNoteFormView builds the add/edit form for a note.
func newNoteFormView(state *SharedState, existing *domain.Note) View {
	var title, body string
	formTitle := "New Note"
	if existing != nil {
		formTitle = "Edit Note"
		title = existing.Title
		body = existing.Body
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title).Validate(validateRequired),
			huh.NewText().Title("Body").Value(&body).Lines(8),
		),
	).WithTheme(plansHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			if existing == nil {
				n, err := state.App.Notes.Add(ctx, title, body)
				if err != nil {
					return toastError(err)()
				}
				return toastOK("Added " + n.Title)()
			}
			if err := state.App.Notes.Edit(ctx, existing.ID, title, body); err != nil {
				return toastError(err)()
			}
			return toastOK("Updated " + strings.TrimSpace(title))()
		}
	}

	return newFormView(state, formTitle, form, done)
}

// newErrorDialogView shows a blocking error dialog; enter or esc dismisses it
// and nothing else gets the keyboard until then.
func newErrorDialogView(state *SharedState, title string, err error) View {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title).Description(err.Error()),
		),
	).WithTheme(plansHuhTheme()).WithShowHelp(false)
	return newFormView(state, title, form, nil)
}

// newConfirmView asks a yes/no question before running action. Declining
// leaves everything untouched.
func newConfirmView(state *SharedState, question string, action func(ctx context.Context) tea.Cmd) View {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(plansHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			if !confirmed {
				return showToast(formatter.Dim("Cancelled."))()
			}
			return action(context.Background())()
		}
	}

	return newFormView(state, "Confirm", form, done)
}
