package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	"github.com/alexanderramin/plans/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// notesView lists notes newest first. Enter opens a read-only view of the
// selected note's full body.
type notesView struct {
	state  *SharedState
	notes  []*domain.Note
	cursor int
}

func newNotesView(state *SharedState) *notesView {
	return &notesView{state: state}
}

func (v *notesView) ID() ViewID    { return ViewNotes }
func (v *notesView) Title() string { return "Notes" }

func (v *notesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add note")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *notesView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *notesView) reload() {
	v.notes = v.state.App.Notes.List()
	if v.cursor >= len(v.notes) {
		v.cursor = len(v.notes) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *notesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if v.cursor < len(v.notes)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.notes) {
				return v, pushView(newNoteReadView(v.state, v.notes[v.cursor].ID))
			}
		case "a":
			return v, pushView(newNoteFormView(v.state, nil))
		case "e":
			if v.cursor < len(v.notes) {
				return v, pushView(newNoteFormView(v.state, v.notes[v.cursor]))
			}
		case "x":
			if v.cursor < len(v.notes) {
				n := v.notes[v.cursor]
				app := v.state.App
				return v, pushView(newConfirmView(v.state,
					fmt.Sprintf("Delete note %q?", n.Title),
					func(ctx context.Context) tea.Cmd {
						if err := app.Notes.Delete(ctx, n.ID); err != nil {
							return toastError(err)
						}
						return toastOK("Deleted " + n.Title)
					}))
			}
		}
	}
	return v, nil
}

func (v *notesView) View() string {
	var b strings.Builder

	if len(v.notes) == 0 {
		b.WriteString(formatter.Dim("  No notes yet. Press 'a' to add one."))
		b.WriteString("\n")
		return b.String()
	}

	for i, n := range v.notes {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("› ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", prefix, formatter.StyleBold.Render(n.Title),
			formatter.Dim(n.UpdatedAt.Format("Jan 2, 2006"))))
	}

	return b.String()
}

// noteReadView shows one note's full body read-only, scrollable through a
// viewport for bodies taller than the content area. Esc returns to the list.
type noteReadView struct {
	state  *SharedState
	noteID string
	vp     viewport.Model
}

func newNoteReadView(state *SharedState, noteID string) *noteReadView {
	return &noteReadView{state: state, noteID: noteID, vp: viewport.New(0, 0)}
}

func (v *noteReadView) ID() ViewID    { return ViewNoteRead }
func (v *noteReadView) Title() string { return "Note" }

func (v *noteReadView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "scroll")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *noteReadView) Init() tea.Cmd {
	v.vp.GotoTop()
	return nil
}

func (v *noteReadView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "e":
			if n, err := v.state.App.Notes.Get(v.noteID); err == nil {
				return v, pushView(newNoteFormView(v.state, n))
			}
			return v, nil
		case "q":
			return v, popView()
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *noteReadView) View() string {
	n, err := v.state.App.Notes.Get(v.noteID)
	if err != nil {
		return formatter.Dim("  Note no longer exists.")
	}

	header := formatter.StyleBold.Render(n.Title) + "\n" +
		formatter.Dim("Updated "+n.UpdatedAt.Format("Jan 2, 2006 15:04")) + "\n"

	body := n.Body
	if strings.TrimSpace(body) == "" {
		body = formatter.Dim("—")
	}

	// Content and size are refreshed on every render so an edit saved above
	// this view shows up without an explicit reload message. SetContent
	// clamps the scroll offset when the body shrinks.
	v.vp.Width = max(v.state.Width, 20)
	v.vp.Height = max(v.state.ContentHeight()-2, 1)
	v.vp.SetContent(body)

	return header + v.vp.View()
}
