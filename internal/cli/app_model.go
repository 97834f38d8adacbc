package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI. One of the five tab views
// is always active at the bottom of the view stack; forms and the note reader
// are pushed on top of it.
type appModel struct {
	state    *SharedState
	tabs     []View
	active   int
	overlays []View
	quitting bool

	// Transient status line shown above the help bar.
	toast    string
	toastSeq int
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state: state,
		tabs: []View{
			newHorizonsView(state),
			newWeekView(state),
			newTodayView(state),
			newNotesView(state),
			newSettingsView(state),
		},
	}
}

// runTUI starts the full-screen interactive session.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// activeView returns the topmost view: the last overlay, or the active tab.
func (m *appModel) activeView() View {
	if len(m.overlays) > 0 {
		return m.overlays[len(m.overlays)-1]
	}
	return m.tabs[m.active]
}

// setActiveView writes back the updated topmost view.
func (m *appModel) setActiveView(v View) {
	if len(m.overlays) > 0 {
		m.overlays[len(m.overlays)-1] = v
	} else {
		m.tabs[m.active] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.tabs[m.active].Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		updated, cmd := m.activeView().Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.overlays = append(m.overlays, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.overlays) > 0 {
			m.overlays = m.overlays[:len(m.overlays)-1]
		}
		return m, nil

	case refreshViewMsg:
		// Broadcast to every tab so views beneath an overlay reload data
		// mutated above them.
		var cmds []tea.Cmd
		for i, v := range m.tabs {
			updated, cmd := v.Update(msg)
			m.tabs[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case formDoneMsg:
		// Atomically pop the form, run its follow-up, and refresh the tabs.
		if len(m.overlays) > 0 {
			m.overlays = m.overlays[:len(m.overlays)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())

	case toastMsg:
		m.toast = msg.text
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return toastExpireMsg{seq: seq}
		})

	case gotoHorizonsMsg:
		m.overlays = nil
		m.active = 0
		return m, m.tabs[0].Init()

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	updated, cmd := m.activeView().Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms own the keyboard while open; only esc (handled inside the form
	// view) and ctrl+c escape them.
	if len(m.overlays) > 0 {
		v := m.overlays[len(m.overlays)-1]
		if v.ID() == ViewForm {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		if msg.Type == tea.KeyEsc {
			m.overlays = m.overlays[:len(m.overlays)-1]
			return m, nil
		}
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.switchTab((m.active + 1) % len(m.tabs))
	case "shift+tab":
		return m.switchTab((m.active + len(m.tabs) - 1) % len(m.tabs))
	case "1", "2", "3", "4", "5":
		return m.switchTab(int(msg.String()[0] - '1'))
	}

	updated, cmd := m.activeView().Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) switchTab(i int) (tea.Model, tea.Cmd) {
	if i == m.active {
		return m, nil
	}
	m.active = i
	m.toast = ""
	return m, m.tabs[i].Init()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.activeView().View(),
		m.renderStatusBar(),
	}

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	parts := []string{formatter.StylePurple.Render("plans")}
	for i, v := range m.tabs {
		label := v.Title()
		if i == m.active && len(m.overlays) == 0 {
			parts = append(parts, formatter.StyleHeader.Render(label))
		} else {
			parts = append(parts, formatter.Dim(label))
		}
	}
	if len(m.overlays) > 0 {
		top := m.overlays[len(m.overlays)-1]
		parts = append(parts, formatter.Dim("›"), top.Title())
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return strings.Join(parts, "  ") + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.toast != "" {
		hints = append(hints, m.toast)
	} else {
		for _, b := range m.activeView().ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if len(m.overlays) == 0 {
			hints = append(hints, formatter.Dim("tab: next view"), formatter.Dim("q: quit"))
		}
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
