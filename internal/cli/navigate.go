package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg tells every view on the stack to reload its data from the
// services. Broadcast after any mutation so tab views below a form pick up
// the change.
type refreshViewMsg struct{}

// toastMsg shows a transient one-line status message above the help bar.
type toastMsg struct {
	text string
}

// toastExpireMsg clears the toast; seq guards against stale timers.
type toastExpireMsg struct {
	seq int
}

// formDoneMsg is sent when a form completes or is cancelled. The appModel
// handles it atomically: pop the form view, run nextCmd, then refresh.
type formDoneMsg struct {
	nextCmd tea.Cmd
}

// gotoHorizonsMsg switches the shell back to the Horizons tab. Sent after a
// reset so the user lands on the home view of the fresh document.
type gotoHorizonsMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// refreshViews returns a tea.Cmd that broadcasts a data reload.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// showToast returns a tea.Cmd that displays a transient status line.
func showToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}
