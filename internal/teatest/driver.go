// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, a Driver calls Update directly and
// works through returned Cmds with an in-order message queue, so tests
// stay deterministic and never spawn the bubbletea event loop.
//
// Cmds that block on timer channels (cursor blink) are run with a short
// timeout and dropped when they fail to return in time.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrain caps how many messages one Send may produce. Hitting the cap
// almost always means two views are bouncing a message between them.
const maxDrain = 100

// cmdTimeout separates real Cmds (message factories, store reads, all
// sub-millisecond) from cursor blink Cmds that sleep for ~530ms.
const cmdTimeout = 10 * time.Millisecond

// Driver owns a model under test and the message queue feeding it.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records that tea.QuitMsg was produced. The runtime would
	// normally swallow it before the model sees it, so the driver tracks
	// it instead of relying on the model to.
	Quitting bool
}

// Option adjusts a Driver during New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else runs, the way
// the real runtime does on startup.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// New wraps a model in a Driver. Call DrainInit before sending keys so the
// model's Init command has run.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init())
}

// Send feeds one message through Update and then processes everything the
// model produces in response.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd)
}

// PressKey sends a printable character.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() { d.press(tea.KeyEnter) }
func (d *Driver) PressTab()   { d.press(tea.KeyTab) }
func (d *Driver) PressEsc()   { d.press(tea.KeyEsc) }
func (d *Driver) PressCtrlC() { d.press(tea.KeyCtrlC) }

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// View renders the model as it stands.
func (d *Driver) View() string {
	return d.Model.View()
}

// drain executes cmd and every follow-up it triggers, breadth-first, until
// the model settles.
func (d *Driver) drain(cmd tea.Cmd) {
	d.T.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps >= maxDrain {
			d.T.Logf("teatest: stopped after %d queued commands, likely a message loop", maxDrain)
			return
		}

		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg := runCmd(next)
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case tea.QuitMsg:
			d.Quitting = true
		}
		if isCursorBlink(msg) {
			continue
		}

		updated, followup := d.Model.Update(msg)
		d.Model = updated
		queue = append(queue, followup)
	}
}

// runCmd executes a Cmd off the test goroutine so a blocking one cannot
// hang the test; past the timeout its result is discarded.
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink message types from
// bubbles/cursor, which chain into sleeping Cmds if delivered.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(fmt.Sprintf("%T", msg), "link")
}
