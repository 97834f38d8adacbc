package cli

import (
	"testing"

	"github.com/alexanderramin/plans/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (active tab, overlay stack, toast) that the generic driver
// can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel for a test App, sets the terminal
// size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the topmost view.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// OverlayLen returns the number of views stacked above the active tab.
func (d *TestDriver) OverlayLen() int {
	return len(d.appModel().overlays)
}

// Toast returns the current transient status line.
func (d *TestDriver) Toast() string {
	return d.appModel().toast
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
