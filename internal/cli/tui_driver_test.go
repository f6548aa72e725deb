package cli

import (
	"testing"

	"github.com/alexanderramin/quota/internal/navigation"
	"github.com/alexanderramin/quota/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for the planner
// TUI. It can see appModel internals (view stack, last output) that the
// generic driver can't.
type TestDriver struct {
	*teatest.Driver
	app *App
}

// NewTestDriver creates a TestDriver from a test App at 120x40.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, app: app}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// LastOutput returns the flash line shown under the active view.
func (d *TestDriver) LastOutput() string {
	return stripANSI(d.appModel().lastOutput)
}

// Crumbs returns the planner's breadcrumb trail.
func (d *TestDriver) Crumbs() []navigation.Crumb {
	return d.app.Planner.Breadcrumbs()
}

// Cursor returns the level view's cursor row.
func (d *TestDriver) Cursor() int {
	return d.appModel().viewStack[0].(*levelView).cursor
}

// IsQuitting reports whether the model or the driver saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}

// Screen returns the rendered view without styling.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}
