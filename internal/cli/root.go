package cli

import (
	"time"

	"github.com/alexanderramin/plans/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals service.GoalService
	Week  service.WeekService
	Today service.TodayService
	Notes service.NoteService
	Data  service.DataService

	// Now supplies the current time for rendering; tests pin it.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. When it is, running
	// the bare command starts the TUI instead of printing help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "plans" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "plans",
		Short: "Offline-first planner for goals, weeks, days and notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newGoalCmd(app),
		newWeekCmd(app),
		newTodayCmd(app),
		newNoteCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newResetCmd(app),
	)

	return root
}
