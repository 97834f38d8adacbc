package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	"github.com/alexanderramin/plans/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals by horizon",
	}

	cmd.AddCommand(
		newGoalListCmd(app),
		newGoalAddCmd(app),
		newGoalEditCmd(app),
		newGoalDoneCmd(app),
		newGoalRemoveCmd(app),
		newGoalSelectCmd(app),
	)

	return cmd
}

// goalHorizon resolves the --horizon flag, falling back to the persisted
// selection when the flag is absent.
func goalHorizon(app *App, flag string) (string, error) {
	if flag == "" {
		return app.Goals.SelectedHorizon().ID, nil
	}
	if !domain.ValidHorizonID(flag) {
		return "", fmt.Errorf("unknown horizon %q (use h1, h3, h5, h10, h15 or h20)", flag)
	}
	return flag, nil
}

func newGoalListCmd(app *App) *cobra.Command {
	var horizonFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals for a horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			horizonID, err := goalHorizon(app, horizonFlag)
			if err != nil {
				return err
			}
			var horizon domain.Horizon
			for _, h := range domain.Horizons {
				if h.ID == horizonID {
					horizon = h
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalList(horizon, app.Goals.List(horizonID)))
			return nil
		},
	}
	cmd.Flags().StringVar(&horizonFlag, "horizon", "", "Horizon ID (h1|h3|h5|h10|h15|h20)")
	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var horizonFlag, title, desc, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			horizonID, err := goalHorizon(app, horizonFlag)
			if err != nil {
				return err
			}
			var target *time.Time
			if due != "" {
				d, err := time.ParseInLocation("2006-01-02", due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due date %q (use YYYY-MM-DD)", due)
				}
				target = &d
			}
			g, err := app.Goals.Add(context.Background(), horizonID, title, desc, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s (%s)\n", g.Title, formatter.ShortID(g.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&horizonFlag, "horizon", "", "Horizon ID (h1|h3|h5|h10|h15|h20)")
	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&desc, "desc", "", "Goal description")
	cmd.Flags().StringVar(&due, "due", "", "Target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newGoalEditCmd(app *App) *cobra.Command {
	var horizonFlag, title, desc, due string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			horizonID, err := goalHorizon(app, horizonFlag)
			if err != nil {
				return err
			}
			id, err := resolveGoalID(app, horizonID, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.Get(horizonID, id)
			if err != nil {
				return err
			}

			newTitle, newDesc, target := g.Title, g.Desc, g.TargetDate
			if cmd.Flags().Changed("title") {
				newTitle = title
			}
			if cmd.Flags().Changed("desc") {
				newDesc = desc
			}
			if cmd.Flags().Changed("due") {
				if strings.TrimSpace(due) == "" {
					target = nil
				} else {
					d, err := time.ParseInLocation("2006-01-02", due, time.Local)
					if err != nil {
						return fmt.Errorf("invalid due date %q (use YYYY-MM-DD)", due)
					}
					target = &d
				}
			}

			if err := app.Goals.Edit(context.Background(), horizonID, id, newTitle, newDesc, target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s\n", formatter.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&horizonFlag, "horizon", "", "Horizon ID (h1|h3|h5|h10|h15|h20)")
	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&desc, "desc", "", "Goal description")
	cmd.Flags().StringVar(&due, "due", "", "Target date (YYYY-MM-DD, empty clears)")

	return cmd
}

func newGoalDoneCmd(app *App) *cobra.Command {
	var horizonFlag string
	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a goal's done state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			horizonID, err := goalHorizon(app, horizonFlag)
			if err != nil {
				return err
			}
			id, err := resolveGoalID(app, horizonID, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.ToggleDone(context.Background(), horizonID, id); err != nil {
				return err
			}
			g, err := app.Goals.Get(horizonID, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Checkbox(g.Done), g.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&horizonFlag, "horizon", "", "Horizon ID (h1|h3|h5|h10|h15|h20)")
	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var horizonFlag string
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			horizonID, err := goalHorizon(app, horizonFlag)
			if err != nil {
				return err
			}
			id, err := resolveGoalID(app, horizonID, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.Get(horizonID, id)
			if err != nil {
				return err
			}
			if !confirmDelete(cmd, fmt.Sprintf("Delete goal %q?", g.Title), yes) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := app.Goals.Delete(context.Background(), horizonID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", formatter.ShortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&horizonFlag, "horizon", "", "Horizon ID (h1|h3|h5|h10|h15|h20)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}

func newGoalSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select HORIZON",
		Short: "Select the active horizon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Goals.SelectHorizon(context.Background(), args[0]); err != nil {
				return err
			}
			h := app.Goals.SelectedHorizon()
			fmt.Fprintf(cmd.OutOrStdout(), "Selected horizon %s (%s)\n", h.ID, h.Label)
			return nil
		},
	}
}
