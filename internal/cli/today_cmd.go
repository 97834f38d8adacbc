package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Manage today's checklist",
	}

	cmd.AddCommand(
		newTodayListCmd(app),
		newTodayAddCmd(app),
		newTodayEditCmd(app),
		newTodayDoneCmd(app),
		newTodayRemoveCmd(app),
	)

	return cmd
}

func newTodayListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show today's checklist and week tasks due today",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Roll stale done flags over before rendering.
			if _, err := app.Today.EnsureRollover(context.Background()); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatToday(app.Today.Items(), app.Today.TasksDueToday(), app.Now()))
			return nil
		},
	}
}

func newTodayAddCmd(app *App) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a checklist item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := app.Today.EnsureRollover(ctx); err != nil {
				return err
			}
			it, err := app.Today.Add(ctx, title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", it.Title, formatter.ShortID(it.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Item title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTodayEditCmd(app *App) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Rename a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTodayID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Today.Edit(context.Background(), id, title); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.ShortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Item title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTodayDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := app.Today.EnsureRollover(ctx); err != nil {
				return err
			}
			id, err := resolveTodayID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Today.ToggleDone(ctx, id); err != nil {
				return err
			}
			for _, it := range app.Today.Items() {
				if it.ID == id {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Checkbox(it.Done), it.Title)
				}
			}
			return nil
		},
	}
}

func newTodayRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTodayID(app, args[0])
			if err != nil {
				return err
			}
			var title string
			for _, it := range app.Today.Items() {
				if it.ID == id {
					title = it.Title
				}
			}
			if !confirmDelete(cmd, fmt.Sprintf("Delete item %q?", title), yes) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := app.Today.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s\n", formatter.ShortID(id))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
