package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	"github.com/alexanderramin/plans/internal/domain"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Manage this week's tasks",
	}

	cmd.AddCommand(
		newWeekListCmd(app),
		newWeekAddCmd(app),
		newWeekEditCmd(app),
		newWeekDoneCmd(app),
		newWeekRemoveCmd(app),
	)

	return cmd
}

func newWeekListCmd(app *App) *cobra.Command {
	var dayFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the week board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dayFlag != "" {
				day, err := parseDay(dayFlag)
				if err != nil {
					return err
				}
				for _, t := range app.Week.TasksForDay(day) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskLine(t))
				}
				return nil
			}
			monday := domain.MondayOf(app.Now())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(app.Week.Tasks(), monday))
			return nil
		},
	}
	cmd.Flags().StringVar(&dayFlag, "day", "", "Show one day only (0-6 or day name)")
	return cmd
}

func newWeekAddCmd(app *App) *cobra.Command {
	var title, notes, dayFlag, horizonFlag string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a week task",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(dayFlag)
			if err != nil {
				return err
			}
			horizonID := horizonFlag
			if horizonID == "" {
				horizonID = domain.DefaultHorizonID
			}
			t, err := app.Week.Add(context.Background(), title, notes, day, horizonID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s (%s, %s)\n",
				t.Title, formatter.ShortID(t.ID), domain.DayNames[t.DayIndex])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&dayFlag, "day", "", "Weekday (0-6 with Monday=0, or a day name)")
	cmd.Flags().StringVar(&horizonFlag, "horizon", "", "Linked horizon ID (default h1)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newWeekEditCmd(app *App) *cobra.Command {
	var title, notes, dayFlag, horizonFlag string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a week task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Week.Get(id)
			if err != nil {
				return err
			}

			newTitle, newNotes, day, horizonID := t.Title, t.Notes, t.DayIndex, t.HorizonID
			if cmd.Flags().Changed("title") {
				newTitle = title
			}
			if cmd.Flags().Changed("notes") {
				newNotes = notes
			}
			if cmd.Flags().Changed("day") {
				if day, err = parseDay(dayFlag); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("horizon") {
				horizonID = horizonFlag
			}

			if err := app.Week.Edit(context.Background(), id, newTitle, newNotes, day, horizonID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", formatter.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&dayFlag, "day", "", "Weekday (0-6 with Monday=0, or a day name)")
	cmd.Flags().StringVar(&horizonFlag, "horizon", "", "Linked horizon ID")

	return cmd
}

func newWeekDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a week task's done state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Week.ToggleDone(context.Background(), id); err != nil {
				return err
			}
			t, err := app.Week.Get(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Checkbox(t.Done), t.Title)
			return nil
		},
	}
}

func newWeekRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a week task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Week.Get(id)
			if err != nil {
				return err
			}
			if !confirmDelete(cmd, fmt.Sprintf("Delete task %q?", t.Title), yes) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := app.Week.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", formatter.ShortID(id))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
