package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/plans/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		newNoteListCmd(app),
		newNoteShowCmd(app),
		newNoteAddCmd(app),
		newNoteEditCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNoteList(app.Notes.List()))
			return nil
		},
	}
}

func newNoteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a note's full body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNoteID(app, args[0])
			if err != nil {
				return err
			}
			n, err := app.Notes.Get(id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNote(n))
			return nil
		},
	}
}

func newNoteAddCmd(app *App) *cobra.Command {
	var title, body string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Notes.Add(context.Background(), title, body)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s (%s)\n", n.Title, formatter.ShortID(n.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&body, "body", "", "Note body")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newNoteEditCmd(app *App) *cobra.Command {
	var title, body string
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNoteID(app, args[0])
			if err != nil {
				return err
			}
			n, err := app.Notes.Get(id)
			if err != nil {
				return err
			}
			newTitle, newBody := n.Title, n.Body
			if cmd.Flags().Changed("title") {
				newTitle = title
			}
			if cmd.Flags().Changed("body") {
				newBody = body
			}
			if err := app.Notes.Edit(context.Background(), id, newTitle, newBody); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s\n", formatter.ShortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&body, "body", "", "Note body")
	return cmd
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNoteID(app, args[0])
			if err != nil {
				return err
			}
			n, err := app.Notes.Get(id)
			if err != nil {
				return err
			}
			if !confirmDelete(cmd, fmt.Sprintf("Delete note %q?", n.Title), yes) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := app.Notes.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s\n", formatter.ShortID(id))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
