package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"incubator/internal/bootstrap"
)

func newFeedbackCmd(configDir *string) *cobra.Command {
	feedback := &cobra.Command{Use: "feedback", Short: "Session feedback"}

	list := &cobra.Command{
		Use:   "list <session-id>",
		Short: "List feedback left on a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.FeedbackCLI.List(ctx, args[0])
				if err != nil {
					return err
				}
				printWarnings(cmd.ErrOrStderr(), out.Warnings)
				if len(out.Items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no feedback yet")
					return nil
				}
				for _, f := range out.Items {
					when := ""
					if !f.CreatedAt.IsZero() {
						when = f.CreatedAt.Format("2006-01-02 15:04")
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s: %s\n", f.ID, when, f.Author, f.Text)
				}
				return nil
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <session-id> <text>",
		Short: "Add feedback to a session",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				f, err := app.FeedbackCLI.Add(ctx, args[0], text)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added feedback %s\n", f.ID)
				return nil
			})
		},
	}

	update := &cobra.Command{
		Use:   "update <session-id> <feedback-id> <text>",
		Short: "Replace the text of a feedback entry",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[2:], " ")
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				f, err := app.FeedbackCLI.Update(ctx, args[0], args[1], text)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated feedback %s\n", f.ID)
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <session-id> <feedback-id>",
		Short: "Delete a feedback entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.FeedbackCLI.Delete(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted feedback %s\n", args[1])
				return nil
			})
		},
	}

	feedback.AddCommand(list, add, update, del)
	return feedback
}
