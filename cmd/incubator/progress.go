package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"incubator/internal/bootstrap"
	progressdto "incubator/internal/modules/progress/dto"
)

var slotFlags = [4]string{"research", "development", "testing", "documentation"}

func newProgressCmd(configDir *string) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Project progress"}

	var showProject string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show global progress, module progress and recent sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, showProject)
				if err != nil {
					return err
				}
				out, err := app.ProgressCLI.Overview(ctx, id)
				if err != nil {
					return err
				}
				printWarnings(cmd.ErrOrStderr(), out.Warnings)
				w := cmd.OutOrStdout()
				if out.Unassigned {
					_, _ = fmt.Fprintln(w, "no project assigned yet")
					return nil
				}
				_, _ = fmt.Fprintf(w, "project=%s name=%q\n", out.ProjectID, out.ProjectName)
				_, _ = fmt.Fprintf(w, "global=%d%% modules=%d%%\n", out.GlobalProgress, out.ModuleProgress)
				for i, label := range out.Labels {
					_, _ = fmt.Fprintf(w, "  %-14s %3d%%\n", label, out.Modules[i])
				}
				if len(out.Sessions) == 0 {
					_, _ = fmt.Fprintln(w, "no sessions yet")
					return nil
				}
				for _, s := range out.Sessions {
					_, _ = fmt.Fprintf(w, "session %s date=%s global=%d%%\n", s.ID, s.Date, s.Global)
				}
				return nil
			})
		},
	}
	show.Flags().StringVar(&showProject, "project", "", "project id (defaults to the resolved project)")

	var modulesProject string
	modules := &cobra.Command{
		Use:   "modules",
		Short: "List module percentages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, modulesProject)
				if err != nil {
					return err
				}
				out, err := app.ProgressCLI.Modules(ctx, id)
				if err != nil {
					return err
				}
				printWarnings(cmd.ErrOrStderr(), out.Warnings)
				for _, m := range out.Modules {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-14s %3d%% %s\n", m.Name, m.Percentage, m.Status)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "global=%d%%\n", out.Global)
				return nil
			})
		},
	}
	modules.Flags().StringVar(&modulesProject, "project", "", "project id (defaults to the resolved project)")

	var setProject string
	set := &cobra.Command{
		Use:   "set <module> <percent>",
		Short: "Set one module percentage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			percent, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("percent must be an integer: %q", args[1])
			}
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, setProject)
				if err != nil {
					return err
				}
				m, err := app.ProgressCLI.SetModule(ctx, id, args[0], percent)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s=%d%%\n", m.Name, m.Percentage)
				return nil
			})
		},
	}
	set.Flags().StringVar(&setProject, "project", "", "project id (defaults to the resolved project)")

	var setAllProject string
	setAll := &cobra.Command{
		Use:   "set-all <research> <development> <testing> <documentation>",
		Short: "Set all four module percentages at once",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var percentages [4]int
			for i, raw := range args {
				v, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("%s must be an integer: %q", slotFlags[i], raw)
				}
				percentages[i] = v
			}
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, setAllProject)
				if err != nil {
					return err
				}
				out, err := app.ProgressCLI.SetAllModules(ctx, id, percentages)
				if err != nil {
					return err
				}
				for _, m := range out {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s=%d%%\n", m.Name, m.Percentage)
				}
				return nil
			})
		},
	}
	setAll.Flags().StringVar(&setAllProject, "project", "", "project id (defaults to the resolved project)")

	progress.AddCommand(show, modules, set, setAll)
	return progress
}

func newSessionCmd(configDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Progress sessions"}

	var listProject string
	list := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, listProject)
				if err != nil {
					return err
				}
				out, err := app.ProgressCLI.Sessions(ctx, id)
				if err != nil {
					return err
				}
				printWarnings(cmd.ErrOrStderr(), out.Warnings)
				if len(out.Sessions) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions yet")
					return nil
				}
				for _, s := range out.Sessions {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s date=%s global=%d%% modules=%s\n", s.ID, s.Date, s.Global, strings.Join(s.Modules[:], "/"))
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&listProject, "project", "", "project id (defaults to the resolved project)")

	var showProject string
	show := &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show one session with modules filled from current progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, showProject)
				if err != nil {
					return err
				}
				progress, s, err := app.ProgressCLI.Session(ctx, id, args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "session=%s date=%s global=%d%%\n", progress.SessionID, progress.Date, progress.Global)
				for i, label := range progress.Labels {
					_, _ = fmt.Fprintf(w, "  %-14s %3d%%\n", label, progress.Percentages[i])
				}
				if strings.TrimSpace(s.Summary) != "" {
					_, _ = fmt.Fprintf(w, "summary=%q\n", s.Summary)
				}
				if strings.TrimSpace(s.Feedback) != "" {
					_, _ = fmt.Fprintf(w, "feedback=%q\n", s.Feedback)
				}
				return nil
			})
		},
	}
	show.Flags().StringVar(&showProject, "project", "", "project id (defaults to the resolved project)")

	var createProject string
	var draft progressdto.CreateSessionInput
	create := &cobra.Command{
		Use:   "create --date <date>",
		Short: "Record a progress session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(draft.Date) == "" {
				return fmt.Errorf("--date is required")
			}
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, createProject)
				if err != nil {
					return err
				}
				draft.ProjectID = id
				s, err := app.ProgressCLI.CreateSession(ctx, draft)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created session %s date=%s global=%d%%\n", s.ID, s.Date, s.Global)
				return nil
			})
		},
	}
	create.Flags().StringVar(&createProject, "project", "", "project id (defaults to the resolved project)")
	create.Flags().StringVar(&draft.Date, "date", "", "session date (YYYY-MM-DD)")
	create.Flags().StringVar(&draft.Summary, "summary", "", "session summary")
	create.Flags().StringVar(&draft.Feedback, "feedback", "", "supervisor feedback")
	for i, name := range slotFlags {
		create.Flags().StringVar(&draft.Modules[i], name, "", name+" percentage (blank is 0)")
	}

	session.AddCommand(list, show, create, newSessionUpdateCmd(configDir), newSessionDeleteCmd(configDir))
	return session
}

func newSessionUpdateCmd(configDir *string) *cobra.Command {
	var projectID, date, summary, feedback string
	var modules [4]string
	cmd := &cobra.Command{
		Use:   "update <session-id>",
		Short: "Update session fields; unset flags are left untouched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := progressdto.UpdateSessionInput{SessionID: args[0]}
			if cmd.Flags().Changed("date") {
				input.Date = &date
			}
			if cmd.Flags().Changed("summary") {
				input.Summary = &summary
			}
			if cmd.Flags().Changed("feedback") {
				input.Feedback = &feedback
			}
			for i, name := range slotFlags {
				if cmd.Flags().Changed(name) {
					input.Modules[i] = &modules[i]
				}
			}
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, projectID)
				if err != nil {
					return err
				}
				input.ProjectID = id
				s, err := app.ProgressCLI.UpdateSession(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated session %s date=%s global=%d%%\n", s.ID, s.Date, s.Global)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "project id (defaults to the resolved project)")
	cmd.Flags().StringVar(&date, "date", "", "session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&summary, "summary", "", "session summary")
	cmd.Flags().StringVar(&feedback, "feedback", "", "supervisor feedback")
	for i, name := range slotFlags {
		cmd.Flags().StringVar(&modules[i], name, "", name+" percentage")
	}
	return cmd
}

func newSessionDeleteCmd(configDir *string) *cobra.Command {
	var projectID string
	cmd := &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, projectID)
				if err != nil {
					return err
				}
				if err := app.ProgressCLI.DeleteSession(ctx, id, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted session %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "project id (defaults to the resolved project)")
	return cmd
}
