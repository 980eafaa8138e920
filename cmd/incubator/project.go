package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"incubator/internal/bootstrap"
	projectdto "incubator/internal/modules/project/dto"
)

func newProjectCmd(configDir *string) *cobra.Command {
	project := &cobra.Command{Use: "project", Short: "Project operations"}

	var explicitID string
	var refresh bool
	resolve := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the project the current user works on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProjectCLI.Resolve(ctx, explicitID, refresh)
				if err != nil {
					return err
				}
				if out.Warning != "" {
					printWarnings(cmd.ErrOrStderr(), []string{out.Warning})
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "project=%s source=%s unassigned=%t\n", out.ProjectID, out.Source, out.Unassigned)
				return nil
			})
		},
	}
	resolve.Flags().StringVar(&explicitID, "id", "", "explicit project id to select")
	resolve.Flags().BoolVar(&refresh, "refresh", false, "ignore the cached project id")

	var showID string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show project details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				projectID, err := resolveProject(ctx, cmd, app, showID)
				if err != nil {
					return err
				}
				p, err := app.ProjectCLI.Show(ctx, projectID)
				if err != nil {
					return err
				}
				printProject(cmd, p)
				return nil
			})
		},
	}
	show.Flags().StringVar(&showID, "project", "", "project id (defaults to the resolved project)")

	var withoutSupervisors bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				projects, summaries, err := app.ProjectCLI.List(ctx, withoutSupervisors)
				if err != nil {
					return err
				}
				if withoutSupervisors {
					printWarnings(cmd.ErrOrStderr(), summaries.Warnings)
					if len(summaries.Projects) == 0 {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no projects")
					}
					for _, s := range summaries.Projects {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %q members=%d\n", s.ID, s.Name, s.MembersCount)
					}
					return nil
				}
				printProjectList(cmd, projects)
				return nil
			})
		},
	}
	list.Flags().BoolVar(&withoutSupervisors, "without-supervisors", false, "only projects that have no supervisor yet")

	search := &cobra.Command{
		Use:   "search <name>",
		Short: "Search projects by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProjectCLI.Search(ctx, args[0])
				if err != nil {
					return err
				}
				printProjectList(cmd, out)
				return nil
			})
		},
	}

	var draft projectdto.CreateProjectInput
	var memberEmails, supervisorEmails []string
	create := &cobra.Command{
		Use:   "create --name <name>",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(draft.Name) == "" {
				return fmt.Errorf("--name is required")
			}
			draft.MemberEmails = memberEmails
			draft.SupervisorEmails = supervisorEmails
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				p, err := app.ProjectCLI.Create(ctx, draft)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created project %s %q\n", p.ID, p.Name)
				return nil
			})
		},
	}
	create.Flags().StringVar(&draft.Name, "name", "", "project name")
	create.Flags().StringVar(&draft.Industry, "industry", "", "industry")
	create.Flags().StringVar(&draft.About, "about", "", "short description")
	create.Flags().StringVar(&draft.Problem, "problem", "", "problem statement")
	create.Flags().StringVar(&draft.Solution, "solution", "", "proposed solution")
	create.Flags().StringVar(&draft.Idea, "idea", "", "idea")
	create.Flags().StringVar(&draft.TargetAudience, "target-audience", "", "target audience")
	create.Flags().StringVar(&draft.CompetitiveAdvantage, "competitive-advantage", "", "competitive advantage")
	create.Flags().StringVar(&draft.Motivation, "motivation", "", "motivation")
	create.Flags().StringVar(&draft.Stage, "stage", "", "current stage")
	create.Flags().StringSliceVar(&memberEmails, "member", nil, "member email (repeatable)")
	create.Flags().StringSliceVar(&supervisorEmails, "supervisor", nil, "supervisor email (repeatable)")

	update := newProjectUpdateCmd(configDir)

	var deleteID string
	del := &cobra.Command{
		Use:   "delete --project <id>",
		Short: "Delete a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--project is required")
			}
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ProjectCLI.Delete(ctx, deleteID); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted project %s\n", deleteID)
				return nil
			})
		},
	}
	del.Flags().StringVar(&deleteID, "project", "", "project id")

	project.AddCommand(resolve, show, list, search, create, update, del)
	project.AddCommand(newTeamCmd(configDir))
	project.AddCommand(newUsersCmd(configDir))
	project.AddCommand(newAddToTeamCmd(configDir, "add-member", "Add a member by user id or email", func(ctx context.Context, app *bootstrap.App, projectID, user string) error {
		return app.ProjectCLI.AddMember(ctx, projectID, user)
	}))
	project.AddCommand(newAddToTeamCmd(configDir, "add-supervisor", "Add a supervisor by user id", func(ctx context.Context, app *bootstrap.App, projectID, user string) error {
		return app.ProjectCLI.AddSupervisor(ctx, projectID, user)
	}))
	project.AddCommand(newAddToTeamCmd(configDir, "add-jury", "Add a jury member by user id", func(ctx context.Context, app *bootstrap.App, projectID, user string) error {
		return app.ProjectCLI.AddJuryMember(ctx, projectID, user)
	}))
	return project
}

func newProjectUpdateCmd(configDir *string) *cobra.Command {
	var projectID string
	values := map[string]*string{}
	fields := []struct{ flag, usage string }{
		{"name", "project name"},
		{"industry", "industry"},
		{"about", "short description"},
		{"problem", "problem statement"},
		{"solution", "proposed solution"},
		{"idea", "idea"},
		{"target-audience", "target audience"},
		{"competitive-advantage", "competitive advantage"},
		{"motivation", "motivation"},
		{"status", "status"},
		{"stage", "current stage"},
	}
	cmd := &cobra.Command{
		Use:   "update [--project <id>] --<field> <value>",
		Short: "Update project fields; unset flags are left untouched",
		RunE: func(cmd *cobra.Command, _ []string) error {
			changed := func(flag string) *string {
				if !cmd.Flags().Changed(flag) {
					return nil
				}
				return values[flag]
			}
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, projectID)
				if err != nil {
					return err
				}
				p, err := app.ProjectCLI.Update(ctx, projectdto.UpdateProjectInput{
					ProjectID:            id,
					Name:                 changed("name"),
					Industry:             changed("industry"),
					About:                changed("about"),
					Problem:              changed("problem"),
					Solution:             changed("solution"),
					Idea:                 changed("idea"),
					TargetAudience:       changed("target-audience"),
					CompetitiveAdvantage: changed("competitive-advantage"),
					Motivation:           changed("motivation"),
					Status:               changed("status"),
					Stage:                changed("stage"),
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated project %s %q\n", p.ID, p.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "project id (defaults to the resolved project)")
	for _, f := range fields {
		v := new(string)
		values[f.flag] = v
		cmd.Flags().StringVar(v, f.flag, "", f.usage)
	}
	return cmd
}

func newTeamCmd(configDir *string) *cobra.Command {
	var projectID, relation string
	cmd := &cobra.Command{
		Use:   "team",
		Short: "List members, supervisors or jury of a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, projectID)
				if err != nil {
					return err
				}
				out, err := app.ProjectCLI.Team(ctx, id, relation)
				if err != nil {
					return err
				}
				printWarnings(cmd.ErrOrStderr(), out.Warnings)
				if len(out.Members) == 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no %s\n", out.Relation)
					return nil
				}
				for _, m := range out.Members {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %q %s role=%s\n", m.ID, m.FullName, m.Email, m.Role)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "project id (defaults to the resolved project)")
	cmd.Flags().StringVar(&relation, "relation", "members", "members|encadrants|juryMembers")
	return cmd
}

func newUsersCmd(configDir *string) *cobra.Command {
	var projectID string
	cmd := &cobra.Command{
		Use:   "users [query]",
		Short: "Suggest users to invite, skipping current members",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, projectID)
				if err != nil {
					return err
				}
				out, err := app.ProjectCLI.Candidates(ctx, id, query)
				if err != nil {
					return err
				}
				printWarnings(cmd.ErrOrStderr(), out.Warnings)
				if len(out.Users) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no matching users")
					return nil
				}
				for _, u := range out.Users {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %q %s\n", u.ID, u.FullName, u.Email)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "project id (defaults to the resolved project)")
	return cmd
}

func newAddToTeamCmd(configDir *string, use, short string, add func(ctx context.Context, app *bootstrap.App, projectID, user string) error) *cobra.Command {
	var projectID string
	cmd := &cobra.Command{
		Use:   use + " <user>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				id, err := resolveProject(ctx, cmd, app, projectID)
				if err != nil {
					return err
				}
				if err := add(ctx, app, id, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", args[0], id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "project id (defaults to the resolved project)")
	return cmd
}

func printProjectList(cmd *cobra.Command, out projectdto.ProjectListOutput) {
	printWarnings(cmd.ErrOrStderr(), out.Warnings)
	if len(out.Projects) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no projects")
		return
	}
	for _, p := range out.Projects {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %q industry=%q stage=%q\n", p.ID, p.Name, p.Industry, p.Stage)
	}
}

func printProject(cmd *cobra.Command, p projectdto.ProjectOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "id=%s name=%q\n", p.ID, p.Name)
	for _, row := range [][2]string{
		{"industry", p.Industry},
		{"stage", p.Stage},
		{"status", p.Status},
		{"about", p.About},
		{"problem", p.Problem},
		{"solution", p.Solution},
		{"target_audience", p.TargetAudience},
		{"competitive_advantage", p.CompetitiveAdvantage},
	} {
		if strings.TrimSpace(row[1]) != "" {
			_, _ = fmt.Fprintf(w, "%s=%q\n", row[0], row[1])
		}
	}
	for _, group := range []struct {
		label   string
		members []projectdto.MemberOutput
	}{
		{"owners", p.Owners},
		{"members", p.Members},
		{"supervisors", p.Supervisors},
		{"jury", p.JuryMembers},
	} {
		names := make([]string, 0, len(group.members))
		for _, m := range group.members {
			names = append(names, m.FullName)
		}
		if len(names) > 0 {
			_, _ = fmt.Fprintf(w, "%s=%s\n", group.label, strings.Join(names, ", "))
		}
	}
}
