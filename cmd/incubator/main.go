package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"incubator/internal/bootstrap"
	"incubator/internal/platform/config"
	apperrors "incubator/internal/platform/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string
	root := &cobra.Command{
		Use:           "incubator",
		Short:         "Terminal client for the startup incubator platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", config.DefaultDir(), "directory holding config.yaml, .env and local state")

	root.AddCommand(newLoginCmd(&configDir))
	root.AddCommand(newLogoutCmd(&configDir))
	root.AddCommand(newWhoAmICmd(&configDir))
	root.AddCommand(newProjectCmd(&configDir))
	root.AddCommand(newProgressCmd(&configDir))
	root.AddCommand(newSessionCmd(&configDir))
	root.AddCommand(newFeedbackCmd(&configDir))
	root.AddCommand(newWorkshopCmd(&configDir))
	root.AddCommand(newTUICmd(&configDir))
	return root
}

func loadApp(configDir string, opts ...bootstrap.Option) (*bootstrap.App, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, opts...)
}

// withApp loads the app, seeds an environment token and closes the app once
// fn returns.
func withApp(cmd *cobra.Command, configDir string, fn func(ctx context.Context, app *bootstrap.App) error, opts ...bootstrap.Option) error {
	app, err := loadApp(configDir, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := app.SeedToken(ctx); err != nil {
		return err
	}
	return fn(ctx, app)
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return "session expired; run `incubator login` again"
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return fmt.Sprintf("not logged in: %v", err)
	default:
		return err.Error()
	}
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

// resolveProject picks the project a command operates on. Warnings from the
// resolution go to stderr and the sentinel id is passed through, so reads
// render an unassigned state and writes fail validation.
func resolveProject(ctx context.Context, cmd *cobra.Command, app *bootstrap.App, explicit string) (string, error) {
	out, err := app.ProjectCLI.Resolve(ctx, explicit, false)
	if err != nil {
		return "", err
	}
	if out.Warning != "" {
		printWarnings(cmd.ErrOrStderr(), []string{out.Warning})
	}
	return out.ProjectID, nil
}

func newLoginCmd(configDir *string) *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "login --token <jwt>",
		Short: "Store an access token issued by the platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(token) == "" {
				token = os.Getenv("INCUBATOR_TOKEN")
			}
			if strings.TrimSpace(token) == "" {
				return fmt.Errorf("--token is required")
			}
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				user, err := app.AccountCLI.Login(ctx, token)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", user.Name, strings.ToLower(user.Role))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "access token (defaults to INCUBATOR_TOKEN)")
	return cmd
}

func newLogoutCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored token and cached project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.AccountCLI.Logout(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoAmICmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user and their landing view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.AccountCLI.Landing(ctx)
				if err != nil {
					return err
				}
				u := out.User
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id=%s name=%q email=%s role=%s\n", u.ID, u.Name, u.Email, u.Role)
				if !u.ExpiresAt.IsZero() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "expires=%s\n", u.ExpiresAt.Format("2006-01-02 15:04"))
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "landing=%s\n", out.Destination)
				return nil
			})
		},
	}
}

func newWorkshopCmd(configDir *string) *cobra.Command {
	workshop := &cobra.Command{Use: "workshop", Short: "Training workshops"}

	var past bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List upcoming workshops, or past ones with --past",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TrainingCLI.List(ctx, past)
				if err != nil {
					return err
				}
				printWarnings(cmd.ErrOrStderr(), out.Warnings)
				if len(out.Workshops) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no workshops")
					return nil
				}
				for _, w := range out.Workshops {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %q location=%q duration=%dmin\n", w.ID, w.Date, w.Time, w.Title, w.Location, w.Duration)
				}
				return nil
			})
		},
	}
	list.Flags().BoolVar(&past, "past", false, "list past workshops, most recent first")
	workshop.AddCommand(list)
	return workshop
}

func newTUICmd(configDir *string) *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(_ context.Context, app *bootstrap.App) error {
				if metricsAddr != "" {
					app.Config.MetricsAddr = metricsAddr
				}
				return bootstrap.RunTUI(app)
			}, bootstrap.LogToFile(bootstrap.TUILogFile))
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while the UI runs")
	return cmd
}
