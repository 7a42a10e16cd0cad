package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bastard-Software/depsync/internal/app/provision"
	"github.com/Bastard-Software/depsync/internal/domain"
	"github.com/Bastard-Software/depsync/internal/infra/gitrepo"
	"github.com/Bastard-Software/depsync/internal/infra/ident"
	"github.com/Bastard-Software/depsync/internal/infra/manifest"
	workspacefs "github.com/Bastard-Software/depsync/internal/infra/workspace"
	"github.com/Bastard-Software/depsync/internal/platform"
)

type RootOptions struct {
	Workspace  string
	Manifest   string
	Force      bool
	Clean      bool
	Jobs       int
	Timeout    time.Duration
	JSONOutput bool
	LogLevel   string
	LogFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &RootOptions{
		Workspace: envDefault("DEPSYNC_WORKSPACE", domain.DefaultWorkspaceDir),
		LogLevel:  envDefault("DEPSYNC_LOG_LEVEL", platform.DefaultLogLevel),
		LogFormat: envDefault("DEPSYNC_LOG_FORMAT", platform.DefaultLogFormat),
	}
	cmd := &cobra.Command{
		Use:   "depsync",
		Short: "Provision pinned third-party sources",
		Long: "depsync brings a local workspace to an exact, reproducible set of\n" +
			"revision-pinned source dependencies. Re-runs are idempotent: a\n" +
			"dependency already at its pin causes no remote access at all.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := platform.ConfigureLogger(opts.LogLevel, opts.LogFormat, cmd.ErrOrStderr())
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvision(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Wipe and fully re-provision all dependencies")
	cmd.Flags().BoolVar(&opts.Clean, "clean", false, "Remove all dependency directories and exit (wins over --force)")
	cmd.Flags().StringVar(&opts.Workspace, "workspace", opts.Workspace, "Directory the dependency working copies live under")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "YAML dependency manifest (default: built-in registry)")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 1, "Dependencies to synchronize in parallel")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Minute, "Bound on each version-control operation (0 disables)")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json", false, "Emit the run report as JSON")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format (text, json)")

	return cmd
}

func runProvision(cmd *cobra.Command, opts *RootOptions) error {
	if opts.Jobs < 1 {
		return ExitError{Code: ExitInvalid, Kind: KindValidation, Message: fmt.Sprintf("invalid --jobs %d", opts.Jobs)}
	}

	registry := domain.DefaultRegistry()
	workspaceDir := opts.Workspace
	if opts.Manifest != "" {
		loaded, override, err := manifest.Load(opts.Manifest)
		if err != nil {
			return err
		}
		registry = loaded
		if override != "" && !cmd.Flags().Changed("workspace") {
			workspaceDir = override
		}
	}

	logger := slog.Default()
	store := gitrepo.NewStoreWithOptions(gitrepo.StoreOptions{
		Timeout: opts.Timeout,
		Logger:  logger,
	})
	cleaner := workspacefs.NewCleaner(workspacefs.NewPlatformRemover(), logger)

	orchestrator := provision.NewOrchestrator(provision.OrchestratorOptions{
		Registry:     registry,
		Synchronizer: provision.NewSyncService(store),
		Cleaner:      cleaner,
		IDs:          ident.NewRunIDs(),
		Workspace:    workspaceDir,
		Jobs:         opts.Jobs,
		Logger:       logger,
	})

	mode := domain.ResolveMode(opts.Clean, opts.Force)
	report, err := orchestrator.Run(cmd.Context(), mode)
	if err != nil {
		return err
	}

	if err := writeReport(cmd, report, opts.JSONOutput); err != nil {
		return err
	}
	if !report.Succeeded() {
		return ExitError{
			Code:    ExitFailure,
			Kind:    KindProvision,
			Message: fmt.Sprintf("%d of %d dependencies failed", report.FailedCount(), len(report.Outcomes)),
		}
	}
	return nil
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
