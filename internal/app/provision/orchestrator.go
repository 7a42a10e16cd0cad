package provision

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Bastard-Software/depsync/internal/domain"
)

// Orchestrator sequences cleaning and synchronization over the full registry
// and aggregates per-dependency outcomes into one report. It owns the
// workspace root for the duration of a run: the root is created on demand and
// never assumed to pre-exist.
type Orchestrator struct {
	registry     domain.Registry
	synchronizer Synchronizer
	cleaner      Cleaner
	ids          IDGenerator
	workspace    string
	jobs         int
	logger       *slog.Logger
}

type OrchestratorOptions struct {
	Registry     domain.Registry
	Synchronizer Synchronizer
	Cleaner      Cleaner
	IDs          IDGenerator
	Workspace    string
	// Jobs bounds parallel synchronization. Values below 2 keep the
	// strictly sequential baseline.
	Jobs   int
	Logger *slog.Logger
}

func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	return &Orchestrator{
		registry:     opts.Registry,
		synchronizer: opts.Synchronizer,
		cleaner:      opts.Cleaner,
		ids:          opts.IDs,
		workspace:    opts.Workspace,
		jobs:         jobs,
		logger:       logger,
	}
}

// Run executes one pass in the given mode. The returned error covers only
// process-fatal conditions (bad inputs, inability to create the workspace
// root); per-dependency failures are carried inside the report.
func (o *Orchestrator) Run(ctx context.Context, mode domain.RunMode) (domain.Report, error) {
	if o.workspace == "" {
		return domain.Report{}, ErrWorkspaceRequired
	}
	if mode != domain.ModeClean && len(o.registry) == 0 {
		return domain.Report{}, ErrEmptyRegistry
	}
	if err := o.registry.Validate(); err != nil {
		return domain.Report{}, err
	}

	report := domain.NewReport(o.runID(), mode)
	report.Workspace = o.workspace
	logger := o.logger.With("run", report.RunID, "mode", string(mode), "workspace", o.workspace)

	if mode == domain.ModeClean || mode == domain.ModeForce {
		logger.Info("cleaning workspace")
		clean := o.cleaner.Clean(ctx, o.workspace)
		report.Clean = &clean
		if clean.Missing {
			logger.Info("workspace does not exist, nothing to clean")
		} else {
			logger.Info("workspace cleaned", "removed", len(clean.Removed), "failed", len(clean.Failed))
		}
		if mode == domain.ModeClean {
			return report, nil
		}
	}

	if err := os.MkdirAll(o.workspace, 0o755); err != nil {
		return report, fmt.Errorf("create workspace root: %w", err)
	}

	if o.jobs > 1 {
		o.syncParallel(ctx, logger, &report)
	} else {
		o.syncSequential(ctx, logger, &report)
	}
	return report, nil
}

func (o *Orchestrator) syncSequential(ctx context.Context, logger *slog.Logger, report *domain.Report) {
	for _, spec := range o.registry {
		outcome := o.syncOne(ctx, logger, spec)
		report.Outcomes[spec.Name] = outcome
	}
}

// syncParallel fans the registry out over a bounded worker group. Each
// dependency directory is touched by exactly one worker; the report map is
// the only shared state and is guarded by a mutex.
func (o *Orchestrator) syncParallel(ctx context.Context, logger *slog.Logger, report *domain.Report) {
	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(o.jobs)

	for _, spec := range o.registry {
		spec := spec
		group.Go(func() error {
			outcome := o.syncOne(groupCtx, logger, spec)
			mu.Lock()
			report.Outcomes[spec.Name] = outcome
			mu.Unlock()
			// Failures stay in the report; returning them would cancel
			// the siblings and short-circuit the pass.
			return nil
		})
	}
	_ = group.Wait()
}

func (o *Orchestrator) syncOne(ctx context.Context, logger *slog.Logger, spec domain.DependencySpec) domain.Outcome {
	logger.Info("synchronizing dependency", "dependency", spec.Name, "revision", shortRevision(spec.Revision))
	outcome := o.synchronizer.Synchronize(ctx, o.workspace, spec)
	switch outcome.Kind {
	case domain.OutcomeUnchanged:
		logger.Info("already at pinned revision", "dependency", spec.Name, "revision", shortRevision(outcome.Revision))
	case domain.OutcomeSynchronized:
		logger.Info("synchronized", "dependency", spec.Name, "revision", shortRevision(outcome.Revision), "took", outcome.Duration)
	default:
		logger.Error("synchronization failed", "dependency", spec.Name, "error", outcome.Err)
	}
	return outcome
}

func (o *Orchestrator) runID() string {
	if o.ids == nil {
		return ""
	}
	id, err := o.ids.NewID()
	if err != nil {
		return ""
	}
	return id
}
