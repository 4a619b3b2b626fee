// Package app implements the application layer for decider.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"time"

	"go.trai.ch/decider/internal/adapters/depstring"
	"go.trai.ch/decider/internal/adapters/linear"
	"go.trai.ch/decider/internal/adapters/metrics"
	"go.trai.ch/decider/internal/adapters/policy"
	"go.trai.ch/decider/internal/adapters/repository"
	"go.trai.ch/decider/internal/adapters/telemetry"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
	"go.trai.ch/decider/internal/engine/decider"
	"go.trai.ch/decider/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Set names accepted as targets.
const (
	SetWorld  = "world"
	SetSystem = "system"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.PlanStore
	logger       ports.Logger
	observer     ports.Observer
	stdout       io.Writer
	workDir      string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, store ports.PlanStore, log ports.Logger, observer ports.Observer) *App {
	return &App{
		configLoader: loader,
		store:        store,
		logger:       log,
		observer:     observer,
		stdout:       os.Stdout,
		workDir:      ".",
	}
}

// WithOutput sets where plans are rendered.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir sets the directory the configuration search starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// NoCache ignores stored plans and does not store the new one.
	NoCache bool
	// KeepGoing adds targets one at a time and drops the ones that cannot be resolved.
	KeepGoing bool
	// MetricsFile receives Prometheus metrics for the run when set.
	MetricsFile string
	Verbose     bool
	JSONLogs    bool
	Debug       bool
}

type configurableLogger interface {
	SetJSON(enable bool)
	SetDebug(enable bool)
}

// Resolve computes and renders the plan for targets.
func (a *App) Resolve(ctx context.Context, targetNames []string, opts ResolveOptions) error {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(opts.JSONLogs)
		l.SetDebug(opts.Debug)
	}

	if len(targetNames) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	universe, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	targets, err := expandTargets(universe, targetNames)
	if err != nil {
		return err
	}

	renderer := linear.NewRenderer(a.stdout)
	renderer.Verbose = opts.Verbose

	key := domain.GeneratePlanKey(universe.Digest, targetNames, "keep-going="+strconv.FormatBool(opts.KeepGoing))
	if !opts.NoCache {
		if rec := a.cached(universe.Root, key); rec != nil {
			return renderer.Render(rec, true)
		}
	}

	var metricsObserver *metrics.Observer
	observer := telemetry.Join(a.observer)
	if opts.MetricsFile != "" {
		metricsObserver = metrics.New(opts.MetricsFile)
		observer = telemetry.Join(a.observer, metricsObserver)
	}
	defer func() {
		if closeErr := observer.Close(); closeErr != nil {
			a.logger.Error(closeErr)
		}
	}()

	db := repository.New(universe)
	session := resolver.NewSession(db, policy.New(universe.Policy, db), observer, a.logger, universe.Policy.MaxRestarts)

	started := time.Now()
	resolveErr := a.add(ctx, session, targets, opts.KeepGoing)
	if metricsObserver != nil {
		metricsObserver.ObservePlan(time.Since(started), session.Plan())
	}

	if resolveErr != nil {
		if rejected := session.Rejected(); rejected != nil && errors.Is(resolveErr, domain.ErrUnresolvable) {
			rec := rejected.Record(key, targetNames)
			if err := renderer.Render(&rec, false); err != nil {
				return err
			}
		}
		return resolveErr
	}

	accepted := make([]string, 0, len(targets))
	for _, t := range session.Targets() {
		accepted = append(accepted, t.String())
	}
	rec := session.Plan().Record(key, accepted)
	if err := renderer.Render(&rec, false); err != nil {
		return err
	}

	if !opts.NoCache {
		if err := a.store.Put(universe.Root, rec); err != nil {
			a.logger.Warn("failed to store plan: " + err.Error())
		}
	}
	return nil
}

func (a *App) add(ctx context.Context, session *resolver.Session, targets []decider.Target, keepGoing bool) error {
	if !keepGoing {
		return session.Add(ctx, targets...)
	}

	var lastErr error
	for _, t := range targets {
		err := session.Add(ctx, t)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrUnresolvable), errors.Is(err, domain.ErrTooManyRestarts):
			a.logger.Warn("skipping " + t.String())
			a.logger.Error(err)
			lastErr = err
		default:
			return err
		}
	}
	if len(session.Targets()) == 0 && lastErr != nil {
		return zerr.Wrap(lastErr, "no target could be resolved")
	}
	return nil
}

func (a *App) cached(root, key string) *domain.PlanRecord {
	rec, err := a.store.Get(root, key)
	if err != nil {
		a.logger.Warn("ignoring stored plan: " + err.Error())
		return nil
	}
	if rec != nil {
		a.logger.Debug("using stored plan " + key)
	}
	return rec
}

// expandTargets parses target specs. The set names world and system expand to their members.
func expandTargets(u *domain.Universe, names []string) ([]decider.Target, error) {
	var targets []decider.Target
	for _, name := range names {
		switch name {
		case SetWorld:
			targets = appendSet(targets, name, u.World)
		case SetSystem:
			targets = appendSet(targets, name, u.System)
		default:
			spec, err := depstring.ParsePackageDepSpec(name)
			if err != nil {
				return nil, zerr.With(err, "target", name)
			}
			targets = append(targets, decider.Target{Spec: spec})
		}
	}
	if len(targets) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoTargetsSpecified, "targets expand to nothing"), "targets", names)
	}
	return targets, nil
}

func appendSet(targets []decider.Target, set string, specs []*domain.PackageDepSpec) []decider.Target {
	for _, spec := range specs {
		targets = append(targets, decider.Target{Spec: spec, Set: set})
	}
	return targets
}
