// Package resolver drives resolution attempts. A Session accumulates targets and
// repeats attempts with additional preloads until the decider produces a plan.
package resolver

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
	"go.trai.ch/decider/internal/engine/decider"
	"go.trai.ch/zerr"
)

// Session resolves a growing set of targets against one package database.
// Every call to Add is transactional: either the new targets are integrated into
// the plan or the session is left exactly as it was.
type Session struct {
	db          ports.PackageDatabase
	policy      ports.Policy
	observer    ports.Observer
	logger      ports.Logger
	maxRestarts int

	targets  []decider.Target
	preloads []decider.Preload
	plan     *domain.Plan
	rejected *domain.Plan
}

// NewSession creates an empty Session. A negative maxRestarts uses domain.DefaultMaxRestarts
// and zero disables restarts.
func NewSession(
	db ports.PackageDatabase,
	policy ports.Policy,
	observer ports.Observer,
	logger ports.Logger,
	maxRestarts int,
) *Session {
	if maxRestarts < 0 {
		maxRestarts = domain.DefaultMaxRestarts
	}
	return &Session{
		db:          db,
		policy:      policy,
		observer:    observer,
		logger:      logger,
		maxRestarts: maxRestarts,
		plan:        &domain.Plan{},
	}
}

// Add resolves the accepted targets together with targets. On failure the
// previously accepted plan is kept and the failing plan is available from Rejected.
func (s *Session) Add(ctx context.Context, targets ...decider.Target) error {
	if len(targets) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	candidate := append(slices.Clone(s.targets), targets...)
	preloads := slices.Clone(s.preloads)

	for attempt := 0; ; attempt++ {
		outcome, err := decider.New(s.db, s.policy, s.observer, s.logger).Run(ctx, preloads, candidate)
		if err != nil {
			return err
		}

		switch o := outcome.(type) {
		case decider.Planned:
			s.targets = candidate
			s.preloads = preloads
			s.plan = o.Plan
			s.rejected = nil
			return nil

		case decider.Restart:
			if attempt >= s.maxRestarts {
				err := zerr.Wrap(domain.ErrTooManyRestarts, "giving up on "+targetList(targets))
				return zerr.With(err, "restarts", attempt)
			}
			s.observer.OnRestart(attempt+1, o.Request.Resolvent)
			s.logger.Debug("restarting (attempt " + strconv.Itoa(attempt+1) + "): " + o.Request.Error())
			preloads = append(preloads, o.Request.Preload())

		case decider.Unresolvable:
			s.rejected = o.Plan
			failures := make([]string, 0, len(o.Failures))
			for _, res := range o.Failures {
				failures = append(failures, res.Resolvent.String())
			}
			err := zerr.Wrap(domain.ErrUnresolvable, "cannot add "+targetList(targets))
			return zerr.With(err, "failures", strings.Join(failures, ", "))
		}
	}
}

// Plan returns the plan for every accepted target.
func (s *Session) Plan() *domain.Plan {
	return s.plan
}

// Targets returns the accepted targets in the order they were added.
func (s *Session) Targets() []decider.Target {
	return slices.Clone(s.targets)
}

// Rejected returns the plan of the last failed Add, or nil.
func (s *Session) Rejected() *domain.Plan {
	return s.rejected
}

func targetList(targets []decider.Target) string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.String())
	}
	return strings.Join(names, " ")
}
