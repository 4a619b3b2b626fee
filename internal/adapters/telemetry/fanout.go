package telemetry

import (
	"errors"

	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
)

// FanOut forwards every notification to each of its observers in order.
type FanOut []ports.Observer

var _ ports.Observer = FanOut(nil)

// Join combines observers, dropping nil ones. It returns a NoOpObserver when none are left
// and the observer itself when only one is.
func Join(observers ...ports.Observer) ports.Observer {
	var kept FanOut
	for _, o := range observers {
		if o != nil {
			kept = append(kept, o)
		}
	}
	switch len(kept) {
	case 0:
		return NoOpObserver{}
	case 1:
		return kept[0]
	default:
		return kept
	}
}

// OnStage forwards the stage transition.
func (f FanOut) OnStage(stage domain.Stage) {
	for _, o := range f {
		o.OnStage(stage)
	}
}

// OnStep forwards the step.
func (f FanOut) OnStep(r domain.Resolvent) {
	for _, o := range f {
		o.OnStep(r)
	}
}

// OnRestart forwards the restart.
func (f FanOut) OnRestart(attempt int, r domain.Resolvent) {
	for _, o := range f {
		o.OnRestart(attempt, r)
	}
}

// Close closes every observer and joins their errors.
func (f FanOut) Close() error {
	var errs []error
	for _, o := range f {
		errs = append(errs, o.Close())
	}
	return errors.Join(errs...)
}
