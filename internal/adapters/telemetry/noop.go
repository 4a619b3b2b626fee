// Package telemetry provides ports.Observer implementations that do not render anything themselves.
package telemetry

import (
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
)

// NoOpObserver ignores every notification.
type NoOpObserver struct{}

var _ ports.Observer = NoOpObserver{}

// OnStage does nothing.
func (NoOpObserver) OnStage(domain.Stage) {}

// OnStep does nothing.
func (NoOpObserver) OnStep(domain.Resolvent) {}

// OnRestart does nothing.
func (NoOpObserver) OnRestart(int, domain.Resolvent) {}

// Close does nothing.
func (NoOpObserver) Close() error { return nil }
