package ports

import "go.trai.ch/decider/internal/core/domain"

// Observer receives progress notifications from a resolution attempt.
// Notifications are advisory; callers wanting to abort cancel the context instead.
//
//go:generate go run go.uber.org/mock/mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks
type Observer interface {
	// OnStage is called whenever the resolver enters a stage.
	OnStage(stage domain.Stage)
	// OnStep is called once for every resolvent given a decision.
	OnStep(r domain.Resolvent)
	// OnRestart is called when an attempt ends with a restart request.
	OnRestart(attempt int, r domain.Resolvent)
	// Close flushes and releases the observer.
	Close() error
}
