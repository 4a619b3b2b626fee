package ports

import "go.trai.ch/decider/internal/core/domain"

// PlanStore defines the interface for storing and retrieving plan records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PlanStore interface {
	// Get retrieves the plan record for key from the store under root.
	// Returns nil, nil if not found.
	Get(root, key string) (*domain.PlanRecord, error)

	// Put stores the plan record under root.
	Put(root string, record domain.PlanRecord) error
}
