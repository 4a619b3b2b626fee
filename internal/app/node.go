package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/decider/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/decider/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/decider/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/decider/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/decider/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cas.NodeID,
			logger.NodeID,
			telemetry.ObserverNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.PlanStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	observer, err := graft.Dep[ports.Observer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, store, log, observer), nil
}
