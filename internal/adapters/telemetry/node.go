package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/decider/internal/adapters/telemetry/progrock"
	"go.trai.ch/decider/internal/core/ports"
)

// ObserverNodeID is the unique identifier for the observer Graft node.
const ObserverNodeID graft.ID = "adapter.observer"

func init() {
	graft.Register(graft.Node[ports.Observer]{
		ID:        ObserverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID},
		Run: func(ctx context.Context) (ports.Observer, error) {
			rec, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			return Join(rec), nil
		},
	})
}
