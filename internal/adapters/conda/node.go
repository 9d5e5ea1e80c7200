package conda

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the conda oracle Graft node.
const NodeID graft.ID = "adapter.conda.oracle"

func init() {
	graft.Register(graft.Node[ports.CondaOracle]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CondaOracle, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOracle(log)
		},
	})
}
