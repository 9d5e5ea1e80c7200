package outdated

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/adapters/conda"              //nolint:depguard // Wired in engine wiring
	"github.com/benmoss/pixi-outdated/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/benmoss/pixi-outdated/internal/adapters/pypi"               //nolint:depguard // Wired in engine wiring
	"github.com/benmoss/pixi-outdated/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the outdated engine Graft node.
const NodeID graft.ID = "engine.outdated"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			conda.NodeID,
			pypi.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			condaOracle, err := graft.Dep[ports.CondaOracle](ctx)
			if err != nil {
				return nil, err
			}

			pypiOracle, err := graft.Dep[ports.PypiOracle](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			resolver := NewResolver(condaOracle, pypiOracle, log, telemetry, 0)
			return New(resolver), nil
		},
	})
}
