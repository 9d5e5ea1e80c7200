package pypi

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the PyPI oracle Graft node.
const NodeID graft.ID = "adapter.pypi.oracle"

func init() {
	graft.Register(graft.Node[ports.PypiOracle]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PypiOracle, error) {
			return NewOracle(), nil
		},
	})
}
