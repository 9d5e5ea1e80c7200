package workspace

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the workspace platform source Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.PlatformSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformSource, error) {
			return NewSource(), nil
		},
	})
}
