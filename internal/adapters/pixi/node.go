package pixi

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/adapters/conda"  //nolint:depguard // Wired in adapter wiring
	"github.com/benmoss/pixi-outdated/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the package lister Graft node.
const NodeID graft.ID = "adapter.pixi.lister"

func init() {
	graft.Register(graft.Node[ports.PackageLister]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageLister, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLister(log, conda.ChannelFromSource), nil
		},
	})
}
