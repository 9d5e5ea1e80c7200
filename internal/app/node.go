package app

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/benmoss/pixi-outdated/internal/adapters/pixi"               //nolint:depguard // Wired in app layer
	"github.com/benmoss/pixi-outdated/internal/adapters/report"             //nolint:depguard // Wired in app layer
	"github.com/benmoss/pixi-outdated/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/benmoss/pixi-outdated/internal/adapters/workspace"          //nolint:depguard // Wired in app layer
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/benmoss/pixi-outdated/internal/engine/outdated"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pixi.NodeID,
			workspace.NodeID,
			outdated.NodeID,
			logger.NodeID,
			progrock.NodeID,
			report.JSONNodeID,
			report.HumanNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(application, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	lister, err := graft.Dep[ports.PackageLister](ctx)
	if err != nil {
		return nil, err
	}

	platforms, err := graft.Dep[ports.PlatformSource](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*outdated.Engine](ctx)
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

	jsonRenderer, err := graft.Dep[*report.JSONRenderer](ctx)
	if err != nil {
		return nil, err
	}

	humanRenderer, err := graft.Dep[*report.HumanRenderer](ctx)
	if err != nil {
		return nil, err
	}

	return New(lister, platforms, engine, log, telemetry, jsonRenderer, humanRenderer), nil
}
