// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/benmoss/pixi-outdated/internal/adapters/conda"
	_ "github.com/benmoss/pixi-outdated/internal/adapters/logger"
	_ "github.com/benmoss/pixi-outdated/internal/adapters/pixi"
	_ "github.com/benmoss/pixi-outdated/internal/adapters/pypi"
	_ "github.com/benmoss/pixi-outdated/internal/adapters/report"
	_ "github.com/benmoss/pixi-outdated/internal/adapters/telemetry/progrock"
	_ "github.com/benmoss/pixi-outdated/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "github.com/benmoss/pixi-outdated/internal/app"
	_ "github.com/benmoss/pixi-outdated/internal/engine/outdated"
)
