// Package telemetry provides implementations of the telemetry port that do
// not render anything. The progrock subpackage holds the live recorder.
package telemetry

import (
	"context"

	"github.com/benmoss/pixi-outdated/internal/core/ports"
)

// NoOpRecorder is a no-op implementation of ports.Telemetry.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a new NoOpRecorder.
func NewNoOpRecorder() *NoOpRecorder {
	return &NoOpRecorder{}
}

// Record returns a no-op vertex without touching the context.
func (r *NoOpRecorder) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (r *NoOpRecorder) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
