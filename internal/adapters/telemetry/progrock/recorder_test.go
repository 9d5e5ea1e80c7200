package progrock_test

import (
	"context"
	"testing"

	"github.com/benmoss/pixi-outdated/internal/adapters/telemetry/progrock"
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "pypi: requests")

	carried, ok := ports.VertexFromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, vertex, carried)

	vertex.Cached()
	vertex.Complete(nil)
	assert.NoError(t, recorder.Close())
}
