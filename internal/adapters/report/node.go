package report

import (
	"context"

	"github.com/grindlemire/graft"
)

// The two renderers are registered under their concrete types so that both
// implementations of the renderer port can coexist in the graph.
const (
	JSONNodeID  graft.ID = "adapter.report.json"
	HumanNodeID graft.ID = "adapter.report.human"
)

func init() {
	graft.Register(graft.Node[*JSONRenderer]{
		ID:        JSONNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*JSONRenderer, error) {
			return NewJSONRenderer(), nil
		},
	})

	graft.Register(graft.Node[*HumanRenderer]{
		ID:        HumanNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*HumanRenderer, error) {
			return NewHumanRenderer(ColorEnabled()), nil
		},
	})
}
