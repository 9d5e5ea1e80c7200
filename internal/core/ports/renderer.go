package ports

import (
	"io"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks

// ReportRenderer renders the outcome of an outdated check.
type ReportRenderer interface {
	// Render writes the check outcome to w. Implementations choose which
	// view of the result they consume: machine-readable sinks use the
	// uncoalesced per-platform map, human-oriented sinks the coalesced
	// partition.
	Render(w io.Writer, result domain.CheckResult) error
}
