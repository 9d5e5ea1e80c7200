// Package report renders check results: a machine-readable JSON sink over
// the uncoalesced per-platform view and a human-readable sink over the
// coalesced view.
package report

import (
	"encoding/json"
	"io"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSONRenderer implements ports.ReportRenderer for machine consumption.
// It emits the full uncoalesced update map keyed by platform name; lookup
// warnings are suppressed in this mode.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type jsonReport struct {
	Platforms []string               `json:"platforms"`
	Updates   domain.PlatformUpdates `json:"updates"`
}

// Render writes the result as indented JSON.
func (r *JSONRenderer) Render(w io.Writer, result domain.CheckResult) error {
	doc := jsonReport{
		Platforms: result.Checked,
		Updates:   result.Updates,
	}
	if doc.Platforms == nil {
		doc.Platforms = []string{}
	}
	if doc.Updates == nil {
		doc.Updates = domain.PlatformUpdates{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	return nil
}
