package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"go.trai.ch/zerr"
)

// HumanRenderer implements ports.ReportRenderer for terminal consumption.
// Multi-platform runs get a "shared across all platforms" section followed
// by per-platform sections in checked-platform order; single-platform runs
// get a flat ungrouped list.
type HumanRenderer struct {
	styles palette
}

// NewHumanRenderer creates a human renderer.
func NewHumanRenderer(color bool) *HumanRenderer {
	return &HumanRenderer{styles: newPalette(color)}
}

// Render writes the coalesced view of the result.
func (r *HumanRenderer) Render(w io.Writer, result domain.CheckResult) error {
	var b strings.Builder

	switch {
	case len(result.Checked) == 0:
		b.WriteString("Nothing to check.\n")
	case len(result.Checked) == 1:
		r.renderFlat(&b, result)
	default:
		r.renderGrouped(&b, result)
	}

	r.renderWarnings(&b, result.Warnings)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}

func (r *HumanRenderer) renderFlat(b *strings.Builder, result domain.CheckResult) {
	platform := result.Checked[0]
	updates := result.Report.PerPlatform[platform]
	if len(updates) == 0 {
		b.WriteString("All dependencies are up to date.\n")
		return
	}

	b.WriteString(r.styles.header.Render(fmt.Sprintf("Outdated dependencies (%s):", platform)))
	b.WriteString("\n")
	r.renderUpdates(b, updates)
}

func (r *HumanRenderer) renderGrouped(b *strings.Builder, result domain.CheckResult) {
	common := result.Report.Common
	if len(common) == 0 && len(result.Report.PerPlatform) == 0 {
		b.WriteString("All dependencies are up to date.\n")
		return
	}

	if len(common) > 0 {
		b.WriteString(r.styles.header.Render("Shared across all platforms:"))
		b.WriteString("\n")
		r.renderUpdates(b, common)
	}

	// Per-platform sections follow the checked-platform order, not map order.
	for _, platform := range result.Checked {
		updates, ok := result.Report.PerPlatform[platform]
		if !ok || len(updates) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.styles.header.Render(platform + ":"))
		b.WriteString("\n")
		r.renderUpdates(b, updates)
	}
}

func (r *HumanRenderer) renderUpdates(b *strings.Builder, updates []domain.UpdateRecord) {
	width := 0
	for _, u := range updates {
		if len(u.Name) > width {
			width = len(u.Name)
		}
	}
	for _, u := range updates {
		pad := strings.Repeat(" ", width-len(u.Name))
		fmt.Fprintf(b, "  %s%s  %s %s %s\n",
			r.styles.name.Render(u.Name),
			pad,
			r.styles.old.Render(u.InstalledVersion),
			r.styles.muted.Render("->"),
			r.styles.latest.Render(u.LatestVersion),
		)
	}
}

func (r *HumanRenderer) renderWarnings(b *strings.Builder, warnings []domain.LookupWarning) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, warning := range warnings {
		b.WriteString(r.styles.warning.Render(
			fmt.Sprintf("warning: could not determine latest version of %s: %v", warning.Identity.Name, warning.Err),
		))
		b.WriteString("\n")
	}
}
