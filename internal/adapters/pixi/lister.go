// Package pixi provides the package lister adapter backed by the pixi CLI.
package pixi

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"go.trai.ch/zerr"
)

// OriginFunc derives a channel/source identity from a raw package source
// location. The second return is false when no identity can be derived,
// which is not an error.
type OriginFunc func(source string) (string, bool)

// Lister implements ports.PackageLister by running `pixi list --json`.
type Lister struct {
	logger       ports.Logger
	deriveOrigin OriginFunc
}

// NewLister creates a Lister. deriveOrigin populates the origin of conda
// records from their download URL.
func NewLister(logger ports.Logger, deriveOrigin OriginFunc) *Lister {
	return &Lister{
		logger:       logger,
		deriveOrigin: deriveOrigin,
	}
}

// packageDTO mirrors one entry of the `pixi list --json` output.
type packageDTO struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Build      string `json:"build"`
	SizeBytes  uint64 `json:"size_bytes"`
	Kind       string `json:"kind"`
	Source     string `json:"source"`
	IsExplicit bool   `json:"is_explicit"`
}

// List runs pixi for the platform in opts and converts the JSON output into
// package records.
func (l *Lister) List(ctx context.Context, opts ports.ListOptions) ([]domain.PackageRecord, error) {
	args := buildArgs(opts)

	cmd := exec.CommandContext(ctx, "pixi", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			listErr := zerr.Wrap(exitErr, domain.ErrListFailed.Error())
			listErr = zerr.With(listErr, "platform", opts.Platform)
			return nil, zerr.With(listErr, "stderr", stderr)
		}
		listErr := zerr.Wrap(err, "failed to execute pixi list, is pixi installed?")
		return nil, zerr.With(listErr, "platform", opts.Platform)
	}

	var dtos []packageDTO
	if err := json.Unmarshal(output, &dtos); err != nil {
		parseErr := zerr.Wrap(err, "failed to parse pixi list JSON output")
		return nil, zerr.With(parseErr, "platform", opts.Platform)
	}

	records := make([]domain.PackageRecord, 0, len(dtos))
	for _, dto := range dtos {
		rec, ok := l.toRecord(dto)
		if !ok {
			l.logger.Debug(fmt.Sprintf("skipping package %q with unknown kind %q", dto.Name, dto.Kind))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (l *Lister) toRecord(dto packageDTO) (domain.PackageRecord, bool) {
	var eco domain.Ecosystem
	switch dto.Kind {
	case "conda":
		eco = domain.EcosystemConda
	case "pypi":
		eco = domain.EcosystemPypi
	default:
		return domain.PackageRecord{}, false
	}

	rec := domain.PackageRecord{
		Name:             dto.Name,
		InstalledVersion: dto.Version,
		Build:            dto.Build,
		SizeBytes:        dto.SizeBytes,
		Ecosystem:        eco,
		Source:           dto.Source,
		Explicit:         dto.IsExplicit,
	}
	if eco == domain.EcosystemConda && dto.Source != "" {
		if origin, ok := l.deriveOrigin(dto.Source); ok {
			rec.Origin = origin
		}
	}
	return rec, true
}

// buildArgs assembles the pixi CLI arguments for one listing.
func buildArgs(opts ports.ListOptions) []string {
	args := []string{"list", "--json"}
	if opts.Explicit {
		args = append(args, "--explicit")
	}
	if opts.Environment != "" {
		args = append(args, "--environment", opts.Environment)
	}
	if opts.Platform != "" {
		args = append(args, "--platform", opts.Platform)
	}
	if opts.Manifest != "" {
		args = append(args, "--manifest-path", opts.Manifest)
	}
	if pattern := namePattern(opts.Names); pattern != "" {
		args = append(args, pattern)
	}
	return args
}

// namePattern builds the anchored regex pixi expects when specific package
// names are requested: `^name$` for one name, `^(a|b)$` for several.
func namePattern(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return "^" + regexp.QuoteMeta(names[0]) + "$"
	default:
		escaped := make([]string, len(names))
		for i, name := range names {
			escaped[i] = regexp.QuoteMeta(name)
		}
		return "^(" + strings.Join(escaped, "|") + ")$"
	}
}
