// Package pypi provides the PyPI version oracle adapter.
package pypi

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultIndexURL is the public PyPI JSON API base.
const DefaultIndexURL = "https://pypi.org"

// normalizePattern collapses runs of the PEP 503 separator characters.
var normalizePattern = regexp.MustCompile(`[-_.]+`)

// Oracle implements ports.PypiOracle against the PyPI JSON API.
// Lookups are platform-independent.
type Oracle struct {
	indexURL string
	client   *http.Client
}

// NewOracle creates an Oracle against the public index.
func NewOracle() *Oracle {
	return NewOracleWithIndex(DefaultIndexURL)
}

// NewOracleWithIndex creates an Oracle against a specific index base URL.
func NewOracleWithIndex(indexURL string) *Oracle {
	return &Oracle{
		indexURL: strings.TrimSuffix(indexURL, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// projectDTO mirrors the subset of the PyPI project document we read.
type projectDTO struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

// LatestVersion returns the newest version published on the index for the
// identity's package.
func (o *Oracle) LatestVersion(ctx context.Context, id domain.Identity) (string, error) {
	projectURL := o.indexURL + "/pypi/" + NormalizeName(id.Name) + "/json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, projectURL, nil)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to build PyPI request"), "package", id.Name)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "PyPI request failed"), "package", id.Name)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		lookupErr := zerr.With(zerr.New("unexpected PyPI response"), "package", id.Name)
		return "", zerr.With(lookupErr, "status", resp.StatusCode)
	}

	var project projectDTO
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to parse PyPI response"), "package", id.Name)
	}
	if project.Info.Version == "" {
		return "", zerr.With(zerr.New("PyPI response carries no version"), "package", id.Name)
	}
	return project.Info.Version, nil
}

// NormalizeName canonicalizes a project name per PEP 503: lowercase with
// runs of ".", "-" and "_" collapsed to a single "-".
func NormalizeName(name string) string {
	return strings.ToLower(normalizePattern.ReplaceAllString(name, "-"))
}
