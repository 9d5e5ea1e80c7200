package conda

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/benmoss/pixi-outdated/internal/core/ports"
	rpmversion "github.com/knqyf263/go-rpm-version"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Oracle implements ports.CondaOracle by scanning channel repodata.
//
// Repodata documents are shared by every package of a channel subdirectory,
// so concurrent lookups deduplicate their fetches through a singleflight
// group and completed fetches are cached on disk for a short window.
type Oracle struct {
	logger   ports.Logger
	client   *http.Client
	cacheDir string

	fetchGroup singleflight.Group
}

// NewOracle creates an Oracle caching repodata under the user cache
// directory.
func NewOracle(logger ports.Logger) (*Oracle, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, zerr.Wrap(err, errNoCacheDir.Error())
	}
	return NewOracleWithCache(logger, filepath.Join(base, "pixi-outdated", "repodata")), nil
}

// NewOracleWithCache creates an Oracle with a specific cache directory.
func NewOracleWithCache(logger ports.Logger, cacheDir string) *Oracle {
	return &Oracle{
		logger:   logger,
		client:   &http.Client{Timeout: 2 * time.Minute},
		cacheDir: cacheDir,
	}
}

// LatestVersion returns the newest version of id published on its channel
// across the given platforms plus noarch. found is false when no subdir
// carries an entry for the package.
func (o *Oracle) LatestVersion(ctx context.Context, id domain.Identity, platforms []string) (string, bool, error) {
	if id.Origin == "" {
		// The planner never emits such identities; guard the contract anyway.
		return "", false, zerr.With(zerr.New("conda identity without origin"), "package", id.Name)
	}

	var (
		latest string
		found  bool
	)
	for _, subdir := range withNoarch(platforms) {
		doc, err := o.repodata(ctx, id.Origin, subdir)
		if err != nil {
			lookupErr := zerr.Wrap(err, "repodata lookup failed")
			lookupErr = zerr.With(lookupErr, "package", id.Name)
			return "", false, zerr.With(lookupErr, "channel", id.Origin)
		}

		for _, entries := range []map[string]repodataEntry{doc.Packages, doc.PackagesConda} {
			for _, entry := range entries {
				if entry.Name != id.Name {
					continue
				}
				if !found || newerThan(entry.Version, latest) {
					latest = entry.Version
					found = true
				}
			}
		}
	}
	return latest, found, nil
}

// repodata fetches one channel subdirectory's repodata, collapsing
// concurrent fetches for the same document into one.
func (o *Oracle) repodata(ctx context.Context, channel, subdir string) (*repodata, error) {
	key := channel + "/" + subdir
	result, err, _ := o.fetchGroup.Do(key, func() (any, error) {
		doc, cached, err := o.fetchRepodata(ctx, channel, subdir)
		if err != nil {
			return nil, err
		}
		if cached {
			markCached(ctx)
		} else {
			o.logger.Debug(fmt.Sprintf("fetched repodata for %s", key))
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*repodata), nil
}

// newerThan reports whether a orders after b under rpm-style version
// comparison, which matches conda's epoch/segment ordering closely enough
// for picking the channel's newest entry.
func newerThan(a, b string) bool {
	va := rpmversion.NewVersion(a)
	return va.GreaterThan(rpmversion.NewVersion(b))
}

// withNoarch appends the platform-independent subdir to the requested
// platforms, deduplicating in case it was requested explicitly.
func withNoarch(platforms []string) []string {
	subdirs := make([]string, 0, len(platforms)+1)
	seen := make(map[string]struct{}, len(platforms)+1)
	for _, p := range append(append([]string{}, platforms...), "noarch") {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		subdirs = append(subdirs, p)
	}
	return subdirs
}
