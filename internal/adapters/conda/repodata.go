package conda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/benmoss/pixi-outdated/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// repodataTTL is how long a fetched repodata document is served from disk
// before it is fetched again.
const repodataTTL = time.Hour

// repodata mirrors the subset of a conda repodata.json document the oracle
// needs: the package entries of one channel subdirectory.
type repodata struct {
	Packages      map[string]repodataEntry `json:"packages"`
	PackagesConda map[string]repodataEntry `json:"packages.conda"`
}

type repodataEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// fetchRepodata returns the repodata document for one channel subdirectory,
// serving it from the on-disk cache when fresh. cached reports whether the
// document came from disk. A missing subdirectory (404) yields an empty
// document: channels are not required to publish every platform.
func (o *Oracle) fetchRepodata(ctx context.Context, channel, subdir string) (*repodata, bool, error) {
	repodataURL := fmt.Sprintf("%s/%s/repodata.json", channel, subdir)

	cachePath := o.cachePath(repodataURL)
	if data, err := o.readCached(cachePath); err == nil {
		doc, err := decodeRepodata(data)
		if err == nil {
			return doc, true, nil
		}
		// A corrupt cache entry falls through to a fresh fetch.
	}

	data, err := o.download(ctx, repodataURL)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return &repodata{}, false, nil
	}

	doc, err := decodeRepodata(data)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, "failed to parse repodata"), "url", repodataURL)
	}

	if err := o.writeCached(cachePath, data); err != nil {
		// Cache writes are best effort; the lookup already succeeded.
		o.logger.Debug(fmt.Sprintf("repodata cache write failed: %v", err))
	}
	return doc, false, nil
}

func decodeRepodata(data []byte) (*repodata, error) {
	var doc repodata
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// download fetches one repodata document. A 404 returns nil data without an
// error.
func (o *Oracle) download(ctx context.Context, repodataURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, repodataURL, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build repodata request"), "url", repodataURL)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "repodata request failed"), "url", repodataURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		fetchErr := zerr.With(zerr.New("unexpected repodata response"), "url", repodataURL)
		return nil, zerr.With(fetchErr, "status", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read repodata response"), "url", repodataURL)
	}
	return data, nil
}

// cachePath derives the on-disk location for one repodata URL. The file name
// is the xxhash of the URL so arbitrary channel URLs stay filesystem-safe.
func (o *Oracle) cachePath(repodataURL string) string {
	return filepath.Join(o.cacheDir, fmt.Sprintf("%016x.json", xxhash.Sum64String(repodataURL)))
}

// readCached returns the cached document when it exists and is fresh.
func (o *Oracle) readCached(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if time.Since(info.ModTime()) > repodataTTL {
		return nil, fs.ErrNotExist
	}
	return os.ReadFile(path) //nolint:gosec // path is derived from a hash under our cache dir
}

func (o *Oracle) writeCached(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644) //nolint:gosec // cache content is public repodata
}

// markCached flags the current telemetry vertex, if any, as a cache hit.
func markCached(ctx context.Context) {
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		vertex.Cached()
	}
}

var errNoCacheDir = errors.New("no cache directory available")
