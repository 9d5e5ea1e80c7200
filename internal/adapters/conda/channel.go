// Package conda provides the conda-side collaborators: channel derivation
// from package download URLs and the repodata-backed version oracle.
package conda

import (
	"net/url"
	"regexp"
	"strings"
)

// subdirPattern matches conda platform subdirectories such as linux-64,
// osx-arm64, win-64 and the platform-independent noarch.
var subdirPattern = regexp.MustCompile(`^(noarch|[a-z]+-[0-9a-z_]+)$`)

// ChannelFromSource extracts the channel base URL from a conda package
// download URL by stripping the trailing filename and platform subdirectory.
//
//	https://conda.anaconda.org/conda-forge/linux-64/python-3.12.0-h1.conda
//	-> https://conda.anaconda.org/conda-forge
//
// The second return is false when no channel can be derived. Absence is not
// an error; such packages are simply never queried.
func ChannelFromSource(source string) (string, bool) {
	u, err := url.Parse(source)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		return "", false
	}

	// Drop the package filename, then the platform subdirectory.
	last := segments[len(segments)-1]
	if strings.Contains(last, ".") && !subdirPattern.MatchString(last) {
		segments = segments[:len(segments)-1]
	}
	if len(segments) > 0 && subdirPattern.MatchString(segments[len(segments)-1]) {
		segments = segments[:len(segments)-1]
	}
	if len(segments) == 0 {
		return "", false
	}

	return u.Scheme + "://" + u.Host + "/" + strings.Join(segments, "/"), true
}
