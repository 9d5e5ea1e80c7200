package ports

//go:generate go run go.uber.org/mock/mockgen -source=platforms.go -destination=mocks/mock_platforms.go -package=mocks

// PlatformSource reports the platforms an outdated check should cover when
// the user did not request specific ones.
type PlatformSource interface {
	// Platforms returns the platforms of the given environment, resolved
	// from the workspace next to the manifest.
	Platforms(manifestPath, environment string) ([]string, error)
}
