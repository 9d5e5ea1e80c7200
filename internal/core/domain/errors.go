package domain

import "go.trai.ch/zerr"

var (
	// ErrEnvironmentNotFound is returned when the requested environment does
	// not exist in the lockfile.
	ErrEnvironmentNotFound = zerr.New("environment not found in lockfile")

	// ErrNoPlatforms is returned when an environment declares no platforms.
	ErrNoPlatforms = zerr.New("no platforms found for environment")

	// ErrUnknownEcosystem is recorded in the version cache when a record
	// carries an ecosystem no oracle is registered for.
	ErrUnknownEcosystem = zerr.New("unknown package ecosystem")

	// ErrListFailed is returned when the package lister cannot produce a
	// listing for a platform.
	ErrListFailed = zerr.New("package listing failed")
)
