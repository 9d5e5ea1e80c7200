package domain_test

import (
	"testing"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIdentityOf_PlatformInvariant(t *testing.T) {
	linux := domain.PackageRecord{
		Name:             "numpy",
		InstalledVersion: "1.26.0",
		Build:            "py312_0",
		Ecosystem:        domain.EcosystemConda,
		Origin:           "https://conda.anaconda.org/conda-forge",
	}
	osx := domain.PackageRecord{
		Name:             "numpy",
		InstalledVersion: "1.25.2",
		Build:            "py312_h3b2aa86_0",
		Ecosystem:        domain.EcosystemConda,
		Origin:           "https://conda.anaconda.org/conda-forge",
	}

	// Installed version and build differ per platform, the identity does not.
	assert.Equal(t, domain.IdentityOf(linux), domain.IdentityOf(osx))
}

func TestIdentityOf_DistinguishingFields(t *testing.T) {
	base := domain.PackageRecord{
		Name:      "requests",
		Ecosystem: domain.EcosystemPypi,
	}

	otherName := base
	otherName.Name = "urllib3"
	assert.NotEqual(t, domain.IdentityOf(base), domain.IdentityOf(otherName))

	otherEco := base
	otherEco.Ecosystem = domain.EcosystemConda
	assert.NotEqual(t, domain.IdentityOf(base), domain.IdentityOf(otherEco))

	otherOrigin := base
	otherOrigin.Origin = "https://conda.anaconda.org/bioconda"
	assert.NotEqual(t, domain.IdentityOf(base), domain.IdentityOf(otherOrigin))
}

func TestIdentity_UsableAsMapKey(t *testing.T) {
	plan := domain.QueryPlan{}
	id := domain.Identity{Name: "numpy", Origin: "https://conda.anaconda.org/conda-forge", Ecosystem: domain.EcosystemConda}

	plan[id] = "1.26.0"
	plan[domain.Identity{Name: "numpy", Origin: "https://conda.anaconda.org/conda-forge", Ecosystem: domain.EcosystemConda}] = "9.9.9"

	assert.Len(t, plan, 1)
	assert.Equal(t, "9.9.9", plan[id])
}
