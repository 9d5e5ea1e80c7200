package outdated_test

import (
	"context"
	"testing"

	"github.com/benmoss/pixi-outdated/internal/core/domain"
	"github.com/benmoss/pixi-outdated/internal/core/ports/mocks"
	"github.com/benmoss/pixi-outdated/internal/engine/outdated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestEngine_Check_CoalescesAcrossPlatforms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	condaOracle := mocks.NewMockCondaOracle(ctrl)
	pypiOracle := mocks.NewMockPypiOracle(ctrl)

	numpyID := domain.Identity{Name: "numpy", Origin: condaForge, Ecosystem: domain.EcosystemConda}
	icuID := domain.Identity{Name: "icu", Origin: condaForge, Ecosystem: domain.EcosystemConda}

	// numpy appears on both platforms but is looked up exactly once.
	condaOracle.EXPECT().
		LatestVersion(gomock.Any(), numpyID, gomock.Any()).
		Return("1.26.4", true, nil).
		Times(1)
	condaOracle.EXPECT().
		LatestVersion(gomock.Any(), icuID, gomock.Any()).
		Return("73.2", true, nil).
		Times(1)

	engine := outdated.New(newResolver(condaOracle, pypiOracle, 2))

	checked := []string{"linux-64", "osx-arm64"}
	result := engine.Check(context.Background(), map[string][]domain.PackageRecord{
		"linux-64": {
			condaRecord("numpy", "1.26.0"),
			condaRecord("icu", "73.1"),
		},
		"osx-arm64": {
			condaRecord("numpy", "1.26.0"),
		},
	}, checked)

	assert.Equal(t, checked, result.Checked)
	assert.Empty(t, result.Warnings)

	assert.Equal(t, domain.PlatformUpdates{
		"linux-64": {
			update("numpy", "1.26.0", "1.26.4"),
			update("icu", "73.1", "73.2"),
		},
		"osx-arm64": {
			update("numpy", "1.26.0", "1.26.4"),
		},
	}, result.Updates)

	assert.Equal(t, []domain.UpdateRecord{update("numpy", "1.26.0", "1.26.4")}, result.Report.Common)
	assert.Equal(t, domain.PlatformUpdates{
		"linux-64": {update("icu", "73.1", "73.2")},
	}, result.Report.PerPlatform)
}

func TestEngine_Check_FailedLookupBecomesWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	condaOracle := mocks.NewMockCondaOracle(ctrl)
	pypiOracle := mocks.NewMockPypiOracle(ctrl)

	pypiOracle.EXPECT().
		LatestVersion(gomock.Any(), gomock.Any()).
		Return("", zerr.New("index unreachable"))

	engine := outdated.New(newResolver(condaOracle, pypiOracle, 1))

	result := engine.Check(context.Background(), map[string][]domain.PackageRecord{
		"linux-64": {pypiRecord("requests", "2.31.0")},
	}, []string{"linux-64"})

	assert.Empty(t, result.Updates["linux-64"])
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "requests", result.Warnings[0].Identity.Name)
}

func TestEngine_Check_UpToDatePlatformKeepsEmptyEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	condaOracle := mocks.NewMockCondaOracle(ctrl)
	pypiOracle := mocks.NewMockPypiOracle(ctrl)

	condaOracle.EXPECT().
		LatestVersion(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("1.26.4", true, nil)

	engine := outdated.New(newResolver(condaOracle, pypiOracle, 1))

	result := engine.Check(context.Background(), map[string][]domain.PackageRecord{
		"linux-64":  {condaRecord("numpy", "1.26.0")},
		"osx-arm64": {condaRecord("numpy", "1.26.4")},
	}, []string{"linux-64", "osx-arm64"})

	// osx-arm64 is present, empty, and vetoes any common record.
	entry, present := result.Updates["osx-arm64"]
	assert.True(t, present)
	assert.Empty(t, entry)

	assert.Empty(t, result.Report.Common)
	assert.Equal(t, domain.PlatformUpdates{
		"linux-64": {update("numpy", "1.26.0", "1.26.4")},
	}, result.Report.PerPlatform)
}

func TestEngine_Check_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	condaOracle := mocks.NewMockCondaOracle(ctrl)
	pypiOracle := mocks.NewMockPypiOracle(ctrl)

	condaOracle.EXPECT().
		LatestVersion(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("1.26.4", true, nil).
		Times(2)

	engine := outdated.New(newResolver(condaOracle, pypiOracle, 1))

	input := map[string][]domain.PackageRecord{
		"linux-64":  {condaRecord("numpy", "1.26.0")},
		"osx-arm64": {condaRecord("numpy", "1.26.0")},
	}
	checked := []string{"linux-64", "osx-arm64"}

	first := engine.Check(context.Background(), input, checked)
	second := engine.Check(context.Background(), input, checked)

	assert.Equal(t, first, second)
}
