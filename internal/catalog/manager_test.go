package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playinsights.teamg8.org/internal/appconf"
	"playinsights.teamg8.org/internal/models"
)

func testConfig(dataPath string) Config {
	return Config{
		DataPath: dataPath,
		DBPath:   ":memory:",
		Env:      appconf.Test,
	}
}

func initTestManager(t *testing.T, rows []TestAppRow) *Manager {
	t.Helper()

	path := filepath.Join(t.TempDir(), "apps.parquet")
	require.NoError(t, WriteTestDataset(path, rows))

	manager, err := InitManager(testConfig(path))
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)
	return manager
}

func TestInitManagerLoadsDataset(t *testing.T) {
	manager := initTestManager(t, DefaultTestRows())

	apps := manager.Apps()
	require.Len(t, apps, 3)
	assert.Equal(t, "Block Stacker", apps[0].Name)
	assert.Equal(t, "Games", apps[0].Category)
	assert.Equal(t, "dev.blocks", apps[0].DeveloperID)
	assert.Equal(t, "NA", apps[0].Region)
	assert.Equal(t, models.ZoneDeveloped, apps[0].Zone)
	assert.Equal(t, int64(100), apps[0].Installs)
	assert.Equal(t, 4.5, apps[0].Rating)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), apps[0].Released.UTC())
}

func TestInitManagerDerivesRevenueExactly(t *testing.T) {
	rows := DefaultTestRows()
	rows = append(rows, TestAppRow{
		Category:     "Finance",
		AppName:      "Penny Wise",
		DeveloperID:  "dev.penny",
		GeoRegion:    "NA",
		EconomicZone: "Developed",
		Installs:     3,
		Price:        0.1,
		Rating:       4.2,
		Released:     time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	manager := initTestManager(t, rows)

	apps := manager.Apps()
	require.Len(t, apps, 4)
	assert.Equal(t, "0", apps[0].Revenue.String())
	assert.Equal(t, "50", apps[1].Revenue.String())
	assert.Equal(t, "100", apps[2].Revenue.String())
	// 3 × $0.10 must come out exact, not 0.30000000000000004.
	assert.Equal(t, "0.3", apps[3].Revenue.String())
}

func TestInitManagerMissingDataset(t *testing.T) {
	_, err := InitManager(testConfig(filepath.Join(t.TempDir(), "nope.parquet")))
	assert.Error(t, err)
}

func TestZoneClassifierPresent(t *testing.T) {
	manager := initTestManager(t, DefaultTestRows())

	zc := manager.ZoneClassifier()
	require.NotNil(t, zc)
	assert.Equal(t, models.EconomicZones, zc.Zones())

	assert.True(t, zc.RowMatches(manager.Apps()[0], []models.EconomicZone{models.ZoneDeveloped}))
	assert.False(t, zc.RowMatches(manager.Apps()[0], []models.EconomicZone{models.ZoneEmerging}))
	assert.False(t, zc.RowMatches(manager.Apps()[0], nil))
}

func TestZoneClassifierAbsentWhenColumnMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.parquet")
	require.NoError(t, WriteTestDatasetWithoutZones(path, DefaultTestRows()))

	manager, err := InitManager(testConfig(path))
	require.NoError(t, err)
	defer manager.Shutdown()

	assert.Nil(t, manager.ZoneClassifier())
	for _, a := range manager.Apps() {
		assert.Empty(t, a.Zone)
	}
}

func TestZoneIndicatorsAreMutuallyExclusive(t *testing.T) {
	manager := initTestManager(t, DefaultTestRows())

	for _, a := range manager.Apps() {
		var set int
		for _, zone := range models.EconomicZones {
			if a.InZone(zone) {
				set++
			}
		}
		assert.Equal(t, 1, set, "each row belongs to exactly one zone")
	}
}

func TestDistinctValuesKeepFirstAppearanceOrder(t *testing.T) {
	manager := initTestManager(t, DefaultTestRows())

	assert.Equal(t, []string{"Games", "Productivity"}, manager.Categories())
	assert.Equal(t, []string{"NA", "EU"}, manager.Regions())
}

func TestReleasedBounds(t *testing.T) {
	manager := initTestManager(t, DefaultTestRows())

	min, max := manager.ReleasedBounds()
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), min.UTC())
	assert.Equal(t, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), max.UTC())
}

func TestManagerMirrorsCatalogIntoDatabase(t *testing.T) {
	manager := initTestManager(t, DefaultTestRows())

	count, err := manager.CatalogDB.CountApps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDataPathIsAbsoluteForLocalFiles(t *testing.T) {
	manager := initTestManager(t, DefaultTestRows())
	assert.True(t, filepath.IsAbs(manager.DataPath()))
}
