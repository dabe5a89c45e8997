package restapi

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playinsights.teamg8.org/internal/catalog"
)

func TestZoneRevenueHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/insights/zone-revenue.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

func TestZoneRevenueHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/insights/zone-revenue.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromModel(t, model)
	require.Len(t, list, 4)

	// Indicator column sums: two Developed rows, one Emerging row.
	expected := map[string]string{
		"Developed": "2",
		"Emerging":  "1",
		"Frontier":  "0",
		"Other":     "0",
	}
	for _, item := range list {
		zone, ok := item.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, expected[zone["zone"].(string)], zone["revenue"])
	}
}

func TestZoneRevenueHandlerWithoutZoneColumn(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "apps.parquet")
	require.NoError(t, catalog.WriteTestDatasetWithoutZones(dataPath, catalog.DefaultTestRows()))

	api := createTestApi(t)
	manager, err := catalog.InitManager(catalog.Config{
		DataPath: dataPath,
		DBPath:   ":memory:",
		Env:      api.Config.Env,
	})
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)
	api.Catalog = manager

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/insights/zone-revenue.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := listFromModel(t, model)
	assert.Empty(t, list)
}
