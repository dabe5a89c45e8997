package webui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playinsights.teamg8.org/internal/app"
	"playinsights.teamg8.org/internal/appconf"
	"playinsights.teamg8.org/internal/catalog"
)

func createTestWebUI(t *testing.T) *WebUI {
	t.Helper()

	dataPath := filepath.Join(t.TempDir(), "apps.parquet")
	require.NoError(t, catalog.WriteTestDataset(dataPath, catalog.DefaultTestRows()))

	catalogConfig := catalog.Config{
		DataPath: dataPath,
		DBPath:   ":memory:",
		Env:      appconf.Test,
	}
	manager, err := catalog.InitManager(catalogConfig)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	return NewWebUI(&app.Application{
		Config:        appconf.Config{Env: appconf.Test},
		CatalogConfig: catalogConfig,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Catalog:       manager,
	})
}

func serveWebUI(t *testing.T, endpoint string) *httptest.ResponseRecorder {
	webUI := createTestWebUI(t)

	router := httprouter.New()
	webUI.SetRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", endpoint, nil))
	return rec
}

func TestDashboardHandler(t *testing.T) {
	rec := serveWebUI(t, "/dashboard")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Google Play Store Insights Dashboard")
	assert.Contains(t, body, "$150")
	assert.Contains(t, body, "160")
	assert.Contains(t, body, "3.83")
	for _, panel := range dashboardPanels {
		assert.Contains(t, body, "/dashboard/charts/"+panel.Name+".png")
		assert.Contains(t, body, panel.Title)
	}
}

func TestDashboardHandlerCarriesFilterQueryToCharts(t *testing.T) {
	rec := serveWebUI(t, "/dashboard?categories=Games&regions=NA")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "categories=Games")
	// Block Stacker is the only Games app in NA, so revenue is zero.
	assert.Contains(t, rec.Body.String(), "$0")
}

func TestDashboardHandlerRejectsMalformedDate(t *testing.T) {
	rec := serveWebUI(t, "/dashboard?startDate=bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChartHandlerRendersPNG(t *testing.T) {
	for _, panel := range dashboardPanels {
		t.Run(panel.Name, func(t *testing.T) {
			rec := serveWebUI(t, "/dashboard/charts/"+panel.Name+".png")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
			// PNG magic bytes
			require.Greater(t, rec.Body.Len(), 8)
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes()[:4])
		})
	}
}

func TestChartHandlerEmptyViewYieldsNoContent(t *testing.T) {
	rec := serveWebUI(t, "/dashboard/charts/category-revenue.png?categories=")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChartHandlerUnknownPanel(t *testing.T) {
	rec := serveWebUI(t, "/dashboard/charts/nope.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDebugIndexHandler(t *testing.T) {
	rec := serveWebUI(t, "/debug/catalog?dataType=apps")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Block Stacker")
}

func TestDebugIndexHandlerTopDevelopers(t *testing.T) {
	rec := serveWebUI(t, "/debug/catalog?dataType=top_developers")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dev.tasks")
}

func TestDebugIndexHandlerUnknownDataType(t *testing.T) {
	rec := serveWebUI(t, "/debug/catalog?dataType=wat")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please use one of the following")
}
