package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"playinsights.teamg8.org/internal/app"
	"playinsights.teamg8.org/internal/appconf"
	"playinsights.teamg8.org/internal/catalog"
	"playinsights.teamg8.org/internal/logging"
	"playinsights.teamg8.org/internal/models"
)

// createTestApi creates a RestAPI instance backed by a small synthesized
// parquet dataset.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithRows(t, catalog.DefaultTestRows())
}

func createTestApiWithRows(t *testing.T, rows []catalog.TestAppRow) *RestAPI {
	t.Helper()

	dataPath := filepath.Join(t.TempDir(), "apps.parquet")
	require.NoError(t, catalog.WriteTestDataset(dataPath, rows))

	catalogConfig := catalog.Config{
		DataPath: dataPath,
		DBPath:   ":memory:",
		Env:      appconf.EnvFlagToEnvironment("test"),
	}
	manager, err := catalog.InitManager(catalogConfig)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	app := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		CatalogConfig: catalogConfig,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Catalog:       manager,
	}

	return &RestAPI{Application: app}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp := serveApiRaw(t, api, endpoint)

	var response models.ResponseModel
	err := json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func serveApiRaw(t *testing.T, api *RestAPI, endpoint string) *http.Response {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	t.Cleanup(func() {
		logging.SafeCloseWithLogging(resp.Body,
			slog.Default().With(slog.String("component", "test")),
			"http_response_body")
	})
	return resp
}

func jsonDecode(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

// entryFromModel extracts the "entry" envelope from a decoded response.
func entryFromModel(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

// listFromModel extracts the "list" envelope from a decoded response.
func listFromModel(t *testing.T, model models.ResponseModel) []interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	return list
}
