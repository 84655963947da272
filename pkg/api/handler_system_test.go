package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/version"
	testdb "github.com/taskdag/taskdag/test/database"
)

func TestHealthzHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

	var body HealthResponse
	w := doJSON(t, router, http.MethodGet, "/healthz", nil, &body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body.Status)
	require.NotNil(t, body.Database)
	assert.Equal(t, "healthy", body.Database.Status)
}

func TestVersionHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

	var body map[string]string
	w := doJSON(t, router, http.MethodGet, "/api/v1/version", nil, &body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, version.AppName, body["app"])
	assert.NotEmpty(t, body["version"])
}

func TestSystemWarningsHandler(t *testing.T) {
	client := testdb.NewTestClient(t)

	t.Run("warnings round-trip through the endpoint", func(t *testing.T) {
		warnings := services.NewSystemWarningsService()
		warnings.AddWarning(services.WarningCategorySchedule,
			"stored cron expression does not parse", "unexpected field count", "dag_broken")

		_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{}, withWarnings(warnings))

		var body SystemWarningsResponse
		w := doJSON(t, router, http.MethodGet, "/api/v1/system/warnings", nil, &body)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, body.Warnings, 1)
		assert.Equal(t, services.WarningCategorySchedule, body.Warnings[0].Category)
		assert.Equal(t, "dag_broken", body.Warnings[0].Source)
	})

	t.Run("no warnings service yields an empty list", func(t *testing.T) {
		_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

		var body SystemWarningsResponse
		w := doJSON(t, router, http.MethodGet, "/api/v1/system/warnings", nil, &body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, body.Warnings)
	})
}
