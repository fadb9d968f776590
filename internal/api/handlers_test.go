package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyroberto/roblox/pkg/catalog"
	"github.com/soyroberto/roblox/pkg/seed"

	// Import for side-effect of formula registration.
	_ "github.com/soyroberto/roblox/formulas/database"
	_ "github.com/soyroberto/roblox/formulas/gameserver"
	_ "github.com/soyroberto/roblox/formulas/loadbalancer"
)

var seededComponents = seed.Components()

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := NewHandlers(
		catalog.NewCatalog(seededComponents),
		catalog.NewStepSequence(seed.Steps()),
	)
	SetupRouter(router, handlers)
	return router
}

func componentIDByType(t *testing.T, componentType catalog.ComponentType) string {
	t.Helper()
	for _, c := range seededComponents {
		if c.Type == componentType {
			return c.ID
		}
	}
	t.Fatalf("no seeded component of type %s", componentType)
	return ""
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListComponents(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/components", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var components []catalog.ArchitectureComponent
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &components))
	assert.Equal(t, len(seededComponents), len(components))

	// Ordered by step_order.
	for i := 1; i < len(components); i++ {
		assert.LessOrEqual(t, components[i-1].StepOrder, components[i].StepOrder)
	}
}

func TestListComponentsFilteredByDifficulty(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/components?difficulty=beginner", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var components []catalog.ArchitectureComponent
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &components))
	assert.NotEmpty(t, components)
	for _, c := range components {
		assert.Equal(t, catalog.Beginner, c.DifficultyLevel)
	}
}

func TestListComponentsUnknownDifficulty(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/components?difficulty=expert", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetComponent(t *testing.T) {
	router := testRouter()
	id := componentIDByType(t, catalog.CDN)

	w := doRequest(router, http.MethodGet, "/api/components/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var comp catalog.ArchitectureComponent
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &comp))
	assert.Equal(t, id, comp.ID)
	assert.Equal(t, catalog.CDN, comp.Type)
}

func TestGetComponentNotFound(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/components/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSteps(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/steps", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var steps []catalog.JourneyStep
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &steps))
	assert.Equal(t, 8, len(steps))
	assert.Equal(t, 1, steps[0].StepNumber)
	assert.Equal(t, 8, steps[len(steps)-1].StepNumber)
}

func TestGetStep(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/steps/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var step catalog.JourneyStep
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &step))
	assert.Equal(t, 3, step.StepNumber)
	assert.Equal(t, "CDN Asset Delivery", step.Title)
}

func TestGetStepNotFound(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/steps/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStepNonNumeric(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/steps/first", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateCapacity(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodPost, "/api/calculate-capacity", map[string]interface{}{
		"component_id":     componentIDByType(t, catalog.GameServer),
		"calculation_type": "basic",
		"inputs": map[string]interface{}{
			"concurrent_players": 26000000,
			"players_per_server": 100,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Result      map[string]float64 `json:"result"`
		Explanation string             `json:"explanation"`
	}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(260000), body.Result["servers_needed"])
	assert.NotEmpty(t, body.Explanation)
}

func TestCalculateCapacityUnknownComponent(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodPost, "/api/calculate-capacity", map[string]interface{}{
		"component_id":     "does-not-exist",
		"calculation_type": "basic",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalculateCapacityUnsupportedType(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodPost, "/api/calculate-capacity", map[string]interface{}{
		"component_id":     componentIDByType(t, catalog.Monitoring),
		"calculation_type": "basic",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]string
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "no capacity formula registered")
}

func TestCalculateCapacityInvalidInput(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodPost, "/api/calculate-capacity", map[string]interface{}{
		"component_id":     componentIDByType(t, catalog.Database),
		"calculation_type": "basic",
		"inputs": map[string]interface{}{
			"reads_per_second": -5,
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateCapacityMissingComponentID(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodPost, "/api/calculate-capacity", map[string]interface{}{
		"calculation_type": "basic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverview(t *testing.T) {
	router := testRouter()

	w := doRequest(router, http.MethodGet, "/api/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var o catalog.OverviewSummary
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &o))
	assert.Equal(t, float64(26000000), o.TotalConcurrentPlayers)
	assert.Equal(t, float64(50000), o.TotalGameServers)
	assert.Equal(t, float64(10000000), o.RequestsPerSecond)
	assert.Equal(t, 99.99, o.UptimePercentage)
}
