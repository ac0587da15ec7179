package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EXCALOFRIO/RonaldosVinicius/controllers"
	"github.com/EXCALOFRIO/RonaldosVinicius/models"
	"github.com/EXCALOFRIO/RonaldosVinicius/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, controllers.RegisterValidators())

	presets, err := services.LoadPresetCatalog("")
	require.NoError(t, err)
	services.SetPresetStore(services.NewMemoryPresetStore(presets))

	r := gin.New()
	api := r.Group("/api")
	api.POST("/simulate", controllers.Simulate)
	api.POST("/concentration", controllers.GetConcentration)
	api.GET("/limits", controllers.GetLegalLimits)
	api.POST("/timeline/resolve", controllers.ResolveTimeline)
	api.POST("/timeline/add", controllers.AddDrink)
	api.POST("/timeline/remove", controllers.RemoveDrink)
	api.POST("/timeline/update", controllers.UpdateDrink)
	api.POST("/timeline/preset", controllers.ApplyPreset)
	api.GET("/presets", controllers.GetPresets)
	api.GET("/presets/:kind/:key", controllers.GetPreset)
	api.GET("/durations", controllers.GetDurations)
	api.GET("/kinds", controllers.GetDrinkKinds)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func scenarioABeer() models.Drink {
	return models.Drink{ID: "a", Kind: models.KindBeer, VolumeMl: 330, AbvPercent: 5, ConsumptionMinutes: 30}
}

func TestSimulate_OK(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/simulate", gin.H{
		"drinks":  []models.Drink{scenarioABeer()},
		"factors": gin.H{"gender": "male", "weightKg": 75},
		"unit":    "blood",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.UnitBlood, resp.Unit)
	assert.Len(t, resp.Series, 42)
	assert.InDelta(t, 0.2177647, resp.Peak.Value, 1e-6)
	assert.Equal(t, 30.0, resp.Peak.TimeMinutes)
	assert.Equal(t, 0.0, resp.TimeAboveLimit.Minutes)
	assert.Equal(t, 116.0, resp.TimeToSober.Minutes)
	assert.Equal(t, 0.5, resp.LegalLimit)
}

func TestSimulate_DefaultsToBlood(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/simulate", gin.H{
		"drinks":  []models.Drink{scenarioABeer()},
		"factors": gin.H{"gender": "female", "weightKg": 60},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.UnitBlood, resp.Unit)
}

func TestSimulate_EmptyForZeroWeight(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/simulate", gin.H{
		"drinks":  []models.Drink{scenarioABeer()},
		"factors": gin.H{"gender": "male", "weightKg": 0},
		"unit":    "breath",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["series"]))
	assert.JSONEq(t, `{"value":0,"timeMinutes":0,"formatted":"0h 0m"}`, string(raw["peak"]))
	assert.JSONEq(t, `{"minutes":0,"formatted":"0h 0m","isEstimate":false}`, string(raw["timeToSober"]))
}

func TestSimulate_ValidationErrors(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"bad unit", gin.H{"factors": gin.H{"gender": "male", "weightKg": 75}, "unit": "urine"}},
		{"missing gender", gin.H{"factors": gin.H{"weightKg": 75}}},
		{"bad gender", gin.H{"factors": gin.H{"gender": "robot", "weightKg": 75}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/simulate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestSimulate_RejectsOutOfRangeDrinks(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name  string
		field string
		value float64
	}{
		{"volume too large", "volumeMl", 5001},
		{"negative volume", "volumeMl", -1},
		{"abv above 100", "abvPercent", 100.5},
		{"negative abv", "abvPercent", -0.1},
		{"consumption too long", "consumptionMinutes", 601},
		{"negative consumption", "consumptionMinutes", -5},
		{"start too late", "startMinute", 5e6},
		{"negative start", "startMinute", -1},
		{"wait too long", "waitAfterPreviousMinutes", 1441},
		{"negative wait", "waitAfterPreviousMinutes", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drink := gin.H{"id": "a", "volumeMl": 330, "abvPercent": 5, "consumptionMinutes": 30}
			drink[tt.field] = tt.value

			w := doJSON(t, r, http.MethodPost, "/api/simulate", gin.H{
				"drinks":  []gin.H{drink},
				"factors": gin.H{"gender": "male", "weightKg": 75},
			})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestSimulate_RejectsOutOfRangeFactors(t *testing.T) {
	r := setupRouter(t)

	for _, weight := range []float64{-1, 5, 301} {
		w := doJSON(t, r, http.MethodPost, "/api/simulate", gin.H{
			"drinks":  []models.Drink{scenarioABeer()},
			"factors": gin.H{"gender": "male", "weightKg": weight},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "weight=%v", weight)
	}
}

func TestSimulate_RejectsTooManyDrinks(t *testing.T) {
	r := setupRouter(t)

	drinks := make([]models.Drink, models.MaxDrinks+1)
	for i := range drinks {
		drinks[i] = scenarioABeer()
	}
	w := doJSON(t, r, http.MethodPost, "/api/simulate", gin.H{
		"drinks":  drinks,
		"factors": gin.H{"gender": "male", "weightKg": 75},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 가득 찬 타임라인에는 추가 불가
	w = doJSON(t, r, http.MethodPost, "/api/timeline/add", gin.H{"drinks": drinks[:models.MaxDrinks], "kind": "beer"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimeline_RejectsOutOfRangeDrinks(t *testing.T) {
	r := setupRouter(t)

	drink := scenarioABeer()
	drink.VolumeMl = 1e6
	w := doJSON(t, r, http.MethodPost, "/api/timeline/resolve", gin.H{"drinks": []models.Drink{drink}, "fromIndex": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetConcentration(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/concentration", gin.H{
		"drinks":      []models.Drink{scenarioABeer()},
		"factors":     gin.H{"gender": "male", "weightKg": 75},
		"timeMinutes": 1000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Concentration float64 `json:"concentration"`
		LegalLimit    float64 `json:"legalLimit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.Concentration)
	assert.Equal(t, 0.5, resp.LegalLimit)
}

func TestGetLegalLimits(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/limits", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"blood":{"standard":0.5,"novelPro":0.3},"breath":{"standard":0.25,"novelPro":0.15}}`, w.Body.String())
}

func decodeDrinks(t *testing.T, w *httptest.ResponseRecorder) []models.Drink {
	t.Helper()
	var resp models.TimelineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Drinks
}

func TestTimeline_ResolveScenarioB(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/timeline/resolve", gin.H{
		"drinks": []models.Drink{
			{ID: "a", ConsumptionMinutes: 30},
			{ID: "b", ConsumptionMinutes: 30, WaitAfterPreviousMinutes: 20},
		},
		"fromIndex": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50.0, decodeDrinks(t, w)[1].StartMinute)
}

func TestTimeline_AddUpdateRemove(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/timeline/add", gin.H{"kind": "wine", "id": "w1"})
	require.Equal(t, http.StatusOK, w.Code)
	drinks := decodeDrinks(t, w)
	require.Len(t, drinks, 1)
	assert.Equal(t, 150.0, drinks[0].VolumeMl)

	w = doJSON(t, r, http.MethodPost, "/api/timeline/add", gin.H{"drinks": drinks, "kind": "beer", "id": "b1"})
	require.Equal(t, http.StatusOK, w.Code)
	drinks = decodeDrinks(t, w)
	require.Len(t, drinks, 2)
	assert.Equal(t, 50.0, drinks[1].StartMinute)

	// 문자열로 온 값도 숫자로 처리
	w = doJSON(t, r, http.MethodPost, "/api/timeline/update", gin.H{
		"drinks": drinks, "id": "w1", "field": "consumptionMinutes", "value": "60",
	})
	require.Equal(t, http.StatusOK, w.Code)
	drinks = decodeDrinks(t, w)
	assert.Equal(t, 80.0, drinks[1].StartMinute)

	w = doJSON(t, r, http.MethodPost, "/api/timeline/remove", gin.H{"drinks": drinks, "id": "w1"})
	require.Equal(t, http.StatusOK, w.Code)
	drinks = decodeDrinks(t, w)
	require.Len(t, drinks, 1)
	assert.Equal(t, "b1", drinks[0].ID)
	assert.Equal(t, 0.0, drinks[0].WaitAfterPreviousMinutes)
}

func TestTimeline_Errors(t *testing.T) {
	r := setupRouter(t)
	drinks := []models.Drink{scenarioABeer()}

	w := doJSON(t, r, http.MethodPost, "/api/timeline/add", gin.H{"kind": "cider"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/timeline/update", gin.H{"drinks": drinks, "id": "nope", "field": "volumeMl", "value": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/timeline/update", gin.H{"drinks": drinks, "id": "a", "field": "colour", "value": "red"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/timeline/remove", gin.H{"drinks": drinks, "id": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/timeline/remove", gin.H{"drinks": drinks})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimeline_ApplyPreset(t *testing.T) {
	r := setupRouter(t)
	drinks := []models.Drink{scenarioABeer()}

	w := doJSON(t, r, http.MethodPost, "/api/timeline/preset", gin.H{"drinks": drinks, "id": "a", "presetKey": "pinta"})
	require.Equal(t, http.StatusOK, w.Code)
	out := decodeDrinks(t, w)
	assert.Equal(t, 500.0, out[0].VolumeMl)
	assert.Equal(t, 5.2, out[0].AbvPercent)
	assert.Equal(t, "pinta", out[0].Preset)

	w = doJSON(t, r, http.MethodPost, "/api/timeline/preset", gin.H{"drinks": drinks, "id": "a", "presetKey": "custom"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PresetCustom, decodeDrinks(t, w)[0].Preset)

	// 와인 프리셋은 맥주에서 찾지 않음
	w = doJSON(t, r, http.MethodPost, "/api/timeline/preset", gin.H{"drinks": drinks, "id": "a", "presetKey": "copa"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPresets(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/presets?kind=spirits", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var presets []models.DrinkPreset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &presets))
	require.Len(t, presets, 3)
	assert.Equal(t, "standard", presets[0].Key)

	w = doJSON(t, r, http.MethodGet, "/api/presets/wine/copa", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var copa models.DrinkPreset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &copa))
	assert.Equal(t, 150.0, copa.VolumeMl)

	w = doJSON(t, r, http.MethodGet, "/api/presets/wine/pinta", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDurationsAndKinds(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/durations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var durations []services.DurationOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &durations))
	assert.Len(t, durations, 7)
	assert.Equal(t, models.DurationHidalgo, durations[0].Key)

	w = doJSON(t, r, http.MethodGet, "/api/kinds", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var kinds []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kinds))
	require.Len(t, kinds, 3)
	assert.Equal(t, "beer", kinds[0]["kind"])
}
