package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/agroexchange/internal/charts"
	"github.com/nurpe/agroexchange/internal/config"
	"github.com/nurpe/agroexchange/internal/excel"
	"github.com/nurpe/agroexchange/internal/pdf"
	"github.com/nurpe/agroexchange/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		Sessions:    config.SessionConfig{MaxEntries: 100, TTL: time.Hour},
		Dashboard:   config.DashboardConfig{Currency: "INR"},
	}
	log := zerolog.Nop()
	sessions := service.NewSessions(cfg.Sessions, log)
	reports := service.NewReportService(sessions, excel.NewGenerator(), pdf.NewGenerator(), charts.NewRenderer(), cfg)
	return NewRouter(NewHandler(sessions, reports, log), cfg, log)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
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

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "landing", body["view"])
	return body["session_id"].(string)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalog(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["residue_types"], 6)
	assert.Len(t, body["gcv_bands"], 5)
	assert.Len(t, body["crops"], 8)
	assert.Len(t, body["months"], 12)
}

func TestBuyerJourney(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)
	base := "/sessions/" + id

	w := do(t, r, http.MethodPost, base+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "role_selection", body["view"])
	assert.Equal(t, true, body["view_changed"])

	w = do(t, r, http.MethodPost, base+"/role", gin.H{"role": "buyer"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "buyer_form", decode(t, w)["view"])

	w = do(t, r, http.MethodGet, base+"/dashboard", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, base+"/buyer-intent", gin.H{
		"residue_type": "Rice Straw",
		"location":     "",
		"quantity":     0,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "location", decode(t, w)["field"])

	w = do(t, r, http.MethodPost, base+"/buyer-intent", gin.H{
		"residue_type": "Rice Straw",
		"location":     "Ludhiana, Punjab",
		"quantity":     500,
		"expected_gcv": "medium",
		"peak_months":  []string{"Nov", "October"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "dashboard", body["view"])
	assert.Equal(t, "buyer", body["role"])
	intent := body["buyer_intent"].(map[string]interface{})
	assert.Equal(t, "Rice Straw", intent["residue_type"])
	assert.Equal(t, "4000 - 4500 kcal/kg", intent["expected_gcv"])
	assert.Equal(t, []interface{}{"October", "November"}, intent["peak_months"])

	w = do(t, r, http.MethodGet, base+"/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Real-time supply and demand insights for Ludhiana, Punjab", body["subtitle"])
	assert.Len(t, body["matches"], 3)

	w = do(t, r, http.MethodGet, base+"/dashboard/export.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "agroexchange-buyer-rice-straw-")

	w = do(t, r, http.MethodGet, base+"/dashboard/export.pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	w = do(t, r, http.MethodGet, base+"/dashboard/price-trend.png", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = do(t, r, http.MethodPost, base+"/navigate", gin.H{"view": "marketplace"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "marketplace", body["view"])
	assert.Equal(t, "buyer", body["role"])
	assert.NotNil(t, body["buyer_intent"])
}

func TestSellerJourney(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)
	base := "/sessions/" + id

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, base+"/start", nil).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, base+"/role", gin.H{"role": "seller"}).Code)

	w := do(t, r, http.MethodPost, base+"/seller-type", gin.H{"seller_type": "organization"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "seller_form", decode(t, w)["view"])

	w = do(t, r, http.MethodPost, base+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "seller_type", decode(t, w)["view"])

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, base+"/seller-type", gin.H{"seller_type": "Organization (FPO/Trader)"}).Code)

	w = do(t, r, http.MethodPost, base+"/seller-intent", gin.H{
		"crop_types":           []string{"wheat", "paddy"},
		"waste_type":           "wheat straw",
		"procurement_capacity": 200,
		"location":             "Karnal, Haryana",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "dashboard", body["view"])
	intent := body["seller_intent"].(map[string]interface{})
	assert.Equal(t, "Organization (FPO/Trader)", intent["seller_type"])
	assert.Equal(t, []interface{}{"Paddy", "Wheat"}, intent["crop_types"])
}

func TestErrorMapping(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/sessions/not-a-uuid/start", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/sessions/7f1c8f8e-3f4e-4a6c-9a53-2b7f5d1e0c11/start", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	id := createSession(t, r)
	base := "/sessions/" + id

	w = do(t, r, http.MethodPost, base+"/back", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, base+"/role", gin.H{"role": "broker"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `invalid input: role "broker"`, decode(t, w)["error"])

	w = do(t, r, http.MethodPost, base+"/role", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, base+"/navigate", gin.H{"view": "checkout"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `invalid input: view "checkout"`, decode(t, w)["error"])

	w = do(t, r, http.MethodPost, base+"/navigate", gin.H{"view": "dashboard"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, base+"/buyer-intent", gin.H{"residue_type": "Rice Straw"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnknownResidueIsFieldError(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)
	base := "/sessions/" + id
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, base+"/start", nil).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, base+"/role", gin.H{"role": "buyer"}).Code)

	w := do(t, r, http.MethodPost, base+"/buyer-intent", gin.H{
		"residue_type": "corn cobs",
		"location":     "Meerut",
		"quantity":     10,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "residueType", decode(t, w)["field"])
}
