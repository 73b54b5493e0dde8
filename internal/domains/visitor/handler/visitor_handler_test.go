package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-backend/internal/domains/visitor/model"
)

// fakeService returns canned results so the handler's HTTP mapping can
// be asserted in isolation.
type fakeService struct {
	visitor    *model.Visitor
	err        error
	changed    bool
	deleteErr  error
	stats      *model.ParkingStats
	exportData []byte
}

func (f *fakeService) Register(context.Context, *model.RegisterVisitorRequest) (*model.Visitor, error) {
	return f.visitor, f.err
}

func (f *fakeService) List(context.Context, model.VisitorFilter) ([]model.Visitor, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	if f.visitor == nil {
		return []model.Visitor{}, 0, nil
	}
	return []model.Visitor{*f.visitor}, 1, nil
}

func (f *fakeService) Get(context.Context, string) (*model.Visitor, error) {
	return f.visitor, f.err
}

func (f *fakeService) UpdateStatus(context.Context, string, string) (bool, error) {
	return f.changed, f.err
}

func (f *fakeService) Edit(context.Context, string, *model.UpdateVisitorRequest) (*model.Visitor, error) {
	return f.visitor, f.err
}

func (f *fakeService) Delete(context.Context, string) error {
	return f.deleteErr
}

func (f *fakeService) SearchByName(context.Context, string) (*model.Visitor, error) {
	return f.visitor, f.err
}

func (f *fakeService) VisitorsByUnit(context.Context, string) ([]model.Visitor, error) {
	return nil, nil
}

func (f *fakeService) Stats(context.Context) (*model.ParkingStats, error) {
	return f.stats, f.err
}

func (f *fakeService) ExportXLSX(context.Context) ([]byte, error) {
	return f.exportData, f.err
}

func sampleVisitor() *model.Visitor {
	return &model.Visitor{
		ID:           uuid.New(),
		Name:         "Alice",
		ICNumber:     "901231145678",
		LicensePlate: "JOM1234",
		UnitNumber:   "B-1-01",
		Status:       model.StatusActive,
		CreatedAt:    time.Now(),
		LastUpdated:  time.Now(),
	}
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewVisitorHandler(svc)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/visitors", h.Register)
		v1.GET("/visitors", h.GetAll)
		v1.GET("/visitors/stats", h.Stats)
		v1.GET("/visitors/export", h.Export)
		v1.GET("/visitors/:id", h.GetByID)
		v1.PUT("/visitors/:id", h.Update)
		v1.PATCH("/visitors/:id/status", h.UpdateStatus)
		v1.DELETE("/visitors/:id", h.Delete)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterEndpoint_Created(t *testing.T) {
	v := sampleVisitor()
	r := setupRouter(&fakeService{visitor: v})

	w := doJSON(t, r, http.MethodPost, "/api/v1/visitors", gin.H{
		"name":          "Alice",
		"ic_number":     "901231145678",
		"license_plate": "JOM1234",
		"unit_number":   "B-1-01",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, v.ID.String(), data["visitor_id"])
	assert.Equal(t, "Visitor created successfully", data["detail"])
}

func TestRegisterEndpoint_DuplicateIC(t *testing.T) {
	r := setupRouter(&fakeService{err: model.ErrDuplicateIC})

	w := doJSON(t, r, http.MethodPost, "/api/v1/visitors", gin.H{
		"name":          "Bob",
		"ic_number":     "901231145678",
		"license_plate": "ABC999",
		"unit_number":   "A-2-02",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])

	errObj := body["error"].(map[string]any)
	assert.Equal(t, "DUPLICATE_IC_NUMBER", errObj["code"])
}

func TestRegisterEndpoint_ValidationFailure(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/visitors", gin.H{"name": "Alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllEndpoint_Meta(t *testing.T) {
	r := setupRouter(&fakeService{visitor: sampleVisitor()})

	w := doJSON(t, r, http.MethodGet, "/api/v1/visitors?limit=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["total"])
	assert.Equal(t, float64(10), meta["limit"])
}

func TestGetByIDEndpoint_NotFound(t *testing.T) {
	r := setupRouter(&fakeService{err: model.ErrVisitorNotFound})

	w := doJSON(t, r, http.MethodGet, "/api/v1/visitors/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VISITOR_NOT_FOUND", errObj["code"])
}

func TestUpdateStatusEndpoint_ReportsChanged(t *testing.T) {
	r := setupRouter(&fakeService{changed: true})

	w := doJSON(t, r, http.MethodPatch, "/api/v1/visitors/"+uuid.NewString()+"/status", gin.H{"status": "left"})

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, true, data["changed"])
	assert.Equal(t, "left", data["status"])
}

func TestUpdateStatusEndpoint_NoOpStillOK(t *testing.T) {
	r := setupRouter(&fakeService{changed: false})

	w := doJSON(t, r, http.MethodPatch, "/api/v1/visitors/"+uuid.NewString()+"/status", gin.H{"status": "left"})

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, false, data["changed"])
}

func TestDeleteEndpoint(t *testing.T) {
	r := setupRouter(&fakeService{})
	w := doJSON(t, r, http.MethodDelete, "/api/v1/visitors/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	r = setupRouter(&fakeService{deleteErr: model.ErrVisitorNotFound})
	w = doJSON(t, r, http.MethodDelete, "/api/v1/visitors/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r := setupRouter(&fakeService{stats: &model.ParkingStats{
		Active:    3,
		Left:      2,
		Total:     5,
		Capacity:  105,
		Available: 102,
	}})

	w := doJSON(t, r, http.MethodGet, "/api/v1/visitors/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(3), data["active"])
	assert.Equal(t, float64(102), data["available"])
	assert.Equal(t, float64(105), data["capacity"])
}

func TestExportEndpoint_Headers(t *testing.T) {
	r := setupRouter(&fakeService{exportData: []byte("PK\x03\x04")})

	w := doJSON(t, r, http.MethodGet, "/api/v1/visitors/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
}
