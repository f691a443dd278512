package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealer-inventory-backend/internal/apperrors"
	"dealer-inventory-backend/internal/handlers"
	"dealer-inventory-backend/internal/models"
	"dealer-inventory-backend/internal/services"
)

type stubMantenimientoStore struct {
	records  []models.Mantenimiento
	lastCall string
}

func (s *stubMantenimientoStore) CreateMantenimiento(m *models.Mantenimiento) (*models.Mantenimiento, error) {
	created := *m
	created.ID = 1
	return &created, nil
}

func (s *stubMantenimientoStore) GetMantenimiento(id int64) (*models.Mantenimiento, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i], nil
		}
	}
	return nil, apperrors.ErrMantenimientoNotFound
}

func (s *stubMantenimientoStore) ListMantenimientos() ([]models.Mantenimiento, error) {
	s.lastCall = "List"
	return s.records, nil
}

func (s *stubMantenimientoStore) ListMantenimientosByAuto(autoID int64) ([]models.Mantenimiento, error) {
	s.lastCall = "ListByAuto"
	return s.records, nil
}

func (s *stubMantenimientoStore) SearchMantenimientos(query string) ([]models.Mantenimiento, error) {
	s.lastCall = "Search"
	return s.records, nil
}

func (s *stubMantenimientoStore) ListMantenimientosSnapshot() ([]models.Mantenimiento, error) {
	return s.records, nil
}

func (s *stubMantenimientoStore) UpdateMantenimiento(id int64, update models.MantenimientoUpdate) (*models.Mantenimiento, error) {
	return s.GetMantenimiento(id)
}

func (s *stubMantenimientoStore) DeleteMantenimiento(id int64) error { return nil }

func mantenimientosRouter(store *stubMantenimientoStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewMantenimientosHandler(services.NewMantenimientoService(store))

	router := gin.New()
	router.GET("/mantenimientos", h.ListMantenimientos)
	router.GET("/mantenimientos/estadisticas", h.GetMantenimientoStats)
	router.GET("/mantenimientos/:mantenimiento_id", h.GetMantenimiento)
	return router
}

func TestListMantenimientos(t *testing.T) {
	records := []models.Mantenimiento{
		{ID: 1, AutoID: 1, Fecha: "2024-05-01", Descripcion: "cambio de aceite"},
		{ID: 2, AutoID: 1, Fecha: "2023-11-20", Descripcion: "frenos"},
	}

	t.Run("flat_list", func(t *testing.T) {
		store := &stubMantenimientoStore{records: records}
		router := mantenimientosRouter(store)

		req, _ := http.NewRequest("GET", "/mantenimientos", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "List", store.lastCall)
	})

	t.Run("query_scope", func(t *testing.T) {
		store := &stubMantenimientoStore{records: records}
		router := mantenimientosRouter(store)

		req, _ := http.NewRequest("GET", "/mantenimientos?auto_id=1&q=aceite", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Search", store.lastCall)
	})

	t.Run("grouped_by_year", func(t *testing.T) {
		store := &stubMantenimientoStore{records: records}
		router := mantenimientosRouter(store)

		req, _ := http.NewRequest("GET", "/mantenimientos?agrupar=anio", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.MantenimientosAgrupadosResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Grupos, 2)
		assert.Equal(t, "2024", resp.Grupos[0].Anio)
		assert.Equal(t, "2023", resp.Grupos[1].Anio)
	})

	t.Run("invalid_auto_id", func(t *testing.T) {
		router := mantenimientosRouter(&stubMantenimientoStore{})

		req, _ := http.NewRequest("GET", "/mantenimientos?auto_id=abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetMantenimiento(t *testing.T) {
	router := mantenimientosRouter(&stubMantenimientoStore{})

	req, _ := http.NewRequest("GET", "/mantenimientos/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "MANTENIMIENTO_NOT_FOUND")
}

func TestGetMantenimientoStats(t *testing.T) {
	tipo := "frenos"
	store := &stubMantenimientoStore{records: []models.Mantenimiento{
		{ID: 1, Tipo: &tipo, Costo: floatPtr(1500)},
		{ID: 2},
	}}
	router := mantenimientosRouter(store)

	req, _ := http.NewRequest("GET", "/mantenimientos/estadisticas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var stats models.MantenimientoStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.InDelta(t, 1500, stats.CostoTotal, 1e-9)
	assert.Equal(t, 1, stats.PorTipo["otros"])
}

func floatPtr(v float64) *float64 { return &v }
