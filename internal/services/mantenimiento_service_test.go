package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealer-inventory-backend/internal/models"
)

type fakeMantenimientoStore struct {
	lastCall string
	records  []models.Mantenimiento
}

func (f *fakeMantenimientoStore) CreateMantenimiento(m *models.Mantenimiento) (*models.Mantenimiento, error) {
	f.lastCall = "Create"
	created := *m
	created.ID = 1
	return &created, nil
}

func (f *fakeMantenimientoStore) GetMantenimiento(id int64) (*models.Mantenimiento, error) {
	f.lastCall = "Get"
	return &models.Mantenimiento{ID: id}, nil
}

func (f *fakeMantenimientoStore) ListMantenimientos() ([]models.Mantenimiento, error) {
	f.lastCall = "List"
	return f.records, nil
}

func (f *fakeMantenimientoStore) ListMantenimientosByAuto(autoID int64) ([]models.Mantenimiento, error) {
	f.lastCall = "ListByAuto"
	var out []models.Mantenimiento
	for _, m := range f.records {
		if m.AutoID == autoID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMantenimientoStore) SearchMantenimientos(query string) ([]models.Mantenimiento, error) {
	f.lastCall = "Search"
	return f.records, nil
}

func (f *fakeMantenimientoStore) ListMantenimientosSnapshot() ([]models.Mantenimiento, error) {
	f.lastCall = "Snapshot"
	return f.records, nil
}

func (f *fakeMantenimientoStore) UpdateMantenimiento(id int64, update models.MantenimientoUpdate) (*models.Mantenimiento, error) {
	f.lastCall = "Update"
	return &models.Mantenimiento{ID: id}, nil
}

func (f *fakeMantenimientoStore) DeleteMantenimiento(id int64) error {
	f.lastCall = "Delete"
	return nil
}

func TestMantenimientoServiceListScoping(t *testing.T) {
	store := &fakeMantenimientoStore{}
	svc := NewMantenimientoService(store)
	autoID := int64(7)

	t.Run("query_wins_over_auto_scope", func(t *testing.T) {
		_, err := svc.List(&autoID, "aceite")
		require.NoError(t, err)
		assert.Equal(t, "Search", store.lastCall)
	})

	t.Run("auto_scope", func(t *testing.T) {
		_, err := svc.List(&autoID, "")
		require.NoError(t, err)
		assert.Equal(t, "ListByAuto", store.lastCall)
	})

	t.Run("unscoped", func(t *testing.T) {
		_, err := svc.List(nil, "")
		require.NoError(t, err)
		assert.Equal(t, "List", store.lastCall)
	})
}

func TestComputeMantenimientoStats(t *testing.T) {
	frenos := "frenos"
	vacio := ""
	registros := []models.Mantenimiento{
		{Tipo: &frenos, Costo: fptr(1500)},
		{Tipo: &frenos, Costo: fptr(800)},
		{Tipo: &vacio, Costo: nil},
		{Tipo: nil, Costo: fptr(200)},
	}

	stats := ComputeMantenimientoStats(registros)

	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 2500, stats.CostoTotal, 1e-9)
	assert.Equal(t, 2, stats.PorTipo["frenos"])
	assert.Equal(t, 2, stats.PorTipo["otros"])
}

func TestAgruparPorAnio(t *testing.T) {
	registros := []models.Mantenimiento{
		{ID: 1, Fecha: "2024-05-01"},
		{ID: 2, Fecha: "2023-11-20"},
		{ID: 3, Fecha: "2024-01-02"},
		{ID: 4, Fecha: ""},
	}

	grupos := AgruparPorAnio(registros)
	require.Len(t, grupos, 3)

	assert.Equal(t, "desconocido", grupos[0].Anio)
	assert.Equal(t, "2024", grupos[1].Anio)
	assert.Equal(t, "2023", grupos[2].Anio)

	// fetched order survives within the year group
	require.Len(t, grupos[1].Registros, 2)
	assert.Equal(t, int64(1), grupos[1].Registros[0].ID)
	assert.Equal(t, int64(3), grupos[1].Registros[1].ID)
}
