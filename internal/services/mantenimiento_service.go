package services

import (
	"sort"

	"dealer-inventory-backend/internal/models"
)

// MantenimientoStore is the slice of the repository the maintenance
// service needs.
type MantenimientoStore interface {
	CreateMantenimiento(m *models.Mantenimiento) (*models.Mantenimiento, error)
	GetMantenimiento(id int64) (*models.Mantenimiento, error)
	ListMantenimientos() ([]models.Mantenimiento, error)
	ListMantenimientosByAuto(autoID int64) ([]models.Mantenimiento, error)
	SearchMantenimientos(query string) ([]models.Mantenimiento, error)
	ListMantenimientosSnapshot() ([]models.Mantenimiento, error)
	UpdateMantenimiento(id int64, update models.MantenimientoUpdate) (*models.Mantenimiento, error)
	DeleteMantenimiento(id int64) error
}

// MantenimientoService owns the maintenance-history lifecycle. Listing is
// scoped by exactly one of {search query, owning vehicle, none = all}.
type MantenimientoService struct {
	store MantenimientoStore
}

func NewMantenimientoService(store MantenimientoStore) *MantenimientoService {
	return &MantenimientoService{store: store}
}

// List returns maintenance records, newest fecha first. A non-empty query
// wins over the vehicle scope; records from the all-records and search
// paths carry the owning vehicle's {marca, modelo}.
func (s *MantenimientoService) List(autoID *int64, query string) ([]models.Mantenimiento, error) {
	if query != "" {
		return s.store.SearchMantenimientos(query)
	}
	if autoID != nil {
		return s.store.ListMantenimientosByAuto(*autoID)
	}
	return s.store.ListMantenimientos()
}

func (s *MantenimientoService) Get(id int64) (*models.Mantenimiento, error) {
	return s.store.GetMantenimiento(id)
}

func (s *MantenimientoService) Create(req models.CreateMantenimientoRequest) (*models.Mantenimiento, error) {
	return s.store.CreateMantenimiento(&models.Mantenimiento{
		AutoID:      req.AutoID,
		Tipo:        req.Tipo,
		Fecha:       req.Fecha,
		Descripcion: req.Descripcion,
		Costo:       req.Costo,
		Kilometraje: req.Kilometraje,
		Nota:        req.Nota,
	})
}

func (s *MantenimientoService) Update(id int64, req models.UpdateMantenimientoRequest) (*models.Mantenimiento, error) {
	return s.store.UpdateMantenimiento(id, models.MantenimientoUpdate{
		AutoID:      req.AutoID,
		Tipo:        req.Tipo,
		Fecha:       req.Fecha,
		Descripcion: req.Descripcion,
		Costo:       req.Costo,
		Kilometraje: req.Kilometraje,
		Nota:        req.Nota,
	})
}

func (s *MantenimientoService) Delete(id int64) error {
	return s.store.DeleteMantenimiento(id)
}

// Stats computes the maintenance aggregates from a full-table snapshot.
func (s *MantenimientoService) Stats() (*models.MantenimientoStats, error) {
	registros, err := s.store.ListMantenimientosSnapshot()
	if err != nil {
		return nil, err
	}
	stats := ComputeMantenimientoStats(registros)
	return &stats, nil
}

// ComputeMantenimientoStats is a single pass over the snapshot: record
// count, summed cost, and per-tipo counts with untyped records under
// "otros".
func ComputeMantenimientoStats(registros []models.Mantenimiento) models.MantenimientoStats {
	stats := models.MantenimientoStats{
		Total:   len(registros),
		PorTipo: make(map[string]int),
	}

	for _, m := range registros {
		if m.Costo != nil {
			stats.CostoTotal += *m.Costo
		}
		tipo := "otros"
		if m.Tipo != nil && *m.Tipo != "" {
			tipo = *m.Tipo
		}
		stats.PorTipo[tipo]++
	}

	return stats
}

// AgruparPorAnio groups records by the year of their fecha, newest year
// first. Records keep their fetched order within each group.
func AgruparPorAnio(registros []models.Mantenimiento) []models.GrupoMantenimientos {
	porAnio := make(map[string][]models.Mantenimiento)
	var anios []string
	for _, m := range registros {
		anio := "desconocido"
		if len(m.Fecha) >= 4 {
			anio = m.Fecha[:4]
		}
		if _, seen := porAnio[anio]; !seen {
			anios = append(anios, anio)
		}
		porAnio[anio] = append(porAnio[anio], m)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(anios)))

	grupos := make([]models.GrupoMantenimientos, 0, len(anios))
	for _, anio := range anios {
		grupos = append(grupos, models.GrupoMantenimientos{
			Anio:      anio,
			Registros: porAnio[anio],
		})
	}

	return grupos
}
