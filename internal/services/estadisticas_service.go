package services

import (
	"fmt"

	"dealer-inventory-backend/internal/models"
)

// EstadisticasStore is the slice of the repository the statistics service
// needs.
type EstadisticasStore interface {
	ListAutosSnapshot() ([]models.Auto, error)
	ListPreciosRows() ([]models.PrecioRow, error)
}

// EstadisticasService computes the two derived inventory views. Each load
// is independent, so a failure in one never masks the other.
type EstadisticasService struct {
	store EstadisticasStore
}

func NewEstadisticasService(store EstadisticasStore) *EstadisticasService {
	return &EstadisticasService{store: store}
}

// Generales recomputes the inventory aggregates from a full snapshot.
// O(n) in the number of vehicles, which is fine at single-dealership scale.
func (s *EstadisticasService) Generales() (*models.EstadisticasGenerales, error) {
	autos, err := s.store.ListAutosSnapshot()
	if err != nil {
		return nil, err
	}
	stats := ComputeEstadisticasGenerales(autos)
	return &stats, nil
}

// Precios returns the per-vehicle price comparison, ordered marca then
// modelo ascending by the store.
func (s *EstadisticasService) Precios() ([]models.PrecioCompraVenta, error) {
	rows, err := s.store.ListPreciosRows()
	if err != nil {
		return nil, err
	}
	return BuildPreciosCompraVenta(rows), nil
}

// ComputeEstadisticasGenerales is a single pass over the snapshot. Only
// estados with at least one vehicle appear in ContadorEstados, and the
// averages are 0 when the inventory is empty.
func ComputeEstadisticasGenerales(autos []models.Auto) models.EstadisticasGenerales {
	stats := models.EstadisticasGenerales{
		TotalAutos:      len(autos),
		ContadorEstados: make(map[string]int),
	}

	for _, auto := range autos {
		if auto.PrecioCompra != nil {
			stats.TotalCompra += *auto.PrecioCompra
		}
		if auto.PrecioVenta != nil {
			stats.TotalVenta += *auto.PrecioVenta
		}
		stats.ContadorEstados[models.NormalizeEstado(auto.Estado)]++
	}

	stats.GananciaProyectada = stats.TotalVenta - stats.TotalCompra
	if stats.TotalAutos > 0 {
		stats.PromedioCompra = stats.TotalCompra / float64(stats.TotalAutos)
		stats.PromedioVenta = stats.TotalVenta / float64(stats.TotalAutos)
	}

	return stats
}

// BuildPreciosCompraVenta derives one comparison row per vehicle. Absent
// prices count as 0, and the profit percentage is defined as 0 when the
// purchase price is 0 so it can never be NaN or Inf.
func BuildPreciosCompraVenta(rows []models.PrecioRow) []models.PrecioCompraVenta {
	precios := make([]models.PrecioCompraVenta, 0, len(rows))
	for _, r := range rows {
		compra := 0.0
		if r.PrecioCompra != nil {
			compra = *r.PrecioCompra
		}
		venta := 0.0
		if r.PrecioVenta != nil {
			venta = *r.PrecioVenta
		}

		diferencia := venta - compra
		porcentaje := 0.0
		if compra != 0 {
			porcentaje = diferencia / compra * 100
		}

		precios = append(precios, models.PrecioCompraVenta{
			ID:                 r.ID,
			Nombre:             fmt.Sprintf("%s %s", r.Marca, r.Modelo),
			PrecioCompra:       compra,
			PrecioVenta:        venta,
			Diferencia:         diferencia,
			PorcentajeGanancia: porcentaje,
		})
	}

	return precios
}
