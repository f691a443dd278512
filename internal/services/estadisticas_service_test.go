package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealer-inventory-backend/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestComputeEstadisticasGenerales(t *testing.T) {
	t.Run("empty_inventory", func(t *testing.T) {
		stats := ComputeEstadisticasGenerales(nil)

		assert.Equal(t, 0, stats.TotalAutos)
		assert.Zero(t, stats.TotalCompra)
		assert.Zero(t, stats.TotalVenta)
		assert.Zero(t, stats.PromedioCompra)
		assert.Zero(t, stats.PromedioVenta)
		assert.Empty(t, stats.ContadorEstados)
	})

	t.Run("identities_hold", func(t *testing.T) {
		autos := []models.Auto{
			{Estado: models.EstadoListo, PrecioCompra: fptr(100000), PrecioVenta: fptr(130000)},
			{Estado: models.EstadoVendido, PrecioCompra: fptr(200000), PrecioVenta: fptr(250000)},
			{Estado: models.EstadoListo, PrecioCompra: nil, PrecioVenta: fptr(90000)},
		}

		stats := ComputeEstadisticasGenerales(autos)

		assert.Equal(t, 3, stats.TotalAutos)
		assert.InDelta(t, 300000, stats.TotalCompra, 1e-9)
		assert.InDelta(t, 470000, stats.TotalVenta, 1e-9)
		assert.InDelta(t, stats.TotalVenta-stats.TotalCompra, stats.GananciaProyectada, 1e-9)
		assert.InDelta(t, stats.TotalCompra/3, stats.PromedioCompra, 1e-9)
		assert.InDelta(t, stats.TotalVenta/3, stats.PromedioVenta, 1e-9)
	})

	t.Run("contador_counts_sum_to_total", func(t *testing.T) {
		autos := []models.Auto{
			{Estado: models.EstadoListo},
			{Estado: models.EstadoReparacion},
			{Estado: models.EstadoListo},
			{Estado: "algo_raro"},
		}

		stats := ComputeEstadisticasGenerales(autos)

		sum := 0
		for estado, n := range stats.ContadorEstados {
			assert.Contains(t, models.Estados, estado)
			assert.Positive(t, n)
			sum += n
		}
		assert.Equal(t, stats.TotalAutos, sum)

		// the unknown estado lands in the default bucket
		assert.Equal(t, 3, stats.ContadorEstados[models.EstadoListo])
		assert.NotContains(t, stats.ContadorEstados, models.EstadoVendido)
	})
}

func TestBuildPreciosCompraVenta(t *testing.T) {
	t.Run("row_per_vehicle", func(t *testing.T) {
		rows := []models.PrecioRow{
			{ID: 1, Marca: "Toyota", Modelo: "Corolla", PrecioCompra: fptr(100000), PrecioVenta: fptr(125000)},
			{ID: 2, Marca: "Honda", Modelo: "Civic", PrecioCompra: nil, PrecioVenta: nil},
		}

		precios := BuildPreciosCompraVenta(rows)
		require.Len(t, precios, 2)

		assert.Equal(t, "Toyota Corolla", precios[0].Nombre)
		assert.InDelta(t, 25000, precios[0].Diferencia, 1e-9)
		assert.InDelta(t, 25, precios[0].PorcentajeGanancia, 1e-9)

		assert.Equal(t, "Honda Civic", precios[1].Nombre)
		assert.Zero(t, precios[1].PrecioCompra)
		assert.Zero(t, precios[1].PrecioVenta)
	})

	t.Run("never_nan_or_inf", func(t *testing.T) {
		rows := []models.PrecioRow{
			{ID: 1, Marca: "Nissan", Modelo: "Versa", PrecioCompra: fptr(0), PrecioVenta: fptr(50000)},
			{ID: 2, Marca: "Nissan", Modelo: "March", PrecioCompra: nil, PrecioVenta: nil},
		}

		for _, p := range BuildPreciosCompraVenta(rows) {
			assert.False(t, math.IsNaN(p.PorcentajeGanancia))
			assert.False(t, math.IsInf(p.PorcentajeGanancia, 0))
			assert.Zero(t, p.PorcentajeGanancia)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		precios := BuildPreciosCompraVenta(nil)
		assert.NotNil(t, precios)
		assert.Empty(t, precios)
	})
}
