package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dealer-inventory-backend/internal/models"
)

func TestBuildInventarioExcel(t *testing.T) {
	color := "Rojo"
	autos := []models.AutoConImagenes{
		{
			Auto: models.Auto{
				ID:           1,
				Marca:        "Toyota",
				Modelo:       "Corolla",
				Anio:         2020,
				Color:        &color,
				Estado:       models.EstadoListo,
				PrecioCompra: fptr(100000),
				FechaIngreso: "2024-01-15",
			},
			Imagenes: []models.ImagenAuto{{ID: 1}, {ID: 2}},
		},
		{
			Auto: models.Auto{ID: 2, Marca: "Honda", Modelo: "Civic", Anio: 2019, Estado: models.EstadoVendido},
		},
	}

	buf, err := BuildInventarioExcel(autos)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Inventario")

	marca, err := f.GetCellValue("Inventario", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Toyota", marca)

	imagenes, err := f.GetCellValue("Inventario", "L2")
	require.NoError(t, err)
	assert.Equal(t, "2", imagenes)

	colorCell, err := f.GetCellValue("Inventario", "F3")
	require.NoError(t, err)
	assert.Empty(t, colorCell)

	header, err := f.GetCellValue("Inventario", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
}
