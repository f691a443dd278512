package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"dealer-inventory-backend/internal/models"
)

// BuildInventarioExcel renders the inventory snapshot as an xlsx workbook
// with one row per vehicle.
func BuildInventarioExcel(autos []models.AutoConImagenes) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Inventario"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"ID", "Marca", "Modelo", "Año", "Kilometraje", "Color",
		"Número de serie", "Estado", "Precio compra", "Precio venta",
		"Fecha ingreso", "Imágenes", "Observaciones",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, auto := range autos {
		row := rowIndex + 2

		values := []interface{}{
			auto.ID,
			auto.Marca,
			auto.Modelo,
			auto.Anio,
			int64OrBlank(auto.Kilometraje),
			stringOrBlank(auto.Color),
			stringOrBlank(auto.NumeroSerie),
			auto.Estado,
			floatOrBlank(auto.PrecioCompra),
			floatOrBlank(auto.PrecioVenta),
			auto.FechaIngreso,
			len(auto.Imagenes),
			stringOrBlank(auto.Observaciones),
		}

		for i, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+i, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %v", err)
	}

	return &buf, nil
}

func stringOrBlank(v *string) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func int64OrBlank(v *int64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func floatOrBlank(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
