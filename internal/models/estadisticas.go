package models

// PrecioCompraVenta is one derived price-comparison row, one per Auto.
// Prices absent on the vehicle are treated as 0; PorcentajeGanancia is 0
// when the purchase price is 0 or absent so the value is never NaN or Inf.
type PrecioCompraVenta struct {
	ID                 int64   `json:"id"`
	Nombre             string  `json:"nombre"`
	PrecioCompra       float64 `json:"precio_compra"`
	PrecioVenta        float64 `json:"precio_venta"`
	Diferencia         float64 `json:"diferencia"`
	PorcentajeGanancia float64 `json:"porcentajeGanancia"`
}

// EstadisticasGenerales are the cross-record inventory aggregates computed
// from a full snapshot of the autos table. ContadorEstados only carries
// keys with at least one occurrence; a missing key means zero.
type EstadisticasGenerales struct {
	TotalAutos         int            `json:"totalAutos"`
	TotalCompra        float64        `json:"totalCompra"`
	TotalVenta         float64        `json:"totalVenta"`
	GananciaProyectada float64        `json:"gananciaProyectada"`
	ContadorEstados    map[string]int `json:"contadorEstados"`
	PromedioCompra     float64        `json:"promedioCompra"`
	PromedioVenta      float64        `json:"promedioVenta"`
}

// MantenimientoStats are the maintenance-history aggregates. Records with
// no tipo are counted under "otros".
type MantenimientoStats struct {
	Total      int            `json:"total"`
	CostoTotal float64        `json:"costoTotal"`
	PorTipo    map[string]int `json:"porTipo"`
}

// PrecioRow is the narrow projection the price comparison is built from.
type PrecioRow struct {
	ID           int64
	Marca        string
	Modelo       string
	PrecioCompra *float64
	PrecioVenta  *float64
}
