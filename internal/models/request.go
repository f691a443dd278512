package models

// CreateAutoRequest is the payload for registering a vehicle. Absent anio,
// fecha_ingreso and estado are seeded with defaults (current year, today,
// listo) before insertion.
type CreateAutoRequest struct {
	Marca         string   `json:"marca" binding:"required"`
	Modelo        string   `json:"modelo" binding:"required"`
	Anio          *int     `json:"anio" binding:"omitempty,gte=1900"`
	Kilometraje   *int64   `json:"kilometraje" binding:"omitempty,gte=0"`
	Color         *string  `json:"color"`
	NumeroSerie   *string  `json:"numero_serie"`
	Estado        *string  `json:"estado" binding:"omitempty,oneof=listo reparacion vendido entregado"`
	PrecioCompra  *float64 `json:"precio_compra" binding:"omitempty,gte=0"`
	PrecioVenta   *float64 `json:"precio_venta" binding:"omitempty,gte=0"`
	FechaIngreso  *string  `json:"fecha_ingreso" binding:"omitempty,datetime=2006-01-02"`
	Observaciones *string  `json:"observaciones"`
}

// UpdateAutoRequest is a partial vehicle update. Only present fields are
// applied; an out-of-enum estado is rejected at binding time.
type UpdateAutoRequest struct {
	Marca         *string  `json:"marca"`
	Modelo        *string  `json:"modelo"`
	Anio          *int     `json:"anio" binding:"omitempty,gte=1900"`
	Kilometraje   *int64   `json:"kilometraje" binding:"omitempty,gte=0"`
	Color         *string  `json:"color"`
	NumeroSerie   *string  `json:"numero_serie"`
	Estado        *string  `json:"estado" binding:"omitempty,oneof=listo reparacion vendido entregado"`
	PrecioCompra  *float64 `json:"precio_compra" binding:"omitempty,gte=0"`
	PrecioVenta   *float64 `json:"precio_venta" binding:"omitempty,gte=0"`
	FechaIngreso  *string  `json:"fecha_ingreso" binding:"omitempty,datetime=2006-01-02"`
	Observaciones *string  `json:"observaciones"`
}

// CreateMantenimientoRequest is the payload for registering a maintenance
// event. Tipo is free-form on purpose.
type CreateMantenimientoRequest struct {
	AutoID      int64    `json:"auto_id" binding:"required"`
	Tipo        *string  `json:"tipo"`
	Fecha       string   `json:"fecha" binding:"required,datetime=2006-01-02"`
	Descripcion string   `json:"descripcion" binding:"required"`
	Costo       *float64 `json:"costo" binding:"omitempty,gte=0"`
	Kilometraje *int64   `json:"kilometraje" binding:"omitempty,gte=0"`
	Nota        *string  `json:"nota"`
}

// UpdateMantenimientoRequest is a partial maintenance update.
type UpdateMantenimientoRequest struct {
	AutoID      *int64   `json:"auto_id"`
	Tipo        *string  `json:"tipo"`
	Fecha       *string  `json:"fecha" binding:"omitempty,datetime=2006-01-02"`
	Descripcion *string  `json:"descripcion"`
	Costo       *float64 `json:"costo" binding:"omitempty,gte=0"`
	Kilometraje *int64   `json:"kilometraje" binding:"omitempty,gte=0"`
	Nota        *string  `json:"nota"`
}
