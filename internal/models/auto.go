package models

import "time"

// Estado values an Auto can be in. Rows arriving from the store with any
// other value are normalized to EstadoListo.
const (
	EstadoListo      = "listo"
	EstadoReparacion = "reparacion"
	EstadoVendido    = "vendido"
	EstadoEntregado  = "entregado"
)

// Estados lists the valid estado values in display order.
var Estados = []string{EstadoListo, EstadoReparacion, EstadoVendido, EstadoEntregado}

// EstadoValido reports whether estado is one of the four known values.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoListo, EstadoReparacion, EstadoVendido, EstadoEntregado:
		return true
	}
	return false
}

// NormalizeEstado coerces unknown estado values to EstadoListo.
func NormalizeEstado(estado string) string {
	if EstadoValido(estado) {
		return estado
	}
	return EstadoListo
}

// Auto is one inventory unit. Optional fields are pointers so that an
// absent value survives the round trip to the store instead of collapsing
// to a zero value.
type Auto struct {
	ID            int64     `json:"id"`
	Marca         string    `json:"marca"`
	Modelo        string    `json:"modelo"`
	Anio          int       `json:"anio"`
	Kilometraje   *int64    `json:"kilometraje"`
	Color         *string   `json:"color"`
	NumeroSerie   *string   `json:"numero_serie,omitempty"`
	Estado        string    `json:"estado"`
	PrecioCompra  *float64  `json:"precio_compra"`
	PrecioVenta   *float64  `json:"precio_venta"`
	FechaIngreso  string    `json:"fecha_ingreso"`
	Observaciones *string   `json:"observaciones,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ImagenAuto is a stored photo of an Auto. Rows exist only after the binary
// has been uploaded to the storage bucket; they are removed in bulk before
// their owning Auto is deleted.
type ImagenAuto struct {
	ID          int64   `json:"id"`
	AutoID      int64   `json:"auto_id"`
	URLImagen   string  `json:"url_imagen"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// AutoConImagenes is an Auto joined with its images in insertion order.
// Assembled at read time, never persisted as a joined shape.
type AutoConImagenes struct {
	Auto
	Imagenes []ImagenAuto `json:"imagenes"`
}

// AutoUpdate carries a partial field update. Nil fields are left untouched.
type AutoUpdate struct {
	Marca         *string
	Modelo        *string
	Anio          *int
	Kilometraje   *int64
	Color         *string
	NumeroSerie   *string
	Estado        *string
	PrecioCompra  *float64
	PrecioVenta   *float64
	FechaIngreso  *string
	Observaciones *string
}
