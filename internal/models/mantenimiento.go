package models

import "time"

// Mantenimiento is one service or repair event tied to an Auto. Tipo is a
// suggested but non-enforced category; unknown values are kept as-is.
type Mantenimiento struct {
	ID          int64     `json:"id"`
	AutoID      int64     `json:"auto_id"`
	Tipo        *string   `json:"tipo"`
	Fecha       string    `json:"fecha"`
	Descripcion string    `json:"descripcion"`
	Costo       *float64  `json:"costo"`
	Kilometraje *int64    `json:"kilometraje"`
	Nota        *string   `json:"nota"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Auto carries a denormalized {marca, modelo} snapshot of the owning
	// vehicle when the record was fetched through the joined queries.
	Auto *AutoResumen `json:"autos,omitempty"`
}

// AutoResumen is the denormalized vehicle snapshot joined onto maintenance
// records fetched via the all-records and search queries.
type AutoResumen struct {
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
}

// MantenimientoUpdate carries a partial field update. Nil fields are left
// untouched.
type MantenimientoUpdate struct {
	AutoID      *int64
	Tipo        *string
	Fecha       *string
	Descripcion *string
	Costo       *float64
	Kilometraje *int64
	Nota        *string
}

// GrupoMantenimientos is one year's worth of maintenance records, used by
// the grouped listing. Records keep their fetched order within the group.
type GrupoMantenimientos struct {
	Anio      string          `json:"anio"`
	Registros []Mantenimiento `json:"registros"`
}
