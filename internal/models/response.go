package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type AutosResponse struct {
	Autos []AutoConImagenes `json:"autos"`
}

type MantenimientosResponse struct {
	Mantenimientos []Mantenimiento `json:"mantenimientos"`
}

type MantenimientosAgrupadosResponse struct {
	Grupos []GrupoMantenimientos `json:"grupos"`
}

type ImagenResponse struct {
	Imagen ImagenAuto `json:"imagen"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
