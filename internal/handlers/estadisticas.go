package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealer-inventory-backend/internal/models"
	"dealer-inventory-backend/internal/services"
)

// EstadisticasHandler serves the two derived inventory views. They are
// separate endpoints on purpose: each load carries its own failure status
// instead of sharing one.
type EstadisticasHandler struct {
	estadisticasService *services.EstadisticasService
}

func NewEstadisticasHandler(estadisticasService *services.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{estadisticasService: estadisticasService}
}

func (h *EstadisticasHandler) GetGenerales(c *gin.Context) {
	stats, err := h.estadisticasService.Generales()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *EstadisticasHandler) GetPrecios(c *gin.Context) {
	precios, err := h.estadisticasService.Precios()
	if err != nil {
		respondError(c, err)
		return
	}
	if precios == nil {
		precios = []models.PrecioCompraVenta{}
	}

	c.JSON(http.StatusOK, gin.H{"precios": precios})
}
