package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dealer-inventory-backend/internal/models"
	"dealer-inventory-backend/internal/services"
)

type MantenimientosHandler struct {
	mantenimientoService *services.MantenimientoService
}

func NewMantenimientosHandler(mantenimientoService *services.MantenimientoService) *MantenimientosHandler {
	return &MantenimientosHandler{mantenimientoService: mantenimientoService}
}

// ListMantenimientos godoc
// @Summary     List maintenance records
// @Description Returns maintenance records newest first. ?auto_id= scopes to
// @Description one vehicle, ?q= searches descripcion and tipo, and
// @Description ?agrupar=anio returns year groups, newest year first.
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.MantenimientosResponse
// @Router      /mantenimientos [get]
func (h *MantenimientosHandler) ListMantenimientos(c *gin.Context) {
	var autoID *int64
	if raw := c.Query("auto_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INVALID_INPUT",
				Message: "invalid auto_id",
			})
			return
		}
		autoID = &parsed
	}

	mantenimientos, err := h.mantenimientoService.List(autoID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	if mantenimientos == nil {
		mantenimientos = []models.Mantenimiento{}
	}

	if c.Query("agrupar") == "anio" {
		c.JSON(http.StatusOK, models.MantenimientosAgrupadosResponse{
			Grupos: services.AgruparPorAnio(mantenimientos),
		})
		return
	}

	c.JSON(http.StatusOK, models.MantenimientosResponse{Mantenimientos: mantenimientos})
}

func (h *MantenimientosHandler) GetMantenimiento(c *gin.Context) {
	id, ok := pathID(c, "mantenimiento_id")
	if !ok {
		return
	}

	mantenimiento, err := h.mantenimientoService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mantenimiento)
}

func (h *MantenimientosHandler) CreateMantenimiento(c *gin.Context) {
	var req models.CreateMantenimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: err.Error(),
		})
		return
	}

	mantenimiento, err := h.mantenimientoService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mantenimiento)
}

func (h *MantenimientosHandler) UpdateMantenimiento(c *gin.Context) {
	id, ok := pathID(c, "mantenimiento_id")
	if !ok {
		return
	}

	var req models.UpdateMantenimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: err.Error(),
		})
		return
	}

	mantenimiento, err := h.mantenimientoService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mantenimiento)
}

func (h *MantenimientosHandler) DeleteMantenimiento(c *gin.Context) {
	id, ok := pathID(c, "mantenimiento_id")
	if !ok {
		return
	}

	if err := h.mantenimientoService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "maintenance record deleted successfully"})
}

func (h *MantenimientosHandler) GetMantenimientoStats(c *gin.Context) {
	stats, err := h.mantenimientoService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
