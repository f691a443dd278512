package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dealer-inventory-backend/internal/models"
	"dealer-inventory-backend/internal/services"
)

type AutosHandler struct {
	autoService *services.AutoService
}

func NewAutosHandler(autoService *services.AutoService) *AutosHandler {
	return &AutosHandler{autoService: autoService}
}

// ListAutos godoc
// @Summary     List the vehicle inventory
// @Description Returns every vehicle newest first, images nested. The optional
// @Description search term matches marca, modelo, color or the year as text.
// @Produce     json
// @Security    Bearer
// @Param       search query string false "Search term"
// @Success     200 {object} models.AutosResponse
// @Router      /autos [get]
func (h *AutosHandler) ListAutos(c *gin.Context) {
	autos, err := h.autoService.List(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	if autos == nil {
		autos = []models.AutoConImagenes{}
	}
	c.JSON(http.StatusOK, models.AutosResponse{Autos: autos})
}

func (h *AutosHandler) GetAuto(c *gin.Context) {
	autoID, ok := pathID(c, "auto_id")
	if !ok {
		return
	}

	auto, err := h.autoService.Get(autoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, auto)
}

func (h *AutosHandler) CreateAuto(c *gin.Context) {
	var req models.CreateAutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: err.Error(),
		})
		return
	}

	auto, err := h.autoService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, auto)
}

// UpdateAuto applies a partial update and returns the refetched record
// with images.
func (h *AutosHandler) UpdateAuto(c *gin.Context) {
	autoID, ok := pathID(c, "auto_id")
	if !ok {
		return
	}

	var req models.UpdateAutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: err.Error(),
		})
		return
	}

	auto, err := h.autoService.Update(autoID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, auto)
}

func (h *AutosHandler) DeleteAuto(c *gin.Context) {
	autoID, ok := pathID(c, "auto_id")
	if !ok {
		return
	}

	if err := h.autoService.Delete(autoID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted successfully"})
}

// ExportAutos streams the inventory as an xlsx workbook.
func (h *AutosHandler) ExportAutos(c *gin.Context) {
	autos, err := h.autoService.List("")
	if err != nil {
		respondError(c, err)
		return
	}

	buf, err := services.BuildInventarioExcel(autos)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("inventario-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
