package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"dealer-inventory-backend/internal/models"
	"dealer-inventory-backend/internal/services"
)

type ImagenesHandler struct {
	imagenService *services.ImagenService
}

func NewImagenesHandler(imagenService *services.ImagenService) *ImagenesHandler {
	return &ImagenesHandler{imagenService: imagenService}
}

// UploadImagen godoc
// @Summary     Add a photo to a vehicle
// @Description Compresses the uploaded image, stores it in the bucket under
// @Description the vehicle's prefix and records the auto_imagenes row.
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       auto_id path int true "Vehicle ID"
// @Param       imagen formData file true "Image file"
// @Param       descripcion formData string false "Image caption"
// @Success     201 {object} models.ImagenResponse
// @Router      /autos/{auto_id}/imagenes [post]
func (h *ImagenesHandler) UploadImagen(c *gin.Context) {
	autoID, ok := pathID(c, "auto_id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "imagen file is required",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "failed to open uploaded file",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "failed to read uploaded file",
		})
		return
	}

	var descripcion *string
	if d := c.PostForm("descripcion"); d != "" {
		descripcion = &d
	}

	imagen, err := h.imagenService.Upload(autoID, fileHeader.Filename, data, descripcion)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ImagenResponse{Imagen: *imagen})
}

func (h *ImagenesHandler) DeleteImagen(c *gin.Context) {
	autoID, ok := pathID(c, "auto_id")
	if !ok {
		return
	}
	imagenID, ok := pathID(c, "imagen_id")
	if !ok {
		return
	}

	if err := h.imagenService.Delete(autoID, imagenID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image deleted successfully"})
}
