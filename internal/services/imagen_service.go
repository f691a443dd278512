package services

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"dealer-inventory-backend/internal/apperrors"
	"dealer-inventory-backend/internal/models"
)

// ImagenStore is the slice of the repository the image service needs.
type ImagenStore interface {
	GetAuto(autoID int64) (*models.AutoConImagenes, error)
	InsertImagen(imagen *models.ImagenAuto) (*models.ImagenAuto, error)
	GetImagen(imagenID int64) (*models.ImagenAuto, error)
	DeleteImagen(imagenID int64) error
}

// ImagenStorage is the bucket operations the image service needs.
type ImagenStorage interface {
	UploadAutoImage(autoID int64, filename string, data []byte) (string, string, error)
	DeleteFile(storagePath string) error
	PathFromPublicURL(url string) (string, bool)
}

// ImagenService handles vehicle photos: compression, upload to the
// storage bucket, and the auto_imagenes bookkeeping. The row is inserted
// only after the binary is durably stored under a public URL.
type ImagenService struct {
	store   ImagenStore
	storage ImagenStorage
	events  EventPublisher
	maxDim  int
}

func NewImagenService(store ImagenStore, storage ImagenStorage, events EventPublisher, maxDimension int) *ImagenService {
	return &ImagenService{
		store:   store,
		storage: storage,
		events:  events,
		maxDim:  maxDimension,
	}
}

// Upload compresses the image, stores it under the vehicle's prefix and
// records the auto_imagenes row.
func (s *ImagenService) Upload(autoID int64, filename string, data []byte, descripcion *string) (*models.ImagenAuto, error) {
	if _, err := s.store.GetAuto(autoID); err != nil {
		return nil, err
	}

	compressed, err := CompressImage(data, s.maxDim)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrImagenUpload, err)
	}

	objectName := fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), baseName(filename))
	_, publicURL, err := s.storage.UploadAutoImage(autoID, objectName, compressed)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrImagenUpload, err)
	}

	imagen, err := s.store.InsertImagen(&models.ImagenAuto{
		AutoID:      autoID,
		URLImagen:   publicURL,
		Descripcion: descripcion,
	})
	if err != nil {
		return nil, err
	}

	_ = s.events.PublishAutoEvent(autoID, "imagen_agregada", map[string]interface{}{
		"auto_id":    autoID,
		"url_imagen": publicURL,
	})

	return imagen, nil
}

// Delete removes one photo: the storage object first, then the row.
func (s *ImagenService) Delete(autoID, imagenID int64) error {
	imagen, err := s.store.GetImagen(imagenID)
	if err != nil {
		return err
	}
	if imagen.AutoID != autoID {
		return apperrors.WithMessage(apperrors.ErrImagenNotFound, "Image does not belong to this vehicle")
	}

	if storagePath, ok := s.storage.PathFromPublicURL(imagen.URLImagen); ok {
		if err := s.storage.DeleteFile(storagePath); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to delete storage object: %w", err))
		}
	}

	return s.store.DeleteImagen(imagenID)
}

// CompressImage re-encodes the image as JPEG, fitting it inside a
// maxDimension square. Images already small enough are only re-encoded.
func CompressImage(data []byte, maxDimension int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

func baseName(filename string) string {
	name := path.Base(filename)
	if ext := path.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." {
		name = "imagen"
	}
	return name
}
