package services

import (
	"strconv"
	"strings"
	"time"

	"dealer-inventory-backend/internal/models"
)

// AutoStore is the slice of the repository the vehicle service needs.
type AutoStore interface {
	ListAutos() ([]models.AutoConImagenes, error)
	GetAuto(autoID int64) (*models.AutoConImagenes, error)
	CreateAuto(auto *models.Auto) (*models.Auto, error)
	UpdateAuto(autoID int64, update models.AutoUpdate) error
	DeleteAuto(autoID int64) error
	DeleteImagenes(autoID int64) (int64, error)
	DeleteMantenimientosByAuto(autoID int64) (int64, error)
}

// ImageStorage removes a vehicle's binary objects from the storage bucket.
type ImageStorage interface {
	DeleteAutoImages(autoID int64) error
}

// EventPublisher announces inventory changes to realtime subscribers.
type EventPublisher interface {
	PublishAutoEvent(autoID int64, event string, payload map[string]interface{}) error
	PublishInventoryEvent(event string, payload map[string]interface{}) error
}

// AutoService owns the vehicle lifecycle: listing with search, creation
// with default seeding, partial updates, and the ordered delete of a
// vehicle together with its images.
type AutoService struct {
	store   AutoStore
	storage ImageStorage
	events  EventPublisher
	cascade bool
}

// NewAutoService creates an AutoService. cascadeMantenimientos controls
// whether a vehicle's maintenance history is deleted along with it.
func NewAutoService(store AutoStore, storage ImageStorage, events EventPublisher, cascadeMantenimientos bool) *AutoService {
	return &AutoService{
		store:   store,
		storage: storage,
		events:  events,
		cascade: cascadeMantenimientos,
	}
}

// List returns the inventory newest first, filtered by the search term.
func (s *AutoService) List(search string) ([]models.AutoConImagenes, error) {
	autos, err := s.store.ListAutos()
	if err != nil {
		return nil, err
	}
	return FilterAutos(autos, search), nil
}

// Get returns one vehicle with images.
func (s *AutoService) Get(autoID int64) (*models.AutoConImagenes, error) {
	return s.store.GetAuto(autoID)
}

// Create registers a vehicle, seeding absent anio, fecha_ingreso and
// estado with the current year, today and listo.
func (s *AutoService) Create(req models.CreateAutoRequest) (*models.Auto, error) {
	now := time.Now()

	auto := &models.Auto{
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Anio:          now.Year(),
		Kilometraje:   req.Kilometraje,
		Color:         req.Color,
		NumeroSerie:   req.NumeroSerie,
		Estado:        models.EstadoListo,
		PrecioCompra:  req.PrecioCompra,
		PrecioVenta:   req.PrecioVenta,
		FechaIngreso:  now.Format("2006-01-02"),
		Observaciones: req.Observaciones,
	}
	if req.Anio != nil {
		auto.Anio = *req.Anio
	}
	if req.FechaIngreso != nil {
		auto.FechaIngreso = *req.FechaIngreso
	}
	if req.Estado != nil {
		auto.Estado = models.NormalizeEstado(*req.Estado)
	}

	created, err := s.store.CreateAuto(auto)
	if err != nil {
		return nil, err
	}

	_ = s.events.PublishInventoryEvent("auto_creado", map[string]interface{}{
		"auto_id": created.ID,
		"marca":   created.Marca,
		"modelo":  created.Modelo,
	})

	return created, nil
}

// Update applies a partial update and refetches the joined record; the
// update response alone is not trusted to carry images.
func (s *AutoService) Update(autoID int64, req models.UpdateAutoRequest) (*models.AutoConImagenes, error) {
	update := models.AutoUpdate{
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Anio:          req.Anio,
		Kilometraje:   req.Kilometraje,
		Color:         req.Color,
		NumeroSerie:   req.NumeroSerie,
		Estado:        req.Estado,
		PrecioCompra:  req.PrecioCompra,
		PrecioVenta:   req.PrecioVenta,
		FechaIngreso:  req.FechaIngreso,
		Observaciones: req.Observaciones,
	}

	if err := s.store.UpdateAuto(autoID, update); err != nil {
		return nil, err
	}

	auto, err := s.store.GetAuto(autoID)
	if err != nil {
		return nil, err
	}

	_ = s.events.PublishAutoEvent(autoID, "auto_actualizado", map[string]interface{}{
		"auto_id": autoID,
	})

	return auto, nil
}

// Delete removes a vehicle. Storage objects and image rows go strictly
// before the vehicle row; if either image step fails the vehicle row is
// left intact, so a retry sees a vehicle with zero images and can finish
// the job. Maintenance history goes too when the cascade policy is on.
func (s *AutoService) Delete(autoID int64) error {
	if _, err := s.store.GetAuto(autoID); err != nil {
		return err
	}

	if err := s.storage.DeleteAutoImages(autoID); err != nil {
		return err
	}

	imagenes, err := s.store.DeleteImagenes(autoID)
	if err != nil {
		return err
	}

	if s.cascade {
		if _, err := s.store.DeleteMantenimientosByAuto(autoID); err != nil {
			return err
		}
	}

	if err := s.store.DeleteAuto(autoID); err != nil {
		return err
	}

	_ = s.events.PublishInventoryEvent("auto_eliminado", map[string]interface{}{
		"auto_id":  autoID,
		"imagenes": imagenes,
	})

	return nil
}

// FilterAutos returns the vehicles matching the search term: a
// case-insensitive substring match against marca, modelo, color, or the
// year rendered as text. A blank term means no filtering. Order is
// preserved.
func FilterAutos(autos []models.AutoConImagenes, term string) []models.AutoConImagenes {
	term = strings.TrimSpace(term)
	if term == "" {
		return autos
	}

	lower := strings.ToLower(term)
	filtered := make([]models.AutoConImagenes, 0, len(autos))
	for _, auto := range autos {
		if strings.Contains(strings.ToLower(auto.Marca), lower) ||
			strings.Contains(strings.ToLower(auto.Modelo), lower) ||
			(auto.Color != nil && strings.Contains(strings.ToLower(*auto.Color), lower)) ||
			strings.Contains(strconv.Itoa(auto.Anio), lower) {
			filtered = append(filtered, auto)
		}
	}

	return filtered
}
