package supabase

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"dealer-inventory-backend/internal/apperrors"
	"dealer-inventory-backend/internal/models"
)

// DatabaseClient is the repository over the dealership tables: autos,
// auto_imagenes and historial_mantenimiento. Every operation fails loud
// with a typed apperrors.AppError; there are no empty-result-on-failure
// paths.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

const autoColumns = `id, marca, modelo, anio, kilometraje, color, numero_serie,
		estado, precio_compra, precio_venta, fecha_ingreso, observaciones, created_at`

// ListAutos returns every vehicle newest-created first, each with its
// images in insertion order.
func (d *DatabaseClient) ListAutos() ([]models.AutoConImagenes, error) {
	rows, err := d.db.Query(`
		SELECT ` + autoColumns + `
		FROM autos
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list autos: %w", err))
	}
	defer rows.Close()

	var autos []models.AutoConImagenes
	var ids []int64
	for rows.Next() {
		auto, err := scanAuto(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		autos = append(autos, models.AutoConImagenes{Auto: auto, Imagenes: []models.ImagenAuto{}})
		ids = append(ids, auto.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list autos: %w", err))
	}

	if len(ids) == 0 {
		return autos, nil
	}

	imagenes, err := d.listImagenesForAutos(ids)
	if err != nil {
		return nil, err
	}

	byAuto := make(map[int64][]models.ImagenAuto, len(ids))
	for _, img := range imagenes {
		byAuto[img.AutoID] = append(byAuto[img.AutoID], img)
	}
	for i := range autos {
		if imgs, ok := byAuto[autos[i].ID]; ok {
			autos[i].Imagenes = imgs
		}
	}

	return autos, nil
}

// GetAuto returns one vehicle with its images. A missing row surfaces as
// ErrAutoNotFound.
func (d *DatabaseClient) GetAuto(autoID int64) (*models.AutoConImagenes, error) {
	row := d.db.QueryRow(`
		SELECT `+autoColumns+`
		FROM autos
		WHERE id = $1
	`, autoID)

	auto, err := scanAuto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrAutoNotFound, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to get auto: %w", err))
	}

	imagenes, err := d.ListImagenes(autoID)
	if err != nil {
		return nil, err
	}

	return &models.AutoConImagenes{Auto: auto, Imagenes: imagenes}, nil
}

// CreateAuto inserts a vehicle and returns the stored row.
func (d *DatabaseClient) CreateAuto(auto *models.Auto) (*models.Auto, error) {
	row := d.db.QueryRow(`
		INSERT INTO autos (marca, modelo, anio, kilometraje, color, numero_serie,
			estado, precio_compra, precio_venta, fecha_ingreso, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+autoColumns,
		auto.Marca, auto.Modelo, auto.Anio, auto.Kilometraje, auto.Color,
		auto.NumeroSerie, auto.Estado, auto.PrecioCompra, auto.PrecioVenta,
		auto.FechaIngreso, auto.Observaciones,
	)

	created, err := scanAuto(row)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to create auto: %w", err))
	}

	return &created, nil
}

// UpdateAuto applies a partial update. Callers refetch the joined record
// afterwards; the update response is not trusted to carry images.
func (d *DatabaseClient) UpdateAuto(autoID int64, update models.AutoUpdate) error {
	set, args := buildAutoSet(update)
	if len(set) == 0 {
		return nil
	}

	args = append(args, autoID)
	query := fmt.Sprintf("UPDATE autos SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	result, err := d.db.Exec(query, args...)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to update auto: %w", err))
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.WithMessage(apperrors.ErrAutoNotFound, "Vehicle not found")
	}

	return nil
}

// DeleteAuto removes the vehicle row. Image rows and storage objects must
// already be gone; the service enforces that ordering.
func (d *DatabaseClient) DeleteAuto(autoID int64) error {
	result, err := d.db.Exec(`DELETE FROM autos WHERE id = $1`, autoID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to delete auto: %w", err))
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.WithMessage(apperrors.ErrAutoNotFound, "Vehicle not found")
	}

	return nil
}

// ListAutosSnapshot returns the full autos table without images, for the
// statistics aggregator.
func (d *DatabaseClient) ListAutosSnapshot() ([]models.Auto, error) {
	rows, err := d.db.Query(`SELECT ` + autoColumns + ` FROM autos`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list autos: %w", err))
	}
	defer rows.Close()

	var autos []models.Auto
	for rows.Next() {
		auto, err := scanAuto(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		autos = append(autos, auto)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list autos: %w", err))
	}

	return autos, nil
}

// ListPreciosRows returns the narrow price projection ordered by marca
// then modelo, ascending.
func (d *DatabaseClient) ListPreciosRows() ([]models.PrecioRow, error) {
	rows, err := d.db.Query(`
		SELECT id, marca, modelo, precio_compra, precio_venta
		FROM autos
		ORDER BY marca ASC, modelo ASC
	`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list precios: %w", err))
	}
	defer rows.Close()

	var precios []models.PrecioRow
	for rows.Next() {
		var r models.PrecioRow
		var compra, venta sql.NullFloat64
		if err := rows.Scan(&r.ID, &r.Marca, &r.Modelo, &compra, &venta); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to scan precio row: %w", err))
		}
		r.PrecioCompra = nullFloat(compra)
		r.PrecioVenta = nullFloat(venta)
		precios = append(precios, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list precios: %w", err))
	}

	return precios, nil
}

// InsertImagen records an uploaded image. Called only after the binary is
// durably stored and has a public URL.
func (d *DatabaseClient) InsertImagen(imagen *models.ImagenAuto) (*models.ImagenAuto, error) {
	var stored models.ImagenAuto
	var descripcion sql.NullString
	err := d.db.QueryRow(`
		INSERT INTO auto_imagenes (auto_id, url_imagen, descripcion)
		VALUES ($1, $2, $3)
		RETURNING id, auto_id, url_imagen, descripcion
	`, imagen.AutoID, imagen.URLImagen, imagen.Descripcion).Scan(
		&stored.ID, &stored.AutoID, &stored.URLImagen, &descripcion,
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to insert imagen: %w", err))
	}
	stored.Descripcion = nullString(descripcion)

	return &stored, nil
}

// GetImagen returns one image row.
func (d *DatabaseClient) GetImagen(imagenID int64) (*models.ImagenAuto, error) {
	var imagen models.ImagenAuto
	var descripcion sql.NullString
	err := d.db.QueryRow(`
		SELECT id, auto_id, url_imagen, descripcion
		FROM auto_imagenes
		WHERE id = $1
	`, imagenID).Scan(&imagen.ID, &imagen.AutoID, &imagen.URLImagen, &descripcion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrImagenNotFound, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to get imagen: %w", err))
	}
	imagen.Descripcion = nullString(descripcion)

	return &imagen, nil
}

// ListImagenes returns a vehicle's images in insertion order.
func (d *DatabaseClient) ListImagenes(autoID int64) ([]models.ImagenAuto, error) {
	return d.queryImagenes(`
		SELECT id, auto_id, url_imagen, descripcion
		FROM auto_imagenes
		WHERE auto_id = $1
		ORDER BY id ASC
	`, autoID)
}

func (d *DatabaseClient) listImagenesForAutos(autoIDs []int64) ([]models.ImagenAuto, error) {
	return d.queryImagenes(`
		SELECT id, auto_id, url_imagen, descripcion
		FROM auto_imagenes
		WHERE auto_id = ANY($1)
		ORDER BY id ASC
	`, pq.Array(autoIDs))
}

func (d *DatabaseClient) queryImagenes(query string, args ...interface{}) ([]models.ImagenAuto, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list imagenes: %w", err))
	}
	defer rows.Close()

	var imagenes []models.ImagenAuto
	for rows.Next() {
		var imagen models.ImagenAuto
		var descripcion sql.NullString
		if err := rows.Scan(&imagen.ID, &imagen.AutoID, &imagen.URLImagen, &descripcion); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to scan imagen: %w", err))
		}
		imagen.Descripcion = nullString(descripcion)
		imagenes = append(imagenes, imagen)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list imagenes: %w", err))
	}

	return imagenes, nil
}

// DeleteImagenes removes every image row owned by the vehicle and returns
// how many were deleted.
func (d *DatabaseClient) DeleteImagenes(autoID int64) (int64, error) {
	result, err := d.db.Exec(`DELETE FROM auto_imagenes WHERE auto_id = $1`, autoID)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to delete imagenes: %w", err))
	}
	affected, _ := result.RowsAffected()

	return affected, nil
}

// DeleteImagen removes a single image row.
func (d *DatabaseClient) DeleteImagen(imagenID int64) error {
	result, err := d.db.Exec(`DELETE FROM auto_imagenes WHERE id = $1`, imagenID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to delete imagen: %w", err))
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.WithMessage(apperrors.ErrImagenNotFound, "Image not found")
	}

	return nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

// row abstracts sql.Row and sql.Rows for the shared scanner.
type row interface {
	Scan(dest ...interface{}) error
}

func scanAuto(r row) (models.Auto, error) {
	var auto models.Auto
	var kilometraje sql.NullInt64
	var color, numeroSerie, observaciones sql.NullString
	var precioCompra, precioVenta sql.NullFloat64
	var fechaIngreso sql.NullTime

	err := r.Scan(
		&auto.ID, &auto.Marca, &auto.Modelo, &auto.Anio, &kilometraje,
		&color, &numeroSerie, &auto.Estado, &precioCompra, &precioVenta,
		&fechaIngreso, &observaciones, &auto.CreatedAt,
	)
	if err != nil {
		return models.Auto{}, err
	}

	auto.Kilometraje = nullInt(kilometraje)
	auto.Color = nullString(color)
	auto.NumeroSerie = nullString(numeroSerie)
	auto.PrecioCompra = nullFloat(precioCompra)
	auto.PrecioVenta = nullFloat(precioVenta)
	if fechaIngreso.Valid {
		auto.FechaIngreso = fechaIngreso.Time.Format("2006-01-02")
	}
	auto.Estado = models.NormalizeEstado(auto.Estado)

	return auto, nil
}

func buildAutoSet(update models.AutoUpdate) ([]string, []interface{}) {
	var set []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Marca != nil {
		add("marca", *update.Marca)
	}
	if update.Modelo != nil {
		add("modelo", *update.Modelo)
	}
	if update.Anio != nil {
		add("anio", *update.Anio)
	}
	if update.Kilometraje != nil {
		add("kilometraje", *update.Kilometraje)
	}
	if update.Color != nil {
		add("color", *update.Color)
	}
	if update.NumeroSerie != nil {
		add("numero_serie", *update.NumeroSerie)
	}
	if update.Estado != nil {
		add("estado", *update.Estado)
	}
	if update.PrecioCompra != nil {
		add("precio_compra", *update.PrecioCompra)
	}
	if update.PrecioVenta != nil {
		add("precio_venta", *update.PrecioVenta)
	}
	if update.FechaIngreso != nil {
		add("fecha_ingreso", *update.FechaIngreso)
	}
	if update.Observaciones != nil {
		add("observaciones", *update.Observaciones)
	}

	return set, args
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
