package supabase

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dealer-inventory-backend/internal/apperrors"
	"dealer-inventory-backend/internal/models"
)

const mantenimientoColumns = `m.id, m.auto_id, m.tipo, m.fecha, m.descripcion,
		m.costo, m.kilometraje, m.nota, m.created_at, m.updated_at`

// CreateMantenimiento inserts a maintenance record and returns the stored
// row.
func (d *DatabaseClient) CreateMantenimiento(m *models.Mantenimiento) (*models.Mantenimiento, error) {
	row := d.db.QueryRow(`
		INSERT INTO historial_mantenimiento (auto_id, tipo, fecha, descripcion, costo, kilometraje, nota)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, auto_id, tipo, fecha, descripcion, costo, kilometraje, nota, created_at, updated_at
	`, m.AutoID, m.Tipo, m.Fecha, m.Descripcion, m.Costo, m.Kilometraje, m.Nota)

	created, err := scanMantenimiento(row, false)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to create mantenimiento: %w", err))
	}

	return &created, nil
}

// GetMantenimiento returns one maintenance record.
func (d *DatabaseClient) GetMantenimiento(id int64) (*models.Mantenimiento, error) {
	row := d.db.QueryRow(`
		SELECT id, auto_id, tipo, fecha, descripcion, costo, kilometraje, nota, created_at, updated_at
		FROM historial_mantenimiento
		WHERE id = $1
	`, id)

	m, err := scanMantenimiento(row, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrMantenimientoNotFound, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to get mantenimiento: %w", err))
	}

	return &m, nil
}

// ListMantenimientosByAuto returns one vehicle's maintenance history,
// newest fecha first.
func (d *DatabaseClient) ListMantenimientosByAuto(autoID int64) ([]models.Mantenimiento, error) {
	return d.queryMantenimientos(`
		SELECT id, auto_id, tipo, fecha, descripcion, costo, kilometraje, nota, created_at, updated_at
		FROM historial_mantenimiento
		WHERE auto_id = $1
		ORDER BY fecha DESC
	`, false, autoID)
}

// ListMantenimientos returns every maintenance record, newest fecha first,
// each annotated with the owning vehicle's marca and modelo.
func (d *DatabaseClient) ListMantenimientos() ([]models.Mantenimiento, error) {
	return d.queryMantenimientos(`
		SELECT `+mantenimientoColumns+`, a.marca, a.modelo
		FROM historial_mantenimiento m
		LEFT JOIN autos a ON a.id = m.auto_id
		ORDER BY m.fecha DESC
	`, true)
}

// SearchMantenimientos returns records whose descripcion or tipo contains
// the query, case-insensitively, annotated like ListMantenimientos.
func (d *DatabaseClient) SearchMantenimientos(query string) ([]models.Mantenimiento, error) {
	pattern := "%" + query + "%"
	return d.queryMantenimientos(`
		SELECT `+mantenimientoColumns+`, a.marca, a.modelo
		FROM historial_mantenimiento m
		LEFT JOIN autos a ON a.id = m.auto_id
		WHERE m.descripcion ILIKE $1 OR m.tipo ILIKE $1
		ORDER BY m.fecha DESC
	`, true, pattern)
}

// ListMantenimientosSnapshot returns the full table without annotation,
// for the maintenance statistics.
func (d *DatabaseClient) ListMantenimientosSnapshot() ([]models.Mantenimiento, error) {
	return d.queryMantenimientos(`
		SELECT id, auto_id, tipo, fecha, descripcion, costo, kilometraje, nota, created_at, updated_at
		FROM historial_mantenimiento
	`, false)
}

// UpdateMantenimiento applies a partial update and returns the stored row.
func (d *DatabaseClient) UpdateMantenimiento(id int64, update models.MantenimientoUpdate) (*models.Mantenimiento, error) {
	set, args := buildMantenimientoSet(update)
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE historial_mantenimiento SET %s WHERE id = $%d
		RETURNING id, auto_id, tipo, fecha, descripcion, costo, kilometraje, nota, created_at, updated_at
	`, strings.Join(set, ", "), len(args))

	m, err := scanMantenimiento(d.db.QueryRow(query, args...), false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrMantenimientoNotFound, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to update mantenimiento: %w", err))
	}

	return &m, nil
}

// DeleteMantenimiento removes one maintenance record.
func (d *DatabaseClient) DeleteMantenimiento(id int64) error {
	result, err := d.db.Exec(`DELETE FROM historial_mantenimiento WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to delete mantenimiento: %w", err))
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.WithMessage(apperrors.ErrMantenimientoNotFound, "Maintenance record not found")
	}

	return nil
}

// DeleteMantenimientosByAuto removes a vehicle's entire maintenance
// history. Only called when the cascade policy is enabled.
func (d *DatabaseClient) DeleteMantenimientosByAuto(autoID int64) (int64, error) {
	result, err := d.db.Exec(`DELETE FROM historial_mantenimiento WHERE auto_id = $1`, autoID)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to delete mantenimientos: %w", err))
	}
	affected, _ := result.RowsAffected()

	return affected, nil
}

func (d *DatabaseClient) queryMantenimientos(query string, annotated bool, args ...interface{}) ([]models.Mantenimiento, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list mantenimientos: %w", err))
	}
	defer rows.Close()

	var mantenimientos []models.Mantenimiento
	for rows.Next() {
		m, err := scanMantenimiento(rows, annotated)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to scan mantenimiento: %w", err))
		}
		mantenimientos = append(mantenimientos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("failed to list mantenimientos: %w", err))
	}

	return mantenimientos, nil
}

func scanMantenimiento(r row, annotated bool) (models.Mantenimiento, error) {
	var m models.Mantenimiento
	var tipo, nota sql.NullString
	var costo sql.NullFloat64
	var kilometraje sql.NullInt64
	var fecha sql.NullTime

	dest := []interface{}{
		&m.ID, &m.AutoID, &tipo, &fecha, &m.Descripcion,
		&costo, &kilometraje, &nota, &m.CreatedAt, &m.UpdatedAt,
	}

	var marca, modelo sql.NullString
	if annotated {
		dest = append(dest, &marca, &modelo)
	}

	if err := r.Scan(dest...); err != nil {
		return models.Mantenimiento{}, err
	}

	m.Tipo = nullString(tipo)
	m.Nota = nullString(nota)
	m.Costo = nullFloat(costo)
	m.Kilometraje = nullInt(kilometraje)
	if fecha.Valid {
		m.Fecha = fecha.Time.Format("2006-01-02")
	}
	if annotated && marca.Valid {
		m.Auto = &models.AutoResumen{Marca: marca.String, Modelo: modelo.String}
	}

	return m, nil
}

func buildMantenimientoSet(update models.MantenimientoUpdate) ([]string, []interface{}) {
	var set []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.AutoID != nil {
		add("auto_id", *update.AutoID)
	}
	if update.Tipo != nil {
		add("tipo", *update.Tipo)
	}
	if update.Fecha != nil {
		add("fecha", *update.Fecha)
	}
	if update.Descripcion != nil {
		add("descripcion", *update.Descripcion)
	}
	if update.Costo != nil {
		add("costo", *update.Costo)
	}
	if update.Kilometraje != nil {
		add("kilometraje", *update.Kilometraje)
	}
	if update.Nota != nil {
		add("nota", *update.Nota)
	}

	return set, args
}
