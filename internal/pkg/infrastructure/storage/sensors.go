package storage

import (
	"context"
	"errors"
	"slices"

	"github.com/diwise/sensor-data-api/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetSensors(ctx context.Context) ([]types.Sensor, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, unit
		FROM sensors
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sensors := make([]types.Sensor, 0)

	for rows.Next() {
		var sensor types.Sensor
		err := rows.Scan(&sensor.ID, &sensor.Name, &sensor.Description, &sensor.Unit)
		if err != nil {
			return nil, err
		}
		sensors = append(sensors, sensor)
	}

	return sensors, rows.Err()
}

func (s *Storage) GetSensorByID(ctx context.Context, sensorID int64) (types.Sensor, error) {
	var sensor types.Sensor

	err := s.pool.QueryRow(ctx, `
		SELECT id, name, description, unit
		FROM sensors
		WHERE id = @id
	`, pgx.NamedArgs{"id": sensorID}).Scan(&sensor.ID, &sensor.Name, &sensor.Description, &sensor.Unit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Sensor{}, ErrNoRows
		}
		return types.Sensor{}, err
	}

	return sensor, nil
}

// AddSensor inserts a new sensor and returns its server assigned id.
func (s *Storage) AddSensor(ctx context.Context, details types.SensorDetails) (int64, error) {
	args := pgx.NamedArgs{
		"name":        details.Name,
		"description": details.Description,
		"unit":        details.Unit,
	}

	var sensorID int64

	err := s.pool.QueryRow(ctx, `
		INSERT INTO sensors (name, description, unit)
		VALUES (@name, @description, @unit)
		RETURNING id
	`, args).Scan(&sensorID)
	if err != nil {
		return 0, err
	}

	return sensorID, nil
}

// UpdateSensor replaces all client supplied fields of an existing sensor.
// ErrNoRows is returned when no sensor with the given id exists; a row is
// never created by an update.
func (s *Storage) UpdateSensor(ctx context.Context, sensorID int64, details types.SensorDetails) error {
	args := pgx.NamedArgs{
		"id":          sensorID,
		"name":        details.Name,
		"description": details.Description,
		"unit":        details.Unit,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE sensors
		SET name = @name, description = @description, unit = @unit
		WHERE id = @id
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// MissingSensors returns the subset of the given ids that do not exist in the
// sensors table, in ascending order.
func (s *Storage) MissingSensors(ctx context.Context, sensorIDs []int64) ([]int64, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id FROM sensors WHERE id = any(@ids)
	`, pgx.NamedArgs{"ids": sensorIDs})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	known := make(map[int64]struct{}, len(sensorIDs))

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		known[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	missing := make([]int64, 0)
	seen := make(map[int64]struct{}, len(sensorIDs))

	for _, id := range sensorIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}

	slices.Sort(missing)

	return missing, nil
}
