package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diwise/sensor-data-api/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddReading inserts a single reading and returns its server assigned id.
// The timestamp comes from the column default at insertion time.
func (s *Storage) AddReading(ctx context.Context, sensorID int64, value float64) (int64, error) {
	args := pgx.NamedArgs{
		"sensor_id": sensorID,
		"value":     value,
	}

	var readingID int64

	err := s.pool.QueryRow(ctx, `
		INSERT INTO sensor_data (sensor_id, value)
		VALUES (@sensor_id, @value)
		RETURNING id
	`, args).Scan(&readingID)
	if err != nil {
		return 0, err
	}

	return readingID, nil
}

func (s *Storage) GetReadingByID(ctx context.Context, readingID int64) (types.SensorReading, error) {
	var reading types.SensorReading

	err := s.pool.QueryRow(ctx, `
		SELECT id, sensor_id, value, time
		FROM sensor_data
		WHERE id = @id
	`, pgx.NamedArgs{"id": readingID}).Scan(&reading.ID, &reading.SensorID, &reading.Value, &reading.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.SensorReading{}, ErrNoRows
		}
		return types.SensorReading{}, err
	}

	return reading, nil
}

// AddReadings stores a batch of readings in one transaction using the
// driver's copy protocol. Copy does not report generated ids, so the returned
// map contains one representative reading per sensor: the newest by
// timestamp, with the highest id winning a timestamp tie. The referencing
// foreign key makes the transaction fail and roll back as a whole if any
// sensor disappeared since the caller checked.
func (s *Storage) AddReadings(ctx context.Context, items []types.ReadingDetails) (map[int64][]types.SensorReading, error) {
	result := make(map[int64][]types.SensorReading, len(items))

	if len(items) == 0 {
		return result, nil
	}

	sensorIDs := make([]int64, 0, len(items))
	copyRows := make([][]any, 0, len(items))

	for _, item := range items {
		sensorIDs = append(sensorIDs, item.SensorID)
		copyRows = append(copyRows, []any{item.SensorID, item.Value})
	}

	err := s.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"sensor_data"},
			[]string{"sensor_id", "value"},
			pgx.CopyFromRows(copyRows),
		)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
		}

		rows, err := tx.Query(ctx, `
			SELECT DISTINCT ON (sensor_id) id, sensor_id, value, time
			FROM sensor_data
			WHERE sensor_id = any(@ids)
			ORDER BY sensor_id, time DESC, id DESC
		`, pgx.NamedArgs{"ids": sensorIDs})
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var reading types.SensorReading
			err := rows.Scan(&reading.ID, &reading.SensorID, &reading.Value, &reading.Timestamp)
			if err != nil {
				return err
			}
			result[reading.SensorID] = []types.SensorReading{reading}
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetReadings returns the readings of one sensor within the given span,
// newest first. Both bounds are inclusive.
func (s *Storage) GetReadings(ctx context.Context, sensorID int64, span types.TimeSpan) ([]types.SensorReading, error) {
	args := pgx.NamedArgs{"sensor_id": sensorID}
	where := []string{"sensor_id = @sensor_id"}

	appendSpan(args, &where, span)

	query := fmt.Sprintf(`
		SELECT id, sensor_id, value, time
		FROM sensor_data
		WHERE %s
		ORDER BY time DESC
	`, strings.Join(where, " AND "))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings := make([]types.SensorReading, 0)

	for rows.Next() {
		var reading types.SensorReading
		err := rows.Scan(&reading.ID, &reading.SensorID, &reading.Value, &reading.Timestamp)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	return readings, rows.Err()
}

// GetAllReadings returns readings within the given span grouped by sensor,
// newest first within each sensor.
func (s *Storage) GetAllReadings(ctx context.Context, span types.TimeSpan) (map[int64][]types.SensorReading, error) {
	args := pgx.NamedArgs{}
	where := []string{"TRUE"}

	appendSpan(args, &where, span)

	query := fmt.Sprintf(`
		SELECT id, sensor_id, value, time
		FROM sensor_data
		WHERE %s
		ORDER BY sensor_id ASC, time DESC, id DESC
	`, strings.Join(where, " AND "))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings := make(map[int64][]types.SensorReading)

	for rows.Next() {
		var reading types.SensorReading
		err := rows.Scan(&reading.ID, &reading.SensorID, &reading.Value, &reading.Timestamp)
		if err != nil {
			return nil, err
		}
		readings[reading.SensorID] = append(readings[reading.SensorID], reading)
	}

	return readings, rows.Err()
}

func appendSpan(args pgx.NamedArgs, where *[]string, span types.TimeSpan) {
	if span.From != nil {
		args["from"] = *span.From
		*where = append(*where, "time >= @from")
	}
	if span.To != nil {
		args["to"] = *span.To
		*where = append(*where, "time <= @to")
	}
}
