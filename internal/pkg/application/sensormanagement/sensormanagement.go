package sensormanagement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/sensor-data-api/internal/pkg/infrastructure/notifications"
	"github.com/diwise/sensor-data-api/internal/pkg/infrastructure/storage"
	"github.com/diwise/sensor-data-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
)

var ErrSensorNotFound = fmt.Errorf("sensor not found")

// ErrInconsistentState signals that a row written moments ago could not be
// read back, which should never happen on a healthy database.
var ErrInconsistentState = fmt.Errorf("stored data could not be read back")

// MissingSensorsError names every sensor id in a batch that does not exist,
// in ascending order. The whole batch is rejected when it is returned.
type MissingSensorsError struct {
	SensorIDs []int64
}

func (e *MissingSensorsError) Error() string {
	ids := lo.Map(e.SensorIDs, func(id int64, _ int) string {
		return fmt.Sprintf("%d", id)
	})
	return fmt.Sprintf("sensors not found: %s", strings.Join(ids, ", "))
}

//go:generate moq -rm -out sensormanagement_mock.go . SensorManagement
type SensorManagement interface {
	GetSensors(ctx context.Context) ([]types.Sensor, error)
	GetSensorByID(ctx context.Context, sensorID int64) (types.Sensor, error)
	CreateSensor(ctx context.Context, details types.SensorDetails) (types.Sensor, error)
	UpdateSensor(ctx context.Context, sensorID int64, details types.SensorDetails) (types.Sensor, error)

	StoreReading(ctx context.Context, sensorID int64, value float64) (types.SensorReading, error)
	StoreReadings(ctx context.Context, items []types.ReadingDetails) (map[int64][]types.SensorReading, error)

	GetReadings(ctx context.Context, sensorID int64, span types.TimeSpan) ([]types.SensorReading, error)
	GetAllReadings(ctx context.Context, span types.TimeSpan) (map[int64][]types.SensorReading, error)
}

//go:generate moq -rm -out sensorstorage_mock.go . SensorStorage
type SensorStorage interface {
	GetSensors(ctx context.Context) ([]types.Sensor, error)
	GetSensorByID(ctx context.Context, sensorID int64) (types.Sensor, error)
	AddSensor(ctx context.Context, details types.SensorDetails) (int64, error)
	UpdateSensor(ctx context.Context, sensorID int64, details types.SensorDetails) error
	MissingSensors(ctx context.Context, sensorIDs []int64) ([]int64, error)

	AddReading(ctx context.Context, sensorID int64, value float64) (int64, error)
	AddReadings(ctx context.Context, items []types.ReadingDetails) (map[int64][]types.SensorReading, error)
	GetReadingByID(ctx context.Context, readingID int64) (types.SensorReading, error)
	GetReadings(ctx context.Context, sensorID int64, span types.TimeSpan) ([]types.SensorReading, error)
	GetAllReadings(ctx context.Context, span types.TimeSpan) (map[int64][]types.SensorReading, error)
}

type service struct {
	storage   SensorStorage
	messenger messaging.MsgContext
	notifier  notifications.Notifier
}

func New(storage SensorStorage, messenger messaging.MsgContext, notifier notifications.Notifier) SensorManagement {
	return service{
		storage:   storage,
		messenger: messenger,
		notifier:  notifier,
	}
}

func (s service) GetSensors(ctx context.Context) ([]types.Sensor, error) {
	return s.storage.GetSensors(ctx)
}

func (s service) GetSensorByID(ctx context.Context, sensorID int64) (types.Sensor, error) {
	sensor, err := s.storage.GetSensorByID(ctx, sensorID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Sensor{}, ErrSensorNotFound
		}
		return types.Sensor{}, err
	}

	return sensor, nil
}

func (s service) CreateSensor(ctx context.Context, details types.SensorDetails) (types.Sensor, error) {
	sensorID, err := s.storage.AddSensor(ctx, details)
	if err != nil {
		return types.Sensor{}, err
	}

	sensor, err := s.storage.GetSensorByID(ctx, sensorID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Sensor{}, ErrInconsistentState
		}
		return types.Sensor{}, err
	}

	s.publish(ctx, &types.SensorCreated{
		SensorID:  sensor.ID,
		Name:      sensor.Name,
		Timestamp: time.Now().UTC(),
	})

	s.notify(ctx, fmt.Sprintf("new sensor registered: %s (%s)", sensor.Name, sensor.Unit))

	return sensor, nil
}

func (s service) UpdateSensor(ctx context.Context, sensorID int64, details types.SensorDetails) (types.Sensor, error) {
	err := s.storage.UpdateSensor(ctx, sensorID, details)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Sensor{}, ErrSensorNotFound
		}
		return types.Sensor{}, err
	}

	sensor, err := s.storage.GetSensorByID(ctx, sensorID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Sensor{}, ErrInconsistentState
		}
		return types.Sensor{}, err
	}

	s.publish(ctx, &types.SensorUpdated{
		SensorID:  sensor.ID,
		Name:      sensor.Name,
		Timestamp: time.Now().UTC(),
	})

	return sensor, nil
}

func (s service) StoreReading(ctx context.Context, sensorID int64, value float64) (types.SensorReading, error) {
	_, err := s.GetSensorByID(ctx, sensorID)
	if err != nil {
		return types.SensorReading{}, err
	}

	readingID, err := s.storage.AddReading(ctx, sensorID, value)
	if err != nil {
		return types.SensorReading{}, err
	}

	reading, err := s.storage.GetReadingByID(ctx, readingID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.SensorReading{}, ErrInconsistentState
		}
		return types.SensorReading{}, err
	}

	s.publish(ctx, &types.ReadingsStored{
		SensorIDs: []int64{sensorID},
		Count:     1,
		Timestamp: time.Now().UTC(),
	})

	return reading, nil
}

// StoreReadings stores a batch of readings all or nothing. An empty batch is
// a no-op. When any referenced sensor does not exist, nothing is stored and
// the returned error names every missing id.
func (s service) StoreReadings(ctx context.Context, items []types.ReadingDetails) (map[int64][]types.SensorReading, error) {
	if len(items) == 0 {
		return map[int64][]types.SensorReading{}, nil
	}

	sensorIDs := lo.Uniq(lo.Map(items, func(item types.ReadingDetails, _ int) int64 {
		return item.SensorID
	}))

	missing, err := s.storage.MissingSensors(ctx, sensorIDs)
	if err != nil {
		return nil, err
	}

	if len(missing) > 0 {
		return nil, &MissingSensorsError{SensorIDs: missing}
	}

	result, err := s.storage.AddReadings(ctx, items)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &types.ReadingsStored{
		SensorIDs: sensorIDs,
		Count:     len(items),
		Timestamp: time.Now().UTC(),
	})

	return result, nil
}

func (s service) GetReadings(ctx context.Context, sensorID int64, span types.TimeSpan) ([]types.SensorReading, error) {
	_, err := s.GetSensorByID(ctx, sensorID)
	if err != nil {
		return nil, err
	}

	return s.storage.GetReadings(ctx, sensorID, span)
}

func (s service) GetAllReadings(ctx context.Context, span types.TimeSpan) (map[int64][]types.SensorReading, error) {
	return s.storage.GetAllReadings(ctx, span)
}

// publish and notify are side effects of an already committed write, so
// failures are logged and never fail the request.
func (s service) publish(ctx context.Context, message messaging.TopicMessage) {
	err := s.messenger.PublishOnTopic(ctx, message)
	if err != nil {
		logging.GetFromContext(ctx).Warn("failed to publish message", "topic", message.TopicName(), "err", err.Error())
	}
}

func (s service) notify(ctx context.Context, body string) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.Send(ctx, body)
	if err != nil {
		logging.GetFromContext(ctx).Warn("failed to send notification", "err", err.Error())
	}
}
