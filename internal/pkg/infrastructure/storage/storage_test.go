package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diwise/sensor-data-api/pkg/types"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func newSensor(t *testing.T, ctx context.Context, s *Storage) types.Sensor {
	sensorID, err := s.AddSensor(ctx, types.SensorDetails{
		Name:        fmt.Sprintf("sensor-%d", time.Now().UnixNano()),
		Description: "test sensor",
		Unit:        "C",
	})
	if err != nil {
		t.Fatal(err)
	}

	sensor, err := s.GetSensorByID(ctx, sensorID)
	if err != nil {
		t.Fatal(err)
	}

	return sensor
}

func TestPoolConfigSetsAllTuningParameters(t *testing.T) {
	is := is.New(t)

	cfg, err := poolConfig(Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	})
	is.NoErr(err)

	is.Equal(int32(5), cfg.MinConns)
	is.Equal(int32(15), cfg.MaxConns)
	is.Equal(time.Hour, cfg.MaxConnLifetime)
	is.Equal(time.Minute, cfg.HealthCheckPeriod)
}

func TestAddSensorIsRetrievable(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensor := newSensor(t, ctx, s)
	is.True(sensor.ID > 0)

	fromDb, err := s.GetSensorByID(ctx, sensor.ID)
	is.NoErr(err)
	is.Equal(sensor, fromDb)
}

func TestGetUnknownSensorReturnsErrNoRows(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, err := s.GetSensorByID(ctx, -1)
	is.Equal(err, ErrNoRows)
}

func TestUpdateUnknownSensorDoesNotCreateRow(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := s.UpdateSensor(ctx, -1, types.SensorDetails{Name: "n", Description: "d", Unit: "u"})
	is.Equal(err, ErrNoRows)

	_, err = s.GetSensorByID(ctx, -1)
	is.Equal(err, ErrNoRows)
}

func TestMissingSensorsSortedAscending(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensor := newSensor(t, ctx, s)

	missing, err := s.MissingSensors(ctx, []int64{-2, sensor.ID, -7, -2})
	is.NoErr(err)
	is.Equal(missing, []int64{-7, -2})
}

func TestAddReadingsReturnsOneRepresentativePerSensor(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	first := newSensor(t, ctx, s)
	second := newSensor(t, ctx, s)

	result, err := s.AddReadings(ctx, []types.ReadingDetails{
		{SensorID: first.ID, Value: 1.0},
		{SensorID: first.ID, Value: 2.0},
		{SensorID: second.ID, Value: 3.0},
	})
	is.NoErr(err)

	is.Equal(2, len(result))
	is.Equal(1, len(result[first.ID]))
	is.Equal(1, len(result[second.ID]))

	// same copy statement, same default timestamp: the highest id wins
	representative := result[first.ID][0]
	is.Equal(2.0, representative.Value)
}

func TestAddReadingsWithUnknownSensorStoresNothing(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensor := newSensor(t, ctx, s)

	before, err := s.GetReadings(ctx, sensor.ID, types.TimeSpan{})
	is.NoErr(err)

	_, err = s.AddReadings(ctx, []types.ReadingDetails{
		{SensorID: sensor.ID, Value: 1.0},
		{SensorID: -1, Value: 2.0},
	})
	is.True(err != nil)

	after, err := s.GetReadings(ctx, sensor.ID, types.TimeSpan{})
	is.NoErr(err)
	is.Equal(len(before), len(after))
}

func TestGetReadingsOrderedByTimestampDescending(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensor := newSensor(t, ctx, s)

	for i := 0; i < 5; i++ {
		_, err := s.AddReading(ctx, sensor.ID, float64(i))
		is.NoErr(err)
	}

	readings, err := s.GetReadings(ctx, sensor.ID, types.TimeSpan{})
	is.NoErr(err)
	is.Equal(5, len(readings))

	for i := 1; i < len(readings); i++ {
		is.True(!readings[i].Timestamp.After(readings[i-1].Timestamp))
	}
}

func TestGetReadingsBoundsAreInclusive(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensor := newSensor(t, ctx, s)

	readingID, err := s.AddReading(ctx, sensor.ID, 21.5)
	is.NoErr(err)

	reading, err := s.GetReadingByID(ctx, readingID)
	is.NoErr(err)

	at := reading.Timestamp
	readings, err := s.GetReadings(ctx, sensor.ID, types.TimeSpan{From: &at, To: &at})
	is.NoErr(err)

	found := false
	for _, r := range readings {
		if r.ID == readingID {
			found = true
		}
	}
	is.True(found)
}
