package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 255
	MaxUnitLength        = 50
)

type Sensor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

// SensorDetails is the client supplied part of a sensor. The id is always
// assigned by the server.
type SensorDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

func (d SensorDetails) Validate() error {
	var errs []error

	if d.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(d.Name) > MaxNameLength {
		errs = append(errs, fmt.Errorf("name exceeds %d characters", MaxNameLength))
	}
	if d.Description == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if len(d.Description) > MaxDescriptionLength {
		errs = append(errs, fmt.Errorf("description exceeds %d characters", MaxDescriptionLength))
	}
	if d.Unit == "" {
		errs = append(errs, errors.New("unit is required"))
	}
	if len(d.Unit) > MaxUnitLength {
		errs = append(errs, fmt.Errorf("unit exceeds %d characters", MaxUnitLength))
	}

	return errors.Join(errs...)
}

type SensorReading struct {
	ID        int64     `json:"id"`
	SensorID  int64     `json:"sensor_id"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadingDetails is the client supplied part of a reading. Id and timestamp
// are assigned by the server on insert.
type ReadingDetails struct {
	SensorID int64   `json:"sensor_id"`
	Value    float64 `json:"value"`
}

// TimeSpan bounds a readings query. Nil means unbounded on that side and
// both bounds are inclusive.
type TimeSpan struct {
	From *time.Time
	To   *time.Time
}
