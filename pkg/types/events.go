package types

import "time"

type SensorCreated struct {
	SensorID  int64     `json:"sensor_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SensorCreated) ContentType() string {
	return "application/json"
}
func (s *SensorCreated) TopicName() string {
	return "sensor.created"
}

type SensorUpdated struct {
	SensorID  int64     `json:"sensor_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SensorUpdated) ContentType() string {
	return "application/json"
}
func (s *SensorUpdated) TopicName() string {
	return "sensor.updated"
}

type ReadingsStored struct {
	SensorIDs []int64   `json:"sensor_ids"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *ReadingsStored) ContentType() string {
	return "application/json"
}
func (r *ReadingsStored) TopicName() string {
	return "sensor.readingsStored"
}
