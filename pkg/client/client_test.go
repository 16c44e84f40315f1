package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/sensor-data-api/pkg/types"
	"github.com/matryer/is"
)

func TestGetSensorDecodesResponse(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/manage/sensors/1", r.URL.Path)
		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"name":"livingroom","description":"temperature","unit":"C"}`))
	}))
	defer server.Close()

	c := New(server.URL)

	sensor, err := c.GetSensor(context.Background(), 1)
	is.NoErr(err)
	is.Equal(types.Sensor{ID: 1, Name: "livingroom", Description: "temperature", Unit: "C"}, sensor)
}

func TestGetUnknownSensorReturnsNotFound(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.GetSensor(context.Background(), 33)
	is.True(errors.Is(err, ErrSensorNotFound))
}

func TestStoreReadingPostsToTheSensorPath(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(http.MethodPost, r.Method)
		is.Equal("/sensors/1", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		is.Equal(`{"sensor_id":1,"value":21.5}`, string(body))

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":17,"sensor_id":1,"value":21.5,"timestamp":"2026-08-25T12:00:00Z"}`))
	}))
	defer server.Close()

	c := New(server.URL)

	reading, err := c.StoreReading(context.Background(), 1, 21.5)
	is.NoErr(err)
	is.Equal(int64(17), reading.ID)
}
