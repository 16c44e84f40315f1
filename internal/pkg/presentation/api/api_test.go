package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diwise/sensor-data-api/internal/pkg/application/sensormanagement"
	"github.com/diwise/sensor-data-api/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

type proberFunc func(ctx context.Context) error

func (f proberFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func testSetup(t *testing.T, svc sensormanagement.SensorManagement, dbErr error) *httptest.Server {
	router := RegisterHandlers(context.Background(), chi.NewRouter(), svc, proberFunc(func(ctx context.Context) error {
		return dbErr
	}))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func testRequest(t *testing.T, server *httptest.Server, method, path, body string) (int, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	return resp.StatusCode, string(respBody)
}

func TestPingRespondsWithPong(t *testing.T) {
	is := is.New(t)
	server := testSetup(t, &sensormanagement.SensorManagementMock{}, nil)

	status, body := testRequest(t, server, http.MethodGet, "/ping", "")
	is.Equal(http.StatusOK, status)
	is.Equal(`{"ping":"pong!"}`, body)
}

func TestPongRespondsWithPing(t *testing.T) {
	is := is.New(t)
	server := testSetup(t, &sensormanagement.SensorManagementMock{}, nil)

	status, body := testRequest(t, server, http.MethodGet, "/pong", "")
	is.Equal(http.StatusOK, status)
	is.Equal(`{"pong":"ping?"}`, body)
}

func TestHealthReportsHealthyWhenDatabaseAnswers(t *testing.T) {
	is := is.New(t)
	server := testSetup(t, &sensormanagement.SensorManagementMock{}, nil)

	status, body := testRequest(t, server, http.MethodGet, "/", "")
	is.Equal(http.StatusOK, status)
	is.Equal(`{"api":"healthy","db":"healthy"}`, body)
}

func TestHealthReportsDegradedWhenDatabaseDoesNot(t *testing.T) {
	is := is.New(t)
	server := testSetup(t, &sensormanagement.SensorManagementMock{}, context.DeadlineExceeded)

	status, body := testRequest(t, server, http.MethodGet, "/", "")
	is.Equal(http.StatusOK, status)
	is.Equal(`{"api":"degraded","db":"error"}`, body)
}

func TestListSensorsReturnsEmptyArrayWhenNoneExist(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		GetSensorsFunc: func(ctx context.Context) ([]types.Sensor, error) {
			return nil, nil
		},
	}
	server := testSetup(t, svc, nil)

	status, body := testRequest(t, server, http.MethodGet, "/manage/sensors/", "")
	is.Equal(http.StatusOK, status)
	is.Equal(`[]`, body)
}

func TestCreateSensorReturnsStoredSensor(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		CreateSensorFunc: func(ctx context.Context, details types.SensorDetails) (types.Sensor, error) {
			return types.Sensor{ID: 1, Name: details.Name, Description: details.Description, Unit: details.Unit}, nil
		},
	}
	server := testSetup(t, svc, nil)

	status, body := testRequest(t, server, http.MethodPost, "/manage/sensors/",
		`{"name":"livingroom","description":"temperature","unit":"C"}`)
	is.Equal(http.StatusCreated, status)
	is.Equal(`{"id":1,"name":"livingroom","description":"temperature","unit":"C"}`, body)
}

func TestCreateSensorWithoutNameIsRejected(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{}
	server := testSetup(t, svc, nil)

	status, _ := testRequest(t, server, http.MethodPost, "/manage/sensors/",
		`{"description":"temperature","unit":"C"}`)
	is.Equal(http.StatusBadRequest, status)
	is.Equal(0, len(svc.CreateSensorCalls()))
}

func TestGetUnknownSensorReturns404(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		GetSensorByIDFunc: func(ctx context.Context, sensorID int64) (types.Sensor, error) {
			return types.Sensor{}, sensormanagement.ErrSensorNotFound
		},
	}
	server := testSetup(t, svc, nil)

	status, body := testRequest(t, server, http.MethodGet, "/manage/sensors/33", "")
	is.Equal(http.StatusNotFound, status)
	is.Equal(`{"detail":"sensor 33 not found"}`, body)
}

func TestGetSensorWithNonIntegerIDIsRejected(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{}
	server := testSetup(t, svc, nil)

	status, _ := testRequest(t, server, http.MethodGet, "/manage/sensors/banana", "")
	is.Equal(http.StatusBadRequest, status)
	is.Equal(0, len(svc.GetSensorByIDCalls()))
}

func TestUpdateUnknownSensorReturns404(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		UpdateSensorFunc: func(ctx context.Context, sensorID int64, details types.SensorDetails) (types.Sensor, error) {
			return types.Sensor{}, sensormanagement.ErrSensorNotFound
		},
	}
	server := testSetup(t, svc, nil)

	status, _ := testRequest(t, server, http.MethodPut, "/manage/sensors/33",
		`{"name":"livingroom","description":"temperature","unit":"C"}`)
	is.Equal(http.StatusNotFound, status)
}

func TestStoreReadingWithMismatchedSensorIDIsRejected(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{}
	server := testSetup(t, svc, nil)

	status, body := testRequest(t, server, http.MethodPost, "/sensors/1",
		`{"sensor_id":2,"value":21.5}`)
	is.Equal(http.StatusBadRequest, status)
	is.Equal(`{"detail":"sensor id in body (2) does not match path (1)"}`, body)
	is.Equal(0, len(svc.StoreReadingCalls()))
}

func TestStoreReadingReturnsStoredRow(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		StoreReadingFunc: func(ctx context.Context, sensorID int64, value float64) (types.SensorReading, error) {
			return types.SensorReading{ID: 17, SensorID: sensorID, Value: value}, nil
		},
	}
	server := testSetup(t, svc, nil)

	status, _ := testRequest(t, server, http.MethodPost, "/sensors/1",
		`{"sensor_id":1,"value":21.5}`)
	is.Equal(http.StatusCreated, status)

	is.Equal(1, len(svc.StoreReadingCalls()))
	is.Equal(int64(1), svc.StoreReadingCalls()[0].SensorID)
	is.Equal(21.5, svc.StoreReadingCalls()[0].Value)
}

func TestStoreReadingForUnknownSensorReturns404(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		StoreReadingFunc: func(ctx context.Context, sensorID int64, value float64) (types.SensorReading, error) {
			return types.SensorReading{}, sensormanagement.ErrSensorNotFound
		},
	}
	server := testSetup(t, svc, nil)

	status, _ := testRequest(t, server, http.MethodPost, "/sensors/33",
		`{"sensor_id":33,"value":21.5}`)
	is.Equal(http.StatusNotFound, status)
}

func TestStoreReadingsNamesEveryMissingSensor(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		StoreReadingsFunc: func(ctx context.Context, items []types.ReadingDetails) (map[int64][]types.SensorReading, error) {
			return nil, &sensormanagement.MissingSensorsError{SensorIDs: []int64{33, 34}}
		},
	}
	server := testSetup(t, svc, nil)

	status, body := testRequest(t, server, http.MethodPost, "/sensors/",
		`[{"sensor_id":1,"value":1.0},{"sensor_id":33,"value":2.0},{"sensor_id":34,"value":3.0}]`)
	is.Equal(http.StatusNotFound, status)
	is.Equal(`{"detail":"sensors not found: 33, 34","missing_sensor_ids":[33,34]}`, body)
}

func TestStoreReadingsWithEmptyListReturnsEmptyObject(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		StoreReadingsFunc: func(ctx context.Context, items []types.ReadingDetails) (map[int64][]types.SensorReading, error) {
			return map[int64][]types.SensorReading{}, nil
		},
	}
	server := testSetup(t, svc, nil)

	status, body := testRequest(t, server, http.MethodPost, "/sensors/", `[]`)
	is.Equal(http.StatusCreated, status)
	is.Equal(`{}`, body)
}

func TestGetReadingsPassesInclusiveBoundsToService(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{
		GetReadingsFunc: func(ctx context.Context, sensorID int64, span types.TimeSpan) ([]types.SensorReading, error) {
			return nil, nil
		},
	}
	server := testSetup(t, svc, nil)

	status, body := testRequest(t, server, http.MethodGet,
		"/sensors/1?from_timestamp=2026-08-01T00:00:00Z&to_timestamp=2026-08-02", "")
	is.Equal(http.StatusOK, status)
	is.Equal(`[]`, body)

	is.Equal(1, len(svc.GetReadingsCalls()))
	span := svc.GetReadingsCalls()[0].Span
	is.True(span.From != nil)
	is.True(span.To != nil)
	is.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), span.From.UTC())
	is.Equal(time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), span.To.UTC())
}

func TestGetReadingsWithUnparsableTimestampIsRejected(t *testing.T) {
	is := is.New(t)
	svc := &sensormanagement.SensorManagementMock{}
	server := testSetup(t, svc, nil)

	status, _ := testRequest(t, server, http.MethodGet, "/sensors/1?from_timestamp=yesterday", "")
	is.Equal(http.StatusBadRequest, status)
	is.Equal(0, len(svc.GetReadingsCalls()))
}

func TestGetAllReadingsGroupsBySensor(t *testing.T) {
	is := is.New(t)
	at := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	svc := &sensormanagement.SensorManagementMock{
		GetAllReadingsFunc: func(ctx context.Context, span types.TimeSpan) (map[int64][]types.SensorReading, error) {
			return map[int64][]types.SensorReading{
				1: {{ID: 2, SensorID: 1, Value: 21.5, Timestamp: at}},
			}, nil
		},
	}
	server := testSetup(t, svc, nil)

	status, body := testRequest(t, server, http.MethodGet, "/sensors/", "")
	is.Equal(http.StatusOK, status)
	is.Equal(`{"1":[{"id":2,"sensor_id":1,"value":21.5,"timestamp":"2026-08-25T12:00:00Z"}]}`, body)
}
