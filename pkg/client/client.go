package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/sensor-data-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// SensorDataClient is a typed client for the sensor data api, for services
// that ingest readings on behalf of sensors.
type SensorDataClient interface {
	GetSensor(ctx context.Context, sensorID int64) (types.Sensor, error)
	StoreReading(ctx context.Context, sensorID int64, value float64) (types.SensorReading, error)
}

var tracer = otel.Tracer("sensor-data-api/client")

var ErrSensorNotFound = fmt.Errorf("sensor not found")

type sensorDataClient struct {
	url        string
	httpClient http.Client
}

func New(url string) SensorDataClient {
	return &sensorDataClient{
		url: url,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *sensorDataClient) GetSensor(ctx context.Context, sensorID int64) (types.Sensor, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-sensor")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("looking up sensor", "sensor_id", sensorID)

	url := fmt.Sprintf("%s/manage/sensors/%d", c.url, sensorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.Sensor{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve sensor: %w", err)
		return types.Sensor{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		err = ErrSensorNotFound
		return types.Sensor{}, err
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return types.Sensor{}, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return types.Sensor{}, err
	}

	sensor := types.Sensor{}
	err = json.Unmarshal(respBody, &sensor)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Sensor{}, err
	}

	return sensor, nil
}

func (c *sensorDataClient) StoreReading(ctx context.Context, sensorID int64, value float64) (types.SensorReading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "store-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("storing reading", "sensor_id", sensorID)

	body, err := json.Marshal(types.ReadingDetails{SensorID: sensorID, Value: value})
	if err != nil {
		err = fmt.Errorf("failed to marshal reading: %w", err)
		return types.SensorReading{}, err
	}

	url := fmt.Sprintf("%s/sensors/%d", c.url, sensorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.SensorReading{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to store reading: %w", err)
		return types.SensorReading{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		err = ErrSensorNotFound
		return types.SensorReading{}, err
	}
	if resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return types.SensorReading{}, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return types.SensorReading{}, err
	}

	reading := types.SensorReading{}
	err = json.Unmarshal(respBody, &reading)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.SensorReading{}, err
	}

	return reading, nil
}
