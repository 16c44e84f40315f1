package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/diwise/sensor-data-api/internal/pkg/application/sensormanagement"
	"github.com/diwise/sensor-data-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sensor-data-api/api")

// StatusProber reports whether the backing database answers a round trip.
type StatusProber interface {
	Ping(ctx context.Context) error
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc sensormanagement.SensorManagement, prober StatusProber) *chi.Mux {

	log := logging.GetFromContext(ctx)

	router.Get("/", healthHandler(log, prober))

	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"ping": "pong!"})
	})

	router.Get("/pong", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"pong": "ping?"})
	})

	router.Route("/manage/sensors", func(r chi.Router) {
		r.Get("/", listSensorsHandler(log, svc))
		r.Post("/", createSensorHandler(log, svc))
		r.Get("/{sensorID}", getSensorHandler(log, svc))
		r.Put("/{sensorID}", updateSensorHandler(log, svc))
	})

	router.Route("/sensors", func(r chi.Router) {
		r.Get("/", getAllReadingsHandler(log, svc))
		r.Post("/", storeReadingsHandler(log, svc))
		r.Get("/{sensorID}", getReadingsHandler(log, svc))
		r.Post("/{sensorID}", storeReadingHandler(log, svc))
	})

	return router
}

func healthHandler(log *slog.Logger, prober StatusProber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		health := map[string]string{"api": "healthy", "db": "healthy"}

		err := prober.Ping(ctx)
		if err != nil {
			log.Warn("database did not answer health probe", "err", err.Error())
			health["api"] = "degraded"
			health["db"] = "error"
		}

		writeJSON(w, http.StatusOK, health)
	}
}

func listSensorsHandler(log *slog.Logger, svc sensormanagement.SensorManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-sensors")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensors, err := svc.GetSensors(ctx)
		if err != nil {
			requestLogger.Error("unable to fetch sensors", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if sensors == nil {
			sensors = []types.Sensor{}
		}

		writeJSON(w, http.StatusOK, sensors)
	}
}

func createSensorHandler(log *slog.Logger, svc sensormanagement.SensorManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var details types.SensorDetails
		err = decodeBody(r.Body, &details)
		if err != nil {
			requestLogger.Error("unable to decode body", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, err.Error())
			return
		}

		err = details.Validate()
		if err != nil {
			requestLogger.Error("invalid sensor details", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, err.Error())
			return
		}

		sensor, err := svc.CreateSensor(ctx, details)
		if err != nil {
			requestLogger.Error("unable to create sensor", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, sensor)
	}
}

func getSensorHandler(log *slog.Logger, svc sensormanagement.SensorManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID, err := sensorIDFromRequest(r)
		if err != nil {
			requestLogger.Error("sensor id is invalid", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, "sensor id must be an integer")
			return
		}

		requestLogger = requestLogger.With(slog.Int64("sensor_id", sensorID))

		sensor, err := svc.GetSensorByID(ctx, sensorID)
		if errors.Is(err, sensormanagement.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			writeProblem(w, http.StatusNotFound, fmt.Sprintf("sensor %d not found", sensorID))
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch sensor", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, sensor)
	}
}

func updateSensorHandler(log *slog.Logger, svc sensormanagement.SensorManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID, err := sensorIDFromRequest(r)
		if err != nil {
			requestLogger.Error("sensor id is invalid", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, "sensor id must be an integer")
			return
		}

		requestLogger = requestLogger.With(slog.Int64("sensor_id", sensorID))

		var details types.SensorDetails
		err = decodeBody(r.Body, &details)
		if err != nil {
			requestLogger.Error("unable to decode body", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, err.Error())
			return
		}

		err = details.Validate()
		if err != nil {
			requestLogger.Error("invalid sensor details", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, err.Error())
			return
		}

		sensor, err := svc.UpdateSensor(ctx, sensorID, details)
		if errors.Is(err, sensormanagement.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			writeProblem(w, http.StatusNotFound, fmt.Sprintf("sensor %d not found", sensorID))
			return
		}
		if err != nil {
			requestLogger.Error("unable to update sensor", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, sensor)
	}
}

func storeReadingHandler(log *slog.Logger, svc sensormanagement.SensorManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "store-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID, err := sensorIDFromRequest(r)
		if err != nil {
			requestLogger.Error("sensor id is invalid", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, "sensor id must be an integer")
			return
		}

		requestLogger = requestLogger.With(slog.Int64("sensor_id", sensorID))

		var details types.ReadingDetails
		err = decodeBody(r.Body, &details)
		if err != nil {
			requestLogger.Error("unable to decode body", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, err.Error())
			return
		}

		if details.SensorID != sensorID {
			requestLogger.Debug("sensor id mismatch", slog.Int64("body_sensor_id", details.SensorID))
			writeProblem(w, http.StatusBadRequest,
				fmt.Sprintf("sensor id in body (%d) does not match path (%d)", details.SensorID, sensorID))
			return
		}

		reading, err := svc.StoreReading(ctx, sensorID, details.Value)
		if errors.Is(err, sensormanagement.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			writeProblem(w, http.StatusNotFound, fmt.Sprintf("sensor %d not found", sensorID))
			return
		}
		if err != nil {
			requestLogger.Error("unable to store reading", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, reading)
	}
}

func storeReadingsHandler(log *slog.Logger, svc sensormanagement.SensorManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "store-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var items []types.ReadingDetails
		err = decodeBody(r.Body, &items)
		if err != nil {
			requestLogger.Error("unable to decode body", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := svc.StoreReadings(ctx, items)

		missing := &sensormanagement.MissingSensorsError{}
		if errors.As(err, &missing) {
			requestLogger.Debug("batch referenced unknown sensors", "missing", missing.SensorIDs)
			writeJSON(w, http.StatusNotFound, map[string]any{
				"detail":             missing.Error(),
				"missing_sensor_ids": missing.SensorIDs,
			})
			return
		}
		if err != nil {
			requestLogger.Error("unable to store readings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, result)
	}
}

func getReadingsHandler(log *slog.Logger, svc sensormanagement.SensorManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID, err := sensorIDFromRequest(r)
		if err != nil {
			requestLogger.Error("sensor id is invalid", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, "sensor id must be an integer")
			return
		}

		requestLogger = requestLogger.With(slog.Int64("sensor_id", sensorID))

		timespan, err := timeSpanFromRequest(r)
		if err != nil {
			requestLogger.Error("invalid time span", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, err.Error())
			return
		}

		readings, err := svc.GetReadings(ctx, sensorID, timespan)
		if errors.Is(err, sensormanagement.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			writeProblem(w, http.StatusNotFound, fmt.Sprintf("sensor %d not found", sensorID))
			return
		}
		if err != nil {
			requestLogger.Error("unable to fetch readings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if readings == nil {
			readings = []types.SensorReading{}
		}

		writeJSON(w, http.StatusOK, readings)
	}
}

func getAllReadingsHandler(log *slog.Logger, svc sensormanagement.SensorManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-all-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		timespan, err := timeSpanFromRequest(r)
		if err != nil {
			requestLogger.Error("invalid time span", "err", err.Error())
			writeProblem(w, http.StatusBadRequest, err.Error())
			return
		}

		readings, err := svc.GetAllReadings(ctx, timespan)
		if err != nil {
			requestLogger.Error("unable to fetch readings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, readings)
	}
}

func sensorIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "sensorID"), 10, 64)
}

// accepted on top of RFC3339 so that clients can pass the timestamps they
// read back from the API as well as plain dates
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp %s", value)
}

func timeSpanFromRequest(r *http.Request) (types.TimeSpan, error) {
	span := types.TimeSpan{}

	if from := r.URL.Query().Get("from_timestamp"); from != "" {
		ts, err := parseTimestamp(from)
		if err != nil {
			return span, err
		}
		span.From = &ts
	}

	if to := r.URL.Query().Get("to_timestamp"); to != "" {
		ts, err := parseTimestamp(to)
		if err != nil {
			return span, err
		}
		span.To = &ts
	}

	return span, nil
}

func decodeBody(body io.Reader, into any) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("unable to read body: %w", err)
	}

	err = json.Unmarshal(b, into)
	if err != nil {
		return fmt.Errorf("unable to unmarshal body: %w", err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func writeProblem(w http.ResponseWriter, statusCode int, detail string) {
	writeJSON(w, statusCode, map[string]string{"detail": detail})
}
