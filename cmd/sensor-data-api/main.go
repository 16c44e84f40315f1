package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/sensor-data-api/internal/pkg/application/sensormanagement"
	"github.com/diwise/sensor-data-api/internal/pkg/infrastructure/notifications"
	"github.com/diwise/sensor-data-api/internal/pkg/infrastructure/router"
	"github.com/diwise/sensor-data-api/internal/pkg/infrastructure/storage"
	"github.com/diwise/sensor-data-api/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "sensor-data-api"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	twilioSID
	twilioKey
	twilioFrom
	twilioTo
)

// environment variables that have no usable default and must be set
var requiredEnv = map[flagType]string{
	dbHost:     "POSTGRES_HOST",
	dbUser:     "POSTGRES_USER",
	dbPassword: "POSTGRES_PASSWORD",
	dbName:     "POSTGRES_DBNAME",
	twilioSID:  "TWILIO_SID",
	twilioKey:  "TWILIO_KEY",
	twilioFrom: "TWILIO_FROM",
	twilioTo:   "TWILIO_TO",
}

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "",
		dbSSLMode:  "disable",

		twilioSID:  "",
		twilioKey:  "",
		twilioFrom: "",
		twilioTo:   "",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	missing := missingRequiredKeys(flags)
	if len(missing) > 0 {
		logger.Error("required configuration is missing", "keys", strings.Join(missing, ", "))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()
	defer messenger.Close()

	notifier := notifications.New(notifications.NewConfig(
		flags[twilioSID], flags[twilioKey], flags[twilioFrom], flags[twilioTo],
	))

	svc := sensormanagement.New(s, messenger, notifier)

	mux := api.RegisterHandlers(ctx, router.New(serviceName), svc, s)

	apiPort := fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort])
	webServer := &http.Server{Addr: apiPort, Handler: mux}

	logger.Info("starting to listen for incoming connections", "address", apiPort)

	go func() {
		err := webServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen for incoming connections", "err", err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("failed to shut down web server", "err", err.Error())
	}
}

func missingRequiredKeys(flags flagMap) []string {
	missing := []string{}

	for f, key := range requiredEnv {
		if flags[f] == "" {
			missing = append(missing, key)
		}
	}

	slices.Sort(missing)

	return missing
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[twilioSID] = envOrDef(ctx, "TWILIO_SID", flags[twilioSID])
	flags[twilioKey] = envOrDef(ctx, "TWILIO_KEY", flags[twilioKey])
	flags[twilioFrom] = envOrDef(ctx, "TWILIO_FROM", flags[twilioFrom])
	flags[twilioTo] = envOrDef(ctx, "TWILIO_TO", flags[twilioTo])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	registerFlags.Do(func() {
		flag.Func("address", "address to listen for connections on", apply(listenAddress))
		flag.Func("port", "port to listen for connections on", apply(servicePort))
		flag.Parse()
	})

	return ctx, flags
}

var registerFlags sync.Once

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
