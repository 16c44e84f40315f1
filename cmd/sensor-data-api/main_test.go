package main

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestEveryMissingRequiredKeyIsEnumerated(t *testing.T) {
	is := is.New(t)

	missing := missingRequiredKeys(defaultFlags())

	is.Equal([]string{
		"POSTGRES_DBNAME",
		"POSTGRES_HOST",
		"POSTGRES_PASSWORD",
		"POSTGRES_USER",
		"TWILIO_FROM",
		"TWILIO_KEY",
		"TWILIO_SID",
		"TWILIO_TO",
	}, missing)
}

func TestNothingIsMissingWhenEverythingIsSet(t *testing.T) {
	is := is.New(t)

	for key, value := range map[string]string{
		"POSTGRES_HOST":     "localhost",
		"POSTGRES_USER":     "postgres",
		"POSTGRES_PASSWORD": "password",
		"POSTGRES_DBNAME":   "postgres",
		"TWILIO_SID":        "AC0000",
		"TWILIO_KEY":        "secret",
		"TWILIO_FROM":       "whatsapp:+46700000000",
		"TWILIO_TO":         "whatsapp:+46700000001",
	} {
		t.Setenv(key, value)
	}

	_, flags := parseExternalConfig(context.Background(), defaultFlags())

	is.Equal(0, len(missingRequiredKeys(flags)))
}

func TestDatabasePortDefaultsTo5432(t *testing.T) {
	is := is.New(t)

	_, flags := parseExternalConfig(context.Background(), defaultFlags())
	is.Equal("5432", flags[dbPort])
}
