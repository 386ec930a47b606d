package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooltech/credman-api/pkg/config"
)

func TestLoad_ConEnvCompleto(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "credman", cfg.Mongo.Database, "la base tiene valor por defecto")
	assert.Equal(t, "super-secreto", cfg.JWT.Secret)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_SinMongoURI_Falla(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "super-secreto")

	_, err := config.Load()
	assert.Error(t, err, "sin URI de Mongo el proceso no debe arrancar")
}

func TestLoad_SinJWTSecret_Falla(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err, "sin secret de JWT el proceso no debe arrancar")
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "credman-api", cfg.App.Name)
	assert.Equal(t, "credman-api", cfg.JWT.Issuer)
}
