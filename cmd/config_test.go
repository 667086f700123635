package cmd

import (
	"testing"
	"time"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig(env(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, StoragePostgres, c.Storage)
	assert.Equal(t, EventsLog, c.Events)
	assert.Equal(t, HasherBcrypt, c.Hasher)
	assert.Equal(t, 10, c.MatchingDriverLimit)
	assert.Equal(t, 24*time.Hour, c.JWTTokenTTL)
	assert.Equal(t, 30*time.Second, c.JobTimeout)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=freight sslmode=disable", c.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	c, err := LoadConfig(env(map[string]string{
		"STORAGE":               "memory",
		"EVENTS":                "kafka",
		"HASHER":                "argon2",
		"MATCHING_DRIVER_LIMIT": "3",
		"SOLUTION_TIME_SEED":    "42",
		"RELEASE_SCHEDULE":      "@every 30s",
	}))

	require.NoError(t, err)
	assert.Equal(t, StorageMemory, c.Storage)
	assert.Equal(t, EventsKafka, c.Events)
	assert.Equal(t, HasherArgon2, c.Hasher)
	assert.Equal(t, 3, c.MatchingDriverLimit)
	assert.Equal(t, uint64(42), c.SolutionTimeSeed)
	assert.Equal(t, "@every 30s", c.ReleaseSchedule)
}

func TestLoadConfig_ReportsEveryProblem(t *testing.T) {
	_, err := LoadConfig(env(map[string]string{
		"STORAGE":       "mongo",
		"JWT_TOKEN_TTL": "forever",
		"RELEASE_BATCH": "many",
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConfiguration)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorContains(t, err, "JWT_TOKEN_TTL")
	assert.ErrorContains(t, err, "RELEASE_BATCH")
}

func TestLoadConfig_RejectsNonPositiveLimit(t *testing.T) {
	_, err := LoadConfig(env(map[string]string{"MATCHING_DRIVER_LIMIT": "0"}))

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
