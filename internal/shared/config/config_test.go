package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CAMPORA_TEST_STRING", "value")
	assert.Equal(t, "value", getEnv("CAMPORA_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnv("CAMPORA_TEST_MISSING", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("CAMPORA_TEST_INT", "42")
	assert.Equal(t, 42, getIntEnv("CAMPORA_TEST_INT", 7))

	t.Setenv("CAMPORA_TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, getIntEnv("CAMPORA_TEST_INT_BAD", 7))

	assert.Equal(t, 7, getIntEnv("CAMPORA_TEST_INT_MISSING", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("CAMPORA_TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, getDurationEnv("CAMPORA_TEST_DURATION", time.Minute))

	t.Setenv("CAMPORA_TEST_DURATION_BAD", "ninety")
	assert.Equal(t, time.Minute, getDurationEnv("CAMPORA_TEST_DURATION_BAD", time.Minute))
}

func TestGetDurationEnvSeconds(t *testing.T) {
	t.Setenv("CAMPORA_TEST_SECONDS", "30")
	assert.Equal(t, 30*time.Second, getDurationEnvSeconds("CAMPORA_TEST_SECONDS", time.Minute))

	assert.Equal(t, time.Minute, getDurationEnvSeconds("CAMPORA_TEST_SECONDS_MISSING", time.Minute))
}

func TestGetBoolEnv(t *testing.T) {
	t.Setenv("CAMPORA_TEST_BOOL", "true")
	assert.True(t, getBoolEnv("CAMPORA_TEST_BOOL", false))

	t.Setenv("CAMPORA_TEST_BOOL_BAD", "yep")
	assert.True(t, getBoolEnv("CAMPORA_TEST_BOOL_BAD", true))
}

func TestGetStringSliceEnv(t *testing.T) {
	t.Setenv("CAMPORA_TEST_SLICE", "a, b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, getStringSliceEnv("CAMPORA_TEST_SLICE", []string{"z"}))

	t.Setenv("CAMPORA_TEST_SLICE_EMPTY", " , ,")
	assert.Equal(t, []string{"z"}, getStringSliceEnv("CAMPORA_TEST_SLICE_EMPTY", []string{"z"}))

	assert.Equal(t, []string{"z"}, getStringSliceEnv("CAMPORA_TEST_SLICE_MISSING", []string{"z"}))
}

func TestGetAPIBasePath(t *testing.T) {
	cfg := &Config{APIPrefix: "/api", APIVersion: "v1"}
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
}
