package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(WARN)
	log.SetOutput(&buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := New(DEBUG)
	log.SetOutput(&buf)

	log.Info("retrieved %d subscriptions for %s", 3, "cus_123")
	assert.Contains(t, buf.String(), "retrieved 3 subscriptions for cus_123")
}

func TestLoggerKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	log := New(DEBUG)
	log.SetOutput(&buf)

	log.Infow("Request handled", "status_code", 200, "path", "/customer")

	output := buf.String()
	assert.Contains(t, output, "Request handled")
	assert.Contains(t, output, "status_code=200")
	assert.Contains(t, output, "path=/customer")
}

func TestLoggerOddKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	log := New(DEBUG)
	log.SetOutput(&buf)

	log.Infow("message", "dangling")
	assert.Contains(t, buf.String(), "dangling=?")
}
