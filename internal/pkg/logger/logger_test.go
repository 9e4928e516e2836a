package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	l := NewAppLogger(Config{Level: "debug", Service: "wallet-test"})
	l.SetOutput(buf)

	previous := globalLogger
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(previous) })
	return buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestGlobalInfo_WritesStructuredFields(t *testing.T) {
	buf := captureGlobal(t)

	Info("withdrawal recorded",
		String("email", "ada@example.com"),
		Int64("amount", 2000),
		Bool("pending", true))

	line := decode(t, buf)
	assert.Equal(t, "withdrawal recorded", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "ada@example.com", line["email"])
	assert.Equal(t, float64(2000), line["amount"])
	assert.Equal(t, true, line["pending"])
	assert.Equal(t, "wallet-test", line["service"])
	assert.NotEmpty(t, line["timestamp"])
}

func TestGlobalError_CarriesErrorField(t *testing.T) {
	buf := captureGlobal(t)

	Error("sync failed", Err(errors.New("boom")), Duration("took", time.Second))

	line := decode(t, buf)
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "1s", line["took"])
}

func TestNewAppLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l := NewAppLogger(Config{Level: "loud"})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestLogHTTPRequest_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{200, "info"},
		{404, "warning"},
		{503, "error"},
	}

	for _, tt := range tests {
		buf := &bytes.Buffer{}
		l := NewAppLogger(Config{Level: "info"})
		l.SetOutput(buf)

		l.LogHTTPRequest("GET", "/v1/wallet", "127.0.0.1", "anonymous", "req-1", tt.status, 5*time.Millisecond, nil)

		line := decode(t, buf)
		assert.Equal(t, tt.level, line["level"])
		assert.Equal(t, float64(tt.status), line["status"])
		assert.Equal(t, "req-1", line["request_id"])
	}
}

func TestFactory_FileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wallet.log")

	l, err := InitAppLoggerFromConfig(&models.Config{
		App:    models.AppConfig{Name: "wallet"},
		Logger: models.LoggerConfig{Level: "info", FilePath: path, Type: "file"},
	})
	require.NoError(t, err)
	defer l.Close()

	l.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Equal(t, path, l.GetFilePath())
}

func TestFactory_ConsoleLoggerIgnoresPath(t *testing.T) {
	l, err := NewLoggerFactory(Config{FilePath: filepath.Join(t.TempDir(), "x.log")}).CreateLogger(ConsoleLogger)
	require.NoError(t, err)
	assert.Empty(t, l.GetFilePath())
}
