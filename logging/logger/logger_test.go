package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ncobase/yatube/config"
	"github.com/ncobase/yatube/ctxutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, c *config.Logger) (*Logger, *bytes.Buffer) {
	t.Helper()
	l := NewLogger()
	cleanup, err := l.Init(c)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerWritesKeyValueFields(t *testing.T) {
	l, buf := newTestLogger(t, &config.Logger{Level: int(logrus.InfoLevel), Format: "json"})

	l.Info(context.Background(), "post created", "post_id", 7, "error", errors.New("boom"))

	entry := decodeLine(t, buf)
	assert.Equal(t, "post created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 7, entry["post_id"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLoggerAddsTraceAndVersion(t *testing.T) {
	l, buf := newTestLogger(t, &config.Logger{Level: int(logrus.InfoLevel), Format: "json"})
	l.SetVersion("v1.2.3")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-1")
	l.Warn(ctx, "slow request")

	entry := decodeLine(t, buf)
	assert.Equal(t, "trace-1", entry[ctxutil.TraceIDKey])
	assert.Equal(t, "v1.2.3", entry[VersionKey])
}

func TestLoggerRespectsLevel(t *testing.T) {
	l, buf := newTestLogger(t, &config.Logger{Level: int(logrus.WarnLevel), Format: "json"})

	l.Info(context.Background(), "ignored")
	l.Debug(context.Background(), "ignored")
	assert.Zero(t, buf.Len())

	l.Error(context.Background(), "kept")
	assert.NotZero(t, buf.Len())
}

func TestLoggerMasksSensitiveFields(t *testing.T) {
	l, buf := newTestLogger(t, &config.Logger{
		Level:           int(logrus.InfoLevel),
		Format:          "json",
		SensitiveFields: []string{"password", "token"},
	})

	l.Info(context.Background(), "login attempt",
		"username", "alice",
		"password", "hunter2",
		"form", map[string]any{"csrf_token": "abc", "next": "/"},
	)

	entry := decodeLine(t, buf)
	assert.Equal(t, "alice", entry["username"])
	assert.Equal(t, maskValue, entry["password"])

	form, ok := entry["form"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, maskValue, form["csrf_token"])
	assert.Equal(t, "/", form["next"])
}

func TestFieldsFromArgs(t *testing.T) {
	fields := fieldsFromArgs([]any{"a", 1, 2, "b", "dangling"})
	assert.Equal(t, 1, fields["a"])
	assert.Equal(t, "dangling", fields[badKey])
	_, hasB := fields["b"]
	assert.False(t, hasB)
}

func TestInitRejectsFileOutputWithoutPath(t *testing.T) {
	l := NewLogger()
	_, err := l.Init(&config.Logger{Output: "file"})
	assert.Error(t, err)
}

func TestInitWritesToDatedFile(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger()
	cleanup, err := l.Init(&config.Logger{Level: int(logrus.InfoLevel), Output: "file", OutputFile: dir + "/yatube.log"})
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, l.logFile)
	assert.Contains(t, l.logFile.Name(), dir+"/yatube.")
}
