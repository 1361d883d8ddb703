package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ncobase/yatube/logging/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedLogger() (*logger.Logger, *bytes.Buffer) {
	l := logger.NewLogger()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func statement() (string, int64) { return "SELECT 1", 1 }

func TestGormLoggerQuietByDefault(t *testing.T) {
	l, buf := newBufferedLogger()
	gl := NewGormLogger(l, false)

	gl.Trace(context.Background(), time.Now(), statement, nil)
	gl.Info(context.Background(), "opened %s", "db")
	assert.Empty(t, buf.String())
}

func TestGormLoggerVerboseTracesStatements(t *testing.T) {
	l, buf := newBufferedLogger()
	gl := NewGormLogger(l, true)

	gl.Trace(context.Background(), time.Now(), statement, nil)

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "sql", got[0]["msg"])
	assert.Equal(t, "SELECT 1", got[0]["sql"])
	assert.Equal(t, "debug", got[0]["level"])
}

func TestGormLoggerReportsErrors(t *testing.T) {
	l, buf := newBufferedLogger()
	gl := NewGormLogger(l, false)

	gl.Trace(context.Background(), time.Now(), statement, errors.New("boom"))

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "sql error", got[0]["msg"])
	assert.Equal(t, "error", got[0]["level"])
}

func TestGormLoggerIgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedLogger()
	gl := NewGormLogger(l, false)

	gl.Trace(context.Background(), time.Now(), statement, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())
}

func TestGormLoggerSlowQuery(t *testing.T) {
	l, buf := newBufferedLogger()
	gl := NewGormLogger(l, false)

	gl.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "slow sql", got[0]["msg"])
}

func TestGormLoggerSilentMode(t *testing.T) {
	l, buf := newBufferedLogger()
	gl := NewGormLogger(l, true).LogMode(gormlogger.Silent)

	gl.Trace(context.Background(), time.Now(), statement, errors.New("boom"))
	gl.Error(context.Background(), "failed %d", 1)
	assert.Empty(t, buf.String())
}
