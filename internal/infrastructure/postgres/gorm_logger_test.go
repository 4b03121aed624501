package postgres

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferLogger(level gormlogger.LogLevel) (*GormLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})
	return NewGormLogger(l, level), &buf
}

func TestGormLogger_TraceError(t *testing.T) {
	gl, buf := newBufferLogger(gormlogger.Warn)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "Cliente"`, 0
	}, errors.New("boom"))

	assert.Contains(t, buf.String(), "error SQL")
	assert.Contains(t, buf.String(), `"component":"gorm"`)
}

func TestGormLogger_IgnoraRecordNotFound(t *testing.T) {
	gl, buf := newBufferLogger(gormlogger.Warn)

	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "Cliente" WHERE id = 1`, 0
	}, gormlogger.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormLogger_ConsultaLenta(t *testing.T) {
	gl, buf := newBufferLogger(gormlogger.Warn)

	gl.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return `SELECT pg_sleep(1)`, 1
	}, nil)

	assert.Contains(t, buf.String(), "SQL lento")
}

func TestGormLogger_SilentNoEscribe(t *testing.T) {
	gl, buf := newBufferLogger(gormlogger.Warn)
	silent := gl.LogMode(gormlogger.Silent)

	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	silent.Error(context.Background(), "fallo %d", 1)

	assert.Empty(t, buf.String())
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel(""))
}
