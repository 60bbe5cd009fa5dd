package mysql

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookrec/internal/infrastructure/config"
)

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseGormLevel("silent"))
	assert.Equal(t, logger.Error, parseGormLevel("ERROR"))
	assert.Equal(t, logger.Info, parseGormLevel("info"))
	assert.Equal(t, logger.Warn, parseGormLevel("warn"))
	assert.Equal(t, logger.Warn, parseGormLevel(""))
}

func TestGormLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	l := NewGormLogger(&log, config.DatabaseConfig{LogLevel: "warn", SlowThreshold: time.Millisecond})
	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT * FROM `book`", 3
	}, nil)

	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), "SLOW SQL")
	assert.Contains(t, buf.String(), "SELECT * FROM `book`")
}

func TestGormLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	l := NewGormLogger(&log, config.DatabaseConfig{LogLevel: "silent", SlowThreshold: time.Millisecond})
	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Empty(t, buf.String())
}
