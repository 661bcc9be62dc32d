package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), debug), &buf
}

func sqlFn() (string, int64) {
	return "SELECT * FROM posts", 2
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("failed query is logged with the error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query only logged in debug", func(t *testing.T) {
		quiet, quietBuf := newBufferedGormLogger(false)
		quiet.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newBufferedGormLogger(true)
		verbose.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Contains(t, verboseBuf.String(), "SELECT * FROM posts")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))
}
