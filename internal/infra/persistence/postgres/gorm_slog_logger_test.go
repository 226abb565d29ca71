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
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, debug).(*gormSlogLogger), &buf
}

func sqlAndRows() (string, int64) {
	return "UPDATE registrations SET points = points - 30", 0
}

func TestGormSlogLogger_SkipsErrorsTranslatedByRepositories(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
	l.Trace(ctx, time.Now(), sqlAndRows, errors.Wrap(&pgconn.PgError{Code: "23514"}, "update"))
	l.Trace(ctx, time.Now(), sqlAndRows, &pgconn.PgError{Code: "23505"})

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsUnexpectedFailures(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "Query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_SlowQueryWarns(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

	assert.Contains(t, buf.String(), "Slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Contains(t, verboseBuf.String(), "UPDATE registrations")
}
