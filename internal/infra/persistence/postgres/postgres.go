package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/lifecycle"
	"loyalty/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval      = 5 * time.Second
	poolWaitWarnThreshold    = 50 * time.Millisecond
	schemaCheckTimeoutFactor = 2
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the loyalty store database. On start it pings the primary,
// applies the configured schema mode and starts watching pool contention.
func New(params Params) (*gorm.DB, error) {
	schemaMode := params.Config.Store.Schema
	if !validSchemaMode(schemaMode) {
		return nil, errors.Errorf("unsupported schema mode: %s", schemaMode)
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step operations run inside TransactionManager.Execute, single
	// statements need no implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	logger := params.Logger.With(slog.String("schemaMode", schemaMode))
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, schemaCheckTimeoutFactor*lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := ensureSchema(ctx, db, schemaMode, logger); err != nil {
				return err
			}

			go monitorPool(monitorCtx, params.Logger, sqlDB, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func validSchemaMode(mode string) bool {
	switch mode {
	case "", constants.SchemaModeOff, constants.SchemaModeVerify, constants.SchemaModeMigrate:
		return true
	}

	return false
}

// monitorPool logs when scans or redemptions had to wait for a connection.
func monitorPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, ok := poolWaitReport(prev, cur); ok {
				logger.LogAttrs(ctx, level, "[Store] Connection pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport describes the waits between two pool samples. It reports
// nothing when no caller waited.
func poolWaitReport(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpen", cur.MaxOpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
	}, true
}
