// Package persistence selects the store adapter named in the configuration.
package persistence

import (
	"log/slog"

	"loyalty/config"
	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"
	"loyalty/internal/infra/persistence/firestore"
	"loyalty/internal/infra/persistence/memory"
	"loyalty/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the selected store to the rest of the graph.
type Result struct {
	fx.Out

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
}

// NewStore opens the configured store and returns its transaction manager
// together with a factory for non-transactional access.
func NewStore(params Params) (Result, error) {
	provider := params.Config.Store.Provider
	logger := params.Logger.With(slog.String("store", provider))

	switch provider {
	case constants.StoreProviderPostgres, "":
		if params.Config.Postgres == nil {
			return Result{}, errors.New("postgres store selected but postgres config is missing")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using PostgreSQL store")

		return Result{
			TxManager: postgres.NewTransactionManager(db),
			Repos:     postgres.NewRepositoryFactory(db),
		}, nil

	case constants.StoreProviderFirestore:
		client, err := firestore.NewClient(firestore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using Firestore store")

		return Result{
			TxManager: firestore.NewTransactionManager(client),
			Repos:     firestore.NewRepositoryFactory(client),
		}, nil

	case constants.StoreProviderMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()

		return Result{
			TxManager: store,
			Repos:     store,
		}, nil
	}

	return Result{}, errors.Errorf("unsupported store provider: %s", provider)
}
