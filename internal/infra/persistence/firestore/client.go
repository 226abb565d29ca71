// Package firestore implements the persistence layer on Cloud Firestore, the
// document store the loyalty mobile apps read from directly.
package firestore

import (
	"context"
	"log/slog"

	"loyalty/config"
	"loyalty/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection and subcollection names.
const (
	shopsCollection         = "shops"
	rewardsCollection       = "rewards"
	clientsCollection       = "clients"
	devicesCollection       = "devices"
	registrationsCollection = "registrations"
	giftsCollection         = "gifts"
	redemptionsCollection   = "redemptions"
	visitsCollection        = "visits"
	partnersCollection      = "partners"
)

// maxInFilterValues is the Firestore limit on values in an "in" filter.
const maxInFilterValues = 30

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Firestore client and closes it with the application.
func NewClient(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore projectId is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(context.Background(), cfg.ProjectID, databaseID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Firestore client created",
		slog.String("projectId", cfg.ProjectID),
		slog.String("databaseId", databaseID),
	)

	return client, nil
}
