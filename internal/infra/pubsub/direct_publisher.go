package pubsub

import (
	"context"
	"log/slog"

	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"

	"github.com/pkg/errors"
)

// directPublisher appends visit history in process when no queue is configured.
type directPublisher struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewDirectPublisher creates a publisher writing visit records straight to the store.
func NewDirectPublisher(repos repository.RepositoryFactory, logger *slog.Logger) service.EventPublisher {
	return &directPublisher{repos: repos, logger: logger}
}

// PublishVisitEvent writes the visit record of the event
func (p *directPublisher) PublishVisitEvent(ctx context.Context, event *service.VisitEvent) error {
	record, err := event.ToRecord()
	if err != nil {
		return err
	}

	if err := p.repos.NewVisitRepository().CreateVisit(ctx, record); err != nil {
		return errors.Wrap(err, "failed to append visit record")
	}

	p.logger.Debug("[DirectPubSub] Visit record appended",
		slog.String("visit_id", event.VisitID),
	)

	return nil
}

func (p *directPublisher) Close() error {
	return nil
}
