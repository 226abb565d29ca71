package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const scanOutcomeError = "error"

// scanService implements the ScanUsecase interface.
type scanService struct {
	txManager repository.TransactionManager
	tags      usecase.TagUsecase
	partners  usecase.PartnerUsecase
	publisher service.EventPublisher
	feed      service.ChangeFeed
	metrics   service.Metrics
	logger    *slog.Logger

	operationTimeout   time.Duration
	propagationTimeout time.Duration
	retries            int
	now                func() time.Time

	// propagation tracks detached partner runs so shutdown can drain them.
	propagation sync.WaitGroup
}

// ScanServiceParams holds dependencies for ScanService, injected by Fx.
type ScanServiceParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	TxManager repository.TransactionManager
	Tags      usecase.TagUsecase
	Partners  usecase.PartnerUsecase
	Publisher service.EventPublisher
	Feed      service.ChangeFeed
	Metrics   service.Metrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewScanService creates a new scan service instance
func NewScanService(params ScanServiceParams) usecase.ScanUsecase {
	srv := &scanService{
		txManager:          params.TxManager,
		tags:               params.Tags,
		partners:           params.Partners,
		publisher:          params.Publisher,
		feed:               params.Feed,
		metrics:            params.Metrics,
		logger:             params.Logger,
		operationTimeout:   params.Config.Loyalty.OperationTimeout,
		propagationTimeout: params.Config.Loyalty.PropagationTimeout,
		retries:            max(params.Config.Loyalty.ScanRetries, 1),
		now:                func() time.Time { return time.Now().UTC() },
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return srv.drain(ctx)
			},
		})
	}

	return srv
}

// ScanTag resolves the tag and records the visit at its shop.
func (srv *scanService) ScanTag(ctx context.Context, clientID uuid.UUID, payload loyalty.TagPayload) (*usecase.ScanResult, error) {
	tag, err := srv.tags.ResolveTag(ctx, payload)
	if err != nil {
		return nil, err
	}

	return srv.RecordScan(ctx, clientID, tag.ShopID)
}

// RecordScan evaluates the visit rules and updates the ledger in one transaction,
// then fans the result out to history, subscribers and partner propagation.
func (srv *scanService) RecordScan(ctx context.Context, clientID, shopID uuid.UUID) (*usecase.ScanResult, error) {
	start := time.Now()
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("client_id", clientID.String()),
		slog.String("shop_id", shopID.String()),
	)

	opCtx, cancel := withOperationTimeout(ctx, srv.operationTimeout)
	defer cancel()

	var (
		decision loyalty.VisitDecision
		reg      *entity.Registration
		err      error
	)
	for attempt := 1; attempt <= srv.retries; attempt++ {
		decision, reg, err = srv.recordOnce(opCtx, clientID, shopID)
		if !errors.Is(err, repository.ErrConcurrentModification) {
			break
		}
		logger.Debug("Scan lost a registration race, retrying", slog.Int("attempt", attempt))
	}

	if err != nil {
		if cooldown, ok := errors.AsType[*domainerrors.CooldownActiveError](err); ok {
			srv.metrics.ObserveScan("cooldown", time.Since(start))
			logger.Info("Scan rejected by cooldown", slog.Time("retry_at", cooldown.RetryAt()))

			return nil, cooldown
		}

		srv.metrics.ObserveScan(scanOutcomeError, time.Since(start))
		logger.Error("Failed to record scan", slog.Any("error", err))

		return nil, storeError(err, "failed to record scan")
	}

	srv.metrics.ObserveScan(decision.Tier.String(), time.Since(start))
	logger.Info("Scan recorded",
		slog.String("tier", decision.Tier.String()),
		slog.Int("awarded_points", decision.Points),
		slog.Int("balance", reg.Points),
	)

	srv.afterCommit(ctx, logger, decision, reg)

	return &usecase.ScanResult{
		ShopID:        shopID,
		Tier:          decision.Tier,
		AwardedPoints: decision.Points,
		NewBalance:    reg.Points,
		NbVisit:       reg.NbVisit,
		VisitedAt:     reg.LastVisit,
	}, nil
}

// recordOnce runs one attempt of the scan transaction. All reads happen
// before the single registration write.
func (srv *scanService) recordOnce(ctx context.Context, clientID, shopID uuid.UUID) (loyalty.VisitDecision, *entity.Registration, error) {
	var (
		decision loyalty.VisitDecision
		next     *entity.Registration
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		now := srv.now()
		shopRepo := repos.NewShopRepository()
		regRepo := repos.NewRegistrationRepository()

		shop, err := shopRepo.FindShopByID(ctx, shopID)
		if err != nil {
			return err
		}

		rewards, err := shopRepo.FindRewardsByShop(ctx, shopID)
		if err != nil {
			return err
		}

		profile, err := repos.NewClientRepository().FindClientByID(ctx, clientID)
		if err != nil && !errors.Is(err, repository.ErrClientNotFound) {
			return err
		}

		existing, err := regRepo.LockRegistration(ctx, clientID, shopID)
		if err != nil && !errors.Is(err, repository.ErrRegistrationNotFound) {
			return err
		}

		decision, err = loyalty.EvaluateVisit(shop.Rules, existing, now)
		if err != nil {
			return err
		}

		next = loyalty.ApplyVisit(existing, clientID, shopID, decision.Points,
			entity.NewRewardLadder(rewards), entity.SnapshotOf(profile), now)

		if existing == nil {
			return regRepo.CreateRegistration(ctx, next)
		}

		return regRepo.UpdateRegistration(ctx, next)
	})

	return decision, next, err
}

// afterCommit runs the side effects of a committed scan. None of them can fail the scan.
func (srv *scanService) afterCommit(ctx context.Context, logger *slog.Logger, decision loyalty.VisitDecision, reg *entity.Registration) {
	visit := &entity.VisitRecord{
		ID:            uuid.Must(uuid.NewV7()),
		ClientID:      reg.ClientID,
		ShopID:        reg.ShopID,
		Tier:          decision.Tier,
		AwardedPoints: decision.Points,
		BalanceAfter:  reg.Points,
		VisitedAt:     reg.LastVisit,
	}
	event := service.NewVisitEvent(visit, deliverycontext.GetRequestIDFromContext(ctx))
	if err := srv.publisher.PublishVisitEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish visit event", slog.String("visit_id", event.VisitID), slog.Any("error", err))
	}

	change := &entity.BalanceChange{
		ClientID: reg.ClientID,
		ShopID:   reg.ShopID,
		Points:   reg.Points,
		NbVisit:  reg.NbVisit,
		Reason:   entity.ChangeReasonScan,
		At:       reg.LastVisit,
	}
	if err := srv.feed.Publish(ctx, change); err != nil {
		logger.Warn("Failed to publish balance change", slog.Any("error", err))
	}

	srv.propagate(ctx, logger, reg.ClientID, reg.ShopID)
}

// propagate starts partner propagation detached from the request, with its own deadline.
func (srv *scanService) propagate(ctx context.Context, logger *slog.Logger, clientID, shopID uuid.UUID) {
	detached := context.WithoutCancel(ctx)

	srv.propagation.Add(1)
	go func() {
		defer srv.propagation.Done()

		runCtx, cancel := withOperationTimeout(detached, srv.propagationTimeout)
		defer cancel()

		report, err := srv.partners.PropagatePartnerGifts(runCtx, clientID, shopID)
		if err != nil {
			logger.Error("Partner propagation failed", slog.Any("error", err))

			return
		}

		logger.Info("Partner propagation finished",
			slog.Int("links", len(report.Links)),
			slog.Int("granted", report.Count(usecase.PartnerOutcomeGranted)),
			slog.Int("errors", report.Count(usecase.PartnerOutcomeError)),
		)
	}()
}

// drain waits for in-flight propagation runs or the context to end.
func (srv *scanService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.propagation.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "partner propagation still running")
	}
}
