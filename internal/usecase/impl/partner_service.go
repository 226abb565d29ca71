package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPropagationWorkers = 4

	// A link whose gift creation lost a race is evaluated again, which then
	// observes the winner's gift.
	linkAttempts = 2
)

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	notifier  service.NotificationService
	feed      service.ChangeFeed
	metrics   service.Metrics
	workers   int
	logger    *slog.Logger
	now       func() time.Time
}

// PartnerServiceParams holds dependencies for PartnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Notifier  service.NotificationService
	Feed      service.ChangeFeed
	Metrics   service.Metrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPartnerService creates a new partner propagation service instance
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	workers := params.Config.Loyalty.PropagationWorkers
	if workers <= 0 {
		workers = defaultPropagationWorkers
	}

	return &partnerService{
		txManager: params.TxManager,
		repos:     params.Repos,
		notifier:  params.Notifier,
		feed:      params.Feed,
		metrics:   params.Metrics,
		workers:   workers,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// PropagatePartnerGifts evaluates each confirmed link of the shop as an isolated unit of work.
func (s *partnerService) PropagatePartnerGifts(ctx context.Context, clientID, shopID uuid.UUID) (*usecase.PropagationReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	links, err := s.repos.NewPartnerRepository().FindConfirmedLinksByShop(ctx, shopID)
	if err != nil {
		return nil, storeError(err, "failed to load partner links")
	}

	report := &usecase.PropagationReport{
		ClientID: clientID,
		ShopID:   shopID,
		Links:    make([]usecase.LinkOutcome, len(links)),
	}

	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, link := range links {
		g.Go(func() error {
			outcome := s.evaluateLink(ctx, logger, clientID, shopID, link)
			report.Links[i] = outcome
			s.metrics.ObservePartnerGift(string(outcome.Outcome))

			return nil
		})
	}
	_ = g.Wait()

	return report, nil
}

// evaluateLink decides and, when due, grants the gift of one link.
func (s *partnerService) evaluateLink(
	ctx context.Context,
	logger *slog.Logger,
	clientID, shopID uuid.UUID,
	link *entity.PartnerLink,
) usecase.LinkOutcome {
	outcome := usecase.LinkOutcome{LinkID: link.ID}

	grant, err := loyalty.PartnerGrantFor(link, shopID)
	if err != nil {
		logger.Warn("Skipping inconsistent partner link",
			slog.String("link_id", link.ID.String()),
			slog.Any("error", err),
		)
		outcome.Outcome = usecase.PartnerOutcomeInconsistent
		outcome.Err = err

		return outcome
	}
	outcome.Counterpart = grant.Counterpart
	outcome.Key = grant.Key

	var gift *entity.Gift
	for attempt := 1; attempt <= linkAttempts; attempt++ {
		outcome.Outcome, gift, err = s.grantOnce(ctx, clientID, grant)
		if !errors.Is(err, repository.ErrConcurrentModification) {
			break
		}
	}
	if err != nil {
		logger.Error("Failed to evaluate partner link",
			slog.String("link_id", link.ID.String()),
			slog.Any("error", err),
		)
		outcome.Outcome = usecase.PartnerOutcomeError
		outcome.Err = err

		return outcome
	}

	if gift != nil {
		s.announce(ctx, logger, gift)
	}

	return outcome
}

// grantOnce runs the check-and-create transaction of one link.
func (s *partnerService) grantOnce(ctx context.Context, clientID uuid.UUID, grant loyalty.PartnerGrant) (usecase.PartnerOutcome, *entity.Gift, error) {
	var (
		result usecase.PartnerOutcome
		gift   *entity.Gift
	)

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		gift = nil
		giftRepo := repos.NewGiftRepository()

		_, err := giftRepo.FindGift(ctx, clientID, grant.Key)
		if err == nil {
			result = usecase.PartnerOutcomeAlreadyGranted

			return nil
		}
		if !errors.Is(err, repository.ErrGiftNotFound) {
			return err
		}

		if !grant.Offer.Offers() {
			result = usecase.PartnerOutcomeNotOffered

			return nil
		}

		known, err := repos.NewRegistrationRepository().ExistsRegistration(ctx, clientID, grant.Counterpart)
		if err != nil {
			return err
		}
		if known {
			result = usecase.PartnerOutcomeExistingCustomer

			return nil
		}

		candidate := grant.NewGift(clientID, s.now())
		if err := giftRepo.CreateGift(ctx, candidate); err != nil {
			if errors.Is(err, repository.ErrDuplicateGift) {
				result = usecase.PartnerOutcomeAlreadyGranted

				return nil
			}

			return err
		}
		gift = candidate
		result = usecase.PartnerOutcomeGranted

		return nil
	})
	if err != nil {
		return "", nil, err
	}

	return result, gift, nil
}

// announce tells subscribers and the client's devices about a new gift.
// Failures are logged only; the gift is already committed.
func (s *partnerService) announce(ctx context.Context, logger *slog.Logger, gift *entity.Gift) {
	logger = logger.With(
		slog.String("gift_key", gift.Key.String()),
		slog.String("client_id", gift.ClientID.String()),
	)

	if err := s.feed.Publish(ctx, &entity.BalanceChange{
		ClientID: gift.ClientID,
		ShopID:   gift.ShopID,
		Reason:   entity.ChangeReasonGift,
		GiftKey:  gift.Key,
		At:       gift.CreatedAt,
	}); err != nil {
		logger.Warn("Failed to publish gift change", slog.Any("error", err))
	}

	clientRepo := s.repos.NewClientRepository()

	devices, err := clientRepo.FindActiveDevicesByClient(ctx, gift.ClientID)
	if err != nil {
		logger.Warn("Failed to load devices for gift notification", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"type":            constants.NotificationTypePartnerGift,
		"gift_key":        gift.Key.String(),
		"shop_id":         gift.ShopID.String(),
		"partner_shop_id": gift.PartnerShopID.String(),
	}
	title := "You received a partner gift"
	body := gift.Reward.Value
	if gift.Reward.Description != "" {
		body = fmt.Sprintf("%s - %s", gift.Reward.Value, gift.Reward.Description)
	}

	sent, failed, invalidTokens, err := s.notifier.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		logger.Warn("Failed to send gift notification", slog.Any("error", err))

		return
	}
	logger.Debug("Gift notification sent", slog.Int("sent", sent), slog.Int("failed", failed))

	if len(invalidTokens) > 0 {
		if err := clientRepo.DeactivateDevicesByToken(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid devices", slog.Any("error", err))
		}
	}
}
