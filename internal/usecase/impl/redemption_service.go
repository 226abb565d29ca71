package impl

import (
	"context"
	"log/slog"
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

// redemptionService implements the RedemptionUsecase interface.
type redemptionService struct {
	txManager        repository.TransactionManager
	feed             service.ChangeFeed
	metrics          service.Metrics
	logger           *slog.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Feed      service.ChangeFeed
	Metrics   service.Metrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRedemptionService creates a new redemption service instance
func NewRedemptionService(params RedemptionServiceParams) usecase.RedemptionUsecase {
	return &redemptionService{
		txManager:        params.TxManager,
		feed:             params.Feed,
		metrics:          params.Metrics,
		logger:           params.Logger,
		operationTimeout: params.Config.Loyalty.OperationTimeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// ConfirmRedemption validates the target against fresh state and commits a successful outcome.
func (s *redemptionService) ConfirmRedemption(
	ctx context.Context,
	clientID, shopID uuid.UUID,
	target usecase.RedemptionTarget,
) (*usecase.RedemptionResult, error) {
	kind, err := redemptionKind(target)
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("client_id", clientID.String()),
		slog.String("shop_id", shopID.String()),
		slog.String("kind", string(kind)),
	)

	opCtx, cancel := withOperationTimeout(ctx, s.operationTimeout)
	defer cancel()

	var (
		redemption *loyalty.Redemption
		record     *entity.RedemptionRecord
		reg        *entity.Registration
	)
	err = s.txManager.Execute(opCtx, func(repos repository.RepositoryFactory) error {
		redemption = loyalty.NewRedemption()
		if err := redemption.Confirm(); err != nil {
			return err
		}

		var txErr error
		record, reg, txErr = s.redeem(opCtx, repos, redemption, clientID, shopID, kind, target)

		return txErr
	})

	// A validated outcome counts only once it is committed or refused.
	outcome := "error"
	if redemption != nil && redemption.State().IsTerminal() && (err == nil || redemption.Reason() != nil) {
		outcome = string(redemption.State())
	}
	s.metrics.ObserveRedemption(string(kind), outcome)

	if err != nil {
		if redemption != nil && redemption.Reason() != nil {
			logger.Info("Redemption refused", slog.String("state", outcome), slog.Any("reason", redemption.Reason()))
			_ = redemption.Close()

			return nil, redemption.Reason()
		}

		logger.Error("Failed to redeem", slog.Any("error", err))

		return nil, storeError(err, "failed to redeem")
	}
	_ = redemption.Close()

	logger.Info("Redemption committed",
		slog.String("redemption_id", record.ID.String()),
		slog.Int("cost", record.Cost),
		slog.Int("balance_after", record.PointsAfter),
	)

	change := &entity.BalanceChange{
		ClientID: clientID,
		ShopID:   shopID,
		Points:   record.PointsAfter,
		Reason:   entity.ChangeReasonRedemption,
		GiftKey:  record.GiftKey,
		At:       record.CreatedAt,
	}
	if reg != nil {
		change.NbVisit = reg.NbVisit
	}
	if err := s.feed.Publish(ctx, change); err != nil {
		logger.Warn("Failed to publish balance change", slog.Any("error", err))
	}

	return &usecase.RedemptionResult{
		State:        loyalty.RedemptionSuccess,
		Kind:         kind,
		BalanceAfter: record.PointsAfter,
		Record:       record,
	}, nil
}

// redeem reads the latest state, lets the state machine decide and applies a
// successful outcome. Reads precede writes.
func (s *redemptionService) redeem(
	ctx context.Context,
	repos repository.RepositoryFactory,
	redemption *loyalty.Redemption,
	clientID, shopID uuid.UUID,
	kind entity.RedemptionKind,
	target usecase.RedemptionTarget,
) (*entity.RedemptionRecord, *entity.Registration, error) {
	now := s.now()
	regRepo := repos.NewRegistrationRepository()
	giftRepo := repos.NewGiftRepository()

	profile, err := repos.NewClientRepository().FindClientByID(ctx, clientID)
	if err != nil && !errors.Is(err, repository.ErrClientNotFound) {
		return nil, nil, err
	}

	reg, err := regRepo.LockRegistration(ctx, clientID, shopID)
	if err != nil && !errors.Is(err, repository.ErrRegistrationNotFound) {
		return nil, nil, err
	}

	input := loyalty.RedemptionInput{Profile: profile, Registration: reg}
	if kind == entity.RedemptionKindPoints {
		input.Reward, err = repos.NewShopRepository().FindRewardByID(ctx, shopID, *target.RewardID)
		if err != nil {
			return nil, nil, err
		}
	} else {
		input.Gift, err = giftRepo.LockGift(ctx, clientID, target.GiftKey)
		if err != nil {
			return nil, nil, err
		}
		// Gifts are redeemable only at the issuing shop.
		if input.Gift.ShopID != shopID {
			return nil, nil, domainerrors.ErrGiftNotFound
		}
	}

	if err := redemption.Validate(input); err != nil {
		return nil, nil, err
	}

	balance := 0
	if reg != nil {
		balance = reg.Points
	}
	record := &entity.RedemptionRecord{
		ID:           uuid.Must(uuid.NewV7()),
		ClientID:     clientID,
		ShopID:       shopID,
		PointsBefore: balance,
		PointsAfter:  balance,
		CreatedAt:    now,
	}

	if input.Reward != nil {
		next := loyalty.DebitPoints(reg, input.Reward.Points, now)
		if err := regRepo.UpdateRegistration(ctx, next); err != nil {
			return nil, nil, err
		}
		reg = next

		rewardID := input.Reward.ID
		record.Kind = entity.RedemptionKindPoints
		record.RewardID = &rewardID
		record.Value = input.Reward.Value
		record.Description = input.Reward.Description
		record.Cost = input.Reward.Points
		record.PointsAfter = next.Points
	} else {
		if err := giftRepo.MarkGiftUsed(ctx, clientID, input.Gift.Key, now); err != nil {
			return nil, nil, err
		}

		record.Kind = entity.RedemptionKindGift
		record.GiftKey = input.Gift.Key
		record.Value = input.Gift.Reward.Value
		record.Description = input.Gift.Reward.Description
	}

	if err := repos.NewRedemptionRepository().CreateRedemption(ctx, record); err != nil {
		return nil, nil, err
	}

	return record, reg, nil
}

func redemptionKind(target usecase.RedemptionTarget) (entity.RedemptionKind, error) {
	hasReward := target.RewardID != nil && *target.RewardID != uuid.Nil
	hasGift := target.GiftKey != ""

	switch {
	case hasReward && !hasGift:
		return entity.RedemptionKindPoints, nil
	case hasGift && !hasReward:
		return entity.RedemptionKindGift, nil
	default:
		return "", domainerrors.ErrValidationFailed.WithDetails("exactly one of reward_id or gift_key is required")
	}
}
