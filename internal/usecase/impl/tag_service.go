package impl

import (
	"context"
	"log/slog"

	deliverycontext "loyalty/internal/delivery/context"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"
	"loyalty/internal/usecase"
)

type tagService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewTagService creates a new tag resolver instance
func NewTagService(repos repository.RepositoryFactory, logger *slog.Logger) usecase.TagUsecase {
	return &tagService{
		repos:  repos,
		logger: logger,
	}
}

// ResolveTag decodes the payload and looks up the shop owning the tag.
func (s *tagService) ResolveTag(ctx context.Context, payload loyalty.TagPayload) (*usecase.ResolvedTag, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	tagID, err := loyalty.TagID(payload)
	if err != nil {
		logger.Debug("Rejected malformed tag payload", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidTag
	}

	shop, err := s.repos.NewShopRepository().FindShopByTagID(ctx, tagID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrInvalidTag
		}

		return nil, storeError(err, "failed to resolve tag")
	}

	// The tag index and the shop's own tag set may disagree; the shop wins.
	if !shop.Rules.HasTag(tagID) {
		logger.Warn("Tag index points at a shop that does not list the tag",
			slog.String("tag_id", tagID),
			slog.String("shop_id", shop.ID.String()),
		)

		return nil, domainerrors.ErrInvalidTag
	}

	return &usecase.ResolvedTag{
		TagID:    tagID,
		ShopID:   shop.ID,
		ShopName: shop.Name,
		Rules:    shop.Rules,
	}, nil
}
