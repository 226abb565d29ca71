package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
)

// clientService implements the ClientUsecase interface.
type clientService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	logger    *slog.Logger
}

// NewClientService creates a new client profile service instance
func NewClientService(txManager repository.TransactionManager, repos repository.RepositoryFactory, logger *slog.Logger) usecase.ClientUsecase {
	return &clientService{
		txManager: txManager,
		repos:     repos,
		logger:    logger,
	}
}

func (s *clientService) GetProfile(ctx context.Context, clientID uuid.UUID) (*entity.ClientProfile, error) {
	profile, err := s.repos.NewClientRepository().FindClientByID(ctx, clientID)
	if err != nil {
		return nil, storeError(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile writes the profile. A client unknown so far gets a new profile.
func (s *clientService) UpdateProfile(ctx context.Context, clientID uuid.UUID, input *usecase.ProfileInput) (*entity.ClientProfile, error) {
	var profile *entity.ClientProfile

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		clientRepo := repos.NewClientRepository()
		now := time.Now().UTC()

		existing, err := clientRepo.FindClientByID(ctx, clientID)
		switch {
		case errors.Is(err, repository.ErrClientNotFound):
			existing = &entity.ClientProfile{ID: clientID, CreatedAt: now}
		case err != nil:
			return err
		}

		next := *existing
		next.Name = strings.TrimSpace(input.Name)
		next.Gender = strings.TrimSpace(input.Gender)
		next.Phone = strings.TrimSpace(input.Phone)
		next.PostalCode = strings.TrimSpace(input.PostalCode)
		next.Address = strings.TrimSpace(input.Address)
		next.Birthday = input.Birthday
		next.ImageURL = strings.TrimSpace(input.ImageURL)
		next.Complete = entity.IsProfileComplete(&next)
		next.UpdatedAt = now

		if err := clientRepo.UpsertClient(ctx, &next); err != nil {
			return err
		}
		profile = &next

		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to update profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Profile updated",
		slog.String("client_id", clientID.String()),
		slog.Bool("complete", profile.Complete),
	)

	return profile, nil
}

// RegisterDevice upserts the push token of one of the client's devices.
func (s *clientService) RegisterDevice(ctx context.Context, clientID uuid.UUID, info *usecase.DeviceInfo) (*entity.ClientDevice, error) {
	device := &entity.ClientDevice{
		ClientID: clientID,
		DeviceID: info.DeviceID,
		FCMToken: info.FCMToken,
		Platform: info.Platform,
		IsActive: true,
	}

	if err := s.repos.NewClientRepository().UpsertDevice(ctx, device); err != nil {
		return nil, storeError(err, "failed to register device")
	}

	return device, nil
}
