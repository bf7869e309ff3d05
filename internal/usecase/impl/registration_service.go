package impl

import (
	"context"
	"log/slog"
	"strings"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
	"beacon/internal/usecase"
)

type registrationService struct {
	registry  repository.DeviceRegistry
	hook      service.PostRegistrationHook
	logger    *slog.Logger
	prefixLen int
}

// NewRegistrationService creates the registration facade. hook may be nil
// when no post-registration side effect is configured.
func NewRegistrationService(
	cfg *config.Config,
	registry repository.DeviceRegistry,
	hook service.PostRegistrationHook,
	logger *slog.Logger,
) usecase.RegistrationUsecase {
	return &registrationService{
		registry:  registry,
		hook:      hook,
		logger:    logger,
		prefixLen: cfg.Registry.TokenPrefixLength,
	}
}

// Register validates the input and upserts the registration record. The
// post-registration hook runs synchronously afterwards; a hook failure is
// logged with the outcome but never fails the registration itself.
func (s *registrationService) Register(ctx context.Context, input usecase.RegistrationInput) (entity.DeviceRecord, error) {
	token := entity.Token(strings.TrimSpace(input.Token))
	if token == "" {
		return entity.DeviceRecord{}, domainerrors.ErrMissingToken
	}

	identity := strings.TrimSpace(input.InstallationID)
	if identity == "" {
		return entity.DeviceRecord{}, domainerrors.ErrMissingIdentity
	}

	record, err := s.registry.Upsert(ctx, identity, token, repository.Metadata{
		Platform:   input.Platform,
		AppVersion: input.AppVersion,
	})
	if err != nil {
		return entity.DeviceRecord{}, errors.Wrap(err, "upsert registration")
	}

	s.logger.Info("Device registered",
		slog.String("device_id", record.DeviceID.String()),
		slog.String("platform", record.Platform),
		slog.String("token", record.Token.Redacted()))

	if s.hook != nil {
		if err := s.hook.AfterRegister(ctx, record); err != nil {
			s.logger.Error("Post-registration hook failed",
				slog.String("device_id", record.DeviceID.String()),
				slog.String("token", record.Token.Redacted()),
				slog.Any("error", err))
		}
	}

	return record, nil
}

// ListDevices returns the listable view of every registration. Tokens are
// reduced to the configured prefix before they leave the core.
func (s *registrationService) ListDevices(ctx context.Context) ([]usecase.DeviceSummary, error) {
	records := s.registry.List(ctx)

	summaries := make([]usecase.DeviceSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, usecase.DeviceSummary{
			DeviceID:     record.DeviceID,
			Platform:     record.Platform,
			AppVersion:   record.AppVersion,
			RegisteredAt: record.RegisteredAt,
			LastSeenAt:   record.LastSeenAt,
			Status:       record.Status,
			TokenPrefix:  record.Token.Prefix(s.prefixLen),
		})
	}

	return summaries, nil
}
