package service

import (
	"context"
	"fmt"

	"hospital-service/internal/models"
)

func (s *Service) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	const op = "service.GetSettings"

	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

func (s *Service) UpdateSettings(ctx context.Context, settings *models.SiteSettings) (*models.SiteSettings, error) {
	const op = "service.UpdateSettings"

	if err := s.store.UpdateSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetSettings(ctx)
}
