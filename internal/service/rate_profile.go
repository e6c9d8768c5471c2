package service

import (
	"context"

	"toolstore-backend/internal/domain"
	"toolstore-backend/internal/repository"
)

type rateProfileService struct {
	rateRepo repository.RateProfileRepository
}

func NewRateProfileService(rateRepo repository.RateProfileRepository) RateProfileService {
	return &rateProfileService{rateRepo: rateRepo}
}

func (s *rateProfileService) ListRateProfiles(ctx context.Context) ([]domain.RateProfile, error) {
	return s.rateRepo.FindAll(ctx)
}

func (s *rateProfileService) GetRateProfile(ctx context.Context, toolType string) (*domain.RateProfile, error) {
	return s.rateRepo.FindByType(ctx, toolType)
}
