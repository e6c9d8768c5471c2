package service

import (
	"context"

	"toolstore-backend/internal/domain"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *domain.RentalRequest) (*domain.RentalAgreement, error)
}

type ToolService interface {
	ListTools(ctx context.Context) ([]domain.Tool, error)
	FindByCode(ctx context.Context, code string) ([]domain.Tool, error)
	FindByType(ctx context.Context, toolType string) ([]domain.Tool, error)
	FindByBrand(ctx context.Context, brand string) ([]domain.Tool, error)
}

type RateProfileService interface {
	ListRateProfiles(ctx context.Context) ([]domain.RateProfile, error)
	GetRateProfile(ctx context.Context, toolType string) (*domain.RateProfile, error)
}
