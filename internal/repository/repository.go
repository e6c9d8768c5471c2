package repository

import (
	"context"
	"toolstore-backend/internal/domain"
)

// ToolRepository is the engine's sole data dependency. FindByCode returns
// zero, one, or more matches; an empty slice means not found.
type ToolRepository interface {
	FindAll(ctx context.Context) ([]domain.Tool, error)
	FindByCode(ctx context.Context, code string) ([]domain.Tool, error)
	FindByType(ctx context.Context, toolType string) ([]domain.Tool, error)
	FindByBrand(ctx context.Context, brand string) ([]domain.Tool, error)
}

type RateProfileRepository interface {
	FindAll(ctx context.Context) ([]domain.RateProfile, error)
	FindByType(ctx context.Context, toolType string) (*domain.RateProfile, error)
}
