package service

import (
	"context"

	"toolstore-backend/internal/domain"
	"toolstore-backend/internal/repository"
)

type toolService struct {
	toolRepo repository.ToolRepository
}

func NewToolService(toolRepo repository.ToolRepository) ToolService {
	return &toolService{toolRepo: toolRepo}
}

func (s *toolService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.FindAll(ctx)
}

func (s *toolService) FindByCode(ctx context.Context, code string) ([]domain.Tool, error) {
	return s.toolRepo.FindByCode(ctx, code)
}

func (s *toolService) FindByType(ctx context.Context, toolType string) ([]domain.Tool, error) {
	return s.toolRepo.FindByType(ctx, toolType)
}

func (s *toolService) FindByBrand(ctx context.Context, brand string) ([]domain.Tool, error) {
	return s.toolRepo.FindByBrand(ctx, brand)
}
