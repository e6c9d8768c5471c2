package service

import (
	"context"
	"strconv"
	"strings"

	"toolstore-backend/internal/domain"
	"toolstore-backend/internal/logger"
	"toolstore-backend/internal/repository"
	"toolstore-backend/internal/utils"
)

type checkoutService struct {
	toolRepo repository.ToolRepository
	calc     utils.Calculator
}

func NewCheckoutService(toolRepo repository.ToolRepository) CheckoutService {
	return &checkoutService{
		toolRepo: toolRepo,
		calc:     utils.NewCalculator(utils.NewDateManager()),
	}
}

// Checkout validates the request, resolves the tool, and hands both to the
// billing calculator. The first failure wins and is surfaced with its
// originating kind unchanged; there are no retries and no partial
// agreements.
func (s *checkoutService) Checkout(ctx context.Context, req *domain.RentalRequest) (*domain.RentalAgreement, error) {
	discount, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	tools, err := s.toolRepo.FindByCode(ctx, req.ToolCode)
	if err != nil {
		return nil, err
	}
	if len(tools) == 0 {
		return nil, domain.NewRequestError(domain.ErrKindToolNotFound, "no tool found for tool code = %s", req.ToolCode)
	}
	if len(tools) > 1 {
		// Codes should map to a single tool. Extra matches are acceptable
		// but suspicious; we use the first and log the rest.
		logger.Warn("multiple tools matched a single code", "tool_code", req.ToolCode, "matches", len(tools))
	}

	return s.calc.ComputeAgreement(utils.BillingInput{
		Tool:            tools[0],
		CheckoutDate:    req.CheckoutDate,
		RentalDays:      req.NumberOfRentalDays,
		DiscountPercent: discount,
	})
}

// validateRequest checks structural validity before any I/O. Checks run in
// a fixed order and the first failure stops the rest: day count, then
// discount, then tool code. Returns the parsed discount percent.
func validateRequest(req *domain.RentalRequest) (int, error) {
	if req.NumberOfRentalDays < 1 {
		return 0, domain.NewRequestError(domain.ErrKindInvalidDayCount,
			"rental days must be greater than 0, given number of days = %d", req.NumberOfRentalDays)
	}

	discount, err := strconv.Atoi(strings.TrimSpace(string(req.Discount)))
	if err != nil || discount < 0 || discount > 100 {
		return 0, domain.NewRequestError(domain.ErrKindInvalidDiscount,
			"discount percent must be between 0 and 100, given discount = %q", req.Discount)
	}

	if req.ToolCode == "" {
		return 0, domain.NewRequestError(domain.ErrKindMissingToolCode, "tool code is required")
	}

	return discount, nil
}
