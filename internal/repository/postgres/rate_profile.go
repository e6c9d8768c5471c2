package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toolstore-backend/internal/domain"
	"toolstore-backend/internal/repository"
)

type rateProfileRepository struct {
	db *sql.DB
}

func NewRateProfileRepository(db *sql.DB) repository.RateProfileRepository {
	return &rateProfileRepository{db: db}
}

func (r *rateProfileRepository) FindAll(ctx context.Context) ([]domain.RateProfile, error) {
	query := `SELECT tool_type, daily_charge, weekday_charge, weekend_charge, holiday_charge FROM rental_costs ORDER BY tool_type`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query rental costs: %w", err)
	}
	defer rows.Close()

	var profiles []domain.RateProfile
	for rows.Next() {
		var p domain.RateProfile
		if err := rows.Scan(&p.ToolType, &p.DailyCharge, &p.WeekdayCharge, &p.WeekendCharge, &p.HolidayCharge); err != nil {
			return nil, fmt.Errorf("scan rental cost: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *rateProfileRepository) FindByType(ctx context.Context, toolType string) (*domain.RateProfile, error) {
	p := &domain.RateProfile{}
	query := `SELECT tool_type, daily_charge, weekday_charge, weekend_charge, holiday_charge FROM rental_costs WHERE tool_type = $1`
	err := r.db.QueryRowContext(ctx, query, toolType).Scan(&p.ToolType, &p.DailyCharge, &p.WeekdayCharge, &p.WeekendCharge, &p.HolidayCharge)
	if err != nil {
		return nil, err
	}
	return p, nil
}
