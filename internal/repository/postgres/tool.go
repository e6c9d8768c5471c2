package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toolstore-backend/internal/domain"
	"toolstore-backend/internal/repository"
)

const toolColumns = `t.id, t.code, t.type, t.brand, rc.tool_type, rc.daily_charge, rc.weekday_charge, rc.weekend_charge, rc.holiday_charge`

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) FindAll(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t JOIN rental_costs rc ON rc.tool_type = t.type ORDER BY t.code`
	return r.queryTools(ctx, query)
}

func (r *toolRepository) FindByCode(ctx context.Context, code string) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t JOIN rental_costs rc ON rc.tool_type = t.type WHERE t.code = $1`
	return r.queryTools(ctx, query, code)
}

func (r *toolRepository) FindByType(ctx context.Context, toolType string) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t JOIN rental_costs rc ON rc.tool_type = t.type WHERE t.type = $1 ORDER BY t.code`
	return r.queryTools(ctx, query, toolType)
}

func (r *toolRepository) FindByBrand(ctx context.Context, brand string) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools t JOIN rental_costs rc ON rc.tool_type = t.type WHERE t.brand = $1 ORDER BY t.code`
	return r.queryTools(ctx, query, brand)
}

func (r *toolRepository) queryTools(ctx context.Context, query string, args ...any) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tools: %w", err)
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		if err := rows.Scan(&t.ID, &t.Code, &t.Type, &t.Brand, &t.RateProfile.ToolType, &t.RateProfile.DailyCharge, &t.RateProfile.WeekdayCharge, &t.RateProfile.WeekendCharge, &t.RateProfile.HolidayCharge); err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}
