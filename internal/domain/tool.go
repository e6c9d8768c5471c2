package domain

import "github.com/shopspring/decimal"

// RateProfile holds the daily pricing rules for a tool type. Profiles are
// loaded from the rental_costs table and never modified by the engine.
type RateProfile struct {
	ToolType      string          `json:"tool_type"`
	DailyCharge   decimal.Decimal `json:"daily_charge"`
	WeekdayCharge bool            `json:"weekday_charge"`
	WeekendCharge bool            `json:"weekend_charge"`
	HolidayCharge bool            `json:"holiday_charge"`
}

// Tool is a catalog entry. Each tool resolves to exactly one RateProfile
// through its type; the repository joins the profile in when loading.
type Tool struct {
	ID          int32       `json:"id"`
	Code        string      `json:"code"`
	Type        string      `json:"type"`
	Brand       string      `json:"brand"`
	RateProfile RateProfile `json:"rate_profile"`
}
