package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DiscountValue is a discount percent as received on the wire. Clients send
// it either as a JSON string ("10") or a bare number (10); both decode to
// the same string form, and validation parses it later.
type DiscountValue string

func (d *DiscountValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = DiscountValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("discount must be a string or a number")
	}
	*d = DiscountValue(n.String())
	return nil
}

// RentalRequest is a customer's checkout request. The engine reads its
// fields and never mutates it.
type RentalRequest struct {
	ToolCode           string        `json:"tool_code"`
	CheckoutDate       string        `json:"checkout_date"`
	NumberOfRentalDays int           `json:"number_of_rental_days"`
	Discount           DiscountValue `json:"discount"`
}

// RentalAgreement is the finalized outcome of a checkout. It is built in a
// single pass by the billing calculator and immutable afterwards; it is
// never persisted.
type RentalAgreement struct {
	ID                string          `json:"id"`
	ToolCode          string          `json:"tool_code"`
	ToolType          string          `json:"tool_type"`
	ToolBrand         string          `json:"tool_brand"`
	RentalDays        int             `json:"rental_days"`
	CheckoutDate      string          `json:"checkout_date"`
	DueDate           string          `json:"due_date"`
	DailyCharge       decimal.Decimal `json:"daily_charge"`
	ChargeDays        int             `json:"charge_days"`
	PreDiscountCharge decimal.Decimal `json:"pre_discount_charge"`
	DiscountPercent   int             `json:"discount_percent"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	FinalCharge       decimal.Decimal `json:"final_charge"`

	// Per-bucket day counts within the rental period. Every day in the
	// period lands in exactly one bucket, so the three always sum to
	// RentalDays.
	WeekdayDays int `json:"weekday_days"`
	WeekendDays int `json:"weekend_days"`
	HolidayDays int `json:"holiday_days"`
}

// FormatText renders the agreement for console output.
func (a *RentalAgreement) FormatText() string {
	return fmt.Sprintf(
		"Tool code: %s\n"+
			"Tool type: %s\n"+
			"Tool brand: %s\n"+
			"Rental days: %d\n"+
			"Checkout date: %s\n"+
			"Due date: %s\n"+
			"Daily rental charge: $%s\n"+
			"Charge days: %d\n"+
			"Pre-discount charge: $%s\n"+
			"Discount percent: %d%%\n"+
			"Discount amount: $%s\n"+
			"Final charge: $%s\n",
		a.ToolCode,
		a.ToolType,
		a.ToolBrand,
		a.RentalDays,
		a.CheckoutDate,
		a.DueDate,
		a.DailyCharge.StringFixed(2),
		a.ChargeDays,
		a.PreDiscountCharge.StringFixed(2),
		a.DiscountPercent,
		a.DiscountAmount.StringFixed(2),
		a.FinalCharge.StringFixed(2),
	)
}
