package utils

import (
	"time"

	"toolstore-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// BillingInput carries a resolved tool and the already-validated fields of
// a rental request. It is assembled once by the checkout service and read
// by the calculator; computing twice from the same input yields identical
// agreement values.
type BillingInput struct {
	Tool            domain.Tool
	CheckoutDate    string
	RentalDays      int
	DiscountPercent int
}

// Calculator turns a BillingInput into a finalized RentalAgreement. All
// monetary arithmetic uses exact decimals rounded half-up to two places at
// each step; binary floating point never touches a currency value.
type Calculator struct {
	dates DateManager
}

func NewCalculator(dates DateManager) Calculator {
	return Calculator{dates: dates}
}

// ComputeAgreement runs the billing algorithm in its fixed order: build the
// rental period, bucket each day, count chargeable days, then compute the
// pre-discount charge, discount amount, and final charge.
func (c Calculator) ComputeAgreement(in BillingInput) (*domain.RentalAgreement, error) {
	checkout, err := c.dates.ParseDate(in.CheckoutDate)
	if err != nil {
		return nil, err
	}

	period := rentalPeriod(checkout, in.RentalDays)
	dueDate := period[len(period)-1]

	// Each day lands in exactly one bucket. Holiday wins over weekend; the
	// observed-date shift keeps store holidays off weekends today, but the
	// precedence governs tie-breaking if that ever changes.
	var weekdays, weekends, holidays int
	for _, day := range period {
		switch {
		case c.dates.IsHoliday(day):
			holidays++
		case c.dates.IsWeekend(day):
			weekends++
		default:
			weekdays++
		}
	}

	rate := in.Tool.RateProfile
	chargeDays := 0
	if rate.WeekdayCharge {
		chargeDays += weekdays
	}
	if rate.HolidayCharge {
		chargeDays += holidays
	}
	if rate.WeekendCharge {
		chargeDays += weekends
	}

	preDiscount := rate.DailyCharge.Mul(decimal.NewFromInt(int64(chargeDays))).Round(2)

	// The percent-to-fraction division is rounded to two places before the
	// multiply, and the product is rounded again. Two separate rounding
	// passes is the store's billing rule, not an accident.
	fraction := decimal.NewFromInt(int64(in.DiscountPercent)).Div(oneHundred).Round(2)
	discountAmount := preDiscount.Mul(fraction).Round(2)
	finalCharge := preDiscount.Sub(discountAmount).Round(2)

	return &domain.RentalAgreement{
		ID:                uuid.NewString(),
		ToolCode:          in.Tool.Code,
		ToolType:          in.Tool.Type,
		ToolBrand:         in.Tool.Brand,
		RentalDays:        in.RentalDays,
		CheckoutDate:      in.CheckoutDate,
		DueDate:           c.dates.FormatDate(dueDate),
		DailyCharge:       rate.DailyCharge,
		ChargeDays:        chargeDays,
		PreDiscountCharge: preDiscount,
		DiscountPercent:   in.DiscountPercent,
		DiscountAmount:    discountAmount,
		FinalCharge:       finalCharge,
		WeekdayDays:       weekdays,
		WeekendDays:       weekends,
		HolidayDays:       holidays,
	}, nil
}

// rentalPeriod returns the requested number of consecutive dates starting
// the day after checkout. The checkout date itself is never billable.
func rentalPeriod(checkout time.Time, days int) []time.Time {
	period := make([]time.Time, days)
	for i := range period {
		period[i] = checkout.AddDate(0, 0, i+1)
	}
	return period
}
