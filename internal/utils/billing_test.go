package utils

import (
	"testing"

	"toolstore-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jackhammer() domain.Tool {
	return domain.Tool{
		ID:    1,
		Code:  "JAKR",
		Type:  "Jackhammer",
		Brand: "Ridgid",
		RateProfile: domain.RateProfile{
			ToolType:      "Jackhammer",
			DailyCharge:   decimal.RequireFromString("2.99"),
			WeekdayCharge: true,
		},
	}
}

func ladder() domain.Tool {
	return domain.Tool{
		ID:    2,
		Code:  "LADW",
		Type:  "Ladder",
		Brand: "Werner",
		RateProfile: domain.RateProfile{
			ToolType:      "Ladder",
			DailyCharge:   decimal.RequireFromString("1.99"),
			WeekdayCharge: true,
			WeekendCharge: true,
		},
	}
}

func chainsaw() domain.Tool {
	return domain.Tool{
		ID:    3,
		Code:  "CHNS",
		Type:  "Chainsaw",
		Brand: "Stihl",
		RateProfile: domain.RateProfile{
			ToolType:      "Chainsaw",
			DailyCharge:   decimal.RequireFromString("1.49"),
			WeekdayCharge: true,
			HolidayCharge: true,
		},
	}
}

func newTestCalculator() Calculator {
	return NewCalculator(NewDateManager())
}

func TestComputeAgreement_SevenDayJackhammer(t *testing.T) {
	// 07/03 through 07/09/24: one holiday (07/04), two weekend days
	// (07/06, 07/07), four weekdays. Jackhammers charge weekdays only.
	calc := newTestCalculator()

	agreement, err := calc.ComputeAgreement(BillingInput{
		Tool:            jackhammer(),
		CheckoutDate:    "07/02/24",
		RentalDays:      7,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "07/02/24", agreement.CheckoutDate)
	assert.Equal(t, "07/09/24", agreement.DueDate)
	assert.Equal(t, 4, agreement.WeekdayDays)
	assert.Equal(t, 2, agreement.WeekendDays)
	assert.Equal(t, 1, agreement.HolidayDays)
	assert.Equal(t, 4, agreement.ChargeDays)
	assert.Equal(t, "11.96", agreement.PreDiscountCharge.StringFixed(2))
	assert.Equal(t, "1.20", agreement.DiscountAmount.StringFixed(2))
	assert.Equal(t, "10.76", agreement.FinalCharge.StringFixed(2))
}

func TestComputeAgreement_OneDayTwoStageRounding(t *testing.T) {
	// 2.99 * 10% is 0.299; the fraction is rounded to 0.10 before the
	// multiply and the product rounded again, giving 0.30.
	calc := newTestCalculator()

	agreement, err := calc.ComputeAgreement(BillingInput{
		Tool:            jackhammer(),
		CheckoutDate:    "07/02/24",
		RentalDays:      1,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, agreement.ChargeDays)
	assert.Equal(t, "2.99", agreement.PreDiscountCharge.StringFixed(2))
	assert.Equal(t, "0.30", agreement.DiscountAmount.StringFixed(2))
	assert.Equal(t, "2.69", agreement.FinalCharge.StringFixed(2))
}

func TestComputeAgreement_CheckoutDayNeverBillable(t *testing.T) {
	// Checking out on the holiday itself: the period starts the next day,
	// so the holiday is not part of it.
	calc := newTestCalculator()

	agreement, err := calc.ComputeAgreement(BillingInput{
		Tool:            jackhammer(),
		CheckoutDate:    "07/04/24",
		RentalDays:      1,
		DiscountPercent: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, "07/05/24", agreement.DueDate)
	assert.Equal(t, 0, agreement.HolidayDays)
	assert.Equal(t, 1, agreement.WeekdayDays)
	assert.Equal(t, 1, agreement.ChargeDays)
	assert.Equal(t, "2.99", agreement.FinalCharge.StringFixed(2))
}

func TestComputeAgreement_LadderOverShiftedHolidayWeekend(t *testing.T) {
	// 2020: July 4th is a Saturday, observed Friday 07/03. Period
	// 07/03-07/05 is one holiday plus two weekend days; ladders charge
	// weekdays and weekends but not holidays.
	calc := newTestCalculator()

	agreement, err := calc.ComputeAgreement(BillingInput{
		Tool:            ladder(),
		CheckoutDate:    "07/02/20",
		RentalDays:      3,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "07/05/20", agreement.DueDate)
	assert.Equal(t, 1, agreement.HolidayDays)
	assert.Equal(t, 2, agreement.WeekendDays)
	assert.Equal(t, 0, agreement.WeekdayDays)
	assert.Equal(t, 2, agreement.ChargeDays)
	assert.Equal(t, "3.98", agreement.PreDiscountCharge.StringFixed(2))
	assert.Equal(t, "0.40", agreement.DiscountAmount.StringFixed(2))
	assert.Equal(t, "3.58", agreement.FinalCharge.StringFixed(2))
}

func TestComputeAgreement_ChainsawChargesHolidays(t *testing.T) {
	// 2015: July 4th is a Saturday, observed Friday 07/03. Period
	// 07/03-07/07: holiday, Sat, Sun, Mon, Tue. Chainsaws charge weekdays
	// and holidays, so 3 charge days.
	calc := newTestCalculator()

	agreement, err := calc.ComputeAgreement(BillingInput{
		Tool:            chainsaw(),
		CheckoutDate:    "07/02/15",
		RentalDays:      5,
		DiscountPercent: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, agreement.ChargeDays)
	assert.Equal(t, "4.47", agreement.PreDiscountCharge.StringFixed(2))
	assert.Equal(t, "1.12", agreement.DiscountAmount.StringFixed(2))
	assert.Equal(t, "3.35", agreement.FinalCharge.StringFixed(2))
}

func TestComputeAgreement_BucketsSumToRentalDays(t *testing.T) {
	calc := newTestCalculator()

	checkouts := []string{"06/28/24", "07/02/24", "08/30/24", "12/28/23", "02/27/20"}
	for _, checkout := range checkouts {
		for _, days := range []int{1, 5, 14, 30, 90} {
			agreement, err := calc.ComputeAgreement(BillingInput{
				Tool:            ladder(),
				CheckoutDate:    checkout,
				RentalDays:      days,
				DiscountPercent: 0,
			})
			require.NoError(t, err)
			assert.Equal(t, days, agreement.WeekdayDays+agreement.WeekendDays+agreement.HolidayDays,
				"buckets must sum to rental days for checkout %s over %d days", checkout, days)
		}
	}
}

func TestComputeAgreement_FinalChargeIdentity(t *testing.T) {
	calc := newTestCalculator()

	for _, pct := range []int{0, 7, 10, 25, 50, 99, 100} {
		agreement, err := calc.ComputeAgreement(BillingInput{
			Tool:            chainsaw(),
			CheckoutDate:    "07/02/24",
			RentalDays:      9,
			DiscountPercent: pct,
		})
		require.NoError(t, err)
		expected := agreement.PreDiscountCharge.Sub(agreement.DiscountAmount).Round(2)
		assert.True(t, agreement.FinalCharge.Equal(expected),
			"final charge %s must equal pre-discount %s minus discount %s",
			agreement.FinalCharge, agreement.PreDiscountCharge, agreement.DiscountAmount)
	}
}

func TestComputeAgreement_Idempotent(t *testing.T) {
	calc := newTestCalculator()
	input := BillingInput{
		Tool:            jackhammer(),
		CheckoutDate:    "07/02/24",
		RentalDays:      7,
		DiscountPercent: 10,
	}

	first, err := calc.ComputeAgreement(input)
	require.NoError(t, err)
	second, err := calc.ComputeAgreement(input)
	require.NoError(t, err)

	// Agreement IDs are freshly generated; every computed field is
	// identical.
	first.ID = ""
	second.ID = ""
	assert.Equal(t, first, second)
}

func TestComputeAgreement_BadCheckoutDate(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.ComputeAgreement(BillingInput{
		Tool:            jackhammer(),
		CheckoutDate:    "2024-07-02",
		RentalDays:      3,
		DiscountPercent: 0,
	})
	require.Error(t, err)
	kind, ok := domain.RequestErrorKindOf(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrKindDateParse, kind)
}
