package overtime

import (
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// CalcPremium prices a monthly result at hourlyWage. Overtime up to the
// premium threshold is paid at 1+Regular and the remainder at
// 1+OverThreshold; holiday minutes receive the difference between the
// holiday and regular rates on top, and late-night minutes receive the
// late-night rate on top. Each amount is rounded to 2 places.
func (c *Calculator) CalcPremium(result overtime.MonthlyOvertimeResult, hourlyWage decimal.Decimal) overtime.PremiumBreakdown {
	rates := c.rules.Premium
	one := decimal.NewFromInt(1)

	within := min(result.TotalOvertimeMinutes, rates.ThresholdMinutes)
	over := result.TotalOvertimeMinutes - within

	holidayDelta := decimal.Max(rates.Holiday.Sub(rates.Regular), decimal.Zero)

	breakdown := overtime.PremiumBreakdown{
		HourlyWage:           hourlyWage,
		WithinThresholdPay:   pay(hourlyWage, within, one.Add(rates.Regular)),
		OverThresholdPay:     pay(hourlyWage, over, one.Add(rates.OverThreshold)),
		HolidayPremium:       pay(hourlyWage, result.HolidayWorkMinutes, holidayDelta),
		LateNightPremium:     pay(hourlyWage, result.LateNightMinutes, rates.LateNight),
		OverThresholdMinutes: over,
	}
	breakdown.Total = breakdown.WithinThresholdPay.
		Add(breakdown.OverThresholdPay).
		Add(breakdown.HolidayPremium).
		Add(breakdown.LateNightPremium)

	return breakdown
}

// pay is wage * minutes * factor / 60, rounded half away from zero.
func pay(hourlyWage decimal.Decimal, minutes int, factor decimal.Decimal) decimal.Decimal {
	return hourlyWage.
		Mul(decimal.NewFromInt(int64(minutes))).
		Mul(factor).
		Div(sixty).
		Round(2)
}
