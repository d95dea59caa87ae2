package overtime

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
)

// Calculator applies one set of overtime rules. It holds no mutable state
// and is safe for concurrent use.
type Calculator struct {
	rules overtime.Rules
}

func NewCalculator(rules overtime.Rules) (*Calculator, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid overtime rules: %w", err)
	}
	return &Calculator{rules: rules}, nil
}

func (c *Calculator) Rules() overtime.Rules {
	return c.rules
}

var defaultCalculator = &Calculator{rules: overtime.DefaultRules()}

// RoundToQuarter rounds t with the default rules.
func RoundToQuarter(t time.Time) (time.Time, error) {
	return defaultCalculator.RoundToQuarter(t)
}

// CalcDailyOvertime computes one day's overtime with the default rules.
func CalcDailyOvertime(summary overtime.DailyWorkSummary) int {
	return defaultCalculator.CalcDailyOvertime(summary)
}

// CalcMonthlyOvertime aggregates a month with the default rules.
func CalcMonthlyOvertime(input overtime.MonthlyOvertimeInput) (overtime.MonthlyOvertimeResult, error) {
	return defaultCalculator.CalcMonthlyOvertime(input)
}
