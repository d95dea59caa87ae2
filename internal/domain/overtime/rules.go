package overtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM" (00:00 through 23:59).
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return ClockTime{}, fmt.Errorf("clock time %q must be in HH:MM format", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("clock time %q has invalid hour", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("clock time %q has invalid minute", s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// On returns the instant of c on the given calendar day in loc. dayOffset
// shifts the day, so On(y, m, d, 1, loc) is c on the following day.
func (c ClockTime) On(year int, month time.Month, day int, dayOffset int, loc *time.Location) time.Time {
	return time.Date(year, month, day+dayOffset, c.Hour, c.Minute, 0, 0, loc)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Window is a daily span anchored to the work date. An End at or before Start
// ends on the following day.
type Window struct {
	Start ClockTime
	End   ClockTime
}

// Spans reports whether the window ends on the day after it starts.
func (w Window) Spans() bool {
	return w.End.Hour*60+w.End.Minute <= w.Start.Hour*60+w.Start.Minute
}

// PremiumRates are the surcharge fractions applied on top of base pay.
type PremiumRates struct {
	Regular          decimal.Decimal
	OverThreshold    decimal.Decimal
	LateNight        decimal.Decimal
	Holiday          decimal.Decimal
	ThresholdMinutes int
}

// Rules holds every constant the calculator depends on.
type Rules struct {
	RoundingUnit      time.Duration
	StandardEnd       ClockTime
	Break             Window
	LateNight         Window
	MonthlyCapMinutes int
	ConsistencyCheck  bool
	Premium           PremiumRates
}

// DefaultRules returns the statutory defaults: 15-minute rounding, overtime
// from 18:00, a 12:00-13:00 break, a 22:00-05:00 late-night window and a
// 45-hour monthly cap.
func DefaultRules() Rules {
	return Rules{
		RoundingUnit:      15 * time.Minute,
		StandardEnd:       ClockTime{Hour: 18},
		Break:             Window{Start: ClockTime{Hour: 12}, End: ClockTime{Hour: 13}},
		LateNight:         Window{Start: ClockTime{Hour: 22}, End: ClockTime{Hour: 5}},
		MonthlyCapMinutes: 2700,
		Premium: PremiumRates{
			Regular:          decimal.RequireFromString("0.25"),
			OverThreshold:    decimal.RequireFromString("0.50"),
			LateNight:        decimal.RequireFromString("0.25"),
			Holiday:          decimal.RequireFromString("0.35"),
			ThresholdMinutes: 3600,
		},
	}
}

// Validate checks that the rules can drive the calculator.
func (r Rules) Validate() error {
	if r.RoundingUnit <= 0 || time.Hour%r.RoundingUnit != 0 {
		return fmt.Errorf("rounding unit %s must evenly divide one hour", r.RoundingUnit)
	}
	if r.Break.Spans() {
		return fmt.Errorf("break window %s-%s must end after it starts", r.Break.Start, r.Break.End)
	}
	if r.MonthlyCapMinutes <= 0 {
		return fmt.Errorf("monthly cap must be positive, got %d", r.MonthlyCapMinutes)
	}
	if r.Premium.ThresholdMinutes < 0 {
		return fmt.Errorf("premium threshold must not be negative, got %d", r.Premium.ThresholdMinutes)
	}
	return nil
}
