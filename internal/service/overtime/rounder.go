package overtime

import (
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
)

// RoundToQuarter returns t unchanged when it sits exactly on a rounding
// boundary of its wall clock, otherwise the next boundary after it. Seconds
// past a boundary still round up, and rounding crosses midnight naturally.
func (c *Calculator) RoundToQuarter(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, overtime.NewInvalidInput("instant", nil, "instant is required")
	}

	_, minute, second := t.Clock()
	sinceHour := time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(t.Nanosecond())

	remainder := sinceHour % c.rules.RoundingUnit
	if remainder == 0 {
		return t, nil
	}

	return t.Add(c.rules.RoundingUnit - remainder), nil
}

// RoundInstant parses s and rounds it.
func (c *Calculator) RoundInstant(s string) (time.Time, error) {
	t, err := overtime.ParseInstant("instant", s)
	if err != nil {
		return time.Time{}, err
	}
	return c.RoundToQuarter(t)
}
