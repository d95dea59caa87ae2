package metrics

import (
	"errors"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeValidation   = "validation"
	OutcomeError        = "error"
)

var (
	calculationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hris_overtime",
		Subsystem: "calculator",
		Name:      "calculations_total",
		Help:      "Number of overtime operations grouped by operation and outcome.",
	}, []string{"operation", "outcome"})

	monthlyMinutesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hris_overtime",
		Subsystem: "calculator",
		Name:      "monthly_overtime_minutes",
		Help:      "Distribution of monthly overtime minutes per band.",
		Buckets:   []float64{0, 600, 1350, 2700, 3600, 6000, 12000},
	}, []string{"band"})
)

func init() {
	prometheus.MustRegister(calculationCounter, monthlyMinutesHistogram)
}

// Outcome classifies err for the outcome label.
func Outcome(err error) string {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, overtime.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, overtime.ErrValidation), errors.As(err, &validationErrs):
		return OutcomeValidation
	default:
		return OutcomeError
	}
}

// RecordCalculation counts one operation call.
func RecordCalculation(operation string, err error) {
	calculationCounter.WithLabelValues(operation, Outcome(err)).Inc()
}

// RecordMonthlyResult observes the bands of a successful aggregation.
func RecordMonthlyResult(result overtime.MonthlyOvertimeResult) {
	monthlyMinutesHistogram.WithLabelValues("total").Observe(float64(result.TotalOvertimeMinutes))
	monthlyMinutesHistogram.WithLabelValues("excess").Observe(float64(result.ExcessOvertimeMinutes))
	monthlyMinutesHistogram.WithLabelValues("late_night").Observe(float64(result.LateNightMinutes))
}
