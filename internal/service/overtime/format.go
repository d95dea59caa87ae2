package overtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
)

// FormatTime renders minutes as HH:MM. Hours are padded to two digits and
// never wrap, so 11160 minutes is "186:00".
func FormatTime(minutes int) (string, error) {
	if minutes < 0 {
		return "", overtime.NewInvalidInput("minutes", minutes, "minutes must be a non-negative integer")
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// ParseMinutes reads a decimal integer minute count. Signs, fractions and
// values that overflow int are rejected.
func ParseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !validator.IsNumeric(s) {
		return 0, overtime.NewInvalidInput("minutes", s, "minutes must be a non-negative integer")
	}
	minutes, err := strconv.Atoi(s)
	if err != nil {
		return 0, overtime.NewInvalidInput("minutes", s, "minutes must be a non-negative integer")
	}
	return minutes, nil
}
