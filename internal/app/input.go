package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
)

// ParseSubmissionDate reads a YYYY-MM-DD submission date.
func ParseSubmissionDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("submission date is required")
	}
	return domain.ParseDate(s)
}

// ParseSundayAnswer reads a Y/N answer to "do you plan to work on Sundays".
func ParseSundayAnswer(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("answer %q is not valid, enter Y or N", s)
	}
}

// ParseHoursRequired reads the total hours the work needs.
func ParseHoursRequired(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("enter a positive whole number of hours")
	}
	return v, nil
}
