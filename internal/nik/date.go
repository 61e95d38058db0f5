package nik

import (
	"fmt"
	"time"
)

const (
	// composite layout: month, day, four digit year
	parseLayout  = "01022006"
	outputLayout = "2006-01-02"
)

// ValidateBirthDate checks month/day/year against the calendar (days per
// month, leap years) and returns the date as YYYY-MM-DD.
func ValidateBirthDate(month, day, year string) (string, error) {
	t, err := time.Parse(parseLayout, month+day+year)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t.Format(outputLayout), nil
}
