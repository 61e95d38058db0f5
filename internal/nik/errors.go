package nik

import "errors"

// Reasons a NIK is rejected. Parse collapses all of them into
// Result.IsValid == false; Check returns the first one hit.
var (
	ErrMalformed         = errors.New("nik must be 16 digits")
	ErrUnknownProvince   = errors.New("unknown province code")
	ErrUnknownRegency    = errors.New("unknown regency code")
	ErrUnknownDistrict   = errors.New("unknown district code")
	ErrInvalidDay        = errors.New("birth day out of range")
	ErrInvalidMonth      = errors.New("birth month out of range")
	ErrInvalidYear       = errors.New("birth year out of range")
	ErrInvalidUniqueCode = errors.New("unique code must be greater than zero")
	ErrInvalidDate       = errors.New("birth date is not a calendar date")
)

// Reason returns a short label for err, used in logs and metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrUnknownProvince):
		return "unknown_province"
	case errors.Is(err, ErrUnknownRegency):
		return "unknown_regency"
	case errors.Is(err, ErrUnknownDistrict):
		return "unknown_district"
	case errors.Is(err, ErrInvalidDay):
		return "invalid_day"
	case errors.Is(err, ErrInvalidMonth):
		return "invalid_month"
	case errors.Is(err, ErrInvalidYear):
		return "invalid_year"
	case errors.Is(err, ErrInvalidUniqueCode):
		return "invalid_unique_code"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	}
	return "unknown"
}
