package nik

import (
	"strconv"
	"time"
)

// The decoders below expect a 16 character, digits-only NIK; Parse checks
// that before calling them.

const (
	femaleDayOffset = 40
	maxAgeYears     = 65
)

// ProvinceCode is characters [0,2).
func ProvinceCode(nik string) string { return nik[0:2] }

// RegencyCode is characters [0,4).
func RegencyCode(nik string) string { return nik[0:4] }

// DistrictCode is characters [0,6).
func DistrictCode(nik string) string { return nik[0:6] }

func rawDay(nik string) int {
	d, _ := strconv.Atoi(nik[6:8])
	return d
}

// BirthDay returns the zero padded day of month, with the female offset of 40
// removed. Raw values outside 1..71 return "".
func BirthDay(nik string) string {
	d := rawDay(nik)
	if d < 1 || d > 71 {
		return ""
	}
	if d > femaleDayOffset {
		d -= femaleDayOffset
	}
	return pad2(d)
}

// GenderOf derives the gender from the raw day. ok is false when the raw day
// is outside 1..71.
func GenderOf(nik string) (g Gender, ok bool) {
	d := rawDay(nik)
	if d < 1 || d > 71 {
		return "", false
	}
	if d > femaleDayOffset {
		return Female, true
	}
	return Male, true
}

// BirthMonth returns the zero padded month, or "" outside 1..12.
func BirthMonth(nik string) string {
	m, _ := strconv.Atoi(nik[8:10])
	if m < 1 || m > 12 {
		return ""
	}
	return pad2(m)
}

// BirthYear expands the two digit year relative to now. Years below the last
// two digits of the current year fall in the 2000s, the rest in the 1900s.
// A year more than 65 years before the current one returns "".
func BirthYear(nik string, now time.Time) string {
	y, _ := strconv.Atoi(nik[10:12])
	current := now.Year()

	full := 1900 + y
	if y < current%100 {
		full = 2000 + y
	}

	if full < current-maxAgeYears {
		return ""
	}
	return strconv.Itoa(full)
}

// UniqueCode is the last four characters.
func UniqueCode(nik string) string {
	return nik[len(nik)-4:]
}

// HasPositiveUniqueCode reports whether the last four digits are above zero.
func HasPositiveUniqueCode(nik string) bool {
	n, err := strconv.Atoi(UniqueCode(nik))
	return err == nil && n > 0
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
