// Package nik decodes and validates the 16 digit Indonesian national
// identity number (Nomor Induk Kependudukan).
//
// Layout, using 3576447103910003 as an example:
//
//	35       province code
//	3576     regency code
//	357644   district code
//	71       birth day, +40 for women (31, female)
//	03       birth month
//	91       two digit birth year
//	0003     unique code, must be above zero
package nik

import (
	"strings"
	"time"

	"nik-parser/internal/reference"
)

// Regions resolves NIK prefixes to reference records. *reference.Store
// satisfies it.
type Regions interface {
	Province(code string) (reference.Region, bool)
	Regency(code string) (reference.Region, bool)
	District(code string) (reference.Region, bool)
}

// Parser validates NIKs against a loaded set of regions. It holds no mutable
// state and may be shared between goroutines.
type Parser struct {
	regions Regions
	now     func() time.Time
}

type Option func(*Parser)

// WithClock overrides the clock used for the two digit year pivot.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

func NewParser(regions Regions, opts ...Option) *Parser {
	p := &Parser{regions: regions, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the decoded NIK. It never fails; any problem yields a
// Result with IsValid false and only NIK set.
func (p *Parser) Parse(nik string) Result {
	res, _ := p.Check(nik)
	return res
}

// Check is Parse plus the first reason the NIK was rejected.
func (p *Parser) Check(nik string) (Result, error) {
	if !wellFormed(nik) {
		return invalid(nik), ErrMalformed
	}

	province, provinceOK := p.regions.Province(ProvinceCode(nik))
	regency, regencyOK := p.regions.Regency(RegencyCode(nik))
	district, districtOK := p.regions.District(DistrictCode(nik))
	day := BirthDay(nik)
	month := BirthMonth(nik)
	year := BirthYear(nik, p.now())
	gender, _ := GenderOf(nik)

	switch {
	case !provinceOK:
		return invalid(nik), ErrUnknownProvince
	case !regencyOK:
		return invalid(nik), ErrUnknownRegency
	case !districtOK:
		return invalid(nik), ErrUnknownDistrict
	case !HasPositiveUniqueCode(nik):
		return invalid(nik), ErrInvalidUniqueCode
	case day == "":
		return invalid(nik), ErrInvalidDay
	case month == "":
		return invalid(nik), ErrInvalidMonth
	case year == "":
		return invalid(nik), ErrInvalidYear
	}

	birthDate, err := ValidateBirthDate(month, day, year)
	if err != nil {
		return invalid(nik), err
	}

	return Result{
		NIK:        nik,
		IsValid:    true,
		Province:   &province,
		Regency:    &regency,
		District:   &district,
		BirthDate:  birthDate,
		Gender:     gender,
		UniqueCode: UniqueCode(nik),
	}, nil
}

func wellFormed(nik string) bool {
	if len(nik) != 16 || strings.TrimSpace(nik) == "" {
		return false
	}
	for i := 0; i < len(nik); i++ {
		if nik[i] < '0' || nik[i] > '9' {
			return false
		}
	}
	return true
}
