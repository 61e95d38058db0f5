package nik

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nik-parser/internal/reference"
)

var fixedNow = time.Date(2023, time.June, 1, 8, 0, 0, 0, time.UTC)

func testStore() *reference.Store {
	return reference.NewStore(reference.RawTables{
		Provinces: map[string]string{"35": "JAWA TIMUR", "32": "JAWA BARAT"},
		Regencies: map[string]string{"3576": "KOTA MOJOKERTO", "3273": "KOTA BANDUNG"},
		Districts: map[string]string{"357644": "KRANGGAN -- 613-21", "327301": "SUKASARI -- 401-51"},
	})
}

func newTestParser() *Parser {
	return NewParser(testStore(), WithClock(func() time.Time { return fixedNow }))
}

func assertInvalid(t *testing.T, nik string, res Result) {
	t.Helper()
	assert.Equal(t, Result{NIK: nik}, res)
}

func TestParseValidFemale(t *testing.T) {
	p := newTestParser()

	res, err := p.Check("3576447103910003")
	require.NoError(t, err)

	assert.True(t, res.IsValid)
	assert.Equal(t, "3576447103910003", res.NIK)
	require.NotNil(t, res.Province)
	assert.Equal(t, reference.Region{ID: "35", Name: "Jawa Timur"}, *res.Province)
	require.NotNil(t, res.Regency)
	assert.Equal(t, reference.Region{ID: "3576", Name: "Kota Mojokerto"}, *res.Regency)
	require.NotNil(t, res.District)
	assert.Equal(t, reference.Region{ID: "357644", Name: "Kranggan", ZipCode: "61321"}, *res.District)
	assert.Equal(t, "1991-03-31", res.BirthDate)
	assert.Equal(t, Female, res.Gender)
	assert.Equal(t, "0003", res.UniqueCode)
}

func TestParseValidMale(t *testing.T) {
	res := newTestParser().Parse("3273011508050012")

	assert.True(t, res.IsValid)
	assert.Equal(t, "2005-08-15", res.BirthDate)
	assert.Equal(t, Male, res.Gender)
	assert.Equal(t, "0012", res.UniqueCode)
}

func TestParseRegionIDsArePrefixes(t *testing.T) {
	nik := "3576447103910003"
	res := newTestParser().Parse(nik)
	require.True(t, res.IsValid)

	assert.Equal(t, nik[:2], res.Province.ID)
	assert.Equal(t, nik[:4], res.Regency.ID)
	assert.Equal(t, nik[:6], res.District.ID)
}

func TestParseIsDeterministic(t *testing.T) {
	p := newTestParser()
	first := p.Parse("3576447103910003")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Parse("3576447103910003"))
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	p := newTestParser()

	inputs := []string{
		"",
		"                ",
		"357644710391000",
		"35764471039100031",
		"357644710391000a",
		"3576-44710391003",
		" 576447103910003",
		"３５７６４４７１０３９１０００３", // full width digits
		"\t576447103910003",
	}

	for _, in := range inputs {
		res, err := p.Check(in)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", in)
		assertInvalid(t, in, res)
	}
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name    string
		nik     string
		wantErr error
	}{
		{name: "all zero", nik: "0000000000000000", wantErr: ErrUnknownProvince},
		{name: "unknown province", nik: "9976447103910003", wantErr: ErrUnknownProvince},
		{name: "unknown regency", nik: "3599447103910003", wantErr: ErrUnknownRegency},
		{name: "unknown district", nik: "3576997103910003", wantErr: ErrUnknownDistrict},
		{name: "zero unique code", nik: "3576447103910000", wantErr: ErrInvalidUniqueCode},
		{name: "day zero", nik: "3576440003910003", wantErr: ErrInvalidDay},
		{name: "day 72", nik: "3576447203910003", wantErr: ErrInvalidDay},
		{name: "day 99", nik: "3576449903910003", wantErr: ErrInvalidDay},
		{name: "day 32 is no calendar day", nik: "3576443203910003", wantErr: ErrInvalidDate},
		{name: "day 40 is no calendar day", nik: "3576444003910003", wantErr: ErrInvalidDate},
		{name: "month zero", nik: "3576441500910003", wantErr: ErrInvalidMonth},
		{name: "month 13", nik: "3576441513910003", wantErr: ErrInvalidMonth},
		{name: "older than 65 years", nik: "3576441503400003", wantErr: ErrInvalidYear},
		{name: "february 30", nik: "3576443002910003", wantErr: ErrInvalidDate},
		{name: "february 30 female", nik: "3576447002000003", wantErr: ErrInvalidDate},
		{name: "february 29 non leap", nik: "3576442902910003", wantErr: ErrInvalidDate},
		{name: "april 31", nik: "3576443104910003", wantErr: ErrInvalidDate},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Check(tt.nik)
			assert.ErrorIs(t, err, tt.wantErr)
			assertInvalid(t, tt.nik, res)
			assert.Equal(t, res, p.Parse(tt.nik))
		})
	}
}

func TestParseLeapDay(t *testing.T) {
	p := newTestParser()

	res := p.Parse("3576442902920003")
	require.True(t, res.IsValid)
	assert.Equal(t, "1992-02-29", res.BirthDate)

	res = p.Parse("3576446902000003")
	require.True(t, res.IsValid)
	assert.Equal(t, "2000-02-29", res.BirthDate)
	assert.Equal(t, Female, res.Gender)
}

func TestParseUniqueCodeRange(t *testing.T) {
	p := newTestParser()
	for _, code := range []string{"0001", "0100", "9999"} {
		res := p.Parse("357644710391" + code)
		assert.True(t, res.IsValid, code)
		assert.Equal(t, code, res.UniqueCode)
	}
}

func TestParseAgainstEmptyStore(t *testing.T) {
	p := NewParser(reference.Empty(), WithClock(func() time.Time { return fixedNow }))

	res, err := p.Check("3576447103910003")
	assert.ErrorIs(t, err, ErrUnknownProvince)
	assertInvalid(t, "3576447103910003", res)
}

func TestParseConcurrent(t *testing.T) {
	p := newTestParser()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, p.Parse("3576447103910003").IsValid)
			}
		}()
	}
	wg.Wait()
}

func TestReason(t *testing.T) {
	assert.Equal(t, "", Reason(nil))
	assert.Equal(t, "malformed", Reason(ErrMalformed))
	assert.Equal(t, "invalid_date", Reason(ErrInvalidDate))

	_, err := ValidateBirthDate("02", "30", "2000")
	assert.Equal(t, "invalid_date", Reason(err))
}
