package reference

import (
	"sort"
	"strings"
)

// Store is an immutable snapshot of the three reference tables. A Store is
// never modified after NewStore returns, so it is safe for concurrent reads.
type Store struct {
	provinces map[string]Region
	regencies map[string]Region
	districts map[string]Region
}

// NewStore normalizes raw tables into a Store. Nil tables produce empty ones.
func NewStore(raw RawTables) *Store {
	s := &Store{
		provinces: make(map[string]Region, len(raw.Provinces)),
		regencies: make(map[string]Region, len(raw.Regencies)),
		districts: make(map[string]Region, len(raw.Districts)),
	}
	for id, name := range raw.Provinces {
		s.provinces[id] = Region{ID: id, Name: Capitalize(name)}
	}
	for id, name := range raw.Regencies {
		s.regencies[id] = Region{ID: id, Name: Capitalize(name)}
	}
	for id, value := range raw.Districts {
		name, zip := SplitDistrict(value)
		s.districts[id] = Region{ID: id, Name: name, ZipCode: zip}
	}
	return s
}

// Empty returns a Store with no entries; every lookup misses.
func Empty() *Store {
	return NewStore(RawTables{})
}

// Province looks up a two digit province code.
func (s *Store) Province(code string) (Region, bool) {
	r, ok := s.provinces[code]
	return r, ok
}

// Regency looks up a four digit regency code.
func (s *Store) Regency(code string) (Region, bool) {
	r, ok := s.regencies[code]
	return r, ok
}

// District looks up a six digit district code.
func (s *Store) District(code string) (Region, bool) {
	r, ok := s.districts[code]
	return r, ok
}

// Counts reports the number of entries per table.
type Counts struct {
	Provinces int `json:"provinces"`
	Regencies int `json:"regencies"`
	Districts int `json:"districts"`
}

func (s *Store) Counts() Counts {
	return Counts{
		Provinces: len(s.provinces),
		Regencies: len(s.regencies),
		Districts: len(s.districts),
	}
}

// Provinces returns every province ordered by id.
func (s *Store) Provinces() []Region {
	return sorted(s.provinces, "")
}

// RegenciesOf returns the regencies whose code starts with provinceID.
func (s *Store) RegenciesOf(provinceID string) []Region {
	return sorted(s.regencies, provinceID)
}

// DistrictsOf returns the districts whose code starts with regencyID.
func (s *Store) DistrictsOf(regencyID string) []Region {
	return sorted(s.districts, regencyID)
}

func sorted(table map[string]Region, prefix string) []Region {
	out := make([]Region, 0)
	for id, r := range table {
		if strings.HasPrefix(id, prefix) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FilterByName keeps the regions whose name contains search, ignoring case.
func FilterByName(regions []Region, search string) []Region {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return regions
	}
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if strings.Contains(strings.ToLower(r.Name), search) {
			out = append(out, r)
		}
	}
	return out
}
