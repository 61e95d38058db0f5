package reference

// Kind identifies one of the three reference tables.
type Kind string

const (
	KindProvince Kind = "provinces"
	KindRegency  Kind = "regencies"
	KindDistrict Kind = "districts"
)

// Kinds lists the tables in load order.
var Kinds = []Kind{KindProvince, KindRegency, KindDistrict}

// CodeLength is the number of leading NIK digits used as the lookup key.
func (k Kind) CodeLength() int {
	switch k {
	case KindProvince:
		return 2
	case KindRegency:
		return 4
	case KindDistrict:
		return 6
	}
	return 0
}

// Region is a province, regency or district record. ZipCode is only set for
// districts.
type Region struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ZipCode string `json:"zipCode,omitempty"`
}

// RawTables holds the unnormalized source data, code -> "NAME" for provinces
// and regencies, code -> "NAME -- ZIP" for districts.
type RawTables struct {
	Provinces map[string]string
	Regencies map[string]string
	Districts map[string]string
}

// Table returns the raw map for the given kind.
func (r RawTables) Table(kind Kind) map[string]string {
	switch kind {
	case KindProvince:
		return r.Provinces
	case KindRegency:
		return r.Regencies
	case KindDistrict:
		return r.Districts
	}
	return nil
}

func (r *RawTables) set(kind Kind, table map[string]string) {
	switch kind {
	case KindProvince:
		r.Provinces = table
	case KindRegency:
		r.Regencies = table
	case KindDistrict:
		r.Districts = table
	}
}
