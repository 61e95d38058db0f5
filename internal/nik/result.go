package nik

import "nik-parser/internal/reference"

// Gender is decoded from the day field.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Result is the outcome of parsing one NIK. Every field other than NIK and
// IsValid is set only when IsValid is true.
type Result struct {
	NIK        string            `json:"nik"`
	IsValid    bool              `json:"isValid"`
	Province   *reference.Region `json:"province,omitempty"`
	Regency    *reference.Region `json:"regency,omitempty"`
	District   *reference.Region `json:"district,omitempty"`
	BirthDate  string            `json:"birthDate,omitempty"`
	Gender     Gender            `json:"gender,omitempty"`
	UniqueCode string            `json:"uniqueCode,omitempty"`
}

func invalid(nik string) Result {
	return Result{NIK: nik}
}
