package config

import (
	"errors"
	"fmt"

	"nik-parser/internal/reference"
)

// NewReferenceSource picks the reference data source from REFERENCE_SOURCE:
// json (default, reads REFERENCE_DIR), mysql or redis. InitDB/InitRedis must
// have run for the latter two.
func NewReferenceSource() (reference.Source, error) {
	switch kind := GetEnv("REFERENCE_SOURCE", "json"); kind {
	case "json":
		return reference.NewJSONSource(GetEnv("REFERENCE_DIR", "data")), nil
	case "mysql":
		if DB == nil {
			return nil, errors.New("REFERENCE_SOURCE=mysql but MySQL is not configured")
		}
		return reference.NewMySQLSource(DB), nil
	case "redis":
		if Redis == nil {
			return nil, errors.New("REFERENCE_SOURCE=redis but Redis is not configured")
		}
		return reference.NewRedisSource(Redis), nil
	default:
		return nil, fmt.Errorf("unknown REFERENCE_SOURCE %q", kind)
	}
}
