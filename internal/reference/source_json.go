package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONSource reads provinces.json, regencies.json and districts.json from a
// directory. Each file is a flat object of code -> value.
type JSONSource struct {
	Dir string
}

func NewJSONSource(dir string) *JSONSource {
	return &JSONSource{Dir: dir}
}

func (s *JSONSource) Name() string { return "json" }

func (s *JSONSource) Table(ctx context.Context, kind Kind) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.Dir, string(kind)+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", kind, err)
	}

	table := map[string]string{}
	if err := json.Unmarshal(b, &table); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return table, nil
}

// ReadAll loads every table from src, stopping at the first error.
func ReadAll(ctx context.Context, src Source) (RawTables, error) {
	var raw RawTables
	for _, kind := range Kinds {
		table, err := src.Table(ctx, kind)
		if err != nil {
			return RawTables{}, err
		}
		raw.set(kind, table)
	}
	return raw, nil
}
