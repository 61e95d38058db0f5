package reference

import (
	"context"
	"database/sql"
	"fmt"
)

// MySQLSource reads the tables provinces(id, name), regencies(id, name) and
// districts(id, name, zip_code).
type MySQLSource struct {
	DB *sql.DB
}

func NewMySQLSource(db *sql.DB) *MySQLSource {
	return &MySQLSource{DB: db}
}

func (s *MySQLSource) Name() string { return "mysql" }

func (s *MySQLSource) Table(ctx context.Context, kind Kind) (map[string]string, error) {
	var query string
	switch kind {
	case KindProvince:
		query = "SELECT id, name FROM provinces"
	case KindRegency:
		query = "SELECT id, name FROM regencies"
	case KindDistrict:
		query = "SELECT id, name, zip_code FROM districts"
	default:
		return nil, fmt.Errorf("unknown table %q", kind)
	}

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", kind, err)
	}
	defer rows.Close()

	table := map[string]string{}
	for rows.Next() {
		var id, name string
		if kind == KindDistrict {
			var zip sql.NullString
			if err := rows.Scan(&id, &name, &zip); err != nil {
				return nil, fmt.Errorf("scan %s: %w", kind, err)
			}
			name = JoinDistrict(name, zip.String)
		} else if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		table[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", kind, err)
	}
	return table, nil
}
