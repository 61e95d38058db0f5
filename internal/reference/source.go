package reference

import "context"

// Source supplies the raw reference tables. Implementations return one table
// per call so a failing table does not take the others down with it.
type Source interface {
	Name() string
	Table(ctx context.Context, kind Kind) (map[string]string, error)
}
