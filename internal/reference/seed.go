package reference

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SeedRedis replaces the reference hashes with raw.
func SeedRedis(ctx context.Context, client redis.Cmdable, raw RawTables) error {
	for _, kind := range Kinds {
		table := raw.Table(kind)
		key := RedisKey(kind)

		_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			if len(table) > 0 {
				values := make(map[string]interface{}, len(table))
				for id, v := range table {
					values[id] = v
				}
				pipe.HSet(ctx, key, values)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", key, err)
		}
	}
	return nil
}

// SeedMySQL replaces the contents of the reference tables with raw inside a
// single transaction.
func SeedMySQL(ctx context.Context, db *sql.DB, raw RawTables) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, kind := range Kinds {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+string(kind)); err != nil {
			return fmt.Errorf("clear %s: %w", kind, err)
		}
	}

	for id, name := range raw.Provinces {
		if _, err := tx.ExecContext(ctx, "INSERT INTO provinces (id, name) VALUES (?, ?)", id, name); err != nil {
			return fmt.Errorf("insert province %s: %w", id, err)
		}
	}
	for id, name := range raw.Regencies {
		if _, err := tx.ExecContext(ctx, "INSERT INTO regencies (id, name) VALUES (?, ?)", id, name); err != nil {
			return fmt.Errorf("insert regency %s: %w", id, err)
		}
	}
	for id, value := range raw.Districts {
		name, zip := splitDistrictRaw(value)
		if _, err := tx.ExecContext(ctx, "INSERT INTO districts (id, name, zip_code) VALUES (?, ?, ?)", id, name, zip); err != nil {
			return fmt.Errorf("insert district %s: %w", id, err)
		}
	}

	return tx.Commit()
}
