// Command seed copies the JSON reference tables into Redis or MySQL so the
// server can run with REFERENCE_SOURCE=redis or REFERENCE_SOURCE=mysql.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"nik-parser/internal/config"
	"nik-parser/internal/reference"
)

var errUnknownTarget = errors.New("target must be redis or mysql")

func main() {
	dir := flag.String("dir", "data", "directory with provinces.json, regencies.json and districts.json")
	target := flag.String("target", "redis", "where to write the tables: redis or mysql")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	config.LoadEnv()
	logger := config.InitLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	raw, err := reference.ReadAll(ctx, reference.NewJSONSource(*dir))
	if err != nil {
		logger.Error("read reference files", "dir", *dir, "error", err)
		os.Exit(1)
	}

	if err := seed(ctx, *target, raw); err != nil {
		logger.Error("seed failed", "target", *target, "error", err)
		os.Exit(1)
	}

	logger.Info("seed done",
		"target", *target,
		"provinces", len(raw.Provinces),
		"regencies", len(raw.Regencies),
		"districts", len(raw.Districts),
	)
}

func seed(ctx context.Context, target string, raw reference.RawTables) error {
	switch target {
	case "redis":
		if err := config.InitRedis(); err != nil {
			return err
		}
		defer config.CloseRedis()
		if config.Redis == nil {
			return errors.New("REDIS_ADDR is not set")
		}
		return reference.SeedRedis(ctx, config.Redis, raw)
	case "mysql":
		if err := config.InitDB(); err != nil {
			return err
		}
		defer config.CloseDB()
		if config.DB == nil {
			return errors.New("DB_NAME is not set")
		}
		return reference.SeedMySQL(ctx, config.DB, raw)
	default:
		return errUnknownTarget
	}
}
