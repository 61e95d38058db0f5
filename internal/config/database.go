package config

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

var DB *sql.DB

// InitDB opens the MySQL connection used for reference tables and admin
// users. It is skipped when DB_NAME is empty.
func InitDB() error {
	if GetEnv("DB_NAME", "") == "" {
		slog.Info("DB_NAME not set, MySQL disabled")
		return nil
	}

	cfg := mysql.NewConfig()
	cfg.User = GetEnv("DB_USER", "root")
	cfg.Passwd = GetEnv("DB_PASSWORD", "")
	cfg.Net = "tcp"
	cfg.Addr = GetEnv("DB_HOST", "127.0.0.1") + ":" + GetEnv("DB_PORT", "3306")
	cfg.DBName = GetEnv("DB_NAME", "")
	cfg.ParseTime = true
	cfg.Loc = time.Local

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(GetEnvInt("DB_MAX_OPEN_CONNS", 10))
	db.SetMaxIdleConns(GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("ping mysql: %w", err)
	}

	DB = db
	slog.Info("MySQL connected", "addr", cfg.Addr, "db", cfg.DBName)
	return nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
