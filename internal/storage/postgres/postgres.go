package postgres

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/lib/pq"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/config"
)

const defaultSchema = "public"

var schemaIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Storage struct {
	db     *sql.DB
	schema string
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.postgres.New"

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	// Recycle pooled connections so a restarted server is picked up.
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Storage{db: db, schema: SafeSchema(cfg.DBSchema)}, nil
}

// SafeSchema validates a configured schema name before it is interpolated
// into query text. Anything outside the plain identifier pattern is replaced
// with "public" rather than surfaced: this guards configuration, not users.
func SafeSchema(schema string) string {
	if schema == "" || !schemaIdent.MatchString(schema) {
		return defaultSchema
	}
	return schema
}

func (s *Storage) Close() error {
	return s.db.Close()
}
