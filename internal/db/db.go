package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func New(addr string, maxOpenConns, maxIdleConns int, maxIdleTime time.Duration, production bool) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", WithSSLMode(addr, production))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// WithSSLMode sets the sslmode of a connection string when the caller did
// not choose one. Production connects encrypted without verifying the
// server certificate (sslmode=require); anything else disables TLS.
func WithSSLMode(addr string, production bool) string {
	mode := "disable"
	if production {
		mode = "require"
	}

	if strings.HasPrefix(addr, "postgres://") || strings.HasPrefix(addr, "postgresql://") {
		u, err := url.Parse(addr)
		if err != nil {
			return addr
		}
		q := u.Query()
		if q.Get("sslmode") != "" {
			return addr
		}
		q.Set("sslmode", mode)
		u.RawQuery = q.Encode()
		return u.String()
	}

	if strings.Contains(addr, "sslmode=") {
		return addr
	}
	if strings.TrimSpace(addr) == "" {
		return "sslmode=" + mode
	}
	return addr + " sslmode=" + mode
}
