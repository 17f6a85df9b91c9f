// Package db owns the MySQL pool: connection with retry, schema
// bootstrap, and every query the service runs.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/AdarshJain-dev/Three-Tier-Application-Deployment-CI/internal/config"
)

const (
	DefaultMaxAttempts = 10
	DefaultRetryDelay  = 3 * time.Second

	// Bounded pool: excess queries queue inside database/sql.
	maxOpenConns = 10
)

// Store wraps the connection pool. A single Store is constructed at
// startup and injected into the HTTP server.
type Store struct {
	pool *sql.DB
}

// Connect opens a ping-validated pool, retrying with a fixed delay
// between attempts. After maxAttempts failures the last error is
// returned and the caller must abort startup.
func Connect(cfg config.Config, maxAttempts int, delay time.Duration) (*Store, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	pool, err := connectWithRetry(maxAttempts, delay, func() (*sql.DB, error) {
		p, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, err
		}
		if err := p.Ping(); err != nil {
			p.Close()
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(maxOpenConns)
	pool.SetMaxIdleConns(maxOpenConns)
	return &Store{pool: pool}, nil
}

func connectWithRetry(maxAttempts int, delay time.Duration, open func() (*sql.DB, error)) (*sql.DB, error) {
	var err error
	for i := 1; i <= maxAttempts; i++ {
		var pool *sql.DB
		pool, err = open()
		if err == nil {
			log.Printf("database connection attempt %d/%d succeeded", i, maxAttempts)
			return pool, nil
		}
		log.Printf("database connection attempt %d/%d failed: %v", i, maxAttempts, err)
		if i < maxAttempts {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("database connect failed after %d attempts: %w", maxAttempts, err)
}

// EnsureTables creates the student and teacher tables if absent.
// Safe to run on every startup.
func (s *Store) EnsureTables(ctx context.Context) error {
	const students = `CREATE TABLE IF NOT EXISTS students (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		roll_no VARCHAR(255) NOT NULL,
		class VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	const teachers = `CREATE TABLE IF NOT EXISTS teachers (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		subject VARCHAR(255) NOT NULL,
		class VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := s.pool.ExecContext(ctx, students); err != nil {
		return fmt.Errorf("create students table: %w", err)
	}
	if _, err := s.pool.ExecContext(ctx, teachers); err != nil {
		return fmt.Errorf("create teachers table: %w", err)
	}
	return nil
}

// Ping reports whether the database currently answers queries.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.PingContext(ctx)
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
