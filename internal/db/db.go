package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"energytrack/internal/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrDuplicateUser is returned when registering a username that is taken.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
)

type DB struct {
	*sql.DB
	driver string
}

func Open(driver, dsn string) (*DB, error) {
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := createTables(sqlDB); err != nil {
		return nil, err
	}

	return &DB{DB: sqlDB, driver: driver}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS devices (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			hours REAL NOT NULL,
			power REAL NOT NULL,
			owner_id TEXT NOT NULL REFERENCES users(id),
			created_at TIMESTAMP NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// rebind rewrites ? placeholders to $N for the postgres driver. Queries are
// written sqlite-style; lib/pq only understands numbered placeholders.
func (db *DB) rebind(query string) string {
	if db.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := db.rebind("SELECT id, username, password_hash, created_at FROM users WHERE username = ?")

	user := &models.User{}
	err := db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return user, nil
}

// CreateUser persists a new user. The username check races with concurrent
// registrations; the unique index on username backstops it.
func (db *DB) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	if _, err := db.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	query := db.rebind("INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)")
	if _, err := db.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash, user.CreatedAt); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "unique") {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the user and every device the user owns in a single
// transaction. Deleting an absent user is a no-op.
func (db *DB) DeleteAccount(ctx context.Context, userID string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, db.rebind("DELETE FROM devices WHERE owner_id = ?"), userID); err != nil {
		return fmt.Errorf("error deleting devices: %w", err)
	}
	if _, err := tx.ExecContext(ctx, db.rebind("DELETE FROM users WHERE id = ?"), userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	return tx.Commit()
}

func (db *DB) CreateDevice(ctx context.Context, ownerID, name string, hours, power float64) (*models.Device, error) {
	device := &models.Device{
		ID:        uuid.NewString(),
		Name:      name,
		Hours:     hours,
		Power:     power,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	query := db.rebind("INSERT INTO devices (id, name, hours, power, owner_id, created_at) VALUES (?, ?, ?, ?, ?, ?)")
	if _, err := db.ExecContext(ctx, query,
		device.ID, device.Name, device.Hours, device.Power, device.OwnerID, device.CreatedAt); err != nil {
		return nil, fmt.Errorf("error inserting device: %w", err)
	}
	return device, nil
}

func (db *DB) ListDevicesByOwner(ctx context.Context, ownerID string) ([]models.Device, error) {
	query := db.rebind("SELECT id, name, hours, power, owner_id, created_at FROM devices WHERE owner_id = ?")

	rows, err := db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying devices: %w", err)
	}
	defer rows.Close()

	var devices []models.Device
	for rows.Next() {
		var d models.Device
		if err := rows.Scan(&d.ID, &d.Name, &d.Hours, &d.Power, &d.OwnerID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// DeleteDevicesByOwner bulk-deletes a user's devices. Account deletion does
// this inside its transaction; this standalone form is idempotent.
func (db *DB) DeleteDevicesByOwner(ctx context.Context, ownerID string) error {
	if _, err := db.ExecContext(ctx, db.rebind("DELETE FROM devices WHERE owner_id = ?"), ownerID); err != nil {
		return fmt.Errorf("error deleting devices: %w", err)
	}
	return nil
}
