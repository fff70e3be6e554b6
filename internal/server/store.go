package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrNotFound = errors.New("not found")

// Store is the persistent side of the service: admin accounts, admin
// sessions, and the per-device story usage counters. Consultation flow
// state deliberately lives outside it (see Registry) and dies with the
// process.
type Store struct {
	db *sql.DB
}

type adminDoc struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type adminSessionDoc struct {
	ID      string `json:"id"`
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
}

func NewStore(ctx context.Context, db *sql.DB, adminEmail, adminPassword string) (*Store, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id    TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			data  JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admin_sessions (
			id   TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS story_usage (
			device_key TEXT PRIMARY KEY,
			count      INTEGER NOT NULL DEFAULT 0
		)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.seedIfEmpty(ctx, adminEmail, adminPassword); err != nil {
		return nil, fmt.Errorf("seeding admin: %w", err)
	}
	return s, nil
}

func (s *Store) seedIfEmpty(ctx context.Context, email, password string) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := adminDoc{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	data, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO admins (id, email, data) VALUES (?, ?, jsonb(?))`,
		admin.ID, admin.Email, string(data),
	)
	return err
}

func (s *Store) AdminByEmail(ctx context.Context, email string) (adminID, passwordHash string, err error) {
	var data string
	err = s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM admins WHERE email = ?`, email,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", err
	}
	var a adminDoc
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return "", "", err
	}
	return a.ID, a.PasswordHash, nil
}

func (s *Store) CreateAdminSession(ctx context.Context, adminID string) (string, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM admins WHERE id = ?`, adminID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	var a adminDoc
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return "", err
	}

	sessionID := uuid.NewString()
	sessData, err := json.Marshal(adminSessionDoc{
		ID:      sessionID,
		AdminID: adminID,
		Email:   a.Email,
	})
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO admin_sessions (id, data) VALUES (?, jsonb(?))`,
		sessionID, string(sessData),
	)
	return sessionID, err
}

func (s *Store) DeleteAdminSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM admin_sessions WHERE id = ?`, sessionID,
	)
	return err
}

func (s *Store) AdminFromSession(ctx context.Context, sessionID string) (adminSession, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM admin_sessions WHERE id = ?`, sessionID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return adminSession{}, errNoAdminSession
	}
	if err != nil {
		return adminSession{}, err
	}
	var as adminSessionDoc
	if err := json.Unmarshal([]byte(data), &as); err != nil {
		return adminSession{}, err
	}
	return adminSession{AdminID: as.AdminID, Email: as.Email}, nil
}

// StoryUsage returns how many free stories the device has generated.
func (s *Store) StoryUsage(ctx context.Context, deviceKey string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT count FROM story_usage WHERE device_key = ?`, deviceKey,
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, err
}

// IncrementStoryUsage bumps the counter for one device.
func (s *Store) IncrementStoryUsage(ctx context.Context, deviceKey string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO story_usage (device_key, count) VALUES (?, 1)
		ON CONFLICT(device_key) DO UPDATE SET count = count + 1
	`, deviceKey)
	return err
}

// StoryUsageTotals returns the number of known devices and the total
// stories generated across them.
func (s *Store) StoryUsageTotals(ctx context.Context) (devices, stories int, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(count), 0) FROM story_usage`,
	).Scan(&devices, &stories)
	return devices, stories, err
}
