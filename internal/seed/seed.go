// Package seed creates the default records a fresh installation needs.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/pkg/auth"
)

const defaultDeanEmail = "doyen@stagemed.app"

// CreateDefaultData seeds the default dean account and a sample
// establishment so a fresh database is usable right away
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	if err := createDefaultDean(ctx, pool, lgr); err != nil {
		return err
	}
	return createDefaultEstablishment(ctx, pool, lgr)
}

func createDefaultDean(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'dean'`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count dean accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("SEED_DEAN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash default dean password: %w", err)
	}

	var userID int64
	err = pool.QueryRow(ctx,
		`INSERT INTO users (email, password, role, is_active, must_change_password)
		 VALUES ($1, $2, 'dean', TRUE, TRUE)
		 RETURNING id`,
		defaultDeanEmail, hash).Scan(&userID)
	if err != nil {
		return fmt.Errorf("failed to create default dean user: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO deans (user_id, first_name, last_name, phone)
		 VALUES ($1, 'Admin', 'StageMed', '')`,
		userID)
	if err != nil {
		return fmt.Errorf("failed to create default dean profile: %w", err)
	}

	lgr.Info().Str("email", defaultDeanEmail).Msg("Default dean account created")
	return nil
}

func createDefaultEstablishment(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM establishments`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count establishments: %w", err)
	}
	if count > 0 {
		return nil
	}

	var establishmentID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO establishments (name, street, city, postal_code, phone, email, type)
		 VALUES ('CHU Mustapha', 'Place du 1er Mai', 'Alger', '16000', '+213 21 23 55 55', 'contact@chu-mustapha.dz', 'CHU')
		 RETURNING id`).Scan(&establishmentID)
	if err != nil {
		return fmt.Errorf("failed to create sample establishment: %w", err)
	}

	services := []struct {
		name string
		code string
	}{
		{"Cardiologie", "CARDIO"},
		{"Pédiatrie", "PEDIA"},
		{"Urgences", "URG"},
	}
	for _, svc := range services {
		_, err := pool.Exec(ctx,
			`INSERT INTO services (name, description, code, establishment_id, capacity)
			 VALUES ($1, '', $2, $3, 5)`,
			svc.name, svc.code, establishmentID)
		if err != nil {
			return fmt.Errorf("failed to create sample service %s: %w", svc.code, err)
		}
	}

	lgr.Info().Int64("establishmentId", establishmentID).Msg("Sample establishment and services created")
	return nil
}
