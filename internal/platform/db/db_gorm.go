// Package db manages the gorm connection lifecycle.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	assignmententity "onboarding_backend/internal/feature/assignment/domain/entity"
	employeeentity "onboarding_backend/internal/feature/employee/domain/entity"
	onboardingentity "onboarding_backend/internal/feature/onboarding/domain/entity"
	typeentity "onboarding_backend/internal/feature/onboardingtype/domain/entity"
	roleentity "onboarding_backend/internal/feature/role/domain/entity"
	"onboarding_backend/internal/platform/config"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Open connects to PostgreSQL, retrying until the database accepts
// connections or the timeout elapses. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey regardless
// of driver.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		conn, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", connectTimeout, err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}

	if cfg.RunMigrations {
		if err := Migrate(conn); err != nil {
			return nil, err
		}
	}

	return conn, nil
}

// Migrate creates or updates the schema for every entity.
// Order matters: referenced tables first.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&roleentity.Role{},
		&employeeentity.Employee{},
		&typeentity.OnboardingType{},
		&onboardingentity.Onboarding{},
		&assignmententity.EmployeeOnboarding{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
