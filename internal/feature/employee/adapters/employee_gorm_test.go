package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"onboarding_backend/internal/feature/employee/domain/entity"
	roleentity "onboarding_backend/internal/feature/role/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&roleentity.Role{}, &entity.Employee{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedRole(t *testing.T, db *gorm.DB, title string) *roleentity.Role {
	t.Helper()
	role := &roleentity.Role{Title: title, Description: title}
	require.NoError(t, db.Create(role).Error)
	return role
}

func hireDate(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", raw)
	require.NoError(t, err)
	return d
}

func TestEmployeeGorm_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	role := seedRole(t, db, "admin")

	e := &entity.Employee{
		EmployeeEmail: "alice@example.com",
		Name:          "Alice",
		Password:      "hashed",
		HireDate:      hireDate(t, "2026-01-15"),
		RoleID:        role.RoleID,
	}
	require.NoError(t, repo.Create(ctx, e))

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Alice", found.Name)
		assert.Empty(t, found.Role.Title, "plain lookup must not load the role")
	})

	t.Run("find by email with role", func(t *testing.T) {
		found, err := repo.FindByEmailWithRole(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "admin", found.Role.Title)
	})

	t.Run("absent email returns nil without error", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Employee{
			EmployeeEmail: "alice@example.com",
			Name:          "Other",
			Password:      "hashed",
			HireDate:      hireDate(t, "2026-02-01"),
			RoleID:        role.RoleID,
		})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

func TestEmployeeGorm_SavePersistsChanges(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	role := seedRole(t, db, "admin")

	e := &entity.Employee{
		EmployeeEmail: "bob@example.com",
		Name:          "Bob",
		Password:      "hashed",
		HireDate:      hireDate(t, "2026-03-01"),
		RoleID:        role.RoleID,
	}
	require.NoError(t, repo.Create(ctx, e))

	termination := hireDate(t, "2026-12-31")
	e.Name = "Robert"
	e.TerminationDate = &termination
	require.NoError(t, repo.Save(ctx, e))

	found, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Robert", found.Name)
	require.NotNil(t, found.TerminationDate)
	assert.Equal(t, termination.Format("2006-01-02"), found.TerminationDate.Format("2006-01-02"))
}

func TestEmployeeGorm_FindAllOrdersByEmail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	role := seedRole(t, db, "admin")

	for _, email := range []string{"carol@example.com", "alice@example.com", "bob@example.com"} {
		require.NoError(t, repo.Create(ctx, &entity.Employee{
			EmployeeEmail: email,
			Name:          email,
			Password:      "hashed",
			HireDate:      hireDate(t, "2026-01-01"),
			RoleID:        role.RoleID,
		}))
	}

	employees, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, "alice@example.com", employees[0].EmployeeEmail)
	assert.Equal(t, "carol@example.com", employees[2].EmployeeEmail)
	assert.Equal(t, "admin", employees[0].Role.Title)
}

func TestEmployeeGorm_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	role := seedRole(t, db, "admin")

	require.NoError(t, repo.Create(ctx, &entity.Employee{
		EmployeeEmail: "gone@example.com",
		Name:          "Gone",
		Password:      "hashed",
		HireDate:      hireDate(t, "2026-01-01"),
		RoleID:        role.RoleID,
	}))

	affected, err := repo.Delete(ctx, "gone@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Delete(ctx, "gone@example.com")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestEmployeeGorm_CountByRoleID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	admin := seedRole(t, db, "admin")
	engineer := seedRole(t, db, "engineer")

	require.NoError(t, repo.Create(ctx, &entity.Employee{
		EmployeeEmail: "a@example.com", Name: "A", Password: "h",
		HireDate: hireDate(t, "2026-01-01"), RoleID: admin.RoleID,
	}))
	require.NoError(t, repo.Create(ctx, &entity.Employee{
		EmployeeEmail: "b@example.com", Name: "B", Password: "h",
		HireDate: hireDate(t, "2026-01-01"), RoleID: admin.RoleID,
	}))

	count, err := repo.CountByRoleID(ctx, int(admin.RoleID))
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountByRoleID(ctx, int(engineer.RoleID))
	require.NoError(t, err)
	assert.Zero(t, count)
}
