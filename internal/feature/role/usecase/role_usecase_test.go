package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding_backend/internal/feature/role/domain/entity"
	"onboarding_backend/internal/shared/apperr"
)

// mockRoleRepository simulates the persistence layer during testing.
type mockRoleRepository struct {
	SaveFunc        func(ctx context.Context, role *entity.Role) error
	FindByIDFunc    func(ctx context.Context, roleID int) (*entity.Role, error)
	FindByTitleFunc func(ctx context.Context, title string) (*entity.Role, error)
	FindAllFunc     func(ctx context.Context) ([]entity.Role, error)
	DeleteFunc      func(ctx context.Context, roleID int) error
}

func (m *mockRoleRepository) Save(ctx context.Context, role *entity.Role) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, role)
	}
	return nil
}

func (m *mockRoleRepository) FindByID(ctx context.Context, roleID int) (*entity.Role, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, roleID)
	}
	return nil, nil
}

func (m *mockRoleRepository) FindByTitle(ctx context.Context, title string) (*entity.Role, error) {
	if m.FindByTitleFunc != nil {
		return m.FindByTitleFunc(ctx, title)
	}
	return nil, nil
}

func (m *mockRoleRepository) FindAll(ctx context.Context) ([]entity.Role, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRoleRepository) Delete(ctx context.Context, roleID int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, roleID)
	}
	return nil
}

// mockEmployeeCounter simulates the employee feature's counter.
type mockEmployeeCounter struct {
	CountByRoleIDFunc func(ctx context.Context, roleID int) (int64, error)
}

func (m *mockEmployeeCounter) CountByRoleID(ctx context.Context, roleID int) (int64, error) {
	if m.CountByRoleIDFunc != nil {
		return m.CountByRoleIDFunc(ctx, roleID)
	}
	return 0, nil
}

func TestRoleUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("successful create", func(t *testing.T) {
		repo := &mockRoleRepository{
			SaveFunc: func(ctx context.Context, role *entity.Role) error {
				role.RoleID = 7
				return nil
			},
		}
		uc := NewRoleUsecase(repo, &mockEmployeeCounter{})

		data, err := uc.Create(ctx, RoleInput{Title: "admin", Description: "Full access"})
		require.NoError(t, err)
		assert.Equal(t, 7, data.RoleID)
		assert.Equal(t, "admin", data.Title)
	})

	t.Run("collects every field violation", func(t *testing.T) {
		uc := NewRoleUsecase(&mockRoleRepository{}, &mockEmployeeCounter{})

		_, err := uc.Create(ctx, RoleInput{Title: "", Description: ""})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{
			"The title field is required.",
			"The description field is required.",
		}, ve.Messages)
	})

	t.Run("short title", func(t *testing.T) {
		uc := NewRoleUsecase(&mockRoleRepository{}, &mockEmployeeCounter{})

		_, err := uc.Create(ctx, RoleInput{Title: "ab", Description: "ok"})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Messages, "The title must be between 3 and 255 characters long.")
	})

	t.Run("duplicate title", func(t *testing.T) {
		repo := &mockRoleRepository{
			FindByTitleFunc: func(ctx context.Context, title string) (*entity.Role, error) {
				return &entity.Role{RoleID: 1, Title: title}, nil
			},
		}
		uc := NewRoleUsecase(repo, &mockEmployeeCounter{})

		_, err := uc.Create(ctx, RoleInput{Title: "admin", Description: "dup"})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Messages, "A role with this title already exists.")
	})
}

func TestRoleUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("title match on the same record passes uniqueness", func(t *testing.T) {
		repo := &mockRoleRepository{
			FindByTitleFunc: func(ctx context.Context, title string) (*entity.Role, error) {
				return &entity.Role{RoleID: 3, Title: title}, nil
			},
			FindByIDFunc: func(ctx context.Context, roleID int) (*entity.Role, error) {
				return &entity.Role{RoleID: 3, Title: "old", Description: "old"}, nil
			},
		}
		uc := NewRoleUsecase(repo, &mockEmployeeCounter{})

		data, err := uc.Update(ctx, 3, RoleInput{Title: "admin", Description: "updated"})
		require.NoError(t, err)
		assert.Equal(t, "admin", data.Title)
		assert.Equal(t, "updated", data.Description)
	})

	t.Run("missing role", func(t *testing.T) {
		uc := NewRoleUsecase(&mockRoleRepository{}, &mockEmployeeCounter{})

		_, err := uc.Update(ctx, 99, RoleInput{Title: "admin", Description: "x"})
		assert.ErrorIs(t, err, ErrRoleNotFound)
	})
}

func TestRoleUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	existing := &entity.Role{RoleID: 5, Title: "hr", Description: "HR staff"}

	t.Run("successful delete", func(t *testing.T) {
		deleted := false
		repo := &mockRoleRepository{
			FindByIDFunc: func(ctx context.Context, roleID int) (*entity.Role, error) {
				return existing, nil
			},
			DeleteFunc: func(ctx context.Context, roleID int) error {
				deleted = true
				return nil
			},
		}
		uc := NewRoleUsecase(repo, &mockEmployeeCounter{})

		require.NoError(t, uc.Delete(ctx, 5))
		assert.True(t, deleted)
	})

	t.Run("refused while employees reference the role", func(t *testing.T) {
		repo := &mockRoleRepository{
			FindByIDFunc: func(ctx context.Context, roleID int) (*entity.Role, error) {
				return existing, nil
			},
			DeleteFunc: func(ctx context.Context, roleID int) error {
				t.Error("delete must not be called")
				return nil
			},
		}
		counter := &mockEmployeeCounter{
			CountByRoleIDFunc: func(ctx context.Context, roleID int) (int64, error) {
				return 2, nil
			},
		}
		uc := NewRoleUsecase(repo, counter)

		err := uc.Delete(ctx, 5)
		assert.ErrorIs(t, err, ErrRoleHasEmployees)
	})

	t.Run("missing role", func(t *testing.T) {
		uc := NewRoleUsecase(&mockRoleRepository{}, &mockEmployeeCounter{})
		assert.ErrorIs(t, uc.Delete(ctx, 404), ErrRoleNotFound)
	})

	t.Run("storage failure wraps", func(t *testing.T) {
		storageErr := errors.New("connection reset")
		repo := &mockRoleRepository{
			FindByIDFunc: func(ctx context.Context, roleID int) (*entity.Role, error) {
				return nil, storageErr
			},
		}
		uc := NewRoleUsecase(repo, &mockEmployeeCounter{})

		assert.ErrorIs(t, uc.Delete(ctx, 5), storageErr)
	})
}
