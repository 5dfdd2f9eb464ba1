package category

import (
	"context"
	"errors"
	"strings"

	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository   Repository
	UserService  *user.Service
	Transactions TransactionCounter
}

func NewService(repo Repository, userService *user.Service, transactions TransactionCounter) *Service {
	return &Service{Repository: repo, UserService: userService, Transactions: transactions}
}

// SeedDefaults creates the default category set for a new user. Called
// once at registration.
func (s *Service) SeedDefaults(ctx context.Context, userID ulid.ULID) error {
	defaults := BuildDefaults(userID)
	if err := s.Repository.CreateBatch(ctx, defaults); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, category *Category) error {
	if err := s.ensureUserExists(ctx, category.UserId); err != nil {
		return err
	}

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "is required")
	}

	if err := s.CategoryExists(ctx, category.Name, category.UserId); err != nil {
		return err
	}

	if category.Color == "" {
		category.Color = "#6B7280"
	}

	category.Id = pkg.GenerateULIDObject()
	category.IsDefault = false
	now := pkg.SetTimestamps()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.Repository.Create(ctx, category); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateCategory(ctx context.Context, category *Category) error {
	if err := s.ensureUserExists(ctx, category.UserId); err != nil {
		return err
	}

	existing, err := s.GetCategoryByID(ctx, category.Id, category.UserId)
	if err != nil {
		return err
	}

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "is required")
	}

	if existing.IsDefault && !strings.EqualFold(existing.Name, category.Name) {
		return appErrors.NewValidationError("name", "default categories cannot be renamed")
	}

	if !strings.EqualFold(existing.Name, category.Name) {
		if err := s.CategoryExists(ctx, category.Name, category.UserId); err != nil {
			return err
		}
	}

	existing.Name = category.Name
	if category.Color != "" {
		existing.Color = category.Color
	}
	if category.Icon != "" {
		existing.Icon = category.Icon
	}
	existing.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID) error {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return err
	}

	category, err := s.GetCategoryByID(ctx, categoryID, userID)
	if err != nil {
		return err
	}

	if category.IsDefault {
		return appErrors.NewValidationError("category", "default categories cannot be deleted")
	}

	count, err := s.Transactions.CountByCategory(ctx, categoryID, userID)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if count > 0 {
		return appErrors.NewValidationError("category", "still has transactions; delete or reassign them first")
	}

	if err := s.Repository.Delete(ctx, categoryID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetCategoryByID(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID) (*Category, error) {
	category, err := s.Repository.GetByID(ctx, categoryID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return category, nil
}

func (s *Service) GetAllCategories(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Category, int64, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, 0, err
	}

	categories, total, err := s.Repository.GetAll(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return categories, total, nil
}

// GetAllForUser returns the complete category list without pagination,
// used by the aggregation queries.
func (s *Service) GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*Category, error) {
	categories, err := s.Repository.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return categories, nil
}

func (s *Service) CategoryExists(ctx context.Context, categoryName string, userID ulid.ULID) error {
	trimmedName := strings.TrimSpace(categoryName)
	if trimmedName == "" {
		return appErrors.NewValidationError("name", "is required")
	}

	_, err := s.Repository.GetByName(ctx, trimmedName, userID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}

	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return appErrors.NewConflictError("category")
}

func (s *Service) ensureUserExists(ctx context.Context, userID ulid.ULID) error {
	if err := s.UserService.Exists(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrUserNotFound
		}
		return err
	}
	return nil
}
