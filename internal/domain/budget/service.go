package budget

import (
	"context"
	"errors"

	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository      Repository
	CategoryService *category.Service
	UserService     *user.Service
}

func NewService(repo Repository, categoryService *category.Service, userService *user.Service) *Service {
	return &Service{
		Repository:      repo,
		CategoryService: categoryService,
		UserService:     userService,
	}
}

// CreateBudget adds a spending limit for a category. A user may hold
// at most one budget per category and period; duplicates are rejected
// with a conflict.
func (s *Service) CreateBudget(ctx context.Context, budget *Budget) error {
	if err := s.ensureUserExists(ctx, budget.UserId); err != nil {
		return err
	}

	if budget.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}

	if budget.Period == "" {
		budget.Period = PeriodMonthly
	}
	if !budget.Period.IsValid() {
		return appErrors.NewValidationError("period", "must be MONTHLY or WEEKLY")
	}

	if _, err := s.CategoryService.GetCategoryByID(ctx, budget.CategoryId, budget.UserId); err != nil {
		return err
	}

	existing, err := s.Repository.GetByCategoryAndPeriod(ctx, budget.CategoryId, budget.UserId, budget.Period)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.NewDatabaseError(err)
	}
	if existing != nil {
		return appErrors.NewConflictError("budget")
	}

	budget.Id = pkg.GenerateULIDObject()
	now := pkg.SetTimestamps()
	budget.CreatedAt = now
	budget.UpdatedAt = now
	if budget.StartDate.IsZero() {
		budget.StartDate = now
	}

	if err := s.Repository.Create(ctx, budget); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) UpdateBudget(ctx context.Context, budget *Budget) error {
	stored, err := s.GetBudgetByID(ctx, budget.Id, budget.UserId)
	if err != nil {
		return err
	}

	if budget.Amount < 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}

	if budget.Period != "" && budget.Period != stored.Period {
		if !budget.Period.IsValid() {
			return appErrors.NewValidationError("period", "must be MONTHLY or WEEKLY")
		}

		existing, err := s.Repository.GetByCategoryAndPeriod(ctx, stored.CategoryId, budget.UserId, budget.Period)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.NewDatabaseError(err)
		}
		if existing != nil && existing.Id != stored.Id {
			return appErrors.NewConflictError("budget")
		}
		stored.Period = budget.Period
	}

	if budget.Amount > 0 {
		stored.Amount = budget.Amount
	}
	if !budget.StartDate.IsZero() {
		stored.StartDate = budget.StartDate
	}
	stored.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteBudget(ctx context.Context, budgetID, userID ulid.ULID) error {
	if _, err := s.GetBudgetByID(ctx, budgetID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, budgetID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetBudgetByID(ctx context.Context, budgetID, userID ulid.ULID) (*Budget, error) {
	budget, err := s.Repository.GetByID(ctx, budgetID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrBudgetNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return budget, nil
}

func (s *Service) GetAllBudgets(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Budget, int64, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, 0, err
	}

	budgets, total, err := s.Repository.GetAll(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return budgets, total, nil
}

func (s *Service) GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*Budget, error) {
	budgets, err := s.Repository.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return budgets, nil
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
