package transaction

import (
	"context"
	"errors"
	"strings"

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

// CreateTransaction records an income or expense. Transactions are
// immutable once created; corrections go through delete and re-create.
func (s *Service) CreateTransaction(ctx context.Context, transaction *Transaction) error {
	if err := s.ensureUserExists(ctx, transaction.UserId); err != nil {
		return err
	}

	if !transaction.Type.IsValid() {
		return appErrors.NewValidationError("type", "must be INCOME or EXPENSE")
	}

	if transaction.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}

	if _, err := s.CategoryService.GetCategoryByID(ctx, transaction.CategoryId, transaction.UserId); err != nil {
		return err
	}

	transaction.Description = strings.TrimSpace(transaction.Description)

	transaction.Id = pkg.GenerateULIDObject()
	now := pkg.SetTimestamps()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	if transaction.Date.IsZero() {
		transaction.Date = now
	}

	if err := s.Repository.Create(ctx, transaction); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID ulid.ULID, userID ulid.ULID) error {
	if _, err := s.GetTransactionByID(ctx, transactionID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, transactionID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID ulid.ULID, userID ulid.ULID) (*Transaction, error) {
	transaction, err := s.Repository.GetByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return transaction, nil
}

func (s *Service) GetAllTransactions(ctx context.Context, userID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	if filters != nil && filters.Type != nil && !filters.Type.IsValid() {
		return nil, 0, appErrors.NewValidationError("type", "must be INCOME or EXPENSE")
	}

	transactions, total, err := s.Repository.GetAll(ctx, userID, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

// GetAllForUser returns every transaction for a user, newest first,
// without pagination. The aggregation endpoints work on the full set.
func (s *Service) GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*Transaction, error) {
	transactions, err := s.Repository.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return transactions, nil
}

func (s *Service) GetTransactionsByCategory(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	if _, err := s.CategoryService.GetCategoryByID(ctx, categoryID, userID); err != nil {
		return nil, 0, err
	}

	transactions, total, err := s.Repository.GetByCategory(ctx, categoryID, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
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
