package budget_test

import (
	"context"
	"testing"

	"github.com/arpitsharma-bit/peextrap/internal/domain/budget"
	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeBudgetRepository struct {
	created              []*budget.Budget
	createFn             func(ctx context.Context, b *budget.Budget) error
	updateFn             func(ctx context.Context, b *budget.Budget) error
	getByIDFn            func(ctx context.Context, budgetID, userID ulid.ULID) (*budget.Budget, error)
	getByCategoryPeriodFn  func(ctx context.Context, categoryID, userID ulid.ULID, period budget.Period) (*budget.Budget, error)
}

func (f *fakeBudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, b)
	}
	return nil
}

func (f *fakeBudgetRepository) Delete(ctx context.Context, budgetID, userID ulid.ULID) error {
	return nil
}

func (f *fakeBudgetRepository) GetByID(ctx context.Context, budgetID, userID ulid.ULID) (*budget.Budget, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, budgetID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBudgetRepository) GetByCategoryAndPeriod(ctx context.Context, categoryID, userID ulid.ULID, period budget.Period) (*budget.Budget, error) {
	if f.getByCategoryPeriodFn != nil {
		return f.getByCategoryPeriodFn(ctx, categoryID, userID, period)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBudgetRepository) GetAll(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*budget.Budget, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeBudgetRepository) GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	return f.created, nil
}

type fakeUserRepository struct{}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }
func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	return &user.User{Id: id}, nil
}
func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}

type fakeCategoryRepository struct{}

func (f *fakeCategoryRepository) Create(ctx context.Context, c *category.Category) error { return nil }
func (f *fakeCategoryRepository) CreateBatch(ctx context.Context, cs []*category.Category) error {
	return nil
}
func (f *fakeCategoryRepository) Update(ctx context.Context, c *category.Category) error { return nil }
func (f *fakeCategoryRepository) Delete(ctx context.Context, categoryID, userID ulid.ULID) error {
	return nil
}
func (f *fakeCategoryRepository) GetByID(ctx context.Context, categoryID, userID ulid.ULID) (*category.Category, error) {
	return &category.Category{Id: categoryID, UserId: userID}, nil
}
func (f *fakeCategoryRepository) GetByName(ctx context.Context, name string, userID ulid.ULID) (*category.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCategoryRepository) GetAll(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*category.Category, int64, error) {
	return nil, 0, nil
}
func (f *fakeCategoryRepository) GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*category.Category, error) {
	return nil, nil
}

type fakeTransactionCounter struct{}

func (f *fakeTransactionCounter) CountByCategory(ctx context.Context, categoryID, userID ulid.ULID) (int64, error) {
	return 0, nil
}

func newTestService(repo *fakeBudgetRepository) *budget.Service {
	userSvc := user.NewService(&fakeUserRepository{})
	categorySvc := category.NewService(&fakeCategoryRepository{}, userSvc, &fakeTransactionCounter{})
	return budget.NewService(repo, categorySvc, userSvc)
}

func TestCreateBudget(t *testing.T) {
	t.Parallel()

	repo := &fakeBudgetRepository{}
	svc := newTestService(repo)

	b := &budget.Budget{
		UserId:     pkg.GenerateULIDObject(),
		CategoryId: pkg.GenerateULIDObject(),
		Amount:     500,
	}

	if err := svc.CreateBudget(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Period != budget.PeriodMonthly {
		t.Fatalf("expected monthly default, got %s", b.Period)
	}
	if pkg.IsEmptyULID(b.Id) {
		t.Fatal("expected an id to be assigned")
	}
	if b.StartDate.IsZero() {
		t.Fatal("expected the start date to default to now")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one stored budget, got %d", len(repo.created))
	}
}

func TestCreateBudgetValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    *budget.Budget
	}{
		{
			name: "zero amount",
			b: &budget.Budget{
				UserId:     pkg.GenerateULIDObject(),
				CategoryId: pkg.GenerateULIDObject(),
				Amount:     0,
			},
		},
		{
			name: "bad period",
			b: &budget.Budget{
				UserId:     pkg.GenerateULIDObject(),
				CategoryId: pkg.GenerateULIDObject(),
				Amount:     100,
				Period:     "YEARLY",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(&fakeBudgetRepository{})

			err := svc.CreateBudget(context.Background(), tt.b)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestCreateBudgetDuplicateConflicts(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	categoryID := pkg.GenerateULIDObject()

	repo := &fakeBudgetRepository{
		getByCategoryPeriodFn: func(ctx context.Context, catID, uID ulid.ULID, period budget.Period) (*budget.Budget, error) {
			if catID == categoryID && period == budget.PeriodMonthly {
				return &budget.Budget{Id: pkg.GenerateULIDObject(), CategoryId: catID, UserId: uID}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestService(repo)

	err := svc.CreateBudget(context.Background(), &budget.Budget{
		UserId:     userID,
		CategoryId: categoryID,
		Amount:     300,
		Period:     budget.PeriodMonthly,
	})

	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "CONFLICT" {
		t.Fatalf("expected a conflict, got %v", err)
	}

	// A different period for the same category is allowed.
	err = svc.CreateBudget(context.Background(), &budget.Budget{
		UserId:     userID,
		CategoryId: categoryID,
		Amount:     300,
		Period:     budget.PeriodWeekly,
	})
	if err != nil {
		t.Fatalf("weekly budget should not conflict: %v", err)
	}
}

func TestUpdateBudgetNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeBudgetRepository{})

	err := svc.UpdateBudget(context.Background(), &budget.Budget{
		Id:     pkg.GenerateULIDObject(),
		UserId: pkg.GenerateULIDObject(),
		Amount: 100,
	})

	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrBudgetNotFound.Code {
		t.Fatalf("expected budget not found, got %v", err)
	}
}

func TestUpdateBudgetAmount(t *testing.T) {
	t.Parallel()

	budgetID := pkg.GenerateULIDObject()
	userID := pkg.GenerateULIDObject()

	var updated *budget.Budget
	repo := &fakeBudgetRepository{
		getByIDFn: func(ctx context.Context, bID, uID ulid.ULID) (*budget.Budget, error) {
			return &budget.Budget{Id: bID, UserId: uID, Amount: 100, Period: budget.PeriodMonthly}, nil
		},
		updateFn: func(ctx context.Context, b *budget.Budget) error {
			updated = b
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.UpdateBudget(context.Background(), &budget.Budget{
		Id:     budgetID,
		UserId: userID,
		Amount: 250,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated == nil || updated.Amount != 250 {
		t.Fatalf("expected amount updated to 250, got %+v", updated)
	}
	if updated.Period != budget.PeriodMonthly {
		t.Fatalf("period should be unchanged, got %s", updated.Period)
	}
}
