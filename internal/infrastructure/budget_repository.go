package infrastructure

import (
	"context"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/budget"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{DB: db}
}

type budgetDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	UserId     string    `gorm:"type:varchar(26);index:idx_budgets_user_id;not null"`
	CategoryId string    `gorm:"type:varchar(26);not null"`
	Amount     float64   `gorm:"type:decimal(15,2);not null"`
	Period     string    `gorm:"type:varchar(10);not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null"`
}

func (budgetDB) TableName() string {
	return "budgets"
}

func toDomainBudget(bdb *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(bdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	categoryID, err := pkg.ParseULID(bdb.CategoryId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &budget.Budget{
		Id:         id,
		UserId:     userID,
		CategoryId: categoryID,
		Amount:     bdb.Amount,
		Period:     budget.Period(bdb.Period),
		StartDate:  bdb.StartDate,
		CreatedAt:  bdb.CreatedAt,
		UpdatedAt:  bdb.UpdatedAt,
	}, nil
}

func toDBBudget(b *budget.Budget) *budgetDB {
	return &budgetDB{
		Id:         b.Id.String(),
		UserId:     b.UserId.String(),
		CategoryId: b.CategoryId.String(),
		Amount:     b.Amount,
		Period:     string(b.Period),
		StartDate:  b.StartDate,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	return r.DB.WithContext(ctx).Table("budgets").Create(toDBBudget(b)).Error
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	bdb := toDBBudget(b)
	return r.DB.WithContext(ctx).Table("budgets").Where("id = ? AND user_id = ?", bdb.Id, bdb.UserId).Updates(bdb).Error
}

func (r *BudgetRepository) Delete(ctx context.Context, budgetID, userID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("budgets").
		Where("id = ? AND user_id = ?", budgetID.String(), userID.String()).
		Delete(&budgetDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, budgetID, userID ulid.ULID) (*budget.Budget, error) {
	var bdb budgetDB
	err := r.DB.WithContext(ctx).Table("budgets").
		Where("id = ? AND user_id = ?", budgetID.String(), userID.String()).
		First(&bdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) GetByCategoryAndPeriod(ctx context.Context, categoryID, userID ulid.ULID, period budget.Period) (*budget.Budget, error) {
	var bdb budgetDB
	err := r.DB.WithContext(ctx).Table("budgets").
		Where("category_id = ? AND user_id = ? AND period = ?", categoryID.String(), userID.String(), string(period)).
		First(&bdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) GetAll(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*budget.Budget, int64, error) {
	query := r.DB.WithContext(ctx).Table("budgets").Where("user_id = ?", userID.String())
	return pkg.Paginate(query, pagination, "created_at DESC", toDomainBudget)
}

func (r *BudgetRepository) GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	var rows []budgetDB
	err := r.DB.WithContext(ctx).Table("budgets").
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*budget.Budget, 0, len(rows))
	for i := range rows {
		b, err := toDomainBudget(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
