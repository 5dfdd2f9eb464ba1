package budget

import (
	"context"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Budget struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId     ulid.ULID `gorm:"type:varchar(26);index:idx_budgets_user_id;not null;index:idx_budgets_user_category_period,unique,priority:1" json:"userId"`
	CategoryId ulid.ULID `gorm:"type:varchar(26);not null;index:idx_budgets_user_category_period,unique,priority:2" json:"categoryId"`
	Amount     float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period     Period    `gorm:"type:varchar(10);not null;index:idx_budgets_user_category_period,unique,priority:3" json:"period"`
	StartDate  time.Time `gorm:"type:date;not null" json:"startDate"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Budget) TableName() string {
	return "budgets"
}

type Period string

const (
	PeriodMonthly Period = "MONTHLY"
	PeriodWeekly  Period = "WEEKLY"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodMonthly, PeriodWeekly:
		return true
	}
	return false
}

type Repository interface {
	Create(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, budgetID, userID ulid.ULID) error
	GetByID(ctx context.Context, budgetID, userID ulid.ULID) (*Budget, error)
	GetByCategoryAndPeriod(ctx context.Context, categoryID, userID ulid.ULID, period Period) (*Budget, error)
	GetAll(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Budget, int64, error)
	GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*Budget, error)
}
