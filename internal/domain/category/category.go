package category

import (
	"context"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Category struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId    ulid.ULID `gorm:"type:varchar(26);index:idx_categories_user_id;not null;index:idx_categories_user_name,unique,priority:1" json:"userId"`
	Name      string    `gorm:"type:varchar(100);not null;index:idx_categories_user_name,unique,priority:2" json:"name"`
	Color     string    `gorm:"type:varchar(7);not null" json:"color"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon"`
	IsDefault bool      `gorm:"not null;default:false" json:"isDefault"`
	IsIncome  bool      `gorm:"not null;default:false" json:"isIncome"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

// TransactionCounter reports how many transactions still reference a
// category. Satisfied by the transaction repository; declared here to
// keep the dependency pointing this way.
type TransactionCounter interface {
	CountByCategory(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID) (int64, error)
}

type Repository interface {
	Create(ctx context.Context, category *Category) error
	CreateBatch(ctx context.Context, categories []*Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID) error
	GetByID(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID) (*Category, error)
	GetByName(ctx context.Context, categoryName string, userID ulid.ULID) (*Category, error)
	GetAll(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Category, int64, error)
	GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*Category, error)
}
