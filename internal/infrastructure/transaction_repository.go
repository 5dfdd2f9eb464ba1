package infrastructure

import (
	"context"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/transaction"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/lib/pq"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

type transactionDB struct {
	Id          string         `gorm:"type:varchar(26);primaryKey"`
	UserId      string         `gorm:"type:varchar(26);index:idx_transactions_user_id;not null"`
	CategoryId  string         `gorm:"type:varchar(26);index:idx_transactions_category_id;not null"`
	Type        string         `gorm:"type:varchar(10);not null"`
	Amount      float64        `gorm:"type:decimal(15,2);not null"`
	Description string         `gorm:"type:varchar(255)"`
	Date        time.Time      `gorm:"type:date;not null"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;not null"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime;not null"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(tdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	categoryID, err := pkg.ParseULID(tdb.CategoryId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &transaction.Transaction{
		Id:          id,
		UserId:      userID,
		CategoryId:  categoryID,
		Type:        transaction.Types(tdb.Type),
		Amount:      tdb.Amount,
		Description: tdb.Description,
		Date:        tdb.Date,
		Tags:        tdb.Tags,
		CreatedAt:   tdb.CreatedAt,
		UpdatedAt:   tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:          t.Id.String(),
		UserId:      t.UserId.String(),
		CategoryId:  t.CategoryId.String(),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return r.DB.WithContext(ctx).Table("transactions").Create(toDBTransaction(t)).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ?", transactionID.String()).
		Delete(&transactionDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ?", transactionID.String()).
		First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND user_id = ?", transactionID.String(), userID.String()).
		First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions").Where("user_id = ?", userID.String())

	if filters != nil {
		if filters.Type != nil {
			query = query.Where("type = ?", string(*filters.Type))
		}
		if filters.CategoryID != nil {
			query = query.Where("category_id = ?", filters.CategoryID.String())
		}
		if filters.From != nil {
			query = query.Where("date >= ?", *filters.From)
		}
		if filters.To != nil {
			query = query.Where("date <= ?", *filters.To)
		}
	}

	return pkg.Paginate(query, pagination, "date DESC, id DESC", toDomainTransaction)
}

func (r *TransactionRepository) GetAllForUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("user_id = ?", userID.String()).
		Order("date DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TransactionRepository) GetByCategory(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions").
		Where("category_id = ? AND user_id = ?", categoryID.String(), userID.String())
	return pkg.Paginate(query, pagination, "date DESC, id DESC", toDomainTransaction)
}

func (r *TransactionRepository) CountByCategory(ctx context.Context, categoryID ulid.ULID, userID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("category_id = ? AND user_id = ?", categoryID.String(), userID.String()).
		Count(&count).Error
	return count, err
}
