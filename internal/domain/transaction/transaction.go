package transaction

import (
	"time"

	"github.com/lib/pq"
	"github.com/oklog/ulid/v2"
)

type Transaction struct {
	Id          ulid.ULID      `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID      `gorm:"type:varchar(26);index:idx_transactions_user_id;index:idx_transactions_user_date,priority:1;not null" json:"userId"`
	CategoryId  ulid.ULID      `gorm:"type:varchar(26);index:idx_transactions_category_id;not null" json:"categoryId"`
	Type        Types          `gorm:"type:varchar(10);not null;index:idx_transactions_type" json:"type"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string         `gorm:"type:varchar(255)" json:"description"`
	Date        time.Time      `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2;index:idx_transactions_date" json:"date"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type Types string

const (
	Income  Types = "INCOME"
	Expense Types = "EXPENSE"
)

func (t Types) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	}
	return false
}
