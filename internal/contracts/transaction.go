package contracts

import (
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/transaction"
)

type TransactionCreateRequest struct {
	CategoryId  string   `json:"category_id" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount      float64  `json:"amount" binding:"required,gt=0"`
	Description string   `json:"description" binding:"omitempty,max=255"`
	Date        string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Tags        []string `json:"tags" binding:"omitempty,max=10,dive,max=50"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []*transaction.Transaction `json:"transactions"`
	Page         int                        `json:"page"`
	Limit        int                        `json:"limit"`
	Total        int64                      `json:"total"`
	TotalPages   int                        `json:"totalPages"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}

// ParseDate resolves the optional date field, defaulting to now.
func (r *TransactionCreateRequest) ParseDate() (time.Time, error) {
	if r.Date == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", r.Date)
}
