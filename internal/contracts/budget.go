package contracts

import "github.com/arpitsharma-bit/peextrap/internal/domain/budget"

type BudgetCreateRequest struct {
	CategoryId string  `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Period     string  `json:"period" binding:"omitempty,oneof=MONTHLY WEEKLY"`
	StartDate  string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

type BudgetUpdateRequest struct {
	Amount    *float64 `json:"amount" binding:"omitempty,gt=0"`
	Period    *string  `json:"period" binding:"omitempty,oneof=MONTHLY WEEKLY"`
	StartDate *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

type BudgetCreateResponse struct {
	Message string         `json:"message"`
	Budget  *budget.Budget `json:"budget"`
}

type BudgetListResponse struct {
	Budgets []*budget.Budget `json:"budgets"`
	Total   int64            `json:"total"`
}

type BudgetSingleResponse struct {
	Budget *budget.Budget `json:"budget"`
}
