// Package analytics computes the dashboard and insight figures from a
// user's full transaction history. Everything here is pure; the
// service layer feeds it data.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/budget"
	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	"github.com/arpitsharma-bit/peextrap/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

// Insight thresholds, in percent.
const (
	spendingUpThreshold   = 20
	spendingDownThreshold = -10
	dominantCategoryShare = 40
)

type MonthTotals struct {
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Balance      float64 `json:"balance"`
	IncomeCount  int     `json:"incomeCount"`
	ExpenseCount int     `json:"expenseCount"`
}

type CategoryTotal struct {
	CategoryId ulid.ULID `json:"categoryId"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	Icon       string    `json:"icon"`
	Total      float64   `json:"total"`
	Percentage float64   `json:"percentage"`
}

type MonthComparison struct {
	CurrentExpenses  float64 `json:"currentExpenses"`
	PreviousExpenses float64 `json:"previousExpenses"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
}

type BudgetStatus struct {
	BudgetId     ulid.ULID     `json:"budgetId"`
	CategoryId   ulid.ULID     `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	Amount       float64       `json:"amount"`
	Spent        float64       `json:"spent"`
	Remaining    float64       `json:"remaining"`
	Percentage   float64       `json:"percentage"`
	OverBudget   bool          `json:"overBudget"`
	Period       budget.Period `json:"period"`
}

type Insight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type TrendPoint struct {
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// FilterByMonth keeps the transactions dated inside the given calendar
// month.
func FilterByMonth(txs []*transaction.Transaction, month time.Month, year int) []*transaction.Transaction {
	out := make([]*transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.Month() == month && tx.Date.Year() == year {
			out = append(out, tx)
		}
	}
	return out
}

// Totals sums income and expenses over the given transactions.
func Totals(txs []*transaction.Transaction) MonthTotals {
	var t MonthTotals
	for _, tx := range txs {
		switch tx.Type {
		case transaction.Income:
			t.Income += tx.Amount
			t.IncomeCount++
		case transaction.Expense:
			t.Expenses += tx.Amount
			t.ExpenseCount++
		}
	}
	t.Balance = t.Income - t.Expenses
	return t
}

// TopCategories ranks expense categories by spend for the month,
// dropping empty ones and keeping the top n. Percentage is the share
// of total monthly expenses.
func TopCategories(txs []*transaction.Transaction, cats []*category.Category, month time.Month, year int, n int) []CategoryTotal {
	monthTxs := FilterByMonth(txs, month, year)

	spent := make(map[ulid.ULID]float64)
	var totalExpenses float64
	for _, tx := range monthTxs {
		if tx.Type != transaction.Expense {
			continue
		}
		spent[tx.CategoryId] += tx.Amount
		totalExpenses += tx.Amount
	}

	out := make([]CategoryTotal, 0, len(cats))
	for _, cat := range cats {
		total := spent[cat.Id]
		if total <= 0 {
			continue
		}
		ct := CategoryTotal{
			CategoryId: cat.Id,
			Name:       cat.Name,
			Color:      cat.Color,
			Icon:       cat.Icon,
			Total:      total,
		}
		if totalExpenses > 0 {
			ct.Percentage = total / totalExpenses * 100
		}
		out = append(out, ct)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// CompareMonths contrasts this month's expenses with the previous
// month's. ChangePercent is zero when there was nothing to compare
// against.
func CompareMonths(txs []*transaction.Transaction, month time.Month, year int) MonthComparison {
	current := Totals(FilterByMonth(txs, month, year)).Expenses

	prevMonth, prevYear := previousMonth(month, year)
	previous := Totals(FilterByMonth(txs, prevMonth, prevYear)).Expenses

	c := MonthComparison{
		CurrentExpenses:  current,
		PreviousExpenses: previous,
		Change:           current - previous,
	}
	if previous != 0 {
		c.ChangePercent = (current - previous) / previous * 100
	}
	return c
}

// BudgetProgress reports how much of each budget the month's expenses
// consumed.
func BudgetProgress(txs []*transaction.Transaction, budgets []*budget.Budget, cats []*category.Category, month time.Month, year int) []BudgetStatus {
	monthTxs := FilterByMonth(txs, month, year)

	spent := make(map[ulid.ULID]float64)
	for _, tx := range monthTxs {
		if tx.Type == transaction.Expense {
			spent[tx.CategoryId] += tx.Amount
		}
	}

	names := make(map[ulid.ULID]*category.Category, len(cats))
	for _, cat := range cats {
		names[cat.Id] = cat
	}

	out := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		status := BudgetStatus{
			BudgetId:   b.Id,
			CategoryId: b.CategoryId,
			Amount:     b.Amount,
			Spent:      spent[b.CategoryId],
			Period:     b.Period,
		}
		status.Remaining = b.Amount - status.Spent
		if b.Amount > 0 {
			status.Percentage = status.Spent / b.Amount * 100
		}
		status.OverBudget = status.Spent > b.Amount
		if cat, ok := names[b.CategoryId]; ok {
			status.CategoryName = cat.Name
		}
		out = append(out, status)
	}
	return out
}

// Insights derives the spending callouts shown on the analytics page.
func Insights(txs []*transaction.Transaction, cats []*category.Category, month time.Month, year int) []Insight {
	var out []Insight

	comparison := CompareMonths(txs, month, year)
	if comparison.ChangePercent > spendingUpThreshold {
		out = append(out, Insight{
			Type:    "warning",
			Title:   "Spending increased",
			Message: fmt.Sprintf("Your expenses are up %.0f%% compared to last month.", comparison.ChangePercent),
		})
	} else if comparison.ChangePercent < spendingDownThreshold {
		out = append(out, Insight{
			Type:    "success",
			Title:   "Spending decreased",
			Message: fmt.Sprintf("Your expenses are down %.0f%% compared to last month. Keep it up!", -comparison.ChangePercent),
		})
	}

	top := TopCategories(txs, cats, month, year, 1)
	if len(top) > 0 && top[0].Percentage > dominantCategoryShare {
		out = append(out, Insight{
			Type:    "info",
			Title:   "Top spending category",
			Message: fmt.Sprintf("%s accounts for %.0f%% of your expenses this month.", top[0].Name, top[0].Percentage),
		})
	}

	return out
}

// MonthlyTrend returns per-month totals for the given month and the
// months-1 before it, oldest first.
func MonthlyTrend(txs []*transaction.Transaction, month time.Month, year int, months int) []TrendPoint {
	out := make([]TrendPoint, 0, months)

	m, y := month, year
	for i := 0; i < months; i++ {
		totals := Totals(FilterByMonth(txs, m, y))
		out = append(out, TrendPoint{
			Month:    int(m),
			Year:     y,
			Label:    time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			Income:   totals.Income,
			Expenses: totals.Expenses,
		})
		m, y = previousMonth(m, y)
	}

	// Walked backwards; flip to chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func previousMonth(month time.Month, year int) (time.Month, int) {
	if month == time.January {
		return time.December, year - 1
	}
	return month - 1, year
}
