package analytics

import (
	"context"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/budget"
	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	"github.com/arpitsharma-bit/peextrap/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

const (
	trendMonths         = 6
	dashboardTopN       = 5
	analyticsTopN       = 5
	comparisonTopN      = 3
	recentTransactionsN = 5
)

type Service struct {
	TransactionService *transaction.Service
	CategoryService    *category.Service
	BudgetService      *budget.Service
}

func NewService(transactionService *transaction.Service, categoryService *category.Service, budgetService *budget.Service) *Service {
	return &Service{
		TransactionService: transactionService,
		CategoryService:    categoryService,
		BudgetService:      budgetService,
	}
}

type Dashboard struct {
	Totals        MonthTotals                `json:"totals"`
	Trend         []TrendPoint               `json:"trend"`
	TopCategories []CategoryTotal            `json:"topCategories"`
	Recent        []*transaction.Transaction `json:"recentTransactions"`
	Comparison    MonthComparison            `json:"comparison"`
	Budgets       []BudgetStatus             `json:"budgets"`
}

type Report struct {
	Totals        MonthTotals     `json:"totals"`
	Insights      []Insight       `json:"insights"`
	TopCategories []CategoryTotal `json:"topCategories"`
	Comparison    MonthComparison `json:"comparison"`
	ComparisonTop []CategoryTotal `json:"comparisonTopCategories"`
}

// GetDashboard assembles the overview for one calendar month. The full
// transaction history is loaded once and every figure is derived from
// that single snapshot, so the numbers on the page always agree.
func (s *Service) GetDashboard(ctx context.Context, userID ulid.ULID, month time.Month, year int) (*Dashboard, error) {
	txs, cats, budgets, err := s.loadUserData(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthTxs := FilterByMonth(txs, month, year)

	recent := monthTxs
	if len(recent) > recentTransactionsN {
		recent = recent[:recentTransactionsN]
	}

	return &Dashboard{
		Totals:        Totals(monthTxs),
		Trend:         MonthlyTrend(txs, month, year, trendMonths),
		TopCategories: TopCategories(txs, cats, month, year, dashboardTopN),
		Recent:        recent,
		Comparison:    CompareMonths(txs, month, year),
		Budgets:       BudgetProgress(txs, budgets, cats, month, year),
	}, nil
}

// GetReport assembles the analytics page for one calendar month.
func (s *Service) GetReport(ctx context.Context, userID ulid.ULID, month time.Month, year int) (*Report, error) {
	txs, cats, _, err := s.loadUserData(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthTxs := FilterByMonth(txs, month, year)

	return &Report{
		Totals:        Totals(monthTxs),
		Insights:      Insights(txs, cats, month, year),
		TopCategories: TopCategories(txs, cats, month, year, analyticsTopN),
		Comparison:    CompareMonths(txs, month, year),
		ComparisonTop: TopCategories(txs, cats, month, year, comparisonTopN),
	}, nil
}

func (s *Service) loadUserData(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, []*category.Category, []*budget.Budget, error) {
	txs, err := s.TransactionService.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	cats, err := s.CategoryService.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	budgets, err := s.BudgetService.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	return txs, cats, budgets, nil
}
