package analytics_test

import (
	"math"
	"testing"
	"time"

	"github.com/arpitsharma-bit/peextrap/internal/domain/analytics"
	"github.com/arpitsharma-bit/peextrap/internal/domain/budget"
	"github.com/arpitsharma-bit/peextrap/internal/domain/category"
	"github.com/arpitsharma-bit/peextrap/internal/domain/transaction"
	"github.com/arpitsharma-bit/peextrap/internal/pkg"

	"github.com/oklog/ulid/v2"
)

func newCategory(name string) *category.Category {
	return &category.Category{
		Id:    pkg.GenerateULIDObject(),
		Name:  name,
		Color: "#3B82F6",
	}
}

func tx(categoryID ulid.ULID, typ transaction.Types, amount float64, year int, month time.Month, day int) *transaction.Transaction {
	return &transaction.Transaction{
		Id:         pkg.GenerateULIDObject(),
		CategoryId: categoryID,
		Type:       typ,
		Amount:     amount,
		Date:       time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFilterByMonth(t *testing.T) {
	t.Parallel()

	cat := newCategory("Food & Dining")
	txs := []*transaction.Transaction{
		tx(cat.Id, transaction.Expense, 10, 2024, time.March, 1),
		tx(cat.Id, transaction.Expense, 20, 2024, time.March, 31),
		tx(cat.Id, transaction.Expense, 30, 2024, time.February, 29),
		tx(cat.Id, transaction.Expense, 40, 2023, time.March, 15),
	}

	got := analytics.FilterByMonth(txs, time.March, 2024)
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions in March 2024, got %d", len(got))
	}
}

func TestTotals(t *testing.T) {
	t.Parallel()

	cat := newCategory("Income")
	txs := []*transaction.Transaction{
		tx(cat.Id, transaction.Income, 5000, 2024, time.March, 1),
		tx(cat.Id, transaction.Expense, 1200, 2024, time.March, 5),
		tx(cat.Id, transaction.Expense, 800, 2024, time.March, 12),
	}

	totals := analytics.Totals(txs)
	if totals.Income != 5000 {
		t.Fatalf("expected income 5000, got %v", totals.Income)
	}
	if totals.Expenses != 2000 {
		t.Fatalf("expected expenses 2000, got %v", totals.Expenses)
	}
	if totals.Balance != 3000 {
		t.Fatalf("expected balance 3000, got %v", totals.Balance)
	}
	if totals.IncomeCount != 1 || totals.ExpenseCount != 2 {
		t.Fatalf("unexpected counts: %d income, %d expense", totals.IncomeCount, totals.ExpenseCount)
	}
}

func TestTotalsEmpty(t *testing.T) {
	t.Parallel()

	totals := analytics.Totals(nil)
	if totals.Income != 0 || totals.Expenses != 0 || totals.Balance != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestTopCategories(t *testing.T) {
	t.Parallel()

	food := newCategory("Food & Dining")
	transport := newCategory("Transportation")
	fun := newCategory("Entertainment")
	unused := newCategory("Health")
	cats := []*category.Category{food, transport, fun, unused}

	txs := []*transaction.Transaction{
		tx(food.Id, transaction.Expense, 600, 2024, time.March, 2),
		tx(transport.Id, transaction.Expense, 300, 2024, time.March, 8),
		tx(fun.Id, transaction.Expense, 100, 2024, time.March, 20),
		// Income never counts toward category spend.
		tx(food.Id, transaction.Income, 5000, 2024, time.March, 1),
		// A different month never counts.
		tx(unused.Id, transaction.Expense, 999, 2024, time.February, 10),
	}

	got := analytics.TopCategories(txs, cats, time.March, 2024, 5)

	if len(got) != 3 {
		t.Fatalf("expected 3 categories with spend, got %d", len(got))
	}
	if got[0].Name != "Food & Dining" || got[0].Total != 600 {
		t.Fatalf("expected Food & Dining at 600 first, got %s at %v", got[0].Name, got[0].Total)
	}
	if got[1].Name != "Transportation" || got[2].Name != "Entertainment" {
		t.Fatalf("unexpected ordering: %s, %s", got[1].Name, got[2].Name)
	}
	if !almostEqual(got[0].Percentage, 60) {
		t.Fatalf("expected 60%% share for top category, got %v", got[0].Percentage)
	}
}

func TestTopCategoriesLimit(t *testing.T) {
	t.Parallel()

	cats := make([]*category.Category, 0, 6)
	txs := make([]*transaction.Transaction, 0, 6)
	for i := 0; i < 6; i++ {
		cat := newCategory("Category")
		cats = append(cats, cat)
		txs = append(txs, tx(cat.Id, transaction.Expense, float64(100+i), 2024, time.March, 3))
	}

	got := analytics.TopCategories(txs, cats, time.March, 2024, 3)
	if len(got) != 3 {
		t.Fatalf("expected top list capped at 3, got %d", len(got))
	}
	if got[0].Total != 105 {
		t.Fatalf("expected largest spend first, got %v", got[0].Total)
	}
}

func TestTopCategoriesTiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	food := newCategory("Food & Dining")
	transport := newCategory("Transportation")
	fun := newCategory("Entertainment")
	cats := []*category.Category{food, transport, fun}

	// Equal spend across all three; ranking falls back to the order the
	// categories were supplied in.
	txs := []*transaction.Transaction{
		tx(fun.Id, transaction.Expense, 100, 2024, time.March, 4),
		tx(transport.Id, transaction.Expense, 100, 2024, time.March, 9),
		tx(food.Id, transaction.Expense, 100, 2024, time.March, 17),
	}

	got := analytics.TopCategories(txs, cats, time.March, 2024, 5)
	if len(got) != 3 {
		t.Fatalf("expected 3 tied categories, got %d", len(got))
	}
	want := []string{"Food & Dining", "Transportation", "Entertainment"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("tie broke input order at %d: got %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestCompareMonths(t *testing.T) {
	t.Parallel()

	cat := newCategory("Shopping")

	tests := []struct {
		name        string
		txs         []*transaction.Transaction
		wantCurrent float64
		wantPrev    float64
		wantPercent float64
	}{
		{
			name: "increase",
			txs: []*transaction.Transaction{
				tx(cat.Id, transaction.Expense, 150, 2024, time.March, 10),
				tx(cat.Id, transaction.Expense, 100, 2024, time.February, 10),
			},
			wantCurrent: 150,
			wantPrev:    100,
			wantPercent: 50,
		},
		{
			name: "decrease",
			txs: []*transaction.Transaction{
				tx(cat.Id, transaction.Expense, 50, 2024, time.March, 10),
				tx(cat.Id, transaction.Expense, 200, 2024, time.February, 10),
			},
			wantCurrent: 50,
			wantPrev:    200,
			wantPercent: -75,
		},
		{
			name: "no previous month data reports zero percent",
			txs: []*transaction.Transaction{
				tx(cat.Id, transaction.Expense, 500, 2024, time.March, 10),
			},
			wantCurrent: 500,
			wantPrev:    0,
			wantPercent: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := analytics.CompareMonths(tt.txs, time.March, 2024)
			if got.CurrentExpenses != tt.wantCurrent {
				t.Fatalf("current: expected %v, got %v", tt.wantCurrent, got.CurrentExpenses)
			}
			if got.PreviousExpenses != tt.wantPrev {
				t.Fatalf("previous: expected %v, got %v", tt.wantPrev, got.PreviousExpenses)
			}
			if !almostEqual(got.ChangePercent, tt.wantPercent) {
				t.Fatalf("percent: expected %v, got %v", tt.wantPercent, got.ChangePercent)
			}
		})
	}
}

func TestCompareMonthsJanuaryLooksAtPriorDecember(t *testing.T) {
	t.Parallel()

	cat := newCategory("Utilities")
	txs := []*transaction.Transaction{
		tx(cat.Id, transaction.Expense, 100, 2024, time.January, 5),
		tx(cat.Id, transaction.Expense, 200, 2023, time.December, 20),
	}

	got := analytics.CompareMonths(txs, time.January, 2024)
	if got.PreviousExpenses != 200 {
		t.Fatalf("expected December 2023 expenses 200, got %v", got.PreviousExpenses)
	}
	if !almostEqual(got.ChangePercent, -50) {
		t.Fatalf("expected -50%%, got %v", got.ChangePercent)
	}
}

func TestBudgetProgress(t *testing.T) {
	t.Parallel()

	food := newCategory("Food & Dining")
	fun := newCategory("Entertainment")
	cats := []*category.Category{food, fun}

	budgets := []*budget.Budget{
		{Id: pkg.GenerateULIDObject(), CategoryId: food.Id, Amount: 500, Period: budget.PeriodMonthly},
		{Id: pkg.GenerateULIDObject(), CategoryId: fun.Id, Amount: 100, Period: budget.PeriodMonthly},
	}

	txs := []*transaction.Transaction{
		tx(food.Id, transaction.Expense, 200, 2024, time.March, 3),
		tx(food.Id, transaction.Expense, 50, 2024, time.March, 18),
		tx(fun.Id, transaction.Expense, 150, 2024, time.March, 9),
	}

	got := analytics.BudgetProgress(txs, budgets, cats, time.March, 2024)
	if len(got) != 2 {
		t.Fatalf("expected 2 budget statuses, got %d", len(got))
	}

	if got[0].Spent != 250 || got[0].Remaining != 250 || !almostEqual(got[0].Percentage, 50) {
		t.Fatalf("food budget: spent %v remaining %v pct %v", got[0].Spent, got[0].Remaining, got[0].Percentage)
	}
	if got[0].OverBudget {
		t.Fatal("food budget should not be over")
	}

	if !got[1].OverBudget {
		t.Fatal("entertainment budget should be over")
	}
	if got[1].Remaining != -50 {
		t.Fatalf("expected remaining -50, got %v", got[1].Remaining)
	}
	if got[1].CategoryName != "Entertainment" {
		t.Fatalf("expected category name resolved, got %q", got[1].CategoryName)
	}
}

func TestBudgetProgressZeroAmount(t *testing.T) {
	t.Parallel()

	cat := newCategory("Other")
	budgets := []*budget.Budget{
		{Id: pkg.GenerateULIDObject(), CategoryId: cat.Id, Amount: 0},
	}
	txs := []*transaction.Transaction{
		tx(cat.Id, transaction.Expense, 10, 2024, time.March, 1),
	}

	got := analytics.BudgetProgress(txs, budgets, []*category.Category{cat}, time.March, 2024)
	if got[0].Percentage != 0 {
		t.Fatalf("expected zero percentage for zero budget, got %v", got[0].Percentage)
	}
}

func TestInsights(t *testing.T) {
	t.Parallel()

	food := newCategory("Food & Dining")
	other := newCategory("Other")
	cats := []*category.Category{food, other}

	t.Run("spending up more than 20 percent warns", func(t *testing.T) {
		t.Parallel()

		txs := []*transaction.Transaction{
			tx(food.Id, transaction.Expense, 130, 2024, time.March, 5),
			tx(other.Id, transaction.Expense, 130, 2024, time.March, 6),
			tx(food.Id, transaction.Expense, 200, 2024, time.February, 5),
		}

		got := analytics.Insights(txs, cats, time.March, 2024)
		if len(got) == 0 || got[0].Type != "warning" {
			t.Fatalf("expected a warning insight, got %+v", got)
		}
	})

	t.Run("spending down more than 10 percent celebrates", func(t *testing.T) {
		t.Parallel()

		txs := []*transaction.Transaction{
			tx(food.Id, transaction.Expense, 40, 2024, time.March, 5),
			tx(other.Id, transaction.Expense, 40, 2024, time.March, 6),
			tx(food.Id, transaction.Expense, 200, 2024, time.February, 5),
		}

		got := analytics.Insights(txs, cats, time.March, 2024)
		if len(got) == 0 || got[0].Type != "success" {
			t.Fatalf("expected a success insight, got %+v", got)
		}
	})

	t.Run("dominant category noted", func(t *testing.T) {
		t.Parallel()

		txs := []*transaction.Transaction{
			tx(food.Id, transaction.Expense, 90, 2024, time.March, 5),
			tx(other.Id, transaction.Expense, 10, 2024, time.March, 6),
			tx(food.Id, transaction.Expense, 100, 2024, time.February, 5),
		}

		got := analytics.Insights(txs, cats, time.March, 2024)

		var foundInfo bool
		for _, insight := range got {
			if insight.Type == "info" {
				foundInfo = true
			}
		}
		if !foundInfo {
			t.Fatalf("expected an info insight about the dominant category, got %+v", got)
		}
	})

	t.Run("steady month yields nothing", func(t *testing.T) {
		t.Parallel()

		third := newCategory("Utilities")
		txs := []*transaction.Transaction{
			tx(food.Id, transaction.Expense, 35, 2024, time.March, 5),
			tx(other.Id, transaction.Expense, 35, 2024, time.March, 6),
			tx(third.Id, transaction.Expense, 30, 2024, time.March, 7),
			tx(food.Id, transaction.Expense, 100, 2024, time.February, 5),
		}

		got := analytics.Insights(txs, append(cats, third), time.March, 2024)
		if len(got) != 0 {
			t.Fatalf("expected no insights, got %+v", got)
		}
	})
}

func TestMonthlyTrend(t *testing.T) {
	t.Parallel()

	cat := newCategory("Income")
	txs := []*transaction.Transaction{
		tx(cat.Id, transaction.Income, 1000, 2024, time.March, 1),
		tx(cat.Id, transaction.Expense, 400, 2024, time.March, 10),
		tx(cat.Id, transaction.Expense, 300, 2024, time.January, 10),
		tx(cat.Id, transaction.Expense, 100, 2023, time.October, 10),
		// Outside the six month window.
		tx(cat.Id, transaction.Expense, 999, 2023, time.August, 10),
	}

	got := analytics.MonthlyTrend(txs, time.March, 2024, 6)
	if len(got) != 6 {
		t.Fatalf("expected 6 points, got %d", len(got))
	}

	if got[0].Month != int(time.October) || got[0].Year != 2023 {
		t.Fatalf("expected October 2023 first, got %d/%d", got[0].Month, got[0].Year)
	}
	if got[5].Month != int(time.March) || got[5].Year != 2024 {
		t.Fatalf("expected March 2024 last, got %d/%d", got[5].Month, got[5].Year)
	}

	if got[0].Expenses != 100 {
		t.Fatalf("October 2023 expenses: expected 100, got %v", got[0].Expenses)
	}
	if got[5].Income != 1000 || got[5].Expenses != 400 {
		t.Fatalf("March 2024 totals wrong: %+v", got[5])
	}
	if got[1].Income != 0 || got[1].Expenses != 0 {
		t.Fatalf("empty month should be zero, got %+v", got[1])
	}
}

// End-to-end shape of a typical month: salary in, groceries and fun
// out, one budget tracking groceries.
func TestMonthOverview(t *testing.T) {
	t.Parallel()

	income := newCategory("Income")
	food := newCategory("Food & Dining")
	fun := newCategory("Entertainment")
	cats := []*category.Category{income, food, fun}

	txs := []*transaction.Transaction{
		tx(income.Id, transaction.Income, 5000, 2024, time.March, 1),
		tx(food.Id, transaction.Expense, 600, 2024, time.March, 4),
		tx(food.Id, transaction.Expense, 200, 2024, time.March, 18),
		tx(fun.Id, transaction.Expense, 200, 2024, time.March, 23),
		tx(food.Id, transaction.Expense, 500, 2024, time.February, 10),
	}

	budgets := []*budget.Budget{
		{Id: pkg.GenerateULIDObject(), CategoryId: food.Id, Amount: 1000, Period: budget.PeriodMonthly},
	}

	monthTxs := analytics.FilterByMonth(txs, time.March, 2024)
	totals := analytics.Totals(monthTxs)
	if totals.Income != 5000 || totals.Expenses != 1000 || totals.Balance != 4000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}

	top := analytics.TopCategories(txs, cats, time.March, 2024, 5)
	if len(top) != 2 || top[0].Name != "Food & Dining" || !almostEqual(top[0].Percentage, 80) {
		t.Fatalf("unexpected top categories: %+v", top)
	}

	comparison := analytics.CompareMonths(txs, time.March, 2024)
	if !almostEqual(comparison.ChangePercent, 100) {
		t.Fatalf("expected +100%% vs February, got %v", comparison.ChangePercent)
	}

	progress := analytics.BudgetProgress(txs, budgets, cats, time.March, 2024)
	if progress[0].Spent != 800 || progress[0].Remaining != 200 || !almostEqual(progress[0].Percentage, 80) {
		t.Fatalf("unexpected budget progress: %+v", progress[0])
	}

	insights := analytics.Insights(txs, cats, time.March, 2024)
	var sawWarning, sawInfo bool
	for _, insight := range insights {
		switch insight.Type {
		case "warning":
			sawWarning = true
		case "info":
			sawInfo = true
		}
	}
	if !sawWarning || !sawInfo {
		t.Fatalf("expected warning and info insights, got %+v", insights)
	}
}
