package stats

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(typ models.TransactionType, amount float64, category string, date models.Date) models.Transaction {
	return models.Transaction{Type: typ, Amount: amount, Category: category, Date: date}
}

func TestBalanceIgnoresPeriod(t *testing.T) {
	ts := []models.Transaction{
		tx(models.TypeIncome, 1000, "Salary", models.NewDate(2023, time.January, 15)),
		tx(models.TypeExpense, 300, "Food", models.NewDate(2024, time.May, 2)),
		tx(models.TypeExpense, 200, "Rent", models.NewDate(2024, time.June, 1)),
	}

	// Balance is over the full set, whatever range the views happen to show.
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	filtered := FilterByPeriod(ts, Period{Kind: PeriodCurrentMonth, Year: 2024, Month: time.June}, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, 500.0, Balance(ts))
}

func TestFilterByPeriodAllReturnsSameSlice(t *testing.T) {
	ts := []models.Transaction{
		tx(models.TypeIncome, 1, "Salary", models.NewDate(2020, time.March, 1)),
		tx(models.TypeExpense, 2, "Food", models.NewDate(2030, time.March, 1)),
	}

	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	got := FilterByPeriod(ts, Period{Kind: PeriodAll}, now)

	require.Len(t, got, len(ts))
	assert.Equal(t, ts, got)
	// Same backing array, not a filtered copy.
	assert.Same(t, &ts[0], &got[0])
}

func TestFilterByPeriodRanges(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	ts := []models.Transaction{
		tx(models.TypeExpense, 1, "a", models.NewDate(2024, time.March, 1)),
		tx(models.TypeExpense, 2, "b", models.NewDate(2024, time.March, 31)),
		tx(models.TypeExpense, 4, "c", models.NewDate(2024, time.February, 29)),
		tx(models.TypeExpense, 8, "d", models.NewDate(2024, time.January, 31)),
		tx(models.TypeExpense, 16, "e", models.NewDate(2023, time.December, 31)),
	}

	tests := []struct {
		name   string
		period Period
		want   float64
	}{
		{"current month honors selection", Period{Kind: PeriodCurrentMonth, Year: 2024, Month: time.March}, 3},
		{"selected february includes leap day", Period{Kind: PeriodCurrentMonth, Year: 2024, Month: time.February}, 4},
		{"last month relative to now", Period{Kind: PeriodLastMonth}, 4},
		{"current year", Period{Kind: PeriodCurrentYear}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPeriod(ts, tt.period, now)
			assert.Equal(t, tt.want, TotalByType(got, models.TypeExpense))
		})
	}
}

func TestLastMonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	start, end, ok := Period{Kind: PeriodLastMonth}.Range(now)
	require.True(t, ok)
	assert.Equal(t, "2023-12-01", start.String())
	assert.Equal(t, "2023-12-31", end.String())
}

func TestSpendingByCategorySumsMatchFilteredExpenses(t *testing.T) {
	categories := []models.Category{
		{ID: "c1", Name: "Food", Color: "#FF8042", Icon: "🍔"},
		{ID: "c2", Name: "Rent", Color: "#0088FE", Icon: "🏠"},
	}
	filtered := []models.Transaction{
		tx(models.TypeExpense, 100, "Food", models.NewDate(2024, time.May, 1)),
		tx(models.TypeExpense, 50, "Food", models.NewDate(2024, time.May, 2)),
		tx(models.TypeExpense, 400, "Rent", models.NewDate(2024, time.May, 3)),
		tx(models.TypeIncome, 9999, "Salary", models.NewDate(2024, time.May, 4)),
	}

	got := SpendingByCategory(filtered, categories)
	require.Len(t, got, 2)

	// Descending by amount, metadata carried from the matching category.
	assert.Equal(t, CategorySpending{Name: "Rent", Amount: 400, Color: "#0088FE", Icon: "🏠"}, got[0])
	assert.Equal(t, CategorySpending{Name: "Food", Amount: 150, Color: "#FF8042", Icon: "🍔"}, got[1])

	var sum float64
	for _, s := range got {
		sum += s.Amount
	}
	assert.Equal(t, TotalByType(filtered, models.TypeExpense), sum)
}

func TestSpendingByCategoryDanglingReference(t *testing.T) {
	// The "Food" category record was deleted; its expenses must surface in a
	// distinct labeled bucket rather than disappear or merge.
	categories := []models.Category{
		{ID: "c2", Name: "Rent", Color: "#0088FE"},
	}
	filtered := []models.Transaction{
		tx(models.TypeExpense, 70, "Food", models.NewDate(2024, time.May, 1)),
		tx(models.TypeExpense, 30, "Food", models.NewDate(2024, time.May, 2)),
		tx(models.TypeExpense, 20, "Rent", models.NewDate(2024, time.May, 3)),
	}

	got := SpendingByCategory(filtered, categories)
	require.Len(t, got, 2)
	assert.Equal(t, "Uncategorized (Food)", got[0].Name)
	assert.Equal(t, 100.0, got[0].Amount)
	assert.Empty(t, got[0].Color)
	assert.Equal(t, "Rent", got[1].Name)
}

func TestSpendingByCategoryEmpty(t *testing.T) {
	assert.Empty(t, SpendingByCategory(nil, nil))
	onlyIncome := []models.Transaction{
		tx(models.TypeIncome, 10, "Salary", models.NewDate(2024, time.May, 1)),
	}
	assert.Empty(t, SpendingByCategory(onlyIncome, nil))
}

func TestDailySeries(t *testing.T) {
	filtered := []models.Transaction{
		tx(models.TypeExpense, 20, "Food", models.NewDate(2024, time.May, 3)),
		tx(models.TypeIncome, 100, "Salary", models.NewDate(2024, time.May, 1)),
		tx(models.TypeExpense, 5, "Food", models.NewDate(2024, time.May, 1)),
		tx(models.TypeExpense, 7, "Transport", models.NewDate(2024, time.May, 3)),
	}

	got := DailySeries(filtered)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-05-01", got[0].Date.String())
	assert.Equal(t, 100.0, got[0].Income)
	assert.Equal(t, 5.0, got[0].Expense)

	assert.Equal(t, "2024-05-03", got[1].Date.String())
	assert.Equal(t, 0.0, got[1].Income)
	assert.Equal(t, 27.0, got[1].Expense)
}

func TestAvailablePeriods(t *testing.T) {
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	all := []models.Transaction{
		tx(models.TypeExpense, 1, "a", models.NewDate(2024, time.May, 1)),
		tx(models.TypeExpense, 1, "b", models.NewDate(2024, time.May, 20)),
		tx(models.TypeIncome, 1, "c", models.NewDate(2023, time.December, 5)),
	}

	got := AvailablePeriods(all, now)
	assert.Equal(t, []string{"2024-06", "2024-05", "2023-12"}, got)
}

func TestAvailablePeriodsEmptyStillOffersCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2024-06"}, AvailablePeriods(nil, now))
}
