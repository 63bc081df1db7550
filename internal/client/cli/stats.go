package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
	"github.com/dmitrijs2005/coinkeeper/internal/client/stats"
)

// readPeriod asks for a reporting period. For currentMonth the user picks
// one of the months that actually have data (plus the current one).
func (a *App) readPeriod(transactions []models.Transaction) (stats.Period, error) {
	choice, err := GetSimpleText(a.reader, "-Period (currentMonth/lastMonth/currentYear/all, empty for all)")
	if err != nil {
		return stats.Period{}, err
	}

	switch stats.PeriodKind(choice) {
	case stats.PeriodLastMonth:
		return stats.Period{Kind: stats.PeriodLastMonth}, nil
	case stats.PeriodCurrentYear:
		return stats.Period{Kind: stats.PeriodCurrentYear}, nil
	case stats.PeriodCurrentMonth:
		options := stats.AvailablePeriods(transactions, time.Now())
		token, err := GetSimpleText(a.reader, "-Month (YYYY-MM), one of: "+strings.Join(options, ", "))
		if err != nil {
			return stats.Period{}, err
		}
		month, err := time.Parse("2006-01", token)
		if err != nil {
			return stats.Period{}, fmt.Errorf("invalid month %q", token)
		}
		return stats.Period{Kind: stats.PeriodCurrentMonth, Year: month.Year(), Month: month.Month()}, nil
	default:
		return stats.Period{Kind: stats.PeriodAll}, nil
	}
}

func (a *App) showBalance(ctx context.Context) {
	items, err := a.transactions.FetchAll(ctx)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}
	fmt.Printf("Balance: %.2f\n", stats.Balance(items))
}

func (a *App) showStatistics(ctx context.Context) {
	if err := a.syncer.Refresh(ctx); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	transactions := a.transactions.Items()
	categories := a.categories.Items()

	period, err := a.readPeriod(transactions)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	now := time.Now()
	filtered := stats.FilterByPeriod(transactions, period, now)

	// Balance is always all-time, whatever the period filter says.
	fmt.Printf("Balance (all time): %.2f\n", stats.Balance(transactions))
	fmt.Printf("Income:  %10.2f\n", stats.TotalByType(filtered, models.TypeIncome))
	fmt.Printf("Expense: %10.2f\n", stats.TotalByType(filtered, models.TypeExpense))

	spending := stats.SpendingByCategory(filtered, categories)
	if len(spending) > 0 {
		fmt.Println("Spending by category:")
		for _, s := range spending {
			icon := s.Icon
			if icon == "" {
				icon = "-"
			}
			fmt.Printf("  %-3s %-30s %10.2f\n", icon, s.Name, s.Amount)
		}
	}

	series := stats.DailySeries(filtered)
	if len(series) > 0 {
		fmt.Println("Daily series:")
		for _, p := range series {
			fmt.Printf("  %s  income %10.2f  expense %10.2f\n", p.Date, p.Income, p.Expense)
		}
	}
}
