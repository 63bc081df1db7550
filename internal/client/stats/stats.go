// Package stats computes the derived reporting views over the transaction
// collection: running balance, period-filtered totals, per-category spending
// breakdown, per-day income/expense series, and the selectable reporting
// periods. Everything here is a pure function of its inputs; no state is
// kept between calls.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
)

// PeriodKind selects a named reporting date range.
type PeriodKind string

const (
	PeriodCurrentMonth PeriodKind = "currentMonth"
	PeriodLastMonth    PeriodKind = "lastMonth"
	PeriodCurrentYear  PeriodKind = "currentYear"
	PeriodAll          PeriodKind = "all"
)

// Period is a reporting period. Year and Month are honored only for
// PeriodCurrentMonth (the user-selected month); the other kinds derive
// their range from the reference time passed to FilterByPeriod.
type Period struct {
	Kind  PeriodKind
	Year  int
	Month time.Month
}

// Range returns the inclusive [start, end] day range of the period relative
// to now. ok is false for PeriodAll, which has no bounds.
func (p Period) Range(now time.Time) (start, end models.Date, ok bool) {
	switch p.Kind {
	case PeriodCurrentMonth:
		return monthRange(p.Year, p.Month)
	case PeriodLastMonth:
		prev := now.AddDate(0, -1, -now.Day()+1)
		return monthRange(prev.Year(), prev.Month())
	case PeriodCurrentYear:
		return models.NewDate(now.Year(), time.January, 1),
			models.NewDate(now.Year(), time.December, 31), true
	default:
		return models.Date{}, models.Date{}, false
	}
}

func monthRange(year int, month time.Month) (models.Date, models.Date, bool) {
	start := models.NewDate(year, month, 1)
	end := models.Date{Time: start.AddDate(0, 1, -1)}
	return start, end, true
}

// FilterByPeriod returns the transactions whose date falls inside the
// period, inclusive on both ends. PeriodAll returns the input slice as-is:
// same elements, same order, no copy.
func FilterByPeriod(ts []models.Transaction, p Period, now time.Time) []models.Transaction {
	start, end, ok := p.Range(now)
	if !ok {
		return ts
	}
	var result []models.Transaction
	for _, t := range ts {
		if !t.Date.Before(start.Time) && !t.Date.After(end.Time) {
			result = append(result, t)
		}
	}
	return result
}

// Balance is the all-time running balance: income minus expenses over the
// entire unfiltered set, independent of any period filter.
func Balance(ts []models.Transaction) float64 {
	return TotalByType(ts, models.TypeIncome) - TotalByType(ts, models.TypeExpense)
}

// TotalByType sums the amounts of the transactions matching typ.
func TotalByType(ts []models.Transaction, typ models.TransactionType) float64 {
	var sum float64
	for _, t := range ts {
		if t.Type == typ {
			sum += t.Amount
		}
	}
	return sum
}

// CategorySpending is one slice of the per-category expense breakdown.
type CategorySpending struct {
	Name   string
	Amount float64
	Color  string
	Icon   string
}

// UncategorizedLabel is the bucket label for expenses whose category name
// has no matching category record. It embeds the raw name so dangling
// references stay visible and distinguishable instead of merging silently.
func UncategorizedLabel(name string) string {
	return fmt.Sprintf("Uncategorized (%s)", name)
}

// SpendingByCategory groups expense transactions by category name, carrying
// the matched category's color and icon. The result is sorted descending by
// summed amount; ties keep first-encountered order.
func SpendingByCategory(filtered []models.Transaction, categories []models.Category) []CategorySpending {
	byName := make(map[string]*models.Category, len(categories))
	for i := range categories {
		if _, ok := byName[categories[i].Name]; !ok {
			byName[categories[i].Name] = &categories[i]
		}
	}

	index := make(map[string]int)
	var result []CategorySpending
	for _, t := range filtered {
		if t.Type != models.TypeExpense {
			continue
		}
		label := t.Category
		var color, icon string
		if cat, ok := byName[t.Category]; ok {
			color, icon = cat.Color, cat.Icon
		} else {
			label = UncategorizedLabel(t.Category)
		}
		i, ok := index[label]
		if !ok {
			i = len(result)
			index[label] = i
			result = append(result, CategorySpending{Name: label, Color: color, Icon: icon})
		}
		result[i].Amount += t.Amount
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})
	return result
}

// DailyPoint is one day of the income/expense series.
type DailyPoint struct {
	Date    models.Date
	Income  float64
	Expense float64
}

// DailySeries groups transactions by calendar day, summing income and
// expense separately, sorted ascending by date.
func DailySeries(filtered []models.Transaction) []DailyPoint {
	index := make(map[string]int)
	var result []DailyPoint
	for _, t := range filtered {
		day := models.DateOf(t.Date.Time)
		key := day.String()
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, DailyPoint{Date: day})
		}
		switch t.Type {
		case models.TypeIncome:
			result[i].Income += t.Amount
		case models.TypeExpense:
			result[i].Expense += t.Amount
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date.Time)
	})
	return result
}

// AvailablePeriods returns the distinct "YYYY-MM" tokens of all transaction
// dates plus the current real-world month, most recent first.
func AvailablePeriods(all []models.Transaction, now time.Time) []string {
	seen := map[string]struct{}{
		models.DateOf(now).YearMonth(): {},
	}
	for _, t := range all {
		seen[t.Date.YearMonth()] = struct{}{}
	}

	result := make([]string, 0, len(seen))
	for token := range seen {
		result = append(result, token)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(result)))
	return result
}
