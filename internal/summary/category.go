package summary

import (
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the rollup of one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Makanan"`
	Income   decimal.Decimal `json:"income" example:"0"`
	Expense  decimal.Decimal `json:"expense" example:"250000"`
	Net      decimal.Decimal `json:"net" example:"-250000"`
	Share    decimal.Decimal `json:"share" example:"12.5"` // Income plus expense in percent of the largest category
}

// Categories rolls up income and expense per category over all
// transactions. Transfers are left out, transactions without a category
// count towards models.OtherCategory.
//
// Categories are returned in the order they first appear in.
func Categories(transactions []models.Transaction) []CategoryTotal {
	totals := []CategoryTotal{}
	index := map[string]int{}

	for _, t := range transactions {
		if t.Type != models.TypeIncome && t.Type != models.TypeExpense {
			continue
		}

		name := models.CategoryLabel(t.Category)
		i, ok := index[name]
		if !ok {
			i = len(totals)
			index[name] = i
			totals = append(totals, CategoryTotal{Category: name, Income: decimal.Zero, Expense: decimal.Zero})
		}

		if t.Type == models.TypeIncome {
			totals[i].Income = totals[i].Income.Add(t.Amount)
		} else {
			totals[i].Expense = totals[i].Expense.Add(t.Amount)
		}
	}

	largest := decimal.Zero
	for _, c := range totals {
		largest = decimal.Max(largest, c.Income.Add(c.Expense))
	}

	hundred := decimal.NewFromInt(100)
	for i, c := range totals {
		totals[i].Net = c.Income.Sub(c.Expense)
		totals[i].Share = decimal.Zero
		if largest.IsPositive() {
			totals[i].Share = c.Income.Add(c.Expense).Div(largest).Mul(hundred).Round(2)
		}
	}

	return totals
}
