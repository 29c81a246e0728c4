// Package budget evaluates budget targets against the expenses of their
// current period.
package budget

import (
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/types"
	"github.com/shopspring/decimal"
)

// State is the state of a budget target.
type State string

const (
	StateOK      State = "ok"
	StateWarning State = "warning"
	StateOver    State = "over"
)

// warningThreshold is the percentage above which a target is in warning state.
var warningThreshold = decimal.NewFromInt(80)

var hundred = decimal.NewFromInt(100)

// Status is the evaluation of one budget target.
type Status struct {
	models.BudgetTarget
	Start      types.Date      `json:"start" example:"2024-03-01"` // First day of the current period
	End        types.Date      `json:"end" example:"2024-03-31"`   // Last day of the current period
	Spent      decimal.Decimal `json:"spent" example:"200000"`     // Sum of expenses in the category during the period
	Percentage decimal.Decimal `json:"percentage" example:"40"`    // Spent in percent of the target amount
	Progress   decimal.Decimal `json:"progress" example:"40"`      // Percentage capped at 100
	State      State           `json:"state" example:"ok"`         // ok, warning or over
	Remaining  decimal.Decimal `json:"remaining" example:"300000"` // Amount minus spent, negative when over budget
}

// Window returns the first and last day of the period containing ref.
//
// Weekly periods start on Monday, monthly periods on the first of the month.
func Window(period models.Period, ref types.Date) (types.Date, types.Date) {
	if period == models.PeriodWeekly {
		start := ref.StartOfWeek()
		return start, start.AddDays(6)
	}

	month := ref.Month()
	return month.First(), month.Last()
}

// Spent sums up the expenses of a category between start and end, both
// inclusive.
func Spent(transactions []models.Transaction, category string, start, end types.Date) decimal.Decimal {
	spent := decimal.Zero
	for _, t := range transactions {
		if t.Type != models.TypeExpense || t.Category != category {
			continue
		}

		if t.Date.IsZero() || !t.Date.Between(start, end) {
			continue
		}

		spent = spent.Add(t.Amount)
	}

	return spent
}

// Evaluate computes the status of a single target in the period containing ref.
func Evaluate(target models.BudgetTarget, transactions []models.Transaction, ref types.Date) Status {
	start, end := Window(target.Period, ref)
	spent := Spent(transactions, target.Category, start, end)

	// Only the reported values are rounded, the state uses the exact ratio
	percentage := decimal.Zero
	if target.Amount.IsPositive() {
		percentage = spent.Div(target.Amount).Mul(hundred).Round(2)
	}

	state := StateOK
	switch {
	case spent.GreaterThan(target.Amount):
		state = StateOver
	case spent.Mul(hundred).GreaterThan(target.Amount.Mul(warningThreshold)):
		state = StateWarning
	}

	return Status{
		BudgetTarget: target,
		Start:        start,
		End:          end,
		Spent:        spent,
		Percentage:   percentage,
		Progress:     decimal.Min(percentage, hundred),
		State:        state,
		Remaining:    target.Amount.Sub(spent),
	}
}

// EvaluateAll evaluates every target, keeping their order.
func EvaluateAll(targets []models.BudgetTarget, transactions []models.Transaction, ref types.Date) []Status {
	statuses := make([]Status, 0, len(targets))
	for _, target := range targets {
		statuses = append(statuses, Evaluate(target, transactions, ref))
	}

	return statuses
}
