package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Period is the window a budget target caps spending for.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// BudgetTarget caps the expenses of a category for a period.
//
// Several targets for the same category are allowed.
type BudgetTarget struct {
	ID       int64           `json:"id" example:"1710000000000"`
	Category string          `json:"category" example:"Makanan"`
	Amount   decimal.Decimal `json:"amount" example:"500000"`
	Period   Period          `json:"period" example:"monthly"`
}

func (b BudgetTarget) GetID() int64 {
	return b.ID
}

// WithID returns a copy of the budget target with the given ID.
func (b BudgetTarget) WithID(id int64) BudgetTarget {
	b.ID = id
	return b
}

// Validate checks a stored budget target.
func (b BudgetTarget) Validate() error {
	return BudgetTargetInput{Category: b.Category, Amount: b.Amount, Period: b.Period}.Validate()
}

// BudgetTargetInput holds the data for a new budget target.
type BudgetTargetInput struct {
	Category string          `json:"category" example:"Makanan"`
	Amount   decimal.Decimal `json:"amount" example:"500000"`
	Period   Period          `json:"period" example:"monthly"` // Defaults to monthly
}

func (in BudgetTargetInput) Validate() error {
	if strings.TrimSpace(in.Category) == "" {
		return ErrBudgetCategoryEmpty
	}

	if !in.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if in.Period != "" && in.Period != PeriodWeekly && in.Period != PeriodMonthly {
		return ErrInvalidPeriod
	}

	return nil
}

// Model validates the input and returns the budget target.
func (in BudgetTargetInput) Model() (BudgetTarget, error) {
	if err := in.Validate(); err != nil {
		return BudgetTarget{}, err
	}

	period := in.Period
	if period == "" {
		period = PeriodMonthly
	}

	return BudgetTarget{
		Category: strings.TrimSpace(in.Category),
		Amount:   in.Amount,
		Period:   period,
	}, nil
}
