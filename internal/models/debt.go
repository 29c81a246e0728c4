package models

import (
	"strings"

	"github.com/Syabadriel/financeTrack/internal/types"
	"github.com/shopspring/decimal"
)

// Debt is an outstanding liability. It reduces the net worth until it is
// paid, which removes it.
type Debt struct {
	ID          int64           `json:"id" example:"1710000000000"`
	Name        string          `json:"name" example:"Budi"`
	Amount      decimal.Decimal `json:"amount" example:"150000"`
	Description string          `json:"description" example:"Borrowed for rent"`
	Date        types.Date      `json:"date" example:"2024-03-05"`
}

func (d Debt) GetID() int64 {
	return d.ID
}

// WithID returns a copy of the debt with the given ID.
func (d Debt) WithID(id int64) Debt {
	d.ID = id
	return d
}

func (d Debt) Validate() error {
	if !d.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	return nil
}

// DebtInput holds the data for a new debt.
type DebtInput struct {
	Name        string          `json:"name" example:"Budi"`
	Amount      decimal.Decimal `json:"amount" example:"150000"`
	Description string          `json:"description" example:"Borrowed for rent"`
	Date        types.Date      `json:"date" example:"2024-03-05"` // Defaults to today
}

func (in DebtInput) Validate() error {
	if !in.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	return nil
}

// Model validates the input and returns the debt.
func (in DebtInput) Model(today types.Date) (Debt, error) {
	if err := in.Validate(); err != nil {
		return Debt{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = today
	}

	return Debt{
		Name:        strings.TrimSpace(in.Name),
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
	}, nil
}
