// Package balance derives account balances from the transaction history.
package balance

import (
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/shopspring/decimal"
)

// Balances are derived from the full history on every call, nothing here is
// stored.
type Balances struct {
	Cash         decimal.Decimal `json:"cash" example:"150000"`
	Digital      decimal.Decimal `json:"digital" example:"2500000"`
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"5000000"`
	TotalExpense decimal.Decimal `json:"totalExpense" example:"2350000"`
	TotalDebt    decimal.Decimal `json:"totalDebt" example:"300000"`
	NetWorth     decimal.Decimal `json:"netWorth" example:"2350000"` // Cash + Digital - TotalDebt
}

// Calculate folds all transactions and debts into balances.
//
// Any payment or account other than cash counts as digital. Transactions
// of unknown type are ignored.
func Calculate(transactions []models.Transaction, debts []models.Debt) Balances {
	var b Balances

	for _, t := range transactions {
		switch t.Type {
		case models.TypeIncome:
			b.TotalIncome = b.TotalIncome.Add(t.Amount)
			b.adjust(t.Payment, t.Amount)
		case models.TypeExpense:
			b.TotalExpense = b.TotalExpense.Add(t.Amount)
			b.adjust(t.Payment, t.Amount.Neg())
		case models.TypeTransfer:
			b.adjust(t.From, t.Amount.Neg())
			b.adjust(t.To, t.Amount)
		}
	}

	b.TotalDebt = TotalDebt(debts)
	b.NetWorth = b.Cash.Add(b.Digital).Sub(b.TotalDebt)

	return b
}

// TotalDebt sums up all outstanding debts.
func TotalDebt(debts []models.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount)
	}
	return total
}

func (b *Balances) adjust(account models.Account, amount decimal.Decimal) {
	if account == models.AccountCash {
		b.Cash = b.Cash.Add(amount)
		return
	}
	b.Digital = b.Digital.Add(amount)
}
