package v1

import (
	"github.com/Syabadriel/financeTrack/internal/balance"
	"github.com/Syabadriel/financeTrack/internal/budget"
	"github.com/Syabadriel/financeTrack/internal/money"
	"github.com/Syabadriel/financeTrack/internal/summary"
	"github.com/Syabadriel/financeTrack/internal/types"
)

type QueryDate struct {
	Date types.Date `form:"date" example:"2024-03-14"` // Reference date in YYYY-MM-DD format. Defaults to today
}

// BalancesDisplay holds the balances formatted for display.
type BalancesDisplay struct {
	Cash         string `json:"cash" example:"Rp 150.000"`
	Digital      string `json:"digital" example:"Rp 2.500.000"`
	TotalIncome  string `json:"totalIncome" example:"Rp 5.000.000"`
	TotalExpense string `json:"totalExpense" example:"Rp 2.350.000"`
	TotalDebt    string `json:"totalDebt" example:"Rp 300.000"`
	NetWorth     string `json:"netWorth" example:"Rp 2.350.000"`
}

type Balances struct {
	balance.Balances
	Display BalancesDisplay `json:"display"`
}

func newBalances(b balance.Balances) Balances {
	return Balances{
		Balances: b,
		Display: BalancesDisplay{
			Cash:         money.Format(b.Cash),
			Digital:      money.Format(b.Digital),
			TotalIncome:  money.Format(b.TotalIncome),
			TotalExpense: money.Format(b.TotalExpense),
			TotalDebt:    money.Format(b.TotalDebt),
			NetWorth:     money.Format(b.NetWorth),
		},
	}
}

type BalancesResponse struct {
	Data Balances `json:"data"` // Balances derived from all transactions and debts
}

type SummaryResponse struct {
	Error *string          `json:"error" example:"summary kind must be one of daily, weekly, monthly, yearly"` // The error, if any occurred
	Data  *summary.Summary `json:"data"`                                                                       // The summary of the window
}

type CategoriesResponse struct {
	Data Categories `json:"data"`
}

type Categories struct {
	Income  []string `json:"income" example:"Gaji,Bonus,Investasi,Usaha,Lainnya"`                                         // Categories for income
	Expense []string `json:"expense" example:"Makanan,Transportasi,Hiburan,Tagihan,Belanja,Kesehatan,Pendidikan,Lainnya"` // Categories for expenses and budget targets
	All     []string `json:"all"`                                                                                         // All categories without duplicates
}

type CategoryRollupResponse struct {
	Data []summary.CategoryTotal `json:"data"` // Totals per category
}

type BudgetStatusResponse struct {
	Error *string         `json:"error" example:"dates must be in YYYY-MM-DD format"` // The error, if any occurred
	Data  []budget.Status `json:"data"`                                               // Status of every budget target
}
