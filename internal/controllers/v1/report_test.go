package v1_test

import (
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/budget"
	v1 "github.com/Syabadriel/financeTrack/internal/controllers/v1"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/summary"
	"github.com/Syabadriel/financeTrack/internal/types"
	"github.com/Syabadriel/financeTrack/test"
	"github.com/shopspring/decimal"
)

// seed records a salary, two expenses and a transfer in March 2024.
func (suite *TestSuiteStandard) seed() {
	suite.createTestTransaction(map[string]any{"type": "income", "amount": 5000000, "category": "Gaji", "payment": "digital", "date": "2024-03-01"})
	suite.createTestTransaction(map[string]any{"type": "expense", "amount": 200000, "category": "Makanan", "payment": "cash", "date": "2024-03-12"})
	suite.createTestTransaction(map[string]any{"type": "expense", "amount": 40000, "category": "Transportasi", "payment": "digital", "date": "2024-03-14"})

	recorder := suite.request(http.MethodPost, baseURL+"/transfers", map[string]any{"from": "digital", "to": "cash", "amount": 500000, "date": "2024-03-13"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestGetBalances() {
	suite.seed()
	suite.createTestDebt(map[string]any{"name": "Budi", "amount": 150000})

	recorder := suite.request(http.MethodGet, baseURL+"/balances", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BalancesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(decimal.NewFromInt(300000).Equal(response.Data.Cash), response.Data.Cash.String())
	suite.Assert().True(decimal.NewFromInt(4460000).Equal(response.Data.Digital), response.Data.Digital.String())
	suite.Assert().True(decimal.NewFromInt(5000000).Equal(response.Data.TotalIncome))
	suite.Assert().True(decimal.NewFromInt(240000).Equal(response.Data.TotalExpense))
	suite.Assert().Equal("Rp 4.610.000", response.Data.Display.NetWorth)
	suite.Assert().Equal("Rp 150.000", response.Data.Display.TotalDebt)
}

func (suite *TestSuiteStandard) TestGetSummary() {
	suite.seed()

	tests := []struct {
		path    string
		start   types.Date
		end     types.Date
		income  int64
		expense int64
		buckets int
	}{
		{"/summaries/daily", types.NewDate(2024, 3, 14), types.NewDate(2024, 3, 14), 0, 40000, 1},
		{"/summaries/daily?date=2024-03-12", types.NewDate(2024, 3, 12), types.NewDate(2024, 3, 12), 0, 200000, 1},
		{"/summaries/weekly", types.NewDate(2024, 3, 11), types.NewDate(2024, 3, 17), 0, 240000, 7},
		{"/summaries/monthly", types.NewDate(2024, 3, 1), types.NewDate(2024, 3, 31), 5000000, 240000, 31},
		{"/summaries/yearly?date=2024-07-01", types.NewDate(2024, 1, 1), types.NewDate(2024, 12, 31), 5000000, 240000, 12},
		{"/summaries/monthly?date=2024-02-10", types.NewDate(2024, 2, 1), types.NewDate(2024, 2, 29), 0, 0, 29},
	}

	for _, tt := range tests {
		suite.Run(tt.path, func() {
			recorder := suite.request(http.MethodGet, baseURL+tt.path, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.SummaryResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Require().NotNil(response.Data)

			suite.Assert().Equal(tt.start, response.Data.Start)
			suite.Assert().Equal(tt.end, response.Data.End)
			suite.Assert().True(decimal.NewFromInt(tt.income).Equal(response.Data.Income), "income: %s", response.Data.Income)
			suite.Assert().True(decimal.NewFromInt(tt.expense).Equal(response.Data.Expense), "expense: %s", response.Data.Expense)
			suite.Assert().Len(response.Data.Buckets, tt.buckets)
		})
	}
}

func (suite *TestSuiteStandard) TestGetSummaryFails() {
	for _, path := range []string{"/summaries/hourly", "/summaries/daily?date=14.03.2024"} {
		recorder := suite.request(http.MethodGet, baseURL+path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response v1.SummaryResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().NotNil(response.Error, path)
	}
}

func (suite *TestSuiteStandard) TestGetSummaryKind() {
	recorder := suite.request(http.MethodGet, baseURL+"/summaries/weekly", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(summary.KindWeekly, response.Data.Kind)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	recorder := suite.request(http.MethodGet, baseURL+"/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.IncomeCategories(), response.Data.Income)
	suite.Assert().Equal(models.ExpenseCategories(), response.Data.Expense)
	suite.Assert().Equal(models.AllCategories(), response.Data.All)
}

func (suite *TestSuiteStandard) TestGetCategoryRollup() {
	suite.seed()

	recorder := suite.request(http.MethodGet, baseURL+"/categories/rollup", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryRollupResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3, "Transfers are not part of the rollup")

	categories := make([]string, 0, len(response.Data))
	for _, total := range response.Data {
		categories = append(categories, total.Category)
	}
	suite.Assert().ElementsMatch([]string{"Gaji", "Makanan", "Transportasi"}, categories)
}

func (suite *TestSuiteStandard) TestGetBudgetStatus() {
	suite.seed()
	suite.createTestBudgetTarget(map[string]any{"category": "Makanan", "amount": 500000})
	suite.createTestBudgetTarget(map[string]any{"category": "Transportasi", "amount": 45000, "period": "weekly"})

	recorder := suite.request(http.MethodGet, baseURL+"/budget-status", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetStatusResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	suite.Assert().True(decimal.NewFromInt(40).Equal(response.Data[0].Percentage), response.Data[0].Percentage.String())
	suite.Assert().Equal(budget.StateOK, response.Data[0].State)
	suite.Assert().Equal(budget.StateWarning, response.Data[1].State)
	suite.Assert().Equal(types.NewDate(2024, 3, 11), response.Data[1].Start)

	// The week before has no spending on transport
	recorder = suite.request(http.MethodGet, baseURL+"/budget-status?date=2024-03-06", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data[1].Spent.IsZero())

	recorder = suite.request(http.MethodGet, baseURL+"/budget-status?date=tomorrow", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgetStatusEmpty() {
	recorder := suite.request(http.MethodGet, baseURL+"/budget-status", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, recorder.Body.String())
}
