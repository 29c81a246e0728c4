package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Syabadriel/financeTrack/internal/controllers/v1"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := suite.request(http.MethodGet, baseURL, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(baseURL+"/transactions", response.Links.Transactions)
	suite.Assert().Equal(baseURL+"/summaries/{kind}", response.Links.Summaries)
	suite.Assert().Equal(baseURL+"/import", response.Links.Import)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"", "OPTIONS, GET, DELETE"},
		{"/transactions", "OPTIONS, GET, POST"},
		{"/transactions/1", "OPTIONS, GET, PUT, DELETE"},
		{"/transfers", "OPTIONS, POST"},
		{"/transfers/1", "OPTIONS, PUT"},
		{"/debts", "OPTIONS, GET, POST"},
		{"/debts/1", "OPTIONS, GET, PUT, DELETE"},
		{"/debts/1/pay", "OPTIONS, POST"},
		{"/budget-targets", "OPTIONS, GET, POST"},
		{"/budget-targets/1", "OPTIONS, GET, PUT, DELETE"},
		{"/balances", "OPTIONS, GET"},
		{"/summaries/weekly", "OPTIONS, GET"},
		{"/categories", "OPTIONS, GET"},
		{"/categories/rollup", "OPTIONS, GET"},
		{"/budget-status", "OPTIONS, GET"},
		{"/theme", "OPTIONS, GET, PUT"},
		{"/theme/toggle", "OPTIONS, POST"},
		{"/export", "OPTIONS, GET"},
		{"/export/transactions.xlsx", "OPTIONS, GET"},
		{"/export/transactions.csv", "OPTIONS, GET"},
		{"/import", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.ledger, http.MethodOptions, baseURL+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteAll() {
	_, err := suite.ledger.AddTransaction(models.TransactionInput{Type: models.TypeIncome, Amount: decimal.NewFromInt(1000), Category: "Gaji", Payment: models.AccountCash})
	suite.Require().Nil(err)
	suite.Require().Nil(suite.ledger.SetTheme(models.ThemeDark))

	recorder := suite.request(http.MethodDelete, baseURL, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Len(suite.ledger.Transactions(), 1, "Data was deleted without confirmation")

	recorder = suite.request(http.MethodDelete, baseURL+"?confirm=yes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodDelete, baseURL+"?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Empty(suite.ledger.Transactions())
	suite.Assert().Equal(models.ThemeDark, suite.ledger.Theme(), "Theme must survive a reset")
}
