package v1_test

import (
	"net/http"

	v1 "github.com/Syabadriel/financeTrack/internal/controllers/v1"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestBudgetTarget(body map[string]any) v1.BudgetTargetResponse {
	recorder := suite.request(http.MethodPost, baseURL+"/budget-targets", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetTargetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestCreateBudgetTarget() {
	response := suite.createTestBudgetTarget(map[string]any{"category": "Makanan", "amount": 500000})

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.PeriodMonthly, response.Data.Period, "Period defaults to monthly")
	suite.Assert().Equal(baseURL+"/budget-targets/"+idString(response.Data.ID), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateBudgetTargetFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"No category", map[string]any{"amount": 1}},
		{"Zero amount", map[string]any{"category": "Makanan", "amount": 0}},
		{"Yearly", map[string]any{"category": "Makanan", "amount": 1, "period": "yearly"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, baseURL+"/budget-targets", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().Empty(suite.ledger.BudgetTargets())
}

func (suite *TestSuiteStandard) TestBudgetTargetLifecycle() {
	created := suite.createTestBudgetTarget(map[string]any{"category": "Hiburan", "amount": 200000, "period": "weekly"})

	recorder := suite.request(http.MethodGet, baseURL+"/budget-targets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	var list v1.BudgetTargetListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)

	recorder = suite.request(http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPut, created.Data.Links.Self, map[string]any{"category": "Hiburan", "amount": 300000, "period": "monthly"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	var edited v1.BudgetTargetResponse
	test.DecodeResponse(suite.T(), &recorder, &edited)
	suite.Assert().True(decimal.NewFromInt(300000).Equal(edited.Data.Amount))
	suite.Assert().Equal(models.PeriodMonthly, edited.Data.Period)

	recorder = suite.request(http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound, "The old ID is gone after an edit")

	recorder = suite.request(http.MethodDelete, edited.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Empty(suite.ledger.BudgetTargets())
}
