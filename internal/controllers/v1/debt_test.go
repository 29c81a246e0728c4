package v1_test

import (
	"net/http"
	"strconv"

	v1 "github.com/Syabadriel/financeTrack/internal/controllers/v1"
	"github.com/Syabadriel/financeTrack/internal/types"
	"github.com/Syabadriel/financeTrack/test"
	"github.com/shopspring/decimal"
)

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (suite *TestSuiteStandard) createTestDebt(body map[string]any) v1.DebtResponse {
	recorder := suite.request(http.MethodPost, baseURL+"/debts", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.DebtResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestCreateDebt() {
	response := suite.createTestDebt(map[string]any{"name": "Budi", "amount": 150000, "description": "Borrowed for rent"})

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Budi", response.Data.Name)
	suite.Assert().Equal(types.NewDate(2024, 3, 14), response.Data.Date)
	suite.Assert().Equal("Rp 150.000", response.Data.Display)
	suite.Assert().Equal(baseURL+"/debts/"+idString(response.Data.ID)+"/pay", response.Data.Links.Pay)

	b := suite.ledger.Balances()
	suite.Assert().True(decimal.NewFromInt(150000).Equal(b.TotalDebt))
	suite.Assert().True(decimal.NewFromInt(-150000).Equal(b.NetWorth))
}

func (suite *TestSuiteStandard) TestCreateDebtFails() {
	for _, body := range []any{"", map[string]any{"name": "Budi", "amount": 0}, map[string]any{"name": "Budi", "amount": -1}} {
		recorder := suite.request(http.MethodPost, baseURL+"/debts", body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
	suite.Assert().Empty(suite.ledger.Debts())
}

func (suite *TestSuiteStandard) TestGetDebts() {
	suite.createTestDebt(map[string]any{"name": "Budi", "amount": 150000})
	suite.createTestDebt(map[string]any{"name": "Sari", "amount": 50000})

	recorder := suite.request(http.MethodGet, baseURL+"/debts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DebtListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Budi", response.Data[0].Name)
	suite.Assert().Equal("Sari", response.Data[1].Name)

	recorder = suite.request(http.MethodGet, response.Data[1].Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodGet, baseURL+"/debts/42", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateDebt() {
	created := suite.createTestDebt(map[string]any{"name": "Budi", "amount": 150000})

	recorder := suite.request(http.MethodPut, created.Data.Links.Self, map[string]any{"name": "Budi", "amount": 100000, "date": "2024-03-01"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DebtResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEqual(created.Data.ID, response.Data.ID)
	suite.Assert().True(decimal.NewFromInt(100000).Equal(response.Data.Amount))

	recorder = suite.request(http.MethodPut, baseURL+"/debts/42", map[string]any{"name": "Budi", "amount": 1})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodPut, response.Data.Links.Self, map[string]any{"name": "Budi", "amount": 0})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPayAndDeleteDebt() {
	paid := suite.createTestDebt(map[string]any{"name": "Budi", "amount": 150000})
	deleted := suite.createTestDebt(map[string]any{"name": "Sari", "amount": 50000})

	recorder := suite.request(http.MethodPost, paid.Data.Links.Pay, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodPost, paid.Data.Links.Pay, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodDelete, deleted.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodDelete, baseURL+"/debts/abc", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	suite.Assert().Empty(suite.ledger.Debts())
	suite.Assert().True(suite.ledger.Balances().TotalDebt.IsZero())
}
