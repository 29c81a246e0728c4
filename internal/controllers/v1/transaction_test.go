package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	v1 "github.com/Syabadriel/financeTrack/internal/controllers/v1"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/types"
	"github.com/Syabadriel/financeTrack/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestTransaction(body map[string]any) v1.TransactionResponse {
	recorder := suite.request(http.MethodPost, baseURL+"/transactions", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	response := suite.createTestTransaction(map[string]any{
		"type":        "expense",
		"amount":      25000,
		"description": "Nasi goreng",
		"category":    "Makanan",
		"payment":     "cash",
		"date":        "2024-03-05",
	})

	suite.Require().NotNil(response.Data)
	suite.Assert().Nil(response.Error)
	suite.Assert().Equal(models.TypeExpense, response.Data.Type)
	suite.Assert().True(decimal.NewFromInt(25000).Equal(response.Data.Amount))
	suite.Assert().Equal(types.NewDate(2024, 3, 5), response.Data.Date)
	suite.Assert().Equal("- Rp 25.000", response.Data.Display)
	suite.Assert().Equal(fmt.Sprintf("%s/transactions/%d", baseURL, response.Data.ID), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateTransactionDefaultDate() {
	response := suite.createTestTransaction(map[string]any{
		"type":     "income",
		"amount":   "1500000",
		"category": "Gaji",
		"payment":  "digital",
	})

	suite.Assert().Equal(types.NewDate(2024, 3, 14), response.Data.Date)
	suite.Assert().Equal("+ Rp 1.500.000", response.Data.Display)
}

func (suite *TestSuiteStandard) TestCreateTransactionFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken JSON", `{"type": "expense"`, http.StatusBadRequest},
		{"Zero amount", map[string]any{"type": "expense", "amount": 0, "payment": "cash"}, http.StatusBadRequest},
		{"Negative amount", map[string]any{"type": "income", "amount": -5, "payment": "cash"}, http.StatusBadRequest},
		{"Transfer", map[string]any{"type": "transfer", "amount": 5, "payment": "cash"}, http.StatusBadRequest},
		{"Invalid payment", map[string]any{"type": "expense", "amount": 5, "payment": "card"}, http.StatusBadRequest},
		{"Invalid date", map[string]any{"type": "expense", "amount": 5, "payment": "cash", "date": "05.03.2024"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, baseURL+"/transactions", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().NotNil(response.Error)
		})
	}

	suite.Assert().Empty(suite.ledger.Transactions())
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	created := suite.createTestTransaction(map[string]any{"type": "expense", "amount": 40000, "category": "Transportasi", "payment": "digital"})

	recorder := suite.request(http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(created.Data.ID, response.Data.ID)

	recorder = suite.request(http.MethodGet, baseURL+"/transactions/42", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("there is no transaction with id 42", *response.Error)

	recorder = suite.request(http.MethodGet, baseURL+"/transactions/not-a-number", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilter() {
	suite.createTestTransaction(map[string]any{"type": "income", "amount": 5000000, "category": "Gaji", "payment": "digital", "date": "2024-03-01"})
	suite.createTestTransaction(map[string]any{"type": "expense", "amount": 25000, "description": "Nasi goreng", "category": "Makanan", "payment": "cash", "date": "2024-03-05"})
	suite.createTestTransaction(map[string]any{"type": "expense", "amount": 150000, "description": "Bioskop", "category": "Hiburan", "payment": "digital", "date": "2024-03-10"})

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{"?type=expense", 2},
		{"?category=Makanan", 1},
		{"?search=NASI", 1},
		{"?search=150000", 1},
		{"?dateFrom=2024-03-05", 2},
		{"?dateFrom=2024-03-02&dateTo=2024-03-09", 1},
		{"?type=income&category=Makanan", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := suite.request(http.MethodGet, baseURL+"/transactions"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}

	recorder := suite.request(http.MethodGet, baseURL+"/transactions?dateFrom=yesterday", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactionsEmpty() {
	recorder := suite.request(http.MethodGet, baseURL+"/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	created := suite.createTestTransaction(map[string]any{"type": "expense", "amount": 25000, "category": "Makanan", "payment": "cash", "date": "2024-03-05"})

	recorder := suite.request(http.MethodPut, created.Data.Links.Self, map[string]any{
		"type":     "expense",
		"amount":   30000,
		"category": "Makanan",
		"payment":  "digital",
		"date":     "2024-03-06",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEqual(created.Data.ID, response.Data.ID, "Edited transactions get a new ID")
	suite.Assert().Equal(models.AccountDigital, response.Data.Payment)
	suite.Assert().True(decimal.NewFromInt(30000).Equal(response.Data.Amount))

	transactions := suite.ledger.Transactions()
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(response.Data.ID, transactions[0].ID)

	recorder = suite.request(http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateTransactionFails() {
	created := suite.createTestTransaction(map[string]any{"type": "expense", "amount": 25000, "category": "Makanan", "payment": "cash"})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Unknown", baseURL + "/transactions/42", map[string]any{"type": "expense", "amount": 1, "payment": "cash"}, http.StatusNotFound},
		{"Invalid ID", baseURL + "/transactions/abc", map[string]any{"type": "expense", "amount": 1, "payment": "cash"}, http.StatusBadRequest},
		{"Empty body", created.Data.Links.Self, "", http.StatusBadRequest},
		{"Zero amount", created.Data.Links.Self, map[string]any{"type": "expense", "amount": 0, "payment": "cash"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPut, tt.url, tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}

	transactions := suite.ledger.Transactions()
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(created.Data.ID, transactions[0].ID, "Failed edits must not change the ledger")
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	created := suite.createTestTransaction(map[string]any{"type": "expense", "amount": 25000, "category": "Makanan", "payment": "cash"})

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Invalid ID", baseURL + "/transactions/abc", http.StatusBadRequest},
		{"Unknown", baseURL + "/transactions/42", http.StatusNotFound},
		{"Existing", created.Data.Links.Self, http.StatusNoContent},
		{"Already deleted", created.Data.Links.Self, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodDelete, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}

	suite.Assert().Empty(suite.ledger.Transactions())
}

func decodeTransaction(suite *TestSuiteStandard, recorder *httptest.ResponseRecorder) v1.TransactionResponse {
	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	return response
}
