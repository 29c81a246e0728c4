package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/Syabadriel/financeTrack/internal/controllers/v1"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/spreadsheet"
	"github.com/Syabadriel/financeTrack/test"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExportImport() {
	suite.seed()
	suite.createTestDebt(map[string]any{"name": "Budi", "amount": 150000})
	suite.createTestBudgetTarget(map[string]any{"category": "Makanan", "amount": 500000})

	recorder := suite.request(http.MethodGet, baseURL+"/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var export v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &export)
	suite.Assert().Len(export.Data.Transactions, 4)
	suite.Assert().Len(export.Data.Debts, 1)
	suite.Assert().Len(export.Data.BudgetTargets, 1)
	suite.Assert().Equal(models.ThemeLight, export.Data.Theme)

	recorder = suite.request(http.MethodDelete, baseURL+"?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Empty(suite.ledger.Transactions())

	recorder = suite.request(http.MethodPost, baseURL+"/import", export.Data)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	suite.Assert().Equal(export.Data.Transactions, suite.ledger.Transactions())
	suite.Assert().Equal(export.Data.Debts, suite.ledger.Debts())
	suite.Assert().Equal(export.Data.BudgetTargets, suite.ledger.BudgetTargets())
}

func (suite *TestSuiteStandard) TestImportInvalid() {
	suite.seed()

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Not JSON", "transactions"},
		{"Invalid transaction", map[string]any{"transactions": []map[string]any{{"id": 1, "type": "expense", "amount": 0, "payment": "cash"}}}},
		{"Invalid theme", map[string]any{"theme": "blue"}},
		{"Duplicate transaction id", map[string]any{"transactions": []map[string]any{
			{"id": 7, "type": "expense", "amount": 25000, "category": "Makanan", "payment": "cash", "date": "2024-03-01"},
			{"id": 7, "type": "income", "amount": 50000, "category": "Gaji", "payment": "digital", "date": "2024-03-02"},
		}}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, baseURL+"/import", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().Len(suite.ledger.Transactions(), 4, "A failed import must not change the ledger")
}

func (suite *TestSuiteStandard) TestImportLegacyData() {
	body := `{"transactions": [{"id": 1709251200000, "type": "expense", "amount": 25000, "category": "Makanan", "date": "2024-03-01"}]}`

	recorder := suite.request(http.MethodPost, baseURL+"/import", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	transactions := suite.ledger.Transactions()
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(int64(1709251200000), transactions[0].ID)
}

func (suite *TestSuiteStandard) TestExportSpreadsheets() {
	suite.seed()

	recorder := suite.request(http.MethodGet, baseURL+"/export/transactions.csv?type=expense", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Equal(`attachment; filename="transactions_20240314.csv"`, recorder.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(recorder.Body.String()), "\n")
	suite.Require().Len(lines, 3, "Header and two expenses")
	suite.Assert().Equal(strings.Join(spreadsheet.Header, ","), lines[0])

	recorder = suite.request(http.MethodGet, baseURL+"/export/transactions.xlsx", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	f, err := excelize.OpenReader(recorder.Body)
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows(spreadsheet.Sheet)
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 5, "Header and four transactions")

	recorder = suite.request(http.MethodGet, baseURL+"/export/transactions.csv?dateFrom=March", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
