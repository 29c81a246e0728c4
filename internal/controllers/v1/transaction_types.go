package v1

import (
	"fmt"

	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/money"
	"github.com/gin-gonic/gin"
)

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/1710000000000"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.Transaction
	Display string           `json:"display" example:"- Rp 25.000"` // The amount formatted for display, with a sign for income and expense
	Links   TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(httputil.ContextURL)

	return Transaction{
		Transaction: model,
		Display:     money.Signed(model),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%d", url, model.ID),
		},
	}
}

func newTransactions(c *gin.Context, transactions []models.Transaction) []Transaction {
	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(c, t))
	}
	return data
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"amounts must be larger than zero"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                             // The Transaction data, if the request was successful
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                               // List of transactions
	Error *string       `json:"error" example:"dates must be in YYYY-MM-DD format"` // The error, if any occurred
}
