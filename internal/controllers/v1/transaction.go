package v1

import (
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/filter"
	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PUT("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	int	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get transactions
// @Description	Returns the transactions matching all given filters, in the order they were recorded
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Param			search		query		string	false	"Case insensitive search in description, category and amount"
// @Param			category	query		string	false	"Exact category"
// @Param			type		query		string	false	"Exact type: income, expense or transfer"
// @Param			dateFrom	query		string	false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			dateTo		query		string	false	"Transactions before and at this date, YYYY-MM-DD"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var criteria filter.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: newTransactions(c, co.Ledger.FilteredTransactions(criteria)),
	})
}

// @Summary		Create transaction
// @Description	Records an income or expense. Transfers are created at /v1/transfers
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		models.TransactionInput	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var in models.TransactionInput
	if err := httputil.BindData(c, &in); err != nil {
		transactionResponse(c, http.StatusCreated, models.Transaction{}, err)
		return
	}

	t, err := co.Ledger.AddTransaction(in)
	transactionResponse(c, http.StatusCreated, t, err)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Param			id	path		int	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		transactionResponse(c, http.StatusOK, models.Transaction{}, err)
		return
	}

	t, err := co.Ledger.FindTransaction(id)
	transactionResponse(c, http.StatusOK, t, err)
}

// @Summary		Update transaction
// @Description	Replaces an income or expense. The transaction gets a new ID, which is returned with the new data
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		int						true	"ID of the transaction"
// @Param			transaction	body		models.TransactionInput	true	"Transaction"
// @Router			/v1/transactions/{id} [put]
func (co Controller) UpdateTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		transactionResponse(c, http.StatusOK, models.Transaction{}, err)
		return
	}

	var in models.TransactionInput
	if err := httputil.BindData(c, &in); err != nil {
		transactionResponse(c, http.StatusOK, models.Transaction{}, err)
		return
	}

	t, err := co.Ledger.EditTransaction(id, in)
	transactionResponse(c, http.StatusOK, t, err)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		int	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err == nil {
		err = co.Ledger.DeleteTransaction(id)
	}

	deleteResponse(c, err)
}

// transactionResponse writes the response for a single transaction.
func transactionResponse(c *gin.Context, successStatus int, t models.Transaction, err error) {
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	data := newTransaction(c, t)
	c.JSON(successStatus, TransactionResponse{Data: &data})
}

// deleteResponse writes the response for a deletion.
func deleteResponse(c *gin.Context, err error) {
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
