package v1

import (
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/summary"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the read-only routes derived from the
// ledger with the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/balances", OptionsReport)
	r.GET("/balances", co.GetBalances)

	r.OPTIONS("/summaries/:kind", OptionsReport)
	r.GET("/summaries/:kind", co.GetSummary)

	r.OPTIONS("/categories", OptionsReport)
	r.GET("/categories", GetCategories)
	r.OPTIONS("/categories/rollup", OptionsReport)
	r.GET("/categories/rollup", co.GetCategoryRollup)

	r.OPTIONS("/budget-status", OptionsReport)
	r.GET("/budget-status", co.GetBudgetStatus)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/balances [options]
// @Router			/v1/summaries/{kind} [options]
// @Router			/v1/categories [options]
// @Router			/v1/categories/rollup [options]
// @Router			/v1/budget-status [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get balances
// @Description	Returns the cash and digital balance, total income, expense and debt and the net worth
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	BalancesResponse
// @Router			/v1/balances [get]
func (co Controller) GetBalances(c *gin.Context) {
	c.JSON(http.StatusOK, BalancesResponse{
		Data: newBalances(co.Ledger.Balances()),
	})
}

// @Summary		Get summary
// @Description	Returns income, expense and net totals of the day, week, month or year containing the date, with one bucket per day (per month for yearly summaries)
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Param			kind	path		string	true	"daily, weekly, monthly or yearly"
// @Param			date	query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/summaries/{kind} [get]
func (co Controller) GetSummary(c *gin.Context) {
	var query QueryDate
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	s, err := co.Ledger.WindowSummary(summary.Kind(c.Param("kind")), query.Date)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &s})
}

// @Summary		Get categories
// @Description	Returns the suggested categories for income and expenses
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	CategoriesResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Data: Categories{
			Income:  models.IncomeCategories(),
			Expense: models.ExpenseCategories(),
			All:     models.AllCategories(),
		},
	})
}

// @Summary		Get category rollup
// @Description	Returns income and expense totals per category over all transactions. Transfers are not included
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	CategoryRollupResponse
// @Router			/v1/categories/rollup [get]
func (co Controller) GetCategoryRollup(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryRollupResponse{
		Data: co.Ledger.CategoryRollup(),
	})
}

// @Summary		Get budget status
// @Description	Returns the spending of every budget target in its period containing the date
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	BudgetStatusResponse
// @Failure		400		{object}	BudgetStatusResponse
// @Param			date	query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/budget-status [get]
func (co Controller) GetBudgetStatus(c *gin.Context) {
	var query QueryDate
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetStatusResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetStatusResponse{
		Data: co.Ledger.BudgetStatus(query.Date),
	})
}
