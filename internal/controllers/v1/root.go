package v1

import (
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`        // URL of transaction list endpoint
	Transfers      string `json:"transfers" example:"https://example.com/api/v1/transfers"`              // URL of transfer endpoint
	Debts          string `json:"debts" example:"https://example.com/api/v1/debts"`                      // URL of debt list endpoint
	BudgetTargets  string `json:"budgetTargets" example:"https://example.com/api/v1/budget-targets"`     // URL of budget target list endpoint
	Balances       string `json:"balances" example:"https://example.com/api/v1/balances"`                // URL of the balances
	Summaries      string `json:"summaries" example:"https://example.com/api/v1/summaries/{kind}"`       // URL template of the window summaries
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`            // URL of the category registry
	CategoryRollup string `json:"categoryRollup" example:"https://example.com/api/v1/categories/rollup"` // URL of the category rollup
	BudgetStatus   string `json:"budgetStatus" example:"https://example.com/api/v1/budget-status"`       // URL of the budget status
	Theme          string `json:"theme" example:"https://example.com/api/v1/theme"`                      // URL of the theme
	Export         string `json:"export" example:"https://example.com/api/v1/export"`                    // URL of the export endpoint
	Import         string `json:"import" example:"https://example.com/api/v1/import"`                    // URL of the import endpoint
}

// GetRoot returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(httputil.ContextURL) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Transactions:   url + "/transactions",
			Transfers:      url + "/transfers",
			Debts:          url + "/debts",
			BudgetTargets:  url + "/budget-targets",
			Balances:       url + "/balances",
			Summaries:      url + "/summaries/{kind}",
			Categories:     url + "/categories",
			CategoryRollup: url + "/categories/rollup",
			BudgetStatus:   url + "/budget-status",
			Theme:          url + "/theme",
			Export:         url + "/export",
			Import:         url + "/import",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all transactions, debts and budget targets
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) DeleteAll(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = co.Ledger.Reset()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
