// Package v1 implements the JSON API for the ledger.
package v1

import (
	"github.com/Syabadriel/financeTrack/internal/ledger"
	"github.com/gin-gonic/gin"
)

// Controller serves the API from a Ledger.
type Controller struct {
	Ledger *ledger.Ledger
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.DELETE("", co.DeleteAll)

	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterTransferRoutes(r.Group("/transfers"))
	co.RegisterDebtRoutes(r.Group("/debts"))
	co.RegisterBudgetTargetRoutes(r.Group("/budget-targets"))
	co.RegisterReportRoutes(r)
	co.RegisterThemeRoutes(r.Group("/theme"))
	co.RegisterDataRoutes(r)
}
