package v1

import (
	"fmt"
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/gin-gonic/gin"
)

type BudgetTargetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budget-targets/1710000000000"` // The budget target itself
}

// BudgetTarget is the representation of a BudgetTarget in API v1.
type BudgetTarget struct {
	models.BudgetTarget
	Links BudgetTargetLinks `json:"links"`
}

func newBudgetTarget(c *gin.Context, model models.BudgetTarget) BudgetTarget {
	return BudgetTarget{
		BudgetTarget: model,
		Links: BudgetTargetLinks{
			Self: fmt.Sprintf("%s/v1/budget-targets/%d", c.GetString(httputil.ContextURL), model.ID),
		},
	}
}

type BudgetTargetResponse struct {
	Error *string       `json:"error" example:"budget targets need a category"` // The error, if any occurred
	Data  *BudgetTarget `json:"data"`                                           // The BudgetTarget data, if the request was successful
}

type BudgetTargetListResponse struct {
	Data  []BudgetTarget `json:"data"`                                           // List of budget targets
	Error *string        `json:"error" example:"budget targets need a category"` // The error, if any occurred
}

// RegisterBudgetTargetRoutes registers the routes for budget targets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetTargetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetTargets)
		r.GET("", co.GetBudgetTargets)
		r.POST("", co.CreateBudgetTarget)
	}

	// Budget target with ID
	{
		r.OPTIONS("/:id", OptionsBudgetTargetDetail)
		r.GET("/:id", co.GetBudgetTarget)
		r.PUT("/:id", co.UpdateBudgetTarget)
		r.DELETE("/:id", co.DeleteBudgetTarget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Targets
// @Success		204
// @Router			/v1/budget-targets [options]
func OptionsBudgetTargets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Targets
// @Success		204
// @Param			id	path	int	true	"ID of the budget target"
// @Router			/v1/budget-targets/{id} [options]
func OptionsBudgetTargetDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get budget targets
// @Description	Returns all budget targets
// @Tags			Budget Targets
// @Produce		json
// @Success		200	{object}	BudgetTargetListResponse
// @Router			/v1/budget-targets [get]
func (co Controller) GetBudgetTargets(c *gin.Context) {
	targets := co.Ledger.BudgetTargets()

	data := make([]BudgetTarget, 0, len(targets))
	for _, b := range targets {
		data = append(data, newBudgetTarget(c, b))
	}

	c.JSON(http.StatusOK, BudgetTargetListResponse{Data: data})
}

// @Summary		Create budget target
// @Description	Creates a spending cap for a category. The period defaults to monthly
// @Tags			Budget Targets
// @Accept			json
// @Produce		json
// @Success		201				{object}	BudgetTargetResponse
// @Failure		400				{object}	BudgetTargetResponse
// @Failure		500				{object}	BudgetTargetResponse
// @Param			budgetTarget	body		models.BudgetTargetInput	true	"Budget target"
// @Router			/v1/budget-targets [post]
func (co Controller) CreateBudgetTarget(c *gin.Context) {
	var in models.BudgetTargetInput
	if err := httputil.BindData(c, &in); err != nil {
		budgetTargetResponse(c, http.StatusCreated, models.BudgetTarget{}, err)
		return
	}

	b, err := co.Ledger.AddBudgetTarget(in)
	budgetTargetResponse(c, http.StatusCreated, b, err)
}

// @Summary		Get budget target
// @Description	Returns a specific budget target
// @Tags			Budget Targets
// @Produce		json
// @Success		200	{object}	BudgetTargetResponse
// @Failure		400	{object}	BudgetTargetResponse
// @Failure		404	{object}	BudgetTargetResponse
// @Param			id	path		int	true	"ID of the budget target"
// @Router			/v1/budget-targets/{id} [get]
func (co Controller) GetBudgetTarget(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		budgetTargetResponse(c, http.StatusOK, models.BudgetTarget{}, err)
		return
	}

	b, err := co.Ledger.FindBudgetTarget(id)
	budgetTargetResponse(c, http.StatusOK, b, err)
}

// @Summary		Update budget target
// @Description	Replaces a budget target. The target gets a new ID, which is returned with the new data
// @Tags			Budget Targets
// @Accept			json
// @Produce		json
// @Success		200				{object}	BudgetTargetResponse
// @Failure		400				{object}	BudgetTargetResponse
// @Failure		404				{object}	BudgetTargetResponse
// @Failure		500				{object}	BudgetTargetResponse
// @Param			id				path		int							true	"ID of the budget target"
// @Param			budgetTarget	body		models.BudgetTargetInput	true	"Budget target"
// @Router			/v1/budget-targets/{id} [put]
func (co Controller) UpdateBudgetTarget(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		budgetTargetResponse(c, http.StatusOK, models.BudgetTarget{}, err)
		return
	}

	var in models.BudgetTargetInput
	if err := httputil.BindData(c, &in); err != nil {
		budgetTargetResponse(c, http.StatusOK, models.BudgetTarget{}, err)
		return
	}

	b, err := co.Ledger.EditBudgetTarget(id, in)
	budgetTargetResponse(c, http.StatusOK, b, err)
}

// @Summary		Delete budget target
// @Description	Deletes a budget target
// @Tags			Budget Targets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		int	true	"ID of the budget target"
// @Router			/v1/budget-targets/{id} [delete]
func (co Controller) DeleteBudgetTarget(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err == nil {
		err = co.Ledger.DeleteBudgetTarget(id)
	}

	deleteResponse(c, err)
}

func budgetTargetResponse(c *gin.Context, successStatus int, b models.BudgetTarget, err error) {
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetTargetResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetTarget(c, b)
	c.JSON(successStatus, BudgetTargetResponse{Data: &data})
}
