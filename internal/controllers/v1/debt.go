package v1

import (
	"fmt"
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/money"
	"github.com/gin-gonic/gin"
)

type DebtLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/debts/1710000000000"`    // The debt itself
	Pay  string `json:"pay" example:"https://example.com/api/v1/debts/1710000000000/pay"` // Endpoint to mark the debt as paid
}

// Debt is the representation of a Debt in API v1.
type Debt struct {
	models.Debt
	Display string    `json:"display" example:"Rp 150.000"` // The amount formatted for display
	Links   DebtLinks `json:"links"`
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	self := fmt.Sprintf("%s/v1/debts/%d", c.GetString(httputil.ContextURL), model.ID)

	return Debt{
		Debt:    model,
		Display: money.Format(model.Amount),
		Links: DebtLinks{
			Self: self,
			Pay:  self + "/pay",
		},
	}
}

type DebtResponse struct {
	Error *string `json:"error" example:"there is no debt with id 42"` // The error, if any occurred
	Data  *Debt   `json:"data"`                                        // The Debt data, if the request was successful
}

type DebtListResponse struct {
	Data  []Debt  `json:"data"`                                        // List of debts
	Error *string `json:"error" example:"there is no debt with id 42"` // The error, if any occurred
}

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func (co Controller) RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebts)
		r.GET("", co.GetDebts)
		r.POST("", co.CreateDebt)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", co.GetDebt)
		r.PUT("/:id", co.UpdateDebt)
		r.DELETE("/:id", co.DeleteDebt)
		r.OPTIONS("/:id/pay", OptionsDebtPay)
		r.POST("/:id/pay", co.PayDebt)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Param			id	path	int	true	"ID of the debt"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Param			id	path	int	true	"ID of the debt"
// @Router			/v1/debts/{id}/pay [options]
func OptionsDebtPay(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get debts
// @Description	Returns all outstanding debts
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Router			/v1/debts [get]
func (co Controller) GetDebts(c *gin.Context) {
	debts := co.Ledger.Debts()

	data := make([]Debt, 0, len(debts))
	for _, d := range debts {
		data = append(data, newDebt(c, d))
	}

	c.JSON(http.StatusOK, DebtListResponse{Data: data})
}

// @Summary		Create debt
// @Description	Records a new debt
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		201		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			debt	body		models.DebtInput	true	"Debt"
// @Router			/v1/debts [post]
func (co Controller) CreateDebt(c *gin.Context) {
	var in models.DebtInput
	if err := httputil.BindData(c, &in); err != nil {
		debtResponse(c, http.StatusCreated, models.Debt{}, err)
		return
	}

	d, err := co.Ledger.AddDebt(in)
	debtResponse(c, http.StatusCreated, d, err)
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Param			id	path		int	true	"ID of the debt"
// @Router			/v1/debts/{id} [get]
func (co Controller) GetDebt(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		debtResponse(c, http.StatusOK, models.Debt{}, err)
		return
	}

	d, err := co.Ledger.FindDebt(id)
	debtResponse(c, http.StatusOK, d, err)
}

// @Summary		Update debt
// @Description	Replaces a debt. The debt gets a new ID, which is returned with the new data
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		int					true	"ID of the debt"
// @Param			debt	body		models.DebtInput	true	"Debt"
// @Router			/v1/debts/{id} [put]
func (co Controller) UpdateDebt(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		debtResponse(c, http.StatusOK, models.Debt{}, err)
		return
	}

	var in models.DebtInput
	if err := httputil.BindData(c, &in); err != nil {
		debtResponse(c, http.StatusOK, models.Debt{}, err)
		return
	}

	d, err := co.Ledger.EditDebt(id, in)
	debtResponse(c, http.StatusOK, d, err)
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		int	true	"ID of the debt"
// @Router			/v1/debts/{id} [delete]
func (co Controller) DeleteDebt(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err == nil {
		err = co.Ledger.DeleteDebt(id)
	}

	deleteResponse(c, err)
}

// @Summary		Pay debt
// @Description	Marks a debt as paid, which removes it
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		int	true	"ID of the debt"
// @Router			/v1/debts/{id}/pay [post]
func (co Controller) PayDebt(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err == nil {
		err = co.Ledger.PayDebt(id)
	}

	deleteResponse(c, err)
}

func debtResponse(c *gin.Context, successStatus int, d models.Debt, err error) {
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := newDebt(c, d)
	c.JSON(successStatus, DebtResponse{Data: &data})
}
