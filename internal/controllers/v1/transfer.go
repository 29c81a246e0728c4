package v1

import (
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransferRoutes registers the routes for transfers with
// the RouterGroup that is passed.
func (co Controller) RegisterTransferRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransfers)
	r.POST("", co.CreateTransfer)

	r.OPTIONS("/:id", OptionsTransferDetail)
	r.PUT("/:id", co.UpdateTransfer)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Router			/v1/transfers [options]
func OptionsTransfers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Param			id	path	int	true	"ID of the transfer"
// @Router			/v1/transfers/{id} [options]
func OptionsTransferDetail(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Create transfer
// @Description	Moves money between the cash and the digital account
// @Tags			Transfers
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transfer	body		models.TransferInput	true	"Transfer"
// @Router			/v1/transfers [post]
func (co Controller) CreateTransfer(c *gin.Context) {
	var in models.TransferInput
	if err := httputil.BindData(c, &in); err != nil {
		transactionResponse(c, http.StatusCreated, models.Transaction{}, err)
		return
	}

	t, err := co.Ledger.AddTransfer(in)
	transactionResponse(c, http.StatusCreated, t, err)
}

// @Summary		Update transfer
// @Description	Replaces a transfer. The transfer gets a new ID, which is returned with the new data
// @Tags			Transfers
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		int						true	"ID of the transfer"
// @Param			transfer	body		models.TransferInput	true	"Transfer"
// @Router			/v1/transfers/{id} [put]
func (co Controller) UpdateTransfer(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		transactionResponse(c, http.StatusOK, models.Transaction{}, err)
		return
	}

	var in models.TransferInput
	if err := httputil.BindData(c, &in); err != nil {
		transactionResponse(c, http.StatusOK, models.Transaction{}, err)
		return
	}

	t, err := co.Ledger.EditTransfer(id, in)
	transactionResponse(c, http.StatusOK, t, err)
}
