package v1

import (
	"fmt"
	"io"
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/filter"
	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/Syabadriel/financeTrack/internal/ledger"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/spreadsheet"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ExportResponse struct {
	Data ledger.Snapshot `json:"data"` // All data of the ledger
}

// RegisterDataRoutes registers the export and import routes with
// the RouterGroup that is passed.
func (co Controller) RegisterDataRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/export", OptionsExport)
	r.GET("/export", co.Export)
	r.OPTIONS("/export/transactions.xlsx", OptionsExport)
	r.GET("/export/transactions.xlsx", co.ExportXLSX)
	r.OPTIONS("/export/transactions.csv", OptionsExport)
	r.GET("/export/transactions.csv", co.ExportCSV)

	r.OPTIONS("/import", OptionsImport)
	r.POST("/import", co.Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Data
// @Success		204
// @Router			/v1/export [options]
// @Router			/v1/export/transactions.xlsx [options]
// @Router			/v1/export/transactions.csv [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Data
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Export
// @Description	Returns all transactions, debts and budget targets and the theme
// @Tags			Data
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Router			/v1/export [get]
func (co Controller) Export(c *gin.Context) {
	c.JSON(http.StatusOK, ExportResponse{Data: co.Ledger.Export()})
}

// @Summary		Import
// @Description	Replaces all transactions, debts and budget targets with the ones sent. The theme is only changed when it is set
// @Tags			Data
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			snapshot	body		ledger.Snapshot	true	"Data to import"
// @Router			/v1/import [post]
func (co Controller) Import(c *gin.Context) {
	var snapshot ledger.Snapshot
	err := httputil.BindData(c, &snapshot)
	if err == nil {
		err = co.Ledger.Import(snapshot)
	}

	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Export transactions as XLSX
// @Description	Returns the transactions matching all given filters as Excel workbook
// @Tags			Data
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400			{object}	httpError
// @Param			search		query		string	false	"Case insensitive search in description, category and amount"
// @Param			category	query		string	false	"Exact category"
// @Param			type		query		string	false	"Exact type: income, expense or transfer"
// @Param			dateFrom	query		string	false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			dateTo		query		string	false	"Transactions before and at this date, YYYY-MM-DD"
// @Router			/v1/export/transactions.xlsx [get]
func (co Controller) ExportXLSX(c *gin.Context) {
	co.exportTransactions(c, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", spreadsheet.WriteXLSX)
}

// @Summary		Export transactions as CSV
// @Description	Returns the transactions matching all given filters as comma separated values
// @Tags			Data
// @Produce		text/csv
// @Success		200
// @Failure		400			{object}	httpError
// @Param			search		query		string	false	"Case insensitive search in description, category and amount"
// @Param			category	query		string	false	"Exact category"
// @Param			type		query		string	false	"Exact type: income, expense or transfer"
// @Param			dateFrom	query		string	false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			dateTo		query		string	false	"Transactions before and at this date, YYYY-MM-DD"
// @Router			/v1/export/transactions.csv [get]
func (co Controller) ExportCSV(c *gin.Context) {
	co.exportTransactions(c, "csv", "text/csv; charset=utf-8", spreadsheet.WriteCSV)
}

type writeFunc func(io.Writer, []models.Transaction) error

func (co Controller) exportTransactions(c *gin.Context, extension, contentType string, write writeFunc) {
	var criteria filter.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transactions := co.Ledger.FilteredTransactions(criteria)
	filename := fmt.Sprintf("transactions_%s.%s", co.Ledger.Today().Time().Format("20060102"), extension)

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	// Headers are already sent, a failure can only be logged
	if err := write(c.Writer, transactions); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Writing export")
	}
}
