package v1

import (
	"errors"
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/kv"
	"github.com/Syabadriel/financeTrack/internal/ledger"
	"github.com/Syabadriel/financeTrack/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction with id 42"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, ledger.ErrPersistence) || errors.Is(err, kv.ErrDatabase) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
