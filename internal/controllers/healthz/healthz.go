package healthz

import (
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger verifies that the storage is reachable.
type Pinger interface {
	Ping() error
}

type HTTPError struct {
	Error string `json:"error" example:"sql: database is closed"`
}

func RegisterRoutes(r *gin.RouterGroup, p Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(p))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	HTTPError
// @Router			/healthz [get]
func Get(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.Ping(); err != nil {
			log.Error().Err(err).Msg("Health check failed")
			c.JSON(http.StatusInternalServerError, HTTPError{Error: err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
