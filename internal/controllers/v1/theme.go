package v1

import (
	"net/http"

	"github.com/Syabadriel/financeTrack/internal/httputil"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/gin-gonic/gin"
)

type Theme struct {
	Theme models.Theme `json:"theme" example:"dark"` // light or dark
}

type ThemeResponse struct {
	Error *string `json:"error" example:"theme must be one of light, dark"` // The error, if any occurred
	Data  *Theme  `json:"data"`                                             // The theme
}

// RegisterThemeRoutes registers the routes for the theme with
// the RouterGroup that is passed.
func (co Controller) RegisterThemeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTheme)
	r.GET("", co.GetTheme)
	r.PUT("", co.SetTheme)

	r.OPTIONS("/toggle", OptionsThemeToggle)
	r.POST("/toggle", co.ToggleTheme)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Theme
// @Success		204
// @Router			/v1/theme [options]
func OptionsTheme(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Theme
// @Success		204
// @Router			/v1/theme/toggle [options]
func OptionsThemeToggle(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get theme
// @Description	Returns the colour scheme of the user interface
// @Tags			Theme
// @Produce		json
// @Success		200	{object}	ThemeResponse
// @Router			/v1/theme [get]
func (co Controller) GetTheme(c *gin.Context) {
	themeResponse(c, co.Ledger.Theme(), nil)
}

// @Summary		Set theme
// @Description	Sets the colour scheme of the user interface
// @Tags			Theme
// @Accept			json
// @Produce		json
// @Success		200		{object}	ThemeResponse
// @Failure		400		{object}	ThemeResponse
// @Failure		500		{object}	ThemeResponse
// @Param			theme	body		Theme	true	"Theme"
// @Router			/v1/theme [put]
func (co Controller) SetTheme(c *gin.Context) {
	var in Theme
	if err := httputil.BindData(c, &in); err != nil {
		themeResponse(c, "", err)
		return
	}

	err := co.Ledger.SetTheme(in.Theme)
	themeResponse(c, in.Theme, err)
}

// @Summary		Toggle theme
// @Description	Switches between the light and the dark theme
// @Tags			Theme
// @Produce		json
// @Success		200	{object}	ThemeResponse
// @Failure		500	{object}	ThemeResponse
// @Router			/v1/theme/toggle [post]
func (co Controller) ToggleTheme(c *gin.Context) {
	theme, err := co.Ledger.ToggleTheme()
	themeResponse(c, theme, err)
}

func themeResponse(c *gin.Context, theme models.Theme, err error) {
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ThemeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Data: &Theme{Theme: theme}})
}
