package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/types"
)

type SummaryResponse struct {
	Error *string         `json:"error" example:"the month query parameter must be in YYYY-MM format"` // The error, if any occurred
	Data  *models.Summary `json:"data"`                                                                // The summary of the month
}

func RegisterSummaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSummary)
		r.GET("", GetSummary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly summary
// @Description	Returns income, expenses, installments due and the money still available in a month
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current month."
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &e,
		})
		return
	}

	month, err := query.month(types.MonthOf(time.Now().In(time.UTC)))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	summary, err := models.MonthlySummary(auth.UserID(c), month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
