package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/statement"
	"github.com/rs/zerolog/log"
)

type StatementQuery struct {
	Format string `form:"format" example:"xlsx" default:"csv"` // One of csv, xlsx
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/statement [options]
func OptionsGoalStatement(c *gin.Context) {
	resourceOptionsDetail[models.Goal](c, httputil.OptionsGet)
}

// @Summary		Get deposit statement
// @Description	Returns all deposits into the goal with the running balance as CSV or XLSX file
// @Tags			Goals
// @Produce		text/csv
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			format	query		string	false	"One of csv, xlsx. Defaults to csv."
// @Router			/v1/goals/{id}/statement [get]
func GetGoalStatement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var query StatementQuery
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	format, err := statement.ParseFormat(query.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	goal, err := getOwned[models.Goal](c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var deposits []models.Deposit
	err = owned(c).Where(&models.Deposit{GoalID: goal.ID}).Order("date ASC, created_at ASC").Find(&deposits).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	err = statement.Write(&buf, format, goal.Name, statement.FromDeposits(deposits))
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("writing statement")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	filename := format.Filename(goal.Name, time.Now().In(time.UTC))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
