package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
)

func RegisterDepositRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDeposits)
		r.GET("", GetDeposits)
		r.POST("", CreateDeposits)
	}
	{
		r.OPTIONS("/:id", OptionsDepositDetail)
		r.GET("/:id", GetDeposit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deposits
// @Success		204
// @Router			/v1/deposits [options]
func OptionsDeposits(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deposits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/deposits/{id} [options]
func OptionsDepositDetail(c *gin.Context) {
	resourceOptionsDetail[models.Deposit](c, httputil.OptionsGet)
}

// @Summary		Create deposits
// @Description	Deposits money into goals. Goals that have reached their target only accept challenge deposits.
// @Tags			Deposits
// @Produce		json
// @Success		201			{object}	DepositCreateResponse
// @Failure		400			{object}	DepositCreateResponse
// @Failure		404			{object}	DepositCreateResponse
// @Failure		409			{object}	DepositCreateResponse
// @Failure		500			{object}	DepositCreateResponse
// @Param			deposits	body		[]DepositEditable	true	"Deposits"
// @Router			/v1/deposits [post]
func CreateDeposits(c *gin.Context) {
	var deposits []DepositEditable

	err := httputil.BindData(c, &deposits)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := DepositCreateResponse{}

	for _, create := range deposits {
		if create.GoalID == uuid.Nil {
			status = r.appendError(errGoalIDMissing, status)
			continue
		}

		if create.Method == models.MethodFromChallenge {
			status = r.appendError(errMethodReserved, status)
			continue
		}

		result, err := models.AddDeposit(auth.UserID(c), create.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newDeposit(c, result.Deposit)
		r.Data = append(r.Data, DepositResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get deposits
// @Description	Returns a list of deposits, the newest first
// @Tags			Deposits
// @Produce		json
// @Success		200	{object}	DepositListResponse
// @Failure		400	{object}	DepositListResponse
// @Failure		500	{object}	DepositListResponse
// @Router			/v1/deposits [get]
// @Param			goal		query	string	false	"Filter by goal ID"
// @Param			method		query	string	false	"Filter by deposit method"
// @Param			fromIncome	query	bool	false	"Was the money taken from the income?"
// @Param			note		query	string	false	"Filter by note"
// @Param			offset		query	uint	false	"The offset of the first deposit returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of deposits to return. Defaults to 50."
func GetDeposits(c *gin.Context) {
	var filter DepositQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DepositListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := owned(c).
		Order("date DESC, created_at DESC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, "", filter.Note, "")
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var deposits []models.Deposit
	err := q.Find(&deposits).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DepositListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Deposit, 0, len(deposits))
	for _, deposit := range deposits {
		data = append(data, newDeposit(c, deposit))
	}

	c.JSON(http.StatusOK, DepositListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get deposit
// @Description	Returns a specific deposit
// @Tags			Deposits
// @Produce		json
// @Success		200	{object}	DepositResponse
// @Failure		400	{object}	DepositResponse
// @Failure		404	{object}	DepositResponse
// @Failure		500	{object}	DepositResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/deposits/{id} [get]
func GetDeposit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	deposit, err := getOwned[models.Deposit](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDeposit(c, deposit)
	c.JSON(http.StatusOK, DepositResponse{Data: &apiResource})
}
