package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
)

func RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", GetIncomes)
		r.POST("", CreateIncomes)
	}
	{
		r.OPTIONS("/current", OptionsCurrentIncome)
		r.GET("/current", GetCurrentIncome)
	}
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail[models.Income](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Create incomes
// @Description	Registers monthly salaries. The most recently registered income is the current one.
// @Tags			Incomes
// @Produce		json
// @Success		201	{object}	IncomeCreateResponse
// @Failure		400	{object}	IncomeCreateResponse
// @Failure		500	{object}	IncomeCreateResponse
// @Param			incomes	body		[]IncomeEditable	true	"Incomes"
// @Router			/v1/incomes [post]
func CreateIncomes(c *gin.Context) {
	var incomes []IncomeEditable

	err := httputil.BindData(c, &incomes)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, create := range incomes {
		income := create.model()
		income.UserID = auth.UserID(c)

		err = models.DB.Create(&income).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newIncome(c, income)
		r.Data = append(r.Data, IncomeResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get incomes
// @Description	Returns a list of incomes, the most recently registered first
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/v1/incomes [get]
// @Param			offset	query	uint	false	"The offset of the first income returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of incomes to return. Defaults to 50."
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := owned(c).
		Order("registered_at DESC, created_at DESC").
		Where(&where, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var incomes []models.Income
	err := q.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	income, err := getOwned[models.Income](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Update income
// @Description	Updates an existing income. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Incomes"
// @Router			/v1/incomes/{id} [patch]
func UpdateIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	income, err := getOwned[models.Income](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	var data IncomeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&income).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	income, err := getOwned[models.Income](c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&income).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes/current [options]
func OptionsCurrentIncome(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get current income
// @Description	Returns the most recently registered income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Router			/v1/incomes/current [get]
func GetCurrentIncome(c *gin.Context) {
	income, err := models.CurrentIncome(auth.UserID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}
