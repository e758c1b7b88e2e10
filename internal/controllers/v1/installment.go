package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
	"github.com/poupix/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Installments are created and removed together with their debt.
func RegisterInstallmentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsInstallments)
		r.GET("", GetInstallments)
	}
	{
		r.OPTIONS("/:id", OptionsInstallmentDetail)
		r.GET("/:id", GetInstallment)
		r.PATCH("/:id", UpdateInstallment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Router			/v1/installments [options]
func OptionsInstallments(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id} [options]
func OptionsInstallmentDetail(c *gin.Context) {
	resourceOptionsDetail[models.Installment](c, httputil.OptionsGetPatch)
}

// @Summary		Get installments
// @Description	Returns a list of installments ordered by the month they are due in
// @Tags			Installments
// @Produce		json
// @Success		200	{object}	InstallmentListResponse
// @Failure		400	{object}	InstallmentListResponse
// @Failure		500	{object}	InstallmentListResponse
// @Router			/v1/installments [get]
// @Param			debt	query	string	false	"Filter by debt ID"
// @Param			paid	query	bool	false	"Has the installment been paid?"
// @Param			month	query	string	false	"Filter by the month the installment is due in, YYYY-MM"
// @Param			offset	query	uint	false	"The offset of the first installment returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of installments to return. Defaults to 50."
func GetInstallments(c *gin.Context) {
	var filter InstallmentQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := owned(c).
		Order("due_month ASC, number ASC").
		Where(&where, queryFields...)

	if slices.Contains(setFields, "Month") {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			e := errMonthNotParseable.Error()
			c.JSON(http.StatusBadRequest, InstallmentListResponse{
				Error: &e,
			})
			return
		}

		q = q.Where("due_month = ?", month)
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var installments []models.Installment
	err := q.Find(&installments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InstallmentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Installment, 0, len(installments))
	for _, installment := range installments {
		data = append(data, newInstallment(c, installment))
	}

	c.JSON(http.StatusOK, InstallmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get installment
// @Description	Returns a specific installment
// @Tags			Installments
// @Produce		json
// @Success		200	{object}	InstallmentResponse
// @Failure		400	{object}	InstallmentResponse
// @Failure		404	{object}	InstallmentResponse
// @Failure		500	{object}	InstallmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installments/{id} [get]
func GetInstallment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &e,
		})
		return
	}

	installment, err := getOwned[models.Installment](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInstallment(c, installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &apiResource})
}

// @Summary		Update installment
// @Description	Marks an installment as paid or unpaid. The paid installments of the debt are updated accordingly.
// @Tags			Installments
// @Accept			json
// @Produce		json
// @Success		200			{object}	InstallmentResponse
// @Failure		400			{object}	InstallmentResponse
// @Failure		404			{object}	InstallmentResponse
// @Failure		500			{object}	InstallmentResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			installment	body		InstallmentEditable	true	"Installment"
// @Router			/v1/installments/{id} [patch]
func UpdateInstallment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.Installment{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &e,
		})
		return
	}

	for _, field := range updateFields {
		if field != "Paid" {
			e := models.ErrInstallmentNotUpdatableDue.Error()
			c.JSON(http.StatusBadRequest, InstallmentResponse{
				Error: &e,
			})
			return
		}
	}

	var data InstallmentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &e,
		})
		return
	}

	installment, err := models.SetInstallmentPaid(auth.UserID(c), uri.ID.UUID, *data.Paid)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInstallment(c, installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &apiResource})
}
