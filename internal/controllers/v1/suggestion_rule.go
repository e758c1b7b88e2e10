package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
)

func RegisterSuggestionRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSuggestionRules)
		r.GET("", GetSuggestionRules)
		r.POST("", CreateSuggestionRules)
	}
	{
		r.OPTIONS("/:id", OptionsSuggestionRuleDetail)
		r.GET("/:id", GetSuggestionRule)
		r.PATCH("/:id", UpdateSuggestionRule)
		r.DELETE("/:id", DeleteSuggestionRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Suggestion Rules
// @Success		204
// @Router			/v1/suggestion-rules [options]
func OptionsSuggestionRules(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Suggestion Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suggestion-rules/{id} [options]
func OptionsSuggestionRuleDetail(c *gin.Context) {
	resourceOptionsDetail[models.SuggestionRule](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Create suggestion rules
// @Description	Creates new suggestion rules. New expenses matching a rule get a saving suggestion.
// @Tags			Suggestion Rules
// @Produce		json
// @Success		201	{object}	SuggestionRuleCreateResponse
// @Failure		400	{object}	SuggestionRuleCreateResponse
// @Failure		500	{object}	SuggestionRuleCreateResponse
// @Param			rules	body		[]SuggestionRuleEditable	true	"Suggestion Rules"
// @Router			/v1/suggestion-rules [post]
func CreateSuggestionRules(c *gin.Context) {
	var rules []SuggestionRuleEditable

	err := httputil.BindData(c, &rules)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := SuggestionRuleCreateResponse{}

	for _, create := range rules {
		rule := create.model()
		rule.UserID = auth.UserID(c)

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newSuggestionRule(c, rule)
		r.Data = append(r.Data, SuggestionRuleResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get suggestion rules
// @Description	Returns a list of suggestion rules in the order they are checked
// @Tags			Suggestion Rules
// @Produce		json
// @Success		200	{object}	SuggestionRuleListResponse
// @Failure		400	{object}	SuggestionRuleListResponse
// @Failure		500	{object}	SuggestionRuleListResponse
// @Router			/v1/suggestion-rules [get]
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			match		query	string	false	"Filter by match pattern"
// @Param			kind		query	string	false	"Filter by suggestion kind"
// @Param			offset		query	uint	false	"The offset of the first rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of rules to return. Defaults to 50."
func GetSuggestionRules(c *gin.Context) {
	var filter SuggestionRuleQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SuggestionRuleListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := owned(c).
		Order("priority ASC, created_at ASC").
		Where(&where, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var rules []models.SuggestionRule
	err := q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuggestionRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SuggestionRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newSuggestionRule(c, rule))
	}

	c.JSON(http.StatusOK, SuggestionRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get suggestion rule
// @Description	Returns a specific suggestion rule
// @Tags			Suggestion Rules
// @Produce		json
// @Success		200	{object}	SuggestionRuleResponse
// @Failure		400	{object}	SuggestionRuleResponse
// @Failure		404	{object}	SuggestionRuleResponse
// @Failure		500	{object}	SuggestionRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suggestion-rules/{id} [get]
func GetSuggestionRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleResponse{
			Error: &e,
		})
		return
	}

	rule, err := getOwned[models.SuggestionRule](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSuggestionRule(c, rule)
	c.JSON(http.StatusOK, SuggestionRuleResponse{Data: &apiResource})
}

// @Summary		Update suggestion rule
// @Description	Updates an existing suggestion rule. Only values to be updated need to be specified.
// @Tags			Suggestion Rules
// @Accept			json
// @Produce		json
// @Success		200	{object}	SuggestionRuleResponse
// @Failure		400	{object}	SuggestionRuleResponse
// @Failure		404	{object}	SuggestionRuleResponse
// @Failure		500	{object}	SuggestionRuleResponse
// @Param			id	path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		SuggestionRuleEditable	true	"Suggestion Rules"
// @Router			/v1/suggestion-rules/{id} [patch]
func UpdateSuggestionRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleResponse{
			Error: &e,
		})
		return
	}

	rule, err := getOwned[models.SuggestionRule](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SuggestionRuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleResponse{
			Error: &e,
		})
		return
	}

	var data SuggestionRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionRuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSuggestionRule(c, rule)
	c.JSON(http.StatusOK, SuggestionRuleResponse{Data: &apiResource})
}

// @Summary		Delete suggestion rule
// @Description	Deletes a suggestion rule
// @Tags			Suggestion Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suggestion-rules/{id} [delete]
func DeleteSuggestionRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	rule, err := getOwned[models.SuggestionRule](c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
