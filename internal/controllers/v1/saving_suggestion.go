package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/poupix/backend/internal/advisor"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
	ez_uuid "github.com/poupix/backend/internal/uuid"
	"github.com/rs/zerolog/log"
)

var savingsAdvisor *advisor.Advisor

func RegisterSavingSuggestionRoutes(r *gin.RouterGroup, a *advisor.Advisor) {
	savingsAdvisor = a

	{
		r.OPTIONS("", OptionsSavingSuggestions)
		r.GET("", GetSavingSuggestions)
		r.POST("", CreateSavingSuggestions)
	}
	{
		r.OPTIONS("/analyze", OptionsAnalyzeExpenses)
		r.POST("/analyze", AnalyzeExpenses)
	}
	{
		r.OPTIONS("/:id", OptionsSavingSuggestionDetail)
		r.GET("/:id", GetSavingSuggestion)
		r.PATCH("/:id", UpdateSavingSuggestion)
		r.DELETE("/:id", DeleteSavingSuggestion)
	}
	{
		r.OPTIONS("/:id/apply", OptionsApplySavingSuggestion)
		r.POST("/:id/apply", ApplySavingSuggestion)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Saving Suggestions
// @Success		204
// @Router			/v1/saving-suggestions [options]
func OptionsSavingSuggestions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Saving Suggestions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/saving-suggestions/{id} [options]
func OptionsSavingSuggestionDetail(c *gin.Context) {
	resourceOptionsDetail[models.SavingSuggestion](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Saving Suggestions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/saving-suggestions/{id}/apply [options]
func OptionsApplySavingSuggestion(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Saving Suggestions
// @Success		204
// @Router			/v1/saving-suggestions/analyze [options]
func OptionsAnalyzeExpenses(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create saving suggestions
// @Description	Creates new saving suggestions
// @Tags			Saving Suggestions
// @Produce		json
// @Success		201			{object}	SavingSuggestionCreateResponse
// @Failure		400			{object}	SavingSuggestionCreateResponse
// @Failure		500			{object}	SavingSuggestionCreateResponse
// @Param			suggestions	body		[]SavingSuggestionEditable	true	"Saving suggestions"
// @Router			/v1/saving-suggestions [post]
func CreateSavingSuggestions(c *gin.Context) {
	var suggestions []SavingSuggestionEditable

	err := httputil.BindData(c, &suggestions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := SavingSuggestionCreateResponse{}

	for _, create := range suggestions {
		suggestion := create.model()
		suggestion.UserID = auth.UserID(c)

		if suggestion.ExpenseID != nil {
			_, err := getOwned[models.Expense](c, ez_uuid.UUID{UUID: *suggestion.ExpenseID})
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		err = models.DB.Create(&suggestion).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newSavingSuggestion(c, suggestion)
		r.Data = append(r.Data, SavingSuggestionResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get saving suggestions
// @Description	Returns a list of saving suggestions, the newest first
// @Tags			Saving Suggestions
// @Produce		json
// @Success		200	{object}	SavingSuggestionListResponse
// @Failure		400	{object}	SavingSuggestionListResponse
// @Failure		500	{object}	SavingSuggestionListResponse
// @Router			/v1/saving-suggestions [get]
// @Param			kind	query	string	false	"Filter by suggestion kind"
// @Param			read	query	bool	false	"Has the suggestion been read?"
// @Param			applied	query	bool	false	"Has the suggestion been applied?"
// @Param			expense	query	string	false	"Filter by expense ID"
// @Param			offset	query	uint	false	"The offset of the first suggestion returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of suggestions to return. Defaults to 50."
func GetSavingSuggestions(c *gin.Context) {
	var filter SavingSuggestionQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SavingSuggestionListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := owned(c).
		Order("date DESC, created_at DESC").
		Where(&where, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var suggestions []models.SavingSuggestion
	err := q.Find(&suggestions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingSuggestionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SavingSuggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		data = append(data, newSavingSuggestion(c, suggestion))
	}

	c.JSON(http.StatusOK, SavingSuggestionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get saving suggestion
// @Description	Returns a specific saving suggestion
// @Tags			Saving Suggestions
// @Produce		json
// @Success		200	{object}	SavingSuggestionResponse
// @Failure		400	{object}	SavingSuggestionResponse
// @Failure		404	{object}	SavingSuggestionResponse
// @Failure		500	{object}	SavingSuggestionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/saving-suggestions/{id} [get]
func GetSavingSuggestion(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionResponse{
			Error: &e,
		})
		return
	}

	suggestion, err := getOwned[models.SavingSuggestion](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSavingSuggestion(c, suggestion)
	c.JSON(http.StatusOK, SavingSuggestionResponse{Data: &apiResource})
}

// @Summary		Update saving suggestion
// @Description	Updates an existing saving suggestion. Only values to be updated need to be specified.
// @Tags			Saving Suggestions
// @Accept			json
// @Produce		json
// @Success		200			{object}	SavingSuggestionResponse
// @Failure		400			{object}	SavingSuggestionResponse
// @Failure		404			{object}	SavingSuggestionResponse
// @Failure		500			{object}	SavingSuggestionResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			suggestion	body		SavingSuggestionEditable	true	"Saving suggestion"
// @Router			/v1/saving-suggestions/{id} [patch]
func UpdateSavingSuggestion(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionResponse{
			Error: &e,
		})
		return
	}

	suggestion, err := getOwned[models.SavingSuggestion](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingSuggestionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionResponse{
			Error: &e,
		})
		return
	}

	var data SavingSuggestionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&suggestion).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSavingSuggestion(c, suggestion)
	c.JSON(http.StatusOK, SavingSuggestionResponse{Data: &apiResource})
}

// @Summary		Delete saving suggestion
// @Description	Deletes a saving suggestion
// @Tags			Saving Suggestions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/saving-suggestions/{id} [delete]
func DeleteSavingSuggestion(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	suggestion, err := getOwned[models.SavingSuggestion](c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&suggestion).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Apply saving suggestion
// @Description	Deposits the suggested amount into a goal and marks the suggestion as applied
// @Tags			Saving Suggestions
// @Accept			json
// @Produce		json
// @Success		200		{object}	ApplyResponse
// @Failure		400		{object}	ApplyResponse
// @Failure		404		{object}	ApplyResponse
// @Failure		409		{object}	ApplyResponse
// @Failure		500		{object}	ApplyResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		SavingSuggestionApply	true	"Goal"
// @Router			/v1/saving-suggestions/{id}/apply [post]
func ApplySavingSuggestion(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApplyResponse{
			Error: &e,
		})
		return
	}

	var data SavingSuggestionApply
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApplyResponse{
			Error: &e,
		})
		return
	}

	if data.GoalID == uuid.Nil {
		e := errGoalIDMissing.Error()
		c.JSON(http.StatusBadRequest, ApplyResponse{
			Error: &e,
		})
		return
	}

	suggestion, result, err := models.ApplySuggestion(auth.UserID(c), uri.ID.UUID, data.GoalID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApplyResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ApplyResponse{Data: &ApplyResult{
		Suggestion:   newSavingSuggestion(c, suggestion),
		Goal:         newGoal(c, result.Goal),
		Deposit:      newDeposit(c, result.Deposit),
		Achievements: newAchievements(c, result.Achievements),
	}})
}

// @Summary		Analyze expenses
// @Description	Asks the savings advisor where money could be saved on the monthly expenses and creates a saving suggestion for every proposal
// @Tags			Saving Suggestions
// @Produce		json
// @Success		201	{object}	SavingSuggestionListResponse
// @Failure		500	{object}	SavingSuggestionListResponse
// @Failure		502	{object}	SavingSuggestionListResponse
// @Failure		503	{object}	SavingSuggestionListResponse
// @Router			/v1/saving-suggestions/analyze [post]
func AnalyzeExpenses(c *gin.Context) {
	if !savingsAdvisor.Configured() {
		e := advisor.ErrNotConfigured.Error()
		c.JSON(http.StatusServiceUnavailable, SavingSuggestionListResponse{
			Error: &e,
		})
		return
	}

	var expenses []models.Expense
	err := owned(c).Order("created_at ASC").Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionListResponse{
			Error: &e,
		})
		return
	}

	proposals, err := savingsAdvisor.Analyze(c.Request.Context(), expenses)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("analyzing expenses")

		s := status(err)
		if s == http.StatusBadRequest {
			// Errors from the model API itself
			s = http.StatusBadGateway
		}

		e := err.Error()
		c.JSON(s, SavingSuggestionListResponse{
			Error: &e,
		})
		return
	}

	suggestions := make([]models.SavingSuggestion, 0, len(proposals))
	for _, p := range proposals {
		suggestions = append(suggestions, models.SavingSuggestion{
			UserID:          auth.UserID(c),
			Message:         p.Message,
			SuggestedAmount: p.Amount,
			Kind:            p.Kind,
			ExpenseID:       &p.ExpenseID,
		})
	}

	err = models.CreateSuggestions(suggestions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingSuggestionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SavingSuggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		data = append(data, newSavingSuggestion(c, suggestion))
	}

	c.JSON(http.StatusCreated, SavingSuggestionListResponse{Data: data})
}
