package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
)

func RegisterChallengeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsChallenges)
		r.GET("", GetChallenges)
	}
	{
		r.OPTIONS("/:id", OptionsChallengeDetail)
		r.GET("/:id", GetChallenge)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Challenges
// @Success		204
// @Router			/v1/challenges [options]
func OptionsChallenges(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Challenges
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/challenges/{id} [options]
func OptionsChallengeDetail(c *gin.Context) {
	resourceOptionsDetail[models.Challenge](c, httputil.OptionsGet)
}

// @Summary		Get challenges
// @Description	Returns a list of challenges, including finished ones
// @Tags			Challenges
// @Produce		json
// @Success		200	{object}	ChallengeListResponse
// @Failure		400	{object}	ChallengeListResponse
// @Failure		500	{object}	ChallengeListResponse
// @Router			/v1/challenges [get]
// @Param			goal	query	string	false	"Filter by goal ID"
// @Param			type	query	string	false	"Filter by challenge type"
// @Param			active	query	bool	false	"Is the challenge running?"
// @Param			offset	query	uint	false	"The offset of the first challenge returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of challenges to return. Defaults to 50."
func GetChallenges(c *gin.Context) {
	var filter ChallengeQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ChallengeListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := owned(c).
		Order("start_date ASC, created_at ASC").
		Where(&where, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var challenges []models.Challenge
	err := q.Find(&challenges).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ChallengeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChallengeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Challenge, 0, len(challenges))
	for _, challenge := range challenges {
		data = append(data, newChallenge(c, challenge))
	}

	c.JSON(http.StatusOK, ChallengeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get challenge
// @Description	Returns a specific challenge
// @Tags			Challenges
// @Produce		json
// @Success		200	{object}	ChallengeResponse
// @Failure		400	{object}	ChallengeResponse
// @Failure		404	{object}	ChallengeResponse
// @Failure		500	{object}	ChallengeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/challenges/{id} [get]
func GetChallenge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChallengeResponse{
			Error: &e,
		})
		return
	}

	challenge, err := getOwned[models.Challenge](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChallengeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newChallenge(c, challenge)
	c.JSON(http.StatusOK, ChallengeResponse{Data: &apiResource})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/challenge [options]
func OptionsGoalChallenge(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/challenge/complete-period [options]
// @Router			/v1/goals/{id}/challenge/finalize [options]
func OptionsChallengeAction(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get active challenge
// @Description	Returns the challenge currently running for the goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	ChallengeResponse
// @Failure		400	{object}	ChallengeResponse
// @Failure		404	{object}	ChallengeResponse
// @Failure		500	{object}	ChallengeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/challenge [get]
func GetGoalChallenge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChallengeResponse{
			Error: &e,
		})
		return
	}

	challenge, err := models.ActiveChallenge(auth.UserID(c), uri.ID.UUID)
	if errors.Is(err, models.ErrNoActiveChallenge) {
		e := err.Error()
		c.JSON(http.StatusNotFound, ChallengeResponse{
			Error: &e,
		})
		return
	} else if err != nil {
		e := err.Error()
		c.JSON(status(err), ChallengeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newChallenge(c, challenge)
	c.JSON(http.StatusOK, ChallengeResponse{Data: &apiResource})
}

// @Summary		Start challenge
// @Description	Starts a savings challenge for the goal. A goal can only have one active challenge.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201			{object}	ChallengeResponse
// @Failure		400			{object}	ChallengeResponse
// @Failure		404			{object}	ChallengeResponse
// @Failure		409			{object}	ChallengeResponse
// @Failure		500			{object}	ChallengeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			challenge	body		ChallengeEditable	true	"Challenge"
// @Router			/v1/goals/{id}/challenge [post]
func StartGoalChallenge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChallengeResponse{
			Error: &e,
		})
		return
	}

	var data ChallengeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChallengeResponse{
			Error: &e,
		})
		return
	}

	challenge, err := models.StartChallenge(auth.UserID(c), uri.ID.UUID, data.definition())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChallengeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newChallenge(c, challenge)
	c.JSON(http.StatusCreated, ChallengeResponse{Data: &apiResource})
}

// @Summary		Complete challenge period
// @Description	Marks the current day or week of the active challenge as done and deposits its value into the goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	PeriodResponse
// @Failure		400	{object}	PeriodResponse
// @Failure		404	{object}	PeriodResponse
// @Failure		409	{object}	PeriodResponse
// @Failure		500	{object}	PeriodResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/challenge/complete-period [post]
func CompleteChallengePeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &e,
		})
		return
	}

	result, err := models.CompleteChallengePeriod(auth.UserID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, PeriodResponse{Data: &PeriodResult{
		Goal:         newGoal(c, result.Goal),
		Challenge:    newChallenge(c, result.Challenge),
		Deposit:      newDeposit(c, result.Deposit),
		Achievements: newAchievements(c, result.Achievements),
	}})
}

// @Summary		Finalize challenge
// @Description	Ends the active challenge of the goal before its duration is reached
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	FinalizeResponse
// @Failure		400	{object}	FinalizeResponse
// @Failure		404	{object}	FinalizeResponse
// @Failure		409	{object}	FinalizeResponse
// @Failure		500	{object}	FinalizeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/challenge/finalize [post]
func FinalizeChallenge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinalizeResponse{
			Error: &e,
		})
		return
	}

	challenge, achievements, err := models.FinalizeChallenge(auth.UserID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinalizeResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, FinalizeResponse{Data: &FinalizeResult{
		Challenge:    newChallenge(c, challenge),
		Achievements: newAchievements(c, achievements),
	}})
}
