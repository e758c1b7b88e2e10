package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
)

func RegisterAchievementRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAchievements)
		r.GET("", GetAchievements)
	}
	{
		r.OPTIONS("/:id", OptionsAchievementDetail)
		r.GET("/:id", GetAchievement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Achievements
// @Success		204
// @Router			/v1/achievements [options]
func OptionsAchievements(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Achievements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/achievements/{id} [options]
func OptionsAchievementDetail(c *gin.Context) {
	resourceOptionsDetail[models.Achievement](c, httputil.OptionsGet)
}

// @Summary		Get achievements
// @Description	Returns a list of unlocked achievements
// @Tags			Achievements
// @Produce		json
// @Success		200	{object}	AchievementListResponse
// @Failure		400	{object}	AchievementListResponse
// @Failure		500	{object}	AchievementListResponse
// @Router			/v1/achievements [get]
// @Param			goal	query	string	false	"Filter by goal ID"
// @Param			type	query	string	false	"Filter by achievement type"
// @Param			offset	query	uint	false	"The offset of the first achievement returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of achievements to return. Defaults to 50."
func GetAchievements(c *gin.Context) {
	var filter AchievementQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AchievementListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	q := owned(c).
		Order("unlocked_at ASC, created_at ASC").
		Where(&where, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var achievements []models.Achievement
	err := q.Find(&achievements).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AchievementListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AchievementListResponse{
			Error: &e,
		})
		return
	}

	data := newAchievements(c, achievements)
	c.JSON(http.StatusOK, AchievementListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get achievement
// @Description	Returns a specific achievement
// @Tags			Achievements
// @Produce		json
// @Success		200	{object}	AchievementResponse
// @Failure		400	{object}	AchievementResponse
// @Failure		404	{object}	AchievementResponse
// @Failure		500	{object}	AchievementResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/achievements/{id} [get]
func GetAchievement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AchievementResponse{
			Error: &e,
		})
		return
	}

	achievement, err := getOwned[models.Achievement](c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AchievementResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAchievement(c, achievement)
	c.JSON(http.StatusOK, AchievementResponse{Data: &apiResource})
}
