package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
)

type Notifications struct {
	Achievements []Achievement            `json:"achievements"` // Unlocked achievements the user has not seen yet
	Rewards      []models.ChallengeReward `json:"rewards"`      // Completed challenge periods the user has not seen yet
}

type NotificationsResponse struct {
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *Notifications `json:"data"`                                                                // The pending notifications
}

type AcknowledgementEditable struct {
	Kind models.NotificationKind `json:"kind" binding:"required" example:"Achievement"`                         // One of Achievement, ChallengeReward
	Key  string                  `json:"key" binding:"required" example:"2ab9a1f2-5c6e-46be-8f4c-0b6a1a6f3e55"` // The achievement ID or the key of the reward
}

type AcknowledgementResponse struct {
	Error *string                 `json:"error" example:"the notification kind is not valid"` // The error, if any occurred
	Data  *models.Acknowledgement `json:"data"`                                               // The acknowledgement
}

func RegisterNotificationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsNotifications)
		r.GET("", GetNotifications)
	}
	{
		r.OPTIONS("/acknowledge", OptionsAcknowledge)
		r.POST("/acknowledge", Acknowledge)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func OptionsNotifications(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications/acknowledge [options]
func OptionsAcknowledge(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get notifications
// @Description	Returns the achievements and challenge rewards that have not been acknowledged
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationsResponse
// @Failure		500	{object}	NotificationsResponse
// @Router			/v1/notifications [get]
func GetNotifications(c *gin.Context) {
	n, err := models.PendingNotifications(auth.UserID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, NotificationsResponse{Data: &Notifications{
		Achievements: newAchievements(c, n.Achievements),
		Rewards:      n.Rewards,
	}})
}

// @Summary		Acknowledge notification
// @Description	Marks a notification as seen. Acknowledging a notification more than once has no effect.
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		200				{object}	AcknowledgementResponse
// @Failure		400				{object}	AcknowledgementResponse
// @Failure		500				{object}	AcknowledgementResponse
// @Param			notification	body		AcknowledgementEditable	true	"Notification"
// @Router			/v1/notifications/acknowledge [post]
func Acknowledge(c *gin.Context) {
	var data AcknowledgementEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AcknowledgementResponse{
			Error: &e,
		})
		return
	}

	ack, err := models.Acknowledge(auth.UserID(c), data.Kind, data.Key)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AcknowledgementResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AcknowledgementResponse{Data: &ack})
}
