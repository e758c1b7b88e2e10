package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Auth              string `json:"auth" example:"https://example.com/api/v1/auth"`                            // URL of the session endpoints
	Goals             string `json:"goals" example:"https://example.com/api/v1/goals"`                          // URL of Goal collection endpoint
	Challenges        string `json:"challenges" example:"https://example.com/api/v1/challenges"`                // URL of Challenge collection endpoint
	Deposits          string `json:"deposits" example:"https://example.com/api/v1/deposits"`                    // URL of Deposit collection endpoint
	Achievements      string `json:"achievements" example:"https://example.com/api/v1/achievements"`            // URL of Achievement collection endpoint
	Notifications     string `json:"notifications" example:"https://example.com/api/v1/notifications"`          // URL of the pending notifications
	SavingSuggestions string `json:"savingSuggestions" example:"https://example.com/api/v1/saving-suggestions"` // URL of Saving Suggestion collection endpoint
	SuggestionRules   string `json:"suggestionRules" example:"https://example.com/api/v1/suggestion-rules"`     // URL of Suggestion Rule collection endpoint
	Incomes           string `json:"incomes" example:"https://example.com/api/v1/incomes"`                      // URL of Income collection endpoint
	Expenses          string `json:"expenses" example:"https://example.com/api/v1/expenses"`                    // URL of Expense collection endpoint
	Debts             string `json:"debts" example:"https://example.com/api/v1/debts"`                          // URL of Debt collection endpoint
	Installments      string `json:"installments" example:"https://example.com/api/v1/installments"`            // URL of Installment collection endpoint
	Summary           string `json:"summary" example:"https://example.com/api/v1/summary"`                      // URL of the monthly summary
	Export            string `json:"export" example:"https://example.com/api/v1/export"`                        // URL of the export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Auth:              url + "/v1/auth",
			Goals:             url + "/v1/goals",
			Challenges:        url + "/v1/challenges",
			Deposits:          url + "/v1/deposits",
			Achievements:      url + "/v1/achievements",
			Notifications:     url + "/v1/notifications",
			SavingSuggestions: url + "/v1/saving-suggestions",
			SuggestionRules:   url + "/v1/suggestion-rules",
			Incomes:           url + "/v1/incomes",
			Expenses:          url + "/v1/expenses",
			Debts:             url + "/v1/debts",
			Installments:      url + "/v1/installments",
			Summary:           url + "/v1/summary",
			Export:            url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources of the authenticated user. The user itself is kept.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = models.Cleanup(auth.UserID(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
