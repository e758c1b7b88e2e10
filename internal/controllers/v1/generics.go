package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/models"
	ez_uuid "github.com/poupix/backend/internal/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ownedResource interface {
	models.Goal | models.Challenge | models.Deposit | models.Achievement | models.SavingSuggestion | models.SuggestionRule | models.Income | models.Debt | models.Installment | models.Expense
}

// getOwned loads the resource with the ID if it belongs to the authenticated user.
func getOwned[R ownedResource](c *gin.Context, id ez_uuid.UUID) (R, error) {
	var resource R
	err := models.DB.Scopes(models.OwnedBy(auth.UserID(c))).First(&resource, "id = ?", id.UUID).Error
	return resource, err
}

// owned starts a query for the resources of the authenticated user.
func owned(c *gin.Context) *gorm.DB {
	return models.DB.Scopes(models.OwnedBy(auth.UserID(c)))
}

// paginate applies offset and limit. The limit defaults to 50.
func paginate(q *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(offset))

	if !slices.Contains(setFields, "Limit") {
		limit = 50
	}

	return q.Limit(limit), limit
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R ownedResource](c *gin.Context, allow func(*gin.Context)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = getOwned[R](c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	allow(c)
}
