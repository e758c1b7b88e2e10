package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/poupix/backend/internal/auth"
	"github.com/poupix/backend/internal/httputil"
	"github.com/poupix/backend/internal/models"
)

var authenticator *auth.Authenticator

type Credentials struct {
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`    // Email address of the user
	Password string `json:"password" binding:"required" example:"correct horse battery"` // Password, at least 8 characters
}

type Session struct {
	User  models.User `json:"user"`  // The authenticated user
	Token string      `json:"token"` // Bearer token for the Authorization header. The same token is set as cookie.
}

type SessionResponse struct {
	Error *string  `json:"error" example:"the email address or password is not correct"` // The error, if any occurred
	Data  *Session `json:"data"`                                                         // The session
}

type UserResponse struct {
	Error *string      `json:"error" example:"you need to log in to access this resource"` // The error, if any occurred
	Data  *models.User `json:"data"`                                                       // The user
}

// RegisterAuthRoutes registers the routes for sessions. Only /me needs
// an authenticated user.
func RegisterAuthRoutes(r *gin.RouterGroup, a *auth.Authenticator) {
	authenticator = a

	{
		r.OPTIONS("/register", OptionsAuthAction)
		r.POST("/register", RegisterUser)
	}
	{
		r.OPTIONS("/login", OptionsAuthAction)
		r.POST("/login", Login)
	}
	{
		r.OPTIONS("/logout", OptionsAuthAction)
		r.POST("/logout", Logout)
	}
	{
		r.OPTIONS("/me", OptionsMe)
		r.GET("/me", a.Middleware(), GetMe)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
// @Router			/v1/auth/login [options]
// @Router			/v1/auth/logout [options]
func OptionsAuthAction(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// session creates the token for the user and sets it as cookie.
func session(c *gin.Context, user models.User) (Session, error) {
	token, err := authenticator.Issue(user.ID)
	if err != nil {
		return Session{}, err
	}

	err = authenticator.SetCookie(c, user.ID)
	if err != nil {
		return Session{}, err
	}

	return Session{User: user, Token: token}, nil
}

// @Summary		Register
// @Description	Creates a new user and logs it in
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		409			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/register [post]
func RegisterUser(c *gin.Context) {
	var data Credentials
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	user := models.User{
		Email:        data.Email,
		PasswordHash: hash,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	s, err := session(c, user)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: &s})
}

// @Summary		Login
// @Description	Logs the user in. The token is returned and set as cookie.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var data Credentials
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(data.Email))).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		// Unknown addresses are not revealed
		err = auth.ErrInvalidCredentials
	}

	if err == nil {
		err = auth.ComparePassword(user.PasswordHash, data.Password)
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	s, err := session(c, user)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &s})
}

// @Summary		Logout
// @Description	Removes the session cookie
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/logout [post]
func Logout(c *gin.Context) {
	authenticator.ClearCookie(c)
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get authenticated user
// @Description	Returns the user the session belongs to
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Router			/v1/auth/me [get]
func GetMe(c *gin.Context) {
	user := auth.User(c)
	c.JSON(http.StatusOK, UserResponse{Data: &user})
}
