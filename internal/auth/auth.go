// Package auth issues and verifies the session tokens of users.
//
// A session is an HS256 signed JWT whose subject is the ID of the user. It is
// sent either in the poupix-auth-token cookie or as a bearer token.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/poupix/backend/internal/config"
	"github.com/poupix/backend/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// CookieName is the name of the session cookie.
const CookieName = "poupix-auth-token"

// userKey is the gin context key holding the authenticated user.
const userKey = "poupix-user"

const issuer = "poupix"

var (
	ErrTokenMissing       = errors.New("you need to log in to access this resource")
	ErrTokenInvalid       = errors.New("your session is invalid or has expired, please log in again")
	ErrInvalidCredentials = errors.New("the email address or password is not correct")
	ErrPasswordTooShort   = errors.New("the password must be at least 8 characters long")
)

// MinPasswordLength is the minimal length of a password.
const MinPasswordLength = 8

type Authenticator struct {
	secret       []byte
	ttl          time.Duration
	secureCookie bool
}

func New(c config.Auth) *Authenticator {
	ttl := c.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Authenticator{
		secret:       []byte(c.Secret),
		ttl:          ttl,
		secureCookie: c.SecureCookie,
	}
}

// Issue creates a token for the user.
func (a *Authenticator) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse verifies the token and returns the ID of the user it was issued for.
func (a *Authenticator) Parse(token string) (uuid.UUID, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return id, nil
}

// SetCookie stores a new token for the user in the session cookie.
func (a *Authenticator) SetCookie(c *gin.Context, userID uuid.UUID) error {
	token, err := a.Issue(userID)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(a.ttl.Seconds()), "/", "", a.secureCookie, true)
	return nil
}

// ClearCookie removes the session cookie.
func (a *Authenticator) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", a.secureCookie, true)
}

func token(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie
	}

	return ""
}

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// Middleware rejects requests without a valid session and stores the
// authenticated user in the context.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := token(c)
		if t == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenMissing.Error()})
			return
		}

		id, err := a.Parse(t)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenInvalid.Error()})
			return
		}

		var user models.User
		err = models.DB.First(&user, "id = ?", id).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenInvalid.Error()})
			return
		} else if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// User returns the user authenticated by the middleware.
func User(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}

// UserID returns the ID of the user authenticated by the middleware.
func UserID(c *gin.Context) uuid.UUID {
	return User(c).ID
}

// HashPassword hashes the password for storage.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// ComparePassword checks the password against the hash of a user.
func ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
