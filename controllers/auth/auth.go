package authControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emmanuel-nwafor/Fore-made-webApp/identity"
	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
	"github.com/emmanuel-nwafor/Fore-made-webApp/profile"
)

// Deps are the collaborators of the auth endpoints.
type Deps struct {
	Provider  identity.Provider
	Profiles  *profile.Service
	Broker    *identity.Broker
	JWTSecret []byte
	Log       zerolog.Logger
}

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/register
// Validates the form locally first; no provider call is made for invalid
// input. On success the account is created, a username is generated, the
// verification mail is requested and a session token is issued.
func Register(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		if vErr := identity.ValidateRegistration(input.Name, input.Email, input.Password); vErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
			return
		}

		ctx := c.Request.Context()
		user, err := d.Provider.Register(ctx, input.Email, input.Password, input.Name)
		if err != nil {
			failProvider(c, d, err)
			return
		}

		username := identity.GenerateUsername(input.Name)
		if err := d.Provider.UpdateDisplayName(ctx, user.UID, username); err != nil {
			d.Log.Warn().Err(err).Str("uid", user.UID).Msg("display name update failed")
		} else {
			user.DisplayName = username
		}

		if err := d.Provider.SendEmailVerification(ctx, user.Email); err != nil {
			d.Log.Warn().Err(err).Str("uid", user.UID).Msg("verification mail request failed")
		}

		extras := models.ProfileExtras{
			Name:      input.Name,
			Username:  username,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := d.Profiles.InitExtras(ctx, user.UID, extras); err != nil {
			d.Log.Error().Err(err).Str("uid", user.UID).Msg("initial profile extras not persisted")
		}

		finishSignIn(c, d, user, registerMessage(input.Name, user.Email))
	}
}

type googleInput struct {
	IDToken string `json:"idToken"`
}

// POST /auth/google
// The popup flow happens on the client; the resulting ID token is verified
// here before a session is issued.
func GoogleSignIn(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input googleInput
		if err := c.ShouldBindJSON(&input); err != nil || input.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := c.Request.Context()
		user, err := d.Provider.VerifyIDToken(ctx, input.IDToken)
		if err != nil {
			failProvider(c, d, err)
			return
		}

		fullName := user.DisplayName
		if fullName == "" {
			fullName = strings.SplitN(user.Email, "@", 2)[0]
		}

		extras := models.ProfileExtras{
			Name:      fullName,
			Username:  identity.GenerateUsername(fullName),
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := d.Profiles.InitExtras(ctx, user.UID, extras); err != nil {
			d.Log.Error().Err(err).Str("uid", user.UID).Msg("initial profile extras not persisted")
		}

		finishSignIn(c, d, user, "Welcome, "+fullName+"!")
	}
}

func finishSignIn(c *gin.Context, d Deps, user *identity.UserRecord, message string) {
	token, err := identity.IssueSessionToken(d.JWTSecret, user, "user")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	d.Broker.Publish(identity.AuthState{
		SignedIn: true,
		Session: &models.Session{
			UID:         user.UID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"token":   token,
		"user": gin.H{
			"uid":      user.UID,
			"email":    user.Email,
			"username": user.DisplayName,
		},
	})
}

func failProvider(c *gin.Context, d Deps, err error) {
	var pErr *models.IdentityProviderError
	if errors.As(err, &pErr) {
		d.Log.Warn().Err(pErr.Err).Str("code", pErr.Code).Msg("identity provider call failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": pErr.Message, "code": pErr.Code})
		return
	}
	d.Log.Error().Err(err).Msg("identity provider call failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": identity.FriendlyMessage(identity.CodeUnknown)})
}

func registerMessage(name, email string) string {
	first := strings.Fields(name)
	firstName := name
	if len(first) > 0 {
		firstName = first[0]
	}
	return "Welcome, " + firstName + "! Registration successful! A verification email has been sent to " +
		email + ". Please verify your email before logging in."
}
