package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"Storefront/jwt"
	"Storefront/models"
	"Storefront/repository"
)

const (
	minPasswordLength = 6

	sessionTTL      = 24 * time.Hour
	rememberMeTTL   = 30 * 24 * time.Hour
	invalidLoginMsg = "Invalid email or password"
	// resetMsg is identical whether or not the account exists, so the
	// endpoint never leaks which emails are registered.
	resetMsg = "If an account exists with this email, a reset link has been sent."
)

// RegisterHandler creates an account. Duplicate emails are rejected with a
// case-sensitive exact match; the password is stored hashed.
func RegisterHandler(c *gin.Context, env *Env) {
	var signupReq struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&signupReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	signupReq.Email = strings.TrimSpace(signupReq.Email)
	if signupReq.Email == "" || signupReq.Password == "" || signupReq.ConfirmPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please fill in all fields",
		})
		return
	}
	if !isValidEmail(signupReq.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please enter a valid email address",
		})
		return
	}
	if len(signupReq.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Password must be at least 6 characters",
		})
		return
	}
	if signupReq.Password != signupReq.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Passwords do not match",
		})
		return
	}

	user, err := env.Users.Create(c.Request.Context(), signupReq.Email, signupReq.Password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "An account with this email already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create account",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully! Redirecting to login...",
		"email":   user.Email,
	})
}

// LoginHandler checks credentials and opens a session: it writes the
// currentUser marker, issues a JWT and records it for later revocation. The
// failure message never says which of email or password was wrong.
func LoginHandler(c *gin.Context, env *Env) {
	if _, ok := sessionEmail(c); ok {
		c.JSON(http.StatusOK, gin.H{
			"message": "Already logged in",
		})
		return
	}

	var loginReq struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"rememberMe"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	loginReq.Email = strings.TrimSpace(loginReq.Email)
	if loginReq.Email == "" || loginReq.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please fill in all fields",
		})
		return
	}
	if !isValidEmail(loginReq.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please enter a valid email address",
		})
		return
	}

	user := env.Users.FindByEmail(c.Request.Context(), loginReq.Email)
	if user == nil || !env.Users.VerifyPassword(user, loginReq.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": invalidLoginMsg,
		})
		return
	}

	ttl := sessionTTL
	if loginReq.RememberMe {
		ttl = rememberMeTTL
	}
	expTime := time.Now().Add(ttl)

	token, err := jwt.GenerateToken(env.JWTSecret, user.Email, expTime.Unix())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create session token",
			"error":   err.Error(),
		})
		return
	}

	err = env.Sessions.RecordToken(c.Request.Context(), models.LoginToken{
		Token:          token,
		Email:          user.Email,
		ExpirationTime: expTime,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to record session",
			"error":   err.Error(),
		})
		return
	}

	name := user.Name
	if name == "" {
		name = strings.SplitN(user.Email, "@", 2)[0]
	}
	sessionUser := models.SessionUser{Email: user.Email, Name: name}
	if err := env.Sessions.SetCurrentUser(c.Request.Context(), sessionUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to record session",
			"error":   err.Error(),
		})
		return
	}

	// Hand back whatever the visitor was interrupted doing, so the client
	// can resume it.
	response := gin.H{
		"message": "Login successful",
		"user":    sessionUser,
	}
	if action := env.Sessions.ConsumePendingAction(c.Request.Context()); action != nil {
		response["pendingAction"] = action
	}
	if env.Sessions.ConsumePendingCheckout(c.Request.Context()) {
		response["pendingCheckout"] = true
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, response)
}

// LogOutHandler revokes the session token and clears the currentUser marker.
func LogOutHandler(c *gin.Context, env *Env) {
	token, exists := c.Get("Token")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No session token",
		})
		return
	}

	revoked, err := env.Sessions.RevokeToken(c.Request.Context(), token.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to log out",
			"error":   err.Error(),
		})
		return
	}
	if !revoked {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Session already logged out",
		})
		return
	}

	_ = env.Sessions.ClearCurrentUser(c.Request.Context())

	c.Header("Authorization", "")
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// ForgotPasswordHandler accepts a reset request. The response is the same for
// known and unknown emails.
func ForgotPasswordHandler(c *gin.Context, env *Env) {
	var forgotReq struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&forgotReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	forgotReq.Email = strings.TrimSpace(forgotReq.Email)
	if forgotReq.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please enter your email address",
		})
		return
	}
	if !isValidEmail(forgotReq.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please enter a valid email address",
		})
		return
	}

	// Deliberately ignore whether the account exists.
	_ = env.Users.FindByEmail(c.Request.Context(), forgotReq.Email)

	c.JSON(http.StatusOK, gin.H{
		"message": resetMsg,
	})
}

// GetUserProfileHandler serves the profile page header and account form.
func GetUserProfileHandler(c *gin.Context, env *Env) {
	user := env.Sessions.CurrentUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "You need to login first",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile loaded",
		"user":    user,
		"profile": env.Profiles.Get(c.Request.Context()),
	})
}

// UpdateUserProfileHandler overwrites the profile blob wholesale and keeps
// the session and account display name in sync with it.
func UpdateUserProfileHandler(c *gin.Context, env *Env) {
	email, _ := sessionEmail(c)

	var profile models.ProfileData
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	if err := env.Profiles.Save(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	name := profile.DisplayName()
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	_ = env.Users.UpdateName(c.Request.Context(), email, name)
	_ = env.Sessions.SetCurrentUser(c.Request.Context(), models.SessionUser{
		Email: email,
		Name:  name,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Account details updated successfully!",
		"name":    name,
	})
}

// UpdatePasswordHandler changes the account password after verifying the
// current one.
func UpdatePasswordHandler(c *gin.Context, env *Env) {
	email, _ := sessionEmail(c)

	var passwordReq struct {
		CurrentPassword    string `json:"currentPassword"`
		NewPassword        string `json:"newPassword"`
		ConfirmNewPassword string `json:"confirmNewPassword"`
	}
	if err := c.ShouldBindJSON(&passwordReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	if len(passwordReq.NewPassword) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "New password must be at least 6 characters",
		})
		return
	}
	if passwordReq.NewPassword != passwordReq.ConfirmNewPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Passwords do not match",
		})
		return
	}

	user := env.Users.FindByEmail(c.Request.Context(), email)
	if user == nil || !env.Users.VerifyPassword(user, passwordReq.CurrentPassword) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Current password is incorrect",
		})
		return
	}

	if err := env.Users.UpdatePassword(c.Request.Context(), email, passwordReq.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update password",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully!",
	})
}
