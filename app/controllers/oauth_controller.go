package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"
	"gorm.io/gorm"

	"github.com/subtrackr/subtrackr/app/models"
	"github.com/subtrackr/subtrackr/app/repository"
	"github.com/subtrackr/subtrackr/internal/pkg/session"
)

// postLoginRedirectKey holds the path to return to after the provider
// roundtrip, stored in the app session because goth keeps its own.
const postLoginRedirectKey = "post_login_redirect"

// OAuthController completes provider logins and upserts the local user mirror.
type OAuthController struct {
	users repository.UserRepository
}

// NewOAuthController creates a new OAuth controller instance
func NewOAuthController(users repository.UserRepository) *OAuthController {
	return &OAuthController{users: users}
}

// HandleOAuthLogin starts the provider flow. A ?redirect= query parameter is
// remembered across the roundtrip and honored by the callback.
func (ctrl *OAuthController) HandleOAuthLogin(c *fiber.Ctx) error {
	if target := c.Query("redirect"); target != "" {
		_ = session.SetSessionValue(c, postLoginRedirectKey, target)
	}
	return gothfiber.BeginAuthHandler(c)
}

// HandleOAuthCallback completes the provider flow and logs the user in.
// The local User row mirrors the provider profile and is refreshed on every
// successful authentication.
func (ctrl *OAuthController) HandleOAuthCallback(c *fiber.Ctx) error {
	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("OAuth failed: %v", err))
	}

	appUser, account, err := ctrl.users.GetByProviderAccount(u.Provider, u.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		appUser, err = ctrl.linkOrCreateUser(u.Provider, u.UserID, u.Email, u.FirstName, u.LastName, u.AvatarURL, u.AccessToken, u.RefreshToken, u.ExpiresAt)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("link provider failed: %v", err))
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("db error: %v", err))
	} else {
		// Refresh tokens and mirror the provider profile
		account.AccessToken = u.AccessToken
		account.RefreshToken = u.RefreshToken
		if !u.ExpiresAt.IsZero() {
			t := u.ExpiresAt
			account.ExpiresAt = &t
		} else {
			account.ExpiresAt = nil
		}
		if err := ctrl.users.UpdateProviderAccount(account); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("update tokens failed: %v", err))
		}

		mirrorProfile(appUser, u.FirstName, u.LastName, u.AvatarURL)
		if err := ctrl.users.Update(appUser); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("update user failed: %v", err))
		}
	}

	if err := openSession(c, appUser); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("session save failed")
	}
	_ = ctrl.users.TouchLastLogin(appUser.ID, time.Now())

	return c.Redirect(popPostLoginRedirect(c), fiber.StatusSeeOther)
}

// popPostLoginRedirect consumes the stored redirect target, falling back to /.
func popPostLoginRedirect(c *fiber.Ctx) string {
	target := session.GetSessionValue(c, postLoginRedirectKey)
	if target != "" {
		_ = session.SetSessionValue(c, postLoginRedirectKey, "")
	}
	return sanitizeRedirect(target)
}

// sanitizeRedirect keeps post-login redirects on-site. Absolute URLs and
// protocol-relative targets would make the callback an open redirect.
func sanitizeRedirect(target string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return "/"
}

// HandleOAuthLogout clears both the provider and the app session
func (ctrl *OAuthController) HandleOAuthLogout(c *fiber.Ctx) error {
	_ = gothfiber.Logout(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (ctrl *OAuthController) linkOrCreateUser(provider, providerUserID, email, firstName, lastName, avatarURL, accessToken, refreshToken string, expiresAt time.Time) (*models.User, error) {
	var appUser *models.User

	// Optional email match if provided
	if email != "" {
		if existing, err := ctrl.users.GetByEmail(email); err == nil {
			appUser = existing
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if appUser == nil {
		if email == "" {
			// Ensure unique, non-empty email to satisfy the unique index
			email = fmt.Sprintf("%s_%s@%s.oauth.local", provider, providerUserID, provider)
		}
		appUser = &models.User{Email: email}
		mirrorProfile(appUser, firstName, lastName, avatarURL)
		if err := ctrl.users.Create(appUser); err != nil {
			return nil, err
		}
	} else {
		mirrorProfile(appUser, firstName, lastName, avatarURL)
		if err := ctrl.users.Update(appUser); err != nil {
			return nil, err
		}
	}

	var exp *time.Time
	if !expiresAt.IsZero() {
		t := expiresAt
		exp = &t
	}
	account := models.ProviderAccount{
		UserID:         appUser.ID,
		Provider:       provider,
		ProviderUserID: providerUserID,
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		ExpiresAt:      exp,
	}
	if err := ctrl.users.LinkProviderAccount(&account); err != nil {
		return nil, err
	}
	return appUser, nil
}

// mirrorProfile copies the provider profile onto the local record without
// clearing fields the provider didn't send.
func mirrorProfile(user *models.User, firstName, lastName, avatarURL string) {
	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if avatarURL != "" {
		user.ProfileImageURL = avatarURL
	}
}
