package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/subtrackr/subtrackr/app/models"
	"github.com/subtrackr/subtrackr/app/repository"
	"github.com/subtrackr/subtrackr/internal/pkg/session"
	"github.com/subtrackr/subtrackr/internal/pkg/usercontext"
	"github.com/subtrackr/subtrackr/internal/pkg/validation"
)

// AuthController serves local email/password authentication and the
// current-user endpoint. OAuth logins land in the same session keys.
type AuthController struct {
	users repository.UserRepository
}

// NewAuthController creates a new auth controller instance
func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// HandleRegister creates a local account and opens a session
func (ctrl *AuthController) HandleRegister(c *fiber.Ctx) error {
	var payload validation.Register
	if err := c.BodyParser(&payload); err != nil {
		return respondBadPayload(c)
	}
	if err := validation.Check(payload); err != nil {
		return respondValidationError(c, err)
	}

	if _, err := ctrl.users.GetByEmail(payload.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "An account with this email already exists",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondStoreError(c, "register", err)
	}

	user := models.User{
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	}
	if err := user.SetPassword(payload.Password); err != nil {
		return respondStoreError(c, "register", err)
	}
	if err := ctrl.users.Create(&user); err != nil {
		return respondStoreError(c, "register", err)
	}

	if err := openSession(c, &user); err != nil {
		return respondStoreError(c, "register", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin verifies credentials and opens a session
func (ctrl *AuthController) HandleLogin(c *fiber.Ctx) error {
	var payload validation.Login
	if err := c.BodyParser(&payload); err != nil {
		return respondBadPayload(c)
	}
	if err := validation.Check(payload); err != nil {
		return respondValidationError(c, err)
	}

	// A missing account and a wrong password answer identically
	user, err := ctrl.users.GetByEmail(payload.Email)
	if err != nil || !user.CheckPassword(payload.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid email or password",
		})
	}

	if err := openSession(c, user); err != nil {
		return respondStoreError(c, "login", err)
	}
	_ = ctrl.users.TouchLastLogin(user.ID, time.Now())

	return c.JSON(user)
}

// HandleLogout destroys the caller's session
func (ctrl *AuthController) HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	c.Locals(usercontext.KeyFromProtected, false)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetUser returns the local mirror record of the authenticated user
func (ctrl *AuthController) HandleGetUser(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "login required",
		})
	}

	user, err := ctrl.users.GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondNotFound(c, "User not found")
		}
		return respondStoreError(c, "load user", err)
	}
	return c.JSON(user)
}

// openSession writes the shared session keys used by both login flows.
func openSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}
	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUserEmail, user.Email)
	return sess.Save()
}
