package authController

import (
	"log"

	"gde/database"
	"gde/middleware"
	"gde/models"
	authValidator "gde/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Controller holds the auth service so login can issue tokens.
type Controller struct {
	auth *middleware.Auth
}

func New(auth *middleware.Auth) *Controller {
	return &Controller{auth: auth}
}

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	role := reqData.Role
	if role == "" {
		role = models.RoleUser
	}

	newUser := models.User{
		Email:     reqData.Email,
		Username:  reqData.Username,
		Password:  string(hashedPassword),
		Role:      role,
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		IsActive:  true,
	}

	// The unique columns on email/username backstop the checks above under
	// concurrent registrations.
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email or username is already taken!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect email or password!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect email or password!", nil)
	}

	if !user.IsActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Inactive user!", nil)
	}

	token, err := ctl.auth.GenerateToken(&user)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// Me returns the current user's profile with declared instruments.
func Me(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	var profile models.User
	if err := database.Database.Db.Preload("Instruments").First(&profile, user.ID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", profile)
}

func AddInstrument(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	instrumentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid instrument id!", nil)
	}

	db := database.Database.Db

	var instrument models.Instrument
	if err := db.First(&instrument, instrumentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instrument not found!", nil)
	}

	// Append upserts the join row, so repeating the call is harmless.
	if err := db.Model(user).Association("Instruments").Append(&instrument); err != nil {
		log.Printf("Error adding instrument %d to user %d: %v", instrument.ID, user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add instrument!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instrument added successfully.", nil)
}

func RemoveInstrument(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	instrumentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid instrument id!", nil)
	}

	db := database.Database.Db

	var instrument models.Instrument
	if err := db.First(&instrument, instrumentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instrument not found!", nil)
	}

	if err := db.Model(user).Association("Instruments").Delete(&instrument); err != nil {
		log.Printf("Error removing instrument %d from user %d: %v", instrument.ID, user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove instrument!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instrument removed successfully.", nil)
}
