package auth

import (
	"database/sql"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/apperr"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/services"
)

var validate = validator.New()

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// RegisterAPI bootstraps the single admin account. Once one exists,
// registration permanently fails.
func RegisterAPI(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Email, password (min 8 chars) and name are required")
	}

	db := config.GetDB()
	count, err := database.CountAdmins(db)
	if err != nil {
		return apperr.Internal("Failed to check existing admins", err)
	}
	if count > 0 {
		return apperr.Forbidden("Registration is closed: an admin account already exists")
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return apperr.Internal("Failed to hash password", err)
	}

	admin := &models.Admin{Email: req.Email, Name: req.Name}
	if err := database.CreateAdmin(db, admin, hashedPassword); err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("An admin with this email already exists")
		}
		return apperr.Internal("Failed to create admin", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    admin,
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func LoginAPI(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Email and password are required")
	}

	db := config.GetDB()
	admin, err := database.GetAdminByEmail(db, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.Forbidden("Invalid credentials")
		}
		return apperr.Internal("Database error", err)
	}

	if !CheckPasswordHash(req.Password, admin.Password) {
		return apperr.Forbidden("Invalid credentials")
	}

	token, err := GenerateJWT(admin.ID, admin.Email, admin.Name)
	if err != nil {
		return apperr.Internal("Failed to generate token", err)
	}

	if err := database.UpdateAdminLastLogin(db, admin.ID); err != nil {
		log.Printf("Failed to update last login for %s: %v", admin.Email, err)
	}

	// Set JWT as HTTP-only cookie alongside the JSON token
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": token,
			"admin": admin,
		},
	})
}

func ProfileAPI(c *fiber.Ctx) error {
	admin, err := database.GetAdminByID(config.GetDB(), c.Locals("admin_id").(string))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Admin not found")
		}
		return apperr.Internal("Database error", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    admin,
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Current password and a new password of at least 8 characters are required")
	}

	db := config.GetDB()
	admin, err := database.GetAdminByID(db, c.Locals("admin_id").(string))
	if err != nil {
		return apperr.Internal("Database error", err)
	}

	if !CheckPasswordHash(req.CurrentPassword, admin.Password) {
		return apperr.Forbidden("Current password is incorrect")
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return apperr.Internal("Failed to hash password", err)
	}

	if err := database.UpdateAdminPassword(db, admin.ID, hashedPassword); err != nil {
		return apperr.Internal("Failed to update password", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordAPI starts the reset flow: store an OTP with a 10-minute
// window, then mail it. A failed send rolls the stored OTP back so the
// record is "un-requested" again.
func ForgotPasswordAPI(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("A valid email is required")
	}

	db := config.GetDB()
	admin, err := database.GetAdminByEmail(db, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Email not found")
		}
		return apperr.Internal("Database error", err)
	}

	otp, err := GenerateOTP()
	if err != nil {
		return apperr.Internal("Failed to generate OTP", err)
	}

	if err := database.SetResetOTP(db, admin.ID, otp, time.Now().Add(OTPValidity)); err != nil {
		return apperr.Internal("Failed to store OTP", err)
	}

	if err := services.SendOTP(admin.Email, otp); err != nil {
		if clearErr := database.ClearResetOTP(db, admin.ID); clearErr != nil {
			log.Printf("Failed to roll back OTP for %s: %v", admin.Email, clearErr)
		}
		return apperr.External("Failed to send OTP email", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent to registered email",
	})
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// VerifyOTPAPI checks correctness and expiry. Expiry clears the reset
// fields; success marks the OTP verified without clearing it.
func VerifyOTPAPI(c *fiber.Ctx) error {
	var req VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Email and a 6-digit OTP are required")
	}

	db := config.GetDB()
	admin, err := database.GetAdminByEmail(db, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Email not found")
		}
		return apperr.Internal("Database error", err)
	}

	if admin.ResetOTP == nil || admin.ResetOTPExpiry == nil {
		return apperr.Validation("No password reset was requested")
	}

	if time.Now().After(*admin.ResetOTPExpiry) {
		if err := database.ClearResetOTP(db, admin.ID); err != nil {
			log.Printf("Failed to clear expired OTP for %s: %v", admin.Email, err)
		}
		return apperr.Validation("OTP has expired, please request a new one")
	}

	if *admin.ResetOTP != req.OTP {
		return apperr.Validation("Incorrect OTP")
	}

	if err := database.MarkOTPVerified(db, admin.ID); err != nil {
		return apperr.Internal("Failed to verify OTP", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP verified",
	})
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ResetPasswordAPI completes the flow. It requires a prior successful
// verify and clears all reset state atomically with the password change.
func ResetPasswordAPI(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Email and a new password of at least 8 characters are required")
	}

	db := config.GetDB()
	admin, err := database.GetAdminByEmail(db, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Email not found")
		}
		return apperr.Internal("Database error", err)
	}

	if !admin.OTPVerified {
		return apperr.Forbidden("OTP verification is required before resetting the password")
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return apperr.Internal("Failed to hash password", err)
	}

	if err := database.CompletePasswordReset(db, admin.ID, hashedPassword); err != nil {
		return apperr.Internal("Failed to reset password", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset successfully",
	})
}
