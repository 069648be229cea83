package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alumnihub/internal/model"
	"alumnihub/internal/service"
)

// Signup registers a new account.
func Signup(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Register(c.UserContext(), in); err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrDuplicateEmail):
				return writeError(c, fiber.StatusConflict, "DUPLICATE_EMAIL", "email already registered")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "User registered successfully",
		})
	}
}

// Login authenticates an account and returns the reduced profile view.
func Login(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		profile, err := svc.Authenticate(c.UserContext(), in.Email, in.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrInvalidCredentials):
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"user":    profile,
		})
	}
}

// ForgotPassword replaces the credential for an existing account.
func ForgotPassword(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			Email       string `json:"email"`
			NewPassword string `json:"newPassword"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.ResetPassword(c.UserContext(), in.Email, in.NewPassword); err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no account with that email")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Password updated successfully",
		})
	}
}

// ListUsers returns every account as a bare array.
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if users == nil {
			users = []model.User{}
		}
		return c.JSON(users)
	}
}

// UserStats returns the aggregate account view. Composite group keys are
// rendered as delimiter-joined strings here so map keys stay serializable;
// the service keeps them as struct keys internally.
func UserStats(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		qualByYear := make(map[string]int, len(stats.ByQualYear))
		for k, v := range stats.ByQualYear {
			qualByYear[fmt.Sprintf("%s-%s-%s", k.Qualification, k.PassoutYear, k.Status)] = v
		}
		branchByQual := make(map[string]int, len(stats.ByBranchQual))
		for k, v := range stats.ByBranchQual {
			branchByQual[fmt.Sprintf("%s-%s-%s-%s", k.Branch, k.Qualification, k.PassoutYear, k.Status)] = v
		}

		return c.JSON(fiber.Map{
			"success":                   true,
			"totalUsers":                stats.TotalUsers,
			"statusCount":               stats.StatusCount,
			"cityCount":                 stats.CityCount,
			"stateCount":                stats.StateCount,
			"countryCount":              stats.CountryCount,
			"qualificationByYearStatus": qualByYear,
			"branchByQualYearStatus":    branchByQual,
		})
	}
}
