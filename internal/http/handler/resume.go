package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"alumnihub/internal/service"
)

// UploadResume ingests a résumé file (multipart, field name: resume).
func UploadResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.FormValue("email")
		name := c.FormValue("name")

		fh, err := c.FormFile("resume")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "resume file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
		}

		text, err := svc.Upload(c.UserContext(), email, name, data, fh.Header.Get("Content-Type"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrFileTooLarge):
				return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file size exceeds the 2 MiB limit")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{
			"success":    true,
			"resumeData": text,
		})
	}
}

// GetResume returns the stored résumé text for ?email=.
func GetResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query("email")

		res, err := svc.Get(c.UserContext(), email)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no resume stored for that email")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{
			"success":    true,
			"email":      res.Email,
			"resumeData": res.Text,
		})
	}
}

// ResumeOwners lists "name - email" for every stored résumé.
func ResumeOwners(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owners, err := svc.ListOwners(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if owners == nil {
			owners = []string{}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"users":   owners,
		})
	}
}

// DeleteResume removes the stored résumé named in the JSON body.
func DeleteResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			Email string `json:"email"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Delete(c.UserContext(), in.Email); err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no resume stored for that email")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Resume deleted successfully",
		})
	}
}
