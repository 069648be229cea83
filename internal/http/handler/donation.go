package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"alumnihub/internal/model"
	"alumnihub/internal/service"
)

func readImage(fh *multipart.FileHeader) (service.UploadedImage, error) {
	f, err := fh.Open()
	if err != nil {
		return service.UploadedImage{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return service.UploadedImage{}, err
	}
	return service.UploadedImage{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// UploadQR creates a donation listing (multipart: name, type, qrImage,
// optional homeImage).
func UploadQR(svc service.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.FormValue("name")
		donationType := c.FormValue("type")

		qrHeader, err := c.FormFile("qrImage")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "qrImage is required")
		}
		qr, err := readImage(qrHeader)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read qrImage")
		}

		var home *service.UploadedImage
		if homeHeader, err := c.FormFile("homeImage"); err == nil {
			img, err := readImage(homeHeader)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read homeImage")
			}
			home = &img
		}

		item, err := svc.CreateListing(c.UserContext(), name, donationType, qr, home)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrFileTooLarge):
				return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "image exceeds the 2 MiB limit")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"data":    item,
		})
	}
}

func listDonationItems(svc service.DonationService, t model.DonationType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListItems(c.UserContext(), t)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if items == nil {
			items = []model.DonationItem{}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    items,
		})
	}
}

// ListOldAgeHomes lists old-age home donation listings.
func ListOldAgeHomes(svc service.DonationService) fiber.Handler {
	return listDonationItems(svc, model.DonationOldAge)
}

// ListOrphans lists orphanage donation listings.
func ListOrphans(svc service.DonationService) fiber.Handler {
	return listDonationItems(svc, model.DonationOrphan)
}

// UploadTransaction records a donor payment (multipart: item_name, amount,
// name, email, phone, screenshot).
func UploadTransaction(svc service.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		amountStr := c.FormValue("amount")
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid amount")
		}

		fh, err := c.FormFile("screenshot")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "screenshot is required")
		}
		screenshot, err := readImage(fh)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read screenshot")
		}

		in := service.TransactionInput{
			ItemName:   c.FormValue("item_name"),
			Amount:     amount,
			DonorName:  c.FormValue("name"),
			DonorEmail: c.FormValue("email"),
			DonorPhone: c.FormValue("phone"),
			Screenshot: screenshot,
		}
		if err := svc.SubmitTransaction(c.UserContext(), in); err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrFileTooLarge):
				return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "screenshot exceeds the 2 MiB limit")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Transaction recorded, pending verification",
		})
	}
}

func donationStats(svc service.DonationService, t model.DonationType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.DailyStats(c.UserContext(), t)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if stats == nil {
			stats = []model.DonationDailyStat{}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    stats,
		})
	}
}

// OldAgeHomeStats returns daily donation totals for old-age home listings.
func OldAgeHomeStats(svc service.DonationService) fiber.Handler {
	return donationStats(svc, model.DonationOldAge)
}

// OrphanStats returns daily donation totals for orphanage listings.
func OrphanStats(svc service.DonationService) fiber.Handler {
	return donationStats(svc, model.DonationOrphan)
}
