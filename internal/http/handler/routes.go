package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"alumnihub/internal/service"
)

// RegisterRoutes attaches every HTTP route to the Fiber app. Handlers stay
// thin; business rules live in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, users service.UserService, messages service.MessageService, resumes service.ResumeService, donations service.DonationService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Post("/signup", Signup(users))
	api.Post("/login", Login(users))
	api.Post("/forgot-password", ForgotPassword(users))
	api.Get("/users", ListUsers(users))
	api.Get("/user-stats", UserStats(users))

	api.Post("/send-message", SendMessage(messages))
	api.Get("/messages", ListMessages(messages))
	api.Get("/message-stats", MessageStats(messages))

	api.Post("/upload-resume", UploadResume(resumes))
	api.Get("/user-resume", GetResume(resumes))
	api.Get("/resume-users", ResumeOwners(resumes))
	api.Delete("/delete-resume", DeleteResume(resumes))

	api.Post("/upload-qr", UploadQR(donations))
	api.Get("/old-age-homes", ListOldAgeHomes(donations))
	api.Get("/orphans", ListOrphans(donations))
	api.Post("/upload-transaction", UploadTransaction(donations))
	api.Get("/old-age-homes-stats", OldAgeHomeStats(donations))
	api.Get("/orphans-stats", OrphanStats(donations))
}
