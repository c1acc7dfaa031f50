package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Post("/import", ImportStudentsAPI)
	api.Get("/:prn", GetStudentByPRNAPI)
	api.Put("/:prn", UpdateStudentAPI)
	api.Delete("/:prn", DeleteStudentAPI)

	api.Get("/:prn/payments", GetStudentPaymentsAPI)
	api.Post("/:prn/payments", AddPaymentAPI)
	api.Put("/:prn/payments/:paymentId/pay", MarkPaymentPaidAPI)
}
