package expenditures

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/auth"
)

func SetupExpendituresRoutes(app *fiber.App) {
	group := app.Group("/api/expenditures", auth.AuthMiddleware)

	group.Get("/", GetExpendituresAPI)
	group.Post("/", CreateExpenditureAPI)
	group.Get("/:id", GetExpenditureByIDAPI)
	group.Put("/:id", UpdateExpenditureAPI)
	group.Delete("/:id", DeleteExpenditureAPI)
}
