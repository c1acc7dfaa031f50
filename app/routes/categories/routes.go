package categories

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/auth"
)

func SetupCategoriesRoutes(app *fiber.App) {
	group := app.Group("/api/categories", auth.AuthMiddleware)

	group.Get("/", GetCategoriesAPI)
	group.Post("/", CreateCategoryAPI)
	group.Get("/:id", GetCategoryByIDAPI)
	group.Put("/:id", UpdateCategoryAPI)
	group.Delete("/:id", DeleteCategoryAPI)
}
