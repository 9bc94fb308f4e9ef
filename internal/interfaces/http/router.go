package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/othmaneb0100/ecommerce-product-api/internal/application/auth"
	"github.com/othmaneb0100/ecommerce-product-api/internal/application/usecase"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	AuthUC     *auth.AuthUseCase
	Tokens     repository.TokenRepository
}

// Router registra las rutas de la API. Política de acceso: GET abierto a
// anónimos, escrituras detrás del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	guard := AuthRequired(deps.Tokens)

	// Users y token (público)
	userHandler := NewUserHandler(deps.AuthUC)
	api.Post("/users/", userHandler.Register)
	api.Post("/token/", userHandler.ObtainToken)

	// Products: lectura abierta, escritura autenticada
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", guard, productHandler.Create)
	products.Patch("/:id", guard, productHandler.Update)
	products.Put("/:id", guard, productHandler.Update)
	products.Delete("/:id", guard, productHandler.Delete)

	// Categories: misma política que products
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", guard, categoryHandler.Create)
	categories.Patch("/:id", guard, categoryHandler.Update)
	categories.Put("/:id", guard, categoryHandler.Update)
	categories.Delete("/:id", guard, categoryHandler.Delete)
}
