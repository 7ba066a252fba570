package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/example/glamora/internal/cart"
	"github.com/example/glamora/internal/config"
	"github.com/example/glamora/internal/handlers"
	"github.com/example/glamora/internal/middleware"
	"github.com/example/glamora/internal/order"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	carts := cart.NewStore(db)
	ledger := order.NewLedger(db, carts)

	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	productHandler := handlers.NewProductHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(carts)
	orderHandler := handlers.NewOrderHandler(ledger)

	// The limiter is advisory throttling per client address, not a
	// correctness mechanism.
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:               cfg.RateLimitMax,
		Expiration:        cfg.RateLimitWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.ResolveOwner(cfg), middleware.RequireAuth(), authHandler.Me)

	// Catalog routes; listing is public, mutation is admin-only.
	admin := []fiber.Handler{middleware.ResolveOwner(cfg), middleware.RequireAdmin(db)}

	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", append(admin, catalogHandler.CreateCategory)...)
	categories.Put("/:id", append(admin, catalogHandler.UpdateCategory)...)
	categories.Delete("/:id", append(admin, catalogHandler.DeleteCategory)...)

	periods := api.Group("/rental-periods")
	periods.Get("/", catalogHandler.ListRentalPeriods)
	periods.Post("/", append(admin, catalogHandler.CreateRentalPeriod)...)
	periods.Delete("/:id", append(admin, catalogHandler.DeleteRentalPeriod)...)

	delivery := api.Group("/delivery-options")
	delivery.Get("/", catalogHandler.ListDeliveryOptions)
	delivery.Post("/", append(admin, catalogHandler.CreateDeliveryOption)...)
	delivery.Delete("/:id", append(admin, catalogHandler.DeleteDeliveryOption)...)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", append(admin, productHandler.CreateProduct)...)
	products.Put("/:id", append(admin, productHandler.UpdateProduct)...)
	products.Delete("/:id", append(admin, productHandler.DeleteProduct)...)
	products.Post("/:id/image", append(admin, productHandler.UploadImage)...)

	// Cart routes; anonymous sessions are allowed.
	cartGroup := api.Group("/cart", middleware.ResolveOwner(cfg))
	cartGroup.Get("/", cartHandler.GetCart)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Delete("/items/:id", cartHandler.RemoveItem)
	cartGroup.Delete("/", cartHandler.ClearCart)

	// Order routes; checkout and history require authentication.
	orders := api.Group("/orders", middleware.ResolveOwner(cfg), middleware.RequireAuth())
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/:number", orderHandler.GetOrder)
}
