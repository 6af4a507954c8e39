package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/http/handlers"
	"github.com/spec-kit/foodyy-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Admins         *handlers.AdminHandler
	Customers      *handlers.CustomerHandler
	Foods          *handlers.FoodHandler
	Carts          *handlers.CartHandler
	Orders         *handlers.OrderHandler
	Wishlists      *handlers.WishlistHandler
	Addresses      *handlers.AddressHandler
	ForgotPassword *handlers.ForgotPasswordHandler
	Gate           *auth.Gate
	Policy         *auth.Policy
}

// RegisterRoutes wires HTTP routes. The gate resolves the caller's identity
// where a bearer token is present; the policy then enforces role access for
// every route, so individual routes carry no extra guards here.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gate.Handle)
	app.Use(cfg.Policy.Enforce())

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	forgot := app.Group("/forgot-password")
	forgot.Post("/verify-email/:email", cfg.ForgotPassword.SendOTP)
	forgot.Post("/verify-otp/:otp/:email", cfg.ForgotPassword.VerifyOTP)
	forgot.Post("/change-password/:email", cfg.ForgotPassword.ChangePassword)

	admin := app.Group("/admin")
	admin.Post("/signin", cfg.Admins.SignIn)
	admin.Post("/signout", cfg.Admins.SignOut)
	admin.Get("/foods", cfg.Foods.List)
	admin.Get("/foods/search", cfg.Foods.Search)
	admin.Post("/food", cfg.Foods.Create)
	admin.Get("/food/:foodId", cfg.Foods.Get)
	admin.Get("/food/:foodId/image", cfg.Foods.Image)
	admin.Put("/food/:foodId", cfg.Foods.Update)
	admin.Delete("/food/:foodId", cfg.Foods.Delete)
	admin.Get("/orders", cfg.Orders.ListAll)
	admin.Put("/order/:orderId/status", cfg.Orders.UpdateStatus)
	admin.Get("/customers", cfg.Customers.List)
	admin.Get("/customers/search", cfg.Customers.Search)
	admin.Get("/customer/:custId", cfg.Customers.Get)
	admin.Put("/customer/:custId", cfg.Customers.Update)
	admin.Delete("/customer/:custId", cfg.Customers.Delete)

	customer := app.Group("/customer")
	customer.Post("/signup", cfg.Customers.SignUp)
	customer.Post("/signin", cfg.Customers.SignIn)
	customer.Post("/signout", cfg.Customers.SignOut)
	customer.Get("/foods", cfg.Foods.List)
	customer.Get("/foods/search", cfg.Foods.Search)
	customer.Get("/food/:foodId", cfg.Foods.Get)
	customer.Get("/food/:foodId/image", cfg.Foods.Image)
	customer.Post("/verify-password/:custId", cfg.Customers.VerifyPassword)
	customer.Post("/wishlist/:wishlistId/move-to-cart", cfg.Wishlists.MoveToCart)
	customer.Get("/:custId", cfg.Customers.Get)
	customer.Put("/:custId", cfg.Customers.Update)
	customer.Delete("/:custId", cfg.Customers.Delete)
	customer.Get("/:custId/orders", cfg.Orders.ListByCustomer)
	customer.Post("/:custId/wishlist/:foodId", cfg.Wishlists.Add)
	customer.Delete("/:custId/wishlist/:foodId", cfg.Wishlists.Remove)
	customer.Get("/:custId/wishlist", cfg.Wishlists.List)
	customer.Get("/:custId/addresses", cfg.Addresses.List)
	customer.Post("/:custId/address", cfg.Addresses.Save)
	customer.Delete("/address/:addressId", cfg.Addresses.Delete)

	cart := app.Group("/cart")
	cart.Get("/:custId", cfg.Carts.Get)
	cart.Post("/:custId/add/:foodId", cfg.Carts.AddItem)
	cart.Put("/:custId/item/:itemId", cfg.Carts.UpdateItemQuantity)
	cart.Delete("/:custId/item/:itemId", cfg.Carts.DeleteItem)

	// Registered last so the :custId wildcard cannot shadow fixed prefixes.
	app.Post("/:custId/order/place", cfg.Orders.Place)
}
