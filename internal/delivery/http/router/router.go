// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ClientHandler         *handler.ClientHandler
	RoleHandler           *handler.RoleHandler
	PermissionHandler     *handler.PermissionHandler
	CategoryHandler       *handler.CategoryHandler
	CurrencyHandler       *handler.CurrencyHandler
	ProductHandler        *handler.ProductHandler
	DocumentHandler       *handler.DocumentHandler
	CharacteristicHandler *handler.CharacteristicHandler
	CartHandler           *handler.CartHandler
	CartItemHandler       *handler.CartItemHandler
	OrderHandler          *handler.OrderHandler
	SupportHandler        *handler.SupportHandler
	GlobalVarHandler      *handler.GlobalVarHandler
	AuthMiddleware        *middleware.AuthMiddleware
	RequestIDMiddleware   *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Fine-grained authorization happens in the usecase layer; the route
// groups only decide whether a bearer token is required at all.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Open endpoints
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.ClientHandler.Register)
		authGroup.POST("/login", r.params.ClientHandler.Login)
	}

	// Ticket creation stays open so anonymous visitors can write in;
	// a valid token attaches the ticket to its author.
	e.POST("/supports", r.params.SupportHandler.Create, r.params.AuthMiddleware.OptionalAuthenticate)

	// Everything below requires an authenticated client.
	api := e.Group("", r.params.AuthMiddleware.Authenticate)

	clientGroup := api.Group("/clients")
	{
		clientGroup.GET("", r.params.ClientHandler.List)
		clientGroup.POST("", r.params.ClientHandler.Create)
		clientGroup.DELETE("", r.params.ClientHandler.DeleteList)
		clientGroup.PATCH("/self", r.params.ClientHandler.SelfUpdate)
		clientGroup.DELETE("/self", r.params.ClientHandler.SelfDelete)
		clientGroup.POST("/self/reset-password", r.params.ClientHandler.SelfResetPassword)
		clientGroup.GET("/:id", r.params.ClientHandler.Get)
		clientGroup.PATCH("/:id", r.params.ClientHandler.Update)
		clientGroup.DELETE("/:id", r.params.ClientHandler.Delete)
		clientGroup.POST("/:id/reset-password", r.params.ClientHandler.ResetPassword)
	}

	roleGroup := api.Group("/roles")
	{
		roleGroup.GET("", r.params.RoleHandler.List)
		roleGroup.POST("", r.params.RoleHandler.Create)
		roleGroup.GET("/:id", r.params.RoleHandler.Get)
		roleGroup.PATCH("/:id", r.params.RoleHandler.Update)
		roleGroup.DELETE("/:id", r.params.RoleHandler.Delete)
	}

	permissionGroup := api.Group("/permissions")
	{
		permissionGroup.GET("", r.params.PermissionHandler.List)
		permissionGroup.POST("", r.params.PermissionHandler.Create)
		permissionGroup.GET("/:id", r.params.PermissionHandler.Get)
		permissionGroup.PATCH("/:id", r.params.PermissionHandler.Update)
		permissionGroup.DELETE("/:id", r.params.PermissionHandler.Delete)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.params.CategoryHandler.List)
		categoryGroup.POST("", r.params.CategoryHandler.Create)
		categoryGroup.GET("/:id", r.params.CategoryHandler.Get)
		categoryGroup.PATCH("/:id", r.params.CategoryHandler.Update)
		categoryGroup.DELETE("/:id", r.params.CategoryHandler.Delete)
	}

	currencyGroup := api.Group("/currencies")
	{
		currencyGroup.GET("", r.params.CurrencyHandler.List)
		currencyGroup.POST("", r.params.CurrencyHandler.Create)
		currencyGroup.GET("/:id", r.params.CurrencyHandler.Get)
		currencyGroup.PATCH("/:id", r.params.CurrencyHandler.Update)
		currencyGroup.DELETE("/:id", r.params.CurrencyHandler.Delete)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.POST("", r.params.ProductHandler.Create)
		productGroup.GET("/:id", r.params.ProductHandler.Get)
		productGroup.PATCH("/:id", r.params.ProductHandler.Update)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete)
		productGroup.POST("/:id/validate", r.params.ProductHandler.Validate)
	}

	documentGroup := api.Group("/documents")
	{
		documentGroup.GET("", r.params.DocumentHandler.List)
		documentGroup.POST("", r.params.DocumentHandler.Create)
		documentGroup.GET("/:id", r.params.DocumentHandler.Get)
		documentGroup.PATCH("/:id", r.params.DocumentHandler.Update)
		documentGroup.DELETE("/:id", r.params.DocumentHandler.Delete)
	}

	characteristicGroup := api.Group("/characteristics")
	{
		characteristicGroup.GET("", r.params.CharacteristicHandler.List)
		characteristicGroup.POST("", r.params.CharacteristicHandler.Create)
		characteristicGroup.GET("/:id", r.params.CharacteristicHandler.Get)
		characteristicGroup.PATCH("/:id", r.params.CharacteristicHandler.Update)
		characteristicGroup.DELETE("/:id", r.params.CharacteristicHandler.Delete)
	}

	cartGroup := api.Group("/carts")
	{
		cartGroup.GET("", r.params.CartHandler.List)
		cartGroup.POST("", r.params.CartHandler.Create)
		cartGroup.GET("/:id", r.params.CartHandler.Get)
		cartGroup.PATCH("/:id", r.params.CartHandler.Update)
		cartGroup.DELETE("/:id", r.params.CartHandler.Delete)
	}

	cartItemGroup := api.Group("/cart-items")
	{
		cartItemGroup.GET("", r.params.CartItemHandler.List)
		cartItemGroup.POST("", r.params.CartItemHandler.Create)
		cartItemGroup.GET("/:id", r.params.CartItemHandler.Get)
		cartItemGroup.PATCH("/:id", r.params.CartItemHandler.Update)
		cartItemGroup.DELETE("/:id", r.params.CartItemHandler.Delete)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("", r.params.OrderHandler.List)
		orderGroup.POST("", r.params.OrderHandler.Create)
		orderGroup.GET("/self", r.params.OrderHandler.ListSelf)
		orderGroup.GET("/self/:id", r.params.OrderHandler.GetSelf)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.PATCH("/:id", r.params.OrderHandler.Update)
		orderGroup.DELETE("/:id", r.params.OrderHandler.Delete)
	}

	supportGroup := api.Group("/supports")
	{
		supportGroup.GET("", r.params.SupportHandler.List)
		supportGroup.GET("/:id", r.params.SupportHandler.Get)
		supportGroup.PATCH("/:id", r.params.SupportHandler.Update)
		supportGroup.PATCH("/:id/status", r.params.SupportHandler.UpdateStatus)
		supportGroup.DELETE("/:id", r.params.SupportHandler.Delete)
	}

	globalVarGroup := api.Group("/global-vars")
	{
		globalVarGroup.GET("", r.params.GlobalVarHandler.List)
		globalVarGroup.POST("", r.params.GlobalVarHandler.Create)
		globalVarGroup.GET("/:id", r.params.GlobalVarHandler.Get)
		globalVarGroup.PATCH("/:id", r.params.GlobalVarHandler.Update)
		globalVarGroup.DELETE("/:id", r.params.GlobalVarHandler.Delete)
	}
}
