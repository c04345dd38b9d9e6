// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"arbolitos/internal/delivery/http/middleware"
	"arbolitos/internal/delivery/http/router/handler"
	"arbolitos/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	PlantHandler    *handler.PlantHandler
	WateringHandler *handler.WateringHandler
	PaymentHandler  *handler.PaymentHandler
	SettingsHandler *handler.SettingsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	plantHandler    *handler.PlantHandler
	wateringHandler *handler.WateringHandler
	paymentHandler  *handler.PaymentHandler
	settingsHandler *handler.SettingsHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		plantHandler:    params.PlantHandler,
		wateringHandler: params.WateringHandler,
		paymentHandler:  params.PaymentHandler,
		settingsHandler: params.SettingsHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Path segments are in Spanish to stay compatible with the existing frontend.
func (r *router) RegisterRoutes(e *echo.Echo) {
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	technicianOnly := r.authMiddleware.RequireRole(entity.RoleTechnician, entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.Refresh)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Profile routes for the authenticated user
	userGroup := e.Group("/usuario")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/perfil", r.accountHandler.GetProfile)
		userGroup.PUT("/fcm-token", r.accountHandler.UpdateFCMToken)
	}

	// User administration, admin only
	usersGroup := e.Group("/usuarios")
	usersGroup.Use(r.authMiddleware.Authenticate, adminOnly)
	{
		usersGroup.GET("", r.accountHandler.ListUsers)
		usersGroup.PUT("/:id/rol", r.accountHandler.UpdateUserRole)
		usersGroup.PUT("/:id/creditos", r.accountHandler.UpdateUserCredits)
		usersGroup.DELETE("/:id", r.accountHandler.DeleteUser)
	}

	// Tree catalog; reads for everyone logged in, writes for admins
	plantsGroup := e.Group("/plantas")
	plantsGroup.Use(r.authMiddleware.Authenticate)
	{
		plantsGroup.GET("", r.plantHandler.ListPlants)
		plantsGroup.GET("/:id", r.plantHandler.GetPlant)
		plantsGroup.POST("", r.plantHandler.CreatePlant, adminOnly)
		plantsGroup.PUT("/:id", r.plantHandler.UpdatePlant, adminOnly)
		plantsGroup.DELETE("/:id", r.plantHandler.DeletePlant, adminOnly)
	}

	// Adoption keeps its historical path
	e.PATCH("/plant/adopt/:id", r.plantHandler.AdoptPlant, r.authMiddleware.Authenticate)

	// Watering workflow
	wateringGroup := e.Group("/tecnico")
	wateringGroup.Use(r.authMiddleware.Authenticate)
	{
		wateringGroup.POST("/solicitar", r.wateringHandler.RequestWatering)
		wateringGroup.GET("/pendientes", r.wateringHandler.ListPending, technicianOnly)
		wateringGroup.GET("/asignadas", r.wateringHandler.ListAssigned, technicianOnly)
		wateringGroup.GET("/mis-solicitudes", r.wateringHandler.ListMine)
		wateringGroup.GET("/:id", r.wateringHandler.GetRequest)
		wateringGroup.PUT("/:id/estado", r.wateringHandler.UpdateStatus, technicianOnly)
		wateringGroup.POST("/:id/reportar", r.wateringHandler.SubmitReport, technicianOnly)
	}

	// Credit purchases
	paymentGroup := e.Group("/pago")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.POST("", r.paymentHandler.SubmitPayment)
		paymentGroup.GET("", r.paymentHandler.ListPayments, adminOnly)
		paymentGroup.GET("/qr", r.settingsHandler.GetPaymentQR)
		paymentGroup.GET("/mis-pagos", r.paymentHandler.ListMine)
		paymentGroup.GET("/:id", r.paymentHandler.GetPayment)
		paymentGroup.PUT("/:id/estado", r.paymentHandler.DecidePayment, adminOnly)
	}

	// Program-wide pricing settings
	settingsGroup := e.Group("/settings")
	settingsGroup.Use(r.authMiddleware.Authenticate)
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PUT("", r.settingsHandler.UpdateSettings, adminOnly)
		settingsGroup.POST("/qr", r.settingsHandler.UploadPaymentQR, adminOnly)
	}
}
