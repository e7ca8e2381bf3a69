// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medifind/internal/delivery/http/middleware"
	"medifind/internal/delivery/http/router/handler"
	"medifind/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	InventoryHandler    *handler.InventoryHandler
	CartHandler         *handler.CartHandler
	MessageHandler      *handler.MessageHandler
	PrescriptionHandler *handler.PrescriptionHandler
	PharmacyHandler     *handler.PharmacyHandler
	ProfileHandler      *handler.ProfileHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	inventoryHandler    *handler.InventoryHandler
	cartHandler         *handler.CartHandler
	messageHandler      *handler.MessageHandler
	prescriptionHandler *handler.PrescriptionHandler
	pharmacyHandler     *handler.PharmacyHandler
	profileHandler      *handler.ProfileHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		inventoryHandler:    params.InventoryHandler,
		cartHandler:         params.CartHandler,
		messageHandler:      params.MessageHandler,
		prescriptionHandler: params.PrescriptionHandler,
		pharmacyHandler:     params.PharmacyHandler,
		profileHandler:      params.ProfileHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/register/pharmacy", r.userHandler.RegisterPharmacy)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public discovery routes, no authentication required
	e.GET("/pharmacies", r.pharmacyHandler.Browse)
	e.GET("/pharmacies/:id", r.pharmacyHandler.Get)
	e.GET("/pharmacies/:id/medicines", r.pharmacyHandler.ListMedicines)
	e.GET("/pharmacies/:id/medicines/count", r.pharmacyHandler.MedicineCount)
	e.GET("/medicines/search", r.pharmacyHandler.SearchMedicines)
	e.GET("/medicines/:id", r.pharmacyHandler.GetMedicine)
	e.GET("/counts", r.pharmacyHandler.Counts)

	// Profile routes for any authenticated account
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.profileHandler.GetProfile)
	}

	// Patient routes that require authentication and the "patient" role
	patientGroup := e.Group("/patient")
	patientGroup.Use(r.authMiddleware.Authenticate)
	patientGroup.Use(r.authMiddleware.RequireRole(entity.RolePatient))
	{
		patientGroup.GET("/cart", r.cartHandler.GetCart)
		patientGroup.POST("/cart/items", r.cartHandler.AddItem)
		patientGroup.PUT("/cart/items/:medicineId", r.cartHandler.UpdateItem)
		patientGroup.DELETE("/cart/items/:medicineId", r.cartHandler.RemoveItem)
		patientGroup.DELETE("/cart", r.cartHandler.Clear)

		patientGroup.POST("/messages", r.messageHandler.Send)
		patientGroup.POST("/messages/reply", r.messageHandler.ReplyAsPatient)
		patientGroup.GET("/messages", r.messageHandler.PatientInbox)
		patientGroup.GET("/messages/sent", r.messageHandler.PatientSent)
		patientGroup.GET("/messages/all", r.messageHandler.PatientMessages)
		patientGroup.POST("/messages/read", r.messageHandler.MarkPatientRead)
		patientGroup.PATCH("/messages/:id/read", r.messageHandler.MarkPatientMessageRead)

		patientGroup.POST("/prescriptions", r.prescriptionHandler.Upload)
		patientGroup.GET("/prescriptions", r.prescriptionHandler.ListMine)
		patientGroup.GET("/prescriptions/:id", r.prescriptionHandler.Get)

		patientGroup.GET("/saved-pharmacies", r.pharmacyHandler.ListSaved)
		patientGroup.POST("/saved-pharmacies/:id", r.pharmacyHandler.SavePharmacy)
		patientGroup.DELETE("/saved-pharmacies/:id", r.pharmacyHandler.UnsavePharmacy)
	}

	// Pharmacy routes that require authentication and the "pharmacy" role
	pharmacyGroup := e.Group("/pharmacy")
	pharmacyGroup.Use(r.authMiddleware.Authenticate)
	pharmacyGroup.Use(r.authMiddleware.RequireRole(entity.RolePharmacy))
	{
		pharmacyGroup.POST("/medicines", r.inventoryHandler.AddMedicine)
		pharmacyGroup.GET("/medicines", r.inventoryHandler.ListStock)
		pharmacyGroup.GET("/medicines/:id", r.inventoryHandler.GetMedicine)
		pharmacyGroup.PUT("/medicines/:id", r.inventoryHandler.UpdateMedicine)
		pharmacyGroup.DELETE("/medicines/:id", r.inventoryHandler.DeleteMedicine)
		pharmacyGroup.POST("/medicines/:id/image", r.inventoryHandler.UploadMedicineImage)

		pharmacyGroup.GET("/messages", r.messageHandler.PharmacyInbox)
		pharmacyGroup.GET("/messages/inbox", r.messageHandler.PharmacyReceived)
		pharmacyGroup.GET("/messages/all", r.messageHandler.PharmacyMessages)
		pharmacyGroup.POST("/messages/reply", r.messageHandler.Reply)
		pharmacyGroup.POST("/messages/read", r.messageHandler.MarkPharmacyRead)
		pharmacyGroup.PATCH("/messages/:id/read", r.messageHandler.MarkPharmacyMessageRead)

		pharmacyGroup.GET("/prescriptions", r.prescriptionHandler.ListForPharmacy)
		pharmacyGroup.GET("/prescriptions/:id", r.prescriptionHandler.Get)
		pharmacyGroup.PATCH("/prescriptions/:id/read", r.prescriptionHandler.MarkRead)

		pharmacyGroup.PUT("/profile", r.profileHandler.UpdatePharmacyProfile)
		pharmacyGroup.POST("/profile/flyer", r.profileHandler.UploadFlyer)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/pharmacies", r.adminHandler.ListPharmacies)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
	}
}
