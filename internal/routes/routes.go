package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/audit"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/config"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/handlers"
	infraRepo "github.com/rafaelmaiia/mar-de-beleza-system/internal/infra/repository"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/middleware"
	ucAppointment "github.com/rafaelmaiia/mar-de-beleza-system/internal/usecase/appointment"
	ucPayment "github.com/rafaelmaiia/mar-de-beleza-system/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		log,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		log,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
		log,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
		log,
	)

	findAppointmentUC := ucAppointment.NewFindAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// 🧠 USE CASES — PAYMENTS
	// ======================================================
	createPaymentUC := ucPayment.NewCreatePayment(
		paymentRepo,
		auditDispatcher,
		log,
	)

	updatePaymentUC := ucPayment.NewUpdatePayment(
		paymentRepo,
		auditDispatcher,
		log,
	)

	cancelPaymentUC := ucPayment.NewCancelPayment(
		paymentRepo,
		auditDispatcher,
		log,
	)

	findPaymentUC := ucPayment.NewFindPayment(paymentRepo)
	listPaymentsUC := ucPayment.NewListPayments(paymentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)
	salonServiceHandler := handlers.NewSalonServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		updateStatusUC,
		deleteAppointmentUC,
		findAppointmentUC,
		listAppointmentsUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		createPaymentUC,
		updatePaymentUC,
		cancelPaymentUC,
		findPaymentUC,
		listPaymentsUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.GetByID)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// PROFESSIONALS
			// ------------------------------
			secured.POST("/professionals", professionalHandler.Create)
			secured.GET("/professionals", professionalHandler.List)
			secured.GET("/professionals/:id", professionalHandler.GetByID)
			secured.PUT("/professionals/:id", professionalHandler.Update)
			secured.DELETE("/professionals/:id", professionalHandler.Delete)

			// ------------------------------
			// SALON SERVICES
			// ------------------------------
			secured.POST("/services", salonServiceHandler.Create)
			secured.GET("/services", salonServiceHandler.List)
			secured.GET("/services/:id", salonServiceHandler.GetByID)
			secured.PUT("/services/:id", salonServiceHandler.Update)
			secured.DELETE("/services/:id", salonServiceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			secured.POST("/payments", paymentHandler.Create)
			secured.GET("/payments", paymentHandler.List)
			secured.GET("/payments/:id", paymentHandler.GetByID)
			secured.PUT("/payments/:id", paymentHandler.Update)
			secured.PATCH("/payments/:id/cancel",
				middleware.RequireRole("admin"),
				paymentHandler.Cancel,
			)
		}
	}
}
