package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/redsource-ph/redsource-api/internal/audit"
	"github.com/redsource-ph/redsource-api/internal/cache"
	"github.com/redsource-ph/redsource-api/internal/config"
	"github.com/redsource-ph/redsource-api/internal/handlers"
	"github.com/redsource-ph/redsource-api/internal/infra/repository"
	"github.com/redsource-ph/redsource-api/internal/infra/storage"
	"github.com/redsource-ph/redsource-api/internal/middleware"
	"github.com/redsource-ph/redsource-api/internal/models"
	"github.com/redsource-ph/redsource-api/internal/validators"

	donornumberuc "github.com/redsource-ph/redsource-api/internal/usecase/donornumber"
	transactionuc "github.com/redsource-ph/redsource-api/internal/usecase/transaction"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	dispatcher := audit.NewDispatcher(audit.New(db))
	calendarCache := cache.NewCalendar(cfg)
	imageStore := storage.NewImageStore(cfg)
	validate := validators.New()

	txRepo := repository.NewTransactionGormRepository(db)
	dnRepo := repository.NewDonorNumberGormRepository(db)

	// transaction usecases
	createMember := transactionuc.NewCreateMember(txRepo, calendarCache, dispatcher)
	createGuest := transactionuc.NewCreateGuest(txRepo, calendarCache, dispatcher)
	updateStatus := transactionuc.NewUpdateStatus(txRepo, calendarCache, dispatcher)
	updateByStaff := transactionuc.NewUpdateByStaff(txRepo, calendarCache, dispatcher)
	updateByDonor := transactionuc.NewUpdateByDonor(txRepo, calendarCache, dispatcher)
	deleteByStaff := transactionuc.NewDeleteByStaff(txRepo, calendarCache, dispatcher)
	deleteByDonor := transactionuc.NewDeleteByDonor(txRepo, calendarCache, dispatcher)
	listForHospital := transactionuc.NewListForHospital(txRepo)
	listForDonor := transactionuc.NewListForDonor(txRepo)
	getCalendar := transactionuc.NewGetCalendar(txRepo, calendarCache)

	// donor number usecases
	generateNumber := donornumberuc.NewGenerate(dnRepo, dispatcher)
	verifyNumber := donornumberuc.NewVerify(dnRepo, dispatcher)
	deleteNumber := donornumberuc.NewDelete(dnRepo, dispatcher)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	hospitalHandler := handlers.NewHospitalHandler(db, dispatcher)
	donorHandler := handlers.NewDonorHandler(db)
	donorNumberHandler := handlers.NewDonorNumberHandler(dnRepo, generateNumber, verifyNumber, deleteNumber)
	transactionHandler := handlers.NewTransactionHandler(listForHospital, updateByStaff, updateStatus, deleteByStaff, getCalendar)
	donorTxHandler := handlers.NewDonorTransactionHandler(createMember, listForDonor, updateByDonor, deleteByDonor)
	guestHandler := handlers.NewGuestHandler(createGuest, validate)
	eventHandler := handlers.NewEventHandler(db, imageStore, dispatcher)
	bloodSupplyHandler := handlers.NewBloodSupplyHandler(db, dispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")

	// public surface: the guest wizard and the announcements feed
	api.GET("/hospitals", hospitalHandler.ListPublic)
	api.GET("/announcements", eventHandler.Announcements)
	api.POST("/guest-donor", guestHandler.Create)

	auth := api.Group("/auth")
	{
		auth.POST("/register-admin", authHandler.RegisterAdmin)
		auth.POST("/login-admin", authHandler.LoginAdmin)
		auth.POST("/register-donor", authHandler.RegisterDonor)
		auth.POST("/login-donor", authHandler.LoginDonor)
	}

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(cfg))

	donor := secured.Group("/donor")
	donor.Use(middleware.RequireRoles(models.RoleDonor))
	{
		donor.POST("/transactions", donorTxHandler.Create)
		donor.GET("/transactions", donorTxHandler.List)
		donor.PATCH("/transactions/:id", donorTxHandler.Update)
		donor.DELETE("/transactions/:id", donorTxHandler.Delete)
	}

	// shared staff surface for ADMIN and HOSPITAL tiers
	staff := secured.Group("/me")
	staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleHospital))
	{
		staff.GET("/transactions", transactionHandler.List)
		staff.PATCH("/transactions/:id", transactionHandler.Update)
		staff.PATCH("/transactions/:id/status", transactionHandler.UpdateStatus)
		staff.DELETE("/transactions/:id", transactionHandler.Delete)
		staff.GET("/calendar", transactionHandler.Calendar)

		staff.GET("/events", eventHandler.List)
		staff.POST("/events", eventHandler.Create)
		staff.PUT("/events/:id", eventHandler.Update)
		staff.DELETE("/events/:id", eventHandler.Delete)

		staff.GET("/blood-supplies", bloodSupplyHandler.List)
		staff.POST("/blood-supplies", bloodSupplyHandler.Create)
		staff.DELETE("/blood-supplies/:id", bloodSupplyHandler.Delete)

		staff.GET("/audit-logs", auditLogsHandler.List)
	}

	// account settings, donor roster and number issuance stay with the
	// HOSPITAL tier
	hospitalOnly := secured.Group("/me")
	hospitalOnly.Use(middleware.RequireRoles(models.RoleHospital))
	{
		hospitalOnly.GET("", meHandler.GetMe)
		hospitalOnly.PATCH("", meHandler.UpdateMe)
		hospitalOnly.PATCH("/password", meHandler.ChangePassword)

		hospitalOnly.GET("/donors", donorHandler.List)
		hospitalOnly.GET("/donors/by-category", donorHandler.ListByCategory)

		hospitalOnly.POST("/donor-numbers", donorNumberHandler.Generate)
		hospitalOnly.GET("/donor-numbers", donorNumberHandler.List)
		hospitalOnly.PATCH("/donor-numbers/:donorId/verify", donorNumberHandler.Verify)
		hospitalOnly.DELETE("/donor-numbers/:donorId", donorNumberHandler.Delete)
	}

	admin := secured.Group("/admin")
	admin.Use(middleware.RequireRoles(models.RoleSuperAdmin))
	{
		admin.GET("/hospitals", hospitalHandler.List)
		admin.GET("/hospitals/:id", hospitalHandler.GetByID)
		admin.POST("/hospitals", hospitalHandler.Create)
		admin.PATCH("/hospitals/:id", hospitalHandler.Update)
	}
}
