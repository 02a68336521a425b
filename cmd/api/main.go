package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"staff-attendance/internal/config"
	"staff-attendance/internal/handlers"
	"staff-attendance/internal/middleware"
	"staff-attendance/internal/notify"
	"staff-attendance/internal/repositories"
	"staff-attendance/internal/services"
	"staff-attendance/internal/storage"
)

func newStore(cfg config.StoreConfig) (storage.KeyValue, error) {
	switch cfg.Backend {
	case "sqlite":
		return storage.NewSQLiteStore(cfg.SQLitePath)
	case "memory":
		return storage.NewMemory(), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}

func newNotifier(cfg config.NotifyConfig) notify.Notifier {
	var channels notify.Multi
	if cfg.DiscordWebhookURL != "" {
		channels = append(channels, notify.NewDiscordWebhook(cfg.DiscordWebhookURL))
	}
	if cfg.TelegramToken != "" {
		telegram, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("telegram channel disabled: %v", err)
		} else {
			channels = append(channels, telegram)
		}
	}
	if len(channels) == 0 {
		return notify.Nop{}
	}
	return channels
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	store, err := newStore(cfg.Store)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}
	defer store.Close()

	repo := repositories.NewCollectionRepository(store)
	notifier := newNotifier(cfg.Notify)

	employeeService := services.NewEmployeeService(repo, notifier)
	authService, err := services.NewAuthService(cfg.Admin.Email, cfg.Admin.Password, cfg.JWT.Secret)
	if err != nil {
		log.Fatalf("initializing auth: %v", err)
	}

	authHandler := handlers.NewAuthHandler(authService)
	appHandler := handlers.NewAppHandler(employeeService)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Employee self-service portal: no login, matching the original
		// portal screen.
		api.GET("/employees", appHandler.ListEmployees)
		api.GET("/time-records", appHandler.ListTimeRecords)
		api.POST("/time-records/check-in", appHandler.CheckIn)
		api.POST("/time-records/check-out", appHandler.CheckOut)
		api.GET("/time-stats", appHandler.GetTimeStats)
		api.GET("/leave-requests", appHandler.ListLeaveRequests)
		api.POST("/leave-requests", appHandler.SubmitLeaveRequest)

		// Admin dashboard: requires a logged-in admin.
		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(cfg.JWT.Secret), middleware.AdminOnly())
		{
			admin.GET("/summary", appHandler.GetSummary)
			admin.POST("/employees", appHandler.CreateEmployee)
			admin.GET("/time-stats", appHandler.GetEmployeeStats)
			admin.PUT("/leave-requests/:id/status", appHandler.UpdateLeaveRequestStatus)
			admin.GET("/reports/export", appHandler.ExportReport)
		}
	}

	log.Printf("listening on %s", cfg.Server.Port)
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
