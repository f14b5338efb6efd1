package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peopledesk/peopledesk-backend/internal/config"
	appHTTP "github.com/peopledesk/peopledesk-backend/internal/handler/http"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/cron"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/database"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/jwt"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/oauth"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/storage"
	"github.com/peopledesk/peopledesk-backend/internal/repository/postgresql"
	authService "github.com/peopledesk/peopledesk-backend/internal/service/auth"
	dashboardService "github.com/peopledesk/peopledesk-backend/internal/service/dashboard"
	employeeService "github.com/peopledesk/peopledesk-backend/internal/service/employee"
	"github.com/peopledesk/peopledesk-backend/internal/service/file"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiration,
		cfg.JWT.RefreshExpiration,
		cfg.JWT.IdleTimeout,
	)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileService)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, fileService)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	fileHandler := appHTTP.NewFileHandler(fileService)

	scheduler := cron.NewScheduler()
	cron.NewSessionJobs(jwtService).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
			LogLevel:    cfg.SlogLevel(),
		},
		jwtService,
		authHandler,
		employeeHandler,
		dashboardHandler,
		fileHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
