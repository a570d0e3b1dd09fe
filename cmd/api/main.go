package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/begoneskadedjur/kundportal-sub011/internal/config"
	appHTTP "github.com/begoneskadedjur/kundportal-sub011/internal/handler/http"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/assistant"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/database"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/jwt"
	"github.com/begoneskadedjur/kundportal-sub011/internal/repository/postgresql"
	dashboardService "github.com/begoneskadedjur/kundportal-sub011/internal/service/dashboard"
	pricingService "github.com/begoneskadedjur/kundportal-sub011/internal/service/pricing"
	provisionService "github.com/begoneskadedjur/kundportal-sub011/internal/service/provision"
	schedulingService "github.com/begoneskadedjur/kundportal-sub011/internal/service/scheduling"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	jobRepo := postgresql.NewJobRepository(db)
	technicianRepo := postgresql.NewTechnicianRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	policy, err := provisionService.PolicyFromName(cfg.Commission.Policy)
	if err != nil {
		log.Fatal("Invalid commission policy: ", err)
	}

	var operationsAssistant assistant.Assistant
	if cfg.Assistant.BaseURL != "" {
		operationsAssistant = assistant.OpenAICompatAssistant{
			BaseURL:   cfg.Assistant.BaseURL,
			Model:     cfg.Assistant.Model,
			APIKey:    cfg.Assistant.APIKey,
			MaxTokens: cfg.Assistant.MaxTokens,
		}
	} else {
		operationsAssistant = assistant.MockAssistant{}
	}

	schedulingSvc := schedulingService.NewSchedulingService(jobRepo, technicianRepo)
	provisionSvc := provisionService.NewProvisionService(jobRepo, technicianRepo, policy)
	pricingSvc := pricingService.NewPricingService(jobRepo)
	dashboardSvc := dashboardService.NewDashboardService(jobRepo, technicianRepo, policy)

	analyticsHandler := appHTTP.NewAnalyticsHandler(dashboardSvc, schedulingSvc, provisionSvc, pricingSvc)
	assistantHandler := appHTTP.NewAssistantHandler(dashboardSvc, operationsAssistant)
	technicianHandler := appHTTP.NewTechnicianHandler(technicianRepo)
	jobHandler := appHTTP.NewJobHandler(jobRepo)

	router := appHTTP.NewRouter(
		JWTService,
		analyticsHandler,
		assistantHandler,
		technicianHandler,
		jobHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
