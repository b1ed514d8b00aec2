package main

import (
	"fmt"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/config"
	appHTTP "github.com/crewpay/crewpay-backend-go/internal/handler/http"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/jwt"
	"github.com/crewpay/crewpay-backend-go/internal/repository/postgresql"
	dashboardService "github.com/crewpay/crewpay-backend-go/internal/service/dashboard"
	employeeService "github.com/crewpay/crewpay-backend-go/internal/service/employee"
	levelService "github.com/crewpay/crewpay-backend-go/internal/service/level"
	partnerService "github.com/crewpay/crewpay-backend-go/internal/service/partner"
	partnerPaymentService "github.com/crewpay/crewpay-backend-go/internal/service/partnerpayment"
	paymentService "github.com/crewpay/crewpay-backend-go/internal/service/payment"
	"github.com/crewpay/crewpay-backend-go/internal/service/scope"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	levelRepo := postgresql.NewLevelRepository(db)
	partnerRepo := postgresql.NewPartnerRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	partnerPaymentRepo := postgresql.NewPartnerPaymentRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	scopeResolver := scope.NewResolver(partnerRepo)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, levelRepo, scopeResolver)
	levelSvc := levelService.NewLevelService(levelRepo)
	partnerSvc := partnerService.NewPartnerService(partnerRepo)
	paymentSvc := paymentService.NewPaymentService(db, paymentRepo, employeeRepo, scopeResolver)
	partnerPaymentSvc := partnerPaymentService.NewPartnerPaymentService(partnerPaymentRepo, scopeResolver)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, paymentRepo, scopeResolver)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	levelHandler := appHTTP.NewLevelHandler(levelSvc)
	partnerHandler := appHTTP.NewPartnerHandler(partnerSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	partnerPaymentHandler := appHTTP.NewPartnerPaymentHandler(partnerPaymentSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		dashboardHandler,
		employeeHandler,
		levelHandler,
		partnerHandler,
		paymentHandler,
		partnerPaymentHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
