package http

import (
	"log/slog"
	"os"

	"github.com/crewpay/crewpay-backend-go/internal/config"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/middleware"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	levelHandler LevelHandler,
	partnerHandler PartnerHandler,
	paymentHandler PaymentHandler,
	partnerPaymentHandler PartnerPaymentHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crewpay"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/dashboard/stats", dashboardHandler.GetStats)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Post("/batch", employeeHandler.BatchCreateEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
					r.Put("/{id}/approve", employeeHandler.ApproveEmployee)
				})
			})

			r.Route("/levels", func(r chi.Router) {
				r.Get("/", levelHandler.ListLevels)
				r.Get("/{id}", levelHandler.GetLevel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", levelHandler.CreateLevel)
					r.Put("/{id}", levelHandler.UpdateLevel)
					r.Delete("/{id}", levelHandler.DeleteLevel)
				})
			})

			r.Route("/partners", func(r chi.Router) {
				r.Get("/my", partnerHandler.GetOwnProfile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", partnerHandler.ListPartners)
					r.Post("/", partnerHandler.CreatePartner)
					r.Get("/{id}", partnerHandler.GetPartner)
					r.Put("/{id}", partnerHandler.UpdatePartner)
					r.Delete("/{id}", partnerHandler.DeletePartner)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", paymentHandler.ListPayments)
				r.Put("/batch/mark-paid", paymentHandler.BatchMarkPaid)
				r.Get("/{id}", paymentHandler.GetPayment)
				r.Put("/{id}/mark-paid", paymentHandler.MarkPaid)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", paymentHandler.CreatePayment)
					r.Post("/batch", paymentHandler.BatchCreatePayments)
					r.Put("/{id}", paymentHandler.UpdatePayment)
					r.Delete("/{id}", paymentHandler.DeletePayment)
					r.Put("/{id}/approve", paymentHandler.ApprovePayment)
				})
			})

			r.Route("/partner-payments", func(r chi.Router) {
				r.Use(middleware.AdminOrPartner)
				r.Get("/", partnerPaymentHandler.ListPartnerPayments)
				r.Get("/{id}", partnerPaymentHandler.GetPartnerPayment)
				r.Put("/{id}/mark-paid", partnerPaymentHandler.MarkPaid)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", partnerPaymentHandler.CreatePartnerPayment)
					r.Put("/{id}", partnerPaymentHandler.UpdatePartnerPayment)
					r.Delete("/{id}", partnerPaymentHandler.DeletePartnerPayment)
				})
			})
		})
	})

	return r
}
