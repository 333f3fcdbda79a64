package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"fintrack/src/api/handlers"
	"fintrack/src/config"
	"fintrack/src/utils"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
}

func NewServer(db *sql.DB, cfg *config.Config, logger *logrus.Logger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handlers.NewHandler(db),
	}
	server.InitMiddlewares(cfg, logger)
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitMiddlewares(cfg *config.Config, logger *logrus.Logger) {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(loggerMiddleware(logger))

	allowedOrigins := cfg.Service.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)
}

// loggerMiddleware stores the application logger in the request context and
// logs one line per completed request.
func loggerMiddleware(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(utils.WithLogger(r.Context(), logger)))

			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"duration": time.Since(start).String(),
			}).Info("request completed")
		})
	}
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/assets", func(r chi.Router) {
		r.Get("/summary", s.Handler.GetAssetsSummary)
		r.Get("/breakdown", s.Handler.GetAssetBreakdown)

		r.Route("/investments", func(r chi.Router) {
			r.Get("/", s.Handler.GetInvestments)
			r.Post("/", s.Handler.CreateInvestment)
			r.Get("/{id}", s.Handler.GetInvestment)
			r.Put("/{id}", s.Handler.UpdateInvestment)
			r.Delete("/{id}", s.Handler.DeleteInvestment)
		})
		r.Route("/cash", func(r chi.Router) {
			r.Get("/", s.Handler.GetCashAccounts)
			r.Post("/", s.Handler.CreateCashAccount)
			r.Get("/{id}", s.Handler.GetCashAccount)
			r.Put("/{id}", s.Handler.UpdateCashAccount)
			r.Delete("/{id}", s.Handler.DeleteCashAccount)
		})
		r.Route("/physical", func(r chi.Router) {
			r.Get("/", s.Handler.GetPhysicalAssets)
			r.Post("/", s.Handler.CreatePhysicalAsset)
			r.Get("/{id}", s.Handler.GetPhysicalAsset)
			r.Put("/{id}", s.Handler.UpdatePhysicalAsset)
			r.Delete("/{id}", s.Handler.DeletePhysicalAsset)
		})
		r.Route("/ownership", func(r chi.Router) {
			r.Get("/", s.Handler.GetOwnershipStakes)
			r.Post("/", s.Handler.CreateOwnershipStake)
			r.Get("/{id}", s.Handler.GetOwnershipStake)
			r.Put("/{id}", s.Handler.UpdateOwnershipStake)
			r.Delete("/{id}", s.Handler.DeleteOwnershipStake)
		})
	})

	s.Router.Route("/api/liabilities", func(r chi.Router) {
		r.Get("/", s.Handler.GetLiabilities)
		r.Post("/", s.Handler.CreateLiability)
		r.Get("/breakdown", s.Handler.GetLiabilitiesByCategory)
		r.Get("/upcoming", s.Handler.GetUpcomingPayments)
		r.Get("/projections", s.Handler.GetPayoffProjections)
		r.Get("/{id}", s.Handler.GetLiability)
		r.Put("/{id}", s.Handler.UpdateLiability)
		r.Delete("/{id}", s.Handler.DeleteLiability)
	})

	s.Router.Route("/api/cashflow", func(r chi.Router) {
		r.Route("/income", func(r chi.Router) {
			r.Get("/", s.Handler.GetIncome)
			r.Post("/", s.Handler.CreateIncome)
			r.Get("/{id}", s.Handler.GetIncomeRecord)
			r.Put("/{id}", s.Handler.UpdateIncome)
			r.Delete("/{id}", s.Handler.DeleteIncome)
		})
		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", s.Handler.GetExpenses)
			r.Post("/", s.Handler.CreateExpense)
			r.Get("/{id}", s.Handler.GetExpense)
			r.Put("/{id}", s.Handler.UpdateExpense)
			r.Delete("/{id}", s.Handler.DeleteExpense)
		})
		r.Get("/summary", s.Handler.GetCashFlowSummary)
		r.Get("/monthly", s.Handler.GetMonthlyCashFlow)
		r.Get("/categories/income", s.Handler.GetIncomeByCategory)
		r.Get("/categories/expenses", s.Handler.GetExpensesByCategory)
		r.Get("/recurring", s.Handler.GetRecurringTransactions)
		r.Get("/recent", s.Handler.GetRecentTransactions)
	})

	s.Router.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/summary", s.Handler.GetDashboardSummary)
		r.Get("/quickstats", s.Handler.GetQuickStats)
		r.Get("/goals", s.Handler.GetNetWorthGoals)
		r.Get("/cashflow", s.Handler.GetCashFlowOverview)
		r.Get("/networth", s.Handler.GetNetWorthOverview)
		r.Get("/networth/monthly", s.Handler.GetMonthlyNetWorth)
		r.Post("/networth/snapshot", s.Handler.SaveNetWorthSnapshot)
		r.Delete("/networth/snapshot/{id}", s.Handler.DeleteNetWorthSnapshot)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
