package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"gasline/internal/auth"
	customerv1 "gasline/internal/http/customer"
	exportv1 "gasline/internal/http/export"
	importv1 "gasline/internal/http/importcsv"
	paymentv1 "gasline/internal/http/payment"
	transactionv1 "gasline/internal/http/transaction"
	vehiclev1 "gasline/internal/http/vehicle"
)

func New(
	identity *auth.Middleware,
	allowedOrigins []string,
	customersV1 *customerv1.Handler,
	vehiclesV1 *vehiclev1.Handler,
	transactionsV1 *transactionv1.Handler,
	paymentsV1 *paymentv1.Handler,
	importV1 *importv1.Handler,
	exportV1 *exportv1.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(identity.Handler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			customersV1.Routes(r)
		})

		r.Route("/vehicles", func(r chi.Router) {
			vehiclesV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			paymentsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", func(r chi.Router) {
			exportV1.Routes(r)
		})
	})

	return router
}
