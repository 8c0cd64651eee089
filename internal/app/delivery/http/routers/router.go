package routers

import (
	"fmt"
	"time"

	"opencrvs-service/internal/app/config"
	"opencrvs-service/internal/app/delivery/http/middlewares"
	"opencrvs-service/internal/app/services/assignment"
	"opencrvs-service/internal/app/services/registration"
	"opencrvs-service/internal/app/services/search"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	registrationController *registration.RegistrationController,
	assignmentController *assignment.AssignmentController,
	searchController *search.SearchController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/registration", func(r chi.Router) {
				attachRegistrationRoutes(r, registrationController)
			})

			r.Route("/assignment", func(r chi.Router) {
				attachAssignmentRoutes(r, assignmentController)
			})

			r.Route("/events", func(r chi.Router) {
				attachSearchRoutes(r, searchController)
			})
		})
	})
}
