package routers

import (
	"opencrvs-service/internal/app/services/search"

	"github.com/go-chi/chi/v5"
)

func attachSearchRoutes(router chi.Router, searchController *search.SearchController) {
	router.Post("/birth", searchController.BirthEvent)
	router.Post("/death", searchController.DeathEvent)
	router.Post("/marriage", searchController.MarriageEvent)
}
