package routers

import (
	"fmt"

	"opencrvs-service/internal/app/services/registration"
	"opencrvs-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRegistrationRoutes(router chi.Router, registrationController *registration.RegistrationController) {
	router.Post(fmt.Sprintf("/records/{%s}", constvars.URLParamEvent), registrationController.BuildBundle)
	router.Post("/tasks/status", registrationController.UpdateTaskStatus)
	router.Post("/tasks/extension", registrationController.AddTaskExtension)
}
