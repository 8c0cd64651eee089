package routers

import (
	"fmt"

	"opencrvs-service/internal/app/services/assignment"
	"opencrvs-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAssignmentRoutes(router chi.Router, assignmentController *assignment.AssignmentController) {
	router.Get(fmt.Sprintf("/tasks/{%s}", constvars.URLParamTaskID), assignmentController.CheckAssignment)
}
