package assignment

import (
	"context"
	"net/http"
	"time"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/dto/requests"
	"opencrvs-service/internal/pkg/dto/responses"
	"opencrvs-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssignmentController struct {
	Log               *zap.Logger
	AssignmentUsecase contracts.AssignmentUsecase
}

func NewAssignmentController(logger *zap.Logger, assignmentUsecase contracts.AssignmentUsecase) *AssignmentController {
	return &AssignmentController{
		Log:               logger,
		AssignmentUsecase: assignmentUsecase,
	}
}

func (ctrl *AssignmentController) CheckAssignment(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, constvars.URLParamTaskID)
	header := &requests.AuthHeader{
		Authorization: r.Header.Get(constvars.HeaderAuthorization),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assigned, err := ctrl.AssignmentUsecase.CheckUserAssignment(ctx, taskID, header)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignmentCheckSuccessMessage, responses.AssignmentCheck{Assigned: assigned})
}
